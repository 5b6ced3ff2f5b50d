package errs

import "errors"

// Sentinel errors shared by the usecase layers.
var (
	// Lookup errors
	ErrVehicleNotFound   = errors.New("vehicle not found")
	ErrModelNotFound     = errors.New("vehicle model not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrComponentNotFound = errors.New("warranty component not found")
	ErrWarrantyNotFound  = errors.New("warranty not found")
	ErrServiceNotFound   = errors.New("service record not found")

	// Warranty lifecycle errors
	ErrWarrantyAlreadyAssigned = errors.New("warranty already assigned")
	ErrDuplicatePlate          = errors.New("plate number already registered")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
