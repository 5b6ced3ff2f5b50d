// Package httperr centralizes the translation of usecase errors into HTTP
// responses. Handlers abort with a raw error; the error middleware picks the
// status code from the sentinel marks.
package httperr

import (
	"errors"
	"net/http"

	"autoshop-backend/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AbortWithError records err on the gin context and aborts the chain. The
// ErrorHandler middleware renders the response.
func AbortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// BadRequest responds immediately for binding and parsing failures, which
// never reach the usecase layer.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Code:    "BAD_REQUEST",
		Message: message,
	})
}

// Resolve maps a usecase error to an HTTP status and a stable machine code.
func Resolve(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, errs.ErrVehicleNotFound):
		return http.StatusNotFound, response("VEHICLE_NOT_FOUND", "vehicle not found")
	case errors.Is(err, errs.ErrModelNotFound):
		return http.StatusNotFound, response("MODEL_NOT_FOUND", "vehicle model not found")
	case errors.Is(err, errs.ErrCustomerNotFound):
		return http.StatusNotFound, response("CUSTOMER_NOT_FOUND", "customer not found")
	case errors.Is(err, errs.ErrComponentNotFound):
		return http.StatusNotFound, response("COMPONENT_NOT_FOUND", "warranty component not found")
	case errors.Is(err, errs.ErrWarrantyNotFound):
		return http.StatusNotFound, response("WARRANTY_NOT_FOUND", "warranty not found")
	case errors.Is(err, errs.ErrServiceNotFound):
		return http.StatusNotFound, response("SERVICE_NOT_FOUND", "service record not found")
	case errors.Is(err, errs.ErrWarrantyAlreadyAssigned):
		return http.StatusConflict, response("WARRANTY_ALREADY_ASSIGNED", "warranty parts already assigned to this vehicle")
	case errors.Is(err, errs.ErrDuplicatePlate):
		return http.StatusConflict, response("DUPLICATE_PLATE", "a vehicle with this plate number already exists")
	case errors.Is(err, errs.ErrDomainValidation):
		return http.StatusUnprocessableEntity, response("VALIDATION_FAILED", err.Error())
	case errors.Is(err, errs.ErrDatabaseOperationFailed):
		return http.StatusServiceUnavailable, response("DEPENDENCY_UNAVAILABLE", "a backing service is unavailable")
	default:
		return http.StatusInternalServerError, response("INTERNAL_ERROR", "internal server error")
	}
}

func response(code, message string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message}
}
