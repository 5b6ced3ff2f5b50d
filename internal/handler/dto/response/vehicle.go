package response

import (
	"time"

	"autoshop-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type VehicleResponse struct {
	ID           uuid.UUID  `json:"id"`
	CustomerID   uuid.UUID  `json:"customer_id"`
	CustomerName string     `json:"customer_name"`
	ModelID      *uuid.UUID `json:"model_id,omitempty"`
	ModelName    *string    `json:"model_name,omitempty"`
	PlateNumber  string     `json:"plate_number"`
	PurchaseDate *string    `json:"purchase_date,omitempty"`
	CurrentKM    uint       `json:"current_km"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type VehiclePageResponse struct {
	Items []VehicleResponse `json:"items"`
	Total int64             `json:"total"`
}

type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ServiceResponse struct {
	ID           uuid.UUID `json:"id"`
	VehicleID    uuid.UUID `json:"vehicle_id"`
	ServiceDate  string    `json:"service_date"`
	TotalAmount  float64   `json:"total_amount"`
	WarrantyUsed bool      `json:"warranty_used"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewVehicle(view *queries.VehicleView) VehicleResponse {
	var out VehicleResponse
	_ = copier.Copy(&out, view)
	out.PurchaseDate = formatDatePtr(view.PurchaseDate)
	return out
}

func NewVehiclePage(page *queries.VehiclePage) VehiclePageResponse {
	items := make([]VehicleResponse, 0, len(page.Items))
	for _, v := range page.Items {
		items = append(items, NewVehicle(v))
	}
	return VehiclePageResponse{Items: items, Total: page.Total}
}

func NewCustomer(view *queries.CustomerView) CustomerResponse {
	var out CustomerResponse
	_ = copier.Copy(&out, view)
	return out
}

func NewService(view *queries.ServiceView) ServiceResponse {
	var out ServiceResponse
	_ = copier.Copy(&out, view)
	out.ServiceDate = view.ServiceDate.Format(wireDateFormat)
	return out
}

func NewServiceList(views []*queries.ServiceView) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(views))
	for _, v := range views {
		out = append(out, NewService(v))
	}
	return out
}
