//go:build unit

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"autoshop-backend/internal/domain/warranty"
	"autoshop-backend/internal/handler/api"
	"autoshop-backend/internal/pkg/config"
	"autoshop-backend/internal/pkg/errs"
	"autoshop-backend/internal/usecase/commands"
	"autoshop-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// Function-field stubs so each test overrides only the call it exercises.

type stubWarrantyCommands struct {
	updateModelConfig func(ctx context.Context, modelID uuid.UUID, cfg warranty.ModelConfig) (*queries.ModelConfigView, error)
	autoAssign        func(ctx context.Context, vehicleID, modelID uuid.UUID, purchaseDate time.Time) ([]*queries.PartView, error)
}

func (s *stubWarrantyCommands) UpdateModelConfig(ctx context.Context, modelID uuid.UUID, cfg warranty.ModelConfig) (*queries.ModelConfigView, error) {
	return s.updateModelConfig(ctx, modelID, cfg)
}

func (s *stubWarrantyCommands) AutoAssign(ctx context.Context, vehicleID, modelID uuid.UUID, purchaseDate time.Time) ([]*queries.PartView, error) {
	return s.autoAssign(ctx, vehicleID, modelID, purchaseDate)
}

type stubVehicleCommands struct {
	createVehicle  func(ctx context.Context, params commands.CreateVehicleParams) (*queries.VehicleView, error)
	updateOdometer func(ctx context.Context, vehicleID uuid.UUID, km uint) (*queries.VehicleView, error)
}

func (s *stubVehicleCommands) CreateVehicle(ctx context.Context, params commands.CreateVehicleParams) (*queries.VehicleView, error) {
	return s.createVehicle(ctx, params)
}

func (s *stubVehicleCommands) UpdateOdometer(ctx context.Context, vehicleID uuid.UUID, km uint) (*queries.VehicleView, error) {
	return s.updateOdometer(ctx, vehicleID, km)
}

type stubServiceCommands struct {
	createService func(ctx context.Context, params commands.CreateServiceParams) (*queries.ServiceView, error)
}

func (s *stubServiceCommands) CreateService(ctx context.Context, params commands.CreateServiceParams) (*queries.ServiceView, error) {
	return s.createService(ctx, params)
}

type stubWarrantyQueries struct {
	listComponents   func(ctx context.Context) ([]queries.ComponentView, error)
	listModels       func(ctx context.Context) ([]*queries.ModelView, error)
	getModelConfig   func(ctx context.Context, modelID uuid.UUID) (*queries.ModelConfigView, error)
	getVehicleParts  func(ctx context.Context, vehicleID uuid.UUID) ([]*queries.PartView, error)
	getVehicleReport func(ctx context.Context, vehicleID uuid.UUID) (*queries.VehicleWarrantyReport, error)
	listWarranties   func(ctx context.Context, limit, offset int32) (*queries.WarrantyPage, error)
}

func (s *stubWarrantyQueries) ListComponents(ctx context.Context) ([]queries.ComponentView, error) {
	return s.listComponents(ctx)
}

func (s *stubWarrantyQueries) ListModels(ctx context.Context) ([]*queries.ModelView, error) {
	return s.listModels(ctx)
}

func (s *stubWarrantyQueries) GetModelConfig(ctx context.Context, modelID uuid.UUID) (*queries.ModelConfigView, error) {
	return s.getModelConfig(ctx, modelID)
}

func (s *stubWarrantyQueries) GetVehicleParts(ctx context.Context, vehicleID uuid.UUID) ([]*queries.PartView, error) {
	return s.getVehicleParts(ctx, vehicleID)
}

func (s *stubWarrantyQueries) GetVehicleReport(ctx context.Context, vehicleID uuid.UUID) (*queries.VehicleWarrantyReport, error) {
	return s.getVehicleReport(ctx, vehicleID)
}

func (s *stubWarrantyQueries) ListWarranties(ctx context.Context, limit, offset int32) (*queries.WarrantyPage, error) {
	return s.listWarranties(ctx, limit, offset)
}

type stubVehicleQueries struct {
	getVehicle          func(ctx context.Context, id uuid.UUID) (*queries.VehicleView, error)
	listVehicles        func(ctx context.Context, search string, limit, offset int32) (*queries.VehiclePage, error)
	getCustomer         func(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error)
	listVehicleServices func(ctx context.Context, vehicleID uuid.UUID) ([]*queries.ServiceView, error)
}

func (s *stubVehicleQueries) GetVehicle(ctx context.Context, id uuid.UUID) (*queries.VehicleView, error) {
	return s.getVehicle(ctx, id)
}

func (s *stubVehicleQueries) ListVehicles(ctx context.Context, search string, limit, offset int32) (*queries.VehiclePage, error) {
	return s.listVehicles(ctx, search, limit, offset)
}

func (s *stubVehicleQueries) GetCustomer(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	return s.getCustomer(ctx, id)
}

func (s *stubVehicleQueries) ListVehicleServices(ctx context.Context, vehicleID uuid.UUID) ([]*queries.ServiceView, error) {
	return s.listVehicleServices(ctx, vehicleID)
}

type RouterSuite struct {
	suite.Suite
	warrantyCommands *stubWarrantyCommands
	vehicleCommands  *stubVehicleCommands
	serviceCommands  *stubServiceCommands
	warrantyQueries  *stubWarrantyQueries
	vehicleQueries   *stubVehicleQueries
	actorRole        string
	engine           *gin.Engine
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.warrantyCommands = &stubWarrantyCommands{}
	s.vehicleCommands = &stubVehicleCommands{}
	s.serviceCommands = &stubServiceCommands{}
	s.warrantyQueries = &stubWarrantyQueries{}
	s.vehicleQueries = &stubVehicleQueries{}
	s.actorRole = "staff"

	handlers := Handlers{
		WarrantyConfig: api.NewWarrantyConfigHandler(s.warrantyCommands, s.warrantyQueries),
		Warranty:       api.NewWarrantyHandler(s.warrantyQueries),
		Vehicle:        api.NewVehicleHandler(s.vehicleCommands, s.vehicleQueries),
		Service:        api.NewServiceHandler(s.serviceCommands, s.vehicleQueries),
		Customer:       api.NewCustomerHandler(s.vehicleQueries),
	}
	actor := func(c *gin.Context) {
		c.Set("actor_id", uuid.New())
		c.Set("actor_role", s.actorRole)
		c.Next()
	}
	s.engine = NewRouter(config.NewTestConfig(), handlers, actor)
}

func (s *RouterSuite) request(method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func (s *RouterSuite) TestHealth() {
	rec := s.request(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterSuite) TestListComponents() {
	s.warrantyQueries.listComponents = func(context.Context) ([]queries.ComponentView, error) {
		return []queries.ComponentView{
			{ID: uuid.New(), Name: "Engine", Category: "powertrain"},
			{ID: uuid.New(), Name: "Car Paint", Category: "exterior"},
		}, nil
	}

	rec := s.request(http.MethodGet, "/api/warranty-config/components", "")
	s.Equal(http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(s.T(), body, 2)
	s.Equal("Engine", body[0]["name"])
}

func (s *RouterSuite) TestUpdateModelConfigRequiresAdmin() {
	rec := s.request(http.MethodPut, "/api/warranty-config/models/"+uuid.NewString(), `{}`)
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *RouterSuite) TestUpdateModelConfigValidBody() {
	s.actorRole = "admin"

	modelID := uuid.New()
	s.warrantyCommands.updateModelConfig = func(_ context.Context, gotModel uuid.UUID, cfg warranty.ModelConfig) (*queries.ModelConfigView, error) {
		s.Equal(modelID, gotModel)
		s.True(cfg.HasHybridBattery)
		terms, ok := cfg.TermsFor(warranty.ComponentEngine)
		s.True(ok)
		s.Equal(uint(3), terms.Years)
		return &queries.ModelConfigView{ModelID: gotModel, ModelName: "Prius", HasHybridBattery: true}, nil
	}

	body := `{
		"has_hybrid_battery": true,
		"engine": {"years": 3, "km": 50000, "applicable": true},
		"car_paint": {"years": 2, "km": 30000, "applicable": true},
		"transmission": {"years": 3, "km": 50000, "applicable": true},
		"electrical_system": {"years": 1, "km": 20000, "applicable": true},
		"battery_hybrid": {"years": 5, "km": 80000, "applicable": true}
	}`
	rec := s.request(http.MethodPut, "/api/warranty-config/models/"+modelID.String(), body)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterSuite) TestUpdateModelConfigInvalidModelID() {
	rec := s.request(http.MethodPut, "/api/warranty-config/models/not-a-uuid", `{}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestAutoAssignConflict() {
	s.actorRole = "admin"
	s.warrantyCommands.autoAssign = func(context.Context, uuid.UUID, uuid.UUID, time.Time) ([]*queries.PartView, error) {
		return nil, errs.ErrWarrantyAlreadyAssigned
	}

	body := `{"vehicle_id": "` + uuid.NewString() + `", "vehicle_model_id": "` + uuid.NewString() + `", "purchase_date": "2024-01-15"}`
	rec := s.request(http.MethodPost, "/api/warranty-config/assign", body)
	s.Equal(http.StatusConflict, rec.Code)

	var resp map[string]string
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("WARRANTY_ALREADY_ASSIGNED", resp["code"])
}

func (s *RouterSuite) TestAutoAssignBadDate() {
	s.actorRole = "admin"
	body := `{"vehicle_id": "` + uuid.NewString() + `", "vehicle_model_id": "` + uuid.NewString() + `", "purchase_date": "15/01/2024"}`
	rec := s.request(http.MethodPost, "/api/warranty-config/assign", body)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestGetVehicleNotFound() {
	s.vehicleQueries.getVehicle = func(context.Context, uuid.UUID) (*queries.VehicleView, error) {
		return nil, errs.ErrVehicleNotFound
	}
	rec := s.request(http.MethodGet, "/api/vehicles/"+uuid.NewString(), "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterSuite) TestGetVehicleInvalidID() {
	rec := s.request(http.MethodGet, "/api/vehicles/xyz", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestWarrantyStatusReport() {
	vehicleID := uuid.New()
	end := time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC)
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	s.warrantyQueries.getVehicleReport = func(_ context.Context, id uuid.UUID) (*queries.VehicleWarrantyReport, error) {
		s.Equal(vehicleID, id)
		return &queries.VehicleWarrantyReport{
			Vehicle: queries.VehicleView{ID: id, PlateNumber: "ABC-1234", CurrentKM: 45000},
			Components: []queries.ComponentStatusView{
				{ComponentName: "Engine", Category: "powertrain", Status: "expiring_soon",
					StartDate: &start, EndDate: &end, KMLimit: 50000,
					RemainingDays: 26, RemainingYears: 0.1, RemainingKM: 5000, ProgressPercent: 90},
				{ComponentName: "Battery Hybrid", Category: "electrical", Status: "not_applicable"},
			},
			Usage: queries.UsageSummaryView{ServicesUsed: 2, TotalCovered: 700},
		}, nil
	}

	rec := s.request(http.MethodGet, "/api/vehicles/"+vehicleID.String()+"/warranty-status", "")
	s.Equal(http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &body))
	components := body["components"].([]any)
	require.Len(s.T(), components, 2)

	engine := components[0].(map[string]any)
	s.Equal("expiring_soon", engine["status"])
	s.Equal("2027-01-15", engine["end_date"])

	battery := components[1].(map[string]any)
	s.Equal("not_applicable", battery["status"])
	_, hasEnd := battery["end_date"]
	assert.False(s.T(), hasEnd)
}

func (s *RouterSuite) TestUpdateOdometerRollback() {
	s.vehicleCommands.updateOdometer = func(context.Context, uuid.UUID, uint) (*queries.VehicleView, error) {
		return nil, errs.Mark(errs.New("odometer reading cannot decrease"), errs.ErrDomainValidation)
	}
	rec := s.request(http.MethodPatch, "/api/vehicles/"+uuid.NewString()+"/odometer", `{"current_km": 100}`)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}

func (s *RouterSuite) TestCreateVehicleDuplicatePlate() {
	s.vehicleCommands.createVehicle = func(context.Context, commands.CreateVehicleParams) (*queries.VehicleView, error) {
		return nil, errs.ErrDuplicatePlate
	}
	body := `{"customer_id": "` + uuid.NewString() + `", "plate_number": "ABC-1234"}`
	rec := s.request(http.MethodPost, "/api/vehicles", body)
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *RouterSuite) TestCreateServiceBadDate() {
	body := `{"vehicle_id": "` + uuid.NewString() + `", "service_date": "March 10", "total_amount": 100, "status": "completed"}`
	rec := s.request(http.MethodPost, "/api/services", body)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestListWarranties() {
	s.warrantyQueries.listWarranties = func(_ context.Context, limit, offset int32) (*queries.WarrantyPage, error) {
		s.Equal(int32(10), limit)
		s.Equal(int32(20), offset)
		return &queries.WarrantyPage{Items: []*queries.VehicleWarrantyReport{}, Total: 0}, nil
	}
	rec := s.request(http.MethodGet, "/api/warranties?limit=10&offset=20", "")
	s.Equal(http.StatusOK, rec.Code)
}
