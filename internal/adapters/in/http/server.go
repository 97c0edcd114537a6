// Package http exposes the workshop use cases over an echo server. Handlers
// translate request payloads into commands and queries and map the error
// taxonomy onto HTTP statuses.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CommandHandlers bundles the write-side handlers the server dispatches to.
type CommandHandlers struct {
	RegisterCustomer commands.RegisterCustomerCommandHandler
	RegisterEmployee commands.RegisterEmployeeCommandHandler
	UpdateCustomer   commands.UpdateCustomerCommandHandler
	AddVehicle       commands.AddVehicleCommandHandler
	UpdateVehicle    commands.UpdateVehicleCommandHandler
	CreateOrder      commands.CreateOrderCommandHandler
	TransitionOrder  commands.TransitionOrderCommandHandler
	UpdateOrder      commands.UpdateOrderCommandHandler
	SetOrderPrice    commands.SetOrderPriceCommandHandler
	DeleteCustomer   commands.DeleteCustomerCommandHandler
	DeleteVehicle    commands.DeleteVehicleCommandHandler
	DeleteEmployee   commands.DeleteEmployeeCommandHandler
	DeleteOrder      commands.DeleteOrderCommandHandler
}

// QueryHandlers bundles the read-side handlers the server dispatches to.
type QueryHandlers struct {
	ListOrdersByStatus     queries.ListOrdersByStatusQueryHandler
	ListVehiclesByCustomer queries.ListVehiclesByCustomerQueryHandler
	GetOrder               queries.GetOrderQueryHandler
	AuthenticateAccount    queries.AuthenticateAccountQueryHandler
}

// Server wires the workshop use cases to HTTP routes.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
}

// NewServer creates a server over the given handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{commands: commandHandlers, queries: queryHandlers}
}

// RegisterRoutes mounts every route on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/auth/login", s.Login)

	api.POST("/customers", s.RegisterCustomer)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)
	api.GET("/customers/:id/vehicles", s.ListCustomerVehicles)

	api.POST("/employees", s.RegisterEmployee)
	api.DELETE("/employees/:id", s.DeleteEmployee)

	api.POST("/vehicles", s.AddVehicle)
	api.PUT("/vehicles/:chassis", s.UpdateVehicle)
	api.DELETE("/vehicles/:chassis", s.DeleteVehicle)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.PATCH("/orders/:id/status", s.TransitionOrder)
	api.PATCH("/orders/:id/price", s.SetOrderPrice)
	api.DELETE("/orders/:id", s.DeleteOrder)
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeError(ctx echo.Context, err error) error {
	code := statusForError(err)
	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

// statusForError maps the error taxonomy onto HTTP statuses. Anything not
// classified is treated as an internal failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, queries.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrHasDependents),
		errors.Is(err, errs.ErrConflict),
		errors.Is(err, serviceorder.ErrOrderIsFinal),
		errors.Is(err, serviceorder.ErrOrderNotDeletable):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func accountIDParam(ctx echo.Context) (kernel.AccountID, error) {
	return kernel.AccountIDFromString(ctx.Param("id"))
}

func orderIDParam(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	return id, nil
}

func chassisParam(ctx echo.Context) (int64, error) {
	chassis, err := strconv.ParseInt(ctx.Param("chassis"), 10, 64)
	if err != nil || chassis <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("chassis", err)
	}
	return chassis, nil
}

// LoginRequest is the credential payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the authenticated account identity.
type LoginResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	query, err := queries.NewAuthenticateAccountQuery(req.Email, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.queries.AuthenticateAccount.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{ID: result.ID, Name: result.Name, Role: result.Role})
}

// RegisterCustomerRequest is the payload for POST /customers.
type RegisterCustomerRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var req RegisterCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	id, err := kernel.AccountIDFromString(req.ID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRegisterCustomerCommand(id, req.Name, req.Email, req.Password, req.Address, req.Phone)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.RegisterCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateCustomerRequest is the payload for PUT /customers/:id.
type UpdateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UpdateCustomer handles PUT /api/v1/customers/:id.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	id, err := accountIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateCustomerRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerCommand(id, req.Name, req.Email, req.Address, req.Phone)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.UpdateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeleteCustomer handles DELETE /api/v1/customers/:id.
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	id, err := accountIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteCustomerCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// VehicleResponse is the JSON projection of one vehicle.
type VehicleResponse struct {
	Chassis    int64   `json:"chassis"`
	Model      string  `json:"model"`
	Color      string  `json:"color"`
	Year       int     `json:"year"`
	Mileage    float64 `json:"mileage"`
	Price      float64 `json:"price"`
	CustomerID string  `json:"customerId"`
}

// ListCustomerVehicles handles GET /api/v1/customers/:id/vehicles.
func (s *Server) ListCustomerVehicles(ctx echo.Context) error {
	id, err := accountIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListVehiclesByCustomerQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	vehicles, err := s.queries.ListVehiclesByCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		response[i] = VehicleResponse{
			Chassis:    v.Chassis,
			Model:      v.Model,
			Color:      v.Color,
			Year:       v.Year,
			Mileage:    v.Mileage,
			Price:      v.Price,
			CustomerID: v.CustomerID,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterEmployeeRequest is the payload for POST /employees.
type RegisterEmployeeRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterEmployeeResponse carries the generated employee identifier.
type RegisterEmployeeResponse struct {
	ID string `json:"id"`
}

// RegisterEmployee handles POST /api/v1/employees.
func (s *Server) RegisterEmployee(ctx echo.Context) error {
	var req RegisterEmployeeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterEmployeeCommand(req.Name, req.Email, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.RegisterEmployee.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterEmployeeResponse{ID: cmd.EmployeeID().String()})
}

// DeleteEmployee handles DELETE /api/v1/employees/:id.
func (s *Server) DeleteEmployee(ctx echo.Context) error {
	id, err := accountIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteEmployeeCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.DeleteEmployee.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddVehicleRequest is the payload for POST /vehicles.
type AddVehicleRequest struct {
	Chassis    int64   `json:"chassis"`
	Model      string  `json:"model"`
	Color      string  `json:"color"`
	Year       int     `json:"year"`
	Mileage    float64 `json:"mileage"`
	Price      float64 `json:"price"`
	CustomerID string  `json:"customerId"`
}

// AddVehicle handles POST /api/v1/vehicles.
func (s *Server) AddVehicle(ctx echo.Context) error {
	var req AddVehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.AccountIDFromString(req.CustomerID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAddVehicleCommand(
		req.Chassis, req.Model, req.Color, req.Year, req.Mileage, req.Price, customerID,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.AddVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateVehicleRequest is the payload for PUT /vehicles/:chassis.
type UpdateVehicleRequest struct {
	Model   string  `json:"model"`
	Color   string  `json:"color"`
	Year    int     `json:"year"`
	Mileage float64 `json:"mileage"`
	Price   float64 `json:"price"`
}

// UpdateVehicle handles PUT /api/v1/vehicles/:chassis.
func (s *Server) UpdateVehicle(ctx echo.Context) error {
	chassis, err := chassisParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateVehicleRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateVehicleCommand(chassis, req.Model, req.Color, req.Year, req.Mileage, req.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.UpdateVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeleteVehicle handles DELETE /api/v1/vehicles/:chassis.
func (s *Server) DeleteVehicle(ctx echo.Context) error {
	chassis, err := chassisParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteVehicleCommand(chassis)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.DeleteVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrderRequest is the payload for POST /orders.
type CreateOrderRequest struct {
	ServiceType   string  `json:"serviceType"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	PaymentMethod string  `json:"paymentMethod"`
	Chassis       int64   `json:"chassis"`
	AssigneeID    string  `json:"assigneeId"`
}

// CreateOrderResponse carries the assigned order identifier.
type CreateOrderResponse struct {
	ID uint64 `json:"id"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	serviceType, err := serviceorder.ServiceTypeFromString(req.ServiceType)
	if err != nil {
		return writeError(ctx, err)
	}

	paymentMethod, err := serviceorder.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return writeError(ctx, err)
	}

	assigneeID, err := kernel.AccountIDFromString(req.AssigneeID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		serviceType, req.Description, req.Price, paymentMethod, req.Chassis, assigneeID,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID})
}

// OrderResponse is the JSON projection of one service order.
type OrderResponse struct {
	ID             uint64  `json:"id"`
	ServiceType    string  `json:"serviceType"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	Status         string  `json:"status"`
	PaymentMethod  string  `json:"paymentMethod"`
	VehicleChassis int64   `json:"vehicleChassis"`
	VehicleModel   string  `json:"vehicleModel"`
	AssigneeID     string  `json:"assigneeId"`
	AssigneeName   string  `json:"assigneeName"`
	StartedAt      *string `json:"startedAt"`
	CompletedAt    *string `json:"completedAt"`
}

func toOrderResponse(o queries.OrderResponse) OrderResponse {
	resp := OrderResponse{
		ID:             o.ID,
		ServiceType:    o.ServiceType,
		Description:    o.Description,
		Price:          o.Price,
		Status:         o.Status,
		PaymentMethod:  o.PaymentMethod,
		VehicleChassis: o.VehicleChassis,
		VehicleModel:   o.VehicleModel,
		AssigneeID:     o.AssigneeID,
		AssigneeName:   o.AssigneeName,
	}
	if o.StartedAt != nil {
		started := o.StartedAt.Format(time.RFC3339)
		resp.StartedAt = &started
	}
	if o.CompletedAt != nil {
		completed := o.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completed
	}
	return resp
}

// ListOrders handles GET /api/v1/orders?status=PENDING.
func (s *Server) ListOrders(ctx echo.Context) error {
	status, err := serviceorder.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListOrdersByStatusQuery(status)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.queries.ListOrdersByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	order, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(order))
}

// UpdateOrderRequest is the payload for PUT /orders/:id.
type UpdateOrderRequest struct {
	ServiceType   string  `json:"serviceType"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	PaymentMethod string  `json:"paymentMethod"`
}

// UpdateOrder handles PUT /api/v1/orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	serviceType, err := serviceorder.ServiceTypeFromString(req.ServiceType)
	if err != nil {
		return writeError(ctx, err)
	}

	paymentMethod, err := serviceorder.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(id, serviceType, req.Description, req.Price, paymentMethod)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// TransitionOrderRequest is the payload for PATCH /orders/:id/status.
type TransitionOrderRequest struct {
	Status string `json:"status"`
}

// TransitionOrder handles PATCH /api/v1/orders/:id/status.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req TransitionOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	to, err := serviceorder.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(id, to)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.TransitionOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// SetOrderPriceRequest is the payload for PATCH /orders/:id/price.
type SetOrderPriceRequest struct {
	Price float64 `json:"price"`
}

// SetOrderPrice handles PATCH /api/v1/orders/:id/price.
func (s *Server) SetOrderPrice(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req SetOrderPriceRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetOrderPriceCommand(id, req.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.SetOrderPrice.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
