// Package http exposes the storefront use cases over a REST API built on
// echo. Handlers translate between wire DTOs and commands/queries, and map
// error families to status codes in one place.
package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/customer"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler commands.CreateCustomerCommandHandler
	updateCustomerHandler commands.UpdateCustomerCommandHandler
	createOrderHandler    commands.CreateOrderCommandHandler
	addOrderItemHandler   commands.AddOrderItemCommandHandler
	confirmOrderHandler   commands.ConfirmOrderCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	shipOrderHandler      commands.ShipOrderCommandHandler

	// Query handlers
	getCustomerHandler       queries.GetCustomerQueryHandler
	getAllCustomersHandler   queries.GetAllCustomersQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
}

// NewServer creates an HTTP server wired to the given use case handlers.
func NewServer(
	createCustomerHandler commands.CreateCustomerCommandHandler,
	updateCustomerHandler commands.UpdateCustomerCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	addOrderItemHandler commands.AddOrderItemCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	getCustomerHandler queries.GetCustomerQueryHandler,
	getAllCustomersHandler queries.GetAllCustomersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
) *Server {
	return &Server{
		createCustomerHandler:    createCustomerHandler,
		updateCustomerHandler:    updateCustomerHandler,
		createOrderHandler:       createOrderHandler,
		addOrderItemHandler:      addOrderItemHandler,
		confirmOrderHandler:      confirmOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		shipOrderHandler:         shipOrderHandler,
		getCustomerHandler:       getCustomerHandler,
		getAllCustomersHandler:   getAllCustomersHandler,
		getOrderHandler:          getOrderHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers", s.GetAllCustomers)
	api.GET("/customers/:id", s.GetCustomer)
	api.PUT("/customers/:id", s.UpdateCustomer)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetAllOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/customer/:customerId", s.GetCustomerOrders)
	api.POST("/orders/:id/items", s.AddOrderItem)
	api.POST("/orders/:id/confirm", s.ConfirmOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/ship", s.ShipOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateCustomer handles POST /api/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var request CreateCustomerRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(request.Name, request.Email, request.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, customerFromDomain(created))
}

// UpdateCustomer handles PUT /api/customers/:id.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	var request UpdateCustomerRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerCommand(customerID, request.Name, request.Email, request.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customerFromDomain(updated))
}

// GetCustomer handles GET /api/customers/:id.
func (s *Server) GetCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	query, err := queries.NewGetCustomerQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customerFromQuery(response))
}

// GetAllCustomers handles GET /api/customers.
func (s *Server) GetAllCustomers(ctx echo.Context) error {
	responses, err := s.getAllCustomersHandler.Handle(ctx.Request().Context(), queries.NewGetAllCustomersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	customers := make([]CustomerResponse, 0, len(responses))
	for _, response := range responses {
		customers = append(customers, customerFromQuery(response))
	}

	return ctx.JSON(http.StatusOK, customers)
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	specs := make([]commands.OrderItemSpec, 0, len(request.Items))
	for _, item := range request.Items {
		unitPrice, priceErr := kernel.MoneyFromString(item.UnitPrice)
		if priceErr != nil {
			return respondError(ctx, priceErr)
		}
		specs = append(specs, commands.OrderItemSpec{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   unitPrice,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, specs)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(created))
}

// AddOrderItem handles POST /api/orders/:id/items.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var request OrderItemRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	unitPrice, err := kernel.MoneyFromString(request.UnitPrice)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, request.ProductName, request.Quantity, unitPrice)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.addOrderItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// ConfirmOrder handles POST /api/orders/:id/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// CancelOrder handles POST /api/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// ShipOrder handles POST /api/orders/:id/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewShipOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromQuery(response))
}

// GetAllOrders handles GET /api/orders.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	responses, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromQuery(responses))
}

// GetCustomerOrders handles GET /api/orders/customer/:customerId.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	responses, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromQuery(responses))
}

// respondError renders an error with the status code of its family.
func respondError(ctx echo.Context, err error) error {
	code := statusCodeFor(err)
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// statusCodeFor maps error families to HTTP status codes:
// missing objects to 404, conflicts (duplicate email, stale version) to 409,
// validation and domain rule failures to 400, everything else to 500.
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, customer.ErrEmailAlreadyRegistered),
		errors.Is(err, errs.ErrVersionConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrDomainRuleViolated):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
