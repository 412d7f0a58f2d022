// Package http exposes the order core over a JSON API.
// It coordinates between HTTP handlers and application use cases,
// translating domain and application errors to status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"appcenar/internal/core/application/usecases/commands"
	"appcenar/internal/core/application/usecases/queries"
	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/core/domain/model/order"
	"appcenar/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for carts, orders and the merchant
// catalog. It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	saveCartHandler      commands.SaveCartCommandHandler
	createOrderHandler   commands.CreateOrderCommandHandler
	assignCourierHandler commands.AssignCourierCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler

	// Query handlers
	getCartHandler         queries.GetCartQueryHandler
	getOrdersHandler       queries.GetOrdersQueryHandler
	getMerchantCatalog     queries.GetMerchantCatalogQueryHandler
	getOrderStatsHandler   queries.GetOrderStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	saveCartHandler commands.SaveCartCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getCartHandler queries.GetCartQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getMerchantCatalog queries.GetMerchantCatalogQueryHandler,
	getOrderStatsHandler queries.GetOrderStatsQueryHandler,
) *Server {
	return &Server{
		saveCartHandler:      saveCartHandler,
		createOrderHandler:   createOrderHandler,
		assignCourierHandler: assignCourierHandler,
		completeOrderHandler: completeOrderHandler,
		getCartHandler:       getCartHandler,
		getOrdersHandler:     getOrdersHandler,
		getMerchantCatalog:   getMerchantCatalog,
		getOrderStatsHandler: getOrderStatsHandler,
	}
}

// RegisterRoutes attaches all handlers to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/carts", s.SaveCart)
	api.GET("/carts/:sessionId", s.GetCart)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/stats", s.GetOrderStats)
	api.POST("/orders/:orderId/assign", s.AssignCourier)
	api.POST("/orders/:orderId/complete", s.CompleteOrder)

	api.GET("/merchants/:merchantId/products", s.GetMerchantProducts)

	e.GET("/health", s.Health)
}

// SaveCart handles POST /api/v1/carts - replaces the session's in-flight cart.
func (s *Server) SaveCart(ctx echo.Context) error {
	var req SaveCartRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	sessionID, err := kernel.UUIDFromString(req.SessionID)
	if err != nil {
		return badRequest(ctx, "Invalid session id")
	}

	merchantID, err := kernel.UUIDFromString(req.MerchantID)
	if err != nil {
		return badRequest(ctx, "Invalid merchant id")
	}

	itemIDs, err := parseItemIDs(req.ItemIDs)
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	cmd, err := commands.NewSaveCartCommand(sessionID, merchantID, itemIDs)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.saveCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetCart handles GET /api/v1/carts/:sessionId - retrieves the session's cart.
func (s *Server) GetCart(ctx echo.Context) error {
	sessionID, err := kernel.UUIDFromString(ctx.Param("sessionId"))
	if err != nil {
		return badRequest(ctx, "Invalid session id")
	}

	query, err := queries.NewGetCartQuery(sessionID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cartResponse, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCartResponse(cartResponse))
}

// CreateOrder handles POST /api/v1/orders - places an order from the submitted cart.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return badRequest(ctx, "Invalid client id")
	}

	merchantID, err := kernel.UUIDFromString(req.MerchantID)
	if err != nil {
		return badRequest(ctx, "Invalid merchant id")
	}

	addressID, err := kernel.UUIDFromString(req.AddressID)
	if err != nil {
		return badRequest(ctx, "Invalid address id")
	}

	itemIDs, err := parseItemIDs(req.ItemIDs)
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), clientID, merchantID, addressID, itemIDs)
	if err != nil {
		return errorResponse(ctx, err)
	}

	placedOrder, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(placedOrder))
}

// AssignCourier handles POST /api/v1/orders/:orderId/assign - dispatches an
// available courier to the order.
func (s *Server) AssignCourier(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewAssignCourierCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.assignCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:orderId/complete - marks the
// order delivered by its assigned courier.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req CompleteOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, courierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - lists orders for one participant.
// The participant is selected with the role and id query parameters, where
// role is one of client, merchant or courier.
func (s *Server) GetOrders(ctx echo.Context) error {
	participantID, err := kernel.UUIDFromString(ctx.QueryParam("id"))
	if err != nil {
		return badRequest(ctx, "Invalid participant id")
	}

	var query queries.GetOrdersQuery
	switch ctx.QueryParam("role") {
	case "client":
		query, err = queries.NewGetClientOrdersQuery(participantID)
	case "merchant":
		query, err = queries.NewGetMerchantOrdersQuery(participantID)
	case "courier":
		query, err = queries.NewGetCourierOrdersQuery(participantID)
	default:
		return badRequest(ctx, "Role must be one of client, merchant, courier")
	}
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderListResponse(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderStats handles GET /api/v1/orders/stats - reports order counts per status.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	stats, err := s.getOrderStatsHandler.Handle(ctx.Request().Context(), queries.NewGetOrderStatsQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatsResponse{
		Pending:    stats.Pending,
		InProgress: stats.InProgress,
		Completed:  stats.Completed,
		Total:      stats.Total(),
	})
}

// GetMerchantProducts handles GET /api/v1/merchants/:merchantId/products -
// lists the merchant's catalog.
func (s *Server) GetMerchantProducts(ctx echo.Context) error {
	merchantID, err := kernel.UUIDFromString(ctx.Param("merchantId"))
	if err != nil {
		return badRequest(ctx, "Invalid merchant id")
	}

	query, err := queries.NewGetMerchantCatalogQuery(merchantID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	products, err := s.getMerchantCatalog.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, ProductResponse{
			ID:         p.ID.String(),
			CategoryID: p.CategoryID.String(),
			Name:       p.Name,
			Price:      p.Price,
			ImageURL:   p.ImageURL,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func parseItemIDs(raw []string) ([]kernel.UUID, error) {
	itemIDs := make([]kernel.UUID, 0, len(raw))
	for _, item := range raw {
		id, err := kernel.UUIDFromString(item)
		if err != nil {
			return nil, err
		}
		itemIDs = append(itemIDs, id)
	}
	return itemIDs, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps application and domain errors to HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, commands.ErrNoCourierAvailable):
		code = http.StatusServiceUnavailable
	case errors.Is(err, commands.ErrNoPendingOrder),
		errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrAlreadyAssigned),
		errors.Is(err, order.ErrAlreadyCompleted),
		errors.Is(err, order.ErrNotAssigned),
		errors.Is(err, order.ErrNotAssignee),
		errors.Is(err, errs.ErrStateConflict):
		code = http.StatusConflict
	case errors.Is(err, commands.ErrAddressNotOwned),
		errors.Is(err, commands.ErrNoProductsResolved),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func toCartResponse(cart queries.GetCartQueryResponse) CartResponse {
	itemIDs := make([]string, 0, len(cart.ItemIDs))
	for _, id := range cart.ItemIDs {
		itemIDs = append(itemIDs, id.String())
	}

	quantities := make(map[string]int, len(cart.Quantities))
	for id, quantity := range cart.Quantities {
		quantities[id.String()] = quantity
	}

	return CartResponse{
		MerchantID: cart.MerchantID.String(),
		ItemIDs:    itemIDs,
		Quantities: quantities,
		CreatedAt:  cart.CreatedAt.Format(time.RFC3339),
	}
}

func toOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID().String(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice().StringFixed(),
			ImageURL:  item.ImageURL(),
		})
	}

	var courierID *string
	if c := o.Courier(); c != nil {
		s := c.String()
		courierID = &s
	}

	return OrderResponse{
		ID:        o.ID().String(),
		ClientID:  o.ClientID().String(),
		CourierID: courierID,
		Status:    o.Status().String(),
		Subtotal:  o.Subtotal().StringFixed(),
		Tax:       o.Tax().StringFixed(),
		Total:     o.Total().StringFixed(),
		CreatedAt: o.CreatedAt().Format(time.RFC3339),
		Items:     items,
	}
}

func toOrderListResponse(o queries.GetOrdersQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			ImageURL:  item.ImageURL,
		})
	}

	var courierID *string
	if o.CourierID != nil {
		s := o.CourierID.String()
		courierID = &s
	}

	return OrderResponse{
		ID:        o.ID.String(),
		ClientID:  o.ClientID.String(),
		CourierID: courierID,
		Status:    o.Status,
		Subtotal:  o.Subtotal,
		Tax:       o.Tax,
		Total:     o.Total,
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
		Items:     items,
	}
}
