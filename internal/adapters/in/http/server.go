package http

import (
	"errors"
	"net/http"
	"time"

	"purchase/internal/core/application/usecases/commands"
	"purchase/internal/core/application/usecases/queries"
	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/order"
	"purchase/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP API for purchase orders.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	importOrdersHandler      commands.ImportOrdersCommandHandler

	// Query handlers
	getPendingOrdersHandler      queries.GetPendingOrdersQueryHandler
	getOrderNotificationsHandler queries.GetOrderNotificationsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	importOrdersHandler commands.ImportOrdersCommandHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getOrderNotificationsHandler queries.GetOrderNotificationsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		changeOrderStatusHandler:     changeOrderStatusHandler,
		importOrdersHandler:          importOrdersHandler,
		getPendingOrdersHandler:      getPendingOrdersHandler,
		getOrderNotificationsHandler: getOrderNotificationsHandler,
	}
}

// RegisterRoutes attaches the API endpoints to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/orders", s.CreateOrder)
	e.POST("/api/v1/orders/import", s.ImportOrders)
	e.PATCH("/api/v1/orders/:orderId/status", s.ChangeOrderStatus)
	e.GET("/api/v1/orders/pending", s.GetPendingOrders)
	e.GET("/api/v1/orders/:orderId/notifications", s.GetOrderNotifications)
}

// Error is the JSON body returned for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder is the request body for creating a purchase order.
type NewOrder struct {
	BuyerID       string   `json:"buyerId"`
	CourseIDs     []string `json:"courseIds"`
	PaymentMethod string   `json:"paymentMethod"`
	Status        string   `json:"status"`
	PaymentStatus string   `json:"paymentStatus"`
	Notes         string   `json:"notes"`
}

// OrderCreated is the response body for a successfully created order.
type OrderCreated struct {
	ID string `json:"id"`
}

// OrderStatusUpdate is the request body for moving an order to a new status.
type OrderStatusUpdate struct {
	Status string `json:"status"`
}

// ImportedOrder is one entry of a bulk order import request.
type ImportedOrder struct {
	ID            string   `json:"id"`
	BuyerID       string   `json:"buyerId"`
	CourseIDs     []string `json:"courseIds"`
	PaymentMethod string   `json:"paymentMethod"`
	Status        string   `json:"status"`
	Notes         string   `json:"notes"`
}

// PendingOrder is one open order in the backlog listing.
type PendingOrder struct {
	ID          string    `json:"id"`
	BuyerID     string    `json:"buyerId"`
	TotalPrice  float64   `json:"totalPrice"`
	PurchasedAt time.Time `json:"purchasedAt"`
}

// Notification is one notification record in an order's history.
type Notification struct {
	ID      string     `json:"id"`
	UserID  string     `json:"userId"`
	Status  string     `json:"status"`
	Subject string     `json:"subject"`
	Content string     `json:"content"`
	SentAt  *time.Time `json:"sentAt"`
}

// CreateOrder handles POST /api/v1/orders - places a new purchase order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	buyerID, err := kernel.UUIDFromString(newOrder.BuyerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid buyer id: " + newOrder.BuyerID,
		})
	}

	courseIDs, err := parseUUIDs(newOrder.CourseIDs)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid course id: " + err.Error(),
		})
	}

	status := order.Pending
	if newOrder.Status != "" {
		status, err = order.StatusFromString(newOrder.Status)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid status: " + newOrder.Status,
			})
		}
	}

	paymentStatus := order.PaymentPending
	if newOrder.PaymentStatus != "" {
		paymentStatus, err = order.PaymentStatusFromString(newOrder.PaymentStatus)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid payment status: " + newOrder.PaymentStatus,
			})
		}
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		orderID, buyerID, courseIDs, newOrder.PaymentMethod, status, paymentStatus, newOrder.Notes,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: "Failed to create order: " + handleErr.Error(),
		})
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: orderID.String()})
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:orderId/status - moves an
// order to a new lifecycle status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + ctx.Param("orderId"),
		})
	}

	var update OrderStatusUpdate
	if err := ctx.Bind(&update); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.StatusFromString(update.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + update.Status,
		})
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status change: " + err.Error(),
		})
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Order not found: " + orderID.String(),
			})
		}

		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: "Failed to change order status: " + handleErr.Error(),
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ImportOrders handles POST /api/v1/orders/import - bulk-inserts orders.
func (s *Server) ImportOrders(ctx echo.Context) error {
	var imported []ImportedOrder
	if err := ctx.Bind(&imported); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]commands.ImportOrderItem, 0, len(imported))
	for _, entry := range imported {
		item, err := importItemFromRequest(entry)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid import entry: " + err.Error(),
			})
		}

		items = append(items, item)
	}

	cmd, err := commands.NewImportOrdersCommand(items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid import request: " + err.Error(),
		})
	}

	if handleErr := s.importOrdersHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: "Failed to import orders: " + handleErr.Error(),
		})
	}

	return ctx.NoContent(http.StatusAccepted)
}

// GetPendingOrders handles GET /api/v1/orders/pending - lists the open backlog.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	query := queries.NewGetPendingOrdersQuery()

	orders, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve pending orders",
		})
	}

	response := make([]PendingOrder, len(orders))
	for i, pendingOrder := range orders {
		response[i] = PendingOrder{
			ID:          pendingOrder.ID.String(),
			BuyerID:     pendingOrder.BuyerID.String(),
			TotalPrice:  pendingOrder.TotalPrice,
			PurchasedAt: pendingOrder.PurchasedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderNotifications handles GET /api/v1/orders/:orderId/notifications -
// lists an order's notification history.
func (s *Server) GetOrderNotifications(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + ctx.Param("orderId"),
		})
	}

	query, err := queries.NewGetOrderNotificationsQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query: " + err.Error(),
		})
	}

	notifications, err := s.getOrderNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve notifications",
		})
	}

	response := make([]Notification, len(notifications))
	for i, record := range notifications {
		response[i] = Notification{
			ID:      record.ID.String(),
			UserID:  record.UserID.String(),
			Status:  record.Status,
			Subject: record.Subject,
			Content: record.Content,
			SentAt:  record.SentAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func importItemFromRequest(entry ImportedOrder) (commands.ImportOrderItem, error) {
	orderID := kernel.NewUUID()
	if entry.ID != "" {
		parsed, err := kernel.UUIDFromString(entry.ID)
		if err != nil {
			return commands.ImportOrderItem{}, err
		}
		orderID = parsed
	}

	buyerID, err := kernel.UUIDFromString(entry.BuyerID)
	if err != nil {
		return commands.ImportOrderItem{}, err
	}

	courseIDs, err := parseUUIDs(entry.CourseIDs)
	if err != nil {
		return commands.ImportOrderItem{}, err
	}

	status := order.Pending
	if entry.Status != "" {
		status, err = order.StatusFromString(entry.Status)
		if err != nil {
			return commands.ImportOrderItem{}, err
		}
	}

	return commands.NewImportOrderItem(
		orderID, buyerID, courseIDs, entry.PaymentMethod, status, entry.Notes,
	)
}

func parseUUIDs(raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, nil
}
