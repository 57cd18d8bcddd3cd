package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/cafeshop/internal/middleware"
	"github.com/example/cafeshop/internal/services"
	"github.com/example/cafeshop/internal/store"
	"github.com/example/cafeshop/internal/utils"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	orders   *store.OrderStore
	telegram *services.TelegramService
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(orders *store.OrderStore, telegram *services.TelegramService) *OrderHandler {
	return &OrderHandler{orders: orders, telegram: telegram}
}

// currentUserID resolves the caller's user ID from the auth claims.
func currentUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	claims, ok := middleware.GetCurrentClaims(c)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// CreateOrder places a new order for the authenticated user.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req utils.OrderInput
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := utils.ValidateOrder(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  errs,
		})
	}

	orderID, err := h.orders.CreateOrder(userID, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmptyOrder), errors.Is(err, store.ErrTotalMismatch):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		case errors.Is(err, store.ErrNotFound):
			return fiber.NewError(fiber.StatusBadRequest, "unknown menu item in order")
		default:
			log.Printf("order creation failed for user %s: %v", userID, err)
			return fiber.NewError(fiber.StatusInternalServerError, "error creating order")
		}
	}

	if h.telegram != nil {
		go h.notifyNewOrder(orderID)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Order created successfully",
		"data":    fiber.Map{"orderId": orderID},
	})
}

type updateStatusRequest struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// UpdateStatus moves an order to a new status. Admin route.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.OrderID == "" || req.Status == "" {
		return fiber.NewError(fiber.StatusBadRequest, "order ID and status are required")
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid order ID")
	}

	updated, err := h.orders.UpdateOrderStatus(orderID, req.Status)
	if err != nil {
		if errors.Is(err, store.ErrInvalidStatus) || errors.Is(err, store.ErrInvalidTransition) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}
	if !updated {
		return fiber.NewError(fiber.StatusNotFound, "order not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Order status updated successfully",
	})
}

// ListMyOrders returns the authenticated user's orders, newest first.
func (h *OrderHandler) ListMyOrders(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	pg := utils.ParsePagination(c)
	orders, pageInfo, err := h.orders.GetUserOrders(userID, pg)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       orders,
		"pagination": pageInfo,
	})
}

// ListAllOrders returns every user's orders with owner identity. Admin route.
func (h *OrderHandler) ListAllOrders(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	orders, pageInfo, err := h.orders.GetAllOrders(pg)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       orders,
		"pagination": pageInfo,
	})
}

// GetMyOrder returns one of the caller's own orders with its line items.
// Foreign orders come back as not found.
func (h *OrderHandler) GetMyOrder(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	orderID, err := uuid.Parse(c.Params("orderId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid order ID")
	}

	details, err := h.orders.GetOrderDetails(orderID, &userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": details})
}

// GetOrderDetails returns any order with its line items. Admin route.
func (h *OrderHandler) GetOrderDetails(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("orderId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid order ID")
	}

	details, err := h.orders.GetOrderDetails(orderID, nil)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": details})
}

// notifyNewOrder pushes a Telegram message to the admin chat. Failures are
// logged only; order placement never depends on the notification.
func (h *OrderHandler) notifyNewOrder(orderID uuid.UUID) {
	details, err := h.orders.GetOrderDetails(orderID, nil)
	if err != nil {
		log.Printf("failed to load order %s for notification: %v", orderID, err)
		return
	}

	notification := services.OrderNotification{
		OrderID:     details.ID.String(),
		Status:      details.Status,
		TotalAmount: details.TotalAmount,
		Address:     details.DeliveryAddress,
		Phone:       details.Phone,
		UserName:    details.UserName,
		UserEmail:   details.UserEmail,
	}
	for _, item := range details.Items {
		notification.Items = append(notification.Items, services.OrderItemNotification{
			Name:      item.ItemName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	if err := h.telegram.NotifyNewOrder(notification); err != nil {
		log.Printf("telegram notification failed for order %s: %v", orderID, err)
	}
}
