package store

import (
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/cafeshop/internal/models"
	"github.com/example/cafeshop/internal/utils"
)

// Tolerance when comparing a declared order total against the sum of
// line-item subtotals.
const totalTolerance = 1e-6

// OrderStore creates and tracks orders. Order creation is the only
// multi-statement write in the system and runs inside a single transaction.
type OrderStore struct {
	db *gorm.DB
}

// NewOrderStore constructs an OrderStore over an injected connection handle.
func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

// CreateOrder atomically inserts an order and all of its line items. Any
// failure, including a declared total that does not match the computed item
// subtotals, rolls the whole transaction back; no partial order is ever
// visible to readers.
func (s *OrderStore) CreateOrder(userID uuid.UUID, in utils.OrderInput) (uuid.UUID, error) {
	if len(in.Items) == 0 {
		return uuid.Nil, ErrEmptyOrder
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 || item.UnitPrice <= 0 {
			return uuid.Nil, ErrEmptyOrder
		}
	}
	if in.TotalAmount <= 0 {
		return uuid.Nil, ErrTotalMismatch
	}

	order := models.Order{
		UserID:              userID,
		TotalAmount:         in.TotalAmount,
		Status:              models.OrderStatusPending,
		DeliveryAddress:     in.DeliveryAddress,
		Phone:               in.Phone,
		SpecialInstructions: in.SpecialInstructions,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		var sum float64
		for _, item := range in.Items {
			menuItemID, err := uuid.Parse(item.MenuItemID)
			if err != nil {
				return ErrNotFound
			}

			subtotal := float64(item.Quantity) * item.UnitPrice
			sum += subtotal

			record := models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: menuItemID,
				Quantity:   item.Quantity,
				UnitPrice:  item.UnitPrice,
				Subtotal:   subtotal,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}

		if math.Abs(sum-in.TotalAmount) > totalTolerance {
			return ErrTotalMismatch
		}

		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return order.ID, nil
}

// transitionSources maps a target status to the states it may legally be
// reached from. Pending is entry-only; completed and cancelled are terminal.
var transitionSources = map[string][]string{
	models.OrderStatusProcessing: {models.OrderStatusPending},
	models.OrderStatusCompleted:  {models.OrderStatusProcessing},
	models.OrderStatusCancelled:  {models.OrderStatusPending, models.OrderStatusProcessing},
}

// UpdateOrderStatus moves an order to the given status. The transition table
// is applied as a guard on the UPDATE itself, so a concurrent or illegal
// change affects zero rows. Returns (false, nil) when the order does not
// exist and ErrInvalidTransition when it exists but the move is illegal.
func (s *OrderStore) UpdateOrderStatus(orderID uuid.UUID, status string) (bool, error) {
	switch status {
	case models.OrderStatusPending, models.OrderStatusProcessing,
		models.OrderStatusCompleted, models.OrderStatusCancelled:
	default:
		return false, ErrInvalidStatus
	}

	sources := transitionSources[status]
	if len(sources) == 0 {
		return false, ErrInvalidTransition
	}

	res := s.db.Model(&models.Order{}).
		Where("id = ? AND status IN ?", orderID, sources).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	var count int64
	if err := s.db.Model(&models.Order{}).Where("id = ?", orderID).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count == 0 {
		return false, nil
	}
	return false, ErrInvalidTransition
}

// OrderRow is an order joined with its owner's display fields and the
// window-function total used for single-pass pagination.
type OrderRow struct {
	models.Order
	UserName   string `json:"user_name,omitempty"`
	UserEmail  string `json:"user_email,omitempty"`
	TotalCount int64  `json:"-"`
}

// GetUserOrders returns one page of a user's orders, newest first. The total
// row count rides along in the same query via COUNT(*) OVER().
func (s *OrderStore) GetUserOrders(userID uuid.UUID, pg utils.Pagination) ([]OrderRow, utils.PageInfo, error) {
	var rows []OrderRow
	err := s.db.Model(&models.Order{}).
		Select("orders.*, COUNT(*) OVER() AS total_count").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Scan(&rows).Error
	if err != nil {
		return nil, utils.PageInfo{}, err
	}

	var total int64
	if len(rows) > 0 {
		total = rows[0].TotalCount
	}
	return rows, pg.PageInfoFor(total), nil
}

// GetAllOrders returns one page of all orders joined with user identity.
// Admin-only by route policy; the store itself is caller-agnostic.
func (s *OrderStore) GetAllOrders(pg utils.Pagination) ([]OrderRow, utils.PageInfo, error) {
	var rows []OrderRow
	err := s.db.Model(&models.Order{}).
		Select("orders.*, users.name AS user_name, users.email AS user_email, COUNT(*) OVER() AS total_count").
		Joins("JOIN users ON users.id = orders.user_id").
		Order("orders.created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Scan(&rows).Error
	if err != nil {
		return nil, utils.PageInfo{}, err
	}

	var total int64
	if len(rows) > 0 {
		total = rows[0].TotalCount
	}
	return rows, pg.PageInfoFor(total), nil
}

// OrderItemRow is a line item joined with menu item display fields.
type OrderItemRow struct {
	models.OrderItem
	ItemName string `json:"item_name"`
	ItemType string `json:"item_type"`
}

// OrderDetails is a full order: the order row with owner identity plus all
// of its line items.
type OrderDetails struct {
	OrderRow
	Items []OrderItemRow `json:"items"`
}

// GetOrderDetails returns an order with its line items. When userID is
// non-nil the ownership check is folded into the query predicate, so an
// order belonging to another user reports ErrNotFound rather than a
// permission error. A nil userID is the admin path and sees any order.
func (s *OrderStore) GetOrderDetails(orderID uuid.UUID, userID *uuid.UUID) (*OrderDetails, error) {
	query := s.db.Model(&models.Order{}).
		Select("orders.*, users.name AS user_name, users.email AS user_email").
		Joins("JOIN users ON users.id = orders.user_id").
		Where("orders.id = ?", orderID)
	if userID != nil {
		query = query.Where("orders.user_id = ?", *userID)
	}

	var rows []OrderRow
	if err := query.Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	var items []OrderItemRow
	err := s.db.Model(&models.OrderItem{}).
		Select("order_items.*, menu_items.name AS item_name, menu_items.type AS item_type").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Where("order_items.order_id = ?", orderID).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}

	return &OrderDetails{OrderRow: rows[0], Items: items}, nil
}
