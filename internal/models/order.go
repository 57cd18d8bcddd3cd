package models

import "github.com/google/uuid"

// Order statuses. Legal transitions are pending -> processing -> completed,
// plus cancellation from any non-terminal state.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	BaseModel
	UserID              uuid.UUID   `gorm:"type:uuid;index" json:"user_id"`
	User                *User       `json:"user,omitempty"`
	TotalAmount         float64     `json:"total_amount"`
	Status              string      `gorm:"default:pending" json:"status"`
	DeliveryAddress     string      `json:"delivery_address"`
	Phone               string      `json:"phone"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
	Items               []OrderItem `json:"items,omitempty"`
}

// OrderItem is a line item created only as part of order creation and
// immutable afterwards.
type OrderItem struct {
	BaseModel
	OrderID    uuid.UUID `gorm:"type:uuid;index" json:"order_id"`
	MenuItemID uuid.UUID `gorm:"type:uuid;index" json:"menu_item_id"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unit_price"`
	Subtotal   float64   `json:"subtotal"`
}
