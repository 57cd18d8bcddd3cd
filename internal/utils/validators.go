package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{11}$`)
)

// menuItemTypes is the fixed set of menu categories.
var menuItemTypes = map[string]bool{
	"hot":            true,
	"cold":           true,
	"blended":        true,
	"iced":           true,
	"snack":          true,
	"dessert":        true,
	"specialty":      true,
	"seasonal":       true,
	"espresso-based": true,
	"alcoholic":      true,
	"caffeine-free":  true,
	"regional":       true,
	"non-coffee":     true,
	"decaffeinated":  true,
	"spiced":         true,
}

// SignupInput is the expected signup payload.
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// ValidateSignup returns field-level error messages for a signup payload.
func ValidateSignup(in SignupInput) []string {
	var errs []string

	if len(strings.TrimSpace(in.Name)) < 2 {
		errs = append(errs, "Name must be at least 2 characters long")
	}
	if !emailPattern.MatchString(in.Email) {
		errs = append(errs, "Please provide a valid email address")
	}
	if !phonePattern.MatchString(in.Phone) {
		errs = append(errs, "Please provide a valid 11-digit phone number")
	}
	if len(in.Password) < 6 {
		errs = append(errs, "Password must be at least 6 characters long")
	}

	return errs
}

// MenuItemInput is a single menu item in add/update payloads.
type MenuItemInput struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	IsAvailable *bool   `json:"is_available,omitempty"`
}

// ValidateMenuItem returns field-level error messages for a menu item.
func ValidateMenuItem(in MenuItemInput) []string {
	var errs []string

	if len(strings.TrimSpace(in.Name)) < 2 {
		errs = append(errs, "Name must be at least 2 characters long")
	}
	if !menuItemTypes[strings.ToLower(in.Type)] {
		errs = append(errs, "Invalid item type")
	}
	if in.Price <= 0 {
		errs = append(errs, "Price must be a positive number")
	}

	return errs
}

// OrderItemInput is a single line item in an order payload.
type OrderItemInput struct {
	MenuItemID string  `json:"menuItemId"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
}

// OrderInput is the expected order-creation payload.
type OrderInput struct {
	TotalAmount         float64          `json:"totalAmount"`
	DeliveryAddress     string           `json:"deliveryAddress"`
	Phone               string           `json:"phone"`
	SpecialInstructions string           `json:"specialInstructions,omitempty"`
	Items               []OrderItemInput `json:"items"`
}

// ValidateOrder returns field-level error messages for an order payload.
func ValidateOrder(in OrderInput) []string {
	var errs []string

	if len(in.Items) == 0 {
		errs = append(errs, "Order must contain at least one item")
	}
	if in.TotalAmount <= 0 {
		errs = append(errs, "Invalid total amount")
	}
	if in.DeliveryAddress == "" {
		errs = append(errs, "Delivery address is required")
	}
	if !phonePattern.MatchString(in.Phone) {
		errs = append(errs, "Valid phone number is required")
	}

	for i, item := range in.Items {
		if item.MenuItemID == "" || item.Quantity <= 0 || item.UnitPrice <= 0 {
			errs = append(errs, fmt.Sprintf("Invalid item data at position %d", i+1))
		}
	}

	return errs
}
