package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSignup(t *testing.T) {
	valid := SignupInput{
		Name:     "Alice",
		Email:    "a@b.com",
		Phone:    "01712345678",
		Password: "secret1",
	}
	assert.Empty(t, ValidateSignup(valid))

	tests := []struct {
		name   string
		mutate func(*SignupInput)
	}{
		{"short name", func(in *SignupInput) { in.Name = "A" }},
		{"bad email", func(in *SignupInput) { in.Email = "not-an-email" }},
		{"short phone", func(in *SignupInput) { in.Phone = "12345" }},
		{"non-numeric phone", func(in *SignupInput) { in.Phone = "0171234567a" }},
		{"short password", func(in *SignupInput) { in.Password = "12345" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			assert.NotEmpty(t, ValidateSignup(in))
		})
	}
}

func TestValidateMenuItem(t *testing.T) {
	assert.Empty(t, ValidateMenuItem(MenuItemInput{Name: "Latte", Type: "hot", Price: 3.5}))
	// Types are matched case-insensitively.
	assert.Empty(t, ValidateMenuItem(MenuItemInput{Name: "Latte", Type: "Espresso-Based", Price: 3.5}))

	assert.NotEmpty(t, ValidateMenuItem(MenuItemInput{Name: "Latte", Type: "volcanic", Price: 3.5}))
	assert.NotEmpty(t, ValidateMenuItem(MenuItemInput{Name: "L", Type: "hot", Price: 3.5}))
	assert.NotEmpty(t, ValidateMenuItem(MenuItemInput{Name: "Latte", Type: "hot", Price: 0}))
}

func TestValidateOrder(t *testing.T) {
	valid := OrderInput{
		TotalAmount:     7.0,
		DeliveryAddress: "12 Rose Lane",
		Phone:           "01712345678",
		Items: []OrderItemInput{
			{MenuItemID: "id-1", Quantity: 2, UnitPrice: 3.5},
		},
	}
	assert.Empty(t, ValidateOrder(valid))

	noItems := valid
	noItems.Items = nil
	assert.Contains(t, ValidateOrder(noItems), "Order must contain at least one item")

	badItem := valid
	badItem.Items = []OrderItemInput{{MenuItemID: "id-1", Quantity: 0, UnitPrice: 3.5}}
	assert.Contains(t, ValidateOrder(badItem), "Invalid item data at position 1")

	badTotal := valid
	badTotal.TotalAmount = 0
	assert.Contains(t, ValidateOrder(badTotal), "Invalid total amount")

	noAddress := valid
	noAddress.DeliveryAddress = ""
	assert.Contains(t, ValidateOrder(noAddress), "Delivery address is required")
}
