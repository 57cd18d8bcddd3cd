package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/cafeshop/internal/store"
	"github.com/example/cafeshop/internal/utils"
)

// MenuHandler manages menu catalog endpoints.
type MenuHandler struct {
	menu *store.MenuStore
}

// NewMenuHandler constructs a MenuHandler.
func NewMenuHandler(menu *store.MenuStore) *MenuHandler {
	return &MenuHandler{menu: menu}
}

// parseItems accepts either a single item object or an array of them.
func parseItems(c *fiber.Ctx) ([]utils.MenuItemInput, error) {
	var items []utils.MenuItemInput
	if err := c.BodyParser(&items); err == nil {
		return items, nil
	}

	var single utils.MenuItemInput
	if err := c.BodyParser(&single); err != nil {
		return nil, err
	}
	return []utils.MenuItemInput{single}, nil
}

// AddItems bulk-inserts menu items.
func (h *MenuHandler) AddItems(c *fiber.Ctx) error {
	items, err := parseItems(c)
	if err != nil || len(items) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	validationErrors := make(map[int][]string)
	for i, item := range items {
		if errs := utils.ValidateMenuItem(item); len(errs) > 0 {
			validationErrors[i] = errs
		}
	}
	if len(validationErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  validationErrors,
		})
	}

	count, err := h.menu.AddItems(items)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Successfully added %d menu items", count),
	})
}

// UpdateItems applies a non-atomic batch of item updates and reports per-item
// results.
func (h *MenuHandler) UpdateItems(c *fiber.Ctx) error {
	items, err := parseItems(c)
	if err != nil || len(items) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	validationErrors := make(map[int][]string)
	for i, item := range items {
		if item.ID == "" {
			validationErrors[i] = []string{"Item ID is required"}
			continue
		}
		if errs := utils.ValidateMenuItem(item); len(errs) > 0 {
			validationErrors[i] = errs
		}
	}
	if len(validationErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  validationErrors,
		})
	}

	results := h.menu.UpdateItems(items)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Update operation completed",
		"data":    results,
	})
}

type deleteItemsRequest struct {
	ID string `json:"id"`
}

// DeleteItems soft-deletes a menu item.
func (h *MenuHandler) DeleteItems(c *fiber.Ctx) error {
	var req deleteItemsRequest
	if err := c.BodyParser(&req); err != nil || req.ID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "no item ID provided")
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid item ID")
	}

	affected, err := h.menu.DeleteItems(id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Successfully deleted %d menu items", affected),
	})
}

// GetItems returns the available menu grouped by category.
func (h *MenuHandler) GetItems(c *fiber.Ctx) error {
	items, err := h.menu.GetAllItems()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
	})
}
