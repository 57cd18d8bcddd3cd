package store

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/cafeshop/internal/models"
	"github.com/example/cafeshop/internal/utils"
)

// MenuStore persists the menu catalog.
type MenuStore struct {
	db *gorm.DB
}

// NewMenuStore constructs a MenuStore over an injected connection handle.
func NewMenuStore(db *gorm.DB) *MenuStore {
	return &MenuStore{db: db}
}

// AddItems bulk-inserts menu items and returns the inserted count. Types are
// stored lowercased so grouping stays case-insensitive.
func (s *MenuStore) AddItems(inputs []utils.MenuItemInput) (int, error) {
	items := make([]models.MenuItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, models.MenuItem{
			Name:        in.Name,
			Type:        strings.ToLower(in.Type),
			Price:       in.Price,
			Description: in.Description,
			ImageURL:    in.ImageURL,
			IsAvailable: true,
			Visibility:  true,
		})
	}

	if err := s.db.Create(&items).Error; err != nil {
		return 0, err
	}
	return len(items), nil
}

// UpdateResult reports the outcome of one item inside a batch update.
type UpdateResult struct {
	ID      string `json:"id"`
	Updated bool   `json:"updated"`
	Error   string `json:"error,omitempty"`
}

// UpdateItems applies each update independently. One failing item does not
// block the others; the batch is deliberately non-atomic and the result slice
// reports per-id success or error.
func (s *MenuStore) UpdateItems(inputs []utils.MenuItemInput) []UpdateResult {
	results := make([]UpdateResult, 0, len(inputs))

	for _, in := range inputs {
		id, err := uuid.Parse(in.ID)
		if err != nil {
			results = append(results, UpdateResult{ID: in.ID, Error: "invalid id"})
			continue
		}

		available := true
		if in.IsAvailable != nil {
			available = *in.IsAvailable
		}

		res := s.db.Model(&models.MenuItem{}).Where("id = ?", id).Updates(map[string]interface{}{
			"name":         in.Name,
			"type":         strings.ToLower(in.Type),
			"price":        in.Price,
			"description":  in.Description,
			"image_url":    in.ImageURL,
			"is_available": available,
		})
		if res.Error != nil {
			results = append(results, UpdateResult{ID: in.ID, Error: res.Error.Error()})
			continue
		}

		results = append(results, UpdateResult{ID: in.ID, Updated: res.RowsAffected > 0})
	}

	return results
}

// DeleteItems soft-deletes a menu item by flipping is_available off. The row
// is never removed; existing order items keep a valid reference. Returns the
// number of affected rows.
func (s *MenuStore) DeleteItems(id uuid.UUID) (int64, error) {
	res := s.db.Model(&models.MenuItem{}).Where("id = ?", id).
		Update("is_available", false)
	return res.RowsAffected, res.Error
}

// GetAllItems returns available items grouped by lowercase type, each group
// ordered by name.
func (s *MenuStore) GetAllItems() (map[string][]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.Where("is_available = ?", true).
		Order("type, name").Find(&items).Error; err != nil {
		return nil, err
	}

	grouped := make(map[string][]models.MenuItem)
	for _, item := range items {
		key := strings.ToLower(item.Type)
		grouped[key] = append(grouped[key], item)
	}
	return grouped, nil
}

// GetItem returns a single menu item by id, or ErrNotFound.
func (s *MenuStore) GetItem(id uuid.UUID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.db.First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
