package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/cafeshop/internal/utils"
)

func TestMenuStoreAddAndGroup(t *testing.T) {
	db := newTestDB(t)
	menu := NewMenuStore(db)

	count, err := menu.AddItems([]utils.MenuItemInput{
		{Name: "Latte", Type: "HOT", Price: 3.5},
		{Name: "Americano", Type: "Hot", Price: 2.5},
		{Name: "Cold Brew", Type: "cold", Price: 4.0},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	grouped, err := menu.GetAllItems()
	require.NoError(t, err)
	require.Len(t, grouped, 2)

	hot := grouped["hot"]
	require.Len(t, hot, 2)
	// Groups are ordered by name.
	assert.Equal(t, "Americano", hot[0].Name)
	assert.Equal(t, "Latte", hot[1].Name)
	for _, item := range hot {
		assert.Equal(t, "hot", item.Type)
		assert.True(t, item.IsAvailable)
	}

	require.Len(t, grouped["cold"], 1)
	assert.Equal(t, "Cold Brew", grouped["cold"][0].Name)
}

func TestMenuStoreSoftDelete(t *testing.T) {
	db := newTestDB(t)
	menu := NewMenuStore(db)

	item := seedMenuItem(t, db, "Latte", "hot", 3.5)
	seedMenuItem(t, db, "Mocha", "hot", 4.0)

	affected, err := menu.DeleteItems(item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	grouped, err := menu.GetAllItems()
	require.NoError(t, err)
	require.Len(t, grouped["hot"], 1)
	assert.Equal(t, "Mocha", grouped["hot"][0].Name)

	// The row survives the soft delete.
	kept, err := menu.GetItem(item.ID)
	require.NoError(t, err)
	assert.False(t, kept.IsAvailable)

	affected, err = menu.DeleteItems(uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestMenuStoreUpdateItemsPartialFailure(t *testing.T) {
	db := newTestDB(t)
	menu := NewMenuStore(db)

	item := seedMenuItem(t, db, "Latte", "hot", 3.5)

	results := menu.UpdateItems([]utils.MenuItemInput{
		{ID: item.ID.String(), Name: "Iced Latte", Type: "ICED", Price: 4.0},
		{ID: uuid.New().String(), Name: "Ghost", Type: "hot", Price: 1.0},
		{ID: "not-a-uuid", Name: "Broken", Type: "hot", Price: 1.0},
	})
	require.Len(t, results, 3)

	assert.True(t, results[0].Updated)
	assert.Empty(t, results[0].Error)

	// Unknown id: attempted, zero rows, no error.
	assert.False(t, results[1].Updated)
	assert.Empty(t, results[1].Error)

	// Malformed id fails alone without blocking the batch.
	assert.False(t, results[2].Updated)
	assert.NotEmpty(t, results[2].Error)

	updated, err := menu.GetItem(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Iced Latte", updated.Name)
	assert.Equal(t, "iced", updated.Type)
	assert.Equal(t, 4.0, updated.Price)
}
