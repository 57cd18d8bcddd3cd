package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/cafeshop/internal/database"
	"github.com/example/cafeshop/internal/models"
)

// newTestDB opens an in-memory sqlite database with the application schema.
// MaxOpenConns is pinned to 1 so every session sees the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(conn))
	return conn
}

func seedUser(t *testing.T, db *gorm.DB, name, email, phone string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedMenuItem(t *testing.T, db *gorm.DB, name, itemType string, price float64) *models.MenuItem {
	t.Helper()

	item := &models.MenuItem{
		Name:        name,
		Type:        itemType,
		Price:       price,
		IsAvailable: true,
		Visibility:  true,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}
