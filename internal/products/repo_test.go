package products

import (
	"context"
	"testing"

	"github.com/bengkelpos/backend/pkg/db/models"
	"github.com/bengkelpos/backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupProductsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	productsTable := `
CREATE TABLE IF NOT EXISTS products (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  price NUMERIC NOT NULL,
  category_id INTEGER NOT NULL,
  vehicle_type_id INTEGER NOT NULL,
  image_url TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	movementsTable := `
CREATE TABLE IF NOT EXISTS stock_movements (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  product_id INTEGER NOT NULL,
  quantity_change INTEGER NOT NULL,
  movement_type TEXT NOT NULL,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(productsTable).Error)
	require.NoError(t, db.Exec(movementsTable).Error)

	require.NoError(t, db.Exec(`DELETE FROM stock_movements`).Error)
	require.NoError(t, db.Exec(`DELETE FROM products`).Error)

	return db
}

func TestListWithStockSumsMovements(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	oli := &models.Product{Name: "Oli Mesin", Price: types.AmountFromInt(45000), CategoryID: 1, VehicleTypeID: 1}
	require.NoError(t, repo.CreateWithInitialStock(ctx, oli, 10))

	require.NoError(t, repo.InsertMovement(ctx, &models.StockMovement{
		ProductID:      oli.ID,
		QuantityChange: -3,
		MovementType:   models.MovementTypeSale,
	}))

	kampas := &models.Product{Name: "Kampas Rem", Price: types.AmountFromInt(30000), CategoryID: 1, VehicleTypeID: 1}
	require.NoError(t, repo.CreateWithInitialStock(ctx, kampas, 0))

	rows, err := repo.ListWithStock(ctx, 50, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// name ascending: Kampas Rem before Oli Mesin
	assert.Equal(t, "Kampas Rem", rows[0].Name)
	assert.Zero(t, rows[0].Stock)
	assert.Equal(t, "Oli Mesin", rows[1].Name)
	assert.Equal(t, 7, rows[1].Stock)
}

func TestGetWithStockUnknownProduct(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)

	_, err := repo.GetWithStock(context.Background(), 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateWithInitialStockSkipsZeroMovement(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	product := &models.Product{Name: "Busi", Price: types.AmountFromInt(15000), CategoryID: 1, VehicleTypeID: 1}
	require.NoError(t, repo.CreateWithInitialStock(ctx, product, 0))

	var count int64
	require.NoError(t, db.Model(&models.StockMovement{}).Where("product_id = ?", product.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteRemovesProductAndLedger(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	product := &models.Product{Name: "Busi", Price: types.AmountFromInt(15000), CategoryID: 1, VehicleTypeID: 1}
	require.NoError(t, repo.CreateWithInitialStock(ctx, product, 4))

	rows, err := repo.Delete(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	var movements int64
	require.NoError(t, db.Model(&models.StockMovement{}).Where("product_id = ?", product.ID).Count(&movements).Error)
	assert.Zero(t, movements)

	rows, err = repo.Delete(ctx, product.ID)
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestUpdateReportsMissingRow(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)

	rows, err := repo.Update(context.Background(), &models.Product{ID: 12345, Name: "X"})
	require.NoError(t, err)
	assert.Zero(t, rows)
}
