package ledger_test

import (
	"testing"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutwardRecord(t *testing.T) {
	t.Run("should create record with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		key := createValidKey(t)

		record, err := ledger.NewOutwardRecord(id, 30, key, 3, kernel.UserID(7), time.Now())

		require.NoError(t, err)
		require.NoError(t, record.Validate())
		assert.True(t, record.ID().IsEqual(id))
		assert.Equal(t, kernel.LocationID(30), record.LocationID())
		assert.Equal(t, 3, record.Quantity())
		assert.True(t, record.IsActive())
	})

	t.Run("should reject non positive quantity", func(t *testing.T) {
		record, err := ledger.NewOutwardRecord(
			kernel.NewUUID(), 30, createValidKey(t), 0, kernel.UserID(7), time.Now())

		require.Error(t, err)
		assert.Nil(t, record)
	})
}

func TestNewUnlistedStock(t *testing.T) {
	t.Run("should create row with valid parameters", func(t *testing.T) {
		row, err := ledger.NewUnlistedStock("8901030865278", 30, 2, kernel.UserID(7), time.Now())

		require.NoError(t, err)
		require.NoError(t, row.Validate())
		assert.Equal(t, "8901030865278", row.Barcode())
		assert.Equal(t, kernel.LocationID(30), row.LocationID())
		assert.Equal(t, 2, row.Quantity())
		assert.Equal(t, kernel.UserID(7), row.RecordedBy())
	})

	t.Run("should require a barcode", func(t *testing.T) {
		row, err := ledger.NewUnlistedStock("", 30, 2, kernel.UserID(7), time.Now())

		require.Error(t, err)
		assert.Nil(t, row)
	})

	t.Run("should reject non positive quantity", func(t *testing.T) {
		row, err := ledger.NewUnlistedStock("8901030865278", 30, -1, kernel.UserID(7), time.Now())

		require.Error(t, err)
		assert.Nil(t, row)
	})
}
