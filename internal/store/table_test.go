package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-pos/internal/model"
	"github.com/iliyamo/restaurant-pos/internal/store"
)

func TestAssignOrderMarksOccupiedAndRejectsSecond(t *testing.T) {
	s := store.NewTableStore(nil)
	tbl := s.Create(model.Table{Number: 1, Capacity: 4})

	got, err := s.AssignOrder(tbl.ID, "ORD-001")
	require.NoError(t, err)
	assert.Equal(t, model.TableOccupied, got.Status)
	assert.Equal(t, "ORD-001", got.OrderID)

	// Re-assigning the same order is idempotent.
	_, err = s.AssignOrder(tbl.ID, "ORD-001")
	require.NoError(t, err)

	// A second active order is rejected.
	_, err = s.AssignOrder(tbl.ID, "ORD-002")
	assert.ErrorIs(t, err, store.ErrTableBusy)
}

func TestClearOrderMovesToCleaning(t *testing.T) {
	s := store.NewTableStore(nil)
	tbl := s.Create(model.Table{Number: 2, Capacity: 2})
	_, err := s.AssignOrder(tbl.ID, "ORD-001")
	require.NoError(t, err)

	got, err := s.ClearOrder(tbl.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TableCleaning, got.Status)
	assert.Empty(t, got.OrderID)

	// Completing the cycle frees the table again.
	got, err = s.UpdateStatus(tbl.ID, model.TableAvailable)
	require.NoError(t, err)
	assert.Equal(t, model.TableAvailable, got.Status)
}

func TestReserveAndRelease(t *testing.T) {
	s := store.NewTableStore(nil)
	tbl := s.Create(model.Table{Number: 3, Capacity: 6})
	at := time.Date(2025, 7, 4, 19, 30, 0, 0, time.UTC)

	got, err := s.Reserve(tbl.ID, "Moreno", at)
	require.NoError(t, err)
	assert.Equal(t, model.TableReserved, got.Status)
	require.NotNil(t, got.Reservation)
	assert.Equal(t, "Moreno", got.Reservation.Name)
	assert.True(t, got.Reservation.Time.Equal(at))

	// Leaving the reserved state drops the metadata.
	got, err = s.UpdateStatus(tbl.ID, model.TableAvailable)
	require.NoError(t, err)
	assert.Nil(t, got.Reservation)
}

func TestTableNotFound(t *testing.T) {
	s := store.NewTableStore(nil)
	_, err := s.Get("TBL-404")
	assert.ErrorIs(t, err, store.ErrTableNotFound)
	_, err = s.UpdateStatus("TBL-404", model.TableCleaning)
	assert.ErrorIs(t, err, store.ErrTableNotFound)
	assert.ErrorIs(t, s.Delete("TBL-404"), store.ErrTableNotFound)
}
