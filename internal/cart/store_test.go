package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Leerm14/restaurantmanagement/internal/domain"
	"github.com/Leerm14/restaurantmanagement/internal/storage"
)

func newTestStore(t *testing.T) (*Store, storage.Store) {
	t.Helper()
	mem := storage.NewMemoryStore()
	return NewStore(context.Background(), mem, zap.NewNop()), mem
}

func pho() domain.MenuItem {
	return domain.MenuItem{ID: 1, Name: "Pho Bo", Price: 50000}
}

func springRolls() domain.MenuItem {
	return domain.MenuItem{ID: 2, Name: "Goi Cuon", Price: 30000}
}

func TestAddNewItemStartsAtQuantityOne(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, pho())

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(1), lines[0].ID)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestAddExistingItemIncrementsWithoutNewLine(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, pho())
	s.Add(ctx, pho())

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestLinesKeepInsertionOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, pho())
	s.Add(ctx, springRolls())
	s.Add(ctx, pho())

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].ID)
	assert.Equal(t, int64(2), lines[1].ID)
}

func TestTotals(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, pho())
	s.Add(ctx, pho())
	s.Add(ctx, springRolls())

	assert.Equal(t, 3, s.TotalItems())
	assert.Equal(t, int64(130000), s.TotalPrice())
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, pho())
	s.UpdateQuantity(ctx, 1, 5)

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 5, s.TotalItems())
}

func TestUpdateQuantityBelowOneRemovesLine(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, pho())
	s.UpdateQuantity(ctx, 1, 0)
	assert.Empty(t, s.Lines())

	s.Add(ctx, pho())
	s.UpdateQuantity(ctx, 1, -3)
	assert.Empty(t, s.Lines())
}

func TestUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, pho())
	s.UpdateQuantity(ctx, 99, 4)

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestRemove(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, pho())
	s.Add(ctx, springRolls())
	s.Remove(ctx, 1)

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].ID)

	s.Remove(ctx, 99)
	assert.Len(t, s.Lines(), 1)
}

func TestClear(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, pho())
	s.Clear(ctx)

	assert.Empty(t, s.Lines())
	assert.Equal(t, 0, s.TotalItems())
	assert.Equal(t, int64(0), s.TotalPrice())
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()

	first := NewStore(ctx, mem, zap.NewNop())
	first.Add(ctx, pho())
	first.Add(ctx, pho())
	first.Add(ctx, springRolls())

	second := NewStore(ctx, mem, zap.NewNop())
	lines := second.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Pho Bo", lines[0].Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, int64(130000), second.TotalPrice())
}

func TestCorruptStoredCartResetsEmpty(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()
	require.NoError(t, mem.Set(ctx, storage.KeyCart, []byte("{not json")))

	s := NewStore(ctx, mem, zap.NewNop())
	assert.Empty(t, s.Lines())

	// The store stays usable after discarding the corrupt payload.
	s.Add(ctx, pho())
	assert.Equal(t, 1, s.TotalItems())
}
