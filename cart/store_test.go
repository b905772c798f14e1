package cart

import (
	"context"
	"testing"

	"github.com/curiokart/CurioKart/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func robotKit() models.Product {
	p := models.Product{Title: "Robot Builder Kit", Price: 149900, InStock: true}
	p.ID = 1
	return p
}

func chemistrySet() models.Product {
	p := models.Product{Title: "Junior Chemistry Set", Price: 89900, InStock: true}
	p.ID = 2
	return p
}

func TestAddMergesExistingLine(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage())

	require.NoError(t, store.Add(ctx, "u1", robotKit(), 1))
	require.NoError(t, store.Add(ctx, "u1", robotKit(), 2))
	require.NoError(t, store.Add(ctx, "u1", chemistrySet(), 1))

	lines, err := store.Lines(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, uint(1), lines[0].ProductID)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, uint(2), lines[1].ProductID)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestAddClampsQuantityToOne(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage())

	require.NoError(t, store.Add(ctx, "u1", robotKit(), 0))

	lines, err := store.Lines(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestSetQuantityFloorsAtOne(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage())
	require.NoError(t, store.Add(ctx, "u1", robotKit(), 1))

	// Decrementing below one floors at one, it never removes the line.
	require.NoError(t, store.SetQuantity(ctx, "u1", 1, 0))

	lines, err := store.Lines(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestSetQuantityUnknownProductIsNoOp(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage())
	require.NoError(t, store.Add(ctx, "u1", robotKit(), 1))

	require.NoError(t, store.SetQuantity(ctx, "u1", 99, 5))

	lines, err := store.Lines(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, uint(1), lines[0].ProductID)
}

func TestRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage())
	require.NoError(t, store.Add(ctx, "u1", robotKit(), 2))
	require.NoError(t, store.Add(ctx, "u1", chemistrySet(), 1))

	require.NoError(t, store.Remove(ctx, "u1", 1))
	lines, err := store.Lines(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, uint(2), lines[0].ProductID)

	require.NoError(t, store.Clear(ctx, "u1"))
	lines, err = store.Lines(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestTotalSumsLines(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage())
	require.NoError(t, store.Add(ctx, "u1", robotKit(), 2))     // 2 x 149900
	require.NoError(t, store.Add(ctx, "u1", chemistrySet(), 1)) // 1 x 89900

	total, err := store.Total(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2*149900+89900), total)
}

func TestCartsArePerUser(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage())
	require.NoError(t, store.Add(ctx, "u1", robotKit(), 1))

	lines, err := store.Lines(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestSubscribersNotifiedOnEveryMutation(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage())

	var notified []string
	unsubscribe := store.Subscribe(func(userID string) {
		notified = append(notified, userID)
	})

	require.NoError(t, store.Add(ctx, "u1", robotKit(), 1))
	require.NoError(t, store.SetQuantity(ctx, "u1", 1, 3))
	require.NoError(t, store.Remove(ctx, "u1", 1))
	assert.Equal(t, []string{"u1", "u1", "u1"}, notified)

	// A no-op mutation must not notify.
	require.NoError(t, store.SetQuantity(ctx, "u1", 99, 2))
	assert.Len(t, notified, 3)

	unsubscribe()
	require.NoError(t, store.Add(ctx, "u1", chemistrySet(), 1))
	assert.Len(t, notified, 3)
}

func TestCorruptedStorageReadsAsEmptyCart(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	store := NewStore(storage)
	require.NoError(t, store.Add(ctx, "u1", robotKit(), 1))

	storage.Corrupt("u1")

	lines, err := store.Lines(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, lines)

	// The cart stays usable after corruption.
	require.NoError(t, store.Add(ctx, "u1", chemistrySet(), 1))
	lines, err = store.Lines(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, uint(2), lines[0].ProductID)
}

func TestSubtotal(t *testing.T) {
	lines := []Line{
		{ProductID: 1, UnitPrice: 10000, Quantity: 2},
		{ProductID: 2, UnitPrice: 25000, Quantity: 1},
	}
	assert.Equal(t, int64(45000), Subtotal(lines))
	assert.Equal(t, int64(0), Subtotal(nil))
}
