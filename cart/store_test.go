package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return NewStore(NewMemoryBackend())
}

func item(id uuid.UUID, qty int) Item {
	return Item{ProductID: id, Title: "Classic Abaya", PriceCents: 7999, Quantity: qty}
}

func TestAddMergesSameProduct(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	productID := uuid.New()

	_, err := store.Add(ctx, GuestOwner, item(productID, 1))
	require.NoError(t, err)
	items, err := store.Add(ctx, GuestOwner, item(productID, 2))
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)

	count, err := store.Count(ctx, GuestOwner)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestNetCountAfterMutations(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	a, b := uuid.New(), uuid.New()

	_, err := store.Add(ctx, GuestOwner, item(a, 2))
	require.NoError(t, err)
	_, err = store.Add(ctx, GuestOwner, item(b, 1))
	require.NoError(t, err)
	_, err = store.SetQuantity(ctx, GuestOwner, a, 5)
	require.NoError(t, err)
	_, err = store.Remove(ctx, GuestOwner, b)
	require.NoError(t, err)

	count, err := store.Count(ctx, GuestOwner)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestSetQuantityBelowOneRemovesLine(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	productID := uuid.New()

	_, err := store.Add(ctx, GuestOwner, item(productID, 2))
	require.NoError(t, err)
	items, err := store.SetQuantity(ctx, GuestOwner, productID, 0)
	require.NoError(t, err)

	assert.Empty(t, items)
}

func TestOwnerPartitionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	userID := uuid.NewString()
	productID := uuid.New()

	_, err := store.Add(ctx, GuestOwner, item(productID, 1))
	require.NoError(t, err)
	_, err = store.Add(ctx, userID, item(productID, 4))
	require.NoError(t, err)

	// Clearing the user's cart leaves the guest cart intact
	require.NoError(t, store.Clear(ctx, userID))

	userItems, err := store.Items(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, userItems)

	guestItems, err := store.Items(ctx, GuestOwner)
	require.NoError(t, err)
	require.Len(t, guestItems, 1)
	assert.Equal(t, 1, guestItems[0].Quantity)
}

func TestCorruptRecordYieldsEmptyCart(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	store := NewStore(backend)

	require.NoError(t, backend.Set(ctx, Key(GuestOwner), []byte("{not json")))

	items, err := store.Items(ctx, GuestOwner)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Shopping continues normally after the corrupt record
	productID := uuid.New()
	items, err = store.Add(ctx, GuestOwner, item(productID, 1))
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestKeyNamespacing(t *testing.T) {
	assert.Equal(t, "lumi_noir_cart_v1_guest", Key(""))
	assert.Equal(t, "lumi_noir_cart_v1_guest", Key(GuestOwner))
	assert.Equal(t, "lumi_noir_cart_v1_abc", Key("abc"))
}

func TestListenersSeeEveryMutation(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	var events []int
	store.Subscribe(func(owner string, items []Item) {
		total := 0
		for _, it := range items {
			total += it.Quantity
		}
		events = append(events, total)
	})

	productID := uuid.New()
	_, err := store.Add(ctx, GuestOwner, item(productID, 2))
	require.NoError(t, err)
	_, err = store.SetQuantity(ctx, GuestOwner, productID, 1)
	require.NoError(t, err)
	require.NoError(t, store.Clear(ctx, GuestOwner))

	assert.Equal(t, []int{2, 1, 0}, events)
}
