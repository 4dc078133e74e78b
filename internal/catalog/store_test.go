package catalog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetAndLen(t *testing.T) {
	store := NewStore([]Listing{
		{ID: "house-sale-1", Title: "First"},
		{ID: "house-rent-2", Title: "Second"},
	})

	assert.Equal(t, 2, store.Len())

	l, ok := store.Get("house-rent-2")
	require.True(t, ok)
	assert.Equal(t, "Second", l.Title)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestStore_ReplaceSwapsSnapshot(t *testing.T) {
	store := NewStore([]Listing{{ID: "house-sale-1"}})

	store.Replace([]Listing{{ID: "land-sale-2"}, {ID: "land-sale-3"}})

	assert.Equal(t, 2, store.Len())
	_, ok := store.Get("house-sale-1")
	assert.False(t, ok, "old snapshot entries are gone after replace")
	_, ok = store.Get("land-sale-2")
	assert.True(t, ok)
}

func TestStore_ConcurrentReadsDuringReplace(t *testing.T) {
	store := NewStore([]Listing{{ID: "house-sale-1"}})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				listings := store.Listings()
				assert.NotEmpty(t, listings)
				store.Get(listings[0].ID)
			}
		}()
	}
	for i := 0; i < 100; i++ {
		store.Replace([]Listing{{ID: "house-sale-1"}, {ID: "house-rent-2"}})
	}
	wg.Wait()
}
