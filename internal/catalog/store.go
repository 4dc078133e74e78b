package catalog

import "sync/atomic"

// snapshot is one immutable generation of the catalog. The id index is
// built once at publish time; lookups never touch the slice.
type snapshot struct {
	listings []Listing
	byID     map[string]int
}

// Store publishes catalog snapshots to concurrent readers. A refresh swaps
// in a whole new snapshot; readers holding the previous one keep a
// consistent view. There is no in-place mutation path.
type Store struct {
	current atomic.Pointer[snapshot]
}

func NewStore(listings []Listing) *Store {
	s := &Store{}
	s.Replace(listings)
	return s
}

// Replace atomically publishes a new snapshot built from listings.
func (s *Store) Replace(listings []Listing) {
	byID := make(map[string]int, len(listings))
	for i, l := range listings {
		byID[l.ID] = i
	}
	s.current.Store(&snapshot{listings: listings, byID: byID})
}

// Listings returns the current snapshot. Callers must treat the slice as
// read-only.
func (s *Store) Listings() []Listing {
	return s.current.Load().listings
}

// Get returns the listing with the given id from the current snapshot.
func (s *Store) Get(id string) (Listing, bool) {
	snap := s.current.Load()
	i, ok := snap.byID[id]
	if !ok {
		return Listing{}, false
	}
	return snap.listings[i], true
}

// Len reports the size of the current snapshot.
func (s *Store) Len() int {
	return len(s.current.Load().listings)
}
