package mih

// stampSet implements the preferred dedup discipline from component G: a
// monotonically increasing query epoch stored in an N-sized stamp array.
// A candidate id is "new" for the current query when its stamp does not
// match the current epoch, giving O(1) reset between queries (just bump the
// epoch) and one write per first sighting. touched records the ids marked
// during the current epoch so callers can iterate candidates without a
// linear scan over all N stamps.
type stampSet struct {
	stamps  []uint32
	epoch   uint32
	touched []uint32
}

func newStampSet(n int) *stampSet {
	return &stampSet{stamps: make([]uint32, n)}
}

// reset starts a new query epoch. Stamps are zero-initialized, so epoch 0
// is reserved as "never touched"; reset skips back over it on wraparound
// (after 2^32-1 queries) so an untouched id is never mistaken for one
// marked in the current epoch.
func (s *stampSet) reset() {
	s.epoch++
	if s.epoch == 0 {
		s.epoch = 1
	}
	s.touched = s.touched[:0]
}

// tryMark records id as seen in the current epoch. It returns true the
// first time id is marked during this epoch, false on any repeat — the
// hook a caller uses to verify each candidate at most once per query
// (invariant 9).
func (s *stampSet) tryMark(id uint32) bool {
	if s.stamps[id] == s.epoch {
		return false
	}
	s.stamps[id] = s.epoch
	s.touched = append(s.touched, id)
	return true
}
