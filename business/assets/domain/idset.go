package domain

import "math/big"

// IDSet is an immutable set of existing asset ids.
type IDSet struct {
	ids map[string]struct{}
}

// NewIDSet copies ids into a new set. Nil entries are ignored.
func NewIDSet(ids ...*big.Int) IDSet {
	s := IDSet{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		if id == nil {
			continue
		}
		s.ids[id.String()] = struct{}{}
	}
	return s
}

// Contains reports whether id is in the set.
func (s IDSet) Contains(id *big.Int) bool {
	if id == nil || s.ids == nil {
		return false
	}
	_, ok := s.ids[id.String()]
	return ok
}

// Len returns the number of ids.
func (s IDSet) Len() int {
	return len(s.ids)
}
