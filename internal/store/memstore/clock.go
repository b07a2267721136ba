package memstore

import "time"

type nowFunc func() time.Time

func defaultNow() time.Time {
	return time.Now().UTC()
}

// SetNow overrides the clock used for order timestamps. Tests only.
func (s *MemStore) SetNow(fn func() time.Time) {
	s.now = fn
}
