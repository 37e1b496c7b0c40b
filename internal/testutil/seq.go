package testutil

// Sequencer stamps trace events with 1, 2, 3, ...
//
// A fresh Sequencer per scenario makes identical scenarios produce identical
// seq values, which golden snapshots rely on. Not safe for concurrent use;
// scenarios execute on a single goroutine.
type Sequencer struct {
	last int64
}

// NewSequencer returns a sequencer whose first Next() is 1.
func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// Next advances and returns the sequence number.
func (s *Sequencer) Next() int64 {
	s.last++
	return s.last
}
