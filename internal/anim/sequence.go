package anim

import "time"

// Sequence plays its children strictly in order. A child's start time
// is pinned when the sequence first delegates to it, so its progress
// begins at 0 no matter how long the sequence has already been running.
type Sequence struct {
	children []Animation
	idx      int
}

// NewSequence returns a Sequence over children. An empty sequence is
// done immediately.
func NewSequence(children ...Animation) *Sequence {
	return &Sequence{children: children}
}

// Tick advances the first not-done child. A child that finishes during
// this call yields to the next one within the same call, so a
// zero-duration child cannot stall the sequence for a scheduler cycle.
// Each child is ticked at most once per call.
func (s *Sequence) Tick(now time.Time) {
	for s.idx < len(s.children) {
		c := s.children[s.idx]
		if c.Done() {
			s.idx++
			continue
		}
		c.Tick(now)
		if !c.Done() {
			return
		}
		s.idx++
	}
}

func (s *Sequence) Done() bool { return s.idx >= len(s.children) }
