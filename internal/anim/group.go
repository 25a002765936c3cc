package anim

import "time"

// Group plays a set of animations in parallel and finishes when the
// last of them finishes. Children are visited in construction order,
// all with the same now, so both eyes blink as one visual event.
type Group struct {
	children []Animation
}

// NewGroup returns a Group over children. An empty group is done
// immediately.
func NewGroup(children ...Animation) *Group {
	return &Group{children: children}
}

func (g *Group) Tick(now time.Time) {
	for _, c := range g.children {
		if !c.Done() {
			c.Tick(now)
		}
	}
}

func (g *Group) Done() bool {
	for _, c := range g.children {
		if !c.Done() {
			return false
		}
	}
	return true
}
