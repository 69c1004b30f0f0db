package entities

import "mazeescape/pkg/engine/world"

// MaxPortalEndpoints is the most portal endpoints that may exist at once
const MaxPortalEndpoints = 2

// Portal links two open cells
type Portal struct {
	A world.Position
	B world.Position
}

// NewPortal creates a linked pair
func NewPortal(a, b world.Position) *Portal {
	return &Portal{A: a, B: b}
}

// Partner returns the other end of the portal when pos is one of its endpoints
func (p *Portal) Partner(pos world.Position) (world.Position, bool) {
	switch pos {
	case p.A:
		return p.B, true
	case p.B:
		return p.A, true
	default:
		return pos, false
	}
}

// Endpoints returns both ends of the portal
func (p *Portal) Endpoints() []world.Position {
	return []world.Position{p.A, p.B}
}
