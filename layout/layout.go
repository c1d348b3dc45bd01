// Package layout assigns planar coordinates to graph vertices.
//
// Positions are owned by the caller, never by core.Graph. A Provider is an
// opaque strategy; the pathfinding code only sees Positions.Lookup.
package layout

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/katalvlaran/netroute/core"
)

// ErrUnknownLayout is returned by Parse for an unrecognised name.
var ErrUnknownLayout = errors.New("layout: unknown layout")

// Point is a planar coordinate.
type Point struct {
	X, Y float64
}

// Positions maps vertex IDs to coordinates. A missing entry means unknown.
type Positions map[string]Point

// Lookup reports the coordinates of id. It matches the shape of the
// A* coordinate lookup, so a Positions value can be passed directly.
func (p Positions) Lookup(id string) (x, y float64, ok bool) {
	pt, ok := p[id]

	return pt.X, pt.Y, ok
}

// Covers reports whether every vertex of g has a position.
func (p Positions) Covers(g *core.Graph) bool {
	for _, id := range g.Vertices() {
		if _, ok := p[id]; !ok {
			return false
		}
	}

	return true
}

// Provider computes positions for every vertex of a graph.
type Provider interface {
	Layout(g *core.Graph) Positions
}

// Circular places vertices evenly on a circle in natural ID order,
// starting at angle 0 and turning counter-clockwise.
type Circular struct {
	Radius float64 // ≤ 0 means 1
}

// Layout implements Provider.
func (c Circular) Layout(g *core.Graph) Positions {
	r := c.Radius
	if r <= 0 {
		r = 1
	}
	ids := g.Vertices()
	pos := make(Positions, len(ids))
	for i, id := range ids {
		a := 2 * math.Pi * float64(i) / float64(len(ids))
		pos[id] = Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}

	return pos
}

// Grid places vertices row-major on a ⌈√n⌉-wide lattice in natural ID order.
// For a generated s×s grid graph each vertex lands on its own lattice cell.
type Grid struct {
	Spacing float64 // ≤ 0 means 1
}

// Layout implements Provider.
func (gr Grid) Layout(g *core.Graph) Positions {
	sp := gr.Spacing
	if sp <= 0 {
		sp = 1
	}
	ids := g.Vertices()
	side := int(math.Ceil(math.Sqrt(float64(len(ids)))))
	pos := make(Positions, len(ids))
	for i, id := range ids {
		pos[id] = Point{X: float64(i%side) * sp, Y: float64(i/side) * sp}
	}

	return pos
}

// Random scatters vertices uniformly over the unit square. The same Seed
// and vertex set always produce the same positions.
type Random struct {
	Seed int64
}

// Layout implements Provider.
func (rl Random) Layout(g *core.Graph) Positions {
	rng := rand.New(rand.NewSource(rl.Seed))
	ids := g.Vertices()
	pos := make(Positions, len(ids))
	for _, id := range ids {
		pos[id] = Point{X: rng.Float64(), Y: rng.Float64()}
	}

	return pos
}

// Names lists the layouts understood by Parse.
func Names() []string { return []string{"circular", "grid", "random"} }

// Parse returns the named provider with default parameters. seed is used by
// the random layout only.
func Parse(name string, seed int64) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "circular", "circle":
		return Circular{}, nil
	case "grid":
		return Grid{}, nil
	case "random":
		return Random{Seed: seed}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
}
