// Package astar implements A* search between two vertices of a core.Graph.
//
// The heuristic is pluggable. Euclidean(lookup) measures straight-line
// distance between vertex positions supplied by the caller and falls back
// to 0 when a position is missing, so A* degrades gracefully to Dijkstra.
// For the cost to be optimal the positions must be scaled so that the
// distance between two vertices never exceeds the cheapest path between
// them; with unit-spaced grid positions and weights ≥ 1 this holds.
//
// Negative weights are rejected with ErrNegativeWeight.
package astar
