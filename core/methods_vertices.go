// File: methods_vertices.go
// Role: Vertex queries and coordinate assignment.
//
// Determinism:
//   - Vertices() returns vertices in index order.
//
// Concurrency:
//   - Coordinates are written and read under mu.
package core

import "fmt"

// checkIndex reports ErrIndexOutOfRange for indices outside 0..n-1.
func (g *Graph) checkIndex(role string, index int) error {
	if index < 0 || index >= len(g.vertices) {
		return fmt.Errorf("%w: %s index %d is out of range %d", ErrIndexOutOfRange, role, index, len(g.vertices))
	}

	return nil
}

// Vertex returns the vertex at index.
func (g *Graph) Vertex(index int) (Vertex, error) {
	if err := g.checkIndex("vertex", index); err != nil {
		return Vertex{}, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices[index], nil
}

// Vertices returns a copy of all vertices in index order.
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]Vertex(nil), g.vertices...)
}

// SetCoord moves the vertex at index to c. Edges already added keep the
// cost computed when they were built.
func (g *Graph) SetCoord(index int, c Coord) error {
	if err := g.checkIndex("vertex", index); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.vertices[index].Coord = c

	return nil
}
