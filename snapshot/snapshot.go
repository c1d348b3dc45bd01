// Package snapshot reads and writes graph snapshots: a JSON document with
// the node list, the weighted edge list and optional layout positions.
//
//	{
//	  "nodes": ["1", "2", "3"],
//	  "edges": [["1", "2", {"weight": 4}], ["2", "3", {"weight": 1}]],
//	  "positions": {"1": [0.5, 0], "2": [-0.25, 0.43], "3": [-0.25, -0.43]}
//	}
//
// Node IDs may be JSON strings or integers on input and are always written
// as strings. Every document is checked against an embedded JSON Schema
// before it is turned into a graph; any failure is reported as
// ErrMalformedSnapshot and no partial graph is returned.
package snapshot

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/katalvlaran/netroute/core"
	"github.com/katalvlaran/netroute/layout"
)

// ErrMalformedSnapshot wraps every load failure caused by the document.
var ErrMalformedSnapshot = errors.New("snapshot: malformed snapshot")

//go:embed schema.json
var schemaText string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("schema.json", schemaText)
	})

	return schema, schemaErr
}

// Schema returns the JSON Schema text that Load enforces.
func Schema() string { return schemaText }

// LoadOption configures Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	graphOpts []core.GraphOption
}

// WithGraphOptions passes options to core.NewGraph, for example
// core.WithSignedWeights to accept negative weights.
func WithGraphOptions(opts ...core.GraphOption) LoadOption {
	return func(c *loadConfig) { c.graphOpts = append(c.graphOpts, opts...) }
}

// document is the wire shape.
type document struct {
	Nodes     []nodeID              `json:"nodes"`
	Edges     []edge                `json:"edges"`
	Positions map[string][2]float64 `json:"positions"`
}

// nodeID accepts a JSON string or integer.
type nodeID string

func (n *nodeID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = nodeID(s)
		return nil
	}
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("node id %s: %w", b, err)
	}
	*n = nodeID(strconv.FormatInt(v, 10))

	return nil
}

type edgeAttrs struct {
	Weight int64 `json:"weight"`
}

// edge is the [u, v, {"weight": w}] triple.
type edge struct {
	U, V   nodeID
	Weight int64
}

func (e edge) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{string(e.U), string(e.V), edgeAttrs{Weight: e.Weight}})
}

func (e *edge) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return fmt.Errorf("edge has %d items, want 3", len(raw))
	}
	var attrs edgeAttrs
	if err := json.Unmarshal(raw[2], &attrs); err != nil {
		return err
	}
	if err := e.U.UnmarshalJSON(raw[0]); err != nil {
		return err
	}
	if err := e.V.UnmarshalJSON(raw[1]); err != nil {
		return err
	}
	e.Weight = attrs.Weight

	return nil
}

// Save writes g and pos as an indented JSON document. Nodes appear in
// natural order, edges in edge-ID order. Positions of vertices missing from
// g are dropped; a nil pos writes an empty object.
func Save(w io.Writer, g *core.Graph, pos layout.Positions) error {
	if g == nil {
		return errors.New("snapshot: graph is nil")
	}
	doc := document{
		Nodes:     make([]nodeID, 0, g.VertexCount()),
		Edges:     make([]edge, 0, g.EdgeCount()),
		Positions: make(map[string][2]float64, len(pos)),
	}
	for _, id := range g.Vertices() {
		doc.Nodes = append(doc.Nodes, nodeID(id))
		if p, ok := pos[id]; ok {
			doc.Positions[id] = [2]float64{p.X, p.Y}
		}
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, edge{U: nodeID(e.From), V: nodeID(e.To), Weight: e.Weight})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}

	return nil
}

// Load reads a document, validates it against the schema and rebuilds the
// graph. Edge IDs are reassigned in document order. The returned Positions
// is empty, never nil, when the document carries none.
func Load(r io.Reader, opts ...LoadOption) (*core.Graph, layout.Positions, error) {
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("snapshot: read: %w", err)
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	sch, err := compiledSchema()
	if err != nil {
		return nil, nil, fmt.Errorf("snapshot: schema: %w", err)
	}
	if err := sch.Validate(generic); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	g := core.NewGraph(cfg.graphOpts...)
	for _, id := range doc.Nodes {
		if err := g.AddVertex(string(id)); err != nil {
			return nil, nil, fmt.Errorf("%w: node %q: %w", ErrMalformedSnapshot, id, err)
		}
	}
	for i, e := range doc.Edges {
		if _, err := g.AddEdge(string(e.U), string(e.V), e.Weight); err != nil {
			return nil, nil, fmt.Errorf("%w: edge %d (%s-%s): %w", ErrMalformedSnapshot, i, e.U, e.V, err)
		}
	}

	pos := make(layout.Positions, len(doc.Positions))
	for id, p := range doc.Positions {
		if !g.HasVertex(id) {
			return nil, nil, fmt.Errorf("%w: position for unknown node %q", ErrMalformedSnapshot, id)
		}
		pos[id] = layout.Point{X: p[0], Y: p[1]}
	}

	return g, pos, nil
}
