package routing

import (
	"fmt"
	"strings"
)

// Kind names one of the pathfinding algorithms. The set is closed.
type Kind int

const (
	KindBFS Kind = iota
	KindDFS
	KindDijkstra
	KindBellmanFord
	KindAStar
)

var kindTokens = [...]string{
	KindBFS:         "bfs",
	KindDFS:         "dfs",
	KindDijkstra:    "dijkstra",
	KindBellmanFord: "bellman-ford",
	KindAStar:       "astar",
}

var kindLabels = [...]string{
	KindBFS:         "BFS",
	KindDFS:         "DFS",
	KindDijkstra:    "Dijkstra",
	KindBellmanFord: "Bellman-Ford",
	KindAStar:       "A*",
}

// Kinds returns every Kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindBFS, KindDFS, KindDijkstra, KindBellmanFord, KindAStar}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k >= KindBFS && k <= KindAStar }

// String returns the lower-case token used on the command line and in
// config files.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindTokens[k]
}

// Label returns the display name.
func (k Kind) Label() string {
	if !k.Valid() {
		return k.String()
	}

	return kindLabels[k]
}

// ParseKind accepts the String token or the Label, case-insensitively.
// "_" and "-" are interchangeable, and "a-star", "a*" and "bellmanford" are
// accepted as aliases.
func ParseKind(s string) (Kind, error) {
	tok := strings.ToLower(strings.TrimSpace(s))
	tok = strings.ReplaceAll(tok, "_", "-")
	switch tok {
	case "a*", "a-star":
		return KindAStar, nil
	case "bellmanford":
		return KindBellmanFord, nil
	}
	for _, k := range Kinds() {
		if tok == kindTokens[k] || tok == strings.ToLower(kindLabels[k]) {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// ParseKinds splits a comma-separated list. Empty items are skipped;
// "all" expands to Kinds().
func ParseKinds(list string) ([]Kind, error) {
	if strings.EqualFold(strings.TrimSpace(list), "all") {
		return Kinds(), nil
	}
	var out []Kind
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		k, err := ParseKind(part)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}

	return out, nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v

	return nil
}
