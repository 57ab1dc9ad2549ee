// Package core defines the central Graph, Node, Edge and Pair types, the
// sentinel errors, and the NewGraph constructor.
//
// All mutating methods take the write side of Graph.mu; queries take the read
// side. See doc.go for the invariants every method preserves.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnknownNode indicates an operation referenced a node that is not in the graph.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrSelfLoop indicates an edge from a node to itself was requested.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates an edge between the pair already exists.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrNegativeDelay indicates a negative node delay.
	ErrNegativeDelay = errors.New("core: node delay must be non-negative")

	// ErrEdgeNotFound indicates no edge joins the requested pair.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadCategory indicates a category other than Regular or Exit.
	ErrBadCategory = errors.New("core: unknown node category")

	// ErrBadLabel indicates an empty node label.
	ErrBadLabel = errors.New("core: node label must not be empty")

	// ErrDuplicateLabel indicates the label is already used by another node.
	ErrDuplicateLabel = errors.New("core: duplicate node label")
)

// DefaultHitRadius is the distance within which FindNodeNear reports a node.
const DefaultHitRadius = 20.0

// NodeID is the opaque, stable identity of a node.
type NodeID string

// Category classifies a node. Exit nodes are the default routing targets.
type Category int

const (
	// Regular is a room or corridor junction.
	Regular Category = iota
	// Exit is an evacuation exit.
	Exit
)

// String returns "regular" or "exit".
func (c Category) String() string {
	switch c {
	case Regular:
		return "regular"
	case Exit:
		return "exit"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// labelPrefix returns the label prefix used for nodes of category c.
func (c Category) labelPrefix() string {
	if c == Exit {
		return "E"
	}

	return "N"
}

// Position is where a renderer draws the node. Routing never reads it.
type Position struct {
	X float64
	Y float64
}

// Node is a room, junction or exit.
type Node struct {
	// ID is the node's stable identity.
	ID NodeID

	// Label is a short human name ("N1", "E2", …), unique within the graph.
	Label string

	// Category is Regular or Exit.
	Category Category

	// Delay is the extra cost charged when a path arrives at this node.
	Delay int64

	// Pos is the renderer position.
	Pos Position
}

// Edge is an undirected connection between two distinct nodes.
// A and B are stored in canonical order (A < B).
type Edge struct {
	A      NodeID
	B      NodeID
	Weight int64
}

// Pair is an unordered pair of node ids stored in canonical order.
// Use MakePair to build one; the zero value is not a valid pair.
type Pair struct {
	A NodeID
	B NodeID
}

// MakePair returns the canonical pair for {a, b}: MakePair(a,b) == MakePair(b,a).
func MakePair(a, b NodeID) Pair {
	if b < a {
		a, b = b, a
	}

	return Pair{A: a, B: b}
}

// Has reports whether id is one of the pair's endpoints.
func (p Pair) Has(id NodeID) bool { return p.A == id || p.B == id }

// Other returns the endpoint opposite id. The result is undefined if !p.Has(id).
func (p Pair) Other(id NodeID) NodeID {
	if p.A == id {
		return p.B
	}

	return p.A
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithIDFn sets the node id generator. Default is SequentialIDFn.
func WithIDFn(fn IDFn) GraphOption {
	return func(g *Graph) {
		if fn != nil {
			g.idFn = fn
		}
	}
}

// WithHitRadius sets the FindNodeNear radius. Non-positive values are ignored.
func WithHitRadius(r float64) GraphOption {
	return func(g *Graph) {
		if r > 0 {
			g.hitRadius = r
		}
	}
}

// Graph is the site graph plus its constraint sets.
//
// adjacency is mirrored: adjacency[a][b] == adjacency[b][a] == weight for every
// edge. order holds node ids in creation order and is the enumeration order of
// Nodes() and Exits().
type Graph struct {
	mu sync.RWMutex

	idFn      IDFn
	hitRadius float64

	seq      uint64           // id counter, never rewinds
	labelSeq map[Category]int // per-category label counter, never rewinds

	nodes     map[NodeID]*Node
	order     []NodeID
	adjacency map[NodeID]map[NodeID]int64
	labels    map[string]NodeID

	blockedNodes map[NodeID]struct{}
	blockedEdges map[Pair]struct{}
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		idFn:         SequentialIDFn,
		hitRadius:    DefaultHitRadius,
		labelSeq:     make(map[Category]int, 2),
		nodes:        make(map[NodeID]*Node),
		adjacency:    make(map[NodeID]map[NodeID]int64),
		labels:       make(map[string]NodeID),
		blockedNodes: make(map[NodeID]struct{}),
		blockedEdges: make(map[Pair]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// unknown wraps ErrUnknownNode with the offending id.
func unknown(id NodeID) error {
	return fmt.Errorf("%w: %q", ErrUnknownNode, id)
}
