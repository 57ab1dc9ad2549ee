package dfs

import (
	"github.com/katalvlaran/evacroute/core"
)

// Chokepoint is an open node whose closure would strand rooms that can
// reach an exit today.
type Chokepoint struct {
	Node core.NodeID
	// Cut lists the rooms that would lose every exit, in creation order.
	Cut []core.NodeID
}

// tally counts exits and regular nodes in a DFS subtree.
type tally struct {
	exits, rooms int
}

func (t tally) stranded() bool { return t.exits == 0 && t.rooms > 0 }

// Chokepoints returns, in creation order, every open node whose closure as
// an obstacle would leave some currently evacuable room with no open path to
// any usable exit. Nodes that are already obstacles are never reported, and
// rooms that are already stranded never appear in a Cut.
//
// It runs one forest DFS over the open subgraph and derives low-links from
// the post-order, so the cost is O(V + E) plus O(V) per chokepoint found.
func Chokepoints(s *core.Snapshot) ([]Chokepoint, error) {
	if s == nil {
		return nil, ErrGraphNil
	}
	res, err := DFS(s, "", WithFullTraversal())
	if err != nil {
		return nil, err
	}

	low := make(map[core.NodeID]int, len(res.Order))
	count := make(map[core.NodeID]tally, len(res.Order))
	children := make(map[core.NodeID][]core.NodeID, len(res.Order))
	for _, id := range res.Order {
		low[id] = res.Enter[id]
	}
	for _, id := range res.Order {
		c := count[id]
		if n, _ := s.Node(id); n.Category == core.Exit {
			c.exits++
		} else {
			c.rooms++
		}
		for _, nb := range s.Neighbors(id) {
			if !res.Visited(nb.ID) || s.IsEdgeBlocked(id, nb.ID) {
				continue
			}
			if res.Parent[nb.ID] == id || res.Parent[id] == nb.ID {
				continue
			}
			low[id] = min(low[id], res.Enter[nb.ID])
		}
		count[id] = c

		if p, ok := res.Parent[id]; ok {
			low[p] = min(low[p], low[id])
			pc := count[p]
			pc.exits += c.exits
			pc.rooms += c.rooms
			count[p] = pc
			children[p] = append(children[p], id)
		}
	}

	var out []Chokepoint
	for _, node := range s.Nodes() {
		if !res.Visited(node.ID) {
			continue
		}
		if cp, ok := chokepoint(s, res, node, low, count, children[node.ID]); ok {
			out = append(out, cp)
		}
	}

	return out, nil
}

// chokepoint checks what closing v would split off. Each child subtree with
// low-link not above v becomes its own group, and the rest of v's component
// stays together. A group with rooms and no exit is cut.
func chokepoint(
	s *core.Snapshot,
	res *Result,
	v core.Node,
	low map[core.NodeID]int,
	count map[core.NodeID]tally,
	kids []core.NodeID,
) (Chokepoint, bool) {
	root := res.Root[v.ID]
	if count[root].exits == 0 {
		return Chokepoint{}, false
	}

	rest := count[root]
	if v.Category == core.Exit {
		rest.exits--
	} else {
		rest.rooms--
	}
	var separated, cut []core.NodeID
	for _, c := range kids {
		if low[c] < res.Enter[v.ID] {
			continue
		}
		separated = append(separated, c)
		rest.exits -= count[c].exits
		rest.rooms -= count[c].rooms
		if count[c].stranded() {
			cut = append(cut, c)
		}
	}
	restCut := rest.stranded()
	if len(cut) == 0 && !restCut {
		return Chokepoint{}, false
	}

	cp := Chokepoint{Node: v.ID}
	for _, n := range s.Nodes() {
		if n.ID == v.ID || n.Category != core.Regular || res.Root[n.ID] != root || !res.Visited(n.ID) {
			continue
		}
		if inAny(res, n.ID, cut) || (restCut && !inAny(res, n.ID, separated)) {
			cp.Cut = append(cp.Cut, n.ID)
		}
	}

	return cp, true
}

func inAny(res *Result, u core.NodeID, roots []core.NodeID) bool {
	for _, r := range roots {
		if res.InSubtree(u, r) {
			return true
		}
	}

	return false
}
