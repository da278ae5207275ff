// File: methods_join.go
// Role: JoinCluster, the single reduction step of the lasso engine.
// Atomicity:
//   - Every new weight and branch length is computed and validated before the
//     first mutation; the mutation runs under one write-lock section, so an
//     error leaves the graph untouched and readers never observe a half merge.

package core

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lasso/tree"
)

// JoinCluster replaces members with one freshly minted cluster vertex.
//
// Implementation:
//   - Stage 1: Validate updater, member count (≥2), duplicates, and that every
//     member is registered and live.
//   - Stage 2: Cluster height = u.Compute(NoID, present within-member
//     distances) / 2, or 0 when no pair of members is connected.
//   - Stage 3: Branch length of member m = max(0, height − Height(subtree(m))),
//     so root heights stay additive across any number of merges.
//   - Stage 4: For every remaining live vertex v (ascending), collect the
//     present distances d(v,m) and set d(v,cluster) = u.Compute(v, ds); a
//     vertex with no present distance gets no edge.
//   - Stage 5: Append the join node to the arena, then remove all member edges,
//     retire the members, register the cluster and insert its edges.
//
// Returns:
//   - ID: the new cluster identifier.
//   - tree.Tree: the join node; its children are the members' subtrees in
//     ascending member order.
//
// Errors:
//   - ErrNilUpdater: u == nil.
//   - ErrMalformedInput: fewer than two members, or a repeated member.
//   - ErrUnknownIdentifier: a member was never registered.
//   - ErrInactiveVertex: a member was already merged.
//   - ErrBadWeight: the updater produced a negative or non-finite weight.
//
// Complexity: O(k² + k·V) updater inputs for k members, plus O(Σ deg(m)) removals.
func (g *Graph) JoinCluster(members []ID, u Updater) (ID, tree.Tree, error) {
	if u == nil {
		return NoID, tree.Tree{}, ErrNilUpdater
	}
	if len(members) < 2 {
		return NoID, tree.Tree{}, fmt.Errorf("JoinCluster: %d member(s), need at least 2: %w", len(members), ErrMalformedInput)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Stage 1: validate members.
	sorted := make([]ID, len(members))
	copy(sorted, members)
	sortIDs(sorted)
	inCluster := make(map[ID]struct{}, len(sorted))
	records := make([]*vertex, len(sorted))
	for i, m := range sorted {
		if _, dup := inCluster[m]; dup {
			return NoID, tree.Tree{}, fmt.Errorf("JoinCluster: member %d repeated: %w", m, ErrMalformedInput)
		}
		v, err := g.liveLocked(m)
		if err != nil {
			return NoID, tree.Tree{}, fmt.Errorf("JoinCluster: %w", err)
		}
		inCluster[m] = struct{}{}
		records[i] = v
	}

	// Stage 2: cluster height from within-cluster distances.
	var within []float64
	var w float64
	var ok bool
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if w, ok = g.edges[makePair(sorted[i], sorted[j])]; ok {
				within = append(within, w)
			}
		}
	}
	height := 0.0
	if len(within) > 0 {
		d := u.Compute(NoID, within)
		if !validWeight(d) {
			return NoID, tree.Tree{}, fmt.Errorf("JoinCluster: within-cluster distance %g: %w", d, ErrBadWeight)
		}
		height = d / 2
	}

	// Stage 3: branch lengths.
	children := make([]tree.Tree, len(sorted))
	lengths := make([]float64, len(sorted))
	for i, v := range records {
		children[i] = v.subtree
		lengths[i] = height - v.subtree.Height()
		if lengths[i] < 0 {
			lengths[i] = 0
		}
	}

	// Stage 4: distances from the cluster to every remaining live vertex.
	type newEdge struct {
		to ID
		w  float64
	}
	var fresh []newEdge
	var ds []float64
	for _, v := range g.liveIDsLocked() {
		if _, member := inCluster[v]; member {
			continue
		}
		ds = ds[:0]
		for _, m := range sorted {
			if w, ok = g.edges[makePair(v, m)]; ok {
				ds = append(ds, w)
			}
		}
		if len(ds) == 0 {
			continue
		}
		w = u.Compute(v, append([]float64(nil), ds...))
		if !validWeight(w) {
			return NoID, tree.Tree{}, fmt.Errorf("JoinCluster: distance to %d = %g: %w", v, w, ErrBadWeight)
		}
		if w > 0 {
			fresh = append(fresh, newEdge{to: v, w: w})
		}
	}

	// Stage 5: commit.
	node, err := g.arena.Join(children, lengths)
	if err != nil {
		return NoID, tree.Tree{}, fmt.Errorf("JoinCluster: %w", err)
	}

	for _, m := range sorted {
		for nb := range g.adj[m] {
			g.removeEdgeLocked(m, nb)
		}
		g.vertices[m].live = false
	}

	cluster := g.nextID
	g.nextID++
	g.vertices[cluster] = &vertex{
		label:   g.clusterPrefix + strconv.Itoa(int(cluster)),
		live:    true,
		subtree: node,
	}
	g.adj[cluster] = make(map[ID]struct{}, len(fresh))
	for _, e := range fresh {
		g.setEdgeLocked(cluster, e.to, e.w)
	}

	return cluster, node, nil
}
