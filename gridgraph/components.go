package gridgraph

// Components labels the 4-connected regions of passable cells, i.e. cells
// whose cost is strictly below threshold. labels[i] is the region number of
// the cell with row‑major index i, or -1 for an impassable cell; count is the
// number of regions. Regions are numbered in row-major order of their first cell.
//
// To convert an index back to a Cell, use Coordinate(idx).
//
// Time:   O(W·H·4).
// Memory: O(W·H) for labels and the BFS queue.
func (g *CostGrid) Components(threshold int) (labels []int, count int) {
	total := g.width * g.height
	labels = make([]int, total)
	for i := range labels {
		labels[i] = -1
	}

	queue := make([]int, 0, total)
	for i0 := 0; i0 < total; i0++ {
		if g.costs[i0] >= threshold || labels[i0] >= 0 {
			continue
		}
		// BFS to collect region
		queue = append(queue[:0], i0)
		labels[i0] = count
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, d := range cell4Offsets {
				vr, vc := u.Row+d[0], u.Col+d[1]
				if !g.InBounds(vr, vc) {
					continue
				}
				vi := g.index(vr, vc)
				if g.costs[vi] >= threshold || labels[vi] >= 0 {
					continue
				}
				labels[vi] = count
				queue = append(queue, vi)
			}
		}
		count++
	}

	return labels, count
}

// Connected reports whether b can be reached from a by orthogonal moves that
// only enter passable cells (cost < threshold). a itself is never entered, so
// it may be a wall; b must be passable unless a == b. Cells outside the grid
// are never connected.
func (g *CostGrid) Connected(a, b Cell, threshold int) bool {
	if !g.Contains(a) || !g.Contains(b) {
		return false
	}
	if a == b {
		return true
	}
	labels, _ := g.Components(threshold)
	lb := labels[g.index(b.Row, b.Col)]
	if lb < 0 {
		return false
	}
	if labels[g.index(a.Row, a.Col)] == lb {
		return true
	}
	// a is a wall or in another region: any passable neighbor in b's region will do.
	for _, d := range cell4Offsets {
		r, c := a.Row+d[0], a.Col+d[1]
		if g.InBounds(r, c) && labels[g.index(r, c)] == lb {
			return true
		}
	}

	return false
}
