package bottleneck

// MarkRootPath walks from vertex up to the tree root, setting the
// bottleneck distance for every ancestor u to the maximum edge cost on the
// path from u down to the lowest degree->=3 descendant on the marked path:
// edges through degree-2 chains accumulate, and a degree->=3 node resets
// the running max. In the prize-collecting variant the accumulator
// subtracts the prize at a non-leaf terminal.
func (t *Tracker) MarkRootPath(vertex string) {
	if t.marked != "" {
		panic(ErrAlreadyMarked.Error())
	}

	root := t.tree.Root()
	if vertex == root {
		t.dist[root] = 0
		t.marked = vertex

		return
	}

	var bottleneck, bottleneckLocal float64
	child := vertex
	current, ok := t.tree.ParentNode(vertex)
	for ok {
		bottleneckLocal = t.chainStep(child, bottleneckLocal)
		if bottleneck < bottleneckLocal {
			bottleneck = bottleneckLocal
		}
		t.dist[current] = bottleneck

		child = current
		current, ok = t.tree.ParentNode(current)
	}

	t.marked = vertex
}

// UnmarkRootPath restores -1 for every vertex MarkRootPath touched.
func (t *Tracker) UnmarkRootPath(vertex string) {
	if t.marked == "" {
		panic(ErrNothingMarked.Error())
	}

	root := t.tree.Root()
	if vertex == root {
		delete(t.dist, root)
	}

	current, ok := t.tree.ParentNode(vertex)
	for ok {
		delete(t.dist, current)
		current, ok = t.tree.ParentNode(current)
	}

	t.marked = ""
}

// GetBottleneckDist walks vUnmarked up until it reaches a vertex whose
// bottleneck distance is already set by the marked path, accumulating the
// same running-max chain rule along the way, and returns
// max(accumulator, dist[ancestor]).
func (t *Tracker) GetBottleneckDist(vUnmarked string) float64 {
	root := t.tree.Root()
	var bottleneck, bottleneckLocal float64
	current := vUnmarked

	if vUnmarked != root {
		for t.get(current) < -0.5 {
			bottleneckLocal = t.chainStep(current, bottleneckLocal)
			if bottleneck < bottleneckLocal {
				bottleneck = bottleneckLocal
			}
			current, _ = t.tree.ParentNode(current)
		}
	}

	if d := t.get(current); bottleneck < d {
		bottleneck = d
	}

	return bottleneck
}

// Marked returns the vertex the currently marked root path starts from, or
// "" if no path is marked.
func (t *Tracker) Marked() string {
	return t.marked
}

// chainStep folds one tree vertex into the running bottleneck accumulator:
// degree-2 vertices accumulate their parent-edge cost (minus any non-leaf
// terminal prize); any other degree resets the accumulator to just that
// edge's cost.
func (t *Tracker) chainStep(v string, acc float64) float64 {
	cost := t.tree.ParentEdgeCost(v)
	if t.tree.TreeDeg(v) == 2 {
		acc += cost
		if t.prizes != nil && t.prizes.IsTerm(v) {
			acc -= t.prizes.Prize(v)
		}

		return acc
	}

	return cost
}
