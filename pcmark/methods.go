package pcmark

import "github.com/stpkit/extreduce/stpgraph"

// MarkFromVertex marks, for every tree vertex reachable from start within
// two hops through non-tree vertices, the cheapest prize-adjusted special
// distance back to start: a direct tree neighbor is marked with its edge
// cost; a non-tree neighbor head is walked one hop further, and any tree
// vertex head2 reached that way is marked with
// max(cost(start,head), cost(head,head2), cost(start,head)+cost(head,head2)-prize(head)).
// Only one start vertex may be active at a time.
func (c *Cache) MarkFromVertex(start string) {
	if c.active {
		panic(ErrAlreadyActive.Error())
	}
	c.active = true
	c.start = start

	visited1 := 0
	for _, e := range c.g.Neighbors(start) {
		if visited1 >= maxVisits {
			break
		}
		visited1++

		head := otherEnd(e, start)
		edgecost := e.Weight

		if c.tree.TreeDeg(head) == 0 {
			visited2 := 0
			for _, e2 := range c.g.Neighbors(head) {
				if visited2 >= maxVisits {
					break
				}
				visited2++

				head2 := otherEnd(e2, head)
				if c.tree.TreeDeg(head2) == 0 || head2 == start {
					continue
				}

				edgecost2 := e2.Weight
				maxEdgeCost := edgecost
				if edgecost2 > maxEdgeCost {
					maxEdgeCost = edgecost2
				}
				dist2 := edgecost + edgecost2 - c.g.Prize(head)
				if maxEdgeCost > dist2 {
					dist2 = maxEdgeCost
				}

				c.markSingle(head2, dist2)
			}
		} else {
			c.markSingle(head, edgecost)
		}
	}
}

// Unmark clears every entry MarkFromVertex(start) recorded.
func (c *Cache) Unmark(start string) {
	if !c.active {
		panic(ErrNotActive.Error())
	}
	if start != c.start {
		panic(ErrWrongStartVertex.Error())
	}

	for _, v := range c.order {
		delete(c.marks, v)
	}
	c.order = c.order[:0]
	c.active = false
	c.start = ""
}

// AdjustSd folds the cache's mark for vertex2, if any, into sd: a marked
// value replaces sd when sd is unknown (sd < -0.5) or the mark is
// strictly cheaper.
func (c *Cache) AdjustSd(sd float64, vertex2 string) float64 {
	mark, ok := c.marks[vertex2]
	if ok && (sd < -0.5 || mark < sd) {
		return mark
	}

	return sd
}

// markSingle records value for entry the first time it is seen, or keeps
// the cheaper of the existing and new value on a repeat hit.
func (c *Cache) markSingle(entry string, value float64) {
	existing, marked := c.marks[entry]
	if !marked {
		c.marks[entry] = value
		c.order = append(c.order, entry)

		return
	}
	if value < existing {
		c.marks[entry] = value
	}
}

// MarkedVertices returns the vertices currently marked by MarkFromVertex, in
// mark order.
func (c *Cache) MarkedVertices() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)

	return out
}

// otherEnd returns the endpoint of e that is not v.
func otherEnd(e *stpgraph.Edge, v string) string {
	if e.From == v {
		return e.To
	}

	return e.From
}
