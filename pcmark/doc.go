// Package pcmark implements the prize-collecting special-distance mark
// cache (component E): starting from a vertex (extreduce uses the child of
// the candidate edge being added), it walks one and
// two-hop neighborhoods through non-tree vertices and records, for every
// tree vertex reached, the cheapest prize-adjusted special distance back to
// the start. extreduce consults the cache while bounding special distances
// in prize-collecting mode, on top of the plain distdata lookup.
//
// At most one start vertex may be active at a time; MarkFromVertex and
// Unmark must always be paired (SPEC §4.E).
package pcmark
