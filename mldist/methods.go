package mldist

// LevelAddTop pushes an empty level with capacity for up to maxSlots slots,
// each slot holding nTargets (id, dist) pairs.
func (s *Store) LevelAddTop(maxSlots, nTargets int) {
	s.levels = append(s.levels, &level{
		maxSlots: maxSlots,
		nTargets: nTargets,
		byBase:   make(map[string]int, maxSlots),
	})
}

// topLevel returns the top level, or nil if the stack is empty.
func (s *Store) topLevel() *level {
	if len(s.levels) == 0 {
		return nil
	}

	return s.levels[len(s.levels)-1]
}

// EmptySlotSetBase binds the next empty slot of the top level to base
// vertex v, allocating its target arrays. Panics if the top level is
// sealed, absent, or already at capacity, or if a slot is already pending
// (EmptySlotReset/EmptySlotSetFilled must be called before starting a new
// one) — these are precondition violations per SPEC §7.
func (s *Store) EmptySlotSetBase(v string) {
	lvl := s.topLevel()
	if lvl == nil {
		panic(ErrNoLevels.Error())
	}
	if lvl.sealed {
		panic(ErrLevelSealed.Error())
	}
	if lvl.pending != nil {
		panic("mldist: a slot is already pending; call EmptySlotSetFilled or EmptySlotReset first")
	}
	if len(lvl.slots) >= lvl.maxSlots {
		panic(ErrSlotCapacityExceeded.Error())
	}
	lvl.pending = &slot{
		base:  v,
		ids:   make([]string, 0, lvl.nTargets),
		dists: make([]float64, 0, lvl.nTargets),
	}
}

// EmptySlotTargetDists returns a mutable view of the pending slot's
// distance array.
func (s *Store) EmptySlotTargetDists() *[]float64 {
	lvl := s.requirePending()

	return &lvl.pending.dists
}

// EmptySlotTargetIDs returns a mutable view of the pending slot's id array.
func (s *Store) EmptySlotTargetIDs() *[]string {
	lvl := s.requirePending()

	return &lvl.pending.ids
}

// EmptySlotSetFilled seals the pending slot, making it addressable by its
// base vertex.
func (s *Store) EmptySlotSetFilled() {
	lvl := s.requirePending()
	lvl.pending.filled = true
	lvl.byBase[lvl.pending.base] = len(lvl.slots)
	lvl.slots = append(lvl.slots, lvl.pending)
	lvl.pending = nil
}

// EmptySlotReset discards the in-progress slot without sealing it.
func (s *Store) EmptySlotReset() {
	lvl := s.requirePending()
	lvl.pending = nil
}

func (s *Store) requirePending() *level {
	lvl := s.topLevel()
	if lvl == nil {
		panic(ErrNoLevels.Error())
	}
	if lvl.pending == nil {
		panic(ErrNoEmptySlot.Error())
	}

	return lvl
}

// LevelCloseTop seals the top level for further slot additions.
func (s *Store) LevelCloseTop() {
	lvl := s.topLevel()
	if lvl == nil {
		panic(ErrNoLevels.Error())
	}
	lvl.sealed = true
}

// LevelRemoveTop discards the top level.
func (s *Store) LevelRemoveTop() {
	if len(s.levels) == 0 {
		panic(ErrNoLevels.Error())
	}
	s.levels = s.levels[:len(s.levels)-1]
}

// TopTargetDist returns the special distance from base to target recorded
// in the top level's slot for base. Returns FarAway if base has no slot, if
// target is not among its recorded targets, or if base == target.
func (s *Store) TopTargetDist(base, target string) float64 {
	if base == target {
		return FarAway
	}
	lvl := s.topLevel()
	if lvl == nil {
		return FarAway
	}
	idx, ok := lvl.byBase[base]
	if !ok {
		return FarAway
	}
	sl := lvl.slots[idx]
	for i, id := range sl.ids {
		if id == target {
			return sl.dists[i]
		}
	}

	return FarAway
}

// TopTargetDists returns the full (ids, dists) target arrays for base's
// slot in the top level, in the order they were filled.
func (s *Store) TopTargetDists(base string) (ids []string, dists []float64, ok bool) {
	lvl := s.topLevel()
	if lvl == nil {
		return nil, nil, false
	}
	idx, found := lvl.byBase[base]
	if !found {
		return nil, nil, false
	}
	sl := lvl.slots[idx]

	return sl.ids, sl.dists, true
}

// LevelNTopTargets returns the nTargets capacity configured for the top
// level.
func (s *Store) LevelNTopTargets() int {
	lvl := s.topLevel()
	if lvl == nil {
		return 0
	}

	return lvl.nTargets
}

// TopLevel returns the 1-based index of the top level (0 if the stack is
// empty), matching the source's "level count so far" semantics.
func (s *Store) TopLevel() int {
	return len(s.levels)
}

// NLevels returns the number of levels currently on the stack.
func (s *Store) NLevels() int {
	return len(s.levels)
}

// LevelNSlots returns the number of filled slots at the given 1-based level
// index.
func (s *Store) LevelNSlots(lvlIdx int) int {
	if lvlIdx < 1 || lvlIdx > len(s.levels) {
		return 0
	}

	return len(s.levels[lvlIdx-1].slots)
}
