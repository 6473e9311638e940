// Package mldist implements the multi-level distance store (component A):
// a stack of levels, each holding per-slot target arrays of special
// distances between extension-tree leaves.
//
// A Store is built level by level: LevelAddTop pushes an empty level sized
// for up to maxSlots slots of nTargets entries each; each slot is filled via
// EmptySlotSetBase/EmptySlotTargetDists/EmptySlotTargetIDs/
// EmptySlotSetFilled (or discarded via EmptySlotReset) before the level is
// sealed with LevelCloseTop. LevelRemoveTop discards exactly the top level,
// mirroring the stack discipline the rest of the engine follows (SPEC §3,
// §5: state-mutating operations are strictly ordered by the caller, and
// push/pop must nest).
package mldist
