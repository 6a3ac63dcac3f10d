// Package state implements the domain state managers: runtime
// representations of the player's inventory, witnessed events, visited
// scenes, condition, and settings.
//
// Every manager follows the same contract. Load resets runtime state from
// a transfer shape, skipping empty, duplicate, and unknown-ID entries, and
// clears the dirty flag; Snapshot writes the transfer shape without
// touching the flag, so only a confirmed disk write clears it via
// MarkSaved. Mutators validate IDs against the attached catalog, rejecting
// unknown IDs without side effects; with no catalog attached validation is
// skipped entirely. Numeric values clamp into their legal range, and the
// dirty flag plus the optional change hook fire only when a value actually
// changes.
package state

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
