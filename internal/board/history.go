package board

// RepetitionHistory tracks the Hash128 of every position reached since
// the last irreversible event (a pawn move or a capture), which is
// exactly the window in which a position can recur for the threefold
// rule. Push it after every applied move; Clear it whenever the move
// that was just applied was a pawn move or a capture.
type RepetitionHistory struct {
	hashes []Hash128
}

// NewRepetitionHistory returns an empty history.
func NewRepetitionHistory() *RepetitionHistory {
	return &RepetitionHistory{}
}

// Push records a position's hash as having been reached.
func (h *RepetitionHistory) Push(hash Hash128) {
	h.hashes = append(h.hashes, hash)
}

// Pop removes the most recently pushed hash, mirroring an Undo.
func (h *RepetitionHistory) Pop() {
	if len(h.hashes) == 0 {
		return
	}
	h.hashes = h.hashes[:len(h.hashes)-1]
}

// Clear discards the whole history. Call this after any pawn move or
// capture, since such positions can never recur.
func (h *RepetitionHistory) Clear() {
	h.hashes = h.hashes[:0]
}

// Len returns how many hashes are currently tracked.
func (h *RepetitionHistory) Len() int {
	return len(h.hashes)
}

// Snapshot returns a copy of the currently tracked hashes. A caller
// that is about to make an irreversible change to the history (a
// Clear triggered by a pawn move or capture) can take a Snapshot
// first and later hand it to Restore to undo that change exactly,
// which plain Pop cannot do once a Clear has discarded entries.
func (h *RepetitionHistory) Snapshot() []Hash128 {
	return append([]Hash128(nil), h.hashes...)
}

// Restore replaces the tracked hashes with a previously captured
// Snapshot.
func (h *RepetitionHistory) Restore(snap []Hash128) {
	h.hashes = append([]Hash128(nil), snap...)
}

// Count returns how many times hash has been recorded.
func (h *RepetitionHistory) Count(hash Hash128) int {
	n := 0
	for _, rec := range h.hashes {
		if rec == hash {
			n++
		}
	}
	return n
}

// IsThreefold reports whether hash has occurred three or more times.
func (h *RepetitionHistory) IsThreefold(hash Hash128) bool {
	return h.Count(hash) >= 3
}
