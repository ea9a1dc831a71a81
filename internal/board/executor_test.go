package board

import (
	"errors"
	"testing"
)

func TestApplyUndoRedoRoundTrip(t *testing.T) {
	pos := NewPosition()

	if err := pos.Apply(E2, E4); err != nil {
		t.Fatalf("Apply(e2e4): %v", err)
	}
	if pos.UndoDepth() != 1 {
		t.Fatalf("expected undo depth 1, got %d", pos.UndoDepth())
	}

	if err := pos.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if pos.UndoDepth() != 0 || pos.RedoDepth() != 1 {
		t.Fatalf("expected depths (0,1), got (%d,%d)", pos.UndoDepth(), pos.RedoDepth())
	}

	if err := pos.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if pos.UndoDepth() != 1 || pos.RedoDepth() != 0 {
		t.Fatalf("expected depths (1,0), got (%d,%d)", pos.UndoDepth(), pos.RedoDepth())
	}
}

func TestIllegalMoveRejected(t *testing.T) {
	pos := NewPosition()
	if err := pos.Apply(E2, E5); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("expected ErrIllegalMove, got %v", err)
	}
}

// TestInvariantViolationIsFatal simulates an executor bug (a king
// erased from the board by something other than Apply) and checks
// that checkInvariants catches it, and that once invariantBroken is
// latched every mutating entry point refuses rather than touching the
// board further.
func TestInvariantViolationIsFatal(t *testing.T) {
	pos := NewPosition()
	pos.Pieces[Black][King] = 0

	if err := pos.checkInvariants(); !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("expected ErrInvariantViolation, got %v", err)
	}

	pos.invariantBroken = true

	if err := pos.Apply(E2, E4); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("expected Apply to refuse once invariantBroken, got %v", err)
	}
	if err := pos.ApplyMove(NewMove(E2, E4)); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("expected ApplyMove to refuse once invariantBroken, got %v", err)
	}
	if err := pos.Undo(); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("expected Undo to refuse once invariantBroken, got %v", err)
	}
	if err := pos.Redo(); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("expected Redo to refuse once invariantBroken, got %v", err)
	}
	if err := pos.CompletePromotion(Queen); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("expected CompletePromotion to refuse once invariantBroken, got %v", err)
	}
}
