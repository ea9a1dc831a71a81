package board

// PendingPromotion describes a pawn that has reached the back rank
// and is waiting on a choice of piece to promote to.
type PendingPromotion struct {
	From, To Square
}

// Pending returns the position's outstanding promotion choice, or nil
// if none is pending.
func (p *Position) Pending() *PendingPromotion {
	return p.pending
}

// Apply resolves (from, to) against the position's current legal
// moves and plays whichever one matches, choosing the correctly
// flagged variant (castling, en passant, normal) without the caller
// needing to know which applies. If (from, to) only matches
// promotion moves (a pawn reaching the back rank), Apply does not
// touch the board: it records the pending promotion and returns
// ErrPromotionPending. The caller must resolve it with
// CompletePromotion before the position accepts any further move.
//
// A (from, to) pair matching no legal move returns ErrIllegalMove and
// leaves the position unchanged.
func (p *Position) Apply(from, to Square) error {
	if p.invariantBroken {
		return ErrInvariantViolation
	}
	if p.pending != nil {
		return ErrPromotionPending
	}

	legal := p.GenerateLegalMoves()

	var resolved Move
	found := false
	promotionAvailable := false

	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() {
			promotionAvailable = true
			continue
		}
		resolved = m
		found = true
		break
	}

	if promotionAvailable {
		p.pending = &PendingPromotion{From: from, To: to}
		return ErrPromotionPending
	}
	if !found {
		return ErrIllegalMove
	}

	return p.apply(resolved)
}

// ApplyMove applies a fully-resolved move (as produced by ParseMove or
// read from GenerateLegalMoves) directly, bypassing the (from, to)
// ambiguity resolution Apply performs. Used by callers replaying a
// recorded move list, where the move's flags are already known.
func (p *Position) ApplyMove(m Move) error {
	if p.invariantBroken {
		return ErrInvariantViolation
	}
	if p.pending != nil {
		return ErrPromotionPending
	}
	return p.apply(m)
}

// CompletePromotion resolves a promotion suspended by Apply, placing
// kind on the destination square and pushing the completed move onto
// the undo stack like any other Apply call.
func (p *Position) CompletePromotion(kind PieceType) error {
	if p.invariantBroken {
		return ErrInvariantViolation
	}
	if p.pending == nil {
		return ErrNoPromotionPending
	}
	if kind != Knight && kind != Bishop && kind != Rook && kind != Queen {
		return ErrBadPromotionKind
	}

	pend := *p.pending
	p.pending = nil
	return p.apply(NewPromotion(pend.From, pend.To, kind))
}

// apply performs the actual legality check, mutates the board via
// MakeMove, and records history. It assumes any promotion ambiguity
// has already been resolved.
func (p *Position) apply(m Move) error {
	if p.invariantBroken {
		return ErrInvariantViolation
	}
	if !p.GenerateLegalMoves().Contains(m) {
		return ErrIllegalMove
	}

	undo := p.MakeMove(m)
	if !undo.Valid {
		return ErrIllegalMove
	}

	if err := p.checkInvariants(); err != nil {
		p.invariantBroken = true
		return err
	}

	p.undoStack = append(p.undoStack, Record{Move: m, Undo: undo})
	p.redoStack = p.redoStack[:0]
	return nil
}

// Undo reverses the most recently applied move, moving it onto the
// redo stack. It fails with ErrNothingToUndo if the undo stack is
// empty or a promotion choice is still pending.
func (p *Position) Undo() error {
	if p.invariantBroken {
		return ErrInvariantViolation
	}
	if p.pending != nil {
		return ErrNothingToUndo
	}
	if len(p.undoStack) == 0 {
		return ErrNothingToUndo
	}

	rec := p.undoStack[len(p.undoStack)-1]
	p.undoStack = p.undoStack[:len(p.undoStack)-1]
	p.UnmakeMove(rec.Move, rec.Undo)

	if err := p.checkInvariants(); err != nil {
		p.invariantBroken = true
		return err
	}

	p.redoStack = append(p.redoStack, rec)
	return nil
}

// Redo replays the most recently undone move. It fails with
// ErrNothingToRedo if the redo stack is empty.
func (p *Position) Redo() error {
	if p.invariantBroken {
		return ErrInvariantViolation
	}
	if p.pending != nil {
		return ErrNothingToRedo
	}
	if len(p.redoStack) == 0 {
		return ErrNothingToRedo
	}

	rec := p.redoStack[len(p.redoStack)-1]
	p.redoStack = p.redoStack[:len(p.redoStack)-1]
	undo := p.MakeMove(rec.Move)

	if err := p.checkInvariants(); err != nil {
		p.invariantBroken = true
		return err
	}

	p.undoStack = append(p.undoStack, Record{Move: rec.Move, Undo: undo})
	return nil
}

// LastMove returns the most recently applied move and whether one
// exists.
func (p *Position) LastMove() (Move, bool) {
	if len(p.undoStack) == 0 {
		return NoMove, false
	}
	return p.undoStack[len(p.undoStack)-1].Move, true
}

// MoveHistory returns the moves currently on the undo stack, oldest
// first: the net surviving sequence of moves that produced this
// position from whatever position was last loaded.
func (p *Position) MoveHistory() []Move {
	moves := make([]Move, len(p.undoStack))
	for i, rec := range p.undoStack {
		moves[i] = rec.Move
	}
	return moves
}

// UndoDepth returns the number of moves that can currently be undone.
func (p *Position) UndoDepth() int {
	return len(p.undoStack)
}

// RedoDepth returns the number of moves that can currently be redone.
func (p *Position) RedoDepth() int {
	return len(p.redoStack)
}
