// Package game wraps internal/board's rules engine into the
// programmatic surface a host (CLI, GUI, or test) consumes: a single
// Engine value owning the current Position, its repetition history,
// and the undo/redo bookkeeping needed to make both exactly
// reversible. Nothing here computes chess rules itself; it only
// keeps RepetitionHistory in lockstep with board.Position's own
// undo/redo stacks, something board.Position cannot do on its own
// since repetition tracking spans moves the position has forgotten.
package game

import "github.com/hailam/chessplay/internal/board"

// ApplyResult classifies how an Apply or CompletePromotion call
// changed the game.
type ApplyResult int

const (
	// Applied means the move was legal and has been played.
	Applied ApplyResult = iota
	// PromotionRequired means (from, to) only matches promotion
	// moves; the caller must call CompletePromotion next.
	PromotionRequired
)

func (r ApplyResult) String() string {
	if r == PromotionRequired {
		return "promotion required"
	}
	return "applied"
}

// Status reports every terminal/advisory flag a host needs to render
// after a move, undo, or redo.
type Status struct {
	InCheck              bool
	Checkmate            bool
	Stalemate            bool
	Repetition           bool
	FiftyMoveAvailable   bool
	InsufficientMaterial bool
	PromotionPending     bool
}

// Engine is the single owned game value: one Position, its
// repetition history, and the snapshots needed to restore that
// history exactly on Undo (a Clear triggered by a capture or pawn
// move cannot otherwise be reversed, since the discarded entries are
// gone).
type Engine struct {
	pos     *board.Position
	history *board.RepetitionHistory

	// historyUndo[i] holds the repetition history as it stood
	// immediately before the i-th move on pos's undo stack was
	// played. Popping it on Undo restores exactly what Clear may
	// have discarded.
	historyUndo [][]board.Hash128
	// historyRedo mirrors historyUndo for moves that have been
	// undone, so Redo can restore the post-move history without
	// recomputing it.
	historyRedo [][]board.Hash128
}

// NewEngine returns an Engine initialized to the standard starting
// position.
func NewEngine() *Engine {
	e := &Engine{}
	e.NewGame()
	return e
}

// NewGame resets the engine to the standard starting position,
// discarding all history.
func (e *Engine) NewGame() {
	e.pos = board.NewPosition()
	e.resetHistory()
}

// LoadFEN replaces the current game with the position described by
// fen. On a parse error, the engine is left completely unchanged.
func (e *Engine) LoadFEN(fen string) error {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		return err
	}
	if err := pos.Validate(); err != nil {
		return err
	}
	e.pos = pos
	e.resetHistory()
	return nil
}

func (e *Engine) resetHistory() {
	e.history = board.NewRepetitionHistory()
	e.history.Push(e.pos.Hash)
	e.historyUndo = nil
	e.historyRedo = nil
}

// SaveFEN returns the canonical FEN for the current position.
func (e *Engine) SaveFEN() string {
	return e.pos.ToFEN()
}

// PieceAt returns the piece occupying sq, or board.NoPiece if empty.
func (e *Engine) PieceAt(sq board.Square) board.Piece {
	return e.pos.PieceAt(sq)
}

// SideToMove returns the color to move next.
func (e *Engine) SideToMove() board.Color {
	return e.pos.SideToMove
}

// Status computes the full terminal/advisory status of the current
// position.
func (e *Engine) Status() Status {
	pending := e.pos.Pending() != nil
	inCheck := e.pos.InCheck()
	hasMoves := e.pos.HasLegalMoves()

	repetition := e.pos.HalfMoveClock > 0 && e.history.IsThreefold(e.pos.Hash)

	return Status{
		InCheck:              inCheck,
		Checkmate:            inCheck && !hasMoves,
		Stalemate:            !inCheck && !hasMoves,
		Repetition:           repetition,
		FiftyMoveAvailable:   e.pos.HalfMoveClock >= 100,
		InsufficientMaterial: e.pos.IsInsufficientMaterial(),
		PromotionPending:     pending,
	}
}

// LegalDestinations returns the legal destination squares from sq.
func (e *Engine) LegalDestinations(sq board.Square) []board.Square {
	ml := e.pos.LegalMovesFrom(sq)
	dests := make([]board.Square, 0, ml.Len())
	seen := make(map[board.Square]bool, ml.Len())
	for i := 0; i < ml.Len(); i++ {
		to := ml.Get(i).To()
		if seen[to] {
			continue // a promotion square appears four times, once per piece choice
		}
		seen[to] = true
		dests = append(dests, to)
	}
	return dests
}

// Apply attempts to play the move from from to to. It returns
// Applied if the move was completed, or PromotionRequired if (from,
// to) only matches promotion moves and the caller must now call
// CompletePromotion. A move not matching any legal move returns
// board.ErrIllegalMove, as does calling Apply while a promotion
// choice is still pending.
func (e *Engine) Apply(from, to board.Square) (ApplyResult, error) {
	if e.pos.Pending() != nil {
		return Applied, board.ErrIllegalMove
	}

	snapshot := e.history.Snapshot()

	err := e.pos.Apply(from, to)
	switch err {
	case nil:
		e.afterSuccessfulMove(snapshot)
		return Applied, nil
	case board.ErrPromotionPending:
		return PromotionRequired, nil
	default:
		return Applied, err
	}
}

// CompletePromotion resolves a promotion suspended by Apply, placing
// kind on the pending destination square.
func (e *Engine) CompletePromotion(kind board.PieceType) (ApplyResult, error) {
	snapshot := e.history.Snapshot()

	if err := e.pos.CompletePromotion(kind); err != nil {
		return Applied, err
	}
	e.afterSuccessfulMove(snapshot)
	return Applied, nil
}

// afterSuccessfulMove updates the repetition history and its
// snapshot stacks after a move has actually been played (by Apply or
// CompletePromotion): it clears the history if the move was
// irreversible, pushes the new hash, records snapshot as the state
// to restore on Undo, and discards the redo-side history since a
// fresh move invalidates any previously undone moves.
func (e *Engine) afterSuccessfulMove(snapshot []board.Hash128) {
	if e.pos.HalfMoveClock == 0 {
		e.history.Clear()
	}
	e.history.Push(e.pos.Hash)

	e.historyUndo = append(e.historyUndo, snapshot)
	e.historyRedo = nil
}

// Undo reverses the most recently applied move.
func (e *Engine) Undo() error {
	postMoveHistory := e.history.Snapshot()

	if err := e.pos.Undo(); err != nil {
		return err
	}

	n := len(e.historyUndo)
	preMoveHistory := e.historyUndo[n-1]
	e.historyUndo = e.historyUndo[:n-1]

	e.history.Restore(preMoveHistory)
	e.historyRedo = append(e.historyRedo, postMoveHistory)
	return nil
}

// Redo replays the most recently undone move.
func (e *Engine) Redo() error {
	preMoveHistory := e.history.Snapshot()

	if err := e.pos.Redo(); err != nil {
		return err
	}

	n := len(e.historyRedo)
	postMoveHistory := e.historyRedo[n-1]
	e.historyRedo = e.historyRedo[:n-1]

	e.history.Restore(postMoveHistory)
	e.historyUndo = append(e.historyUndo, preMoveHistory)
	return nil
}

// LastMove returns the most recently applied move's (from, to) pair
// and true, or the zero value and false if no move has been played.
func (e *Engine) LastMove() (from, to board.Square, ok bool) {
	m, ok := e.pos.LastMove()
	if !ok {
		return board.NoSquare, board.NoSquare, false
	}
	return m.From(), m.To(), true
}

// MoveHistory returns the net surviving moves of the current game in
// coordinate (UCI) form, oldest first. A host can persist this
// alongside the FEN and later replay it to rebuild the full
// undo/redo history.
func (e *Engine) MoveHistory() []string {
	moves := e.pos.MoveHistory()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// UndoDepth returns how many moves can currently be undone.
func (e *Engine) UndoDepth() int {
	return e.pos.UndoDepth()
}

// RedoDepth returns how many undone moves can currently be redone.
func (e *Engine) RedoDepth() int {
	return e.pos.RedoDepth()
}

// RepetitionDepth returns how many positions the repetition history
// is currently tracking (since the last irreversible move).
func (e *Engine) RepetitionDepth() int {
	return e.history.Len()
}

// Position exposes the underlying board.Position for callers (tests,
// a move-list UI) that need read access beyond this facade's surface.
// It must not be mutated directly; all mutation goes through Engine.
func (e *Engine) Position() *board.Position {
	return e.pos
}
