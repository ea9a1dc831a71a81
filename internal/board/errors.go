package board

import "errors"

// Sentinel errors returned by the move-application and undo/redo API.
// Callers should compare against these with errors.Is rather than
// matching error strings.
var (
	// ErrIllegalMove is returned by Apply when the supplied move is not
	// in the position's legal move list.
	ErrIllegalMove = errors.New("board: illegal move")

	// ErrNothingToUndo is returned by Undo when the undo stack is empty.
	ErrNothingToUndo = errors.New("board: nothing to undo")

	// ErrNothingToRedo is returned by Redo when the redo stack is empty,
	// or after a fresh Apply call has discarded it.
	ErrNothingToRedo = errors.New("board: nothing to redo")

	// ErrPromotionPending is returned by Apply when a previous call
	// suspended on a pawn reaching the back rank and CompletePromotion
	// has not been called yet.
	ErrPromotionPending = errors.New("board: promotion choice pending")

	// ErrNoPromotionPending is returned by CompletePromotion when there
	// is no suspended promotion to complete.
	ErrNoPromotionPending = errors.New("board: no promotion pending")

	// ErrBadPromotionKind is returned by CompletePromotion when the
	// supplied PieceType cannot be promoted to.
	ErrBadPromotionKind = errors.New("board: invalid promotion piece type")

	// ErrInvariantViolation reports that an internal consistency check
	// failed during apply/undo (e.g. a side lost its only king). This
	// is a bug, not a user error: the engine does not attempt recovery
	// and refuses further moves until reset.
	ErrInvariantViolation = errors.New("board: invariant violation")
)

// FenReason classifies why a FEN string failed to parse.
type FenReason int

const (
	FenBadFieldCount FenReason = iota
	FenBadRank
	FenBadPiece
	FenBadColor
	FenBadCastling
	FenBadEnPassant
	FenBadNumber
)

func (r FenReason) String() string {
	switch r {
	case FenBadFieldCount:
		return "bad field count"
	case FenBadRank:
		return "bad rank"
	case FenBadPiece:
		return "bad piece character"
	case FenBadColor:
		return "bad side to move"
	case FenBadCastling:
		return "bad castling rights"
	case FenBadEnPassant:
		return "bad en passant square"
	case FenBadNumber:
		return "bad move counter"
	default:
		return "unknown"
	}
}

// FenError reports a structured reason a FEN string was rejected,
// alongside the raw field that triggered it. Callers that only care
// whether parsing failed can still treat it as a plain error; callers
// that want to react to the failure category can switch on Reason.
type FenError struct {
	Reason FenReason
	Field  string
}

func (e *FenError) Error() string {
	return "board: invalid FEN (" + e.Reason.String() + "): " + e.Field
}
