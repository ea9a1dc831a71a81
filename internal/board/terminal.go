package board

// Outcome classifies how (or whether) a game has ended.
type Outcome int

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
	DrawThreefoldRepetition
	DrawFiftyMoveRule
	DrawInsufficientMaterial
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawThreefoldRepetition:
		return "draw by threefold repetition"
	case DrawFiftyMoveRule:
		return "draw by fifty-move rule"
	case DrawInsufficientMaterial:
		return "draw by insufficient material"
	default:
		return "unknown"
	}
}

// Status is the terminal-detection result for a position: whether the
// game has ended, and if so how and to whom.
type Status struct {
	Outcome Outcome
	// Winner is the side that delivered checkmate. Only meaningful
	// when Outcome == Checkmate.
	Winner Color
}

// IsOver reports whether Outcome is anything other than Ongoing.
func (s Status) IsOver() bool {
	return s.Outcome != Ongoing
}

// IsDraw reports whether Outcome is one of the draw outcomes.
func (s Status) IsDraw() bool {
	switch s.Outcome {
	case Stalemate, DrawThreefoldRepetition, DrawFiftyMoveRule, DrawInsufficientMaterial:
		return true
	default:
		return false
	}
}

// ComputeStatus evaluates the full terminal condition for p, checking
// checkmate and stalemate first (since those depend on whether the
// side to move has a legal reply), then the draw conditions that
// don't require generating moves at all.
func ComputeStatus(p *Position, history *RepetitionHistory) Status {
	hasMoves := p.HasLegalMoves()

	if p.InCheck() && !hasMoves {
		return Status{Outcome: Checkmate, Winner: p.SideToMove.Other()}
	}
	if !hasMoves {
		return Status{Outcome: Stalemate}
	}
	if history != nil && history.IsThreefold(p.Hash) {
		return Status{Outcome: DrawThreefoldRepetition}
	}
	if p.HalfMoveClock >= 100 {
		return Status{Outcome: DrawFiftyMoveRule}
	}
	if p.IsInsufficientMaterial() {
		return Status{Outcome: DrawInsufficientMaterial}
	}

	return Status{Outcome: Ongoing}
}
