package board

import "testing"

func TestCheckmate(t *testing.T) {
	pos, err := ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}

	t.Logf("Position:\n%s", pos)

	if !pos.InCheck() {
		t.Fatal("expected black king to be in check")
	}
	if !pos.IsCheckmate() {
		t.Error("expected checkmate, got none")
	}
	if pos.HasLegalMoves() {
		t.Error("expected no legal moves in checkmate")
	}
}

func TestNotCheckmate(t *testing.T) {
	pos, err := ParseFEN("6Rk/8/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}

	t.Logf("Position:\n%s", pos)

	if pos.IsCheckmate() {
		t.Error("king can capture the rook on g8, this is not checkmate")
	}
	moves := pos.GenerateLegalMoves()
	t.Logf("legal moves: %d", moves.Len())
	if moves.Len() == 0 {
		t.Error("expected at least one legal move (Kxg8)")
	}
}

func TestStalemate(t *testing.T) {
	// Black king on a8, no legal moves, not in check.
	pos, err := ParseFEN("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}

	t.Logf("Position:\n%s", pos)

	if pos.InCheck() {
		t.Fatal("expected black king not to be in check")
	}
	if !pos.IsStalemate() {
		t.Error("expected stalemate, got none")
	}
	if pos.IsCheckmate() {
		t.Error("stalemate is not checkmate")
	}
}

func TestInsufficientMaterialKingsOnly(t *testing.T) {
	pos, err := ParseFEN("8/8/8/4k3/8/4K3/8/8 w - - 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}
	if !pos.IsInsufficientMaterial() {
		t.Error("K vs K must be insufficient material")
	}
}

func TestInsufficientMaterialKingAndMinor(t *testing.T) {
	tests := []string{
		"8/8/8/4k3/8/4K3/3B4/8 w - - 0 1", // K+B vs K
		"8/8/8/4k3/8/4K3/3N4/8 w - - 0 1", // K+N vs K
	}
	for _, fen := range tests {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("Failed to parse FEN %q: %v", fen, err)
		}
		if !pos.IsInsufficientMaterial() {
			t.Errorf("%q: expected insufficient material", fen)
		}
	}
}

func TestInsufficientMaterialSameColorBishops(t *testing.T) {
	// White bishop c1 (dark square), black bishop f8 (dark square): both dark, insufficient.
	pos, err := ParseFEN("5b2/8/8/4k3/8/4K3/8/2B5 w - - 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}
	if !pos.IsInsufficientMaterial() {
		t.Error("K+B vs K+B with same-colored bishops must be insufficient material")
	}
}

func TestSufficientMaterialOppositeColorBishops(t *testing.T) {
	// White bishop c1 (dark), black bishop e8 (light): opposite colors, sufficient to play on.
	pos, err := ParseFEN("4b3/8/8/4k3/8/4K3/8/2B5 w - - 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}
	if pos.IsInsufficientMaterial() {
		t.Error("K+B vs K+B with opposite-colored bishops must not be declared insufficient")
	}
}

func TestSufficientMaterialWithRook(t *testing.T) {
	pos, err := ParseFEN("8/8/8/4k3/8/4K3/8/4R3 w - - 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}
	if pos.IsInsufficientMaterial() {
		t.Error("K+R vs K must not be declared insufficient material")
	}
}

func TestComputeStatus(t *testing.T) {
	pos, err := ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}
	history := NewRepetitionHistory()
	history.Push(pos.Hash)

	status := ComputeStatus(pos, history)
	if status.Outcome != Checkmate {
		t.Errorf("expected Checkmate outcome, got %v", status.Outcome)
	}
	if status.Winner != White {
		t.Errorf("expected White to have delivered mate, got %v", status.Winner)
	}
	if !status.IsOver() {
		t.Error("expected IsOver() to be true")
	}
	if status.IsDraw() {
		t.Error("checkmate is not a draw")
	}
}

func TestComputeStatusOngoing(t *testing.T) {
	pos := NewPosition()
	status := ComputeStatus(pos, nil)
	if status.Outcome != Ongoing {
		t.Errorf("expected Ongoing outcome from the starting position, got %v", status.Outcome)
	}
	if status.IsOver() {
		t.Error("expected IsOver() to be false for an ongoing game")
	}
}

func TestFiftyMoveClockAdvancesAndResets(t *testing.T) {
	pos := NewPosition()

	if err := pos.ApplyMove(NewMove(G1, F3)); err != nil {
		t.Fatalf("ApplyMove(Nf3): %v", err)
	}
	if pos.HalfMoveClock != 1 {
		t.Errorf("expected halfmove clock 1 after a quiet knight move, got %d", pos.HalfMoveClock)
	}

	if err := pos.ApplyMove(NewMove(G8, F6)); err != nil {
		t.Fatalf("ApplyMove(Nf6): %v", err)
	}
	if pos.HalfMoveClock != 2 {
		t.Errorf("expected halfmove clock 2, got %d", pos.HalfMoveClock)
	}

	if err := pos.ApplyMove(NewMove(E2, E4)); err != nil {
		t.Fatalf("ApplyMove(e4): %v", err)
	}
	if pos.HalfMoveClock != 0 {
		t.Errorf("expected halfmove clock reset to 0 after a pawn push, got %d", pos.HalfMoveClock)
	}
}
