package board

import "testing"

func TestMoveEncodingRoundTrip(t *testing.T) {
	m := NewMove(E2, E4)
	if m.From() != E2 || m.To() != E4 {
		t.Errorf("NewMove round trip failed: from=%v to=%v", m.From(), m.To())
	}
	if m.IsPromotion() || m.IsCastling() || m.IsEnPassant() {
		t.Error("a plain move must carry no special flag")
	}

	pm := NewPromotion(A7, A8, Knight)
	if !pm.IsPromotion() || pm.Promotion() != Knight {
		t.Errorf("expected knight promotion, got %v", pm.Promotion())
	}
	if pm.String() != "a7a8n" {
		t.Errorf("expected UCI a7a8n, got %q", pm.String())
	}
}

// TestParseMoveDetectsSpecialMoves checks that ParseMove flags
// castling and en passant from the position alone, since coordinate
// notation doesn't distinguish them.
func TestParseMoveDetectsSpecialMoves(t *testing.T) {
	castlePos, err := ParseFEN("r1bqk2r/pppp1ppp/2n2n2/2b1p3/2B1P3/2N2N2/PPPP1PPP/R1BQK2R w KQkq - 4 4")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m, err := ParseMove("e1g1", castlePos)
	if err != nil {
		t.Fatalf("ParseMove(e1g1): %v", err)
	}
	if !m.IsCastling() {
		t.Error("expected e1g1 to be recognized as castling")
	}

	epPos, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m, err = ParseMove("e5d6", epPos)
	if err != nil {
		t.Fatalf("ParseMove(e5d6): %v", err)
	}
	if !m.IsEnPassant() {
		t.Error("expected e5d6 to be recognized as en passant")
	}
	if !m.IsCapture(epPos) {
		t.Error("en passant must count as a capture even though d6 is empty")
	}

	if _, err := ParseMove("e7e8x", epPos); err == nil {
		t.Error("expected an error for an unknown promotion letter")
	}
	if _, err := ParseMove("e3e4", epPos); err == nil {
		t.Error("expected an error for a move from an empty square")
	}
}

func TestParseMovePromotion(t *testing.T) {
	pos, err := ParseFEN("8/P7/8/8/8/8/5k2/7K w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	m, err := ParseMove("a7a8q", pos)
	if err != nil {
		t.Fatalf("ParseMove(a7a8q): %v", err)
	}
	if !m.IsPromotion() || m.Promotion() != Queen {
		t.Errorf("expected queen promotion, got %v", m.Promotion())
	}
	if err := pos.ApplyMove(m); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if pos.PieceAt(A8) != WhiteQueen {
		t.Errorf("expected white queen on a8, got %v", pos.PieceAt(A8))
	}
}
