package board

import "testing"

func TestParseFENStartingPosition(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN(StartFEN): %v", err)
	}
	if pos.SideToMove != White {
		t.Errorf("expected White to move, got %v", pos.SideToMove)
	}
	if pos.CastlingRights != AllCastling {
		t.Errorf("expected all castling rights, got %v", pos.CastlingRights)
	}
	if pos.EnPassant != NoSquare {
		t.Errorf("expected no en passant target, got %v", pos.EnPassant)
	}
	if pos.HalfMoveClock != 0 || pos.FullMoveNumber != 1 {
		t.Errorf("expected clocks 0/1, got %d/%d", pos.HalfMoveClock, pos.FullMoveNumber)
	}
	if pos.PieceAt(E1) != WhiteKing || pos.PieceAt(E8) != BlackKing {
		t.Errorf("kings misplaced: e1=%v e8=%v", pos.PieceAt(E1), pos.PieceAt(E8))
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r1bqk2r/pppp1ppp/2n2n2/2b1p3/2B1P3/2N2N2/PPPP1PPP/R1BQK2R w KQkq - 4 4",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"8/P7/8/8/8/8/7k/7K w - - 0 1",
		"8/8/8/3k4/8/3K4/3B4/8 w - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		got := pos.ToFEN()
		if got != fen {
			t.Errorf("round trip mismatch:\n got  %q\n want %q", got, fen)
		}
	}
}

func TestFENRoundTripAfterLegalPlay(t *testing.T) {
	pos := NewPosition()

	moves := []Move{
		NewMove(E2, E4),
		NewMove(E7, E5),
		NewMove(G1, F3),
		NewMove(B8, C6),
		NewMove(F1, B5),
	}

	for _, m := range moves {
		if err := pos.ApplyMove(m); err != nil {
			t.Fatalf("ApplyMove(%v): %v", m, err)
		}
	}

	fen := pos.ToFEN()
	reparsed, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	if reparsed.ToFEN() != fen {
		t.Errorf("re-serialization mismatch: got %q want %q", reparsed.ToFEN(), fen)
	}
}

func TestParseFENErrors(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		reason FenReason
	}{
		{"bad rank count", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1", FenBadRank},
		{"rank not summing to 8", "rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", FenBadRank},
		{"bad piece char", "rnbqkbnx/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", FenBadPiece},
		{"bad color", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", FenBadColor},
		{"bad castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XQkq - 0 1", FenBadCastling},
		{"bad en passant", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1", FenBadEnPassant},
		{"en passant on impossible rank", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1", FenBadEnPassant},
		{"bad halfmove number", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1", FenBadNumber},
		{"negative halfmove clock", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1", FenBadNumber},
		{"zero fullmove number", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0", FenBadNumber},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseFEN(tc.fen)
			if err == nil {
				t.Fatalf("expected error for %q, got none", tc.fen)
			}
			fe, ok := err.(*FenError)
			if !ok {
				t.Fatalf("expected *FenError, got %T (%v)", err, err)
			}
			if fe.Reason != tc.reason {
				t.Errorf("expected reason %v, got %v", tc.reason, fe.Reason)
			}
		})
	}
}

func TestParseFENMissingOptionalClocks(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	if err != nil {
		t.Fatalf("ParseFEN without clocks: %v", err)
	}
	if pos.HalfMoveClock != 0 || pos.FullMoveNumber != 1 {
		t.Errorf("expected default clocks 0/1, got %d/%d", pos.HalfMoveClock, pos.FullMoveNumber)
	}
}
