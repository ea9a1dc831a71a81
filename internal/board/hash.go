package board

import "fmt"

// Hash128 is a 128-bit digest of the repetition-relevant portion of a
// Position: piece placement, side to move, castling rights, and the
// en-passant file. It deliberately never depends on HalfMoveClock or
// FullMoveNumber, since those are not part of what makes a position
// "the same" for repetition purposes.
type Hash128 struct {
	Hi uint64
	Lo uint64
}

// xor mutates h by XORing in k, the zobrist incremental-update
// primitive.
func (h *Hash128) xor(k Hash128) {
	h.Hi ^= k.Hi
	h.Lo ^= k.Lo
}

// String renders the hash as 32 hex digits.
func (h Hash128) String() string {
	return fmt.Sprintf("%016x%016x", h.Hi, h.Lo)
}

// Zobrist hash keys for position hashing. Two 64-bit key halves (Hi
// and Lo) are drawn per feature so that a collision between distinct
// positions requires both halves to collide simultaneously. Uses a
// fixed-seed PRNG so two positions built the same way always hash the
// same way.
var (
	zobristPiece      [2][7][64]Hash128 // [Color][PieceType][Square]; index 6 unused (NoPieceType)
	zobristEnPassant  [8]Hash128        // one per file
	zobristCastling   [16]Hash128       // all 16 castling-rights combinations
	zobristSideToMove Hash128
)

func init() {
	initZobrist()
}

// prng is a simple xorshift64* generator, seeded fixed so that two
// positions built the same way always hash the same way.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func (p *prng) next128() Hash128 {
	return Hash128{Hi: p.next(), Lo: p.next()}
}

func initZobrist() {
	rng := newPRNG(0x98F107A2BEEF1234) // fixed seed

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[c][pt][sq] = rng.next128()
			}
		}
	}

	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = rng.next128()
	}

	for i := 0; i < 16; i++ {
		zobristCastling[i] = rng.next128()
	}

	zobristSideToMove = rng.next128()
}

// ComputeHash computes the repetition hash for the position from
// scratch. ParseFEN calls this once; incremental updates during
// Apply/Undo keep it current afterward.
func (p *Position) ComputeHash() Hash128 {
	var h Hash128

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			for bb != 0 {
				sq := bb.PopLSB()
				h.xor(zobristPiece[c][pt][sq])
			}
		}
	}

	if p.SideToMove == Black {
		h.xor(zobristSideToMove)
	}

	h.xor(zobristCastling[p.CastlingRights])

	if p.EnPassant != NoSquare {
		h.xor(zobristEnPassant[p.EnPassant.File()])
	}

	return h
}
