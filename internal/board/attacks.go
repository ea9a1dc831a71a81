package board

// Pre-computed attack tables for non-sliding pieces. AttacksOfColor
// (in movegen.go) folds these per-square tables into an aggregate
// attack map; the king-safety filter and castling-path check instead
// query single squares through AttackersByColor/IsSquareAttacked.
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard // [Color][Square]
)

func init() {
	initLeaperAttacks()
	initMagics() // From magic.go
}

// offset is a (file, rank) step used to enumerate the squares a
// leaping piece (knight, king, pawn) can reach from some origin.
type offset struct{ df, dr int }

var knightOffsets = []offset{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = []offset{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var pawnAttackOffsets = [2][]offset{
	White: {{-1, 1}, {1, 1}},
	Black: {{-1, -1}, {1, -1}},
}

// reachable returns the bitboard of squares reachable from sq by
// applying each offset once, discarding any landing off the board.
// Knight/king/pawn attack generation all reduce to this: none of
// these pieces need ray-casting, only a fixed set of destination
// squares to bounds-check.
func reachable(sq Square, offsets []offset) Bitboard {
	file, rank := sq.File(), sq.Rank()
	var bb Bitboard
	for _, o := range offsets {
		f, r := file+o.df, rank+o.dr
		if f < 0 || f > 7 || r < 0 || r > 7 {
			continue
		}
		bb |= SquareBB(NewSquare(f, r))
	}
	return bb
}

func initLeaperAttacks() {
	for sq := A1; sq <= H8; sq++ {
		knightAttacks[sq] = reachable(sq, knightOffsets)
		kingAttacks[sq] = reachable(sq, kingOffsets)
		pawnAttacks[White][sq] = reachable(sq, pawnAttackOffsets[White])
		pawnAttacks[Black][sq] = reachable(sq, pawnAttackOffsets[Black])
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// KnightAttacks returns the knight attack bitboard for a square.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the king attack bitboard for a square.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PawnAttacks returns the pawn attack bitboard for a square and color:
// the two forward diagonals only, distinct from a pawn's push
// destinations, which are not attacks at all.
func PawnAttacks(sq Square, c Color) Bitboard {
	return pawnAttacks[c][sq]
}

// BishopAttacks returns the bishop attack bitboard for a square with given occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return getBishopAttacks(sq, occupied)
}

// RookAttacks returns the rook attack bitboard for a square with given occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return getRookAttacks(sq, occupied)
}

// QueenAttacks returns the queen attack bitboard for a square with given occupancy.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

// AttackersByColor returns a bitboard of every piece of color c
// attacking sq, given occupied. This is the primitive both
// IsSquareAttacked and UpdateCheckers build on, and the one
// AttacksOfColor (movegen.go) cannot use in reverse: computing "is sq
// attacked" per candidate square is cheaper than unioning every
// piece's full attack set when only a handful of squares need
// checking (a single king destination, or the two or three squares a
// castle crosses).
func (p *Position) AttackersByColor(sq Square, c Color, occupied Bitboard) Bitboard {
	enemy := c.Other()
	return (pawnAttacks[enemy][sq] & p.Pieces[c][Pawn]) |
		(knightAttacks[sq] & p.Pieces[c][Knight]) |
		(kingAttacks[sq] & p.Pieces[c][King]) |
		(BishopAttacks(sq, occupied) & (p.Pieces[c][Bishop] | p.Pieces[c][Queen])) |
		(RookAttacks(sq, occupied) & (p.Pieces[c][Rook] | p.Pieces[c][Queen]))
}

// IsSquareAttacked returns true if the square is attacked by the given color.
func (p *Position) IsSquareAttacked(sq Square, byColor Color) bool {
	return p.AttackersByColor(sq, byColor, p.AllOccupied) != 0
}

// UpdateCheckers recomputes Checkers, the set of enemy pieces
// currently attacking the side-to-move's king. InCheck is just
// Checkers != 0; callers that also want to know which piece is
// delivering check (not currently needed by anything in this repo)
// can inspect Checkers directly instead of re-deriving it.
func (p *Position) UpdateCheckers() {
	us := p.SideToMove
	kingBB := p.Pieces[us][King]
	if kingBB == 0 {
		p.Checkers = 0
		return
	}
	kingSq := kingBB.LSB()
	p.Checkers = p.AttackersByColor(kingSq, us.Other(), p.AllOccupied)
}
