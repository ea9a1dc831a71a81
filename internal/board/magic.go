package board

// Sliding-piece (bishop/rook) attack lookup via fancy magic bitboards:
// each square's legal occupancy subset is compressed through a
// multiply-and-shift into a dense index into a precomputed attack
// table, so runtime lookup never re-walks a ray.

// direction is a single ray step (df, dr) a sliding piece travels
// along until it hits the board edge or an occupied square.
type direction struct{ df, dr int }

var bishopDirections = []direction{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
var rookDirections = []direction{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// castRay walks from sq along dir, one square at a time, stopping
// after the first occupied square it includes (or the edge). The
// slow/reference bishop and rook attacks, and through them bishopMask,
// are this one walk repeated over a different direction set; rookMask
// runs the same direction walk inline so it can stop short of the edge.
func castRay(sq Square, dir direction, occupied Bitboard) Bitboard {
	var attacks Bitboard
	file, rank := sq.File(), sq.Rank()
	for f, r := file+dir.df, rank+dir.dr; f >= 0 && f <= 7 && r >= 0 && r <= 7; f, r = f+dir.df, r+dir.dr {
		s := NewSquare(f, r)
		attacks |= SquareBB(s)
		if occupied&SquareBB(s) != 0 {
			break
		}
	}
	return attacks
}

func slidingAttacksSlow(sq Square, occupied Bitboard, dirs []direction) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		attacks |= castRay(sq, d, occupied)
	}
	return attacks
}

// bishopAttacksSlow computes bishop attacks by ray casting (used during initialization).
func bishopAttacksSlow(sq Square, occupied Bitboard) Bitboard {
	return slidingAttacksSlow(sq, occupied, bishopDirections)
}

// rookAttacksSlow computes rook attacks by ray casting (used during initialization).
func rookAttacksSlow(sq Square, occupied Bitboard) Bitboard {
	return slidingAttacksSlow(sq, occupied, rookDirections)
}

var edgeSquares = Rank1 | Rank8 | FileA | FileH

// bishopMask returns the relevant occupancy mask for bishop at square:
// every square a ray could stop on, minus the board edge (a piece
// sitting on the far edge always blocks the ray regardless of mask
// membership, so tracking it buys nothing and only bloats the table).
func bishopMask(sq Square) Bitboard {
	return bishopAttacksSlow(sq, 0) &^ edgeSquares
}

// rookMask returns the relevant occupancy mask for rook at square.
// Unlike the bishop, a rook's own ray can terminate ON the edge (a
// rook on the a-file still "sees" a8/a1), so the trim is asymmetric:
// walk each of the four directions but stop one square short of
// whichever edge that direction runs into.
func rookMask(sq Square) Bitboard {
	file, rank := sq.File(), sq.Rank()
	var mask Bitboard
	for _, d := range rookDirections {
		f, r := file+d.df, rank+d.dr
		for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
			nf, nr := f+d.df, r+d.dr
			if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
				break // next step would fall off the edge; this square IS the edge
			}
			mask |= SquareBB(NewSquare(f, r))
			f, r = nf, nr
		}
	}
	return mask
}

// Magic holds the magic bitboard data for a single square.
type Magic struct {
	Mask   Bitboard // Relevant occupancy mask (excludes edges)
	Magic  uint64   // Magic multiplier
	Shift  uint8    // Bits to shift right
	Offset uint32   // Index into attack table
}

var (
	bishopMagics [64]Magic
	rookMagics   [64]Magic

	bishopTable [5248]Bitboard
	rookTable   [102400]Bitboard
)

// Pre-computed magic numbers (standard constants common to fancy
// magic-bitboard move generators; see DESIGN.md for provenance).
var bishopMagicNumbers = [64]uint64{
	0x0002020202020200, 0x0002020202020000, 0x0004010202000000, 0x0004040080000000,
	0x0001104000000000, 0x0000821040000000, 0x0000410410400000, 0x0000104104104000,
	0x0000040404040400, 0x0000020202020200, 0x0000040102020000, 0x0000040400800000,
	0x0000011040000000, 0x0000008210400000, 0x0000004104104000, 0x0000002082082000,
	0x0004000808080800, 0x0002000404040400, 0x0001000202020200, 0x0000800802004000,
	0x0000800400A00000, 0x0000200100884000, 0x0000400082082000, 0x0000200041041000,
	0x0002080010101000, 0x0001040008080800, 0x0000208004010400, 0x0000404004010200,
	0x0000840000802000, 0x0000404002011000, 0x0000808001041000, 0x0000404000820800,
	0x0001041000202000, 0x0000820800101000, 0x0000104400080800, 0x0000020080080080,
	0x0000404040040100, 0x0000808100020100, 0x0001010100020800, 0x0000808080010400,
	0x0000820820004000, 0x0000410410002000, 0x0000082088001000, 0x0000002011000800,
	0x0000080100400400, 0x0001010101000200, 0x0002020202000400, 0x0001010101000200,
	0x0000410410400000, 0x0000208208200000, 0x0000002084100000, 0x0000000020880000,
	0x0000001002020000, 0x0000040408020000, 0x0004040404040000, 0x0002020202020000,
	0x0000104104104000, 0x0000002082082000, 0x0000000020841000, 0x0000000000208800,
	0x0000000010020200, 0x0000000404080200, 0x0000040404040400, 0x0002020202020200,
}

var rookMagicNumbers = [64]uint64{
	0x0080001020400080, 0x0040001000200040, 0x0080081000200080, 0x0080040800100080,
	0x0080020400080080, 0x0080010200040080, 0x0080008001000200, 0x0080002040800100,
	0x0000800020400080, 0x0000400020005000, 0x0000801000200080, 0x0000800800100080,
	0x0000800400080080, 0x0000800200040080, 0x0000800100020080, 0x0000800040800100,
	0x0000208000400080, 0x0000404000201000, 0x0000808010002000, 0x0000808008001000,
	0x0000808004000800, 0x0000808002000400, 0x0000010100020004, 0x0000020000408104,
	0x0000208080004000, 0x0000200040005000, 0x0000100080200080, 0x0000080080100080,
	0x0000040080080080, 0x0000020080040080, 0x0000010080800200, 0x0000800080004100,
	0x0000204000800080, 0x0000200040401000, 0x0000100080802000, 0x0000080080801000,
	0x0000040080800800, 0x0000020080800400, 0x0000020001010004, 0x0000800040800100,
	0x0000204000808000, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000010002008080, 0x0000004081020004,
	0x0000204000800080, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000800100020080, 0x0000800041000080,
	0x00FFFCDDFCED714A, 0x007FFCDDFCED714A, 0x003FFFCDFFD88096, 0x0000040810002101,
	0x0001000204080011, 0x0001000204000801, 0x0001000082000401, 0x0001FFFAABFAD1A2,
}

// slidingPiece bundles everything that differs between bishop and
// rook initialization, so the fill loop below is written once.
type slidingPiece struct {
	magics    *[64]Magic
	table     []Bitboard
	numbers   *[64]uint64
	maskOf    func(Square) Bitboard
	attacksOf func(Square, Bitboard) Bitboard
}

func initMagics() {
	fillMagicTable(slidingPiece{&bishopMagics, bishopTable[:], &bishopMagicNumbers, bishopMask, bishopAttacksSlow})
	fillMagicTable(slidingPiece{&rookMagics, rookTable[:], &rookMagicNumbers, rookMask, rookAttacksSlow})
}

func fillMagicTable(p slidingPiece) {
	var offset uint32
	for sq := A1; sq <= H8; sq++ {
		mask := p.maskOf(sq)
		relevantBits := mask.PopCount()

		p.magics[sq] = Magic{
			Mask:   mask,
			Magic:  p.numbers[sq],
			Shift:  uint8(64 - relevantBits),
			Offset: offset,
		}

		numEntries := 1 << relevantBits
		for i := 0; i < numEntries; i++ {
			occ := indexToOccupancy(i, relevantBits, mask)
			idx := (uint64(occ) * p.numbers[sq]) >> (64 - relevantBits)
			p.table[offset+uint32(idx)] = p.attacksOf(sq, occ)
		}
		offset += uint32(numEntries)
	}
}

// indexToOccupancy converts an index to an occupancy bitboard by
// distributing its bits across mask's set squares, one per bit.
func indexToOccupancy(index, bitCount int, mask Bitboard) Bitboard {
	var occ Bitboard
	for i := 0; i < bitCount; i++ {
		sq := mask.LSB()
		mask &= mask - 1
		if index&(1<<i) != 0 {
			occ |= SquareBB(sq)
		}
	}
	return occ
}

// getBishopAttacks returns bishop attacks using magic bitboards.
func getBishopAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &bishopMagics[sq]
	idx := ((uint64(occupied) & uint64(m.Mask)) * m.Magic) >> m.Shift
	return bishopTable[m.Offset+uint32(idx)]
}

// getRookAttacks returns rook attacks using magic bitboards.
func getRookAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &rookMagics[sq]
	idx := ((uint64(occupied) & uint64(m.Mask)) * m.Magic) >> m.Shift
	return rookTable[m.Offset+uint32(idx)]
}
