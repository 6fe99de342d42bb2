package chess

// Starting squares for kings and rooks, used both to seed the initial
// position and to recognize "home square" rook moves for castling-rights
// bookkeeping.
const (
	whiteKingHome  = Square(4)  // e1
	blackKingHome  = Square(60) // e8
	whiteRookA     = Square(0)  // a1
	whiteRookH     = Square(7)  // h1
	blackRookA     = Square(56) // a8
	blackRookH     = Square(63) // h8
)

// Board is an immutable snapshot of a chess position. Every mutator
// method returns a new Board; the receiver is never modified.
type Board struct {
	pieces    [2][6]Bitboard // [color][pieceType]
	sameColor [2]Bitboard
	allPieces Bitboard

	colorTurn Color

	// enPassantSquare[c] is the square of the pawn of color c that just
	// double-pushed, or NoSquare. At most one of the two is ever set.
	enPassantSquare [2]Square

	kingMoved [2]bool
	rookMoved [2][2]bool // [color][KingSide|QueenSide]
}

// NewBoard returns the standard starting position, white to move, full
// castling rights, no en-passant target.
func NewBoard() Board {
	var b Board
	b.enPassantSquare[White] = NoSquare
	b.enPassantSquare[Black] = NoSquare

	back := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := 0; f < 8; f++ {
		b = b.SetSquare(NewSquare(f, 0), back[f], White)
		b = b.SetSquare(NewSquare(f, 1), Pawn, White)
		b = b.SetSquare(NewSquare(f, 6), Pawn, Black)
		b = b.SetSquare(NewSquare(f, 7), back[f], Black)
	}
	b.colorTurn = White
	return b
}

// SetSquare returns a board with pt/color placed on sq. It does not clear
// any existing occupant of sq; callers must ClearSquare first if needed.
// Idempotent when the bit is already set.
func (b Board) SetSquare(sq Square, pt PieceType, c Color) Board {
	bit := sq.Bitboard()
	b.pieces[c][pt] |= bit
	b.sameColor[c] |= bit
	b.allPieces |= bit
	return b
}

// ClearSquare returns a board with color c's piece (if any) removed from
// sq. No-op if sq is empty for that color.
func (b Board) ClearSquare(sq Square, c Color) Board {
	bit := sq.Bitboard()
	for pt := range b.pieces[c] {
		if b.pieces[c][pt]&bit != 0 {
			b.pieces[c][pt] &^= bit
			break
		}
	}
	b.sameColor[c] &^= bit
	if b.sameColor[White]&bit == 0 && b.sameColor[Black]&bit == 0 {
		b.allPieces &^= bit
	}
	return b
}

// PieceOn returns the piece type of color c occupying sq, or
// NoPieceType if c has no piece there.
func (b Board) PieceOn(sq Square, c Color) PieceType {
	bit := sq.Bitboard()
	for pt := range b.pieces[c] {
		if b.pieces[c][pt]&bit != 0 {
			return PieceType(pt)
		}
	}
	return NoPieceType
}

// PieceAt returns whichever piece, of either color, occupies sq, or
// NoPiece if sq is empty.
func (b Board) PieceAt(sq Square) Piece {
	if pt := b.PieceOn(sq, White); pt != NoPieceType {
		return Piece{Type: pt, Color: White}
	}
	if pt := b.PieceOn(sq, Black); pt != NoPieceType {
		return Piece{Type: pt, Color: Black}
	}
	return NoPiece
}

// GetPieceBB returns the bitboard of piece type pt belonging to color c.
func (b Board) GetPieceBB(pt PieceType, c Color) Bitboard {
	return b.pieces[c][pt]
}

// ColorTurn returns the side to move.
func (b Board) ColorTurn() Color {
	return b.colorTurn
}

// EnPassantSquare returns the square of the color-c pawn capturable en
// passant this ply, or NoSquare.
func (b Board) EnPassantSquare(c Color) Square {
	return b.enPassantSquare[c]
}

// KingMoved reports whether color c's king has ever moved.
func (b Board) KingMoved(c Color) bool {
	return b.kingMoved[c]
}

// RookMoved reports whether color c's rook on the given side has ever
// moved off its home square. A rook captured on its home square does not
// set this flag; castling checks separately that the rook is still there.
func (b Board) RookMoved(c Color, side CastleSide) bool {
	return b.rookMoved[c][side]
}

// KingSquare returns the square of color c's king.
func (b Board) KingSquare(c Color) Square {
	return b.pieces[c][King].LSBIndex()
}

// ApplyMove returns the board resulting from playing m, without
// modifying the receiver. It does not check legality; callers must only
// apply moves drawn from GenerateLegalMoves.
func (b Board) ApplyMove(m Move) Board {
	next := b // value copy: arrays copy by value, this is the whole snapshot

	mover := b.colorTurn
	opp := mover.Opposite()
	movingType := b.PieceOn(m.Src, mover)

	next.enPassantSquare[White] = NoSquare
	next.enPassantSquare[Black] = NoSquare

	switch {
	case m.EnPassant:
		next = next.ClearSquare(m.Src, mover)
		capturedRank := m.Dest.Rank()
		if mover == White {
			capturedRank--
		} else {
			capturedRank++
		}
		capturedSq := NewSquare(m.Dest.File(), capturedRank)
		next = next.ClearSquare(capturedSq, opp)
	case m.IsCastling:
		kingSide := m.Dest.File() > m.Src.File()
		var rookFrom, rookTo Square
		if kingSide {
			rookFrom = NewSquare(7, m.Src.Rank())
			rookTo = NewSquare(m.Dest.File()-1, m.Src.Rank())
		} else {
			rookFrom = NewSquare(0, m.Src.Rank())
			rookTo = NewSquare(m.Dest.File()+1, m.Src.Rank())
		}
		next = next.ClearSquare(m.Src, mover)
		next = next.ClearSquare(rookFrom, mover)
		next = next.SetSquare(m.Dest, King, mover)
		next = next.SetSquare(rookTo, Rook, mover)
		if kingSide {
			next.rookMoved[mover][KingSide] = true
		} else {
			next.rookMoved[mover][QueenSide] = true
		}
	default:
		next = next.ClearSquare(m.Src, mover)
		next = next.ClearSquare(m.Dest, opp)
	}

	if movingType == Pawn && m.IsDoublePush() {
		next.enPassantSquare[mover] = m.Dest
	}

	if !m.IsCastling {
		placed := movingType
		if m.Promo != NoPieceType {
			placed = m.Promo
		}
		next = next.SetSquare(m.Dest, placed, mover)
	}

	if movingType == King {
		next.kingMoved[mover] = true
	}
	homeA, homeH := whiteRookA, whiteRookH
	if mover == Black {
		homeA, homeH = blackRookA, blackRookH
	}
	if m.Src == homeH {
		next.rookMoved[mover][KingSide] = true
	}
	if m.Src == homeA {
		next.rookMoved[mover][QueenSide] = true
	}

	next.colorTurn = opp
	return next
}

// IsSquareAttacked reports whether any piece of color by attacks sq, via
// attack symmetry: a hypothetical piece of each type is placed on sq and
// its attack set tested against by's matching piece bitboards.
func (b Board) IsSquareAttacked(sq Square, by Color) bool {
	occ := b.allPieces

	if knightMoves[sq]&b.pieces[by][Knight] != 0 {
		return true
	}
	if kingMoves[sq]&b.pieces[by][King] != 0 {
		return true
	}

	// A pawn of by's color attacking sq is equivalent to a pawn of the
	// opposite color standing on sq and capturing toward by's squares.
	attacker := by.Opposite()
	if pawnCapture[attacker][sq]&b.pieces[by][Pawn] != 0 {
		return true
	}

	diag := DiagAttacks(occ, sq) | AntiDiagAttacks(occ, sq)
	if diag&(b.pieces[by][Bishop]|b.pieces[by][Queen]) != 0 {
		return true
	}

	straight := RankAttacks(occ, sq) | FileAttacks(occ, sq)
	if straight&(b.pieces[by][Rook]|b.pieces[by][Queen]) != 0 {
		return true
	}

	return false
}

// CanCastleKingside reports whether color c's king and kingside rook have
// never moved.
func (b Board) CanCastleKingside(c Color) bool {
	return !b.kingMoved[c] && !b.rookMoved[c][KingSide]
}

// CanCastleQueenside reports whether color c's king and queenside rook
// have never moved.
func (b Board) CanCastleQueenside(c Color) bool {
	return !b.kingMoved[c] && !b.rookMoved[c][QueenSide]
}

// IsValidCastling reports whether color c may currently castle toward
// side: the king and rook are on their home squares, the squares between
// them are empty, and neither the king's square nor any square it
// crosses (including the destination) is attacked.
func (b Board) IsValidCastling(c Color, side CastleSide) bool {
	if !b.castlingStructureOK(c, side) {
		return false
	}
	rank := 0
	if c == Black {
		rank = 7
	}
	opp := c.Opposite()
	crossed := [3]int{4, 5, 6}
	if side == QueenSide {
		crossed = [3]int{4, 3, 2}
	}
	for _, f := range crossed {
		if b.IsSquareAttacked(NewSquare(f, rank), opp) {
			return false
		}
	}
	return true
}

// castlingStructureOK checks everything IsValidCastling checks except
// the attacked-squares test: rights flags, king and rook still on their
// home squares, and an empty path between them.
func (b Board) castlingStructureOK(c Color, side CastleSide) bool {
	if side == KingSide && !b.CanCastleKingside(c) {
		return false
	}
	if side == QueenSide && !b.CanCastleQueenside(c) {
		return false
	}

	rank := 0
	if c == Black {
		rank = 7
	}
	kingSq := NewSquare(4, rank)
	if b.PieceOn(kingSq, c) != King {
		return false
	}

	if side == KingSide {
		rookSq := NewSquare(7, rank)
		if b.PieceOn(rookSq, c) != Rook {
			return false
		}
		for _, f := range [2]int{5, 6} {
			if b.allPieces&NewSquare(f, rank).Bitboard() != 0 {
				return false
			}
		}
		return true
	}

	rookSq := NewSquare(0, rank)
	if b.PieceOn(rookSq, c) != Rook {
		return false
	}
	for _, f := range [3]int{1, 2, 3} {
		if b.allPieces&NewSquare(f, rank).Bitboard() != 0 {
			return false
		}
	}
	return true
}

// String renders the board as an 8-row text dump, rank 8 first, files
// left to right, '.' for empty squares, uppercase for white.
func (b Board) String() string {
	out := make([]byte, 0, 8*16)
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			p := b.PieceAt(NewSquare(f, r))
			out = append(out, p.String()[0])
			if f != 7 {
				out = append(out, ' ')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
