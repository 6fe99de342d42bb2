package chess

import (
	"strconv"
	"strings"
)

// FromFEN parses a FEN string into a Board. Half-move clock and full-move
// number are accepted but not retained; ToFEN re-emits them as 0 and 1.
func FromFEN(s string) (Board, error) {
	fields := strings.Fields(s)
	if len(fields) < 4 {
		return Board{}, &ParseError{Kind: InvalidFen, Text: s}
	}

	var b Board
	b.enPassantSquare[White] = NoSquare
	b.enPassantSquare[Black] = NoSquare

	ranksField := strings.Split(fields[0], "/")
	if len(ranksField) != 8 {
		return Board{}, &ParseError{Kind: InvalidFen, Text: s}
	}
	for i, row := range ranksField {
		rank := 7 - i
		file := 0
		for _, ch := range []byte(row) {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pt, c, ok := pieceTypeFromLetter(ch)
			if !ok || file > 7 {
				return Board{}, &ParseError{Kind: InvalidFen, Text: s}
			}
			b = b.SetSquare(NewSquare(file, rank), pt, c)
			file++
		}
		if file != 8 {
			return Board{}, &ParseError{Kind: InvalidFen, Text: s}
		}
	}

	switch fields[1] {
	case "w":
		b.colorTurn = White
	case "b":
		b.colorTurn = Black
	default:
		return Board{}, &ParseError{Kind: InvalidFen, Text: s}
	}

	castling := fields[2]
	if castling != "-" {
		for _, ch := range []byte(castling) {
			switch ch {
			case 'K', 'Q', 'k', 'q':
			default:
				return Board{}, &ParseError{Kind: InvalidFen, Text: s}
			}
		}
	}
	b.kingMoved[White] = !strings.ContainsAny(castling, "KQ")
	b.kingMoved[Black] = !strings.ContainsAny(castling, "kq")
	b.rookMoved[White][KingSide] = !strings.Contains(castling, "K")
	b.rookMoved[White][QueenSide] = !strings.Contains(castling, "Q")
	b.rookMoved[Black][KingSide] = !strings.Contains(castling, "k")
	b.rookMoved[Black][QueenSide] = !strings.Contains(castling, "q")

	if fields[3] != "-" {
		behind, err := ParseSquare(fields[3])
		if err != nil {
			return Board{}, &ParseError{Kind: InvalidFen, Text: s}
		}
		// FEN names the square behind the pushed pawn; the board stores
		// the pushed-pawn square itself, one rank further in the
		// direction the pawn moved.
		if behind.Rank() == 2 {
			b.enPassantSquare[White] = NewSquare(behind.File(), 3)
		} else if behind.Rank() == 5 {
			b.enPassantSquare[Black] = NewSquare(behind.File(), 4)
		} else {
			return Board{}, &ParseError{Kind: InvalidFen, Text: s}
		}
	}

	return b, nil
}

// ToFEN serializes b into FEN. Half-move clock is emitted as 0 and
// full-move number as 1, since Board does not track either.
func (b Board) ToFEN() string {
	var sb strings.Builder

	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			p := b.PieceAt(NewSquare(f, r))
			if p.Type == NoPieceType {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.Type.letter(p.Color))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.colorTurn.String())

	sb.WriteByte(' ')
	// A right is emitted while the flags allow it and the king and rook
	// are on their home squares; pieces between them do not remove it.
	hasRight := func(c Color, side CastleSide, rookFile int) bool {
		rank := 0
		if c == Black {
			rank = 7
		}
		return !b.kingMoved[c] && !b.rookMoved[c][side] &&
			b.PieceOn(NewSquare(4, rank), c) == King && b.PieceOn(NewSquare(rookFile, rank), c) == Rook
	}
	castling := ""
	if hasRight(White, KingSide, 7) {
		castling += "K"
	}
	if hasRight(White, QueenSide, 0) {
		castling += "Q"
	}
	if hasRight(Black, KingSide, 7) {
		castling += "k"
	}
	if hasRight(Black, QueenSide, 0) {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}
	sb.WriteString(castling)

	sb.WriteByte(' ')
	sb.WriteString(b.enPassantFEN())

	sb.WriteString(" 0 1")
	return sb.String()
}

// MarshalText implements encoding.TextMarshaler and encodes b's FEN.
func (b Board) MarshalText() ([]byte, error) {
	return []byte(b.ToFEN()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and assumes text is
// a FEN string.
func (b *Board) UnmarshalText(text []byte) error {
	parsed, err := FromFEN(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// enPassantFEN returns the FEN en-passant field: the square behind
// whichever pushed pawn is currently capturable, or "-".
func (b Board) enPassantFEN() string {
	if sq := b.enPassantSquare[White]; sq != NoSquare {
		return NewSquare(sq.File(), 2).String()
	}
	if sq := b.enPassantSquare[Black]; sq != NoSquare {
		return NewSquare(sq.File(), 5).String()
	}
	return "-"
}
