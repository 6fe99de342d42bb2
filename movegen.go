package chess

import "sort"

// promotionOrder is the fixed emission order for promotion moves.
var promotionOrder = [4]PieceType{Queen, Rook, Knight, Bishop}

// GeneratePieceMoves yields the pseudo-legal moves for the single piece
// of type pt belonging to the side to move, standing on sq.
func GeneratePieceMoves(b Board, sq Square, pt PieceType) []Move {
	mover := b.colorTurn
	opp := mover.Opposite()
	friendly := b.sameColor[mover]

	switch pt {
	case King:
		moves := leaperMoves(sq, kingMoves[sq], friendly)
		moves = append(moves, generateCastlingMoves(b, mover)...)
		return moves
	case Knight:
		return leaperMoves(sq, knightMoves[sq], friendly)
	case Bishop:
		targets := BishopAttacks(b.allPieces, sq) &^ friendly
		return targetsToMoves(sq, targets)
	case Rook:
		targets := RookAttacks(b.allPieces, sq) &^ friendly
		return targetsToMoves(sq, targets)
	case Queen:
		targets := QueenAttacks(b.allPieces, sq) &^ friendly
		return targetsToMoves(sq, targets)
	case Pawn:
		return generatePawnMoves(b, sq, mover, opp)
	}
	return nil
}

func leaperMoves(sq Square, table, friendly Bitboard) []Move {
	targets := table &^ friendly
	return targetsToMoves(sq, targets)
}

// targetsToMoves expands a destination bitboard into plain (non-pawn,
// non-castling) moves in ascending destination-square order.
func targetsToMoves(sq Square, targets Bitboard) []Move {
	var moves []Move
	for t := targets; t != 0; {
		dest := t.PopLSB()
		moves = append(moves, Move{Src: sq, Dest: dest, Promo: NoPieceType})
	}
	return moves
}

func generatePawnMoves(b Board, sq Square, mover, opp Color) []Move {
	var moves []Move
	promoRank := 6
	if mover == Black {
		promoRank = 1
	}

	emit := func(dest Square, enPassant bool) {
		if sq.Rank() == promoRank && !enPassant {
			for _, promo := range promotionOrder {
				moves = append(moves, Move{Src: sq, Dest: dest, Promo: promo})
			}
			return
		}
		moves = append(moves, Move{Src: sq, Dest: dest, EnPassant: enPassant})
	}

	captures := pawnCapture[mover][sq] & b.sameColor[opp]
	for t := captures; t != 0; {
		emit(t.PopLSB(), false)
	}

	singlePushTable := pawnPush[mover][sq]
	forward := 1
	if mover == Black {
		forward = -1
	}
	singleDest := NewSquare(sq.File(), sq.Rank()+forward)
	if b.allPieces&singleDest.Bitboard() == 0 {
		pushes := singlePushTable &^ b.allPieces
		for t := pushes; t != 0; {
			emit(t.PopLSB(), false)
		}
	}

	if oppEP := b.enPassantSquare[opp]; oppEP != NoSquare {
		destRank := oppEP.Rank() + forward
		dest := NewSquare(oppEP.File(), destRank)
		if pawnEnPassant[mover][sq]&dest.Bitboard() != 0 {
			emit(dest, true)
		}
	}

	return moves
}

func generateCastlingMoves(b Board, mover Color) []Move {
	var moves []Move
	rank := 0
	if mover == Black {
		rank = 7
	}
	kingSq := NewSquare(4, rank)
	if b.CanCastleKingside(mover) && b.IsValidCastling(mover, KingSide) {
		moves = append(moves, Move{Src: kingSq, Dest: NewSquare(6, rank), IsCastling: true})
	}
	if b.CanCastleQueenside(mover) && b.IsValidCastling(mover, QueenSide) {
		moves = append(moves, Move{Src: kingSq, Dest: NewSquare(2, rank), IsCastling: true})
	}
	return moves
}

// GeneratePseudoLegalMoves enumerates every pseudo-legal move for the
// side to move, in deterministic piece-type order (pawn, knight, bishop,
// rook, queen, king), within a piece type in ascending source-square
// order, and within a piece in ascending destination-square order
// (promotions sharing a destination keep the queen, rook, knight, bishop
// order).
func GeneratePseudoLegalMoves(b Board) []Move {
	var moves []Move
	mover := b.colorTurn
	for _, pt := range allPieceTypes {
		for bb := b.pieces[mover][pt]; bb != 0; {
			sq := bb.PopLSB()
			pieceMoves := GeneratePieceMoves(b, sq, pt)
			sort.SliceStable(pieceMoves, func(i, j int) bool { return pieceMoves[i].Dest < pieceMoves[j].Dest })
			moves = append(moves, pieceMoves...)
		}
	}
	return moves
}

// LeavesInCheck reports whether playing m leaves the mover's own king
// attacked.
func LeavesInCheck(b Board, m Move) bool {
	mover := b.colorTurn
	next := b.ApplyMove(m)
	kingSq := next.KingSquare(mover)
	return next.IsSquareAttacked(kingSq, mover.Opposite())
}

// GenerateLegalMoves returns the pseudo-legal moves that do not leave
// the mover's king in check.
func GenerateLegalMoves(b Board) []Move {
	pseudo := GeneratePseudoLegalMoves(b)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if !LeavesInCheck(b, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsCheckmate reports whether the side to move has no legal moves and is
// in check.
func IsCheckmate(b Board) bool {
	return len(GenerateLegalMoves(b)) == 0 && b.IsSquareAttacked(b.KingSquare(b.colorTurn), b.colorTurn.Opposite())
}

// IsStalemate reports whether the side to move has no legal moves and is
// not in check.
func IsStalemate(b Board) bool {
	return len(GenerateLegalMoves(b)) == 0 && !b.IsSquareAttacked(b.KingSquare(b.colorTurn), b.colorTurn.Opposite())
}
