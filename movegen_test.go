package chess

import "testing"

func TestGenerateLegalMovesStartingPositionCount(t *testing.T) {
	b := NewBoard()
	if got := len(GenerateLegalMoves(b)); got != 20 {
		t.Errorf("legal moves from start = %d, want 20", got)
	}
}

func TestScenarioLegalMoveCountAfterThreePlies(t *testing.T) {
	b := NewBoard()
	b = b.ApplyMove(Move{Src: sq("e2"), Dest: sq("e4")})
	b = b.ApplyMove(Move{Src: sq("e7"), Dest: sq("e5")})
	b = b.ApplyMove(Move{Src: sq("g1"), Dest: sq("f3")})

	if got := len(GenerateLegalMoves(b)); got != 29 {
		t.Errorf("legal moves for black after e2e4 e7e5 g1f3 = %d, want 29", got)
	}
}

func TestPromotionsEmitInFixedOrder(t *testing.T) {
	b, err := FromFEN("8/P6k/8/8/8/8/7K/8 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var promos []PieceType
	for _, m := range GenerateLegalMoves(b) {
		if m.Src == sq("a7") && m.Dest == sq("a8") {
			promos = append(promos, m.Promo)
		}
	}
	want := []PieceType{Queen, Rook, Knight, Bishop}
	if len(promos) != len(want) {
		t.Fatalf("promotion count = %d, want %d", len(promos), len(want))
	}
	for i := range want {
		if promos[i] != want[i] {
			t.Errorf("promo[%d] = %v, want %v", i, promos[i], want[i])
		}
	}
}

func TestLeavesInCheckFiltersPinnedMoves(t *testing.T) {
	// White king on e1, white rook on e2 pinned by a black rook on e8;
	// moving the rook off the e-file must be filtered out as illegal.
	b, err := FromFEN("4r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	off := Move{Src: sq("e2"), Dest: sq("d2")}
	if !LeavesInCheck(b, off) {
		t.Error("moving the pinned rook off-file should leave the king in check")
	}
	for _, m := range GenerateLegalMoves(b) {
		if m.Equal(off) {
			t.Error("pinned rook's off-file move appeared in legal moves")
		}
	}
}

func TestIsCheckmateFoolsMate(t *testing.T) {
	b, err := FromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if !IsCheckmate(b) {
		t.Error("fool's mate position should be checkmate")
	}
	if got := Evaluate(b); got != Checkmate {
		t.Errorf("Evaluate(checkmate) = %v, want %v", got, Checkmate)
	}
}

func TestIsStalemate(t *testing.T) {
	b, err := FromFEN("k7/8/1Q6/8/8/8/8/6K1 b - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if !IsStalemate(b) {
		t.Error("position should be stalemate")
	}
	if IsCheckmate(b) {
		t.Error("stalemate position misclassified as checkmate")
	}
}
