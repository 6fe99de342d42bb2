package chess

import "testing"

func TestMoveEqualIgnoresMetadata(t *testing.T) {
	a := Move{Src: sq("a7"), Dest: sq("a8"), Promo: Queen}
	b := Move{Src: sq("a7"), Dest: sq("a8"), Promo: Knight}
	if !a.Equal(b) {
		t.Error("moves sharing Src/Dest but differing Promo should be Equal")
	}
	c := Move{Src: sq("a7"), Dest: sq("b8")}
	if a.Equal(c) {
		t.Error("moves with different Dest should not be Equal")
	}
}

func TestMoveIsDoublePush(t *testing.T) {
	if !(Move{Src: sq("e2"), Dest: sq("e4")}).IsDoublePush() {
		t.Error("e2e4 should be a double push")
	}
	if (Move{Src: sq("e2"), Dest: sq("e3")}).IsDoublePush() {
		t.Error("e2e3 should not be a double push")
	}
}

func TestMoveStringAndParseMoveRoundTrip(t *testing.T) {
	for _, m := range []Move{
		{Src: sq("e2"), Dest: sq("e4")},
		{Src: sq("a7"), Dest: sq("a8"), Promo: Queen},
	} {
		s := m.String()
		parsed, err := ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", s, err)
		}
		if parsed != m {
			t.Errorf("ParseMove(%q) = %+v, want %+v", s, parsed, m)
		}
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, s := range []string{"", "e2", "e2e", "i2e4", "e2e4z"} {
		if _, err := ParseMove(s); err == nil {
			t.Errorf("ParseMove(%q): want error, got nil", s)
		}
	}
}

func TestMoveMarshalTextUnmarshalTextRoundTrip(t *testing.T) {
	m := Move{Src: sq("e7"), Dest: sq("e8"), Promo: Rook}
	text, err := m.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if got := string(text); got != "e7e8r" {
		t.Errorf("MarshalText() = %q, want %q", got, "e7e8r")
	}

	var parsed Move
	if err := parsed.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if parsed != m {
		t.Errorf("UnmarshalText round trip = %+v, want %+v", parsed, m)
	}

	if err := (&Move{}).UnmarshalText([]byte("not-a-move")); err == nil {
		t.Error("UnmarshalText(garbage): want error, got nil")
	}
}
