package bitengine

import (
	"errors"
	"testing"
)

func TestParseFEN(t *testing.T) {
	testcases := []struct {
		name     string
		fen      string
		expected Position
	}{
		{
			"initial position",
			InitialPos,
			Position{
				Pieces: [2][6]uint64{
					White: {Pawn: 0xFF00, Knight: 0x42, Bishop: 0x24, Rook: 0x81, Queen: 0x8, King: 0x10},
					Black: {
						Pawn: 0xFF000000000000, Knight: 0x4200000000000000,
						Bishop: 0x2400000000000000, Rook: 0x8100000000000000,
						Queen: 0x800000000000000, King: 0x1000000000000000,
					},
				},
				Occupied: [3]uint64{
					White: 0xFFFF, Black: 0xFFFF000000000000, Both: 0xFFFF00000000FFFF,
				},
				Turn:     White,
				Castling: A1 | H1 | A8 | H8,
			},
		},
		{
			"black to move with an en passant target",
			"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			Position{Turn: Black, Castling: A1 | H1 | A8 | H8, EnPassant: E3},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Turn != tc.expected.Turn {
				t.Fatalf("turn: expected %v got %v", tc.expected.Turn, p.Turn)
			}
			if p.Castling != tc.expected.Castling {
				t.Fatalf("castling: expected %x got %x", tc.expected.Castling, p.Castling)
			}
			if p.EnPassant != tc.expected.EnPassant {
				t.Fatalf("en passant: expected %x got %x", tc.expected.EnPassant, p.EnPassant)
			}
			if tc.name == "initial position" && p.Pieces != tc.expected.Pieces {
				t.Fatalf("pieces: expected %v got %v", tc.expected.Pieces, p.Pieces)
			}
		})
	}
}

func TestParseFENMalformed(t *testing.T) {
	testcases := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnXqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	}

	for _, fen := range testcases {
		if _, err := ParseFEN(fen); !errors.Is(err, ErrMalformedFEN) {
			t.Fatalf("ParseFEN(%q): expected ErrMalformedFEN, got %v", fen, err)
		}
	}
}

func TestSerializeFENRoundTrip(t *testing.T) {
	fens := []string{
		InitialPos,
		"1r3r2/4bpkp/1qb1p1p1/3pP1P1/p1pP1Q2/PpP2N1R/1Pn1B2P/3RB2K w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/5P2/8/PPPPP1PP/RNBQKBNR b KQkq f3 0 1",
		"4k3/8/8/8/8/3P4/2K5/8 w - - 0 64",
	}

	for _, fen := range fens {
		p, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		got := SerializeFEN(p)
		reparsed, err := ParseFEN(got)
		if err != nil {
			t.Fatalf("round trip re-parse of %q: %v", got, err)
		}
		if reparsed != p {
			t.Fatalf("round trip mismatch for %q: got %q", fen, got)
		}
	}
}

func BenchmarkParseFEN(b *testing.B) {
	for range b.N {
		ParseFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	}
}

func BenchmarkSerializeFEN(b *testing.B) {
	p, _ := ParseFEN(InitialPos)
	for range b.N {
		SerializeFEN(p)
	}
}
