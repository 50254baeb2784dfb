package perft

import (
	"testing"

	"github.com/go-chess/bitengine"
)

func TestPerftReferenceCounts(t *testing.T) {
	testcases := []struct {
		name  string
		fen   string
		depth int
		want  int
	}{
		{"initial position, depth 1", bitengine.InitialPos, 1, 20},
		{"initial position, depth 2", bitengine.InitialPos, 2, 400},
		{"initial position, depth 3", bitengine.InitialPos, 3, 8902},
		{"initial position, depth 4", bitengine.InitialPos, 4, 197281},
		{
			"Kiwipete, depth 3",
			"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			3, 97862,
		},
		{
			"endgame position, depth 4",
			"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
			4, 43238,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := bitengine.ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q): %v", tc.fen, err)
			}
			got := Perft(pos, tc.depth)
			if got != tc.want {
				t.Fatalf("Perft(depth=%d): expected %d, got %d", tc.depth, tc.want, got)
			}
		})
	}
}

func TestDivideSumsToPerft(t *testing.T) {
	pos, err := bitengine.ParseFEN(bitengine.InitialPos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	counts := Divide(pos, 3)

	sum := 0
	for _, n := range counts {
		sum += n
	}
	if sum != 8902 {
		t.Fatalf("divide total: expected 8902, got %d", sum)
	}
	if len(counts) != 20 {
		t.Fatalf("expected 20 root moves, got %d", len(counts))
	}
}

func BenchmarkPerftDepth4(b *testing.B) {
	pos, err := bitengine.ParseFEN(bitengine.InitialPos)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	for range b.N {
		Perft(pos, 4)
	}
}
