/*
Package perft implements the performance-test move-tree walk: enumerate
the pseudo-legal move tree to a fixed depth and count the legal leaves.
Every node reached first checks whether the side that just moved left its
own king attacked by the side to move; such a node counts 0 and is not
expanded, so nothing below an illegal move is counted.
*/
package perft

import (
	"math/bits"

	"github.com/go-chess/bitengine"
)

// Perft walks the pseudo-legal move tree rooted at pos to the given
// depth and returns the number of legal leaf positions reached.
//
// At every depth, pos is legal iff the side that just moved (the
// opponent of pos.Turn, since pos already reflects the move that led
// here) has not left its own king attacked by the side to move; an
// illegal pos returns 0 before any move is generated from it.
func Perft(pos bitengine.Position, depth int) int {
	justMoved := 1 ^ pos.Turn
	if bitengine.IsAttacked(pos, pos.Pieces[justMoved][bitengine.King], pos.Turn) {
		return 0
	}
	if depth == 0 {
		return 1
	}

	var list bitengine.MoveList
	bitengine.GenMoves(&pos, &list)

	nodes := 0
	for _, m := range list.Moves[:list.Len] {
		child := pos
		bitengine.MakeMove(&child, m)
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// Divide runs Perft one ply at a time from the root and reports the node
// count contributed by each root move, keyed by its long algebraic
// notation (e.g. "e2e4", "e7e8q"). Used to localize a move-generator bug
// to a specific branch when a node count mismatches an expected value.
func Divide(pos bitengine.Position, depth int) map[string]int {
	var list bitengine.MoveList
	bitengine.GenMoves(&pos, &list)

	counts := make(map[string]int, list.Len)
	for _, m := range list.Moves[:list.Len] {
		child := pos
		bitengine.MakeMove(&child, m)
		counts[moveToUCI(m)] = Perft(child, depth-1)
	}
	return counts
}

// moveToUCI renders a move in long algebraic notation (e.g. "e2e4",
// "e7e8q"), suitable for keying a Divide report.
func moveToUCI(m bitengine.Move) string {
	from := bitengine.Square2String[bits.TrailingZeros64(m.From)]
	to := bitengine.Square2String[bits.TrailingZeros64(m.To)]
	s := from + to
	if m.Type == bitengine.MovePromotion {
		switch m.Promotion {
		case bitengine.Knight:
			s += "n"
		case bitengine.Bishop:
			s += "b"
		case bitengine.Rook:
			s += "r"
		case bitengine.Queen:
			s += "q"
		}
	}
	return s
}
