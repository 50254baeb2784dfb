/*
movegen.go implements pseudo-legal move generation. The generator yields
moves for the side to move only, one piece kind at a time, using the
lowest-set-bit / clear-lowest-set-bit idiom (bitutil.go) to visit each
piece once and each destination once.

Legality (does the move leave the mover's own king in check) is not
checked here — castling is the one exception, since its legality
conditions are part of how the move is generated, not a filter applied
afterward. Everything else is left to the caller (perft's legality
filter, via [IsAttacked]).
*/

package bitengine

// GenMoves appends every pseudo-legal move available to pos.Turn to list.
func GenMoves(pos *Position, list *MoveList) {
	genPawnMoves(pos, list)
	genKnightMoves(pos, list)
	genSliderMoves(pos, list, Bishop, bishopTargets)
	genSliderMoves(pos, list, Rook, rookTargets)
	genSliderMoves(pos, list, Queen, queenTargets)
	genKingMoves(pos, list)
}

// genPawnMoves builds the push and capture targets for one side's pawns.
// The two-push table already contains the one-push square, so masking it
// against emptiness yields "one-push if two is blocked, both if both are
// empty" without branching on rank.
func genPawnMoves(pos *Position, list *MoveList) {
	c := pos.Turn
	opp := 1 ^ c
	occupied := pos.Occupied[Both]
	pawns := pos.Pieces[c][Pawn]

	for pawns != 0 {
		src := popLSB(&pawns)
		from := uint64(1) << src

		var targets uint64
		if one := pawnOnePush[c][src] &^ occupied; one != 0 {
			targets = pawnTwoPush[c][src] &^ occupied
		}
		targets |= pawnAttacks[c][src] & (pos.Occupied[opp] | pos.EnPassant)

		for targets != 0 {
			to := popLSB(&targets)
			toMask := uint64(1) << to
			emitPawnMove(pos, list, from, toMask, c)
		}
	}
}

// emitPawnMove classifies and appends a single pawn destination: en
// passant, promotion (fanned out into all four promoted kinds), or a
// plain push/capture.
func emitPawnMove(pos *Position, list *MoveList, from, to uint64, c Color) {
	opp := 1 ^ c

	if to == pos.EnPassant && to&pos.Occupied[opp] == 0 {
		list.Push(Move{From: from, To: to, Piece: Pawn, Capture: Pawn, Promotion: PieceNone, Type: MoveEnPassant})
		return
	}

	capture := PieceNone
	if to&pos.Occupied[opp] != 0 {
		_, capture = pos.PieceAt(to)
	}

	if to&promotionRank[c] != 0 {
		for _, promo := range [4]Piece{Knight, Bishop, Rook, Queen} {
			list.Push(Move{From: from, To: to, Piece: Pawn, Capture: capture, Promotion: promo, Type: MovePromotion})
		}
		return
	}

	list.Push(Move{From: from, To: to, Piece: Pawn, Capture: capture, Promotion: PieceNone, Type: MoveNormal})
}

// genKnightMoves generates knight destinations: the precomputed leaper
// table for src, minus squares already held by the side to move.
func genKnightMoves(pos *Position, list *MoveList) {
	c := pos.Turn
	knights := pos.Pieces[c][Knight]
	for knights != 0 {
		src := popLSB(&knights)
		targets := knightAttacks[src] &^ pos.Occupied[c]
		emitNormalMoves(pos, list, src, Knight, targets)
	}
}

// genSliderMoves generates bishop, rook, or queen moves: lookup is the
// ray/blocker-propagation function for the relevant piece kind
// (sliders.go).
func genSliderMoves(pos *Position, list *MoveList, kind Piece, lookup func(int, uint64) uint64) {
	c := pos.Turn
	pieces := pos.Pieces[c][kind]
	for pieces != 0 {
		src := popLSB(&pieces)
		targets := lookup(src, pos.Occupied[Both]) &^ pos.Occupied[c]
		emitNormalMoves(pos, list, src, kind, targets)
	}
}

// genKingMoves generates plain king steps with no attack filtering
// (legality is left to the caller) plus castling, whose legality
// conditions (right held, path empty, king not attacked while starting
// or passing through) are checked at generation time.
func genKingMoves(pos *Position, list *MoveList) {
	c := pos.Turn
	if pos.Pieces[c][King] == 0 {
		return
	}
	src := bitScan(pos.Pieces[c][King])
	from := uint64(1) << src

	targets := kingAttacks[src] &^ pos.Occupied[c]
	emitNormalMoves(pos, list, src, King, targets)

	for _, side := range [2]int{Queenside, Kingside} {
		if !pos.canCastle(side) {
			continue
		}
		rook := castlingRookHome[c][side]
		var to uint64
		if side == Queenside {
			to = rook << 2
		} else {
			to = rook >> 1
		}
		list.Push(Move{From: from, To: to, Piece: King, Capture: PieceNone, Promotion: PieceNone, Type: MoveCastling})
	}
}

// emitNormalMoves appends one Move per destination bit, classifying
// captures by scanning the opponent's piece kinds to find what stands on
// the destination.
func emitNormalMoves(pos *Position, list *MoveList, src int, kind Piece, targets uint64) {
	from := uint64(1) << src
	opp := 1 ^ pos.Turn

	for targets != 0 {
		to := popLSB(&targets)
		toMask := uint64(1) << to

		capture := PieceNone
		if toMask&pos.Occupied[opp] != 0 {
			_, capture = pos.PieceAt(toMask)
		}

		list.Push(Move{From: from, To: toMask, Piece: kind, Capture: capture, Promotion: PieceNone, Type: MoveNormal})
	}
}
