/*
attacks.go implements the attack-query primitive used both to decide
legality at a perft leaf (was the mover's own king left in check?) and to
forbid castling through or into an attacked square during generation.
*/

package bitengine

// IsAttacked reports whether any square in squares is attacked by any
// piece of the given attacker color in pos.
//
// The slider check uses the symmetric-attacker trick: a diagonal attacker
// of sq from y exists iff a bishop placed on sq could reach y, so the same
// ray/blocker-propagation logic that generates bishop and rook moves
// (sliders.go) is reused here against the actual board occupancy, with the
// roles of mover and target swapped.
func IsAttacked(pos Position, squares uint64, attacker Color) bool {
	for squares != 0 {
		sq := popLSB(&squares)

		if pos.Pieces[attacker][Pawn]&attackedByPawn[attacker][sq] != 0 {
			return true
		}
		if pos.Pieces[attacker][Knight]&knightAttacks[sq] != 0 {
			return true
		}
		if pos.Pieces[attacker][King]&kingAttacks[sq] != 0 {
			return true
		}
		if bishopTargets(sq, pos.Occupied[Both])&(pos.Pieces[attacker][Bishop]|pos.Pieces[attacker][Queen]) != 0 {
			return true
		}
		if rookTargets(sq, pos.Occupied[Both])&(pos.Pieces[attacker][Rook]|pos.Pieces[attacker][Queen]) != 0 {
			return true
		}
	}
	return false
}
