/*
bitutil.go implements the bit-manipulation primitives used throughout move
generation and state mutation: the LSB idiom (isolate the lowest set bit,
clear it) and population count.
*/

package bitengine

import "math/bits"

/*
CountBits returns the number of bits set within the bitboard.
*/
func CountBits(bitboard uint64) int {
	return bits.OnesCount64(bitboard)
}

/*
bitScan returns the index of the LSB within the bitboard.

NOTE: bitScan returns 64 for the empty bitboard (no bit is set); callers
must not call it on a zero bitboard when a valid square is required.
*/
func bitScan(bitboard uint64) int {
	return bits.TrailingZeros64(bitboard)
}

/*
popLSB removes the LSB from the bitboard and returns its index.  This is the
standard lsb = x & -x; x &= x-1 idiom used to iterate set members one at a
time.
*/
func popLSB(bitboard *uint64) int {
	lsb := bitScan(*bitboard)
	*bitboard &= *bitboard - 1
	return lsb
}
