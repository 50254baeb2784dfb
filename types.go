// types.go contains declarations of the core chess data types shared by every
// other file in the package: piece/color/direction codes, the move encoding,
// and the move list container.

package bitengine

// Piece is an alias type to avoid bothersome conversion between int and
// Piece.  Pawn..King index the first dimension of [Position.Pieces].
type Piece = int

const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
	// PieceNone marks the absence of a captured or promoted piece.  It is
	// never a valid index into [Position.Pieces].
	PieceNone Piece = -1
)

// Color is an alias type to avoid bothersome conversion between int and
// Color.
type Color = int

const (
	White Color = iota
	Black
	// Both is an occupancy-array slot, never a piece color.
	Both
)

// Direction indexes the eight ray tables built in attacktables.go.
type Direction = int

const (
	North Direction = iota
	East
	South
	West
	NorthWest
	NorthEast
	SouthEast
	SouthWest
)

// MoveType classifies how a [Move] mutates a [Position] beyond the ordinary
// clear-origin/place-destination sequence.
type MoveType = int

const (
	MoveNormal MoveType = iota
	MoveCastling
	MovePromotion
	MoveEnPassant
)

/*
Move represents a single pseudo-legal move.  From and To are single-bit
square masks, not square indices: the generator and applier never need a
square index on their own, only the mask, so keeping masks avoids a shift
at every use site.
*/
type Move struct {
	From, To uint64
	// Piece is the kind of the piece making the move.
	Piece Piece
	// Capture is the kind of piece removed by this move, or PieceNone if
	// the move captures nothing.
	Capture Piece
	// Promotion is the kind the pawn promotes to, or PieceNone for any
	// non-promoting move.
	Promotion Piece
	Type      MoveType
}

/*
MoveList stores moves in a preallocated array to avoid per-move heap
allocation during move generation.  The maximum number of legal moves in any
reachable chess position is 218.

See https://www.talkchess.com/forum/viewtopic.php?t=61792
*/
type MoveList struct {
	Moves [218]Move
	// Len tracks the number of moves currently stored.
	Len int
}

// Push appends a move to the list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.Len] = m
	l.Len++
}

/*
The Castling* constants identify the four rook-home squares a castling
right can still be held for.  Position.Castling keys rights by rook-home square
mask rather than a 4-bit flag set, so these are square masks, not bit
positions.
*/
const (
	CastlingWhiteShort = H1 // King-side: rook starts on h1.
	CastlingWhiteLong  = A1 // Queen-side: rook starts on a1.
	CastlingBlackShort = H8
	CastlingBlackLong  = A8
)

// Queenside and Kingside index the side dimension of the castling tables
// in attacktables.go.
const (
	Queenside = 0
	Kingside  = 1
)
