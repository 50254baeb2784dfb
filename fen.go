/*
fen.go implements conversions between Forsyth-Edwards Notation (FEN)
strings and a [Position]. ParseFEN reports malformed input to the caller
as an error rather than panicking — there is no recoverable default for a
FEN string that names an unknown piece letter or is missing a field.
*/

package bitengine

import (
	"fmt"
	"strings"
)

// Each FEN string consists of six space-separated fields:
//  1. Piece placement.
//  2. Active color: "w" or "b".
//  3. Castling rights, or "-" if neither side can castle.
//  4. En passant target square, or "-" if none.
//  5. Halfmove clock (accepted, ignored).
//  6. Fullmove number (accepted, ignored).

// ParseFEN parses the given FEN string into a [Position], consuming the
// first four fields and ignoring the halfmove/fullmove counters.  It
// returns a wrapped [ErrMalformedFEN] if the string has too few fields, an
// unrecognized piece letter, or an invalid side-to-move character.
func ParseFEN(fen string) (Position, error) {
	var p Position

	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Position{}, fmt.Errorf("%w: expected at least 4 fields, got %d", ErrMalformedFEN, len(fields))
	}

	if err := parsePlacement(&p, fields[0]); err != nil {
		return Position{}, err
	}
	p.recomputeOccupancy()

	switch fields[1] {
	case "w":
		p.Turn = White
	case "b":
		p.Turn = Black
	default:
		return Position{}, fmt.Errorf("%w: invalid side to move %q", ErrMalformedFEN, fields[1])
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				p.Castling |= H1
			case 'Q':
				p.Castling |= A1
			case 'k':
				p.Castling |= H8
			case 'q':
				p.Castling |= A8
			default:
				return Position{}, fmt.Errorf("%w: invalid castling letter %q", ErrMalformedFEN, fields[2][i])
			}
		}
	}

	if fields[3] != "-" {
		sq, err := string2Square(fields[3])
		if err != nil {
			return Position{}, err
		}
		p.EnPassant = uint64(1) << sq
	}

	return p, nil
}

// parsePlacement parses the piece-placement field (FEN field 1) into p's
// Pieces array.  The cursor starts at square 56 (a8); '/' steps down one
// rank (minus the eight files just consumed), digits 1..8 skip that many
// empty squares, and letters place a piece and advance by one.
func parsePlacement(p *Position, placement string) error {
	square := 56

	for i := 0; i < len(placement); i++ {
		char := placement[i]

		switch {
		case char == '/':
			square -= 16
		case char >= '1' && char <= '8':
			square += int(char - '0')
		default:
			color, kind, err := pieceFromFENLetter(char)
			if err != nil {
				return err
			}
			if square < 0 || square > 63 {
				return fmt.Errorf("%w: piece placement overruns the board", ErrMalformedFEN)
			}
			p.Pieces[color][kind] |= uint64(1) << square
			square++
		}
	}

	return nil
}

// pieceFromFENLetter maps a FEN piece letter to its (color,kind).
func pieceFromFENLetter(char byte) (Color, Piece, error) {
	switch char {
	case 'P':
		return White, Pawn, nil
	case 'N':
		return White, Knight, nil
	case 'B':
		return White, Bishop, nil
	case 'R':
		return White, Rook, nil
	case 'Q':
		return White, Queen, nil
	case 'K':
		return White, King, nil
	case 'p':
		return Black, Pawn, nil
	case 'n':
		return Black, Knight, nil
	case 'b':
		return Black, Bishop, nil
	case 'r':
		return Black, Rook, nil
	case 'q':
		return Black, Queen, nil
	case 'k':
		return Black, King, nil
	}
	return White, PieceNone, fmt.Errorf("%w: unrecognized piece letter %q", ErrMalformedFEN, char)
}

// string2Square parses an algebraic square name ("e3") into a 0..63 index.
func string2Square(str string) (int, error) {
	if len(str) != 2 {
		return 0, fmt.Errorf("%w: invalid square %q", ErrMalformedFEN, str)
	}
	if str[0] < 'a' || str[0] > 'h' || str[1] < '1' || str[1] > '8' {
		return 0, fmt.Errorf("%w: invalid square %q", ErrMalformedFEN, str)
	}
	file := int(str[0] - 'a')
	rank := int(str[1] - '1')
	return rank*8 + file, nil
}

// SerializeFEN serializes the specified [Position] into a FEN string,
// filling the halfmove/fullmove fields with the placeholder values "0 1"
// since [Position] does not track them.
func SerializeFEN(p Position) string {
	var fen strings.Builder
	fen.Grow(64)

	fen.WriteString(serializePlacement(p))

	if p.Turn == White {
		fen.WriteString(" w ")
	} else {
		fen.WriteString(" b ")
	}

	cnt := 0
	if p.Castling&H1 != 0 {
		fen.WriteByte('K')
		cnt++
	}
	if p.Castling&A1 != 0 {
		fen.WriteByte('Q')
		cnt++
	}
	if p.Castling&H8 != 0 {
		fen.WriteByte('k')
		cnt++
	}
	if p.Castling&A8 != 0 {
		fen.WriteByte('q')
		cnt++
	}
	if cnt == 0 {
		fen.WriteByte('-')
	}
	fen.WriteByte(' ')

	if p.EnPassant == 0 {
		fen.WriteString("- ")
	} else {
		sq := bitScan(p.EnPassant)
		fen.WriteString(Square2String[sq])
		fen.WriteByte(' ')
	}

	fen.WriteString("0 1")

	return fen.String()
}

// serializePlacement renders the piece-placement field (FEN field 1).
func serializePlacement(p Position) string {
	b := strings.Builder{}
	b.Grow(20)

	var board [64]byte
	for color := range 2 {
		for kind := range 6 {
			bb := p.Pieces[color][kind]
			for bb != 0 {
				sq := popLSB(&bb)
				board[sq] = PieceSymbols[color][kind]
			}
		}
	}

	empty := byte(0)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			square := 8*rank + file
			char := board[square]

			if char == 0 {
				empty++
			} else {
				if empty > 0 {
					b.WriteByte('0' + empty)
					empty = 0
				}
				b.WriteByte(char)
			}

			if (square+1)%8 == 0 {
				if empty > 0 {
					b.WriteByte('0' + empty)
					empty = 0
				}
				if square != 7 {
					b.WriteByte('/')
				}
			}
		}
	}

	return b.String()
}
