// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// FENLetter returns the side-to-move letter used in FEN strings.
func (c Colour) FENLetter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Piece represents a chess piece type.
type Piece int

const (
	Off   Piece = iota // Outside the board
	Empty              // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Off", "Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// MoveClass categorizes the move tokens the parser understands.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PieceMove
	KingsideCastle
	QueensideCastle
	UnknownMove
)

// String returns the name of the move class.
func (c MoveClass) String() string {
	switch c {
	case PawnMove:
		return "PawnMove"
	case PieceMove:
		return "PieceMove"
	case KingsideCastle:
		return "KingsideCastle"
	case QueensideCastle:
		return "QueensideCastle"
	default:
		return "UnknownMove"
	}
}

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// IsValid reports whether the rank lies on the board.
func (r Rank) IsValid() bool {
	return r >= FirstRank && r <= LastRank
}

// IsValid reports whether the column lies on the board.
func (c Col) IsValid() bool {
	return c >= FirstCol && c <= LastCol
}

// RankConvert converts a rank character to a board array index.
// It returns -1 for ranks off the board.
func RankConvert(rank Rank) int {
	if rank.IsValid() {
		return int(rank - RankBase)
	}
	return -1
}

// ColConvert converts a column character to a board array index.
// It returns -1 for columns off the board.
func ColConvert(col Col) int {
	if col.IsValid() {
		return int(col - ColBase)
	}
	return -1
}

// ToRank converts a board array index back to a rank character.
func ToRank(r int) Rank {
	return Rank(r + int(RankBase))
}

// ToCol converts a board array index back to a column character.
func ToCol(c int) Col {
	return Col(c + int(ColBase))
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank of the given colour.
func HomeRank(colour Colour) Rank {
	if colour == White {
		return FirstRank
	}
	return LastRank
}

// PawnStartRank returns the rank the colour's pawns start on.
func PawnStartRank(colour Colour) Rank {
	if colour == White {
		return FirstRank + 1
	}
	return LastRank - 1
}

// Square identifies one board square. The zero Square is not on the board
// and is used to mean "no square".
type Square struct {
	Col  Col
	Rank Rank
}

// Sq builds a square from character coordinates.
func Sq(col Col, rank Rank) Square {
	return Square{Col: col, Rank: rank}
}

// IsValid reports whether the square lies on the board.
func (s Square) IsValid() bool {
	return s.Col.IsValid() && s.Rank.IsValid()
}

// Offset returns the square shifted by the given column and rank deltas.
// The result may be off the board.
func (s Square) Offset(dCol, dRank int) Square {
	return Square{Col: Col(int(s.Col) + dCol), Rank: Rank(int(s.Rank) + dRank)}
}

// Parity returns the square colour parity, (file + rank) mod 2 with a1 = 0.
func (s Square) Parity() int {
	return (ColConvert(s.Col) + RankConvert(s.Rank)) % 2
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return string([]byte{byte(s.Col), byte(s.Rank)})
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}
