package chess

// CastlingRights is the set of castling options still available.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// castlingOrder is the canonical FEN order of the rights.
var castlingOrder = []struct {
	right  CastlingRights
	letter byte
}{
	{WhiteKingside, 'K'},
	{WhiteQueenside, 'Q'},
	{BlackKingside, 'k'},
	{BlackQueenside, 'q'},
}

// Has reports whether every right in r is present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// Without returns the rights with r removed.
func (c CastlingRights) Without(r CastlingRights) CastlingRights {
	return c &^ r
}

// String renders the rights as a FEN castling field, "-" when empty.
func (c CastlingRights) String() string {
	var buf []byte
	for _, o := range castlingOrder {
		if c.Has(o.right) {
			buf = append(buf, o.letter)
		}
	}
	if len(buf) == 0 {
		return "-"
	}
	return string(buf)
}

// CastlingRightFromLetter maps a FEN castling letter to its right.
func CastlingRightFromLetter(letter byte) (CastlingRights, bool) {
	for _, o := range castlingOrder {
		if o.letter == letter {
			return o.right, true
		}
	}
	return NoCastling, false
}

// Board represents a chess board together with the side to move and
// the castling rights carried by a FEN string.
type Board struct {
	// The board squares, indexed Squares[col][rank] with 0-based indices.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Castling options still open.
	Castling CastlingRights
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	b := &Board{ToMove: White}
	b.Clear()
	return b
}

// Clear empties every square.
func (b *Board) Clear() {
	for col := 0; col < BoardSize; col++ {
		for rank := 0; rank < BoardSize; rank++ {
			b.Squares[col][rank] = Empty
		}
	}
}

// Get returns the piece at the given coordinates (using char coords 'a'-'h', '1'-'8').
// Coordinates off the board yield Off.
func (b *Board) Get(col Col, rank Rank) Piece {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c < 0 || r < 0 {
		return Off
	}
	return b.Squares[c][r]
}

// Set places a piece at the given coordinates. Coordinates off the board are ignored.
func (b *Board) Set(col Col, rank Rank, piece Piece) {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c >= 0 && r >= 0 {
		b.Squares[c][r] = piece
	}
}

// At returns the piece on a square.
func (b *Board) At(sq Square) Piece {
	return b.Get(sq.Col, sq.Rank)
}

// Put places a piece on a square.
func (b *Board) Put(sq Square, piece Piece) {
	b.Set(sq.Col, sq.Rank, piece)
}

// Find returns every square holding the given coloured piece, scanning
// rank 1 to rank 8 and, within a rank, column a to column h.
func (b *Board) Find(piece Piece) []Square {
	var squares []Square
	for rank := Rank(FirstRank); rank <= LastRank; rank++ {
		for col := Col(FirstCol); col <= LastCol; col++ {
			if b.Get(col, rank) == piece {
				squares = append(squares, Sq(col, rank))
			}
		}
	}
	return squares
}
