package chess

// Move describes one decoded algebraic move token. It carries what the
// token says, not where the piece comes from: the origin is resolved
// against a board later.
type Move struct {
	// The move text (e.g., "Nf3", "e4", "0-0").
	Text string

	// Class of move (pawn move, piece move, castle).
	Class MoveClass

	// The piece being moved.
	PieceToMove Piece

	// Destination square. Unset for castling.
	ToCol  Col
	ToRank Rank

	// Origin hints from the token (e.g. the 'b' of "Nbd2"). Zero when absent.
	FromCol  Col
	FromRank Rank

	// Whether the token marks a capture with 'x'.
	Capture bool
}

// NewMove creates a new empty move.
func NewMove() *Move {
	return &Move{
		Class:       UnknownMove,
		PieceToMove: Empty,
	}
}

// To returns the destination square.
func (m *Move) To() Square {
	return Sq(m.ToCol, m.ToRank)
}

// HasHint reports whether the token carried an origin column or rank.
func (m *Move) HasHint() bool {
	return m.FromCol != 0 || m.FromRank != 0
}

// IsCapture returns true if this move is a capture.
func (m *Move) IsCapture() bool {
	return m.Capture
}

// IsCastle returns true if this move is a castling move.
func (m *Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}
