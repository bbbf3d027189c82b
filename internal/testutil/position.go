package testutil

// Positions shared by tests across packages. Each is a three-field FEN:
// placement, side to move and castling rights.
const (
	// StartFEN is the standard starting position.
	StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq"

	// CastlingFEN has every king and rook on its home square and nothing
	// between them.
	CastlingFEN = "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq"

	// WhiteEnPassantFEN has a black pawn that has just advanced d7-d5 next
	// to a white pawn on e5.
	WhiteEnPassantFEN = "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq"

	// BlackEnPassantFEN has a white pawn that has just advanced e2-e4 next
	// to a black pawn on d4.
	BlackEnPassantFEN = "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq"

	// TwoRooksFEN has white rooks on a1 and h1 with the white king out of
	// their way on g2.
	TwoRooksFEN = "4k3/8/8/8/8/8/6K1/R6R w -"

	// EmptyKingsFEN has only the two kings on their home squares.
	EmptyKingsFEN = "4k3/8/8/8/8/8/8/4K3 w -"
)
