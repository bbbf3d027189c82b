package engine

import (
	"github.com/lgbarn/fenmove-go/internal/chess"
	"github.com/lgbarn/fenmove-go/internal/errors"
)

// knightOffsets are the knight jumps as (rank delta, column delta), in the
// order candidates are generated.
var knightOffsets = [8][2]int{
	{-2, -1},
	{-2, 1},
	{-1, -2},
	{-1, 2},
	{1, -2},
	{1, 2},
	{2, 1},
	{2, -1},
}

// findPieceSources returns the candidate origin squares of a piece move,
// in the order the disambiguator should consider them.
func findPieceSources(board *chess.Board, move *chess.Move, colour chess.Colour) ([]chess.Square, error) {
	to := move.To()
	piece := chess.MakeColouredPiece(colour, move.PieceToMove)

	var sources []chess.Square
	switch move.PieceToMove {
	case chess.Knight:
		sources = findKnightSources(board, to, piece)
	case chess.Rook:
		sources = findRookSources(board, to, piece)
	case chess.Bishop:
		sources = findBishopSources(board, move, piece)
	case chess.Queen, chess.King:
		sources = board.Find(piece)
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedMove, "cannot move a %s with %q", move.PieceToMove, move.Text)
	}

	if len(sources) == 0 {
		return nil, errors.Wrapf(errors.ErrIllegalMove, "no %s %s can reach %s", colour, move.PieceToMove, to)
	}
	return sources, nil
}

// findKnightSources returns the knights a knight's jump away from to.
func findKnightSources(board *chess.Board, to chess.Square, knight chess.Piece) []chess.Square {
	var sources []chess.Square
	for _, off := range knightOffsets {
		from := to.Offset(off[1], off[0])
		if board.At(from) == knight {
			sources = append(sources, from)
		}
	}
	return sources
}

// findRookSources returns the rooks on the destination's rank, or when
// there are none, the rooks on its column. A rook already sharing the rank
// is taken to be moving horizontally.
func findRookSources(board *chess.Board, to chess.Square, rook chess.Piece) []chess.Square {
	var sources []chess.Square
	for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
		if board.Get(col, to.Rank) == rook {
			sources = append(sources, chess.Sq(col, to.Rank))
		}
	}
	if len(sources) > 0 {
		return sources
	}

	for rank := chess.Rank(chess.FirstRank); rank <= chess.LastRank; rank++ {
		if board.Get(to.Col, rank) == rook {
			sources = append(sources, chess.Sq(to.Col, rank))
		}
	}
	return sources
}

// findBishopSources returns the bishop that travels on the destination's
// square colour. Bishops of the wrong parity cannot reach it.
//
// Several same-parity bishops only arise after a promotion. Origin hints
// are tried first; failing those, the rank of the first bishop found wins
// and on that rank the bishop on the highest column is chosen.
func findBishopSources(board *chess.Board, move *chess.Move, bishop chess.Piece) []chess.Square {
	to := move.To()

	var sources []chess.Square
	for _, sq := range board.Find(bishop) {
		if sq.Parity() == to.Parity() {
			sources = append(sources, sq)
		}
	}
	if len(sources) <= 1 {
		return sources
	}

	if move.HasHint() {
		if sq, ok := matchHint(sources, move); ok {
			return []chess.Square{sq}
		}
	}

	chosen := sources[0]
	for _, sq := range sources[1:] {
		if sq.Rank == chosen.Rank && sq.Col > chosen.Col {
			chosen = sq
		}
	}
	return []chess.Square{chosen}
}
