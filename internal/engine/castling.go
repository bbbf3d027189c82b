package engine

import (
	"github.com/lgbarn/fenmove-go/internal/chess"
	"github.com/lgbarn/fenmove-go/internal/errors"
)

// castlingHome describes where the king and rook of one castling right
// must stand for the right to survive.
type castlingHome struct {
	right   chess.CastlingRights
	colour  chess.Colour
	kingCol chess.Col
	rookCol chess.Col
}

var castlingHomes = []castlingHome{
	{chess.WhiteKingside, chess.White, 'e', 'h'},
	{chess.WhiteQueenside, chess.White, 'e', 'a'},
	{chess.BlackKingside, chess.Black, 'e', 'h'},
	{chess.BlackQueenside, chess.Black, 'e', 'a'},
}

// EvaluateCastlingRights returns the subset of prev still backed by the
// board: a right survives only while its king stands on e1/e8 and its rook
// on the matching corner. Rights are never added.
func EvaluateCastlingRights(prev chess.CastlingRights, board *chess.Board) chess.CastlingRights {
	rights := prev
	for _, home := range castlingHomes {
		rank := chess.HomeRank(home.colour)
		king := chess.MakeColouredPiece(home.colour, chess.King)
		rook := chess.MakeColouredPiece(home.colour, chess.Rook)
		if board.Get(home.kingCol, rank) != king || board.Get(home.rookCol, rank) != rook {
			rights = rights.Without(home.right)
		}
	}
	return rights
}

// applyCastle moves the king and rook of the side to move. Both must be on
// their home squares; otherwise the board is left untouched.
func applyCastle(board *chess.Board, kingside bool) error {
	colour := board.ToMove
	rank := chess.HomeRank(colour)

	kingFromCol, kingToCol := chess.Col('e'), chess.Col('c')
	rookFromCol, rookToCol := chess.Col('a'), chess.Col('d')
	if kingside {
		kingToCol = 'g'
		rookFromCol, rookToCol = 'h', 'f'
	}

	king := chess.MakeColouredPiece(colour, chess.King)
	rook := chess.MakeColouredPiece(colour, chess.Rook)
	if board.Get(kingFromCol, rank) != king {
		return errors.Wrapf(errors.ErrIllegalMove, "%s king is not on %c%c", colour, kingFromCol, rank)
	}
	if board.Get(rookFromCol, rank) != rook {
		return errors.Wrapf(errors.ErrIllegalMove, "%s rook is not on %c%c", colour, rookFromCol, rank)
	}

	// Move king
	board.Set(kingFromCol, rank, chess.Empty)
	board.Set(kingToCol, rank, king)

	// Move rook
	board.Set(rookFromCol, rank, chess.Empty)
	board.Set(rookToCol, rank, rook)

	return nil
}
