package engine

import (
	"github.com/lgbarn/fenmove-go/internal/chess"
	"github.com/lgbarn/fenmove-go/internal/errors"
)

// findPawnSources returns the squares a pawn of colour could have come from
// to make the move. For a capture onto an empty square with an enemy pawn
// directly behind it, the second result is that pawn's square (en passant);
// otherwise it is the zero Square.
func findPawnSources(board *chess.Board, move *chess.Move, colour chess.Colour) ([]chess.Square, chess.Square, error) {
	to := move.To()
	pawn := chess.MakeColouredPiece(colour, chess.Pawn)
	direction := chess.ColourOffset(colour)

	if !move.IsCapture() {
		// Single push
		from := to.Offset(0, -direction)
		if board.At(from) == pawn {
			return []chess.Square{from}, chess.Square{}, nil
		}

		// Double push, only from the start rank
		from = to.Offset(0, -2*direction)
		if from.Rank == chess.PawnStartRank(colour) && board.At(from) == pawn {
			return []chess.Square{from}, chess.Square{}, nil
		}

		return nil, chess.Square{}, errors.Wrapf(errors.ErrIllegalMove, "no %s pawn can advance to %s", colour, to)
	}

	// Higher column first.
	var sources []chess.Square
	for _, dCol := range []int{1, -1} {
		from := to.Offset(dCol, -direction)
		if board.At(from) == pawn {
			sources = append(sources, from)
		}
	}
	if len(sources) == 0 {
		return nil, chess.Square{}, errors.Wrapf(errors.ErrIllegalMove, "no %s pawn can capture on %s", colour, to)
	}

	var enPassant chess.Square
	behind := to.Offset(0, -direction)
	if board.At(to) == chess.Empty && board.At(behind) == chess.MakeColouredPiece(colour.Opposite(), chess.Pawn) {
		enPassant = behind
	}

	return sources, enPassant, nil
}
