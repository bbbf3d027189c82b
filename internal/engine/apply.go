package engine

import (
	"github.com/lgbarn/fenmove-go/internal/chess"
	"github.com/lgbarn/fenmove-go/internal/errors"
	"github.com/lgbarn/fenmove-go/internal/parser"
)

// ApplyMove applies a decoded move to the board and updates the side to
// move and the castling rights. The origin square is resolved before the
// board is touched, so on error the board is unchanged.
func ApplyMove(board *chess.Board, move *chess.Move) error {
	if move == nil {
		return errors.Wrap(errors.ErrMalformedMove, "nil move")
	}

	var err error
	switch {
	case move.IsCastle():
		err = applyCastle(board, move.Class == chess.KingsideCastle)

	case move.Class == chess.PawnMove:
		err = applyPawnMove(board, move)

	case move.Class == chess.PieceMove:
		err = applyPieceMove(board, move)

	default:
		err = errors.Wrapf(errors.ErrMalformedMove, "move %q has no usable class", move.Text)
	}
	if err != nil {
		return err
	}

	board.Castling = EvaluateCastlingRights(board.Castling, board)
	board.ToMove = board.ToMove.Opposite()
	return nil
}

// applyPawnMove applies a pawn move, removing a pawn taken en passant.
func applyPawnMove(board *chess.Board, move *chess.Move) error {
	sources, enPassant, err := findPawnSources(board, move, board.ToMove)
	if err != nil {
		return err
	}
	relocate(board, disambiguate(sources, move), move.To(), enPassant, chess.Pawn)
	return nil
}

// applyPieceMove applies a piece (non-pawn) move.
func applyPieceMove(board *chess.Board, move *chess.Move) error {
	sources, err := findPieceSources(board, move, board.ToMove)
	if err != nil {
		return err
	}
	relocate(board, disambiguate(sources, move), move.To(), chess.Square{}, move.PieceToMove)
	return nil
}

// relocate clears the origin and the en passant victim, if any, and puts the
// side to move's piece on the destination, replacing whatever stood there.
func relocate(board *chess.Board, from, to, enPassant chess.Square, piece chess.Piece) {
	board.Put(from, chess.Empty)
	if enPassant.IsValid() {
		board.Put(enPassant, chess.Empty)
	}
	board.Put(to, chess.MakeColouredPiece(board.ToMove, piece))
}

// ApplyMoveFEN returns the FEN after playing moveText in the position fen.
// The result has the form "<placement> <side to move> <castling rights>".
func ApplyMoveFEN(fen, moveText string) (string, error) {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		return "", err
	}

	move, err := parser.DecodeMove(moveText)
	if err != nil {
		return "", err
	}

	if err := ApplyMove(board, move); err != nil {
		return "", err
	}
	return BoardToFEN(board), nil
}

// ReplayMoves plays the moves in order from fen and returns the final FEN.
// A failure is reported as a *errors.MoveError naming the ply, the move and
// the position it was played in.
func ReplayMoves(fen string, moves []string) (string, error) {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		return "", err
	}

	for i, moveText := range moves {
		before := BoardToFEN(board)

		move, err := parser.DecodeMove(moveText)
		if err == nil {
			err = ApplyMove(board, move)
		}
		if err != nil {
			return "", &errors.MoveError{
				Err:      err,
				PlyNum:   i + 1,
				MoveText: moveText,
				FEN:      before,
			}
		}
	}
	return BoardToFEN(board), nil
}
