// Package parser decodes algebraic move tokens into move descriptors.
package parser

import (
	"strings"

	"github.com/lgbarn/fenmove-go/internal/chess"
	"github.com/lgbarn/fenmove-go/internal/errors"
)

// Castling tokens, in both the digit and the letter spelling.
var castlingTokens = map[string]chess.MoveClass{
	"0-0":   chess.KingsideCastle,
	"O-O":   chess.KingsideCastle,
	"0-0-0": chess.QueensideCastle,
	"O-O-O": chess.QueensideCastle,
}

// isCol returns true if c is a valid column (file) character.
func isCol(c byte) bool {
	return c >= chess.FirstCol && c <= chess.LastCol
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= chess.FirstRank && c <= chess.LastRank
}

// isCheck returns true if c is a check indicator.
func isCheck(c byte) bool {
	return c == '+' || c == '#'
}

// isUpper returns true if c is an ASCII capital letter.
func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// pieceFromLetter returns the piece named by a SAN piece letter.
// Pawns have no letter, so 'P' is not recognised.
func pieceFromLetter(c byte) chess.Piece {
	switch c {
	case 'K':
		return chess.King
	case 'Q':
		return chess.Queen
	case 'R':
		return chess.Rook
	case 'B':
		return chess.Bishop
	case 'N':
		return chess.Knight
	}
	return chess.Empty
}

// isPromotionSuffix reports whether body ends in a promotion such as
// "=Q" or "8Q".
func isPromotionSuffix(body string) bool {
	if strings.IndexByte(body, '=') >= 0 {
		return true
	}
	n := len(body)
	return n >= 2 && pieceFromLetter(body[n-1]) != chess.Empty && isRank(body[n-2])
}

// DecodeMove parses a move string and returns a Move structure with decoded information.
//
// Accepted tokens are castling ("0-0", "O-O", "0-0-0", "O-O-O") and
// [RNBQK]?[a-h]?[1-8]?x?[a-h][1-8], optionally followed by '+' or '#'.
// Promotions and unknown piece letters fail with ErrUnsupportedMove;
// anything else that does not fit fails with ErrMalformedMove.
func DecodeMove(moveString string) (*chess.Move, error) {
	move := chess.NewMove()
	move.Text = moveString

	text := moveString
	for len(text) > 0 && isCheck(text[len(text)-1]) {
		text = text[:len(text)-1]
	}
	if text == "" {
		return nil, errors.Wrapf(errors.ErrMalformedMove, "empty move %q", moveString)
	}

	if class, ok := castlingTokens[text]; ok {
		move.Class = class
		move.PieceToMove = chess.King
		return move, nil
	}

	body := text
	if isUpper(body[0]) {
		piece := pieceFromLetter(body[0])
		if piece == chess.Empty {
			return nil, errors.Wrapf(errors.ErrUnsupportedMove, "unrecognised piece letter %q in %q", body[0], moveString)
		}
		move.Class = chess.PieceMove
		move.PieceToMove = piece
		body = body[1:]
	} else {
		move.Class = chess.PawnMove
		move.PieceToMove = chess.Pawn
	}

	if isPromotionSuffix(body) {
		return nil, errors.Wrapf(errors.ErrUnsupportedMove, "promotion %q", moveString)
	}

	// The destination is always the last column and rank of the token.
	n := len(body)
	if n < 2 || !isCol(body[n-2]) || !isRank(body[n-1]) {
		return nil, errors.Wrapf(errors.ErrMalformedMove, "no destination square in %q", moveString)
	}
	move.ToCol = chess.Col(body[n-2])
	move.ToRank = chess.Rank(body[n-1])

	prefix := body[:n-2]
	if strings.HasSuffix(prefix, "x") {
		move.Capture = true
		prefix = prefix[:len(prefix)-1]
	}

	if err := decodeHints(move, prefix); err != nil {
		return nil, err
	}
	return move, nil
}

// decodeHints fills in the origin column and rank hints from the part of
// the token between the piece letter and the capture mark.
func decodeHints(move *chess.Move, prefix string) error {
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		switch {
		case isCol(c):
			if move.FromCol != 0 {
				return errors.Wrapf(errors.ErrMalformedMove, "more than one origin column in %q", move.Text)
			}
			if move.FromRank != 0 {
				return errors.Wrapf(errors.ErrMalformedMove, "origin column after origin rank in %q", move.Text)
			}
			move.FromCol = chess.Col(c)
		case isRank(c):
			if move.FromRank != 0 {
				return errors.Wrapf(errors.ErrMalformedMove, "more than one origin rank in %q", move.Text)
			}
			move.FromRank = chess.Rank(c)
		default:
			return errors.Wrapf(errors.ErrMalformedMove, "unexpected %q in %q", c, move.Text)
		}
	}
	return nil
}
