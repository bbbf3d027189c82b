// Package engine decodes positions, resolves moves against them and
// applies the moves.
package engine

import (
	"strings"
	"unicode"

	"github.com/lgbarn/fenmove-go/internal/chess"
	"github.com/lgbarn/fenmove-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
// Clocks and the en passant field are not part of the positions this
// package reads and writes.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq"

// SAN piece characters for FEN strings (always English).
var sanPieceChars = map[chess.Piece]byte{
	chess.Pawn:   'P',
	chess.Knight: 'N',
	chess.Bishop: 'B',
	chess.Rook:   'R',
	chess.Queen:  'Q',
	chess.King:   'K',
}

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// SANPieceLetter returns the SAN letter for a piece.
func SANPieceLetter(piece chess.Piece) byte {
	if c, ok := sanPieceChars[piece]; ok {
		return c
	}
	return '?'
}

// ColouredPieceToSANLetter returns the SAN letter for a coloured piece.
func ColouredPieceToSANLetter(colouredPiece chess.Piece) byte {
	piece := chess.ExtractPiece(colouredPiece)
	letter := SANPieceLetter(piece)
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a FEN string.
//
// Only the first three fields are read: piece placement, side to move and
// castling rights. A missing side to move means White; missing rights mean
// none. Later fields are ignored.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, errors.Wrap(errors.ErrMalformedFEN, "empty FEN string")
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}

	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}

	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// Ranks come in FEN order, rank 8 first.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return errors.Wrapf(errors.ErrMalformedFEN, "placement %q has %d ranks", positions, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := chess.Rank(chess.LastRank - i)
		if err := parseRank(board, rank, rankStr); err != nil {
			return err
		}
	}
	return nil
}

// parseRank fills one rank from its FEN text.
func parseRank(board *chess.Board, rank chess.Rank, rankStr string) error {
	col := 0
	for i := 0; i < len(rankStr); i++ {
		c := rankStr[i]
		if c >= '1' && c <= '8' {
			col += int(c - '0')
			if col > chess.BoardSize {
				break
			}
			continue
		}

		piece := ConvertFENCharToPiece(c)
		if piece == chess.Empty {
			return errors.Wrapf(errors.ErrMalformedFEN, "invalid piece character %q on rank %c", c, rank)
		}
		if col >= chess.BoardSize {
			col++
			break
		}

		if unicode.IsLower(rune(c)) {
			piece = chess.B(piece)
		} else {
			piece = chess.W(piece)
		}
		board.Set(chess.ToCol(col), rank, piece)
		col++
	}

	if col != chess.BoardSize {
		return errors.Wrapf(errors.ErrMalformedFEN, "rank %c %q does not describe %d squares", rank, rankStr, chess.BoardSize)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		board.ToMove = chess.White
		return nil
	}
	switch strings.ToLower(parts[1]) {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return errors.Wrapf(errors.ErrMalformedFEN, "invalid side to move: %s", parts[1])
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, parts []string) error {
	board.Castling = chess.NoCastling

	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for i := 0; i < len(parts[2]); i++ {
		right, ok := chess.CastlingRightFromLetter(parts[2][i])
		if !ok {
			return errors.Wrapf(errors.ErrMalformedFEN, "invalid castling field: %s", parts[2])
		}
		board.Castling |= right
	}
	return nil
}

// BoardToFEN converts a board to a FEN string of the form
// "<placement> <side to move> <castling rights>".
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	sb.WriteString(EncodePlacement(board))
	sb.WriteByte(' ')
	sb.WriteByte(board.ToMove.FENLetter())
	sb.WriteByte(' ')
	sb.WriteString(board.Castling.String())

	return sb.String()
}

// EncodePlacement returns only the piece placement field of the board.
func EncodePlacement(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.Rank('8'); rank >= '1'; rank-- {
		emptyCount := 0
		for col := chess.Col('a'); col <= 'h'; col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToSANLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > '1' {
			sb.WriteByte('/')
		}
	}
}
