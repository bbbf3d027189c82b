package engine

import (
	"testing"

	"github.com/lgbarn/fenmove-go/internal/chess"
	"github.com/lgbarn/fenmove-go/internal/errors"
	"github.com/lgbarn/fenmove-go/internal/testutil"
)

func TestEvaluateCastlingRights(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		prev chess.CastlingRights
		want chess.CastlingRights
	}{
		{
			name: "all pieces home keeps every right",
			fen:  testutil.CastlingFEN,
			prev: chess.AllCastling,
			want: chess.AllCastling,
		},
		{
			name: "rights are never added",
			fen:  testutil.CastlingFEN,
			prev: chess.WhiteKingside | chess.BlackQueenside,
			want: chess.WhiteKingside | chess.BlackQueenside,
		},
		{
			name: "white king moved",
			fen:  "r3k2r/8/8/8/8/8/4K3/R6R b KQkq",
			prev: chess.AllCastling,
			want: chess.BlackKingside | chess.BlackQueenside,
		},
		{
			name: "black king moved",
			fen:  "r2k3r/8/8/8/8/8/8/R3K2R w KQkq",
			prev: chess.AllCastling,
			want: chess.WhiteKingside | chess.WhiteQueenside,
		},
		{
			name: "white kingside rook gone",
			fen:  "r3k2r/8/8/8/8/8/8/R3K3 b KQkq",
			prev: chess.AllCastling,
			want: chess.WhiteQueenside | chess.BlackKingside | chess.BlackQueenside,
		},
		{
			name: "black queenside rook replaced by an enemy rook",
			fen:  "R3k2r/8/8/8/8/8/8/4K2R b KQkq",
			prev: chess.AllCastling,
			want: chess.WhiteKingside | chess.BlackKingside,
		},
		{
			name: "rook of the wrong colour on the corner",
			fen:  "r3k2R/8/8/8/8/8/8/R3K2r w KQkq",
			prev: chess.AllCastling,
			want: chess.WhiteQueenside | chess.BlackQueenside,
		},
		{
			name: "empty board",
			fen:  "8/8/8/8/8/8/8/8 w KQkq",
			prev: chess.AllCastling,
			want: chess.NoCastling,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			if got := EvaluateCastlingRights(tt.prev, board); got != tt.want {
				t.Errorf("EvaluateCastlingRights() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyCastle(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		kingside bool
		wantErr  bool
		checkFn  func(*chess.Board) bool
	}{
		{
			name:     "white kingside",
			fen:      testutil.CastlingFEN,
			kingside: true,
			checkFn: func(b *chess.Board) bool {
				return b.Get('g', '1') == chess.W(chess.King) &&
					b.Get('f', '1') == chess.W(chess.Rook) &&
					b.Get('e', '1') == chess.Empty &&
					b.Get('h', '1') == chess.Empty
			},
		},
		{
			name:     "black queenside",
			fen:      "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq",
			kingside: false,
			checkFn: func(b *chess.Board) bool {
				return b.Get('c', '8') == chess.B(chess.King) &&
					b.Get('d', '8') == chess.B(chess.Rook) &&
					b.Get('e', '8') == chess.Empty &&
					b.Get('a', '8') == chess.Empty
			},
		},
		{
			name:     "castling is not checked against the rights field",
			fen:      "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w -",
			kingside: true,
			checkFn: func(b *chess.Board) bool {
				return b.Get('g', '1') == chess.W(chess.King)
			},
		},
		{name: "king off its home square", fen: "4k3/8/8/8/8/8/8/R2K3R w -", kingside: false, wantErr: true},
		{name: "rook missing", fen: "4k3/8/8/8/8/8/8/R3K3 w -", kingside: true, wantErr: true},
		{name: "enemy rook on the corner", fen: "4k3/8/8/8/8/8/8/r3K3 w -", kingside: false, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			before := *board

			err = applyCastle(board, tt.kingside)
			if (err != nil) != tt.wantErr {
				t.Fatalf("applyCastle() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
				testutil.AssertEqual(t, *board, before)
				return
			}
			if tt.checkFn != nil && !tt.checkFn(board) {
				t.Error("applyCastle() board check failed")
			}
		})
	}
}
