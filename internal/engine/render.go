package engine

import (
	"strings"

	"github.com/lgbarn/chess48-go/internal/chess"
)

// Render draws the board as ASCII art: piece codes, "##" on empty dark
// squares, rank numbers on the right and files along the bottom.
//
//	bR bN bB bQ bK bB bN bR 8
//	bp bp bp bp bp bp bp bp 7
//	   ##    ##    ##    ## 6
//	...
//	 a  b  c  d  e  f  g  h
func Render(board *chess.Board) string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			switch p := board.Get(sq); {
			case p != nil:
				sb.WriteString(p.Code())
			case sq.IsDark():
				sb.WriteString(EmptySquareToken)
			default:
				sb.WriteString("  ")
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte(chess.Sq(row, 0).Rank())
		sb.WriteByte('\n')
	}
	sb.WriteString(" a  b  c  d  e  f  g  h")
	return sb.String()
}

// Grid returns the piece code on every square, "" where the square is empty.
func Grid(board *chess.Board) [chess.BoardSize][chess.BoardSize]string {
	var grid [chess.BoardSize][chess.BoardSize]string
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if p := board.Squares[row][col]; p != nil {
				grid[row][col] = p.Code()
			}
		}
	}
	return grid
}
