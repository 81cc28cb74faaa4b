package engine

import "github.com/lgbarn/chess48-go/internal/chess"

var (
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// resolveSliding checks a bishop, rook or queen move along a clear line.
func resolveSliding(board *chess.Board, piece *chess.Piece, from, to chess.Square, diagonal, straight bool) (Resolution, bool) {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)

	switch {
	case diagonal && rowDiff == colDiff:
		if !isDiagonalClear(board, from, to) {
			return Resolution{}, false
		}
	case straight && (rowDiff == 0 || colDiff == 0):
		if !isStraightClear(board, from, to) {
			return Resolution{}, false
		}
	default:
		return Resolution{}, false
	}

	return landOn(board, piece.Colour, to)
}

// isDiagonalClear checks that every square strictly between from and to on a diagonal is empty.
func isDiagonalClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	sq := from.Offset(rowDir, colDir)
	for sq.Row != to.Row && sq.Col != to.Col {
		if board.Get(sq) != nil {
			return false
		}
		sq = sq.Offset(rowDir, colDir)
	}

	return true
}

// isStraightClear checks that every square strictly between from and to on a rank or file is empty.
func isStraightClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	sq := from.Offset(rowDir, colDir)
	for sq != to {
		if board.Get(sq) != nil {
			return false
		}
		sq = sq.Offset(rowDir, colDir)
	}

	return true
}

// slidingTargets walks each ray outward until the edge or the first piece,
// which is included only when it is an enemy.
func slidingTargets(board *chess.Board, colour chess.Colour, from chess.Square, diagonal, straight bool) []chess.Square {
	var dirs [][2]int
	if diagonal {
		dirs = append(dirs, diagonalDirs...)
	}
	if straight {
		dirs = append(dirs, straightDirs...)
	}

	var targets []chess.Square
	for _, dir := range dirs {
		sq := from.Offset(dir[0], dir[1])
		for sq.Valid() {
			target := board.Get(sq)
			if target != nil {
				if target.Colour != colour {
					targets = append(targets, sq)
				}
				break // Blocked
			}
			targets = append(targets, sq)
			sq = sq.Offset(dir[0], dir[1])
		}
	}
	return targets
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
