// Package hashing provides position hashing and duplicate detection for games.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess48-go/internal/chess"
)

// zobristSeed fixes the key table so hashes are stable between runs.
const zobristSeed = 0x43484553

var (
	// pieceKeys[colour][kind][square]
	pieceKeys [2][chess.King + 1][chess.BoardSize * chess.BoardSize]uint64
	// unmovedKeys mark corner rooks that can still castle with their king.
	unmovedKeys   [2][chess.BoardSize * chess.BoardSize]uint64
	enPassantKeys [chess.BoardSize]uint64
	whiteToMove   uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for c := range pieceKeys {
		for k := chess.Pawn; k <= chess.King; k++ {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = rng.Uint64()
			}
		}
		for sq := range unmovedKeys[c] {
			unmovedKeys[c][sq] = rng.Uint64()
		}
	}
	for col := range enPassantKeys {
		enPassantKeys[col] = rng.Uint64()
	}
	whiteToMove = rng.Uint64()
}

// GenerateZobristHash returns the Zobrist hash of a position. Two boards
// hash equal when they have the same pieces, castling rights, side to move
// and en passant file. A castling right is an unmoved rook in a corner of
// the row of its unmoved king.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			if p == nil {
				continue
			}
			idx := row*chess.BoardSize + col
			hash ^= pieceKeys[p.Colour][p.Kind][idx]
			if p.Kind == chess.King && !p.Moved {
				hash ^= castlingRights(board, p.Colour, row)
			}
		}
	}
	if board.ToMove == chess.White {
		hash ^= whiteToMove
	}
	if board.EnPassant {
		hash ^= enPassantKeys[board.EPSquare.Col]
	}
	return hash
}

func castlingRights(board *chess.Board, colour chess.Colour, row int) uint64 {
	var hash uint64
	for _, col := range []int{0, chess.BoardSize - 1} {
		p := board.Squares[row][col]
		if p != nil && p.Kind == chess.Rook && p.Colour == colour && !p.Moved {
			hash ^= unmovedKeys[colour][row*chess.BoardSize+col]
		}
	}
	return hash
}

// pieceWeights feed the weak hash; the value of an empty square is zero.
var pieceWeights = [chess.King + 1]uint64{0, 1, 3, 5, 7, 11, 13}

// WeakHash returns a cheap positional checksum used to confirm Zobrist
// matches. It only depends on which pieces stand where.
func WeakHash(board *chess.Board) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			if p == nil {
				continue
			}
			weight := pieceWeights[p.Kind]
			if p.Colour == chess.Black {
				weight += 17
			}
			hash += weight * uint64(row*chess.BoardSize+col+1)
		}
	}
	return hash
}

// GameSignature stores identifying information about a finished game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// PlyCount is the number of half-moves in the game
	PlyCount int
	// WeakHash is a fast hash for quick comparison
	WeakHash uint64
}

// DuplicateDetector tracks final positions to spot games that ended the same way.
type DuplicateDetector struct {
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the ply counts to agree
	useExactMatch  bool
	maxCapacity    int
	duplicateCount int
}

// NewDuplicateDetector creates a detector. A maxCapacity of 0 means no limit;
// once full, new positions are still checked but no longer stored.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd checks whether a game ending on board after plies half-moves
// was seen before, and records it if not. Returns true for a duplicate.
func (d *DuplicateDetector) CheckAndAdd(plies int, board *chess.Board) bool {
	if board == nil {
		return false
	}

	sig := GameSignature{
		Hash:     GenerateZobristHash(board),
		PlyCount: plies,
		WeakHash: WeakHash(board),
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if !d.IsFull() {
		d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	}
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.PlyCount != b.PlyCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games stored.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// IsFull reports whether the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.UniqueCount() >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
}
