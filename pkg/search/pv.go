package search

import "github.com/herohde/vice/pkg/board"

// pvTableSize is 2^16 entries (spec §4.7).
const pvTableSize = 1 << 16

// pvEntry is a single (posKey, move) slot. Replacement policy is always-replace.
type pvEntry struct {
	key  board.ZobristHash
	move board.Move
}

// PVTable is a fixed-capacity, direct-mapped store of posKey -> bestMove, used both to order
// moves (a stored move is tried first) and to reconstruct the principal variation after each
// iterative-deepening pass.
type PVTable struct {
	entries []pvEntry
}

// NewPVTable allocates an empty table of pvTableSize entries.
func NewPVTable() *PVTable {
	return &PVTable{entries: make([]pvEntry, pvTableSize)}
}

// Clear empties the table. Called on ucinewgame.
func (t *PVTable) Clear() {
	for i := range t.entries {
		t.entries[i] = pvEntry{}
	}
}

func (t *PVTable) index(key board.ZobristHash) int {
	return int(uint64(key) % uint64(len(t.entries)))
}

// Store writes move for key, unconditionally overwriting whatever occupied the slot.
func (t *PVTable) Store(key board.ZobristHash, move board.Move) {
	t.entries[t.index(key)] = pvEntry{key: key, move: move}
}

// Probe returns the stored move for key, iff the slot's key matches.
func (t *PVTable) Probe(key board.ZobristHash) (board.Move, bool) {
	e := t.entries[t.index(key)]
	if e.key != key || e.move == board.NoMove {
		return board.NoMove, false
	}
	return e.move, true
}

// GetLine walks the PV table from b's current position, making each probed move (verifying it
// is actually legal via MakeMove, per spec §4.7's "full legality via MoveExists") up to depth
// plies, then unmakes everything it played before returning.
func (t *PVTable) GetLine(b *board.Board, depth int) []board.Move {
	var line []board.Move
	played := 0

	for i := 0; i < depth; i++ {
		move, ok := t.Probe(b.PosKey)
		if !ok {
			break
		}
		if !b.MakeMove(move) {
			break
		}
		line = append(line, move)
		played++
	}

	for ; played > 0; played-- {
		b.TakeMove()
	}
	return line
}
