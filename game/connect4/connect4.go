// Package connect4 implements Connect 4 on a 7x6 board stored as two
// bitboards, one per player. Bit row*Cols+col holds the cell, row 0 is the top.
package connect4

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"mcts/game"
)

const (
	Rows   = 6
	Cols   = 7
	Streak = 4
)

// Column is the action type: the column a piece is dropped into.
type Column uint8

var winMasks = buildWinMasks()

func buildWinMasks() []uint64 {
	var masks []uint64
	line := func(row, col, dr, dc int) {
		var mask uint64
		for i := 0; i < Streak; i++ {
			r, c := row+i*dr, col+i*dc
			if r < 0 || r >= Rows || c < 0 || c >= Cols {
				return
			}
			mask |= 1 << (r*Cols + c)
		}
		masks = append(masks, mask)
	}
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			line(row, col, 0, 1)  // horizontal
			line(row, col, 1, 0)  // vertical
			line(row, col, 1, 1)  // diagonal down-right
			line(row, col, 1, -1) // diagonal down-left
		}
	}
	return masks
}

type Board struct {
	xs   uint64
	os   uint64
	next game.Player
}

// New returns the empty board with P1 (X) to move.
func New() *Board {
	return &Board{next: game.P1}
}

func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

func (b *Board) NextPlayer() game.Player {
	return b.next
}

// Cell returns the owner of a cell, game.NoPlayer when blank.
func (b *Board) Cell(row, col int) game.Player {
	bit := uint64(1) << (row*Cols + col)
	switch {
	case b.xs&bit != 0:
		return game.P1
	case b.os&bit != 0:
		return game.P2
	}
	return game.NoPlayer
}

func (b *Board) play(row, col int, player game.Player) {
	bit := uint64(1) << (row*Cols + col)
	if player == game.P1 {
		b.xs |= bit
	} else {
		b.os |= bit
	}
}

func (b *Board) full() bool {
	return bits.OnesCount64(b.xs|b.os) == Rows*Cols
}

// DoAction drops a piece for the player to move. Dropping into a full column
// is illegal; it leaves the board untouched and reports a draw.
func (b *Board) DoAction(col Column) game.Outcome[Column] {
	for row := Rows - 1; row >= 0; row-- {
		if b.Cell(row, int(col)) != game.NoPlayer {
			continue
		}
		player := b.next
		b.play(row, int(col), player)
		b.next = player.Other()
		switch {
		case b.HasWon(player):
			return game.WinFor[Column](player)
		case b.full():
			return game.DrawOutcome[Column]()
		}
		return game.ContinueWith(b.ValidActions(b.next))
	}
	return game.DrawOutcome[Column]()
}

// ValidActions lists the open columns left to right. A won position has none.
func (b *Board) ValidActions(game.Player) []Column {
	if b.HasWon(game.P1) || b.HasWon(game.P2) {
		return nil
	}
	actions := make([]Column, 0, Cols)
	for col := 0; col < Cols; col++ {
		if b.Cell(0, col) == game.NoPlayer {
			actions = append(actions, Column(col))
		}
	}
	return actions
}

func (b *Board) HasWon(player game.Player) bool {
	board := b.xs
	if player == game.P2 {
		board = b.os
	}
	for _, mask := range winMasks {
		if board&mask == mask {
			return true
		}
	}
	return false
}

// Render draws the board with the given marks for each player's pieces.
func (b *Board) Render(mark func(game.Player) string) string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		sb.WriteByte('|')
		for col := 0; col < Cols; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(mark(b.Cell(row, col)))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("+-------------+\n")
	sb.WriteString("|0 1 2 3 4 5 6|\n")
	sb.WriteString("+-------------+")
	return sb.String()
}

func (b *Board) String() string {
	return b.Render(Mark)
}

// Mark is the plain text mark of a cell.
func Mark(p game.Player) string {
	switch p {
	case game.P1:
		return "X"
	case game.P2:
		return "O"
	}
	return " "
}

// ParseAction reads a column number.
func ParseAction(s string) (Column, error) {
	col, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid column %q", s)
	}
	if col < 0 || col >= Cols {
		return 0, errors.Errorf("column %d out of range [0, %d)", col, Cols)
	}
	return Column(col), nil
}

func FormatAction(col Column) string {
	return strconv.Itoa(int(col))
}
