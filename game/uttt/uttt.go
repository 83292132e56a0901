// Package uttt implements ultimate tic-tac-toe: nine small boards arranged in
// a 3x3 macro board. The cell played in a small board selects the small board
// the opponent must play in next, unless that board is full.
package uttt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"mcts/game"
)

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

func threeInLine(cells *[9]game.Player, p game.Player) bool {
	for _, l := range lines {
		if cells[l[0]] == p && cells[l[1]] == p && cells[l[2]] == p {
			return true
		}
	}
	return false
}

// Move places a piece in cell Micro of small board Macro, both in [0, 9).
type Move struct {
	Macro uint8
	Micro uint8
}

func (m Move) String() string {
	return fmt.Sprintf("%d,%d", m.Macro, m.Micro)
}

type small struct {
	cells  [9]game.Player
	winner game.Player
}

func (s *small) full() bool {
	for _, c := range s.cells {
		if c == game.NoPlayer {
			return false
		}
	}
	return true
}

func (s *small) play(cell uint8, p game.Player) bool {
	if cell >= 9 || s.cells[cell] != game.NoPlayer {
		return false
	}
	s.cells[cell] = p
	if s.winner == game.NoPlayer && threeInLine(&s.cells, p) {
		s.winner = p
	}
	return true
}

type Board struct {
	boards [9]small
	next   game.Player
	// forced is the small board the next move must go to, -1 when free
	forced int8
	winner game.Player
}

func New() *Board {
	return &Board{next: game.P1, forced: -1}
}

func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

func (b *Board) NextPlayer() game.Player {
	return b.next
}

// Cell returns the owner of a cell of a small board.
func (b *Board) Cell(macro, micro int) game.Player {
	return b.boards[macro].cells[micro]
}

// SmallWinner returns the player who took a small board, if any.
func (b *Board) SmallWinner(macro int) game.Player {
	return b.boards[macro].winner
}

func (b *Board) full() bool {
	for i := range b.boards {
		if !b.boards[i].full() {
			return false
		}
	}
	return true
}

// Valid reports whether m is legal for the player to move.
func (b *Board) Valid(m Move) bool {
	if b.winner != game.NoPlayer || m.Macro >= 9 || m.Micro >= 9 {
		return false
	}
	if b.forced >= 0 && int8(m.Macro) != b.forced {
		return false
	}
	return b.boards[m.Macro].cells[m.Micro] == game.NoPlayer
}

// DoAction plays m for the player to move. An illegal move leaves the board
// untouched.
func (b *Board) DoAction(m Move) game.Outcome[Move] {
	if b.Valid(m) {
		player := b.next
		b.boards[m.Macro].play(m.Micro, player)
		if b.macroWon(player) {
			b.winner = player
		}
		b.next = player.Other()
		b.forced = -1
		if !b.boards[m.Micro].full() {
			b.forced = int8(m.Micro)
		}
	}
	switch {
	case b.winner != game.NoPlayer:
		return game.WinFor[Move](b.winner)
	case b.full():
		return game.DrawOutcome[Move]()
	}
	return game.ContinueWith(b.ValidActions(b.next))
}

func (b *Board) macroWon(p game.Player) bool {
	var winners [9]game.Player
	for i := range b.boards {
		winners[i] = b.boards[i].winner
	}
	return threeInLine(&winners, p)
}

// ValidActions lists the blank cells of the forced board, or of every board
// when the move is free, ordered by macro then micro index.
func (b *Board) ValidActions(game.Player) []Move {
	if b.winner != game.NoPlayer {
		return nil
	}
	var actions []Move
	blanks := func(macro int) {
		for micro, c := range b.boards[macro].cells {
			if c == game.NoPlayer {
				actions = append(actions, Move{Macro: uint8(macro), Micro: uint8(micro)})
			}
		}
	}
	if b.forced >= 0 {
		blanks(int(b.forced))
		return actions
	}
	for macro := range b.boards {
		blanks(macro)
	}
	return actions
}

func (b *Board) HasWon(player game.Player) bool {
	return b.winner == player
}

// Render draws the nine boards, with the small-board winners to the right of
// the middle band.
func (b *Board) Render(mark func(game.Player) string) string {
	var sb strings.Builder
	for macroRow := 0; macroRow < 3; macroRow++ {
		for microRow := 0; microRow < 3; microRow++ {
			for macroCol := 0; macroCol < 3; macroCol++ {
				macro := 3*macroRow + macroCol
				for microCol := 0; microCol < 3; microCol++ {
					sb.WriteString(mark(b.boards[macro].cells[3*microRow+microCol]))
				}
				if macroCol != 2 {
					sb.WriteString(" | ")
				}
			}
			if macroRow == 1 {
				sb.WriteString("     ")
				for i := 0; i < 3; i++ {
					sb.WriteString(mark(b.boards[3*microRow+i].winner))
				}
			}
			sb.WriteByte('\n')
		}
		if macroRow != 2 {
			sb.WriteString("----+-----+----\n")
		}
	}
	return sb.String()
}

func (b *Board) String() string {
	return b.Render(Mark)
}

func Mark(p game.Player) string {
	switch p {
	case game.P1:
		return "X"
	case game.P2:
		return "O"
	}
	return " "
}

// ParseAction reads "macro,micro", "macro micro" or two adjacent digits.
func ParseAction(s string) (Move, error) {
	s = strings.TrimSpace(s)
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) == 1 && len(fields[0]) == 2 {
		fields = []string{fields[0][:1], fields[0][1:]}
	}
	if len(fields) != 2 {
		return Move{}, errors.Errorf("invalid move %q, want macro,micro", s)
	}
	var idx [2]uint8
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Move{}, errors.Wrapf(err, "invalid move %q", s)
		}
		if v < 0 || v > 8 {
			return Move{}, errors.Errorf("index %d out of range [0, 9)", v)
		}
		idx[i] = uint8(v)
	}
	return Move{Macro: idx[0], Micro: idx[1]}, nil
}

func FormatAction(m Move) string {
	return m.String()
}
