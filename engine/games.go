package engine

import (
	"mcts/game"
	"mcts/game/connect4"
	"mcts/game/uttt"
)

func Connect4() Game[connect4.Column, *connect4.Board] {
	return Game[connect4.Column, *connect4.Board]{
		Name:   "connect4",
		New:    connect4.New,
		Parse:  connect4.ParseAction,
		Format: connect4.FormatAction,
		Render: func(b *connect4.Board, mark func(game.Player) string) string {
			return b.Render(mark)
		},
		Mark: connect4.Mark,
	}
}

func UltimateTicTacToe() Game[uttt.Move, *uttt.Board] {
	return Game[uttt.Move, *uttt.Board]{
		Name:   "uttt",
		New:    uttt.New,
		Parse:  uttt.ParseAction,
		Format: uttt.FormatAction,
		Render: func(b *uttt.Board, mark func(game.Player) string) string {
			return b.Render(mark)
		},
		Mark: uttt.Mark,
	}
}
