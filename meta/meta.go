// meta/meta.go
package meta

import "time"

// THINK_TIME is how long the engine searches before each move.
const THINK_TIME = 3000 * time.Millisecond

// GAMES is the number of games an arena plays.
const GAMES = 10

// PARALLEL_GAMES is the number of arena games played at once.
const PARALLEL_GAMES = 4

// DOT_DEPTH is the number of tree layers exported to Graphviz.
const DOT_DEPTH = 2

const OUT_DIR = "experiments"
