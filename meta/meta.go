// meta/meta.go
package meta

// BOARD_SIZE is the number of rows and columns of the board.
const BOARD_SIZE = 8

// MIN_LEVEL is the shallowest search depth the machine accepts.
const MIN_LEVEL = 1

// MAX_LEVEL is the deepest search depth the machine accepts.
const MAX_LEVEL = 5

// DEFAULT_LEVEL is the search depth of a new game.
const DEFAULT_LEVEL = 3

// MAX_TURNS caps a local match, a full game never exceeds 60 placements.
const MAX_TURNS = 128

// NUM_GAMES is the default number of games per experiment matchup.
const NUM_GAMES = 10

// MCTS_EPISODES is the number of playouts per move of the tree search opponent.
const MCTS_EPISODES = 1000

// C_SQUARED is the squared exploration constant of UCT.
const C_SQUARED = 2.0
