// meta/meta.go
package meta

import "time"

// SERVER_ADDR is where the game server listens unless configured otherwise.
const SERVER_ADDR = ":8080"

// STORE_DRIVER selects the repository used by the server.
const STORE_DRIVER = "memory"

const LOG_LEVEL = "info"

// MAX_TURNS stops local games that nobody wins.
const MAX_TURNS = 500

// SELF_PLAY_GAMES is the number of bot games per self-play experiment.
const SELF_PLAY_GAMES = 20

// SELF_PLAY_PLAYERS seats this many bots in each self-play game.
const SELF_PLAY_PLAYERS = 3

// DICE_DRAWS is the sample size of the dice experiment.
const DICE_DRAWS = 100_000

// RESULTS_DIR is where experiments write their CSV files.
const RESULTS_DIR = "results"

// BOT_POLL_INTERVAL is how often a remote bot checks whether it is its turn.
const BOT_POLL_INTERVAL = 500 * time.Millisecond
