// Package ledger keeps an append-only, hash-chained history of a bluff game.
//
// # Core Components
//
// Chain: the list of blocks, starting from a genesis block. Every block
// stores the hash of the previous one, so any later modification breaks the
// chain.
//
// Recorder: an event sink that appends a block for every questioning
// resolution, bomb check, round end and the final winner.
//
// # Usage
//
// Attach a Recorder to the game's sink and call Verify at the end of the
// game to check that the history is intact before showing it. The history
// lives in memory only; it is not persisted.
package ledger
