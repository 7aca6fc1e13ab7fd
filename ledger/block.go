package ledger

import "encoding/json"

// Block is a single entry in the match history.
type Block struct {
	Index    int             `json:"index"`
	Round    int             `json:"round"`
	Kind     string          `json:"kind"`
	Summary  string          `json:"summary"`
	Payload  json.RawMessage `json:"payload"`
	PrevHash string          `json:"prev_hash"`
	Hash     string          `json:"hash"`
}
