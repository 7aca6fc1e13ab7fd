package ledger

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"go.dedis.ch/kyber/v4/suites"
)

// GenesisKind is the kind of the first block.
const GenesisKind = "genesis"

// ErrBrokenChain wraps every verification failure.
var ErrBrokenChain = errors.New("broken chain")

var suite suites.Suite = suites.MustFind("Ed25519")

// Chain is the hash-chained history. The game engine is single-threaded, so
// the chain is not safe for concurrent use.
type Chain struct {
	blocks []Block
}

// New creates a chain holding only the genesis block.
func New() *Chain {
	genesis := Block{
		Index:    0,
		Kind:     GenesisKind,
		Payload:  json.RawMessage("{}"),
		PrevHash: "0",
	}
	genesis.Hash = calculateHash(genesis)
	return &Chain{blocks: []Block{genesis}}
}

// Append adds a block for the given round. payload is marshaled to JSON.
func (c *Chain) Append(round int, kind, summary string, payload any) (Block, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Block{}, fmt.Errorf("marshal %s payload: %w", kind, err)
	}
	latest := c.blocks[len(c.blocks)-1]
	b := Block{
		Index:    latest.Index + 1,
		Round:    round,
		Kind:     kind,
		Summary:  summary,
		Payload:  data,
		PrevHash: latest.Hash,
	}
	b.Hash = calculateHash(b)
	if err := validateBlock(b, latest); err != nil {
		return Block{}, err
	}
	c.blocks = append(c.blocks, b)
	return b, nil
}

// Latest returns the most recent block.
func (c *Chain) Latest() Block {
	return c.blocks[len(c.blocks)-1]
}

// Len returns the number of blocks, genesis included.
func (c *Chain) Len() int {
	return len(c.blocks)
}

// Blocks returns a copy of the chain.
func (c *Chain) Blocks() []Block {
	return append([]Block(nil), c.blocks...)
}

// Verify checks the genesis block and every link of the chain.
func (c *Chain) Verify() error {
	if len(c.blocks) == 0 {
		return fmt.Errorf("%w: empty chain", ErrBrokenChain)
	}
	genesis := c.blocks[0]
	if genesis.PrevHash != "0" || genesis.Kind != GenesisKind || genesis.Hash != calculateHash(genesis) {
		return fmt.Errorf("%w: invalid genesis block", ErrBrokenChain)
	}
	for i := 1; i < len(c.blocks); i++ {
		if err := validateBlock(c.blocks[i], c.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}
	return nil
}

func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("%w: expected index %d, got %d", ErrBrokenChain, previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("%w: prev hash mismatch", ErrBrokenChain)
	}
	if expected := calculateHash(current); current.Hash != expected {
		return fmt.Errorf("%w: expected hash %s, got %s", ErrBrokenChain, expected, current.Hash)
	}
	return nil
}

// calculateHash hashes every field of the block except the hash itself.
func calculateHash(b Block) string {
	h := suite.Hash()
	fmt.Fprintf(h, "%d|%d|%s|%s|%s|%s", b.Index, b.Round, b.Kind, b.Summary, b.Payload, b.PrevHash)
	return hex.EncodeToString(h.Sum(nil))
}
