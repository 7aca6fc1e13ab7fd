// Package random provides the single pseudo-random source a game consumes.
//
// The generator is a math/rand/v2 Rand driven by the extendable-output
// function of the kyber Ed25519 suite. Seeding the XOF with the same bytes
// yields the same sequence of draws, so a whole game can be replayed from
// its seed.
package random

import (
	"encoding/binary"
	"math/rand/v2"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/suites"
)

// SeedSize is the number of bytes used to seed the XOF.
const SeedSize = 32

// Source is what the game draws from. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

var suite suites.Suite = suites.MustFind("Ed25519")

// xofSource adapts a kyber XOF to rand.Source.
type xofSource struct {
	xof kyber.XOF
	buf [8]byte
}

func (s *xofSource) Uint64() uint64 {
	if _, err := s.xof.Read(s.buf[:]); err != nil {
		panic("random: xof read failed: " + err.Error())
	}
	return binary.LittleEndian.Uint64(s.buf[:])
}

// New returns a deterministic generator seeded with seed.
func New(seed []byte) *rand.Rand {
	return rand.New(&xofSource{xof: suite.XOF(seed)})
}

// NewRandom returns a generator seeded from the suite's cryptographic stream.
func NewRandom() *rand.Rand {
	seed := make([]byte, SeedSize)
	suite.RandomStream().XORKeyStream(seed, seed)
	return New(seed)
}

// Seed turns a textual seed into XOF seed bytes. An empty string yields nil,
// meaning the caller should use NewRandom.
func Seed(s string) []byte {
	if s == "" {
		return nil
	}
	h := suite.Hash()
	h.Write([]byte(s))
	return h.Sum(nil)[:SeedSize]
}

// FromString returns New(Seed(s)), or NewRandom when s is empty.
func FromString(s string) *rand.Rand {
	if seed := Seed(s); seed != nil {
		return New(seed)
	}
	return NewRandom()
}
