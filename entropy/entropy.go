package entropy

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/rand"
)

// DefaultReseedInterval is the number of draws between automatic
// reseeds from the platform entropy source.
const DefaultReseedInterval = 10_000

// Source is a reseeding pseudo-random source. The zero value is not
// usable; construct with NewSource.
type Source struct {
	src    rand.Source
	rng    *rand.Rand
	draws  uint64 // draws since the last (re)seed
	reseed uint64 // reseed every this many draws
}

// NewSource opens a source seeded from the platform's secure entropy.
// reseedEvery == 0 selects DefaultReseedInterval.
//
// Returns an error if the platform entropy source cannot be read.
func NewSource(reseedEvery uint64) (*Source, error) {
	if reseedEvery == 0 {
		reseedEvery = DefaultReseedInterval
	}
	seed, err := readSeed()
	if err != nil {
		return nil, fmt.Errorf("entropy: reading platform seed: %w", err)
	}
	src := rand.NewSource(seed)

	return &Source{
		src:    src,
		rng:    rand.New(src),
		reseed: reseedEvery,
	}, nil
}

// readSeed pulls 8 bytes from the platform entropy source.
func readSeed() (uint64, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint64(buf[:]), nil
}

// Uint64 returns the next pseudo-random 64-bit value.
func (s *Source) Uint64() uint64 {
	s.tick()

	return s.rng.Uint64()
}

// Intn returns a uniform pseudo-random int in [0, n). n must be > 0.
func (s *Source) Intn(n int) int {
	s.tick()

	return s.rng.Intn(n)
}

// tick counts one draw and reseeds once the interval is exhausted.
// A failed platform read keeps the current stream.
func (s *Source) tick() {
	if s.draws >= s.reseed {
		if seed, err := readSeed(); err == nil {
			s.src.Seed(seed)
		}
		s.draws = 0
	}
	s.draws++
}

// Close releases the source. The platform entropy handle is shared
// process-wide in Go, so Close only invalidates this Source; it exists
// for lifecycle symmetry with NewSource.
func (s *Source) Close() error {
	s.rng = nil
	s.src = nil

	return nil
}
