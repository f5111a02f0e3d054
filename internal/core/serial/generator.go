// Package serial contains the pure business logic for serial number
// generation. Serials are identifiers, not secrets, so draws come from a
// seeded math/rand source rather than crypto/rand.
package serial

import (
	"crypto/rand"
	"encoding/binary"

	mrand "math/rand"
)

// Defaults applied when a caller leaves prefix or length unset.
const (
	DefaultPrefix = "SN"
	DefaultLength = 8
)

// Generator produces random serial numbers of the form <prefix><digits>.
// Not safe for concurrent use.
type Generator struct {
	src *mrand.Rand
}

// NewGenerator returns a generator seeded from crypto/rand.
func NewGenerator() *Generator {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return NewGeneratorWithSeed(int64(binary.LittleEndian.Uint64(b[:])))
}

// NewGeneratorWithSeed returns a generator with a fixed seed for
// reproducible draws.
func NewGeneratorWithSeed(seed int64) *Generator {
	return &Generator{src: mrand.New(mrand.NewSource(seed))}
}

// Generate returns prefix followed by length decimal digits, each drawn
// independently and uniformly. Leading zeros are allowed; length zero
// yields the bare prefix.
func (g *Generator) Generate(prefix string, length int) string {
	buf := make([]byte, 0, len(prefix)+length)
	buf = append(buf, prefix...)
	for i := 0; i < length; i++ {
		buf = append(buf, byte('0'+g.src.Intn(10)))
	}
	return string(buf)
}

// GenerateBatch returns count distinct serials sharing prefix and length.
// Draws repeat until the set is full, so CanGenerateBatch rejects requests
// the digit space could never satisfy. Order is unspecified; uniqueness
// holds within the call only.
func (g *Generator) GenerateBatch(count int, prefix string, length int) ([]string, error) {
	if err := CanGenerateBatch(BatchContext{Count: count, Length: length}).Error(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, count)
	serials := make([]string, 0, count)
	for len(serials) < count {
		s := g.Generate(prefix, length)
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		serials = append(serials, s)
	}
	return serials, nil
}
