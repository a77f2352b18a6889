package token

import (
	"mitsumori_tsuikyaku/internal/usecase/interfaces"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// DefaultLength keeps share URLs short while leaving collisions to the
// store-side uniqueness check.
const DefaultLength = 10

type NanoIDGenerator struct {
	length int
}

var _ interfaces.ITokenGenerator = (*NanoIDGenerator)(nil)

func NewNanoIDGenerator(length int) *NanoIDGenerator {
	if length <= 0 {
		length = DefaultLength
	}
	return &NanoIDGenerator{length: length}
}

func (g *NanoIDGenerator) Generate() (string, error) {
	return gonanoid.New(g.length)
}
