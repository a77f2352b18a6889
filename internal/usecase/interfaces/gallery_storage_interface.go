package interfaces

import (
	"context"
	"io"
)

// IGalleryStorage stores estimate gallery images and hands back their public URL.
type IGalleryStorage interface {
	Upload(ctx context.Context, key string, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

// ISecretSealer encrypts credentials before they are persisted.
type ISecretSealer interface {
	Seal(plaintext string) (string, error)
	Open(sealed string) (string, error)
}

// ITokenGenerator produces public estimate tokens.
type ITokenGenerator interface {
	Generate() (string, error)
}
