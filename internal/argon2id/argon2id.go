// Package argon2id hashes and verifies user passwords with argon2id using
// the PHC string format.
package argon2id

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrInvalidHash         = errors.New("malformed argon2id hash")
	ErrIncompatibleVersion = errors.New("unsupported argon2 version")
)

const algorithm = "argon2id"

var b64 = base64.RawStdEncoding.Strict()

// Params tunes the cost of a hash.
type Params struct {
	Memory      uint32 // KiB
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

var DefaultParams = Params{
	Memory:      64 * 1024,
	Iterations:  1,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

// Digest is a decoded password hash.
type Digest struct {
	Params Params
	Salt   []byte
	Key    []byte
}

func derive(password string, p Params, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength)
}

// String renders d as $argon2id$v=19$m=..,t=..,p=..$salt$key.
func (d Digest) String() string {
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithm, argon2.Version,
		d.Params.Memory, d.Params.Iterations, d.Params.Parallelism,
		b64.EncodeToString(d.Salt), b64.EncodeToString(d.Key))
}

// Matches reports whether password derives to d's key.
func (d Digest) Matches(password string) bool {
	return subtle.ConstantTimeCompare(d.Key, derive(password, d.Params, d.Salt)) == 1
}

// Generate hashes password with a fresh random salt and returns the encoded
// digest.
func Generate(password string, p Params) (string, error) {
	salt := make([]byte, p.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("reading salt: %w", err)
	}
	return Digest{Params: p, Salt: salt, Key: derive(password, p, salt)}.String(), nil
}

// ParseDigest decodes an encoded digest produced by Generate.
func ParseDigest(encoded string) (Digest, error) {
	// "", algorithm, version, params, salt, key
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != algorithm {
		return Digest{}, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return Digest{}, fmt.Errorf("%w: version: %w", ErrInvalidHash, err)
	}
	if version != argon2.Version {
		return Digest{}, ErrIncompatibleVersion
	}

	var d Digest
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d",
		&d.Params.Memory, &d.Params.Iterations, &d.Params.Parallelism); err != nil {
		return Digest{}, fmt.Errorf("%w: params: %w", ErrInvalidHash, err)
	}

	var err error
	if d.Salt, err = b64.DecodeString(parts[4]); err != nil {
		return Digest{}, fmt.Errorf("%w: salt: %w", ErrInvalidHash, err)
	}
	if d.Key, err = b64.DecodeString(parts[5]); err != nil {
		return Digest{}, fmt.Errorf("%w: key: %w", ErrInvalidHash, err)
	}
	if len(d.Key) == 0 {
		return Digest{}, ErrInvalidHash
	}
	d.Params.SaltLength = uint32(len(d.Salt))
	d.Params.KeyLength = uint32(len(d.Key))
	return d, nil
}

// Verify reports whether password matches the encoded digest. Keys are
// compared in constant time.
func Verify(password, encoded string) (bool, error) {
	d, err := ParseDigest(encoded)
	if err != nil {
		return false, err
	}
	return d.Matches(password), nil
}

// NeedsRehash reports whether encoded was produced with parameters other
// than p.
func NeedsRehash(encoded string, p Params) bool {
	d, err := ParseDigest(encoded)
	if err != nil {
		return true
	}
	return d.Params != p
}
