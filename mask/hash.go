package mask

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/blake2b"
)

// HashAlgo names a deterministic hash used to pseudonymize values.
type HashAlgo string

const (
	// HashSHA256 replaces a value with its hex-encoded SHA-256 digest.
	HashSHA256 HashAlgo = "sha256"

	// HashSHA512 replaces a value with its hex-encoded SHA-512 digest.
	HashSHA512 HashAlgo = "sha512"

	// HashBLAKE2b replaces a value with its hex-encoded BLAKE2b-256 digest.
	// The builtin hasher is unkeyed; use HashWith with BLAKE2bHasher(key)
	// or replace it with SetHasher for a keyed digest.
	HashBLAKE2b HashAlgo = "blake2b"
)

// MinArgon2SaltLen is the shortest salt Argon2Hasher accepts.
const MinArgon2SaltLen = 8

// ErrShortSalt is returned by Argon2Hasher for a salt under MinArgon2SaltLen.
var ErrShortSalt = errors.New("argon2 salt too short")

// Hasher performs one-way hashing.
// Equal inputs must hash to equal outputs so pseudonymized values can
// still be joined on.
type Hasher interface {
	// Hash returns the hex-encoded digest of plaintext.
	Hash(plaintext []byte) string
}

type sha256Hasher struct{}

// SHA256Hasher returns a SHA-256 hasher producing 64 hex characters.
func SHA256Hasher() Hasher {
	return sha256Hasher{}
}

func (sha256Hasher) Hash(plaintext []byte) string {
	sum := sha256.Sum256(plaintext)
	return hex.EncodeToString(sum[:])
}

type sha512Hasher struct{}

// SHA512Hasher returns a SHA-512 hasher producing 128 hex characters.
func SHA512Hasher() Hasher {
	return sha512Hasher{}
}

func (sha512Hasher) Hash(plaintext []byte) string {
	sum := sha512.Sum512(plaintext)
	return hex.EncodeToString(sum[:])
}

type blake2bHasher struct {
	key []byte
}

// BLAKE2bHasher returns a BLAKE2b-256 hasher keyed with key, producing 64
// hex characters. A nil key gives the plain digest. Keys longer than 64
// bytes are rejected.
func BLAKE2bHasher(key []byte) (Hasher, error) {
	if _, err := blake2b.New256(key); err != nil {
		return nil, fmt.Errorf("blake2b: %w", err)
	}
	return blake2bHasher{key: append([]byte(nil), key...)}, nil
}

func (h blake2bHasher) Hash(plaintext []byte) string {
	if len(h.key) == 0 {
		sum := blake2b.Sum256(plaintext)
		return hex.EncodeToString(sum[:])
	}
	d, _ := blake2b.New256(h.key) // key length checked by BLAKE2bHasher
	d.Write(plaintext)
	return hex.EncodeToString(d.Sum(nil))
}

// Argon2Params configures Argon2id hashing.
type Argon2Params struct {
	Time    uint32 // passes over memory
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
}

// DefaultArgon2Params returns the RFC 9106 second recommended option.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:    3,
		Memory:  64 * 1024,
		Threads: 4,
		KeyLen:  32,
	}
}

type argon2Hasher struct {
	salt   []byte
	params Argon2Params
}

// Argon2Hasher returns an Argon2id hasher using a fixed salt, so equal
// inputs give equal outputs. The salt is not part of the output.
// Attach it to a rule with HashWith.
func Argon2Hasher(salt []byte, params Argon2Params) (Hasher, error) {
	if len(salt) < MinArgon2SaltLen {
		return nil, fmt.Errorf("%w: %d bytes, need %d", ErrShortSalt, len(salt), MinArgon2SaltLen)
	}
	if params.Time == 0 || params.Threads == 0 || params.KeyLen == 0 {
		return nil, fmt.Errorf("argon2: time, threads and key length must be positive")
	}
	return &argon2Hasher{salt: append([]byte(nil), salt...), params: params}, nil
}

func (h *argon2Hasher) Hash(plaintext []byte) string {
	p := h.params
	return hex.EncodeToString(argon2.IDKey(plaintext, h.salt, p.Time, p.Memory, p.Threads, p.KeyLen))
}

// builtinHashers returns the default hasher registry.
func builtinHashers() map[HashAlgo]Hasher {
	return map[HashAlgo]Hasher{
		HashSHA256:  SHA256Hasher(),
		HashSHA512:  SHA512Hasher(),
		HashBLAKE2b: blake2bHasher{},
	}
}
