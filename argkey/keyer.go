package argkey

import (
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/go-json-experiment/json"
	"golang.org/x/crypto/blake2b"
)

// DriverName identifies a key derivation driver.
type DriverName string

const (
	// DriverJSON encodes the argument list as canonical JSON.
	DriverJSON DriverName = "json"
	// DriverBlake2b hashes the JSON form with BLAKE2b.
	DriverBlake2b DriverName = "blake2b"
	// DriverXXHash hashes the JSON form with 64-bit xxHash.
	DriverXXHash DriverName = "xxhash"
)

// Keyer derives a deterministic key from an argument list.
//
// All implementations must be safe for concurrent use by multiple goroutines.
type Keyer interface {
	// Key returns the key for args. Equal-serialising argument lists must
	// produce equal keys.
	Key(args []any) (string, error)

	// Driver returns the DriverName implemented by this keyer.
	Driver() DriverName
}

// KeyFunc adapts a plain function to [Keyer]. Its driver name is "func".
type KeyFunc func(args []any) (string, error)

// Key calls f(args).
func (f KeyFunc) Key(args []any) (string, error) { return f(args) }

// Driver returns "func".
func (f KeyFunc) Driver() DriverName { return "func" }

// ──────────────────────────────────────────────────────────────────────────────
// JSON
// ──────────────────────────────────────────────────────────────────────────────

// JSONKeyer encodes the argument list as a JSON array. Map keys are sorted,
// so the result does not depend on map iteration order.
type JSONKeyer struct{}

// NewJSONKeyer returns a JSONKeyer.
func NewJSONKeyer() *JSONKeyer { return &JSONKeyer{} }

// Key returns the JSON encoding of args.
func (k *JSONKeyer) Key(args []any) (string, error) {
	b, err := encode(args)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Driver returns [DriverJSON].
func (k *JSONKeyer) Driver() DriverName { return DriverJSON }

func encode(args []any) ([]byte, error) {
	if args == nil {
		args = []any{}
	}
	b, err := json.Marshal(args, json.Deterministic(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnserializable, err)
	}
	return b, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// BLAKE2b
// ──────────────────────────────────────────────────────────────────────────────

// Blake2bOptions configures a [Blake2bKeyer].
type Blake2bOptions struct {
	// Size is the digest length in bytes, between 1 and 64.
	Size int
}

// DefaultBlake2bOptions returns a 32-byte digest configuration.
func DefaultBlake2bOptions() Blake2bOptions {
	return Blake2bOptions{Size: blake2b.Size256}
}

// Blake2bKeyer hashes the JSON form of the arguments with BLAKE2b and
// returns the hex digest, so keys have a fixed length however large the
// arguments are.
type Blake2bKeyer struct {
	size int
}

// NewBlake2bKeyer returns a Blake2bKeyer, or [ErrInvalidOption] when
// opts.Size is outside [1, 64].
func NewBlake2bKeyer(opts Blake2bOptions) (*Blake2bKeyer, error) {
	if opts.Size < 1 || opts.Size > blake2b.Size {
		return nil, fmt.Errorf("%w: blake2b size %d not in [1, %d]", ErrInvalidOption, opts.Size, blake2b.Size)
	}
	return &Blake2bKeyer{size: opts.Size}, nil
}

// Key returns the hex-encoded BLAKE2b digest of the JSON form of args.
func (k *Blake2bKeyer) Key(args []any) (string, error) {
	b, err := encode(args)
	if err != nil {
		return "", err
	}
	h, err := blake2b.New(k.size, nil)
	if err != nil {
		return "", fmt.Errorf("argkey: blake2b: %w", err)
	}
	h.Write(b)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Driver returns [DriverBlake2b].
func (k *Blake2bKeyer) Driver() DriverName { return DriverBlake2b }

// ──────────────────────────────────────────────────────────────────────────────
// xxHash
// ──────────────────────────────────────────────────────────────────────────────

// XXHashKeyer hashes the JSON form of the arguments with 64-bit xxHash.
// It is the fastest driver; distinct argument lists may collide, so use it
// only where a rare collision is acceptable.
type XXHashKeyer struct{}

// NewXXHashKeyer returns an XXHashKeyer.
func NewXXHashKeyer() *XXHashKeyer { return &XXHashKeyer{} }

// Key returns the zero-padded hex xxHash of the JSON form of args.
func (k *XXHashKeyer) Key(args []any) (string, error) {
	b, err := encode(args)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(b)), nil
}

// Driver returns [DriverXXHash].
func (k *XXHashKeyer) Driver() DriverName { return DriverXXHash }
