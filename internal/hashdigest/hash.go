// Package hashdigest dispatches algorithm names from an AlgorithmId to
// concrete hash.Hash constructors.
package hashdigest

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
)

var ErrUnsupportedHash = errors.New("hashdigest: unsupported hash name")

var nameRe = regexp.MustCompile(`^(sha2|blake2b|blake2s)(\d*)$`)

// New builds a hash.Hash for the given wire name: "sha2", "blake2b[N]",
// "blake2s[N]" where N is an output size in bytes. sha2 does not accept a
// size suffix.
func New(name string) (hash.Hash, error) {
	m := nameRe.FindStringSubmatch(strings.ToLower(name))
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedHash, name)
	}
	family, sizeTok := m[1], m[2]

	switch family {
	case "sha2":
		if sizeTok != "" {
			return nil, fmt.Errorf("%w: sha2 does not take a digest size: %q", ErrUnsupportedHash, name)
		}
		return sha256.New(), nil
	case "blake2b":
		size := blake2b.Size
		if sizeTok != "" {
			n, err := strconv.Atoi(sizeTok)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrUnsupportedHash, name)
			}
			size = n
		}
		h, err := blake2b.New(size, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedHash, err)
		}
		return h, nil
	case "blake2s":
		size := blake2s.Size
		if sizeTok != "" {
			n, err := strconv.Atoi(sizeTok)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrUnsupportedHash, name)
			}
			size = n
		}
		h, err := blake2s.New(size, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedHash, err)
		}
		return h, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedHash, name)
	}
}

// Digest is a one-shot convenience wrapper around New.
func Digest(data []byte, name string) ([]byte, int, error) {
	h, err := New(name)
	if err != nil {
		return nil, 0, err
	}
	h.Write(data)
	sum := h.Sum(nil)
	return sum, len(sum), nil
}
