// Package algorithm parses the "fc<unit><power><hash>[<digest_size>]"
// algorithm id into its chunk-size and hash components, using positional
// slicing as spec'd: chars 0-1 are the literal "fc", 2-3 the size token,
// 4.. the hash spec.
package algorithm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-chunksum/chunksum/internal/chunksize"
)

var (
	ErrBadAlgorithm = errors.New("algorithm: malformed algorithm id")
)

// Id is a parsed algorithm id.
type Id struct {
	Raw      string
	Size     chunksize.Size
	HashName string
}

// Parse decodes alg into its chunk-size policy and hash name. It does not
// validate the hash name against hashdigest; callers needing a live
// hash.Hash should call hashdigest.New(id.HashName).
func Parse(alg string) (Id, error) {
	if len(alg) < 5 || !strings.HasPrefix(alg, "fc") {
		return Id{}, fmt.Errorf("%w: %q", ErrBadAlgorithm, alg)
	}
	size, err := chunksize.Parse(alg[2:4])
	if err != nil {
		return Id{}, fmt.Errorf("%w: %v", ErrBadAlgorithm, err)
	}
	hashName := alg[4:]
	if hashName == "" {
		return Id{}, fmt.Errorf("%w: missing hash spec", ErrBadAlgorithm)
	}
	return Id{Raw: alg, Size: size, HashName: hashName}, nil
}
