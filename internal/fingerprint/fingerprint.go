// Package fingerprint computes per-chunk and per-file content digests by
// composing the chunk-size policy, CDC splitter, and hash dispatcher.
package fingerprint

import (
	"bytes"
	"io"

	"github.com/go-chunksum/chunksum/internal/algorithm"
	"github.com/go-chunksum/chunksum/internal/chunker"
	"github.com/go-chunksum/chunksum/internal/hashdigest"
)

// readBufSize is the chunk of bytes read from the source per Update call.
const readBufSize = 4 * 1024 * 1024

// ChunkDigest is one chunk's hash and original length.
type ChunkDigest struct {
	Digest []byte
	Len    int
}

// ComputeFile drives the chunker over r using the chunk-size and hash
// parameters encoded in algID, returning one ChunkDigest per emitted chunk
// in stream order.
func ComputeFile(r io.Reader, algID string) ([]ChunkDigest, error) {
	id, err := algorithm.Parse(algID)
	if err != nil {
		return nil, err
	}

	state := chunker.New(id.Size)
	buf := make([]byte, readBufSize)
	var digests []ChunkDigest

	for {
		n, readErr := r.Read(buf)
		if n > 0 {
			if _, err := state.Update(buf[:n]); err != nil {
				return nil, err
			}
			for _, c := range state.Chunks() {
				d, _, err := hashdigest.Digest(c, id.HashName)
				if err != nil {
					return nil, err
				}
				digests = append(digests, ChunkDigest{Digest: d, Len: len(c)})
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, readErr
		}
	}

	if tail := state.Reset(); len(tail) > 0 {
		d, _, err := hashdigest.Digest(tail, id.HashName)
		if err != nil {
			return nil, err
		}
		digests = append(digests, ChunkDigest{Digest: d, Len: len(tail)})
	}

	return digests, nil
}

// FileDigest hashes the concatenation of per-chunk digests to produce the
// whole-file digest, using the same hash family as the chunks themselves.
func FileDigest(chunks []ChunkDigest, hashName string) ([]byte, error) {
	var buf bytes.Buffer
	for _, c := range chunks {
		buf.Write(c.Digest)
	}
	d, _, err := hashdigest.Digest(buf.Bytes(), hashName)
	if err != nil {
		return nil, err
	}
	return d, nil
}
