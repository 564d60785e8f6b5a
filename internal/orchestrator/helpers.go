package orchestrator

import (
	"github.com/go-chunksum/chunksum/internal/algorithm"
	"github.com/go-chunksum/chunksum/internal/chunksumsfmt"
	"github.com/go-chunksum/chunksum/internal/fingerprint"
)

func hexEncode(b []byte) string {
	const hexDigits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = hexDigits[v>>4]
		out[i*2+1] = hexDigits[v&0x0f]
	}
	return string(out)
}

// chunksumsfmtAlgParts extracts the hash name portion of an algorithm id,
// for re-hashing the concatenated chunk digests into the file digest.
func chunksumsfmtAlgParts(algID string) (string, error) {
	id, err := algorithm.Parse(algID)
	if err != nil {
		return "", err
	}
	return id.HashName, nil
}

// formatResultLine composes a chunksums line from a file's chunk digests,
// returning the line and the total byte size it represents (for progress).
func formatResultLine(path, algID string, chunks []fingerprint.ChunkDigest) (string, int64, error) {
	hashName, err := chunksumsfmtAlgParts(algID)
	if err != nil {
		return "", 0, err
	}

	entries := make([]chunksumsfmt.ChunkEntry, len(chunks))
	var total int64
	for i, c := range chunks {
		entries[i] = chunksumsfmt.ChunkEntry{Hex: hexEncode(c.Digest), Len: c.Len}
		total += int64(c.Len)
	}

	fileDigest, err := fingerprint.FileDigest(chunks, hashName)
	if err != nil {
		return "", 0, err
	}

	line := chunksumsfmt.Format(hexEncode(fileDigest), path, algID, entries)
	return line, total, nil
}
