// Package chunker implements a stateful, buffer-independent content-defined
// chunk splitter. Each Update re-splits the previous tail plus the newly
// supplied bytes, withholding the final chunk as the new tail so that the
// boundary decision at the end of a read buffer never depends on where that
// buffer happened to end.
package chunker

import (
	"bytes"
	"io"

	fastcdc "github.com/jotfs/fastcdc-go"

	"github.com/go-chunksum/chunksum/internal/chunksize"
)

// State holds the in-progress splitting state for a single file.
type State struct {
	size    chunksize.Size
	tail    []byte
	pending [][]byte
}

// New creates a fresh State for the given chunk-size policy.
func New(size chunksize.Size) *State {
	return &State{size: size}
}

// Update feeds message through the splitter alongside any withheld tail
// from the previous call. All but the final resulting chunk become
// available via Chunks; the final chunk is withheld as the new tail.
func (s *State) Update(message []byte) (*State, error) {
	buf := make([]byte, 0, len(s.tail)+len(message))
	buf = append(buf, s.tail...)
	buf = append(buf, message...)

	opts := fastcdc.Options{
		MinSize:     s.size.Min,
		AverageSize: s.size.Avg,
		MaxSize:     s.size.Max,
	}
	split, err := fastcdc.NewChunker(bytes.NewReader(buf), opts)
	if err != nil {
		return s, err
	}

	var chunks [][]byte
	for {
		fc, err := split.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return s, err
		}
		data := make([]byte, len(fc.Data))
		copy(data, fc.Data)
		chunks = append(chunks, data)
	}

	if len(chunks) == 0 {
		s.tail = buf
		s.pending = nil
		return s, nil
	}

	s.tail = chunks[len(chunks)-1]
	s.pending = chunks[:len(chunks)-1]
	return s, nil
}

// Chunks drains and returns the chunks produced by the most recent Update.
// It returns nil if called again before another Update.
func (s *State) Chunks() [][]byte {
	p := s.pending
	s.pending = nil
	return p
}

// Tail returns the bytes currently withheld, pending either another Update
// or a final Reset/flush.
func (s *State) Tail() []byte {
	return s.tail
}

// Reset flushes and clears the withheld tail, returning it as the final
// chunk of the stream (empty if the stream had no bytes).
func (s *State) Reset() []byte {
	t := s.tail
	s.tail = nil
	s.pending = nil
	return t
}
