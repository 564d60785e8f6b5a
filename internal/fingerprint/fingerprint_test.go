package fingerprint

import (
	"bytes"
	"strings"
	"testing"
)

func TestComputeFilePeriodicContent(t *testing.T) {
	input := bytes.Repeat([]byte("abcdefgh"), 20000) // 160000 bytes
	chunks, err := ComputeFile(bytes.NewReader(input), "fck4sha2")
	if err != nil {
		t.Fatalf("ComputeFile: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	wantLens := []int{65536, 65536, 28928}
	total := 0
	for i, c := range chunks {
		if c.Len != wantLens[i] {
			t.Errorf("chunk %d len = %d, want %d", i, c.Len, wantLens[i])
		}
		total += c.Len
	}
	if total != len(input) {
		t.Errorf("sum(lengths) = %d, want %d", total, len(input))
	}
	if !bytes.Equal(chunks[0].Digest, chunks[1].Digest) {
		t.Error("first two chunk digests should be identical for periodic content")
	}
}

func TestComputeFileSmallFile(t *testing.T) {
	chunks, err := ComputeFile(strings.NewReader("hello"), "fck4sha2")
	if err != nil {
		t.Fatalf("ComputeFile: %v", err)
	}
	if len(chunks) != 1 || chunks[0].Len != 5 {
		t.Fatalf("got %+v, want single chunk of length 5", chunks)
	}
}

func TestComputeFileEmptyFile(t *testing.T) {
	chunks, err := ComputeFile(strings.NewReader(""), "fck4sha2")
	if err != nil {
		t.Fatalf("ComputeFile: %v", err)
	}
	if len(chunks) != 0 {
		t.Fatalf("got %d chunks for empty file, want 0", len(chunks))
	}
}

func TestFileDigestDeterministic(t *testing.T) {
	chunks, err := ComputeFile(strings.NewReader("deterministic content"), "fck4sha2")
	if err != nil {
		t.Fatal(err)
	}
	a, err := FileDigest(chunks, "sha2")
	if err != nil {
		t.Fatal(err)
	}
	b, err := FileDigest(chunks, "sha2")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("FileDigest not deterministic")
	}
}
