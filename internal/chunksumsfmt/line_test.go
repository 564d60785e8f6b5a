package chunksumsfmt

import (
	"strings"
	"testing"
)

func TestFormatExample(t *testing.T) {
	got := Format("deadbeef", "/tmp/x", "fck4sha2", []ChunkEntry{{Hex: "abcd", Len: 5}})
	want := "deadbeef  /tmp/x  fck4sha2!abcd:5"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestParseLineExample(t *testing.T) {
	got, err := ParseLine("sum2  ./file1  fck0sha2!abcd:10")
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if got.Checksum != "sum2" || got.Path != "./file1" || got.Alg != "fck0sha2" {
		t.Errorf("ParseLine() = %+v", got)
	}
	if len(got.Chunks) != 1 || got.Chunks[0].Hex != "abcd" || got.Chunks[0].Len != 10 {
		t.Errorf("ParseLine() chunks = %+v", got.Chunks)
	}
}

func TestRoundTrip(t *testing.T) {
	chunks := []ChunkEntry{{Hex: "aa", Len: 1}, {Hex: "bb", Len: 2}}
	line := Format("digest", "/some/path", "fcm0blake2b", chunks)
	got, err := ParseLine(line)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if got.Checksum != "digest" || got.Path != "/some/path" || got.Alg != "fcm0blake2b" {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if len(got.Chunks) != 2 || got.Chunks[1].Hex != "bb" || got.Chunks[1].Len != 2 {
		t.Errorf("round trip chunks mismatch: %+v", got.Chunks)
	}
}

func TestDoubleSpacePath(t *testing.T) {
	line := Format("digest", "a  b", "fck4sha2", []ChunkEntry{{Hex: "ff", Len: 3}})
	got, err := ParseLine(line)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if got.Path != "a  b" {
		t.Errorf("Path = %q, want %q", got.Path, "a  b")
	}
}

func TestEmptyChunkList(t *testing.T) {
	line := Format("digest", "/empty", "fck4sha2", nil)
	got, err := ParseLine(line)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if len(got.Chunks) != 0 {
		t.Errorf("Chunks = %+v, want empty", got.Chunks)
	}
}

func TestParseStreamSkipsMalformed(t *testing.T) {
	input := "good  /a  fck4sha2!aa:1\nnot a valid line\ngood2  /b  fck4sha2!bb:2\n"
	var results []Result
	if err := ParseStream(strings.NewReader(input), func(r Result) {
		results = append(results, r)
	}); err != nil {
		t.Fatalf("ParseStream: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
}
