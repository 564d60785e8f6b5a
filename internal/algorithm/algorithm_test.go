package algorithm

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	id, err := Parse("fck4sha2")
	if err != nil {
		t.Fatalf("Parse unexpected error: %v", err)
	}
	if id.Size.Avg != 1024*16 || id.HashName != "sha2" {
		t.Errorf("Parse(fck4sha2) = %+v", id)
	}

	id, err = Parse("fcm4blake2b32")
	if err != nil {
		t.Fatalf("Parse unexpected error: %v", err)
	}
	if id.HashName != "blake2b32" {
		t.Errorf("Parse(fcm4blake2b32).HashName = %q", id.HashName)
	}
}

func TestParseBad(t *testing.T) {
	for _, alg := range []string{"", "fc", "fck4", "xxk4sha2"} {
		if _, err := Parse(alg); !errors.Is(err, ErrBadAlgorithm) {
			t.Errorf("Parse(%q) err = %v, want ErrBadAlgorithm", alg, err)
		}
	}
}
