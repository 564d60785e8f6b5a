package chunksize

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	cases := []struct {
		avg     int
		wantErr error
	}{
		{64, nil},
		{16384, nil},
		{63, ErrSizeTooSmall},
		{1, ErrSizeTooSmall},
		{65, ErrSizeUnaligned},
	}
	for _, c := range cases {
		got, err := New(c.avg)
		if c.wantErr != nil {
			if !errors.Is(err, c.wantErr) {
				t.Errorf("New(%d) err = %v, want %v", c.avg, err, c.wantErr)
			}
			continue
		}
		if err != nil {
			t.Fatalf("New(%d) unexpected error: %v", c.avg, err)
		}
		if got.Min != c.avg/4 || got.Max != c.avg*4 {
			t.Errorf("New(%d) = %+v, bad min/max", c.avg, got)
		}
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		token string
		avg   int
	}{
		{"k4", 1024 * 16},
		{"m0", 1024 * 1024},
		{"K0", 1024},
		{"g0", 1024 * 1024 * 1024},
	}
	for _, c := range cases {
		got, err := Parse(c.token)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", c.token, err)
		}
		if got.Avg != c.avg {
			t.Errorf("Parse(%q).Avg = %d, want %d", c.token, got.Avg, c.avg)
		}
	}
}

func TestParseBad(t *testing.T) {
	for _, tok := range []string{"", "k", "kkk", "z4", "k!"} {
		if _, err := Parse(tok); !errors.Is(err, ErrBadSizeToken) {
			t.Errorf("Parse(%q) err = %v, want ErrBadSizeToken", tok, err)
		}
	}
}
