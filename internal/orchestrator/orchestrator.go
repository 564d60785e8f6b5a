// Package orchestrator drives the input enumerator, skip predicate, file
// hasher, and line formatter into a chunksums sink, single-process or
// multi-process.
package orchestrator

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/go-chunksum/chunksum/internal/algorithm"
	"github.com/go-chunksum/chunksum/internal/progressbar"
	"github.com/go-chunksum/chunksum/internal/skipset"
)

// Options configures an orchestrator run.
type Options struct {
	AlgID    string
	Skip     *skipset.Set
	Progress progressbar.Bar
	Sink     io.Writer
	Logger   *zap.Logger
}

// Summary reports the outcome of one run.
type Summary struct {
	FilesTotal     int
	FilesProcessed int
	BytesHashed    int64
	Errors         []error
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) progress() progressbar.Bar {
	if o.Progress != nil {
		return o.Progress
	}
	return progressbar.Null{}
}

func (o Options) skip() *skipset.Set {
	if o.Skip != nil {
		return o.Skip
	}
	s, _ := skipset.Build("")
	return s
}

// TotalSize sums the sizes of regular files under args, walking
// directories. Missing paths contribute zero rather than erroring, mirroring
// the upfront total-size pass the progress bar is sized from.
func TotalSize(args []string) int64 {
	var total int64
	for _, arg := range args {
		if arg == "-" {
			continue
		}
		info, err := os.Stat(arg)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			total += info.Size()
			continue
		}
		_ = filepath.WalkDir(arg, func(path string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if fi, statErr := d.Info(); statErr == nil {
				total += fi.Size()
			}
			return nil
		})
	}
	return total
}

// validateAlgID checks the algorithm id once at the top, so a bad id
// aborts the whole run instead of failing per-file.
func validateAlgID(alg string) error {
	_, err := algorithm.Parse(alg)
	return err
}
