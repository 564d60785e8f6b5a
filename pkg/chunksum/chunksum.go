package chunksum

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-chunksum/chunksum/internal/chunklog"
	"github.com/go-chunksum/chunksum/internal/enumerate"
	"github.com/go-chunksum/chunksum/internal/orchestrator"
	"github.com/go-chunksum/chunksum/internal/progressbar"
	"github.com/go-chunksum/chunksum/internal/skipset"
)

// Options configures a Run, one field per CLI flag plus the library-only
// knobs (Stdin, Progress) a caller embedding this package needs.
type Options struct {
	// AlgID is the algorithm id, e.g. "fck4sha2". Defaults to "fck4sha2".
	AlgID string
	// Paths are the positional arguments: files, directories, or "-" for
	// stdin-as-bytes.
	Paths []string
	// ChunksumsFile is read for the skip set and appended to ("-f"). Empty
	// or "-" means stdout, with no skip set.
	ChunksumsFile string
	// IncrementalFile additionally receives only the lines computed in
	// this run ("-i").
	IncrementalFile string
	// Multi enables the multi-process (goroutine-based) orchestrator
	// ("-m").
	Multi bool
	// ConsumerMode reads paths from stdin, one per line, and disables
	// Multi ("-x").
	ConsumerMode bool
	// Verbose switches the logger to development mode.
	Verbose bool
	// Stdin overrides the source of stdin-bytes/stdin-lines input; nil
	// means os.Stdin.
	Stdin io.Reader
	// Progress overrides progress rendering; nil means no rendering.
	Progress progressbar.Bar
}

func (o Options) algID() string {
	if o.AlgID == "" {
		return "fck4sha2"
	}
	return o.AlgID
}

// Run executes one chunksum pass: building the skip set from any prior
// chunksums file, opening the sink(s), choosing single- or multi-process
// orchestration, and driving it to completion.
func Run(ctx context.Context, opts Options) (*orchestrator.Summary, error) {
	log, err := chunklog.New(opts.Verbose)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	skip, err := skipset.Build(priorFileFor(opts.ChunksumsFile))
	if err != nil {
		return nil, fmt.Errorf("build skip set: %w", err)
	}

	sink, closeSink, err := openSink(opts.ChunksumsFile, opts.IncrementalFile)
	if err != nil {
		return nil, err
	}
	defer closeSink()

	bar := opts.Progress
	if bar == nil {
		bar = progressbar.Null{}
	}

	src := enumerate.Source{
		Args:       opts.Paths,
		StdinLines: opts.ConsumerMode,
		Stdin:      opts.Stdin,
	}

	orchOpts := orchestrator.Options{
		AlgID:    opts.algID(),
		Skip:     skip,
		Progress: bar,
		Sink:     sink,
		Logger:   log,
	}

	if opts.Multi && !opts.ConsumerMode {
		return orchestrator.RunMulti(ctx, src, orchOpts)
	}
	return orchestrator.RunSingle(ctx, src, orchOpts)
}

// priorFileFor returns the path to read the skip set from: the chunksums
// file itself, unless it's stdout (no prior state to resume from).
func priorFileFor(chunksumsFile string) string {
	if chunksumsFile == "" || chunksumsFile == "-" {
		return ""
	}
	return chunksumsFile
}

// openSink builds the sink chunksums lines are written to: the chunksums
// file (or stdout), optionally fanned out to an incremental-updates file
// that receives only this run's newly computed lines.
func openSink(chunksumsFile, incrementalFile string) (io.Writer, func(), error) {
	var writers []io.Writer
	var closers []func() error

	if chunksumsFile == "" || chunksumsFile == "-" {
		writers = append(writers, os.Stdout)
	} else {
		f, err := os.OpenFile(chunksumsFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open chunksums file %s: %w", chunksumsFile, err)
		}
		writers = append(writers, f)
		closers = append(closers, f.Close)
	}

	if incrementalFile != "" {
		f, err := os.OpenFile(incrementalFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			for _, c := range closers {
				c()
			}
			return nil, nil, fmt.Errorf("open incremental file %s: %w", incrementalFile, err)
		}
		writers = append(writers, f)
		closers = append(closers, f.Close)
	}

	closeAll := func() {
		for _, c := range closers {
			_ = c()
		}
	}

	if len(writers) == 1 {
		return writers[0], closeAll, nil
	}
	return io.MultiWriter(writers...), closeAll, nil
}
