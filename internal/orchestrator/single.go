package orchestrator

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/go-chunksum/chunksum/internal/enumerate"
	"github.com/go-chunksum/chunksum/internal/fingerprint"
	"github.com/go-chunksum/chunksum/internal/progressbar"
)

// RunSingle drives C6 -> C7 -> C4 -> C5 -> sink sequentially, emitting
// lines in enumeration order.
func RunSingle(ctx context.Context, src enumerate.Source, opts Options) (*Summary, error) {
	if err := validateAlgID(opts.AlgID); err != nil {
		return nil, err
	}

	log := opts.logger()
	skip := opts.skip()
	bar := opts.progress()
	summary := &Summary{}

	writer := bufio.NewWriter(opts.Sink)
	defer writer.Flush()

	for item := range enumerate.Enumerate(ctx, src) {
		summary.FilesTotal++

		if item.Err != nil {
			log.Debug("skip unreadable path", zap.String("path", item.Path), zap.Error(item.Err))
			summary.Errors = append(summary.Errors, item.Err)
			continue
		}

		switch item.Kind {
		case enumerate.KindStdinBytes:
			size, err := processStdinBytes(src.Stdin, opts.AlgID, writer, bar)
			if err != nil {
				log.Debug("skip stdin", zap.Error(err))
				summary.Errors = append(summary.Errors, err)
				continue
			}
			if err := writer.Flush(); err != nil {
				return summary, err
			}
			summary.FilesProcessed++
			summary.BytesHashed += size

		case enumerate.KindFile:
			if skip.Contains(item.Path) {
				if info, err := os.Stat(item.Path); err == nil {
					bar.Update(info.Size())
				}
				continue
			}
			size, err := processFile(item.Path, opts.AlgID, writer, bar)
			if err != nil {
				log.Debug("skip file", zap.String("path", item.Path), zap.Error(err))
				summary.Errors = append(summary.Errors, err)
				continue
			}
			if err := writer.Flush(); err != nil {
				return summary, err
			}
			summary.FilesProcessed++
			summary.BytesHashed += size
		}
	}

	bar.Done()
	return summary, nil
}

func processFile(path, algID string, sink io.Writer, bar progressbar.Bar) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}

	chunks, err := fingerprint.ComputeFile(f, algID)
	if err != nil {
		return 0, fmt.Errorf("hash %s: %w", path, err)
	}
	if err := writeResult(sink, path, algID, chunks); err != nil {
		return 0, err
	}
	bar.Update(info.Size())
	return info.Size(), nil
}

func processStdinBytes(stdin io.Reader, algID string, sink io.Writer, bar progressbar.Bar) (int64, error) {
	if stdin == nil {
		stdin = os.Stdin
	}
	chunks, err := fingerprint.ComputeFile(stdin, algID)
	if err != nil {
		return 0, fmt.Errorf("hash <stdin>: %w", err)
	}
	if err := writeResult(sink, "<stdin>", algID, chunks); err != nil {
		return 0, err
	}
	var total int64
	for _, c := range chunks {
		total += int64(c.Len)
	}
	bar.Update(total)
	return total, nil
}

func writeResult(sink io.Writer, path, algID string, chunks []fingerprint.ChunkDigest) error {
	line, _, err := formatResultLine(path, algID, chunks)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(sink, line)
	return err
}
