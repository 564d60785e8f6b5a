package orchestrator

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/go-chunksum/chunksum/internal/enumerate"
	"github.com/go-chunksum/chunksum/internal/fingerprint"
)

// RunMulti drives C6 through a producer goroutine into a bounded path
// queue, cpu_count() worker goroutines into a bounded result queue, and a
// single collector goroutine that owns the sink exclusively, all running
// concurrently from start-up. Falls back to RunSingle when multi-process
// orchestration would be unsafe: the sole input is the stdin-bytes
// sentinel, or consumer mode (stdin-as-path-list) is active.
func RunMulti(ctx context.Context, src enumerate.Source, opts Options) (*Summary, error) {
	if err := validateAlgID(opts.AlgID); err != nil {
		return nil, err
	}

	if src.StdinLines || isSoleStdinBytes(src) {
		return RunSingle(ctx, src, opts)
	}

	log := opts.logger()
	skip := opts.skip()
	bar := opts.progress()
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}

	summary := &Summary{}
	var summaryMu sync.Mutex

	pathQ := make(chan enumerate.Item, 10)
	resultQ := make(chan string, 10)
	progressQ := make(chan int64, 1024)
	stopWorkers := make(chan struct{})
	stopCollector := make(chan struct{})
	producerDone := make(chan struct{})

	busy := make([]atomic.Bool, workers)

	// Progress monitor: drains progressQ into the bar for the whole run.
	var monitorWG sync.WaitGroup
	monitorWG.Add(1)
	go func() {
		defer monitorWG.Done()
		for n := range progressQ {
			bar.Update(n)
		}
	}()

	// Collector: the sole writer to the sink, running for the whole run.
	var collectorWG sync.WaitGroup
	var collectorBusy atomic.Bool
	collectorWG.Add(1)
	go func() {
		defer collectorWG.Done()
		for {
			select {
			case line := <-resultQ:
				collectorBusy.Store(true)
				if _, err := fmt.Fprintln(opts.Sink, line); err != nil {
					log.Error("write chunksums line", zap.Error(err))
				}
				if f, ok := opts.Sink.(interface{ Sync() error }); ok {
					_ = f.Sync()
				}
				collectorBusy.Store(false)
			case <-stopCollector:
				return
			}
		}
	}()

	// Workers.
	var workersWG sync.WaitGroup
	for i := 0; i < workers; i++ {
		workersWG.Add(1)
		go func(idx int) {
			defer workersWG.Done()
			for {
				select {
				case item := <-pathQ:
					busy[idx].Store(true)
					handleItem(item, src.Stdin, opts.AlgID, skip, log, resultQ, progressQ, &summaryMu, summary)
					busy[idx].Store(false)
				case <-stopWorkers:
					return
				}
			}
		}(i)
	}

	// Producer: stream enumerated items into the bounded path queue.
	go func() {
		defer close(producerDone)
		for item := range enumerate.Enumerate(ctx, src) {
			select {
			case pathQ <- item:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Driver: wait for the producer, then for the path queue to drain and
	// every worker to go idle, observed strictly after producer exit.
	<-producerDone
	for {
		if len(pathQ) == 0 && allIdle(busy) {
			close(stopWorkers)
			break
		}
		time.Sleep(time.Millisecond)
	}
	workersWG.Wait()

	// No worker can push to resultQ or progressQ after this point.
	for {
		if len(resultQ) == 0 && !collectorBusy.Load() {
			close(stopCollector)
			break
		}
		time.Sleep(time.Millisecond)
	}
	collectorWG.Wait()

	close(progressQ)
	monitorWG.Wait()

	bar.Done()
	return summary, nil
}

func allIdle(busy []atomic.Bool) bool {
	for i := range busy {
		if busy[i].Load() {
			return false
		}
	}
	return true
}

func isSoleStdinBytes(src enumerate.Source) bool {
	return len(src.Args) == 1 && src.Args[0] == "-"
}

func handleItem(
	item enumerate.Item,
	stdin io.Reader,
	algID string,
	skip interface{ Contains(string) bool },
	log *zap.Logger,
	resultQ chan<- string,
	progressQ chan<- int64,
	summaryMu *sync.Mutex,
	summary *Summary,
) {
	summaryMu.Lock()
	summary.FilesTotal++
	summaryMu.Unlock()

	recordErr := func(err error) {
		summaryMu.Lock()
		summary.Errors = append(summary.Errors, err)
		summaryMu.Unlock()
	}

	if item.Err != nil {
		recordErr(item.Err)
		return
	}

	if item.Kind == enumerate.KindStdinBytes {
		if stdin == nil {
			stdin = os.Stdin
		}
		chunks, err := fingerprint.ComputeFile(stdin, algID)
		if err != nil {
			log.Debug("skip stdin", zap.Error(err))
			recordErr(err)
			return
		}
		line, size, err := formatResultLine("<stdin>", algID, chunks)
		if err != nil {
			recordErr(err)
			return
		}
		resultQ <- line
		progressQ <- size
		summaryMu.Lock()
		summary.FilesProcessed++
		summary.BytesHashed += size
		summaryMu.Unlock()
		return
	}

	if skip.Contains(item.Path) {
		if info, err := os.Stat(item.Path); err == nil {
			progressQ <- info.Size()
		}
		return
	}

	f, err := os.Open(item.Path)
	if err != nil {
		log.Debug("skip unreadable file", zap.String("path", item.Path), zap.Error(err))
		recordErr(err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		recordErr(err)
		return
	}

	chunks, err := fingerprint.ComputeFile(f, algID)
	if err != nil {
		log.Debug("skip file mid-read", zap.String("path", item.Path), zap.Error(err))
		recordErr(err)
		return
	}

	line, _, err := formatResultLine(item.Path, algID, chunks)
	if err != nil {
		recordErr(err)
		return
	}

	resultQ <- line
	progressQ <- info.Size()
	summaryMu.Lock()
	summary.FilesProcessed++
	summary.BytesHashed += info.Size()
	summaryMu.Unlock()
}
