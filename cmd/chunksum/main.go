package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-chunksum/chunksum/internal/orchestrator"
	"github.com/go-chunksum/chunksum/internal/progressbar"
	chunksum "github.com/go-chunksum/chunksum/pkg/chunksum"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagAlgID    string
	flagFile     string
	flagIncr     string
	flagMulti    bool
	flagConsumer bool
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:     "chunksum [paths...]",
	Short:   "content-defined chunk fingerprints for files",
	Long: `chunksum computes deterministic, chunk-level content fingerprints.

Each file is split into content-defined chunks with a FastCDC-family
splitter and every chunk is hashed independently; a whole-file digest is
derived from the concatenation of chunk digests. The algorithm id encodes
both the chunking parameters and the hash function, e.g.:

  fck4sha2       16 KiB average chunks, SHA-256 per chunk
  fcm4blake2b32  16 MiB average chunks, 32-byte BLAKE2b per chunk

Positional arguments are files or directories to fingerprint; "-" hashes
standard input as a single anonymous file named "<stdin>".`,
	Version: version,
	RunE:    runChunksum,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("chunksum {{.Version}}\ncommit: %s\nbuilt: %s\n", commit, date))
	rootCmd.Flags().StringVarP(&flagAlgID, "alg", "n", "fck4sha2", "algorithm id")
	rootCmd.Flags().StringVarP(&flagFile, "file", "f", "", `chunksums file: read for the skip set, appended to, or "-" for stdout`)
	rootCmd.Flags().StringVarP(&flagIncr, "incremental", "i", "", "incremental-updates file: receives only newly computed lines")
	rootCmd.Flags().BoolVarP(&flagMulti, "multi", "m", false, "enable multi-process orchestration")
	rootCmd.Flags().BoolVarP(&flagConsumer, "consumer", "x", false, "consumer mode: read paths from stdin, one per line, and disable multi-process")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "verbose diagnostic logging")
}

func runChunksum(cmd *cobra.Command, args []string) error {
	opts := chunksum.Options{
		AlgID:           flagAlgID,
		Paths:           args,
		ChunksumsFile:   flagFile,
		IncrementalFile: flagIncr,
		Multi:           flagMulti,
		ConsumerMode:    flagConsumer,
		Verbose:         flagVerbose,
		Stdin:           cmd.InOrStdin(),
	}

	if !flagConsumer && hasByteSource(args) {
		total := orchestrator.TotalSize(args)
		bar, progress := progressbar.New(total)
		opts.Progress = bar
		defer progress.Wait()
	}

	summary, err := chunksum.Run(context.Background(), opts)
	if err != nil {
		return err
	}

	fmt.Fprint(os.Stderr, chunksum.FormatSummary(summary))
	return nil
}

// hasByteSource reports false only when args is exactly the sole "-"
// stdin-bytes sentinel, for which a byte-total progress bar cannot be
// sized upfront.
func hasByteSource(args []string) bool {
	return !(len(args) == 1 && args[0] == "-")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
