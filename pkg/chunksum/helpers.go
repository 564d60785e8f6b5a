// Package chunksum is the library facade over the core fingerprinting
// pipeline: callers configure Options and call Run.
package chunksum

import (
	"fmt"
	"strings"

	"github.com/go-chunksum/chunksum/internal/orchestrator"
)

// FormatSummary renders a human-readable summary of a completed run,
// mirroring the teacher's post-run report shape (files processed, bytes
// processed, error count) without the archive-specific ratio fields that
// don't apply to a fingerprinting run. Bytes hashed reflects only the
// files this run actually read, not the input total - on a resumption
// run where every path is skipped, the two can differ widely.
func FormatSummary(s *orchestrator.Summary) string {
	var sb strings.Builder

	if len(s.Errors) > 0 {
		fmt.Fprintf(&sb, "Completed with %d errors:\n", len(s.Errors))
		for _, e := range s.Errors {
			fmt.Fprintf(&sb, "  - %v\n", e)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Summary:\n")
	fmt.Fprintf(&sb, "  Files processed: %d / %d\n", s.FilesProcessed, s.FilesTotal)
	fmt.Fprintf(&sb, "  Bytes hashed:    %s\n", FormatSize(uint64(s.BytesHashed)))

	return sb.String()
}

// FormatSize formats bytes into a human-readable string.
func FormatSize(bytes uint64) string {
	const (
		KB = 1024
		MB = 1024 * KB
		GB = 1024 * MB
		TB = 1024 * GB
	)

	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.2f TB", float64(bytes)/float64(TB))
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
