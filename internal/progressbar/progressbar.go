// Package progressbar renders the byte-total progress bar the orchestrator
// pushes counts into, built on the same mpb single-overall-bar shape the
// compression pipeline this repo descends from used.
package progressbar

import (
	"os"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Bar is the progress collaborator the core pushes byte counts into.
// Rendering is external to the core packages (C8/C9 only call Update and
// Done).
type Bar interface {
	Update(bytesDone int64)
	Done()
}

// Null is a no-op Bar, used when no Bar is supplied (e.g. the CLI in
// consumer mode, or when the sole input is the "-" stdin-bytes sentinel).
type Null struct{}

func (Null) Update(int64) {}
func (Null) Done()        {}

type mpbBar struct {
	progress *mpb.Progress
	bar      *mpb.Bar
}

// New creates an mpb-backed Bar with the given total byte count.
func New(total int64) (Bar, *mpb.Progress) {
	// Chunksums lines go to stdout (or a -f/-i file); the bar must never
	// share that stream, so it renders to stderr.
	progress := mpb.New(mpb.WithOutput(os.Stderr), mpb.WithWidth(60), mpb.WithRefreshRate(100))
	bar := progress.AddBar(total,
		mpb.PrependDecorators(
			decor.Name("chunksum", decor.WC{C: decor.DindentRight | decor.DextraSpace}),
			decor.CountersKibiByte("% .1f / % .1f", decor.WC{W: 18}),
		),
		mpb.AppendDecorators(decor.Percentage(decor.WC{W: 5})),
	)
	return &mpbBar{progress: progress, bar: bar}, progress
}

func (b *mpbBar) Update(bytesDone int64) {
	b.bar.IncrInt64(bytesDone)
}

func (b *mpbBar) Done() {
	b.bar.SetTotal(b.bar.Current(), true)
}
