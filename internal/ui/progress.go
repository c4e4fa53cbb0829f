package ui

import (
	"context"
	"fmt"
	"os"
	"time"

	"stegowire/internal/exchange"

	"github.com/schollz/progressbar/v3"
)

// ProgressUI renders a progress bar for the byte exchange
type ProgressUI struct {
	bar *progressbar.ProgressBar
}

// NewProgressUI creates a new progress UI
func NewProgressUI() *ProgressUI {
	return &ProgressUI{}
}

// StartProgress initializes the progress bar for an exchange session
func (p *ProgressUI) StartProgress(filename string, totalBytes int64) {
	p.bar = progressbar.NewOptions64(totalBytes,
		progressbar.OptionSetDescription(fmt.Sprintf("Encoding %s", filename)),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(50),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(false),
	)
}

// ConsumeUpdates drains progress updates until the exchanger closes the
// channel or ctx is cancelled. Run it in its own goroutine; it never
// touches the transport.
func (p *ProgressUI) ConsumeUpdates(ctx context.Context, progressCh <-chan exchange.ProgressUpdate) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-progressCh:
			if !ok {
				return
			}
			if p.bar != nil {
				_ = p.bar.Add64(int64(update.NewBytes))
			}
		}
	}
}

// CompleteProgress marks the progress bar as finished
func (p *ProgressUI) CompleteProgress() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
	fmt.Fprintln(os.Stderr)
}
