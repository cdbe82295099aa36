package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Progress receives scan progress. Implementations must be safe for
// concurrent use.
type Progress interface {
	Start()
	NextFile(path string)
	AddBytes(n int64)
	Finish()
}

const maxDescLen = 50

// BarProgress renders a spinner with the number of inspected files, bytes
// hashed and the current file. The total is unknown because the walk is lazy.
type BarProgress struct {
	mu     sync.Mutex
	writer io.Writer
	bar    *progressbar.ProgressBar
	files  int
}

// NewBarProgress creates a progress bar writing to writer.
func NewBarProgress(writer io.Writer) *BarProgress {
	return &BarProgress{writer: writer}
}

func (p *BarProgress) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.files = 0
	p.bar = progressbar.NewOptions64(-1,
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionSetDescription("inspecting"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSpinnerType(14),
		// Zero turns off the bar's own render goroutine; every render then
		// happens under p.mu.
		progressbar.OptionSetSpinnerChangeInterval(0),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
	_ = p.bar.RenderBlank()
}

func (p *BarProgress) NextFile(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bar == nil {
		return
	}
	p.files++
	p.bar.Describe(fmt.Sprintf("%d files %s", p.files, shortenPath(path, maxDescLen)))
}

func (p *BarProgress) AddBytes(n int64) {
	if n <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bar == nil {
		return
	}
	_ = p.bar.Add64(n)
}

func (p *BarProgress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
	p.bar = nil
}

// Files returns how many files have been reported so far.
func (p *BarProgress) Files() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.files
}

// WrapWriter returns a writer that clears the bar before every write, so
// diagnostics sharing the stream are not overdrawn.
func (p *BarProgress) WrapWriter(w io.Writer) io.Writer {
	if p == nil {
		return w
	}
	return &progressAwareWriter{
		progress: p,
		writer:   w,
	}
}

// Writer adapts AddBytes to io.Writer so it can tap a copy loop.
func Writer(p Progress) io.Writer {
	return progressWriter{progress: p}
}

// NoopProgress is used when the bar is disabled.
type NoopProgress struct{}

func (n NoopProgress) Start()               {}
func (n NoopProgress) NextFile(path string) {}
func (n NoopProgress) AddBytes(delta int64) {}
func (n NoopProgress) Finish()              {}

type progressAwareWriter struct {
	progress *BarProgress
	writer   io.Writer
}

func (pw *progressAwareWriter) Write(b []byte) (int, error) {
	pw.progress.mu.Lock()
	defer pw.progress.mu.Unlock()
	if pw.progress.bar != nil {
		_ = pw.progress.bar.Clear()
	}
	return pw.writer.Write(b)
}

type progressWriter struct {
	progress Progress
}

func (p progressWriter) Write(b []byte) (int, error) {
	p.progress.AddBytes(int64(len(b)))
	return len(b), nil
}

func shortenPath(path string, maxLen int) string {
	clean := strings.NewReplacer("\n", " ", "\r", " ").Replace(path)
	runes := []rune(clean)
	if len(runes) <= maxLen {
		return clean
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	keep := maxLen - 3
	head := keep / 2
	tail := keep - head
	return string(runes[:head]) + "..." + string(runes[len(runes)-tail:])
}
