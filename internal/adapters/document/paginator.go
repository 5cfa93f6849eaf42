package document

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/okian/eventsheet/pkg/logger"
	"github.com/okian/eventsheet/pkg/metrics"
)

const defaultCreator = "eventsheet"

// StoryFunc builds a story. It is called once per pass and must return an
// equivalent story every time.
type StoryFunc func() []Flowable

// Job describes one document to render.
type Job struct {
	// Path is the final output path.
	Path string
	// Title goes into the document information.
	Title string
	// Date is written as both creation and modification date.
	Date   time.Time
	Footer Footer
	Story  StoryFunc
}

// Result describes a written document.
type Result struct {
	Path  string
	Pages int
	Bytes int64
}

// Renderer turns stories into PDF files with "Page K of M" footers.
type Renderer struct {
	geometry Geometry
	compress bool
	creator  string
	logger   logger.Logger
}

// NewRenderer creates a renderer for A4 pages with compressed output.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		geometry: A4,
		compress: true,
		creator:  defaultCreator,
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render builds the job's story twice and writes the result to job.Path.
// The target path is only ever replaced by a complete file; on failure it is
// left as it was.
func (r *Renderer) Render(ctx context.Context, job Job) (Result, error) {
	if job.Path == "" {
		return Result{}, fmt.Errorf("%w: empty output path", ErrOutput)
	}
	data, pages, err := r.Build(ctx, job)
	if err != nil {
		return Result{}, err
	}
	if err := writeAtomic(job.Path, data); err != nil {
		return Result{}, err
	}
	r.logger.Debug(ctx, "document written",
		logger.String("path", job.Path),
		logger.Int("pages", pages),
		logger.Int("bytes", len(data)))
	return Result{Path: job.Path, Pages: pages, Bytes: int64(len(data))}, nil
}

// Build runs the discovery and render passes and returns the PDF bytes and
// page count.
func (r *Renderer) Build(ctx context.Context, job Job) ([]byte, int, error) {
	if job.Story == nil {
		return nil, 0, fmt.Errorf("%w: no story", ErrLayout)
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	total, err := r.pass(job, 0, io.Discard)
	if err != nil {
		return nil, 0, err
	}
	r.logger.Debug(ctx, "discovery pass complete", logger.Int("pages", total))

	var buf bytes.Buffer
	pages, err := r.pass(job, total, &buf)
	if err != nil {
		return nil, 0, err
	}
	if pages != total {
		return nil, 0, fmt.Errorf("%w: render pass produced %d pages, discovery found %d",
			ErrLayout, pages, total)
	}
	return buf.Bytes(), pages, nil
}

func (r *Renderer) pass(job Job, total int, w io.Writer) (int, error) {
	metrics.RecordLayoutPass()
	tpl := pageTemplate{geometry: r.geometry, footer: job.Footer, total: total}
	doc := newDocument(r.geometry, r.compress, tpl, meta{title: job.Title, creator: r.creator, date: job.Date})
	pages, err := doc.build(job.Story())
	if err != nil {
		return 0, err
	}
	if err := doc.canvas.pdf.Output(w); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrLayout, err)
	}
	return pages, nil
}

// writeAtomic writes data to a temporary file next to path and renames it
// into place.
func writeAtomic(path string, data []byte) (err error) {
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return nil
}
