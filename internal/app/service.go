// Package service generates printable event sheets and the upcoming events
// digest from the venue store.
package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/okian/eventsheet/internal/adapters/document"
	"github.com/okian/eventsheet/internal/adapters/repository"
	"github.com/okian/eventsheet/internal/sheet"
	"github.com/okian/eventsheet/pkg/logger"
	"github.com/okian/eventsheet/pkg/metrics"
)

// Generator renders documents for the invoker. It holds no per-call state;
// each call reads its own snapshot and builds its own document.
type Generator struct {
	reader    repository.Reader
	renderer  *document.Renderer
	logger    logger.Logger
	outputDir string
	now       func() time.Time
}

// New constructs a Generator. A reader must be supplied with WithReader.
func New(opts ...Option) *Generator {
	g := &Generator{
		outputDir: ".",
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = logger.Named("generator")
	}
	if g.renderer == nil {
		g.renderer = document.NewRenderer(document.WithLogger(g.logger))
	}
	return g
}

// GenerateEventSheet writes the sheet for one event and returns its path.
// An empty path selects a default name in the output directory.
func (g *Generator) GenerateEventSheet(ctx context.Context, eventID int64, path string) (string, error) {
	start := time.Now()
	log := g.logger.With(logger.String("run_id", uuid.NewString()), logger.Int64("event_id", eventID))
	log.Info(ctx, "generating event sheet")

	res, err := g.eventSheet(ctx, eventID, path)
	if err != nil {
		metrics.RecordGenerationError(metrics.KindEventSheet, errorKind(err))
		log.Error(ctx, "event sheet failed", logger.Error(err))
		return "", err
	}

	elapsed := time.Since(start)
	metrics.RecordDocument(metrics.KindEventSheet, res.Pages, res.Bytes, elapsed.Seconds())
	log.Info(ctx, "event sheet written",
		logger.String("path", res.Path),
		logger.Int("pages", res.Pages),
		logger.Int64("bytes", res.Bytes),
		logger.Duration("duration", elapsed))
	return res.Path, nil
}

func (g *Generator) eventSheet(ctx context.Context, eventID int64, path string) (document.Result, error) {
	if g.reader == nil {
		return document.Result{}, fmt.Errorf("%w: no reader configured", ErrStorage)
	}
	view, err := g.reader.ReadEvent(ctx, eventID)
	if errors.Is(err, repository.ErrNotFound) {
		return document.Result{}, fmt.Errorf("%w: %w", ErrEventMissing, err)
	}
	if err != nil {
		return document.Result{}, storageError(err)
	}

	if path == "" {
		path = filepath.Join(g.outputDir, sheet.DefaultSheetFilename(view.Event, g.now()))
	}
	snapshot := *view
	return g.renderer.Render(ctx, document.Job{
		Path:   path,
		Title:  snapshot.Name,
		Date:   sheet.SheetDate(snapshot.Event),
		Footer: sheet.SheetFooter(snapshot.Event),
		Story:  func() []document.Flowable { return sheet.EventSheet(snapshot) },
	})
}

// GenerateUpcomingEventsList writes the digest of upcoming events and returns
// its path. An empty path selects a default name in the output directory.
func (g *Generator) GenerateUpcomingEventsList(ctx context.Context, path string) (string, error) {
	start := time.Now()
	log := g.logger.With(logger.String("run_id", uuid.NewString()))
	log.Info(ctx, "generating upcoming events list")

	res, events, err := g.digest(ctx, path)
	if err != nil {
		metrics.RecordGenerationError(metrics.KindDigest, errorKind(err))
		log.Error(ctx, "upcoming events list failed", logger.Error(err))
		return "", err
	}

	elapsed := time.Since(start)
	metrics.RecordDocument(metrics.KindDigest, res.Pages, res.Bytes, elapsed.Seconds())
	log.Info(ctx, "upcoming events list written",
		logger.String("path", res.Path),
		logger.Int("events", events),
		logger.Int("pages", res.Pages),
		logger.Int64("bytes", res.Bytes),
		logger.Duration("duration", elapsed))
	return res.Path, nil
}

func (g *Generator) digest(ctx context.Context, path string) (document.Result, int, error) {
	if g.reader == nil {
		return document.Result{}, 0, fmt.Errorf("%w: no reader configured", ErrStorage)
	}
	views, err := g.reader.ReadUpcoming(ctx)
	if err != nil {
		return document.Result{}, 0, storageError(err)
	}
	upcoming := sheet.UpcomingEvents(views)
	if len(upcoming) == 0 {
		return document.Result{}, 0, ErrNoUpcomingEvents
	}

	now := g.now()
	if path == "" {
		path = filepath.Join(g.outputDir, sheet.DefaultDigestFilename(now))
	}
	res, err := g.renderer.Render(ctx, document.Job{
		Path:   path,
		Title:  "Upcoming Events",
		Date:   now,
		Footer: sheet.DigestFooter(now),
		Story:  func() []document.Flowable { return sheet.Digest(upcoming, now) },
	})
	return res, len(upcoming), err
}

func storageError(err error) error {
	if errors.Is(err, ErrStorage) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
