package service

import (
	"time"

	"github.com/okian/eventsheet/internal/adapters/document"
	"github.com/okian/eventsheet/internal/adapters/repository"
	"github.com/okian/eventsheet/pkg/logger"
)

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithReader sets the event source.
func WithReader(r repository.Reader) Option {
	return func(g *Generator) {
		if r != nil {
			g.reader = r
		}
	}
}

// WithRenderer sets the document renderer.
func WithRenderer(r *document.Renderer) Option {
	return func(g *Generator) {
		if r != nil {
			g.renderer = r
		}
	}
}

// WithLogger sets a custom logger for the generator.
func WithLogger(l logger.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithOutputDir sets the directory default file names are placed in.
func WithOutputDir(dir string) Option {
	return func(g *Generator) {
		if dir != "" {
			g.outputDir = dir
		}
	}
}

// WithClock replaces time.Now, which dates the digest and default names.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}
