package document

import "github.com/okian/eventsheet/pkg/logger"

// Option applies a configuration option to the Renderer.
type Option func(*Renderer)

// WithGeometry sets the page geometry.
func WithGeometry(g Geometry) Option {
	return func(r *Renderer) {
		if g.PageWidth > 0 && g.PageHeight > 0 {
			r.geometry = g
		}
	}
}

// WithCompression toggles stream compression in the written PDF.
func WithCompression(enabled bool) Option {
	return func(r *Renderer) {
		r.compress = enabled
	}
}

// WithCreator sets the Creator entry of the document information.
func WithCreator(creator string) Option {
	return func(r *Renderer) {
		r.creator = creator
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}
