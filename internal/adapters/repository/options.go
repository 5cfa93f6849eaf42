package repository

import "github.com/okian/eventsheet/pkg/logger"

// Option applies a configuration option to the SQLReader.
type Option func(*SQLReader)

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(r *SQLReader) {
		if l != nil {
			r.logger = l
		}
	}
}
