package document

import "errors"

// Sentinel kinds for document generation errors.
var (
	ErrLayout = errors.New("document layout failed")
	ErrOutput = errors.New("document output failed")
)
