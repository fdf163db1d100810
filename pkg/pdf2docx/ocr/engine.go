package ocr

import "context"

// Engine recognizes text in a single encoded image.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, image []byte, opts Options) (string, error)
	Close() error
}
