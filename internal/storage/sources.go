package storage

import (
	"context"
	"io"
)

type BlobReader interface {
	io.ReaderAt
	io.Closer
	Size() int64
}

// BlobWriter writes a new blob. Close commits it. Cancel discards it, and
// must be used instead of Close when the contents are incomplete.
type BlobWriter interface {
	io.WriteCloser
	Cancel() error
}

// BlobStore holds named, immutable blobs. A blob being written only becomes
// visible once its writer is successfully closed.
type BlobStore interface {
	Open(name string) (BlobReader, error)
	// Create a new blob. Cancelling ctx before Close discards it.
	Create(ctx context.Context, name string) (BlobWriter, error)
	Remove(name string) error
}

// NewReader returns a sequential reader over all of br.
func NewReader(br BlobReader) io.Reader {
	return io.NewSectionReader(br, 0, br.Size())
}
