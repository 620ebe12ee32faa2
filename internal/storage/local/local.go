package local

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/akmistry/lapper/internal/storage"
)

const (
	tempBlobPrefix  = ".temp-"
	tempBlobPattern = tempBlobPrefix + "*"
)

var (
	_ = (storage.BlobStore)((*BlobStore)(nil))
)

type fileReader struct {
	*os.File
	size int64
}

func (r *fileReader) Size() int64 {
	return r.size
}

func openFileReader(fpath string) (*fileReader, error) {
	f, err := os.Open(fpath)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	r := &fileReader{
		File: f,
		size: fi.Size(),
	}
	return r, nil
}

// BlobStore keeps each blob as a file in a single directory.
type BlobStore struct {
	dir string
}

func NewBlobStore(dir string) (*BlobStore, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("local.BlobStore: error making blob dir %s: %w", dir, err)
	}

	s := &BlobStore{
		dir: dir,
	}
	return s, nil
}

func (s *BlobStore) makeFilePath(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *BlobStore) Open(name string) (storage.BlobReader, error) {
	return openFileReader(s.makeFilePath(name))
}

// Blobs are written to a temp file, and renamed into place on Close.
type blobWriter struct {
	*os.File
	path string
	ctx  context.Context
}

func (w *blobWriter) Close() error {
	f := w.File
	if f == nil {
		return os.ErrClosed
	}
	w.File = nil
	defer os.Remove(f.Name())

	if err := w.ctx.Err(); err != nil {
		f.Close()
		return err
	}
	err := f.Sync()
	if err != nil {
		// Close the file on sync error to avoid an FD leak
		f.Close()
		return err
	}
	err = f.Close()
	if err != nil {
		return err
	}
	slog.Debug("local.BlobStore: renaming blob", "from", f.Name(), "to", w.path)
	return os.Rename(f.Name(), w.path)
}

func (w *blobWriter) Cancel() error {
	f := w.File
	if f == nil {
		return os.ErrClosed
	}
	w.File = nil
	f.Close()
	slog.Debug("local.BlobStore: discarding blob", "temp", f.Name(), "path", w.path)
	return os.Remove(f.Name())
}

func (s *BlobStore) Create(ctx context.Context, name string) (storage.BlobWriter, error) {
	f, err := os.CreateTemp(s.dir, tempBlobPattern)
	if err != nil {
		return nil, err
	}
	return &blobWriter{
		File: f,
		path: s.makeFilePath(name),
		ctx:  ctx,
	}, nil
}

func (s *BlobStore) Remove(name string) error {
	return os.Remove(s.makeFilePath(name))
}
