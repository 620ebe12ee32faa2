package cloud

import (
	"context"

	cu "github.com/akmistry/cloud-util"
	_ "github.com/akmistry/cloud-util/all"
	"github.com/akmistry/cloud-util/cache"

	"github.com/akmistry/lapper/internal/storage"
)

// BlobStore reads and writes workloads in any blob store cloud-util can open
// by URL, optionally through a local block cache.
type BlobStore struct {
	bs cu.BlobStore
}

var _ = (storage.BlobStore)((*BlobStore)(nil))

func NewBlobStore(url, cacheDir string, cacheSize int64) (*BlobStore, error) {
	bs, err := cu.OpenBlobStore(url)
	if err != nil {
		return nil, err
	}
	if cacheDir != "" {
		bs, err = cache.NewBlockBlobCache(bs, cacheDir, cacheSize)
		if err != nil {
			return nil, err
		}
	}
	return &BlobStore{bs: bs}, nil
}

func (s *BlobStore) Open(name string) (storage.BlobReader, error) {
	return s.bs.Get(name)
}

// Cancels the underlying put if ctx is done before Close or Cancel.
type blobWriter struct {
	storage.BlobWriter
	ctx  context.Context
	stop func() bool
}

func newBlobWriter(ctx context.Context, w storage.BlobWriter) *blobWriter {
	return &blobWriter{
		BlobWriter: w,
		ctx:        ctx,
		stop:       context.AfterFunc(ctx, func() { w.Cancel() }),
	}
}

func (w *blobWriter) Close() error {
	if !w.stop() {
		if err := w.ctx.Err(); err != nil {
			// The put has been, or is being, cancelled.
			return err
		}
	}
	return w.BlobWriter.Close()
}

func (w *blobWriter) Cancel() error {
	if !w.stop() && w.ctx.Err() != nil {
		return nil
	}
	return w.BlobWriter.Cancel()
}

func (s *BlobStore) Create(ctx context.Context, name string) (storage.BlobWriter, error) {
	w, err := s.bs.Put(name)
	if err != nil {
		return nil, err
	}
	return newBlobWriter(ctx, w), nil
}

func (s *BlobStore) Remove(name string) error {
	return s.bs.Delete(name)
}
