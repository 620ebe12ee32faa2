package workload

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/akmistry/lapper"
	"github.com/akmistry/lapper/internal/storage"
	"github.com/akmistry/lapper/internal/util"
)

// ReadBlob loads the intervals stored in the blob called name.
func ReadBlob(bs storage.BlobStore, name string) ([]lapper.Interval[int], error) {
	br, err := bs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("workload.ReadBlob: error opening %s: %w", name, err)
	}
	defer br.Close()

	ivs, err := Load(storage.NewReader(br))
	if err != nil {
		return nil, err
	}
	slog.Debug("workload.ReadBlob: loaded",
		"name", name,
		"size", util.Bytes(br.Size()),
		"intervals", len(ivs))
	return ivs, nil
}

// WriteBlob stores ivs as the blob called name.
func WriteBlob(ctx context.Context, bs storage.BlobStore, name string, ivs []lapper.Interval[int]) error {
	w, err := bs.Create(ctx, name)
	if err != nil {
		return fmt.Errorf("workload.WriteBlob: error creating %s: %w", name, err)
	}
	err = Dump(w, ivs)
	if err != nil {
		w.Cancel()
		return fmt.Errorf("workload.WriteBlob: error writing %s: %w", name, err)
	}
	return w.Close()
}
