package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"runtime/pprof"
	"time"

	"github.com/spf13/pflag"

	"github.com/akmistry/lapper"
	"github.com/akmistry/lapper/internal/app/lapperbench"
	"github.com/akmistry/lapper/internal/bench"
	"github.com/akmistry/lapper/internal/storage"
	"github.com/akmistry/lapper/internal/storage/cloud"
	"github.com/akmistry/lapper/internal/storage/local"
	"github.com/akmistry/lapper/internal/workload"
)

var (
	countFlag          = pflag.StringP("count", "n", "200K", "Number of random intervals to generate")
	rangeMaxFlag       = pflag.Int("range-max", workload.DefaultRangeMax, "Random interval starts are in [0, range-max]")
	maxLengthPowerFlag = pflag.Int("max-length-power", workload.DefaultMaxLengthPower, "Random interval lengths are in [10^p/3, 10^p]")
	seedFlag           = pflag.Int64("seed", 0, "Random seed. 0 uses the current time")

	inputFlag = pflag.StringP("input", "i", "", "Load intervals from this workload file instead of generating them")
	dumpFlag  = pflag.String("dump", "", "Write the intervals used to this workload file")

	blobstoreFlag     = pflag.String("blobstore", "", "URL for blob storage backend holding workload files. Local directory if unset")
	blobDirFlag       = pflag.String("blob-dir", ".", "Local directory holding workload files, when --blobstore is unset")
	blobCacheDirFlag  = pflag.String("blob-cache-dir", "", "Local cache directory for --blobstore")
	blobCacheSizeFlag = pflag.String("blob-cache-size", "1G", "Size of blob cache")

	verboseFlag = pflag.Bool("verbose", false, "Verbose logging")
	cpuprofile  = pflag.String("cpuprofile", "", "write cpu profile to file")
)

func openBlobStore() (storage.BlobStore, error) {
	if *blobstoreFlag == "" {
		return local.NewBlobStore(*blobDirFlag)
	}
	cacheSize, err := lapperbench.ParseSize(*blobCacheSizeFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid --blob-cache-size %s: %w", *blobCacheSizeFlag, err)
	}
	return cloud.NewBlobStore(*blobstoreFlag, *blobCacheDirFlag, int64(cacheSize))
}

func main() {
	pflag.Parse()

	if pflag.NArg() != 0 {
		log.Print("Usage: lapperbench [flags]")
		pflag.PrintDefaults()
		os.Exit(1)
	}

	if *verboseFlag {
		slog.SetDefault(slog.New(slog.NewTextHandler(
			os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	count, err := lapperbench.ParseCount(*countFlag)
	if err != nil {
		log.Printf("Invalid count flag: %s", *countFlag)
		os.Exit(1)
	}

	var bs storage.BlobStore
	if *inputFlag != "" || *dumpFlag != "" {
		bs, err = openBlobStore()
		if err != nil {
			log.Fatal(err)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var ivs []lapper.Interval[int]
	if *inputFlag != "" {
		ivs, err = workload.ReadBlob(bs, *inputFlag)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Loaded %d intervals from %s", len(ivs), *inputFlag)
	} else {
		seed := *seedFlag
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		slog.Debug("Generating intervals", "count", count, "seed", seed)
		ivs = workload.Generate(rand.New(rand.NewSource(seed)), workload.Params{
			N:              count,
			RangeMax:       *rangeMaxFlag,
			MaxLengthPower: *maxLengthPowerFlag,
		})
	}

	if *dumpFlag != "" {
		err = workload.WriteBlob(ctx, bs, *dumpFlag, ivs)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote %d intervals to %s", len(ivs), *dumpFlag)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	res, err := bench.Run(ivs)
	fmt.Println("Lapper find:")
	fmt.Println(res.FindTotal)
	fmt.Println("Lapper seek")
	fmt.Println(res.SeekTotal)
	if err != nil {
		log.Println("Benchmark error: ", err)
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}
