package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"s3transferbench/benchmark"
	"s3transferbench/config"
	"s3transferbench/corpus"
	"s3transferbench/report"
)

func main() {
	// Define command-line flags
	bucketName := flag.String("bucket", "", "Name of the target S3 bucket")
	op := flag.String("op", "upload", "Transfer direction: upload or download")
	strategyName := flag.String("strategy", "all", "Transfer strategy to benchmark, or 'all'")
	modeName := flag.String("mode", "serial", "Execution mode: serial, threads or pool")
	poolSize := flag.Int("pool-size", 8, "Worker count for pool mode")
	threads := flag.Int("threads", benchmark.DefaultThreads, "Worker count for the multi-thread download strategy")
	dir := flag.String("dir", "./bench_files", "Working directory for the file corpus")
	scan := flag.Bool("scan", false, "Reuse the files already in the working directory instead of generating")
	maxSize := flag.Int("max-size", 128, "Largest generated file size in MB (progression doubles from 1)")
	rateLimit := flag.Int("rate-limit", 0, "Max dispatches per second (0 means no limit)")
	region := flag.String("region", "", "AWS region override")
	keyPrefix := flag.String("prefix", "", "Object key prefix (defaults to a fresh per-run prefix)")
	showProgress := flag.Bool("progress", false, "Render per-transfer progress bars")

	flag.Parse()

	if *bucketName == "" {
		fmt.Println("Error: -bucket is required.")
		os.Exit(1)
	}
	if *op != "upload" && *op != "download" {
		fmt.Printf("Error: unknown direction %q (want upload or download).\n", *op)
		os.Exit(1)
	}

	mode, err := benchmark.ParseMode(*modeName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	strategies, err := selectStrategies(*op, *strategyName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Raise system resource limits before fanning out
	if err := benchmark.SetMaxResources(); err != nil {
		fmt.Printf("Error setting resources: %v\n", err)
		os.Exit(1)
	}

	// Populate the working set: generate a fresh corpus or scan an
	// existing one, never both.
	var files []corpus.FileDescriptor
	if *scan {
		files, err = corpus.Scan(*dir)
	} else {
		var sizes []int
		for mb := 1; mb <= *maxSize; mb *= 2 {
			sizes = append(sizes, mb)
		}
		fmt.Printf("Generating %d files under %s...\n", len(sizes), *dir)
		files, err = corpus.GenerateSet(*dir, sizes)
	}
	if err != nil {
		fmt.Printf("Error preparing corpus: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Println("No files in the working set.")
		os.Exit(1)
	}

	ctx := context.Background()
	cfg, err := config.LoadAWSConfig(ctx, *region)
	if err != nil {
		fmt.Printf("Error loading AWS config: %v\n", err)
		os.Exit(1)
	}

	api := benchmark.NewAPI(
		config.NewStandardClient(cfg),
		config.NewAcceleratedClient(cfg),
		benchmark.WithThreads(*threads),
		benchmark.WithProgressBars(*showProgress),
	)
	driver := benchmark.NewDriver(*rateLimit)

	prefix := *keyPrefix
	if prefix == "" {
		prefix = benchmark.RunPrefix()
		fmt.Printf("Using run prefix %s\n", prefix)
	}

	var totalBytes int64
	for _, f := range files {
		totalBytes += f.SizeBytes
	}

	downloads := ""
	if *op == "download" {
		downloads, err = corpus.EnsureDownloadDir(*dir)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	failed := false
	for _, strategy := range strategies {
		label := fmt.Sprintf("%s %s %s", mode, *op, strategy)
		fmt.Printf("\nRunning %s benchmark...\n", label)

		fn := uploadFunc(api, strategy, *bucketName, prefix)
		if *op == "download" {
			fn = downloadFunc(api, strategy, *bucketName, prefix, downloads)
		}

		elapsed, err := driver.Run(ctx, mode, files, fn, *poolSize)
		if err != nil {
			fmt.Printf("Error during %s: %v\n", label, err)
			failed = true
		}
		report.DisplayRunResults(label, len(files), elapsed, totalBytes)
	}
	if failed {
		os.Exit(1)
	}
}

// selectStrategies resolves the -strategy flag against the direction's
// strategy catalogue.
func selectStrategies(op, name string) ([]benchmark.Strategy, error) {
	if name == "all" {
		if op == "download" {
			return benchmark.DownloadStrategies(), nil
		}
		return benchmark.UploadStrategies(), nil
	}
	s, err := benchmark.ParseStrategy(name)
	if err != nil {
		return nil, err
	}
	if op == "upload" && s.DownloadOnly() {
		return nil, fmt.Errorf("strategy %s only applies to downloads", s)
	}
	return []benchmark.Strategy{s}, nil
}

func uploadFunc(api *benchmark.API, s benchmark.Strategy, bucket, prefix string) benchmark.TransferFunc {
	return func(ctx context.Context, file corpus.FileDescriptor) (map[string]int64, error) {
		return api.Upload(ctx, s, file, bucket, benchmark.ObjectKey(prefix, file.Path))
	}
}

func downloadFunc(api *benchmark.API, s benchmark.Strategy, bucket, prefix, downloads string) benchmark.TransferFunc {
	return func(ctx context.Context, file corpus.FileDescriptor) (map[string]int64, error) {
		key := benchmark.ObjectKey(prefix, file.Path)
		dest := filepath.Join(downloads, filepath.Base(file.Path))
		return api.Download(ctx, s, bucket, key, dest, file.SizeBytes)
	}
}
