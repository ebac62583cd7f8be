package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lojhan/chainmap/internal/demo"
	"github.com/lojhan/chainmap/internal/logging"
	"github.com/lojhan/chainmap/internal/person"
	"github.com/lojhan/chainmap/internal/store"
)

func main() {
	capacity := flag.Int("capacity", store.DefaultCapacity, "Number of buckets in the table")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFormat := flag.String("log-format", "console", "Log format: console, json")
	logFile := flag.String("log-file", "", "Write logs to this file instead of stderr")
	logMaxSize := flag.Int("log-max-size", 10, "Maximum log file size in megabytes before rotation")
	logMaxBackups := flag.Int("log-max-backups", 3, "Number of rotated log files to keep")
	flag.Parse()

	logger, closer, err := logging.New(logging.Config{
		Level:      *logLevel,
		Format:     *logFormat,
		File:       *logFile,
		MaxSizeMB:  *logMaxSize,
		MaxBackups: *logMaxBackups,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure logging: %v\n", err)
		os.Exit(2)
	}
	defer closer.Close()
	defer logger.Sync()

	table := store.NewHashTable[person.Person, string](store.WithCapacity(*capacity))
	logger.Info("Created table", zap.Int("capacity", table.Capacity()))

	report, err := demo.Run(table, logger, os.Stdout)
	if err != nil {
		logger.Fatal("Demo failed", zap.Error(err))
	}

	logger.Info("Demo finished",
		zap.Int("size_before_remove", report.SizeBefore),
		zap.Int("size_after_remove", report.SizeAfter),
	)
}
