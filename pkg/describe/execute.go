// File: pkg/describe/execute.go
package describe

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"repotext/pkg/archive"

	"go.uber.org/zap"
)

// Arguments holds the options for one describe run.
type Arguments struct {
	Input          string   // Path to a .zip snapshot or an extracted directory.
	Output         string   // Destination path for the generated document.
	ConfigPath     string   // Optional YAML config with default patterns and size limit.
	ExcludePattern []string // Exclusion glob patterns from the command line.
	MaxFileSizeKB  int      // Size limit in KB; 0 means unlimited.
}

// Result is what a successful run produced, for callers that want to do
// more with the document (token counting, clipboard) than write it out.
type Result struct {
	Document   string
	Counts     Counts
	SourceName string
	OutputPath string
}

// Run executes the whole pipeline: resolve the snapshot root (extracting a
// zip archive to a temporary directory if needed), walk it, assemble the
// document, and write it to the output path.
func Run(args Arguments, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()
	logger.Debug("Starting describe run", zap.String("input", args.Input))

	cfg, err := LoadConfig(args.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	patterns := append(append([]string{}, cfg.Exclude...), args.ExcludePattern...)
	limitKB := args.MaxFileSizeKB
	if limitKB <= 0 {
		limitKB = cfg.MaxFileSizeKB
	}

	info, err := os.Stat(args.Input)
	if err != nil {
		return nil, fmt.Errorf("input path %q: %w", args.Input, err)
	}

	var root, rootName, sourceName string
	if info.IsDir() {
		absInput, err := filepath.Abs(args.Input)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve input path: %w", err)
		}
		root = absInput
		rootName = filepath.Base(absInput)
		sourceName = rootName
	} else {
		if !strings.EqualFold(filepath.Ext(args.Input), ".zip") {
			return nil, fmt.Errorf("input file %q is not a .zip archive", filepath.Base(args.Input))
		}
		tempDir, err := os.MkdirTemp("", "repotext-")
		if err != nil {
			return nil, fmt.Errorf("failed to create temporary directory: %w", err)
		}
		defer func() {
			if removeErr := os.RemoveAll(tempDir); removeErr != nil {
				logger.Warn("Failed to remove temporary directory",
					zap.String("dir", tempDir), zap.Error(removeErr))
			}
		}()

		logger.Debug("Extracting archive", zap.String("archive", args.Input), zap.String("dest", tempDir))
		if err := archive.Extract(args.Input, tempDir); err != nil {
			return nil, fmt.Errorf("failed to extract archive: %w", err)
		}

		sourceName = filepath.Base(args.Input)
		baseName := strings.TrimSuffix(sourceName, filepath.Ext(sourceName))
		root, rootName = archive.DetectRoot(tempDir, baseName)
		logger.Debug("Detected repository root", zap.String("root", root), zap.String("name", rootName))
	}

	walker := NewWalker(root, rootName, patterns, limitKB, logger)
	result, err := walker.Walk()
	if err != nil {
		return nil, err
	}

	document := Assemble(sourceName, patterns, limitKB, result)

	if args.Output != "" {
		if dir := filepath.Dir(args.Output); dir != "." {
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return nil, fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		if err := os.WriteFile(args.Output, []byte(document), 0644); err != nil {
			return nil, fmt.Errorf("failed to write output file: %w", err)
		}
	}

	logger.Info("Describe run complete",
		zap.String("source", sourceName),
		zap.String("output", args.Output),
		zap.Int("includedDirs", result.Counts.IncludedDirs),
		zap.Int("includedFiles", result.Counts.IncludedFiles),
		zap.Int("excludedDirs", result.Counts.ExcludedDirs),
		zap.Int("excludedFiles", result.Counts.ExcludedFiles),
		zap.Duration("elapsed", time.Since(startTime)))

	return &Result{
		Document:   document,
		Counts:     result.Counts,
		SourceName: sourceName,
		OutputPath: args.Output,
	}, nil
}
