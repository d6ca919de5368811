// File: pkg/describe/walker.go
package describe

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Walker traverses a directory tree once, applying the exclusion patterns
// at every directory and file, and accumulates the structural listing, the
// traversal counts, and the classified included files. The walk is strictly
// sequential; entries within a directory are visited in alphabetical order
// so the output is reproducible.
type Walker struct {
	root          string
	rootName      string // Display name for the root line of the listing.
	patterns      []string
	maxFileSizeKB int
	logger        *zap.Logger

	resolvedRoot string // Symlink-resolved root, used to detect escaping links.
}

// NewWalker constructs a Walker. rootName is the display name used for the
// root line; the root directory itself is never matched against the
// exclusion patterns. A nil logger is replaced with a no-op logger.
func NewWalker(root, rootName string, patterns []string, maxFileSizeKB int, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{
		root:          root,
		rootName:      rootName,
		patterns:      patterns,
		maxFileSizeKB: maxFileSizeKB,
		logger:        logger,
	}
}

// Walk runs the traversal and returns the frozen result. The only fatal
// condition is a root path that is missing or not a directory; every
// per-entry failure is contained in that entry's classification.
func (w *Walker) Walk() (*WalkResult, error) {
	info, err := os.Stat(w.root)
	if err != nil {
		return nil, fmt.Errorf("root path %q: %w", w.root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path %q is not a directory", w.root)
	}

	if resolved, err := filepath.EvalSymlinks(w.root); err == nil {
		w.resolvedRoot = resolved
	} else {
		w.resolvedRoot = w.root
	}

	result := &WalkResult{}
	result.StructureLines = append(result.StructureLines, w.rootName+"/")
	result.Counts.IncludedDirs++ // The root counts as an included directory.

	w.walkDir(w.root, "", 1, result)

	w.logger.Debug("Traversal complete",
		zap.Int("includedDirs", result.Counts.IncludedDirs),
		zap.Int("includedFiles", result.Counts.IncludedFiles),
		zap.Int("excludedDirs", result.Counts.ExcludedDirs),
		zap.Int("excludedFiles", result.Counts.ExcludedFiles))
	return result, nil
}

// walkDir visits one included directory. relDir is the root-relative path
// of the directory ("" for the root), depth the indentation level of its
// children.
func (w *Walker) walkDir(dir, relDir string, depth int, result *WalkResult) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.logger.Warn("Failed to read directory", zap.String("dir", dir), zap.Error(err))
		return
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	indent := strings.Repeat("  ", depth) + "|-- "
	for _, entry := range entries {
		name := entry.Name()
		relPath := name
		if relDir != "" {
			relPath = relDir + "/" + name
		}

		if entry.IsDir() {
			if pattern, excluded := Match(relPath, name, w.patterns); excluded {
				result.StructureLines = append(result.StructureLines, fmt.Sprintf("# %s/ directory excluded", name))
				result.Counts.ExcludedDirs++
				w.logger.Debug("Directory excluded",
					zap.String("path", relPath),
					zap.String("pattern", pattern))
				continue
			}
			result.StructureLines = append(result.StructureLines, indent+name+"/")
			result.Counts.IncludedDirs++
			w.walkDir(filepath.Join(dir, name), relPath, depth+1, result)
			continue
		}

		if pattern, excluded := Match(relPath, name, w.patterns); excluded {
			result.StructureLines = append(result.StructureLines, fmt.Sprintf("# %s excluded", name))
			result.Counts.ExcludedFiles++
			w.logger.Debug("File excluded",
				zap.String("path", relPath),
				zap.String("pattern", pattern))
			continue
		}

		result.StructureLines = append(result.StructureLines, indent+name)
		result.Counts.IncludedFiles++
		fileEntry := w.classifyFile(filepath.Join(dir, name), relPath, entry)
		result.Files = append(result.Files, fileEntry)
		w.logger.Debug("File classified",
			zap.String("path", relPath),
			zap.String("class", fileEntry.Class.String()),
			zap.Int64("sizeBytes", fileEntry.SizeBytes))
	}
}

// classifyFile produces the FileEntry for one included file: size check
// first, then content reading. Symbolic links pointing outside the root
// are not followed; they classify as read errors.
func (w *Walker) classifyFile(filePath, relPath string, entry fs.DirEntry) FileEntry {
	fileEntry := FileEntry{RelPath: relPath}

	if entry.Type()&fs.ModeSymlink != 0 {
		target, err := filepath.EvalSymlinks(filePath)
		if err != nil {
			fileEntry.Class = ClassReadError
			fileEntry.Note = err.Error()
			return fileEntry
		}
		if target != w.resolvedRoot && !strings.HasPrefix(target, w.resolvedRoot+string(filepath.Separator)) {
			fileEntry.Class = ClassReadError
			fileEntry.Note = fmt.Sprintf("symbolic link escapes root: %s", target)
			return fileEntry
		}
	}

	info, err := os.Stat(filePath)
	if err != nil {
		fileEntry.Class = ClassReadError
		fileEntry.Note = err.Error()
		return fileEntry
	}
	fileEntry.SizeBytes = info.Size()

	if !WithinLimit(fileEntry.SizeBytes, w.maxFileSizeKB) {
		fileEntry.Class = ClassSizeSkipped
		return fileEntry
	}

	fileEntry.Class, fileEntry.Content, fileEntry.Note = ReadContent(filePath)
	return fileEntry
}
