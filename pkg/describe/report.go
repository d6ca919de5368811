// File: pkg/describe/report.go
package describe

import (
	"fmt"
	"strings"
)

const (
	sectionRule = "================================================================================"
	headingRule = "--------------------------------------------------------------------------------"
)

// Assemble composes the final document from the walk result. It is pure
// string formatting: no traversal logic, no filesystem access. Identical
// inputs always produce an identical document.
func Assemble(sourceName string, patterns []string, limitKB int, result *WalkResult) string {
	var b strings.Builder

	b.WriteString("Repository structure and content from file: " + sourceName + "\n")
	if len(patterns) > 0 {
		b.WriteString("Applied exclusion patterns: " + strings.Join(patterns, ", ") + "\n")
	}
	if limitKB > 0 {
		fmt.Fprintf(&b, "Applied max file size limit: %d KB\n", limitKB)
	}
	b.WriteString(sectionRule + "\n\n")

	b.WriteString("DIRECTORY STRUCTURE:\n")
	b.WriteString(headingRule + "\n")
	for _, line := range result.StructureLines {
		b.WriteString(line + "\n")
	}
	fmt.Fprintf(&b, "\n(Included directories: %d, Included files: %d, Excluded dirs: %d, Excluded files: %d)\n",
		result.Counts.IncludedDirs,
		result.Counts.IncludedFiles,
		result.Counts.ExcludedDirs,
		result.Counts.ExcludedFiles)

	b.WriteString("\n" + sectionRule + "\n\n")
	b.WriteString("FILE CONTENTS:\n")
	b.WriteString(headingRule + "\n\n")

	for _, file := range result.Files {
		b.WriteString("--- BEGIN FILE: " + file.RelPath + " ---\n")
		b.WriteString(renderBody(file, limitKB))
		b.WriteString("\n--- END FILE: " + file.RelPath + " ---\n\n")
	}

	return b.String()
}

// renderBody renders the classification-appropriate body of one content block.
func renderBody(file FileEntry, limitKB int) string {
	switch file.Class {
	case ClassSizeSkipped:
		return fmt.Sprintf("[File content skipped - size (%.1f KB) exceeds limit (%d KB)]\n",
			float64(file.SizeBytes)/1024.0, limitKB)
	case ClassBinary:
		return "[Binary file - content skipped]\n"
	case ClassEncodingWarning:
		return "[WARNING: Could not read as UTF-8, used Latin-1 fallback]\n" + file.Content
	case ClassReadError:
		return fmt.Sprintf("[Error reading file: %s]\n", file.Note)
	default:
		return file.Content
	}
}
