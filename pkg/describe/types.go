// File: pkg/describe/types.go
package describe

// Classification describes how an included file's content is represented
// in the final document.
type Classification int

const (
	// ClassNormal means the file decoded as UTF-8 and its content is emitted verbatim.
	ClassNormal Classification = iota
	// ClassSizeSkipped means the file exceeded the configured size limit.
	ClassSizeSkipped
	// ClassBinary means a null byte was found in the sampled prefix.
	ClassBinary
	// ClassEncodingWarning means UTF-8 decoding failed and the Latin-1 fallback was used.
	ClassEncodingWarning
	// ClassReadError means the file could not be read at all.
	ClassReadError
)

// String returns a short name for the classification, used in logs.
func (c Classification) String() string {
	switch c {
	case ClassNormal:
		return "normal"
	case ClassSizeSkipped:
		return "size-skipped"
	case ClassBinary:
		return "binary"
	case ClassEncodingWarning:
		return "encoding-warning"
	case ClassReadError:
		return "read-error"
	default:
		return "unknown"
	}
}

// FileEntry is one included file together with its classification and,
// for readable text files, its decoded content.
type FileEntry struct {
	RelPath   string         // Root-relative path, forward slashes on every platform.
	Class     Classification // How the content is represented.
	Content   string         // Decoded text; empty unless Class is normal or encoding-warning.
	Note      string         // Error description for read-error entries.
	SizeBytes int64          // Original size on disk.
}

// Counts holds the running traversal tallies. For each kind,
// included+excluded equals the total number of visited nodes.
type Counts struct {
	IncludedDirs  int
	IncludedFiles int
	ExcludedDirs  int
	ExcludedFiles int
}

// WalkResult is everything a single traversal produces: the ordered
// structural listing, the frozen counts, and the included files in
// listing order.
type WalkResult struct {
	StructureLines []string
	Counts         Counts
	Files          []FileEntry
}
