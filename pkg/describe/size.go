// File: pkg/describe/size.go
package describe

// WithinLimit reports whether a file of sizeBytes should have its content
// included under the given limit in kilobytes. A limit of zero or less
// means no limit. A file exactly at the limit is included.
func WithinLimit(sizeBytes int64, limitKB int) bool {
	if limitKB <= 0 {
		return true
	}
	return sizeBytes <= int64(limitKB)*1024
}
