// Package fileutil defines the permissions used for files hubdoc writes.
package fileutil

import "os"

const (
	// DocumentMode is the mode of generated OpenAPI documents. Documents are
	// published artifacts, so they are readable by everyone.
	DocumentMode os.FileMode = 0o644

	// DirMode is the mode of directories created to hold output.
	DirMode os.FileMode = 0o755
)
