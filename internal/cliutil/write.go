// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/hubdoc/internal/fileutil"
	"github.com/erraggy/hubdoc/internal/pathutil"
	"github.com/erraggy/hubdoc/oas"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteFile writes data to path, creating parent directories as needed.
// It refuses to write through a symlink.
func WriteFile(path string, data []byte) error {
	abs, err := pathutil.SanitizeOutputPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), fileutil.DirMode); err != nil {
		return err
	}
	return os.WriteFile(abs, data, fileutil.DocumentMode) //nolint:gosec // generated documents are meant to be readable
}

// WriteOutput writes data to path, or to w when path is empty or "-".
func WriteOutput(w io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := w.Write(data)
		return err
	}
	return WriteFile(path, data)
}

// FormatFor infers the document format from a file extension. Paths
// without a recognised extension use def.
func FormatFor(path string, def oas.Format) oas.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return oas.FormatYAML
	case ".json":
		return oas.FormatJSON
	default:
		return def
	}
}
