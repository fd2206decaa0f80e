package gen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"uml-generator/internal/resolve"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile generates p and writes it to path, creating the directory if it
// doesn't exist. The file is only written once generation succeeded. When
// go/format rejects the output, the unformatted source is left next to path
// for debugging.
func WriteFile(p *resolve.Plan, path string, config Config) error {
	var buf bytes.Buffer

	err := resolve.Emit(p, NewWriter(config), config.Header, &buf)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			_ = writeDebugUnformatted(path, fe.Source)
		}

		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output. This is best-effort.
func writeDebugUnformatted(path string, content []byte) error {
	if path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return err
	}

	// Keep it a .go file so editors can syntax highlight, but avoid colliding
	// with real output.
	debugPath := strings.TrimSuffix(path, ".go") + ".unformatted.go"

	return os.WriteFile(debugPath, content, filePerm)
}
