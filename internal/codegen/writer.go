package codegen

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/tools/imports"
)

// Format runs goimports over content. filename is only used for error
// messages and import resolution.
func Format(filename string, content string) ([]byte, error) {
	formatted, err := imports.Process(filename, []byte(content), nil)
	if err != nil {
		return nil, fmt.Errorf("processing (goimports) generated code for %s: %w\nOriginal content was:\n%s", filename, err, content)
	}
	return formatted, nil
}

// WriteFile formats content and writes it to filePath, replacing any existing file.
func WriteFile(filePath string, content string) error {
	slog.Debug("WriteFile: start", "path", filePath)

	slog.Debug("\tProcessing (goimports) the generated code")
	formatted, err := Format(filePath, content)
	if err != nil {
		slog.Debug("WriteFile: end (error)", "path", filePath, "error", err)
		return err
	}

	if err := os.WriteFile(filePath, formatted, 0644); err != nil {
		slog.Debug("WriteFile: end (error)", "path", filePath, "error", err)
		return fmt.Errorf("writing generated content to %s: %w", filePath, err)
	}

	slog.Debug("WriteFile: end", "path", filePath, "bytes", len(formatted))
	return nil
}
