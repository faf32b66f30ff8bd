// =============================================================================
// Agreement Payload Builder - Payload Writer
// =============================================================================
//
// Serializes a SubmissionPayload to the webhook-ready JSON body and writes
// it to the output directory. The engine stays I/O-free; delivery of the
// written file (database insert, webhook POST) belongs to external
// collaborators.
//
// FILE NAMING:
//   The output file name follows the configured format. Placeholders:
//     {uuid}      - a random UUID
//     {timestamp} - current time, YYYYMMDD_HHMMSS
//     {office}    - office code from the payload
//     {folder}    - the payload's filing-folder name, sanitized
//
// =============================================================================

package payloadwriter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/form-to-payload-conversion/internal/engine"
)

// Marshal renders the payload as indented JSON. Struct-field order makes
// the output deterministic for a given payload.
func Marshal(payload *engine.SubmissionPayload) ([]byte, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return append(data, '\n'), nil
}

// Writer writes payload files into an output directory.
type Writer struct {
	// OutputDir is the directory payload files are written to.
	OutputDir string

	// NameFormat is the output file-name format with placeholders.
	NameFormat string
}

// NewWriter creates a Writer. An empty format defaults to "{uuid}.json".
func NewWriter(outputDir, nameFormat string) *Writer {
	if strings.TrimSpace(nameFormat) == "" {
		nameFormat = "{uuid}.json"
	}
	return &Writer{OutputDir: outputDir, NameFormat: nameFormat}
}

// Write serializes the payload and writes it under a generated file name,
// returning the path written.
func (w *Writer) Write(payload *engine.SubmissionPayload) (string, error) {
	data, err := Marshal(payload)
	if err != nil {
		return "", err
	}

	outputPath := filepath.Join(w.OutputDir, w.FileName(payload))
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write payload file: %w", err)
	}
	return outputPath, nil
}

// FileName expands the name format for the payload. Names are given a
// .json extension when the format does not already carry one.
func (w *Writer) FileName(payload *engine.SubmissionPayload) string {
	name := w.NameFormat
	name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())
	name = strings.ReplaceAll(name, "{timestamp}", time.Now().Format("20060102_150405"))
	name = strings.ReplaceAll(name, "{office}", payload.OfficeCode)
	name = strings.ReplaceAll(name, "{folder}", sanitizeName(payload.FileNameFolder))

	if filepath.Ext(name) != ".json" {
		name += ".json"
	}
	return name
}

// sanitizeName makes a payload-derived value safe as a file-name component.
func sanitizeName(s string) string {
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "", "?", "",
		"\"", "", "<", "", ">", "", "|", "-", ",", "",
	)
	return strings.Join(strings.Fields(replacer.Replace(s)), " ")
}
