// =============================================================================
// Agreement Payload Builder - File Manager Utility
// =============================================================================
//
// File management for the conversion pipeline:
//   - Discovery of form submission files
//   - Archival of processed files
//   - Error log generation
//
// ARCHIVAL STRATEGY:
//   - Input form files move to the input archive after successful processing
//   - Output payload files are copied to the output archive
//   - Failed files remain where they are
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// FileManager handles file operations for the pipeline.
type FileManager struct {
	InputDir         string
	OutputDir        string
	InputArchiveDir  string
	OutputArchiveDir string
}

// NewFileManager creates a FileManager over the given directories.
func NewFileManager(inputDir, outputDir, inputArchiveDir, outputArchiveDir string) *FileManager {
	return &FileManager{
		InputDir:         inputDir,
		OutputDir:        outputDir,
		InputArchiveDir:  inputArchiveDir,
		OutputArchiveDir: outputArchiveDir,
	}
}

// EnsureDirectories creates all managed directories that don't exist yet.
func (fm *FileManager) EnsureDirectories() error {
	dirs := []string{fm.InputDir, fm.OutputDir, fm.InputArchiveDir, fm.OutputArchiveDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// DiscoverInputFiles lists form files in the input directory matching the
// glob pattern. An empty pattern defaults to "*.json".
func (fm *FileManager) DiscoverInputFiles(pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "*.json"
	}

	files, err := filepath.Glob(filepath.Join(fm.InputDir, pattern))
	if err != nil {
		return nil, fmt.Errorf("failed to scan input directory: %w", err)
	}

	// Glob can match directories; keep regular files only.
	out := files[:0]
	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil || info.IsDir() {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

// ArchiveInput moves a processed form file into the input archive.
func (fm *FileManager) ArchiveInput(path string) error {
	archivePath := filepath.Join(fm.InputArchiveDir, filepath.Base(path))
	if err := os.Rename(path, archivePath); err != nil {
		return fmt.Errorf("failed to archive input file: %w", err)
	}
	return nil
}

// ArchiveOutput copies a generated payload file into the output archive.
func (fm *FileManager) ArchiveOutput(path string) error {
	archivePath := filepath.Join(fm.OutputArchiveDir, filepath.Base(path))

	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open output file for archival: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("failed to create output archive: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write output archive: %w", err)
	}
	return nil
}

// WriteErrorLog writes batch error lines to a uniquely named log file in
// the output directory and returns its path.
func (fm *FileManager) WriteErrorLog(lines []string) (string, error) {
	name := fmt.Sprintf("errors_%s_%s.log",
		time.Now().Format("20060102_150405"), uuid.New().String()[:8])
	logPath := filepath.Join(fm.OutputDir, name)

	f, err := os.Create(logPath)
	if err != nil {
		return "", fmt.Errorf("failed to create error log: %w", err)
	}
	defer f.Close()

	for _, line := range lines {
		if _, err := fmt.Fprintln(f, line); err != nil {
			return "", fmt.Errorf("failed to write error log: %w", err)
		}
	}
	return logPath, nil
}
