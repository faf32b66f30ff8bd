// =============================================================================
// Agreement Payload Builder - Process Command
// =============================================================================
//
// The 'process' command converts form submission files to payload files.
//
// COMMAND USAGE:
//   payloadgen process [flags]
//
// FLAGS:
//   --dry-run  : Parse, validate, and assemble without writing output
//   --single   : Process only one file (specify with --file)
//   --file     : Path to a specific form file (used with --single)
//
// Files are processed concurrently; an error in one file never affects the
// others. Successfully processed forms move to the input archive and their
// payloads are copied to the output archive.
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/form-to-payload-conversion/internal/builder"
	"github.com/ginjaninja78/form-to-payload-conversion/internal/catalog"
	"github.com/ginjaninja78/form-to-payload-conversion/internal/config"
	"github.com/ginjaninja78/form-to-payload-conversion/internal/payloadwriter"
	"github.com/ginjaninja78/form-to-payload-conversion/pkg/utils"
)

var (
	dryRun     bool
	singleFile bool
	filePath   string
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Convert form submission files to webhook payload files",
	Long: `The process command scans the input directory for form submission JSON
files, validates each against the engine preconditions, assembles the flat
submission payload, and writes it to the output directory.

On success the form file moves to the input archive and the payload is
copied to the output archive. On error the form stays put and processing
continues for the remaining files.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess()
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Assemble payloads without writing output files")
	processCmd.Flags().BoolVar(&singleFile, "single", false,
		"Process only a single file (use with --file)")
	processCmd.Flags().StringVar(&filePath, "file", "",
		"Path to a specific form file (used with --single)")
}

// runProcess orchestrates the batch conversion.
func runProcess() error {
	startTime := time.Now()

	mainConfig, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyLogLevel(mainConfig.LogLevel)

	cat, err := catalog.Load(mainConfig.CatalogFile)
	if err != nil {
		return fmt.Errorf("failed to load marketing catalog: %w", err)
	}
	log.Debugf("Marketing catalog loaded with %d item(s)", cat.Len())

	inputFiles, err := discoverForms(mainConfig)
	if err != nil {
		return err
	}
	if len(inputFiles) == 0 {
		log.Info("No form files found in the input directory.")
		return nil
	}
	log.Infof("Found %d form file(s) to process", len(inputFiles))

	writer := payloadwriter.NewWriter(mainConfig.OutputDir, mainConfig.OutputNameFormat)

	// Fan out one goroutine per file, bounded by MaxConcurrency.
	var wg sync.WaitGroup
	results := make(chan builder.Result, len(inputFiles))
	limiter := make(chan struct{}, mainConfig.MaxConcurrency)

	for _, file := range inputFiles {
		wg.Add(1)
		go func(formPath string) {
			defer wg.Done()
			limiter <- struct{}{}
			defer func() { <-limiter }()

			b := builder.New(formPath, mainConfig, cat, writer, log)
			b.DryRun = dryRun
			results <- b.Run()
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var successCount, errorCount int
	var errorLines []string

	for result := range results {
		if result.Success {
			successCount++
			fmt.Printf("  ✓ %s -> %s\n", filepath.Base(result.FilePath), result.OutputFile)
		} else {
			errorCount++
			line := fmt.Sprintf("%s: %v", filepath.Base(result.FilePath), result.Error)
			errorLines = append(errorLines, line)
			fmt.Printf("  ✗ %s\n", line)
			if !mainConfig.ContinueOnError {
				break
			}
		}
	}

	elapsed := time.Since(startTime)
	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Total files:     %d\n", len(inputFiles))
	fmt.Printf("Successful:      %d\n", successCount)
	fmt.Printf("Errors:          %d\n", errorCount)
	fmt.Printf("Time elapsed:    %s\n", elapsed)

	if errorCount > 0 && !dryRun {
		fm := utils.NewFileManager(mainConfig.InputDir, mainConfig.OutputDir,
			mainConfig.InputArchiveDir, mainConfig.OutputArchiveDir)
		if logPath, err := fm.WriteErrorLog(errorLines); err == nil {
			fmt.Printf("\nErrors logged to %s\n", logPath)
		} else {
			log.Warnf("Failed to write error log: %v", err)
		}
	}

	return nil
}

// discoverForms resolves the batch file list from the flags and config.
func discoverForms(mainConfig *config.MainConfig) ([]string, error) {
	if singleFile {
		if filePath == "" {
			return nil, fmt.Errorf("--single requires --file")
		}
		return []string{filePath}, nil
	}

	fm := utils.NewFileManager(mainConfig.InputDir, mainConfig.OutputDir,
		mainConfig.InputArchiveDir, mainConfig.OutputArchiveDir)
	files, err := fm.DiscoverInputFiles("*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to discover form files: %w", err)
	}
	return files, nil
}
