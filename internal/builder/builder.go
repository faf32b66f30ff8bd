// =============================================================================
// Agreement Payload Builder - Per-File Pipeline
// =============================================================================
//
// Orchestrates the conversion pipeline for a single form submission file:
//
//   1. Parse the form JSON
//   2. Validate engine preconditions
//   3. Assemble the submission payload (pure engine call)
//   4. Write the payload JSON to the output directory
//   5. Archive the processed files
//
// Each file runs in its own goroutine; the builder touches no shared
// mutable state, so files process concurrently without coordination.
//
// =============================================================================

package builder

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ginjaninja78/form-to-payload-conversion/internal/config"
	"github.com/ginjaninja78/form-to-payload-conversion/internal/engine"
	"github.com/ginjaninja78/form-to-payload-conversion/internal/formparser"
	"github.com/ginjaninja78/form-to-payload-conversion/internal/types"
	"github.com/ginjaninja78/form-to-payload-conversion/internal/validation"
	"github.com/ginjaninja78/form-to-payload-conversion/pkg/utils"
)

// Result is the outcome of processing a single form file.
type Result struct {
	// FilePath is the input form file.
	FilePath string

	// OutputFile is the written payload file; empty on failure.
	OutputFile string

	// Success reports whether processing completed.
	Success bool

	// Error is set when processing failed.
	Error error

	// Stats carries processing statistics.
	Stats ProcessingStats
}

// ProcessingStats summarizes one file's run.
type ProcessingStats struct {
	ActiveVendors    int
	AnnexureItems    int
	MarketingItems   int
	ValidationErrors int
	ProcessingTime   time.Duration
}

// PayloadWriter writes an assembled payload, returning the path written.
type PayloadWriter interface {
	Write(payload *engine.SubmissionPayload) (string, error)
}

// Builder processes one form submission file.
type Builder struct {
	formPath  string
	mainCfg   *config.MainConfig
	catalog   engine.MarketingCatalog
	validator *validation.Validator
	writer    PayloadWriter
	files     *utils.FileManager
	log       *logrus.Logger

	// DryRun skips the write and archive steps.
	DryRun bool
}

// New creates a Builder for one form file.
func New(formPath string, mainCfg *config.MainConfig, cat engine.MarketingCatalog,
	writer PayloadWriter, log *logrus.Logger) *Builder {
	return &Builder{
		formPath:  formPath,
		mainCfg:   mainCfg,
		catalog:   cat,
		validator: validation.New(),
		writer:    writer,
		files:     utils.NewFileManager(mainCfg.InputDir, mainCfg.OutputDir, mainCfg.InputArchiveDir, mainCfg.OutputArchiveDir),
		log:       log,
	}
}

// Run executes the pipeline for the file.
func (b *Builder) Run() Result {
	startTime := time.Now()
	result := Result{FilePath: b.formPath}

	b.log.Infof("Processing form: %s", b.formPath)

	form, err := formparser.ParseFile(b.formPath)
	if err != nil {
		result.Error = err
		return result
	}

	validationResult := b.validator.ValidateForm(form)
	result.Stats.ValidationErrors = len(validationResult.Errors)
	if !validationResult.IsValid {
		for _, ve := range validationResult.Errors {
			b.log.Warnf("Validation error in %s: %s", b.formPath, ve.Error())
		}
		result.Error = fmt.Errorf("form failed validation with %d error(s)",
			len(validationResult.Errors))
		return result
	}

	payload := engine.Assemble(*form, b.catalog)
	result.Stats.ActiveVendors = payload.VendorCount
	result.Stats.AnnexureItems = countAnnexure(form)
	result.Stats.MarketingItems = len(form.SelectedMarketing)
	b.log.Debugf("Assembled payload for %s (%d vendor(s), structure %s)",
		payload.FileNameFolder, payload.VendorCount, payload.VendorStructure)

	if b.DryRun {
		result.Success = true
		result.Stats.ProcessingTime = time.Since(startTime)
		b.log.Infof("Dry run: skipped writing payload for %s", b.formPath)
		return result
	}

	outputPath, err := b.writer.Write(&payload)
	if err != nil {
		result.Error = err
		return result
	}
	result.OutputFile = outputPath
	b.log.Infof("Wrote payload to: %s", outputPath)

	if err := b.archive(outputPath); err != nil {
		// Archival failure is not a processing failure.
		b.log.Warnf("Failed to archive files for %s: %v", b.formPath, err)
	}

	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)
	return result
}

func (b *Builder) archive(outputPath string) error {
	if err := b.files.ArchiveInput(b.formPath); err != nil {
		return err
	}
	return b.files.ArchiveOutput(outputPath)
}

func countAnnexure(form *types.FormData) int {
	if !form.Property.HasAnnexure {
		return 0
	}
	return len(form.Property.AnnexureItems)
}
