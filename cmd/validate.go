// =============================================================================
// Agreement Payload Builder - Validate Command
// =============================================================================
//
// The 'validate' command checks form submission files against the engine's
// preconditions without assembling or writing anything. Useful before a
// batch run and for capture-UI regression checks.
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/form-to-payload-conversion/internal/config"
	"github.com/ginjaninja78/form-to-payload-conversion/internal/formparser"
	"github.com/ginjaninja78/form-to-payload-conversion/internal/validation"
	"github.com/ginjaninja78/form-to-payload-conversion/pkg/utils"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check form files against engine preconditions without converting",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate()
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate() error {
	mainConfig, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyLogLevel(mainConfig.LogLevel)

	fm := utils.NewFileManager(mainConfig.InputDir, mainConfig.OutputDir,
		mainConfig.InputArchiveDir, mainConfig.OutputArchiveDir)
	files, err := fm.DiscoverInputFiles("*.json")
	if err != nil {
		return fmt.Errorf("failed to discover form files: %w", err)
	}
	if len(files) == 0 {
		log.Info("No form files found in the input directory.")
		return nil
	}

	v := validation.New()
	invalid := 0

	for _, file := range files {
		form, err := formparser.ParseFile(file)
		if err != nil {
			invalid++
			fmt.Printf("  ✗ %s: %v\n", filepath.Base(file), err)
			continue
		}

		result := v.ValidateForm(form)
		if result.IsValid {
			fmt.Printf("  ✓ %s\n", filepath.Base(file))
			continue
		}

		invalid++
		fmt.Printf("  ✗ %s:\n", filepath.Base(file))
		for _, ve := range result.Errors {
			fmt.Printf("      - %s\n", ve.Error())
		}
	}

	fmt.Printf("\nChecked %d file(s), %d invalid\n", len(files), invalid)
	if invalid > 0 {
		return fmt.Errorf("%d form file(s) failed validation", invalid)
	}
	return nil
}
