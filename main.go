// =============================================================================
// Agreement Payload Builder - Main Entry Point
// =============================================================================
//
// CLI entry point. Converts structured sole-agency agreement form
// submissions into flat, webhook-ready payload records.
//
// USAGE:
//   payloadgen process    - Convert all form files in the input directory
//   payloadgen validate   - Check form files without converting
//   payloadgen version    - Display the application version
//
// ARCHITECTURE:
//   cmd/       : CLI command definitions (Cobra)
//   internal/  : Core business logic (engine, catalog, validation, pipeline)
//   pkg/       : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/form-to-payload-conversion/cmd"
)

func main() {
	cmd.Execute()
}
