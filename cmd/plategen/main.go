package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/circleprints/plategen/version"
)

var rootCmd = &cobra.Command{
	Use:   "plategen",
	Short: "Parametric circular plate with concentric cylinder for 3D printing",
	Long: `plategen generates a 3D-printable circular base plate with a concentric
cylinder, an optional through-hole, and the plate diameter engraved into the
plate bottom. The part is exported as a binary STL mesh and a faceted-BREP
STEP file, named after the cylinder and plate diameters.`,
	Version: version.GetFullVersion(),
	Run:     runGenerate,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
