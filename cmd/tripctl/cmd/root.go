package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"trip-planner/cmd/tripctl/cmd/geocode"
	"trip-planner/cmd/tripctl/cmd/ocr"
	"trip-planner/cmd/tripctl/cmd/serve"
	"trip-planner/cmd/tripctl/cmd/speech"
	"trip-planner/cmd/tripctl/cmd/translate"
	"trip-planner/cmd/tripctl/cmd/trend"
	"trip-planner/cmd/tripctl/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tripctl",
	Short: "NAVER Cloud integrations for travel planning",
	Long: `Command-line access to the NAVER Cloud integrations used by the
trip planner: geocoding and routing, Papago translation, Clova OCR,
Clova Speech recognition and DataLab search trends. The same adapters
back the HTTP API started with "tripctl serve".`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(geocode.Cmd)
	rootCmd.AddCommand(translate.Cmd)
	rootCmd.AddCommand(ocr.Cmd)
	rootCmd.AddCommand(speech.Cmd)
	rootCmd.AddCommand(trend.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
