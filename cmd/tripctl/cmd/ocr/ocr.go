package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"trip-planner/internal/app"
)

var showConfidence bool

func init() {
	Cmd.Flags().BoolVarP(&showConfidence, "confidence", "c", false, "print the average confidence")
}

// Cmd represents the ocr command
var Cmd = &cobra.Command{
	Use:   "ocr [image file]",
	Short: "Extract text from an image with Clova OCR",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}

		adapter := app.InitOCRAdapter()
		result, err := adapter.ExtractText(context.Background(), data, filepath.Base(args[0]))
		if err != nil {
			return err
		}
		if result == nil {
			fmt.Println("OCR service is not configured")
			return nil
		}

		fmt.Println(result.Text)
		if showConfidence {
			fmt.Printf("language: %s\n", result.Language)
			for _, field := range result.Fields {
				fmt.Printf("%.3f  %s\n", field.Confidence, field.Text)
			}
		}
		return nil
	},
}
