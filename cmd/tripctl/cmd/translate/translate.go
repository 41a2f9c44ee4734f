package translate

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"trip-planner/internal/app"
)

var (
	source string
	target string
	detect bool
)

func init() {
	Cmd.Flags().StringVarP(&source, "source", "s", "", "source language code, empty to auto-detect")
	Cmd.Flags().StringVarP(&target, "target", "t", "en", "target language code")
	Cmd.Flags().BoolVarP(&detect, "detect", "d", false, "only detect the language, do not translate")
}

// Cmd represents the translate command
var Cmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate text with Papago",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter := app.InitPapagoAdapter()

		if detect {
			detection, err := adapter.DetectLanguage(context.Background(), args[0])
			if err != nil {
				return err
			}
			if detection == nil {
				fmt.Println("translation service is not configured")
				return nil
			}
			fmt.Println(detection.LangCode)
			return nil
		}

		result, err := adapter.Translate(context.Background(), args[0], target, source)
		if err != nil {
			return err
		}
		if result == nil {
			fmt.Println("translation service is not configured")
			return nil
		}
		fmt.Println(result.TranslatedText)
		return nil
	},
}
