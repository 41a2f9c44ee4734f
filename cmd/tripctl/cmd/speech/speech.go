package speech

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"trip-planner/internal/app"
)

var language string

func init() {
	Cmd.Flags().StringVarP(&language, "language", "l", "ko", "audio language (ko, en, ja, zh)")
}

// Cmd represents the speech command
var Cmd = &cobra.Command{
	Use:   "speech [audio file]",
	Short: "Transcribe an audio file with Clova Speech",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read audio: %w", err)
		}

		adapter := app.InitSpeechAdapter()
		result, err := adapter.SpeechToText(context.Background(), data, language)
		if err != nil {
			return err
		}
		if result == nil {
			fmt.Println("speech service is not configured")
			return nil
		}

		fmt.Println(result.Text)
		return nil
	},
}
