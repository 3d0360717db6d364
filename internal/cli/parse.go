package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/kaiwen/apkpeek/internal/aapt"
	"github.com/kaiwen/apkpeek/internal/badging"
	"github.com/kaiwen/apkpeek/internal/models"
	"github.com/spf13/cobra"
)

// NewParseCmd creates the parse command
func NewParseCmd() *cobra.Command {
	var (
		sdkTablePath string
		jsonOutput   bool
		showRaw      bool
		outputPath   string
	)

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a saved aapt2 dump badging report",
		Long: `Parses badging text that was captured earlier, from a file or from
stdin, without invoking aapt2. Useful for reprocessing saved dumps.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error

			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
				if err != nil {
					return &models.PeekError{
						Type: models.ErrFileOp,
						Path: args[0],
						Err:  fmt.Errorf("cannot read badging text: %w", err),
					}
				}
			} else {
				data, err = io.ReadAll(os.Stdin)
				if err != nil {
					return &models.PeekError{
						Type: models.ErrFileOp,
						Err:  fmt.Errorf("cannot read stdin: %w", err),
					}
				}
			}

			b := badging.Parse(aapt.Decode(data))

			out, err := renderBadging(b, nil, renderOptions{
				JSON:         jsonOutput,
				ShowRaw:      showRaw,
				SDKTablePath: sdkTablePath,
			})
			if err != nil {
				return err
			}

			return emit(out, outputPath)
		},
	}

	cmd.Flags().StringVar(&sdkTablePath, "sdk-table", "", "Path to an SDK version table JSON file (default: embedded)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the report as JSON")
	cmd.Flags().BoolVar(&showRaw, "raw", false, "Include the raw badging text in the report")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the report to a file instead of stdout")

	return cmd
}
