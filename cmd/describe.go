// File: cmd/describe.go
package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"repotext/pkg/describe"
	"repotext/pkg/logging"
	"repotext/pkg/tokencount"
	"repotext/pkg/version"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// describeCmd generates the structure-and-content document for a snapshot.
var describeCmd = &cobra.Command{
	Use:   "describe <input>",
	Short: "Generate a text description of a repository snapshot",
	Long: `Generate a single text file containing the directory structure and the
file contents of a repository snapshot. The input is either a .zip archive
or an already-extracted directory. Files and directories can be excluded
with glob patterns matched against basenames and root-relative paths.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		output, err := flags.GetString("output")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		excludePatterns, err := flags.GetStringArray("exclude")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		maxFileSizeKB, err := flags.GetInt("max-file-size")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		configPath, err := flags.GetString("config")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		countTokens, err := flags.GetBool("tokens")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		tokenModel, err := flags.GetString("token-model")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		copyToClipboard, err := flags.GetBool("copy")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		verbose, err := flags.GetBool("verbose")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		logger := rootLogger
		if verbose {
			debugLogger, logErr := logging.New(true, "repotext", version.Get().Version)
			if logErr == nil {
				logger = debugLogger
			}
		}

		input := args[0]
		if output == "" {
			base := filepath.Base(input)
			base = strings.TrimSuffix(base, filepath.Ext(base))
			output = base + "_structure_and_content.txt"
		}

		result, err := describe.Run(describe.Arguments{
			Input:          input,
			Output:         output,
			ConfigPath:     configPath,
			ExcludePattern: excludePatterns,
			MaxFileSizeKB:  maxFileSizeKB,
		}, logger)
		if err != nil {
			return err
		}

		if countTokens {
			tokens, tokenErr := tokencount.Count(result.Document, tokenModel)
			if tokenErr != nil {
				logger.Warn("Failed to count tokens", zap.Error(tokenErr))
			} else {
				logger.Info("Counted document tokens",
					zap.Int("tokens", tokens),
					zap.String("model", tokenModel))
				fmt.Printf("Document tokens: %d\n", tokens)
			}
		}

		if copyToClipboard {
			if copyErr := clipboard.WriteAll(result.Document); copyErr != nil {
				logger.Warn("Failed to copy document to clipboard", zap.Error(copyErr))
			} else {
				logger.Info("Copied document to clipboard")
			}
		}

		fmt.Printf("Success! File '%s' has been created.\n", result.OutputPath)
		return nil
	},
}

func init() {
	describeCmd.Flags().StringP("output", "o", "", "Path for the output .txt file (default <input base>_structure_and_content.txt)")
	describeCmd.Flags().StringArrayP("exclude", "e", nil, "Glob pattern for files or directories to exclude; can be repeated")
	describeCmd.Flags().Int("max-file-size", 0, "Maximum size (in KB) of a file to include its content; 0 means no limit")
	describeCmd.Flags().String("config", "", "Path to a YAML config with default exclude patterns and size limit")
	describeCmd.Flags().Bool("tokens", false, "Count LLM tokens of the generated document")
	describeCmd.Flags().String("token-model", tokencount.DefaultModel, "Model whose tiktoken encoding is used for --tokens")
	describeCmd.Flags().Bool("copy", false, "Copy the generated document to the clipboard")
	describeCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output for detailed processing information")

	RootCmd.AddCommand(describeCmd)
}
