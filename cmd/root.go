package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "repotext",
	Short: "repotext turns a repository snapshot into a single text document",
	Long: `repotext converts a repository snapshot (a .zip archive or an extracted
directory) into one filtered, human/LLM-readable text file: a directory
tree listing followed by the concatenated file contents.`,
	SilenceUsage: true,
}

// rootLogger is the logger handed in by main and shared by all commands.
var rootLogger *zap.Logger

// Execute wires the provided logger into the command tree and runs it.
func Execute(logger *zap.Logger) error {
	rootLogger = logger
	return RootCmd.Execute()
}
