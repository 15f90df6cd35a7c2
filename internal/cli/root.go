package cli

import (
	"os"

	"github.com/gogotex/docstore/internal/config"
	"github.com/gogotex/docstore/pkg/logger"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the docstore command tree.
func NewRootCommand() *cobra.Command {
	var cfg *config.Config

	root := &cobra.Command{
		Use:           "docstore",
		Short:         "In-memory document store",
		Long:          "docstore loads documents into an in-memory store and searches them by title prefix, content, author and creation time.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.LoadConfig()
			if err != nil {
				return err
			}
			cfg = loaded
			logger.Init(cfg.Log.Level)
			logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())
			return nil
		},
	}

	root.AddCommand(newSearchCommand(func() *config.Config { return cfg }))
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	// stdout carries command output
	logger.SetOutput(os.Stderr)
	defer logger.Sync()
	if err := NewRootCommand().Execute(); err != nil {
		logger.Errorf("%v", err)
		logger.Sync()
		os.Exit(1)
	}
}
