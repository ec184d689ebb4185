package main

import (
	"strings"

	"github.com/bloops-games/undercover/internal/logging"
	"github.com/bloops-games/undercover/internal/undercover"
	"github.com/bloops-games/undercover/internal/undercover/resource"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// newCmd exposes the config as flags. The environment has already been read
// into config, so its values are the flag defaults.
func newCmd(config *undercover.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "undercover-cli",
		Short:   "Undercover, the party game of secret words, played on one shared terminal.",
		Args:    cobra.ExactArgs(0),
		Version: resource.ProjectVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewLogger(config.Debug)
			defer logger.Sync() // nolint

			ctx := logging.WithLogger(cmd.Context(), logger)
			return realMain(ctx, config)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.BoolVarP(&config.Debug, "debug", "d", config.Debug, "log engine intents to stderr (env: UNDERCOVER_DEBUG)")
	fs.IntVar(&config.CacheSize, "cache-size", config.CacheSize, "saved rosters kept in memory (env: UNDERCOVER_CACHE_SIZE)")
	fs.StringVarP(&config.WordsFile, "words", "w", config.WordsFile, "YAML file with custom categories (env: UNDERCOVER_WORDS_FILE)")
	fs.DurationVarP(&config.DiscussionTime, "discussion-time", "t", config.DiscussionTime, "discussion length, 0 disables the timer (env: UNDERCOVER_DISCUSSION_TIME)")
	fs.StringVar(&config.Db.FilePath, "db", config.Db.FilePath, "path to the database file (env: UNDERCOVER_DB_FILE_PATH)")
	fs.BoolVar(&config.Restore, "restore", config.Restore, "resume the unfinished game of the previous run (env: UNDERCOVER_RESTORE)")

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate(resource.ProjectName + " v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
