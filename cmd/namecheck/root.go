package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/namecheck-ai/namecheck"
	"github.com/namecheck-ai/namecheck/internal/adapters/env"
	"github.com/namecheck-ai/namecheck/internal/adapters/logging"
	"github.com/namecheck-ai/namecheck/internal/core"
)

type rootFlags struct {
	verbose bool
	poster  string
	dev     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "namecheck",
		Short:         "NameCheck AI project site",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.LoadDotEnv()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.poster, "poster", "", "path of the poster PDF (default $NAMECHECK_POSTER or Report.pdf)")

	cmd.AddCommand(newServeCmd(flags), newExportCmd(flags))
	return cmd
}

// setup resolves the configuration (flags over environment) and builds the
// logger and the app.
func setup(cmd *cobra.Command, flags *rootFlags) (env.Config, *namecheck.App, *zap.Logger, error) {
	cfg, err := env.Load()
	if err != nil {
		return env.Config{}, nil, nil, err
	}
	if cmd.Flags().Changed("poster") {
		cfg.PosterPath = flags.poster
	}
	if flags.dev {
		cfg.Mode = core.ModeDev
	}

	logger, err := logging.New(cfg.Mode == core.ModeDev, flags.verbose)
	if err != nil {
		return env.Config{}, nil, nil, err
	}

	opts := []namecheck.Option{
		namecheck.WithLogger(logger),
		namecheck.WithPosterPath(cfg.PosterPath),
		namecheck.WithDev(cfg.Mode == core.ModeDev),
	}
	if cfg.PosterNotice {
		opts = append(opts, namecheck.WithPosterNotice())
	}

	app, err := namecheck.New(opts...)
	if err != nil {
		_ = logger.Sync()
		return env.Config{}, nil, nil, err
	}

	logger.Debug("configuration loaded",
		zap.String("mode", cfg.Mode.String()),
		zap.String("poster", cfg.PosterPath),
		zap.Bool("poster_notice", cfg.PosterNotice),
	)

	return cfg, app, logger, nil
}
