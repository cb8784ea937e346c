package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/slidegen/config"
	"github.com/tsawler/slidegen/logging"
)

// app holds the state shared by every command of one invocation.
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger

	gen generateFlags
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "slidegen",
		Short: "Generate the indexing decisions slide",
		Long: `slidegen writes a one-slide PowerPoint presentation summarising database
indexing decisions, and optionally PNG, thumbnail and HTML previews of it.

Run without arguments to write indexes_slide.pptx in the current directory.
Settings are read from .slidegen.yml when present; flags override them.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE:          a.runGenerate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: "+config.DefaultFile+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	a.addGenerateFlags(root)

	root.AddCommand(
		a.newGenerateCmd(),
		a.newInspectCmd(),
		a.newCheckCmd(),
		newVersionCmd(),
	)
	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Log.Level, a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}
