package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tensorplex-labs/roc/internal/config"
	"github.com/tensorplex-labs/roc/internal/utils/logger"
)

// --- Global Command Variables ---
var (
	debugFlag bool
	traceFlag bool
	infoFlag  bool

	appConfig *config.AppConfig

	rootCmd = &cobra.Command{
		Use:   "roc",
		Short: "Compute ROC and precision-recall statistics for binary classifiers",
		Long: `roc ranks classifier output by score and reports ROC and precision-recall
curves, their areas, the achievable ROC curve and the Mann-Whitney U statistic.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.Init(logger.Options{
				Debug: debugFlag,
				Trace: traceFlag,
				Info:  infoFlag,
			})

			cfg, err := config.LoadConfig(cmd.Context())
			if err != nil {
				log.Error().Err(err).Msg("failed to load environment configuration")
				return err
			}
			appConfig = cfg
			return nil
		},
	}

	evalCmd = &cobra.Command{
		Use:   "eval",
		Short: "Evaluate scores and labels read from delimited files",
		Args:  cobra.NoArgs,
		RunE:  runEvalCommand, // Defined in cmd_eval.go
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve curve evaluation over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServeCommand, // Defined in cmd_serve.go
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "enable trace logging")
	rootCmd.PersistentFlags().BoolVar(&infoFlag, "info", false, "enable info logging")

	flags := evalCmd.Flags()
	flags.StringVar(&evalFlags.scoresPath, "scores", "", "file holding scores and, unless --labels is set, labels")
	flags.StringVar(&evalFlags.labelsPath, "labels", "", "separate file holding labels, joined to --scores by key columns")
	flags.IntSliceVar(&evalFlags.scoreKeyCols, "score-key-cols", nil, "key columns of the scores file used for the join")
	flags.IntSliceVar(&evalFlags.labelKeyCols, "label-key-cols", nil, "key columns of the labels file used for the join")
	flags.BoolVar(&evalFlags.ranked, "ranked", false, "rows are already ranked, most likely positive first; scores are ignored")
	flags.IntVar(&evalFlags.scoreCol, "score-col", 0, "zero-based score column")
	flags.IntVar(&evalFlags.labelCol, "label-col", 1, "zero-based label column, relative to the labels file when --labels is set")
	flags.StringVar(&evalFlags.positive, "positive", "", "label of the positive class (default from ROC_POSITIVE_LABEL)")
	flags.StringVar(&evalFlags.format, "format", "", "report format: yaml, json or text (default from ROC_REPORT_FORMAT)")
	flags.BoolVar(&evalFlags.points, "points", false, "include ROC, PR and hull points in the report")
	flags.StringVar(&evalFlags.remote, "remote", "", "evaluate on a remote roc server at this base URL")
	flags.StringVar(&evalFlags.delimiter, "delimiter", "", `field delimiter, "\t" for tab (default from ROC_DELIMITER)`)
	flags.BoolVar(&evalFlags.header, "header", false, "skip a header row")
	_ = evalCmd.MarkFlagRequired("scores")

	serveCmd.Flags().StringVar(&serveFlags.host, "host", "", "listen host (default from SERVER_HOST)")
	serveCmd.Flags().IntVar(&serveFlags.port, "port", 0, "listen port (default from SERVER_PORT)")

	rootCmd.AddCommand(evalCmd, serveCmd)
}
