// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/pdf-extract/internal/convert"
	"github.com/pdiddy/pdf-extract/internal/extract"
	"github.com/pdiddy/pdf-extract/internal/history"
	"github.com/pdiddy/pdf-extract/internal/logging"
	"github.com/pdiddy/pdf-extract/internal/report"
	"github.com/pdiddy/pdf-extract/pkg/types"
)

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(viper.GetViper(), executableDir())
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	log, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx := cmd.Context()
	run := history.NewRun(cfg.Request, string(cfg.Extraction.Backend))

	ex, err := extract.New(ctx, cfg.Extraction)
	if err != nil {
		recordRun(ctx, cfg.History, abortedRun(run, err), log)
		return err
	}

	summary, err := convert.NewRunner(ex, stdout, log).Run(ctx, cfg.Request)
	if err != nil {
		recordRun(ctx, cfg.History, abortedRun(run, err), log)
		return err
	}

	if cfg.SummaryFile != "" {
		if err := report.WriteSummaryFile(cfg.SummaryFile, summary); err != nil {
			log.Warn("summary file not written", zap.String("path", cfg.SummaryFile), zap.Error(err))
		}
	}

	run.Complete(summary)
	recordRun(ctx, cfg.History, run, log)

	return report.WriteResult(stdout, summary)
}

func abortedRun(run history.Run, err error) history.Run {
	run.Abort(err)
	return run
}

// recordRun stores run when history is enabled. History problems are logged
// and never change the outcome of the conversion.
func recordRun(ctx context.Context, cfg types.HistoryConfig, run history.Run, log *zap.Logger) {
	if !cfg.Enabled {
		return
	}
	store, err := history.Open(cfg.Path)
	if err != nil {
		log.Warn("history unavailable", zap.String("path", cfg.Path), zap.Error(err))
		return
	}
	defer store.Close()

	if err := store.Record(ctx, run); err != nil {
		log.Warn("run not recorded", zap.String("run_id", run.ID), zap.Error(err))
		return
	}
	log.Info("run recorded", zap.String("run_id", run.ID), zap.String("path", cfg.Path))
}
