package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan-anomalies",
		Short: "Run the batch anomaly scan once and print the report as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Anomaly.BatchTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.Anomaly.BatchTimeout)
				defer cancel()
			}
			a, err := newApp(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.close(context.WithoutCancel(ctx))

			report, err := a.anomalies.BatchScan(ctx)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
}
