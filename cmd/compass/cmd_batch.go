package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/ahrav/go-compass/infrastructure/middleware"
	"github.com/ahrav/go-compass/internal/application"
	"github.com/ahrav/go-compass/internal/ports"
)

func newBatchCmd(root *rootFlags) *cobra.Command {
	var flags struct {
		profilesPath string
		concurrency  int
		metrics      bool
	}

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Rank groups for every profile in a profiles file",
		Long: "Rank groups concurrently for a list of named opinion profiles.\n" +
			"With --metrics the collected Prometheus metrics are written to\n" +
			"stderr in text exposition format once the batch completes.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(filepath.Clean(flags.profilesPath))
			if err != nil {
				return fmt.Errorf("open profiles: %w", err)
			}
			defer f.Close()

			profiles, err := application.LoadProfiles(f)
			if err != nil {
				return fmt.Errorf("load profiles: %w", err)
			}

			engine, err := loadEngine(cmd, root)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			observer := middleware.NewOTelScoringObserver(nil, middleware.NewPrometheusMetrics(reg))
			ranker, err := application.NewBatchRanker(engine, observer, flags.concurrency)
			if err != nil {
				return err
			}

			results, err := ranker.Rank(cmd.Context(), profiles)
			if err != nil {
				return err
			}
			if err := writeJSON(cmd.OutOrStdout(), results); err != nil {
				return err
			}

			if flags.metrics {
				return dumpMetrics(cmd.ErrOrStderr(), reg)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.profilesPath, "profiles", "", "Profiles file (YAML or JSON list, required)")
	f.IntVar(&flags.concurrency, "concurrency", 0, "Maximum profiles ranked at once (0 uses 2x CPUs)")
	f.BoolVar(&flags.metrics, "metrics", false, "Write collected metrics to stderr")
	_ = cmd.MarkFlagRequired("profiles")
	return cmd
}

// dumpMetrics writes every gathered metric family to w in text exposition
// format. Failures are *ports.MetricsError values naming the family.
func dumpMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return ports.NewMetricsError("*", "gather", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return ports.NewMetricsError(mf.GetName(), "write", err)
		}
	}
	return nil
}
