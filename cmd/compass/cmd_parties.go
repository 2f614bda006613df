package main

import (
	"github.com/spf13/cobra"

	"github.com/ahrav/go-compass/internal/application"
)

func newPartiesCmd(root *rootFlags) *cobra.Command {
	var flags struct {
		opinions []string
		city     string
	}

	cmd := &cobra.Command{
		Use:   "parties",
		Short: "Rank groups by aggregate match score",
		Long: "Rank every group of the configured grouping (party by default)\n" +
			"against the given opinions. Unscored groups are listed last.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opinions, err := parseOpinions(flags.opinions)
			if err != nil {
				return err
			}
			engine, err := loadEngine(cmd, root)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), engine.Rank(opinions, application.RankOptions{City: flags.city}))
		},
	}

	f := cmd.Flags()
	f.StringArrayVarP(&flags.opinions, "opinion", "o", nil, "Opinion as question=weight (repeatable)")
	f.StringVar(&flags.city, "city", "", "Only consider candidates running in this city")
	return cmd
}
