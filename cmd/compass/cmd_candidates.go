package main

import (
	"github.com/spf13/cobra"

	"github.com/ahrav/go-compass/internal/application"
)

func newCandidatesCmd(root *rootFlags) *cobra.Command {
	var flags struct {
		opinions []string
		city     string
		limit    int
	}

	cmd := &cobra.Command{
		Use:   "candidates [group]",
		Short: "Rank individual candidates, optionally within one group",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opinions, err := parseOpinions(flags.opinions)
			if err != nil {
				return err
			}
			engine, err := loadEngine(cmd, root)
			if err != nil {
				return err
			}

			var group string
			if len(args) == 1 {
				group = args[0]
			}
			matches, err := engine.RankCandidates(group, opinions, application.RankOptions{City: flags.city})
			if err != nil {
				return err
			}
			if flags.limit > 0 && len(matches) > flags.limit {
				matches = matches[:flags.limit]
			}
			return writeJSON(cmd.OutOrStdout(), matches)
		},
	}

	f := cmd.Flags()
	f.StringArrayVarP(&flags.opinions, "opinion", "o", nil, "Opinion as question=weight (repeatable)")
	f.StringVar(&flags.city, "city", "", "Only consider candidates running in this city")
	f.IntVar(&flags.limit, "limit", 0, "Show at most this many candidates (0 shows all)")
	return cmd
}
