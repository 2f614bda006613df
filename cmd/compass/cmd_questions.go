package main

import (
	"github.com/spf13/cobra"

	"github.com/ahrav/go-compass/internal/application"
)

func newQuestionsCmd(root *rootFlags) *cobra.Command {
	var flags struct {
		opinions []string
		city     string
	}

	cmd := &cobra.Command{
		Use:   "questions <group>",
		Short: "Rank questions by how strongly one group agrees with them",
		Long: "Score every question for the members of one group as if the voter\n" +
			"agreed with it. Questions with an opinion are listed first.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opinions, err := parseOpinions(flags.opinions)
			if err != nil {
				return err
			}
			engine, err := loadEngine(cmd, root)
			if err != nil {
				return err
			}

			matches, err := engine.RankQuestions(args[0], opinions, application.RankOptions{City: flags.city})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), matches)
		},
	}

	f := cmd.Flags()
	f.StringArrayVarP(&flags.opinions, "opinion", "o", nil, "Opinion as question=weight (repeatable)")
	f.StringVar(&flags.city, "city", "", "Only consider candidates running in this city")
	return cmd
}
