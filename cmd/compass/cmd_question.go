package main

import (
	"github.com/spf13/cobra"

	"github.com/ahrav/go-compass/internal/application"
	"github.com/ahrav/go-compass/internal/domain"
)

func newQuestionCmd(root *rootFlags) *cobra.Command {
	var city string

	cmd := &cobra.Command{
		Use:   "question <question-id>",
		Short: "Show how each group answered one question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := loadEngine(cmd, root)
			if err != nil {
				return err
			}
			dist := engine.AnswerDistribution(domain.QuestionID(args[0]), application.RankOptions{City: city})
			return writeJSON(cmd.OutOrStdout(), dist)
		},
	}

	cmd.Flags().StringVar(&city, "city", "", "Only consider candidates running in this city")
	return cmd
}
