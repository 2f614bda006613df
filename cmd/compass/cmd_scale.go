package main

import (
	"github.com/spf13/cobra"

	"github.com/ahrav/go-compass/internal/domain"
)

type scaleOutput struct {
	Scale      domain.AnswerScale  `json:"scale"`
	Candidates int                 `json:"candidates"`
	Parties    []string            `json:"parties"`
	Cities     []string            `json:"cities"`
	Questions  []domain.QuestionID `json:"questions"`
}

func newScaleCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "scale",
		Short: "Show the answer scale and catalogs derived from the corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := loadEngine(cmd, root)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), scaleOutput{
				Scale:      engine.Scale(),
				Candidates: len(engine.Candidates()),
				Parties:    engine.Parties(),
				Cities:     engine.Cities(),
				Questions:  engine.QuestionIDs(),
			})
		},
	}
}
