// compass ranks parties and candidates against a voter's opinions.
//
// Usage:
//
//	compass scale      --corpus=<file>
//	compass parties    --corpus=<file> -o q1=1 -o q2=-1 [--city=<name>]
//	compass candidates --corpus=<file> -o q1=1 [--city=<name>] [group]
//	compass question   --corpus=<file> [--city=<name>] <question-id>
//	compass questions  --corpus=<file> -o q1=1 [--city=<name>] <group>
//	compass batch      --corpus=<file> --profiles=<file> [--concurrency=N] [--metrics]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ahrav/go-compass/internal/application"
	"github.com/ahrav/go-compass/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootFlags struct {
	configPath string
	corpusPath string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "compass",
		Short: "Voter and candidate match scoring",
		Long: "Compass compares a voter's weighted opinions with the recorded answers\n" +
			"of election candidates and ranks parties by aggregate match score.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(flags.logLevel)
			if err != nil {
				return err
			}
			logging.Init(level, flags.logFormat, cmd.ErrOrStderr())
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Engine config file (YAML); defaults apply when empty")
	pf.StringVar(&flags.corpusPath, "corpus", "", "Answer corpus file (YAML or JSON, required)")
	pf.StringVar(&flags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "text", "Log format: text or json")
	_ = root.MarkPersistentFlagRequired("corpus")

	root.AddCommand(
		newScaleCmd(flags),
		newPartiesCmd(flags),
		newCandidatesCmd(flags),
		newQuestionCmd(flags),
		newQuestionsCmd(flags),
		newBatchCmd(flags),
	)
	return root
}

// loadEngine reads the config and corpus named by the root flags and builds
// an engine from them.
func loadEngine(cmd *cobra.Command, flags *rootFlags) (*application.Engine, error) {
	cfg := application.DefaultEngineConfig()
	if flags.configPath != "" {
		c, err := application.LoadConfigFromFile(flags.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = c
	}

	corpus, err := application.NewCorpusLoader().LoadFromFile(cmd.Context(), flags.corpusPath)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	engine, err := application.NewEngine(corpus, cfg)
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}
	return engine, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
