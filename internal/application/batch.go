package application

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/ahrav/go-compass/internal/domain"
	"github.com/ahrav/go-compass/internal/logging"
	"github.com/ahrav/go-compass/internal/ports"
)

// Profile is one named opinion set to rank groups against.
type Profile struct {
	Name     string          `yaml:"name" json:"name" validate:"required"`
	City     string          `yaml:"city,omitempty" json:"city,omitempty"`
	Opinions domain.Opinions `yaml:"opinions" json:"opinions" validate:"dive,keys,questionid,endkeys"`
}

// ProfileResult holds the ranking produced for one profile.
type ProfileResult struct {
	Name    string               `json:"name"`
	City    string               `json:"city,omitempty"`
	Groups  []domain.GroupResult `json:"groups"`
	Elapsed time.Duration        `json:"elapsed_ns"`
}

// BatchRanker ranks groups for many opinion profiles concurrently against
// one engine. Results are returned in profile order.
type BatchRanker struct {
	engine   *Engine
	observer ports.ScoringObserver
	limit    int
	logger   *slog.Logger
}

// NewBatchRanker creates a BatchRanker. A nil observer disables
// observation; a non-positive limit uses twice the number of CPUs.
func NewBatchRanker(engine *Engine, observer ports.ScoringObserver, limit int) (*BatchRanker, error) {
	if engine == nil {
		return nil, fmt.Errorf("batch ranker: engine cannot be nil")
	}
	if observer == nil {
		observer = noopObserver{}
	}
	if limit <= 0 {
		limit = runtime.NumCPU() * 2
	}
	return &BatchRanker{
		engine:   engine,
		observer: observer,
		limit:    limit,
		logger:   logging.New("batch"),
	}, nil
}

// Rank validates every profile and then ranks them concurrently.
// Rank stops at the first failure or when ctx is cancelled and returns the
// corresponding error without partial results. A profile skipped because
// of cancellation is still reported to the observer, with the context error.
func (br *BatchRanker) Rank(ctx context.Context, profiles []Profile) ([]ProfileResult, error) {
	if err := validateProfiles(profiles); err != nil {
		return nil, err
	}

	results := make([]ProfileResult, len(profiles))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(br.limit)
	for i, p := range profiles {
		g.Go(func() error {
			obsCtx := br.observer.Start(gCtx, p.Name, p.Opinions)
			if err := gCtx.Err(); err != nil {
				br.observer.Finish(obsCtx, p.Name, nil, 0, err)
				return err
			}

			start := time.Now()
			groups := br.engine.Rank(p.Opinions, RankOptions{City: p.City})
			elapsed := time.Since(start)
			br.observer.Finish(obsCtx, p.Name, groups, elapsed, nil)

			results[i] = ProfileResult{Name: p.Name, City: p.City, Groups: groups, Elapsed: elapsed}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		br.logger.Warn("batch ranking aborted", "profiles", len(profiles), "error", err)
		return nil, err
	}

	br.logger.Debug("batch ranked", "profiles", len(profiles))
	return results, nil
}

// validateProfiles checks struct tags and opinion weights of every profile
// and reports all failures together.
func validateProfiles(profiles []Profile) error {
	v, err := configValidator()
	if err != nil {
		return err
	}

	verr := domain.NewValidationError("profiles")
	for i := range profiles {
		if err := v.Struct(&profiles[i]); err != nil {
			verr.AddError(fmt.Sprintf("profile %d: %v", i, err))
		}
		if err := profiles[i].Opinions.Validate(); err != nil {
			verr.AddError(fmt.Sprintf("profile %d: %v", i, err))
		}
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// LoadProfiles decodes a YAML or JSON list of profiles and validates them.
func LoadProfiles(r io.Reader) ([]Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}

	var profiles []Profile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&profiles); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse profiles: %w", err)
	}
	if err := validateProfiles(profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

type noopObserver struct{}

func (noopObserver) Start(ctx context.Context, _ string, _ domain.Opinions) context.Context {
	return ctx
}

func (noopObserver) Finish(context.Context, string, []domain.GroupResult, time.Duration, error) {}
