package application

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"

	"github.com/ahrav/go-compass/internal/domain"
	"github.com/ahrav/go-compass/internal/logging"
	"github.com/ahrav/go-compass/internal/ports"
)

var _ ports.CorpusLoader = (*CorpusLoader)(nil)

// corpusFile is the on-disk corpus schema. JSON files are accepted as well
// because JSON is a subset of YAML.
type corpusFile struct {
	Questions map[string]string `yaml:"questions" validate:"dive,keys,questionid,endkeys"`
	Records   []recordFile      `yaml:"records" validate:"required,min=1"`
}

type recordFile struct {
	Candidate candidateFile      `yaml:"candidate"`
	Answers   map[string]float64 `yaml:"answers" validate:"dive,keys,questionid,endkeys"`
}

type candidateFile struct {
	// ID is accepted for compatibility with exported corpora but ignored:
	// ids are always reassigned from input order.
	ID    *int   `yaml:"id"`
	Name  string `yaml:"name" validate:"required"`
	Party string `yaml:"party"`
	City  string `yaml:"city"`
}

// CorpusLoader reads answer corpora from YAML or JSON, validates every
// record, and caches the decoded corpus by the SHA256 hash of its normalized
// content.
// Use CorpusLoader when the corpus comes from a file or stream owned by the
// collaborator.
type CorpusLoader struct {
	// cache stores decoded corpora indexed by content hash.
	// WARNING: Cached corpora MUST NOT be mutated. NewEngine copies the
	// records it indexes, so passing a cached corpus to it is safe.
	cache   map[string]*domain.Corpus
	cacheMu sync.RWMutex
	// sf collapses concurrent loads of the same content into one decode.
	sf     singleflight.Group
	logger *slog.Logger
}

// NewCorpusLoader creates a CorpusLoader with an empty cache.
func NewCorpusLoader() *CorpusLoader {
	return &CorpusLoader{
		cache:  make(map[string]*domain.Corpus),
		logger: logging.New("corpus_loader"),
	}
}

// LoadFromFile reads and validates the corpus stored at path.
func (cl *CorpusLoader) LoadFromFile(ctx context.Context, path string) (*domain.Corpus, error) {
	cleanPath := filepath.Clean(path)

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, ports.NewCorpusError(cleanPath, err)
	}
	return cl.load(ctx, cleanPath, data)
}

// LoadFromReader reads and validates a corpus from r.
func (cl *CorpusLoader) LoadFromReader(ctx context.Context, r io.Reader) (*domain.Corpus, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ports.NewCorpusError("reader", err)
	}
	return cl.load(ctx, "reader", data)
}

func (cl *CorpusLoader) load(ctx context.Context, source string, data []byte) (*domain.Corpus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := parseCorpus(data)
	if err != nil {
		return nil, ports.NewCorpusError(source, err)
	}

	// Hash the normalized form so formatting and key order do not defeat
	// the cache.
	hash, err := corpusHash(file)
	if err != nil {
		return nil, ports.NewCorpusError(source, err)
	}

	v, err, shared := cl.sf.Do(hash, func() (any, error) {
		if corpus, ok := cl.cached(hash); ok {
			cl.logger.Debug("corpus cache hit", "source", source, "hash", hash[:12])
			return corpus, nil
		}

		if err := validateCorpusFile(file); err != nil {
			return nil, err
		}

		corpus := file.toDomain()
		cl.store(hash, corpus)
		cl.logger.Debug("corpus loaded",
			"source", source,
			"records", len(corpus.Records),
			"questions", len(corpus.Questions))
		return corpus, nil
	})
	if err != nil {
		return nil, ports.NewCorpusError(source, err)
	}
	if shared {
		cl.logger.Debug("corpus load shared", "source", source)
	}

	return v.(*domain.Corpus), nil
}

// ClearCache drops every cached corpus.
func (cl *CorpusLoader) ClearCache() {
	cl.cacheMu.Lock()
	defer cl.cacheMu.Unlock()

	cl.cache = make(map[string]*domain.Corpus)
}

func (cl *CorpusLoader) cached(hash string) (*domain.Corpus, bool) {
	cl.cacheMu.RLock()
	defer cl.cacheMu.RUnlock()

	corpus, ok := cl.cache[hash]
	return corpus, ok
}

func (cl *CorpusLoader) store(hash string, corpus *domain.Corpus) {
	cl.cacheMu.Lock()
	defer cl.cacheMu.Unlock()

	cl.cache[hash] = corpus
}

// parseCorpus decodes data strictly so misspelled fields are reported
// instead of silently ignored.
func parseCorpus(data []byte) (*corpusFile, error) {
	var file corpusFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", ports.ErrMalformedCorpus)
		}
		return nil, fmt.Errorf("%w: %v", ports.ErrMalformedCorpus, err)
	}
	return &file, nil
}

func corpusHash(file *corpusFile) (string, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(file); err != nil {
		return "", fmt.Errorf("failed to encode corpus for hashing: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("failed to encode corpus for hashing: %w", err)
	}

	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:]), nil
}

// validateCorpusFile checks the top-level shape and then every record,
// collecting all record failures into one ValidationError.
func validateCorpusFile(file *corpusFile) error {
	v, err := configValidator()
	if err != nil {
		return err
	}
	if err := v.Struct(file); err != nil {
		return fmt.Errorf("corpus validation failed: %w", err)
	}

	verr := domain.NewValidationError("corpus")
	for i := range file.Records {
		if err := v.Struct(&file.Records[i]); err != nil {
			verr.AddError(fmt.Sprintf("record %d: %v", i, err))
		}
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

func (f *corpusFile) toDomain() *domain.Corpus {
	corpus := &domain.Corpus{
		Questions: make(map[domain.QuestionID]string, len(f.Questions)),
		Records:   make([]domain.Record, len(f.Records)),
	}
	for id, text := range f.Questions {
		corpus.Questions[domain.QuestionID(id)] = text
	}
	for i, r := range f.Records {
		answers := make(domain.AnswerSet, len(r.Answers))
		for q, v := range r.Answers {
			answers[domain.QuestionID(q)] = v
		}
		corpus.Records[i] = domain.Record{
			Candidate: domain.Candidate{
				Name:  r.Candidate.Name,
				Party: r.Candidate.Party,
				City:  r.Candidate.City,
			},
			Answers: answers,
		}
	}
	return corpus
}
