// Package vectorstore indexes generated reports for similarity search across runs.
package vectorstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"Crewflow/pkg/types"

	"github.com/philippgille/chromem-go"
	"go.uber.org/zap"
)

const collectionName = "crewflow_reports"

// Embedder backends.
const (
	EmbedderOllama = "ollama"
	EmbedderOpenAI = "openai"
	EmbedderCompat = "compat"
)

// Options configures where the index lives and how text is embedded.
type Options struct {
	Path     string
	Embedder string // ollama (default), openai or compat
	Model    string
	APIKey   string
	BaseURL  string
	// EmbeddingFunc overrides Embedder when set.
	EmbeddingFunc chromem.EmbeddingFunc
}

// ReportIndex is a persistent chromem-go collection holding one document per
// generated report.
type ReportIndex struct {
	db         *chromem.DB
	collection *chromem.Collection
	path       string
	logger     *zap.Logger
}

// SearchResult is one report matching a query.
type SearchResult struct {
	ID       string
	Content  string
	Score    float32
	Workflow string
	Task     string
	Agent    string
	RunID    string
	File     string
	Created  string
}

// DefaultPath is the index location when none is configured.
func DefaultPath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "crewflow", "reports")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".crewflow", "reports")
}

func Open(opts Options, logger *zap.Logger) (*ReportIndex, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	path := opts.Path
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create index directory: %w", err)
	}

	ef := opts.EmbeddingFunc
	if ef == nil {
		var err error
		if ef, err = embeddingFunc(opts); err != nil {
			return nil, fmt.Errorf("failed to get embedding function: %w", err)
		}
	}

	db, err := chromem.NewPersistentDB(path, false)
	if err != nil {
		return nil, fmt.Errorf("failed to open chromem db: %w", err)
	}
	collection, err := db.GetOrCreateCollection(collectionName, nil, ef)
	if err != nil {
		return nil, fmt.Errorf("failed to open collection: %w", err)
	}

	return &ReportIndex{
		db:         db,
		collection: collection,
		path:       path,
		logger:     logger.With(zap.String("component", "vectorstore")),
	}, nil
}

func embeddingFunc(opts Options) (chromem.EmbeddingFunc, error) {
	switch opts.Embedder {
	case EmbedderOllama, "local", "":
		model := opts.Model
		if model == "" {
			model = "nomic-embed-text"
		}
		return chromem.NewEmbeddingFuncOllama(model, opts.BaseURL), nil
	case EmbedderOpenAI:
		if opts.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		return chromem.NewEmbeddingFuncOpenAI(opts.APIKey, chromem.EmbeddingModelOpenAI3Small), nil
	case EmbedderCompat:
		if opts.BaseURL == "" {
			return nil, fmt.Errorf("compat embedder requires a base URL")
		}
		model := opts.Model
		if model == "" {
			model = string(chromem.EmbeddingModelOpenAI3Small)
		}
		return chromem.NewEmbeddingFuncOpenAICompat(opts.BaseURL, opts.APIKey, model, nil), nil
	default:
		return nil, fmt.Errorf("unknown embedder: %s", opts.Embedder)
	}
}

// StoreReport indexes one task output of a run.
func (r *ReportIndex) StoreReport(ctx context.Context, runID string, workflow types.WorkflowID, out types.TaskOutput) error {
	ts := out.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	doc := chromem.Document{
		ID:      fmt.Sprintf("%s_%s", runID, out.Name),
		Content: out.Content,
		Metadata: map[string]string{
			"workflow":  string(workflow),
			"task":      out.Name,
			"agent":     out.Agent,
			"run_id":    runID,
			"file":      out.File,
			"timestamp": ts.Format(time.RFC3339),
		},
	}
	if err := r.collection.AddDocument(ctx, doc); err != nil {
		return fmt.Errorf("failed to index report %s: %w", out.Name, err)
	}
	r.logger.Debug("report indexed", zap.String("id", doc.ID))
	return nil
}

// Search returns up to topK reports most similar to query, optionally limited
// to one workflow.
func (r *ReportIndex) Search(ctx context.Context, query string, topK int, workflow types.WorkflowID) ([]SearchResult, error) {
	if topK <= 0 {
		topK = 5
	}
	var where map[string]string
	if workflow != "" {
		where = map[string]string{"workflow": string(workflow)}
	}

	// chromem rejects nResults larger than the collection.
	if n := r.collection.Count(); n == 0 {
		return nil, nil
	} else if topK > n {
		topK = n
	}

	results, err := r.collection.Query(ctx, query, topK, where, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]SearchResult, 0, len(results))
	for _, res := range results {
		out = append(out, SearchResult{
			ID:       res.ID,
			Content:  res.Content,
			Score:    res.Similarity,
			Workflow: res.Metadata["workflow"],
			Task:     res.Metadata["task"],
			Agent:    res.Metadata["agent"],
			RunID:    res.Metadata["run_id"],
			File:     res.Metadata["file"],
			Created:  res.Metadata["timestamp"],
		})
	}
	return out, nil
}

func (r *ReportIndex) Count() int {
	return r.collection.Count()
}

func (r *ReportIndex) Path() string {
	return r.path
}
