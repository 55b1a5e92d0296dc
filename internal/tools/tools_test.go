package tools

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Crewflow/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerper_Run(t *testing.T) {
	var got serperRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "serper-key", r.Header.Get("X-API-KEY"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{
			"answerBox": {"answer": "Breiman, 2001"},
			"organic": [
				{"title": "Random Forests", "link": "https://example.com/rf", "snippet": "Leo Breiman"},
				{"title": "Ensembles", "link": "https://example.com/ens", "snippet": "Bagging"}
			]
		}`))
	}))
	defer srv.Close()

	s := NewSerper("serper-key", srv.URL)
	out, err := s.Run(context.Background(), Call{Query: "random forest origin"})
	require.NoError(t, err)

	assert.Equal(t, "random forest origin", got.Q)
	assert.Equal(t, serperResultCount, got.Num)
	assert.Contains(t, out, "Answer: Breiman, 2001")
	assert.Contains(t, out, "1. [Random Forests](https://example.com/rf)")
	assert.Contains(t, out, "2. [Ensembles](https://example.com/ens)")
}

func TestSerper_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := NewSerper("bad", srv.URL).Run(context.Background(), Call{Query: "x"})
	assert.ErrorContains(t, err, "status=403")
}

func TestMLTools_EmitJSON(t *testing.T) {
	for _, tool := range MLTools() {
		t.Run(string(tool.Name()), func(t *testing.T) {
			out, err := tool.Run(context.Background(), Call{})
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(out, "```json\n"))

			body := strings.TrimSuffix(strings.TrimPrefix(out, "```json\n"), "\n```")
			var decoded map[string]any
			require.NoError(t, json.Unmarshal([]byte(body), &decoded))
			assert.NotEmpty(t, decoded)
		})
	}
}

func TestHyperparameterTool_IncludesSearchSettings(t *testing.T) {
	r := NewRegistry(nil, MLTools()...)
	tool, ok := r.Get(types.ToolHyperparameterOptimizer)
	require.True(t, ok)

	out, err := tool.Run(context.Background(), Call{Inputs: map[string]string{"random_state": "42", "cv_folds": "5"}})
	require.NoError(t, err)
	assert.Contains(t, out, `"random_state": "42"`)
	assert.Contains(t, out, `"n_estimators"`)
}

type stubTool struct {
	name  types.Tool
	out   string
	err   error
	calls int
}

func (s *stubTool) Name() types.Tool    { return s.name }
func (s *stubTool) Title() string       { return "Stub " + string(s.name) }
func (s *stubTool) Description() string { return "stub" }
func (s *stubTool) Run(context.Context, Call) (string, error) {
	s.calls++
	return s.out, s.err
}

func TestRegistry_Notes(t *testing.T) {
	search := &stubTool{name: types.ToolWebSearch, out: "results"}
	dataset := &stubTool{name: types.ToolDatasetAnalyzer, err: errors.New("boom")}
	r := NewRegistry(nil, search, dataset)

	agent := types.AgentSpec{Tools: []types.Tool{types.ToolWebSearch, types.ToolDatasetAnalyzer, types.ToolModelEvaluator}}

	notes := r.Notes(context.Background(), agent, Call{Query: "q"})
	assert.Equal(t, "## Stub web_search\n\nresults", notes)
	assert.Equal(t, 1, dataset.calls)

	notes = r.Notes(context.Background(), agent, Call{})
	assert.Empty(t, notes, "web search is skipped without a query")
	assert.Equal(t, 1, search.calls)
}

func TestDefault(t *testing.T) {
	r := Default(Options{}, nil)
	assert.False(t, r.Enabled(types.ToolWebSearch))
	assert.True(t, r.Enabled(types.ToolDatasetAnalyzer))

	r = Default(Options{SerperAPIKey: "k"}, nil)
	assert.True(t, r.Enabled(types.ToolWebSearch))
}
