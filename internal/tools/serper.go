package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"Crewflow/pkg/types"
)

const (
	DefaultSerperURL  = "https://google.serper.dev/search"
	serperResultCount = 5
)

// Serper performs web searches through the serper.dev Google Search API.
type Serper struct {
	apiKey string
	url    string
	client *http.Client
}

func NewSerper(apiKey, url string) *Serper {
	if url == "" {
		url = DefaultSerperURL
	}
	return &Serper{
		apiKey: apiKey,
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *Serper) Name() types.Tool { return types.ToolWebSearch }
func (s *Serper) Title() string    { return "Web Search" }
func (s *Serper) Description() string {
	return "Searches the internet and returns the top organic results."
}

type serperRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

type serperResponse struct {
	AnswerBox *struct {
		Title   string `json:"title"`
		Answer  string `json:"answer"`
		Snippet string `json:"snippet"`
	} `json:"answerBox"`
	Organic []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic"`
}

func (s *Serper) Run(ctx context.Context, call Call) (string, error) {
	payload, err := json.Marshal(serperRequest{Q: call.Query, Num: serperResultCount})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-API-KEY", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("serper request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", fmt.Errorf("serper: status=%d msg=%s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode serper response: %w", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Search: %q\n", call.Query)
	if ab := out.AnswerBox; ab != nil {
		answer := ab.Answer
		if answer == "" {
			answer = ab.Snippet
		}
		if answer != "" {
			fmt.Fprintf(&sb, "\nAnswer: %s\n", answer)
		}
	}
	for i, r := range out.Organic {
		if i == serperResultCount {
			break
		}
		fmt.Fprintf(&sb, "\n%d. [%s](%s)\n   %s\n", i+1, r.Title, r.Link, r.Snippet)
	}
	if len(out.Organic) == 0 && out.AnswerBox == nil {
		sb.WriteString("\nNo results.\n")
	}
	return sb.String(), nil
}
