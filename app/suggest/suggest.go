// Package suggest asks a generative-AI model for study advice based on
// the student's per-subject progress. Failures never escape the package:
// a missing key yields a fixed disabled message without any request, and
// any call failure yields a fixed fallback string.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/sskrishnan03/krishnan-study-planner/app/models"
	"github.com/sskrishnan03/krishnan-study-planner/app/stats"
)

const (
	// DisabledMessage is returned when no API key is configured.
	DisabledMessage = "AI features are disabled. Please set your GEMINI_API_KEY."
	// FallbackMessage is returned when the call fails for any reason.
	FallbackMessage = "Sorry, I couldn't fetch study suggestions at the moment. Please check your API key and network connection."

	defaultEndpoint = "https://generativelanguage.googleapis.com"
	model           = "gemini-2.5-flash"
	requestTimeout  = 20 * time.Second
)

const promptTemplate = `You are an expert academic advisor bot. A student has provided their current study progress.
Analyze the following data and provide 3-4 actionable, encouraging, and specific study suggestions.
Focus on subjects with lower completion rates but also acknowledge progress in others.
Keep the suggestions concise and present them as a list.

Study Data:
%s

Example Suggestion Format:
- **Focus on [Subject Name]:** You've completed [X]%% of the topics. Try scheduling two 25-minute study sessions for "[Uncompleted Topic Name]" this week.
- **Keep up the Momentum in [Subject Name]:** Great job on reaching [Y]%% completion! To solidify your knowledge, create some flashcards for the topics you've already covered.

Now, generate the suggestions based on the provided data.`

// Client calls the Gemini text-generation API.
type Client struct {
	apiKey   string
	endpoint string
	http     *http.Client
}

// NewClient builds a client. An empty apiKey is legal and makes every
// call return DisabledMessage without touching the network.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		http:     &http.Client{Timeout: requestTimeout},
	}
}

type subjectSummary struct {
	Name            string `json:"name"`
	TotalTopics     int    `json:"totalTopics"`
	CompletedTopics int    `json:"completedTopics"`
	Progress        int    `json:"progress"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []generatePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// StudySuggestions summarizes the subjects and asks the model for advice.
// It always returns displayable text, never an error.
func (c *Client) StudySuggestions(ctx context.Context, subjects []models.Subject) string {
	if c.apiKey == "" {
		return DisabledMessage
	}

	summaries := make([]subjectSummary, 0, len(subjects))
	for _, s := range subjects {
		completed := 0
		for _, t := range s.Topics {
			if t.Completed {
				completed++
			}
		}
		summaries = append(summaries, subjectSummary{
			Name:            s.Name,
			TotalTopics:     len(s.Topics),
			CompletedTopics: completed,
			Progress:        stats.SubjectProgress(s),
		})
	}

	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		log.Printf("Error building study data summary: %v", err)
		return FallbackMessage
	}
	prompt := fmt.Sprintf(promptTemplate, string(data))

	body, err := json.Marshal(generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
	})
	if err != nil {
		log.Printf("Error encoding suggestion request: %v", err)
		return FallbackMessage
	}

	reqURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.endpoint, model, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		log.Printf("Error building suggestion request: %v", err)
		return FallbackMessage
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("Error fetching study suggestions: %v", err)
		return FallbackMessage
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Study suggestion request failed with status %d", resp.StatusCode)
		return FallbackMessage
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Printf("Error decoding suggestion response: %v", err)
		return FallbackMessage
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		log.Printf("Study suggestion response contained no candidates")
		return FallbackMessage
	}
	return out.Candidates[0].Content.Parts[0].Text
}
