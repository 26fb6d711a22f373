package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"linkhub/internal/models"
	"linkhub/internal/repository"
)

const defaultGenerateURL = "https://generativelanguage.googleapis.com/v1beta/models"

var greetingWords = []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"}

var mlKeywords = []string{
	"machine learning", "ml", "algorithm", "model",
	"supervised", "unsupervised", "classification", "regression",
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatReply struct {
	Response      string        `json:"response"`
	RelevantLinks []models.Link `json:"relevant_links"`
}

// AssistantService answers free-text questions about the stored
// resources. Generation is delegated to an external Gemini-compatible
// endpoint when an API key is configured; otherwise (or on any provider
// failure) a deterministic rule-based fallback takes over. The service
// itself only reads statistics and performs keyword search.
type AssistantService struct {
	stats   *StatsService
	links   *repository.LinkRepository
	logger  *slog.Logger
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewAssistantService(stats *StatsService, links *repository.LinkRepository, logger *slog.Logger, apiKey, model string) *AssistantService {
	return &AssistantService{
		stats:   stats,
		links:   links,
		logger:  logger,
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultGenerateURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether an external provider key is present.
func (s *AssistantService) Configured() bool {
	return s.apiKey != ""
}

// Respond never fails: provider errors degrade to the fallback, search
// errors degrade to an empty link list.
func (s *AssistantService) Respond(ctx context.Context, message string, history []ChatMessage) ChatReply {
	message = strings.TrimSpace(message)
	if message == "" {
		return ChatReply{
			Response:      "I'm here to help! What would you like to know about data science resources?",
			RelevantLinks: []models.Link{},
		}
	}

	stats, err := s.stats.Compute(ctx)
	if err != nil {
		s.logger.Error("failed to compute assistant context", "error", err)
		stats = &Statistics{MostUsedCategory: placeholderCategory}
	}

	var response string
	if s.apiKey != "" {
		text, err := s.generate(ctx, s.buildPrompt(message, stats, history))
		if err != nil {
			s.logger.Warn("provider generation failed, using fallback", "error", err)
		} else {
			response = text
		}
	}
	if response == "" {
		response = s.fallback(message, stats)
	}

	relevant, err := s.links.List(ctx, repository.ListFilter{Search: message, Limit: 5})
	if err != nil {
		s.logger.Error("failed to search relevant links", "error", err)
		relevant = []models.Link{}
	}

	return ChatReply{Response: response, RelevantLinks: relevant}
}

func (s *AssistantService) buildPrompt(message string, stats *Statistics, history []ChatMessage) string {
	var sb strings.Builder
	sb.WriteString("You are a helpful AI assistant for a data science team's link hub. ")
	sb.WriteString("You help team members find and discover resources about data science, machine learning, deep learning, datasets, tools, and documentation.\n\n")
	fmt.Fprintf(&sb, "Query: %s\n", message)
	fmt.Fprintf(&sb, "Available resources: %d links across categories\n", stats.TotalLinks)

	if len(stats.CategoryDistribution) > 0 {
		parts := make([]string, 0, len(stats.CategoryDistribution))
		for _, cc := range stats.CategoryDistribution {
			parts = append(parts, fmt.Sprintf("%s: %d", cc.Category, cc.Count))
		}
		fmt.Fprintf(&sb, "Category breakdown: %s\n", strings.Join(parts, ", "))
	}

	if len(history) > 0 {
		recent := history
		if len(recent) > 3 {
			recent = recent[len(recent)-3:]
		}
		sb.WriteString("Recent conversation:\n")
		for _, msg := range recent {
			role := "Assistant"
			if msg.Role == "user" {
				role = "User"
			}
			fmt.Fprintf(&sb, "%s: %s\n", role, msg.Content)
		}
	}

	sb.WriteString("\nBe conversational and concise (2-3 sentences max). Respond as the link hub assistant:")
	return sb.String()
}

type promptPart struct {
	Text string `json:"text"`
}

type promptContent struct {
	Parts []promptPart `json:"parts"`
}

type generateRequest struct {
	Contents []promptContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content promptContent `json:"content"`
	} `json:"candidates"`
}

func (s *AssistantService) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []promptContent{{Parts: []promptPart{{Text: prompt}}}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("provider returned no candidates")
	}

	return out.Candidates[0].Content.Parts[0].Text, nil
}

// fallback produces a deterministic answer parameterised by live stats.
func (s *AssistantService) fallback(query string, stats *Statistics) string {
	q := strings.ToLower(query)

	for _, greeting := range greetingWords {
		if strings.Contains(q, greeting) {
			if stats.TotalLinks > 0 {
				return fmt.Sprintf("Hello! I can help you explore our %d resources across %d categories. What are you looking for today?",
					stats.TotalLinks, len(stats.CategoryDistribution))
			}
			return "Hello! Ready to help you find data science resources. What would you like to learn about?"
		}
	}

	for _, keyword := range mlKeywords {
		if strings.Contains(q, keyword) {
			var mlCount int64
			for _, cc := range stats.CategoryDistribution {
				if cc.Category == "machine-learning" {
					mlCount = cc.Count
					break
				}
			}
			if mlCount > 0 {
				return fmt.Sprintf("I found %d machine learning resources in our collection. I can help you discover algorithms, frameworks and practical ML tutorials.", mlCount)
			}
			return "Machine learning is fascinating! Try adding some ML resources to build our collection, and I can help you find algorithms, model training guides and practical implementations."
		}
	}

	if stats.TotalLinks > 0 {
		top := stats.CategoryDistribution
		if len(top) > 3 {
			top = top[:3]
		}
		names := make([]string, 0, len(top))
		for _, cc := range top {
			names = append(names, cc.Category)
		}
		return fmt.Sprintf("I'm here to help you explore our %d resources in %s and more. What specific topic are you looking for?",
			stats.TotalLinks, strings.Join(names, ", "))
	}

	return "I can help you find data science resources, organize your learning materials, and guide you through ML/AI topics. Try asking about machine learning, datasets, or tools you'd like to explore!"
}
