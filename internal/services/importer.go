package services

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"linkhub/internal/models"
	"linkhub/internal/repository"
	"linkhub/pkg/utils"
)

var (
	// $-_ is a range: it spans the ASCII block holding digits, /?=:;
	// and the uppercase letters, so path and query characters match.
	urlPattern    = regexp.MustCompile(`https?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*(),]|%[0-9a-fA-F]{2})+`)
	bulletPrefix  = regexp.MustCompile(`^[-•*\s]+`)
	nonTitleChars = regexp.MustCompile(`[^\w\s-]`)
)

type ImportResult struct {
	Links         []models.Link `json:"links"`
	ImportedCount int           `json:"imported_count"`
	SkippedCount  int           `json:"skipped_count"`
}

// ImportService turns free text into link records: extract URLs, infer
// titles from the surrounding lines, bulk-create.
type ImportService struct {
	links  *repository.LinkRepository
	logger *slog.Logger
}

func NewImportService(links *repository.LinkRepository, logger *slog.Logger) *ImportService {
	return &ImportService{links: links, logger: logger}
}

// ImportFromText is best-effort: invalid URLs and per-link creation
// failures are counted as skipped and never abort the batch. Partial
// success is the normal outcome.
func (s *ImportService) ImportFromText(ctx context.Context, text, category, addedBy string) (*ImportResult, error) {
	urls := urlPattern.FindAllString(text, -1)
	if len(urls) == 0 {
		return nil, models.ErrNoURLs
	}

	if category == "" {
		category = "imported"
	}
	addedBy = strings.TrimSpace(addedBy)
	if addedBy == "" {
		addedBy = "Anonymous"
	}

	description := "Imported from text on " + time.Now().Format("2006-01-02")
	result := &ImportResult{Links: []models.Link{}}

	for _, u := range urls {
		if !utils.ValidateURL(u) {
			result.SkippedCount++
			continue
		}

		title := titleFromContext(text, u)
		if title == "" {
			title = "Imported Resource"
		}

		link, err := s.links.Create(ctx, repository.CreateLinkInput{
			Title:       title,
			URL:         u,
			Description: description,
			Category:    category,
			AddedBy:     addedBy,
		})
		if err != nil {
			s.logger.Warn("skipping URL during import", "url", u, "error", err)
			result.SkippedCount++
			continue
		}

		result.Links = append(result.Links, *link)
	}

	result.ImportedCount = len(result.Links)
	return result, nil
}

// titleFromContext searches backward from the URL's first occurrence:
// the last non-empty line before it, stripped of bullet markup and
// punctuation, is accepted as a title only when its length lands between
// 10 and 100 characters (then truncated to 80).
func titleFromContext(text, url string) string {
	pos := strings.Index(text, url)
	if pos <= 0 {
		return ""
	}

	before := strings.TrimSpace(text[:pos])
	if before == "" {
		return ""
	}

	lines := strings.Split(before, "\n")
	candidate := strings.TrimSpace(lines[len(lines)-1])
	candidate = bulletPrefix.ReplaceAllString(candidate, "")
	candidate = nonTitleChars.ReplaceAllString(candidate, "")

	runes := []rune(candidate)
	if len(runes) < 10 || len(runes) > 100 {
		return ""
	}
	if len(runes) > 80 {
		runes = runes[:80]
	}
	return string(runes)
}
