package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"linkhub/internal/models"
	"linkhub/internal/repository"

	"github.com/stretchr/testify/assert"
)

func TestComputeStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty store", func(t *testing.T) {
		stats, _, _ := setupStats()

		result, err := stats.Compute(ctx)
		assert.NoError(t, err)
		assert.Zero(t, result.TotalLinks)
		assert.Zero(t, result.LinksThisWeek)
		assert.Zero(t, result.TotalClicks)
		assert.Equal(t, "Data Science", result.MostUsedCategory)
		assert.Empty(t, result.CategoryDistribution)
		assert.Empty(t, result.TeamActivity)
	})

	t.Run("Populated store", func(t *testing.T) {
		stats, links, db := setupStats()

		for i := 0; i < 3; i++ {
			_, err := links.Create(ctx, repository.CreateLinkInput{
				Title:    fmt.Sprintf("ML Resource %d", i),
				URL:      "https://ml.example.com",
				Category: "machine-learning",
			})
			assert.NoError(t, err)
		}
		old, err := links.Create(ctx, repository.CreateLinkInput{
			Title:    "Ancient Dataset",
			URL:      "https://data.example.com",
			Category: "datasets",
		})
		assert.NoError(t, err)

		// push one link outside the trailing 7-day window
		assert.NoError(t, db.Model(&models.Link{}).Where("id = ?", old.ID).
			Update("created_at", time.Now().AddDate(0, 0, -10)).Error)

		// accrue some clicks
		assert.True(t, links.IncrementClicks(ctx, old.ID))
		assert.True(t, links.IncrementClicks(ctx, old.ID))

		result, err := stats.Compute(ctx)
		assert.NoError(t, err)
		assert.EqualValues(t, 4, result.TotalLinks)
		assert.EqualValues(t, 3, result.LinksThisWeek)
		assert.EqualValues(t, 2, result.TotalClicks)
		assert.Equal(t, "machine-learning", result.MostUsedCategory)

		assert.Len(t, result.CategoryDistribution, 2)
		assert.Equal(t, CategoryCount{Category: "machine-learning", Count: 3}, result.CategoryDistribution[0])
		assert.Equal(t, CategoryCount{Category: "datasets", Count: 1}, result.CategoryDistribution[1])
	})

	t.Run("Team activity capped at 10", func(t *testing.T) {
		stats, links, _ := setupStats()

		for i := 0; i < 15; i++ {
			_, err := links.Create(ctx, repository.CreateLinkInput{
				Title: fmt.Sprintf("Link number %d", i),
				URL:   "https://example.com",
			})
			assert.NoError(t, err)
		}

		result, err := stats.Compute(ctx)
		assert.NoError(t, err)
		assert.Len(t, result.TeamActivity, 10)
	})
}

func TestTopLinks(t *testing.T) {
	stats, links, db := setupStats()
	ctx := context.Background()

	// 15 links; the oldest five carry huge click counts that must NOT
	// surface, because the ranking is scoped to the 10 newest links.
	var ids []uint
	for i := 0; i < 15; i++ {
		link, err := links.Create(ctx, repository.CreateLinkInput{
			Title: fmt.Sprintf("Resource %02d", i),
			URL:   "https://example.com",
		})
		assert.NoError(t, err)
		ids = append(ids, link.ID)
	}

	for i, id := range ids {
		clicks := i // newer links get more clicks
		if i < 5 {
			clicks = 1000 // old but heavily clicked
		}
		assert.NoError(t, db.Model(&models.Link{}).Where("id = ?", id).
			Update("clicks", clicks).Error)
	}

	t.Run("Scoped to the 10 newest", func(t *testing.T) {
		top, err := stats.TopLinks(ctx, 3)
		assert.NoError(t, err)
		assert.Len(t, top, 3)
		assert.Equal(t, "Resource 14", top[0].Title)
		assert.Equal(t, "Resource 13", top[1].Title)
		assert.Equal(t, "Resource 12", top[2].Title)
	})

	t.Run("n larger than subset", func(t *testing.T) {
		top, err := stats.TopLinks(ctx, 50)
		assert.NoError(t, err)
		assert.Len(t, top, 10)
	})
}
