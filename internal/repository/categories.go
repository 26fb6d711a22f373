package repository

import (
	"context"
	"strings"

	"linkhub/internal/models"
	"linkhub/pkg/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create derives the id from the name and inserts with conflict-skip
// semantics. A colliding id is reported as ErrDuplicate; the existing row
// is never overwritten.
func (r *CategoryRepository) Create(ctx context.Context, name, color string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.ErrValidation
	}
	if color == "" {
		color = "blue"
	}

	cat := models.Category{
		ID:    utils.Slugify(name),
		Name:  name,
		Color: color,
	}

	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&cat)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, models.ErrDuplicate
	}

	return &cat, nil
}

// ListAll returns an unordered id -> {name, color} snapshot.
func (r *CategoryRepository) ListAll(ctx context.Context) (map[string]models.CategoryInfo, error) {
	var cats []models.Category
	if err := r.db.WithContext(ctx).Find(&cats).Error; err != nil {
		return nil, err
	}

	out := make(map[string]models.CategoryInfo, len(cats))
	for _, c := range cats {
		out[c.ID] = models.CategoryInfo{Name: c.Name, Color: c.Color}
	}
	return out, nil
}

// SeedDefaults inserts the built-in category set, silently skipping ids
// that already exist. Same SQL idiom as Create, different error handling.
func (r *CategoryRepository) SeedDefaults(ctx context.Context) error {
	return seedDefaultCategories(r.db.WithContext(ctx))
}
