package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"main/model"
	"main/repository"
	"main/utils"

	"github.com/google/uuid"
)

// CategoriesRepository is the storage surface the category service needs.
// Every implementation must scope reads and writes to the given user.
// Lookups return (nil, nil) when no category matches.
type CategoriesRepository interface {
	CreateCategory(ctx context.Context, category *model.Category) error
	GetCategory(ctx context.Context, categoryID, userID string) (*model.Category, error)
	GetCategoryByName(ctx context.Context, name, userID string) (*model.Category, error)
	GetUserCategories(ctx context.Context, userID string) ([]*model.Category, error)
	DeleteCategory(ctx context.Context, categoryID, userID string) (int64, error)
}

type CategoryService struct {
	CategoriesRepo CategoriesRepository
	NotesRepo      NotesRepository
}

// CategoryWithCount pairs a category with a live count of its notes.
type CategoryWithCount struct {
	Category   *model.Category
	NotesCount int
}

// defaultCategories is the fixed starter set seeded per user, in order.
var defaultCategories = []struct {
	Name  string
	Color string
}{
	{"Random Thoughts", "#F5C4A1"},
	{"School", "#F5E6A3"},
	{"Personal", "#A8D5D8"},
}

// ListCategories returns the user's categories ordered by name, each
// annotated with how many of the user's notes reference it.
func (svc *CategoryService) ListCategories(ctx context.Context, userID string) ([]CategoryWithCount, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	categories, err := svc.CategoriesRepo.GetUserCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts, err := svc.NotesRepo.CountNotesByCategory(ctx, userID)
	if err != nil {
		return nil, err
	}

	annotated := make([]CategoryWithCount, len(categories))
	for i, category := range categories {
		annotated[i] = CategoryWithCount{
			Category:   category,
			NotesCount: counts[category.ID],
		}
	}
	return annotated, nil
}

// CreateCategory creates a category owned by the authenticated user. The
// owner always comes from the session, never from client input.
func (svc *CategoryService) CreateCategory(ctx context.Context, userID, name, color string) (*model.Category, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("category name is required")
	}
	if color == "" {
		color = model.DefaultCategoryColor
	}

	category := &model.Category{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Color:     color,
		CreatedAt: time.Now(),
	}

	if err := svc.CategoriesRepo.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateCategory
		}
		return nil, err
	}

	utils.TrackCategoryOperation("create")
	return category, nil
}

// DeleteCategory removes a category scoped to the user and clears the
// category reference on every note that pointed at it. The notes survive.
// A missing category and another user's category both yield ErrNotFound.
func (svc *CategoryService) DeleteCategory(ctx context.Context, categoryID, userID string) error {
	deleted, err := svc.CategoriesRepo.DeleteCategory(ctx, categoryID, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}

	if _, err := svc.NotesRepo.ClearCategory(ctx, categoryID, userID); err != nil {
		return err
	}

	utils.TrackCategoryOperation("delete")
	return nil
}

// SeedDefaults idempotently ensures the starter categories exist for the
// user and returns only the ones created by this call. A duplicate-key
// failure means a concurrent request created the same category first; it is
// treated as "already exists" after one retry lookup.
func (svc *CategoryService) SeedDefaults(ctx context.Context, userID string) ([]*model.Category, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	created := make([]*model.Category, 0, len(defaultCategories))
	for _, def := range defaultCategories {
		existing, err := svc.CategoriesRepo.GetCategoryByName(ctx, def.Name, userID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			continue
		}

		category := &model.Category{
			ID:        uuid.NewString(),
			UserID:    userID,
			Name:      def.Name,
			Color:     def.Color,
			CreatedAt: time.Now(),
		}

		err = svc.CategoriesRepo.CreateCategory(ctx, category)
		if errors.Is(err, repository.ErrDuplicateKey) {
			if existing, err = svc.CategoriesRepo.GetCategoryByName(ctx, def.Name, userID); err != nil {
				return nil, err
			}
			if existing == nil {
				return nil, repository.ErrDuplicateKey
			}
			continue
		}
		if err != nil {
			return nil, err
		}

		created = append(created, category)
	}

	utils.TrackCategoryOperation("seed")
	return created, nil
}
