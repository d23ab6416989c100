package testutils

import (
	"context"
	"errors"
	"sort"
	"sync"

	"main/model"
	"main/repository"
)

// In-memory repository fakes with the same observable semantics as the
// Mongo-backed ones: user scoping on every operation, unique-key
// violations, sorted listings, and copy-on-read so callers never alias
// stored documents.

type FakeUsersRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func NewFakeUsersRepo() *FakeUsersRepo {
	return &FakeUsersRepo{users: make(map[string]*model.User)}
}

func (r *FakeUsersRepo) AddUser(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.Email == "" || user.Password == "" {
		return errors.New("email and password required")
	}
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateKey
		}
	}

	stored := *user
	r.users[user.UserID] = &stored
	return nil
}

func (r *FakeUsersRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

func (r *FakeUsersRepo) FindUser(ctx context.Context, userID string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	found := *user
	return &found, nil
}

type FakeCategoriesRepo struct {
	mu         sync.Mutex
	categories map[string]*model.Category
}

func NewFakeCategoriesRepo() *FakeCategoriesRepo {
	return &FakeCategoriesRepo{categories: make(map[string]*model.Category)}
}

func (r *FakeCategoriesRepo) CreateCategory(ctx context.Context, category *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if category.UserID == "" {
		return errors.New("user ID is required")
	}
	for _, existing := range r.categories {
		if existing.UserID == category.UserID && existing.Name == category.Name {
			return repository.ErrDuplicateKey
		}
	}

	stored := *category
	r.categories[category.ID] = &stored
	return nil
}

func (r *FakeCategoriesRepo) GetCategory(ctx context.Context, categoryID, userID string) (*model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category, ok := r.categories[categoryID]
	if !ok || category.UserID != userID {
		return nil, nil
	}
	found := *category
	return &found, nil
}

func (r *FakeCategoriesRepo) GetCategoryByName(ctx context.Context, name, userID string) (*model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, category := range r.categories {
		if category.UserID == userID && category.Name == name {
			found := *category
			return &found, nil
		}
	}
	return nil, nil
}

func (r *FakeCategoriesRepo) GetUserCategories(ctx context.Context, userID string) ([]*model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*model.Category, 0)
	for _, category := range r.categories {
		if category.UserID == userID {
			found := *category
			result = append(result, &found)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *FakeCategoriesRepo) DeleteCategory(ctx context.Context, categoryID, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category, ok := r.categories[categoryID]
	if !ok || category.UserID != userID {
		return 0, nil
	}
	delete(r.categories, categoryID)
	return 1, nil
}

type FakeNotesRepo struct {
	mu    sync.Mutex
	notes map[string]*model.Note
}

func NewFakeNotesRepo() *FakeNotesRepo {
	return &FakeNotesRepo{notes: make(map[string]*model.Note)}
}

func (r *FakeNotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if note.UserID == "" {
		return errors.New("user ID is required")
	}
	stored := *note
	r.notes[note.ID] = &stored
	return nil
}

func (r *FakeNotesRepo) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, ok := r.notes[noteID]
	if !ok || note.UserID != userID {
		return nil, nil
	}
	found := *note
	return &found, nil
}

func (r *FakeNotesRepo) GetUserNotes(ctx context.Context, userID, categoryID string) ([]*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*model.Note, 0)
	for _, note := range r.notes {
		if note.UserID != userID {
			continue
		}
		if categoryID != "" && note.CategoryID != categoryID {
			continue
		}
		found := *note
		result = append(result, &found)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}

func (r *FakeNotesRepo) UpdateNote(ctx context.Context, note *model.Note) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.notes[note.ID]
	if !ok || existing.UserID != note.UserID {
		return 0, nil
	}
	existing.Title = note.Title
	existing.Content = note.Content
	existing.CategoryID = note.CategoryID
	existing.UpdatedAt = note.UpdatedAt
	return 1, nil
}

func (r *FakeNotesRepo) DeleteNote(ctx context.Context, noteID, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, ok := r.notes[noteID]
	if !ok || note.UserID != userID {
		return 0, nil
	}
	delete(r.notes, noteID)
	return 1, nil
}

func (r *FakeNotesRepo) ClearCategory(ctx context.Context, categoryID, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var modified int64
	for _, note := range r.notes {
		if note.UserID == userID && note.CategoryID == categoryID {
			note.CategoryID = ""
			modified++
		}
	}
	return modified, nil
}

func (r *FakeNotesRepo) CountNotesByCategory(ctx context.Context, userID string) (map[string]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[string]int)
	for _, note := range r.notes {
		if note.UserID == userID && note.CategoryID != "" {
			counts[note.CategoryID]++
		}
	}
	return counts, nil
}
