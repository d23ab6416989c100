package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"main/model"
	"main/utils"

	"github.com/google/uuid"
)

// NotesRepository is the storage surface the note service needs. Every
// implementation must scope reads and writes to the given user. Lookups
// return (nil, nil) when no note matches.
type NotesRepository interface {
	CreateNote(ctx context.Context, note *model.Note) error
	GetNote(ctx context.Context, noteID, userID string) (*model.Note, error)
	GetUserNotes(ctx context.Context, userID, categoryID string) ([]*model.Note, error)
	UpdateNote(ctx context.Context, note *model.Note) (int64, error)
	DeleteNote(ctx context.Context, noteID, userID string) (int64, error)
	ClearCategory(ctx context.Context, categoryID, userID string) (int64, error)
	CountNotesByCategory(ctx context.Context, userID string) (map[string]int, error)
}

type NoteService struct {
	NotesRepo      NotesRepository
	CategoriesRepo CategoriesRepository
}

// NoteUpdate carries a partial update. Nil fields are left untouched;
// a non-nil empty Category clears the note's category reference.
type NoteUpdate struct {
	Title    *string
	Content  *string
	Category *string
}

const (
	maxTitleLength   = 255
	maxContentLength = 50000
)

func (svc *NoteService) validateNote(note *model.Note) error {
	if len(note.Title) > maxTitleLength {
		return errors.New("note title exceeds maximum length")
	}
	if len(note.Content) > maxContentLength {
		return errors.New("note content exceeds maximum length")
	}
	return nil
}

// checkCategoryOwnership verifies that the category exists and is owned by
// the user. A foreign category and a nonexistent one both come back as
// ErrCategoryOwnership; this must run before the note is persisted.
func (svc *NoteService) checkCategoryOwnership(ctx context.Context, categoryID, userID string) error {
	category, err := svc.CategoriesRepo.GetCategory(ctx, categoryID, userID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryOwnership
	}
	return nil
}

// CreateNote creates a note owned by the authenticated user. The owner
// always comes from the session, never from client input. Title may be
// empty; a referenced category must belong to the same user.
func (svc *NoteService) CreateNote(ctx context.Context, userID, title, content, categoryID string) (*model.Note, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	if categoryID != "" {
		if err := svc.checkCategoryOwnership(ctx, categoryID, userID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	note := &model.Note{
		ID:         uuid.NewString(),
		UserID:     userID,
		Title:      strings.TrimSpace(title),
		Content:    content,
		CategoryID: categoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := svc.validateNote(note); err != nil {
		return nil, err
	}

	if err := svc.NotesRepo.CreateNote(ctx, note); err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("create")
	return note, nil
}

// GetNote retrieves a single note scoped to the user.
func (svc *NoteService) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	note, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNotFound
	}
	return note, nil
}

// ListNotes returns a page of the user's notes, most recently updated
// first. The category filter is a plain equality on top of the user scope:
// a category id owned by someone else just matches nothing.
func (svc *NoteService) ListNotes(ctx context.Context, userID, categoryID string, page, pageSize int) ([]*model.Note, int, error) {
	if userID == "" {
		return nil, 0, errors.New("user ID is required")
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	notes, err := svc.NotesRepo.GetUserNotes(ctx, userID, categoryID)
	if err != nil {
		return nil, 0, err
	}

	totalCount := len(notes)

	start := (page - 1) * pageSize
	if start >= totalCount {
		return []*model.Note{}, totalCount, nil
	}

	end := start + pageSize
	if end > totalCount {
		end = totalCount
	}

	return notes[start:end], totalCount, nil
}

// UpdateNote applies a partial update to a note scoped to the user.
// created_at is preserved, updated_at advances. Changing the category to
// one owned by another user is rejected before anything is written.
func (svc *NoteService) UpdateNote(ctx context.Context, noteID, userID string, update NoteUpdate) (*model.Note, error) {
	note, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNotFound
	}

	if update.Title != nil {
		note.Title = strings.TrimSpace(*update.Title)
	}
	if update.Content != nil {
		note.Content = *update.Content
	}
	if update.Category != nil {
		if *update.Category != "" {
			if err := svc.checkCategoryOwnership(ctx, *update.Category, userID); err != nil {
				return nil, err
			}
		}
		note.CategoryID = *update.Category
	}

	if err := svc.validateNote(note); err != nil {
		return nil, err
	}

	note.UpdatedAt = time.Now()

	matched, err := svc.NotesRepo.UpdateNote(ctx, note)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, ErrNotFound
	}

	utils.TrackNoteOperation("update")
	return note, nil
}

// DeleteNote removes a note scoped to the user. A missing note and another
// user's note both yield ErrNotFound.
func (svc *NoteService) DeleteNote(ctx context.Context, noteID, userID string) error {
	deleted, err := svc.NotesRepo.DeleteNote(ctx, noteID, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}

	utils.TrackNoteOperation("delete")
	return nil
}

// CategoryLookup resolves the categories referenced by the given notes into
// a map keyed by category id, for response serialization.
func (svc *NoteService) CategoryLookup(ctx context.Context, userID string, notes []*model.Note) (map[string]*model.Category, error) {
	lookup := make(map[string]*model.Category)
	for _, note := range notes {
		if note.CategoryID == "" {
			continue
		}
		if _, seen := lookup[note.CategoryID]; seen {
			continue
		}
		category, err := svc.CategoriesRepo.GetCategory(ctx, note.CategoryID, userID)
		if err != nil {
			return nil, err
		}
		if category != nil {
			lookup[note.CategoryID] = category
		}
	}
	return lookup, nil
}
