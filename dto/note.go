package dto

import (
	"time"

	"main/model"
)

type CreateNoteRequest struct {
	Title    string `json:"title" binding:"max=255"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// UpdateNoteRequest is a partial update: absent fields stay untouched,
// an explicit empty category clears the reference.
type UpdateNoteRequest struct {
	Title    *string `json:"title" binding:"omitempty,max=255"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
}

type NoteResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Category      *string   `json:"category"`
	CategoryName  string    `json:"category_name,omitempty"`
	CategoryColor string    `json:"category_color,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type NotesPageResponse struct {
	Notes       []NoteResponse `json:"notes"`
	TotalCount  int            `json:"total_count"`
	PageCount   int            `json:"page_count"`
	CurrentPage int            `json:"current_page"`
}

// ToNoteResponse converts a note, resolving its category annotation from
// the given category (nil for uncategorized notes).
func ToNoteResponse(note *model.Note, category *model.Category) NoteResponse {
	response := NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}

	if note.CategoryID != "" {
		categoryID := note.CategoryID
		response.Category = &categoryID
		if category != nil {
			response.CategoryName = category.Name
			response.CategoryColor = category.Color
		}
	}

	return response
}

// ToNoteResponses converts a slice of notes using a category lookup map
func ToNoteResponses(notes []*model.Note, categories map[string]*model.Category) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = ToNoteResponse(note, categories[note.CategoryID])
	}
	return responses
}

// NewNotesPageResponse assembles a paginated notes envelope
func NewNotesPageResponse(notes []*model.Note, categories map[string]*model.Category, totalCount, currentPage, pageSize int) *NotesPageResponse {
	pageCount := (totalCount + pageSize - 1) / pageSize
	return &NotesPageResponse{
		Notes:       ToNoteResponses(notes, categories),
		TotalCount:  totalCount,
		PageCount:   pageCount,
		CurrentPage: currentPage,
	}
}
