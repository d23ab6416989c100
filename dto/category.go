package dto

import (
	"time"

	"main/model"
	"main/usecase"
)

type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

type CategoryResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Color      string    `json:"color"`
	NotesCount int       `json:"notes_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type SeedDefaultsResponse struct {
	Message string             `json:"message"`
	Created []CategoryResponse `json:"created"`
}

func ToCategoryResponse(category *model.Category, notesCount int) CategoryResponse {
	return CategoryResponse{
		ID:         category.ID,
		Name:       category.Name,
		Color:      category.Color,
		NotesCount: notesCount,
		CreatedAt:  category.CreatedAt,
	}
}

func ToCategoryResponses(categories []usecase.CategoryWithCount) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, entry := range categories {
		responses[i] = ToCategoryResponse(entry.Category, entry.NotesCount)
	}
	return responses
}
