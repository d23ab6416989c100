package handler

import (
	"errors"
	"strconv"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type NotesHandler struct {
	NoteService *usecase.NoteService
}

func NewNotesHandler(noteService *usecase.NoteService) *NotesHandler {
	return &NotesHandler{NoteService: noteService}
}

// ListNotes returns a page of the user's notes, optionally filtered by
// ?category=<id>. A filter value belonging to another user just yields an
// empty result, never an error.
func (h *NotesHandler) ListNotes(c *gin.Context) {
	userID := c.GetString("user_id")
	categoryID := c.Query("category")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	notes, totalCount, err := h.NoteService.ListNotes(c.Request.Context(), userID, categoryID, page, pageSize)
	if err != nil {
		utils.InternalError(c, "failed to list notes")
		return
	}

	categories, err := h.NoteService.CategoryLookup(c.Request.Context(), userID, notes)
	if err != nil {
		utils.InternalError(c, "failed to list notes")
		return
	}

	utils.Success(c, dto.NewNotesPageResponse(notes, categories, totalCount, page, pageSize))
}

func (h *NotesHandler) CreateNote(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	note, err := h.NoteService.CreateNote(c.Request.Context(), userID, req.Title, req.Content, req.Category)
	if err != nil {
		if errors.Is(err, usecase.ErrCategoryOwnership) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, "failed to create note")
		return
	}

	utils.Created(c, h.noteResponse(c, userID, note))
}

// noteResponse serializes a single note with its category annotations.
func (h *NotesHandler) noteResponse(c *gin.Context, userID string, note *model.Note) dto.NoteResponse {
	categories, err := h.NoteService.CategoryLookup(c.Request.Context(), userID, []*model.Note{note})
	if err != nil {
		categories = nil
	}
	return dto.ToNoteResponse(note, categories[note.CategoryID])
}

func (h *NotesHandler) GetNote(c *gin.Context) {
	userID := c.GetString("user_id")
	noteID := c.Param("id")

	note, err := h.NoteService.GetNote(c.Request.Context(), noteID, userID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			utils.NotFound(c, "note not found")
			return
		}
		utils.InternalError(c, "failed to fetch note")
		return
	}

	utils.Success(c, h.noteResponse(c, userID, note))
}

func (h *NotesHandler) UpdateNote(c *gin.Context) {
	userID := c.GetString("user_id")
	noteID := c.Param("id")

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	update := usecase.NoteUpdate{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	}

	note, err := h.NoteService.UpdateNote(c.Request.Context(), noteID, userID, update)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			utils.NotFound(c, "note not found")
		case errors.Is(err, usecase.ErrCategoryOwnership):
			utils.BadRequest(c, err.Error())
		default:
			utils.InternalError(c, "failed to update note")
		}
		return
	}

	utils.Success(c, h.noteResponse(c, userID, note))
}

func (h *NotesHandler) DeleteNote(c *gin.Context) {
	userID := c.GetString("user_id")
	noteID := c.Param("id")

	if err := h.NoteService.DeleteNote(c.Request.Context(), noteID, userID); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			utils.NotFound(c, "note not found")
			return
		}
		utils.InternalError(c, "failed to delete note")
		return
	}

	utils.NoContent(c)
}
