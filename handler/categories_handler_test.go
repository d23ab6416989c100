package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

type categoryPayload struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	NotesCount int    `json:"notes_count"`
}

func TestCreateCategoryEndpoint(t *testing.T) {
	router := newTestRouter()
	access, _ := registerUser(t, router, "alice@example.com")

	w := doRequest(t, router, http.MethodPost, "/api/categories", access, gin.H{
		"name":  "Work",
		"color": "#112233",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var category categoryPayload
	decodeData(t, w, &category)
	if category.Name != "Work" || category.Color != "#112233" {
		t.Errorf("Unexpected category payload: %+v", category)
	}

	// Omitted color falls back to the default
	w = doRequest(t, router, http.MethodPost, "/api/categories", access, gin.H{"name": "Ideas"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	decodeData(t, w, &category)
	if category.Color != "#F5C4A1" {
		t.Errorf("Expected default color, got %q", category.Color)
	}
}

func TestCreateCategoryEndpointValidation(t *testing.T) {
	router := newTestRouter()
	access, _ := registerUser(t, router, "alice@example.com")

	// Missing name
	w := doRequest(t, router, http.MethodPost, "/api/categories", access, gin.H{"color": "#112233"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Missing name: expected 400, got %d", w.Code)
	}

	// Not a hex color
	w = doRequest(t, router, http.MethodPost, "/api/categories", access, gin.H{
		"name":  "Work",
		"color": "blue",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Bad color: expected 400, got %d", w.Code)
	}
}

func TestCreateCategoryEndpointDuplicate(t *testing.T) {
	router := newTestRouter()
	access, _ := registerUser(t, router, "alice@example.com")
	createCategory(t, router, access, "Work")

	w := doRequest(t, router, http.MethodPost, "/api/categories", access, gin.H{"name": "Work"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Duplicate name: expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestListCategoriesEndpointScoped(t *testing.T) {
	router := newTestRouter()
	aliceToken, _ := registerUser(t, router, "alice@example.com")
	bobToken, _ := registerUser(t, router, "bob@example.com")

	createCategory(t, router, aliceToken, "Work")

	w := doRequest(t, router, http.MethodGet, "/api/categories", bobToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var categories []categoryPayload
	decodeData(t, w, &categories)
	if len(categories) != 0 {
		t.Fatalf("Another user's categories leaked, got %d", len(categories))
	}
}

func TestSeedDefaultsEndpoint(t *testing.T) {
	router := newTestRouter()
	access, _ := registerUser(t, router, "alice@example.com")

	w := doRequest(t, router, http.MethodPost, "/api/categories/seed_defaults", access, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var seeded struct {
		Message string            `json:"message"`
		Created []categoryPayload `json:"created"`
	}
	decodeData(t, w, &seeded)
	if len(seeded.Created) != 3 {
		t.Fatalf("Expected 3 seeded categories, got %d", len(seeded.Created))
	}

	// Second seed is a no-op
	w = doRequest(t, router, http.MethodPost, "/api/categories/seed_defaults", access, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	decodeData(t, w, &seeded)
	if len(seeded.Created) != 0 {
		t.Fatalf("Second seed should create nothing, got %d", len(seeded.Created))
	}

	var categories []categoryPayload
	w = doRequest(t, router, http.MethodGet, "/api/categories", access, nil)
	decodeData(t, w, &categories)
	if len(categories) != 3 {
		t.Fatalf("Expected 3 categories after two seeds, got %d", len(categories))
	}
}

func TestDeleteCategoryEndpoint(t *testing.T) {
	router := newTestRouter()
	aliceToken, _ := registerUser(t, router, "alice@example.com")
	bobToken, _ := registerUser(t, router, "bob@example.com")

	categoryID := createCategory(t, router, aliceToken, "Work")
	noteID := createNote(t, router, aliceToken, "Meeting notes", "agenda", categoryID)

	// Another user cannot delete it
	w := doRequest(t, router, http.MethodDelete, "/api/categories/"+categoryID, bobToken, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Foreign delete: expected 404, got %d", w.Code)
	}

	w = doRequest(t, router, http.MethodDelete, "/api/categories/"+categoryID, aliceToken, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d: %s", w.Code, w.Body.String())
	}

	// The note survives with its category reference cleared
	w = doRequest(t, router, http.MethodGet, "/api/notes/"+noteID, aliceToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Note should survive category deletion, got %d", w.Code)
	}
	var note struct {
		Category *string `json:"category"`
	}
	decodeData(t, w, &note)
	if note.Category != nil {
		t.Errorf("Expected cleared category, got %v", *note.Category)
	}

	// Deleting again is a 404
	w = doRequest(t, router, http.MethodDelete, "/api/categories/"+categoryID, aliceToken, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Repeat delete: expected 404, got %d", w.Code)
	}
}
