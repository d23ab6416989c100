package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"main/handler"
	"main/middleware"
	"main/test/testutils"
	"main/usecase"

	"github.com/gin-gonic/gin"
)

func init() {
	testutils.SetupTestEnvironment()
}

// newTestRouter wires the full route table against in-memory repositories,
// mirroring the production router.
func newTestRouter() *gin.Engine {
	usersRepo := testutils.NewFakeUsersRepo()
	categoriesRepo := testutils.NewFakeCategoriesRepo()
	notesRepo := testutils.NewFakeNotesRepo()

	userService := &usecase.UserService{UsersRepo: usersRepo}
	categoryService := &usecase.CategoryService{
		CategoriesRepo: categoriesRepo,
		NotesRepo:      notesRepo,
	}
	noteService := &usecase.NoteService{
		NotesRepo:      notesRepo,
		CategoriesRepo: categoriesRepo,
	}

	authHandler := handler.NewAuthHandler(userService)
	categoriesHandler := handler.NewCategoriesHandler(categoryService)
	notesHandler := handler.NewNotesHandler(noteService)

	router := gin.New()

	public := router.Group("/api")
	{
		public.GET("/health", handler.HealthHandler)

		auth := public.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
		}
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		auth := protected.Group("/auth")
		{
			auth.GET("/me", authHandler.Me)
			auth.POST("/logout", authHandler.Logout)
		}

		categories := protected.Group("/categories")
		{
			categories.GET("", categoriesHandler.ListCategories)
			categories.POST("", categoriesHandler.CreateCategory)
			categories.POST("/seed_defaults", categoriesHandler.SeedDefaults)
			categories.DELETE("/:id", categoriesHandler.DeleteCategory)
		}

		notes := protected.Group("/notes")
		{
			notes.GET("", notesHandler.ListNotes)
			notes.POST("", notesHandler.CreateNote)
			notes.GET("/:id", notesHandler.GetNote)
			notes.PATCH("/:id", notesHandler.UpdateNote)
			notes.DELETE("/:id", notesHandler.DeleteNote)
		}
	}

	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData unwraps the response envelope's "data" field into target.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response envelope: %v (%s)", err, w.Body.String())
	}
	if err := json.Unmarshal(envelope.Data, target); err != nil {
		t.Fatalf("failed to decode response data: %v (%s)", err, w.Body.String())
	}
}

// registerUser creates an account through the API and returns its tokens.
func registerUser(t *testing.T, router *gin.Engine, email string) (access, refresh string) {
	t.Helper()

	w := doRequest(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":            email,
		"password":         "password1",
		"password_confirm": "password1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("registration failed with %d: %s", w.Code, w.Body.String())
	}

	var data struct {
		Tokens struct {
			Access  string `json:"access"`
			Refresh string `json:"refresh"`
		} `json:"tokens"`
	}
	decodeData(t, w, &data)
	return data.Tokens.Access, data.Tokens.Refresh
}

// createCategory creates a category through the API and returns its id.
func createCategory(t *testing.T, router *gin.Engine, token, name string) string {
	t.Helper()

	w := doRequest(t, router, http.MethodPost, "/api/categories", token, gin.H{"name": name})
	if w.Code != http.StatusCreated {
		t.Fatalf("category creation failed with %d: %s", w.Code, w.Body.String())
	}

	var category struct {
		ID string `json:"id"`
	}
	decodeData(t, w, &category)
	return category.ID
}

// createNote creates a note through the API and returns its id.
func createNote(t *testing.T, router *gin.Engine, token, title, content, categoryID string) string {
	t.Helper()

	w := doRequest(t, router, http.MethodPost, "/api/notes", token, gin.H{
		"title":    title,
		"content":  content,
		"category": categoryID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("note creation failed with %d: %s", w.Code, w.Body.String())
	}

	var note struct {
		ID string `json:"id"`
	}
	decodeData(t, w, &note)
	return note.ID
}
