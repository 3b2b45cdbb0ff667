package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavor118/notes/internal/bootstrap"
	"github.com/tavor118/notes/internal/config"
	"github.com/tavor118/notes/internal/dto"
	"github.com/tavor118/notes/internal/pkg/serverutils"
	"github.com/tavor118/notes/internal/server"
	"github.com/tavor118/notes/pkg/database"
)

// The suite runs against a real database and is skipped unless
// DB_CONNECTION_STRING is set.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: could not load ../../.env: %v", err)
	}
	if os.Getenv("DB_CONNECTION_STRING") == "" {
		t.Skip("DB_CONNECTION_STRING not set, skipping integration tests")
	}
	if os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", "integration_test_secret")
	}
	os.Setenv("UPLOAD_DIR", t.TempDir())

	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	require.NoError(t, err, "failed to connect to DB")

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	return srv.GetApp()
}

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

func registerUser(t *testing.T, app *fiber.App, username string) uint {
	t.Helper()

	body, _ := json.Marshal(dto.RegisterRequest{Username: username, Password: "s3cretpass"})
	req := httptest.NewRequest("POST", "/api/user_registration", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var res serverutils.Response[dto.RegisterResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res.Data.Id
}

func login(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	body, _ := json.Marshal(dto.LoginRequest{Username: username, Password: "s3cretpass"})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res serverutils.Response[dto.LoginResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	require.NotEmpty(t, res.Data.AccessToken)
	return res.Data.AccessToken
}

func jsonRequest(method, target, token string, payload interface{}) *http.Request {
	var body io.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestRegistrationAndLogin(t *testing.T) {
	app := setupApp(t)

	username := uniqueName("mike")
	id := registerUser(t, app, username)
	assert.NotZero(t, id)

	token := login(t, app, username)
	assert.NotEmpty(t, token)
}

func TestRegistrationRejectsDuplicateUsername(t *testing.T) {
	app := setupApp(t)

	username := uniqueName("dup")
	registerUser(t, app, username)

	body, _ := json.Marshal(dto.RegisterRequest{Username: username, Password: "s3cretpass"})
	req := httptest.NewRequest("POST", "/api/user_registration", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLabelRequiresAuth(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/labels", "", dto.CreateLabelRequest{Title: "todo"}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	username := uniqueName("labeler")
	registerUser(t, app, username)
	token := login(t, app, username)

	resp, err = app.Test(jsonRequest("POST", "/api/labels", token, dto.CreateLabelRequest{Title: "todo"}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCategoryNesting(t *testing.T) {
	app := setupApp(t)

	username := uniqueName("cat")
	registerUser(t, app, username)
	token := login(t, app, username)

	resp, err := app.Test(jsonRequest("POST", "/api/categories", token, dto.CreateCategoryRequest{Title: "Work"}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var parentRes serverutils.Response[dto.CategoryResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parentRes))
	parentId := parentRes.Data.Id

	resp, err = app.Test(jsonRequest("POST", "/api/categories", token, dto.CreateCategoryRequest{Title: "Projects", Parent: &parentId}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var childRes serverutils.Response[dto.CategoryResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&childRes))
	require.NotNil(t, childRes.Data.Parent)
	assert.Equal(t, parentId, *childRes.Data.Parent)

	resp, err = app.Test(jsonRequest("GET", "/api/categories", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listRes serverutils.Response[[]dto.CategoryTreeNode]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listRes))

	var parentNode *dto.CategoryTreeNode
	for i := range listRes.Data {
		if listRes.Data[i].Id == parentId {
			parentNode = &listRes.Data[i]
			break
		}
	}
	require.NotNil(t, parentNode, "parent category missing from tree")
	require.Len(t, parentNode.SubCategories, 1)
	assert.Equal(t, childRes.Data.Id, parentNode.SubCategories[0].Id)
}

func TestCategoryRejectsSelfParent(t *testing.T) {
	app := setupApp(t)

	username := uniqueName("loop")
	registerUser(t, app, username)
	token := login(t, app, username)

	resp, err := app.Test(jsonRequest("POST", "/api/categories", token, dto.CreateCategoryRequest{Title: "Solo"}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created serverutils.Response[dto.CategoryResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	id := created.Data.Id

	target := fmt.Sprintf("/api/categories/%d", id)
	resp, err = app.Test(jsonRequest("PUT", target, token, dto.UpdateCategoryRequest{Title: "Solo", Parent: &id}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestNoteUpdateReplacesWholeResource(t *testing.T) {
	app := setupApp(t)

	username := uniqueName("writer")
	registerUser(t, app, username)
	token := login(t, app, username)

	title := "First draft"
	resp, err := app.Test(jsonRequest("POST", "/api/my_notes", token, dto.CreateNoteRequest{Title: &title, Content: "hello"}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created serverutils.Response[dto.NoteListItem]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "First draft", created.Data.Title)

	// Update without a title resets it to the placeholder.
	target := fmt.Sprintf("/api/my_notes/%d", created.Data.Id)
	resp, err = app.Test(jsonRequest("PUT", target, token, dto.UpdateNoteRequest{Content: "hello again"}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated serverutils.Response[dto.NoteListItem]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, "Untitled", updated.Data.Title)
	assert.Equal(t, "hello again", updated.Data.Content)
}

func TestDelegateCanEditButNotDelete(t *testing.T) {
	app := setupApp(t)

	ownerName := uniqueName("owner")
	delegateName := uniqueName("delegate")
	registerUser(t, app, ownerName)
	delegateId := registerUser(t, app, delegateName)
	ownerToken := login(t, app, ownerName)
	delegateToken := login(t, app, delegateName)

	title := "Shared"
	resp, err := app.Test(jsonRequest("POST", "/api/my_notes", ownerToken, dto.CreateNoteRequest{
		Title:     &title,
		Content:   "shared content",
		Delegated: []uint{delegateId},
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created serverutils.Response[dto.NoteListItem]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	noteId := created.Data.Id
	target := fmt.Sprintf("/api/my_notes/%d", noteId)

	// Delegate sees the note in their own listing.
	resp, err = app.Test(jsonRequest("GET", "/api/my_notes", delegateToken, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listRes serverutils.Response[[]dto.NoteListItem]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listRes))
	found := false
	for _, item := range listRes.Data {
		if item.Id == noteId {
			found = true
		}
	}
	assert.True(t, found, "delegated note missing from delegate listing")

	// Delegate may edit.
	resp, err = app.Test(jsonRequest("PUT", target, delegateToken, dto.UpdateNoteRequest{
		Title:     &title,
		Content:   "edited by delegate",
		Delegated: []uint{delegateId},
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Delegate may not delete.
	resp, err = app.Test(jsonRequest("DELETE", target, delegateToken, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// The owner may.
	resp, err = app.Test(jsonRequest("DELETE", target, ownerToken, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestStrangerCannotSeeNote(t *testing.T) {
	app := setupApp(t)

	ownerName := uniqueName("author")
	strangerName := uniqueName("stranger")
	registerUser(t, app, ownerName)
	registerUser(t, app, strangerName)
	ownerToken := login(t, app, ownerName)
	strangerToken := login(t, app, strangerName)

	resp, err := app.Test(jsonRequest("POST", "/api/my_notes", ownerToken, dto.CreateNoteRequest{Content: "private"}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created serverutils.Response[dto.NoteListItem]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	target := fmt.Sprintf("/api/my_notes/%d", created.Data.Id)
	resp, err = app.Test(jsonRequest("GET", target, strangerToken, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestPublicNotesNeedNoAuth(t *testing.T) {
	app := setupApp(t)

	ownerName := uniqueName("publisher")
	registerUser(t, app, ownerName)
	token := login(t, app, ownerName)

	title := "Readable by anyone"
	resp, err := app.Test(jsonRequest("POST", "/api/my_notes", token, dto.CreateNoteRequest{Title: &title, Content: "open content"}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created serverutils.Response[dto.NoteListItem]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	target := fmt.Sprintf("/api/notes/%d", created.Data.Id)
	resp, err = app.Test(jsonRequest("GET", target, "", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail serverutils.Response[dto.PublicNoteDetail]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&detail))
	assert.Equal(t, "Readable by anyone", detail.Data.Title)
	assert.Equal(t, "open content", detail.Data.Content)
	assert.Equal(t, ownerName, detail.Data.Owner)
}

func uploadAttachment(t *testing.T, app *fiber.App, token, title string) dto.AttachmentResponse {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("title", title))
	part, err := writer.CreateFormFile("file", "photo.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/attachments", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var res serverutils.Response[dto.AttachmentResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res.Data
}

func TestAttachmentOwnerScoping(t *testing.T) {
	app := setupApp(t)

	ownerName := uniqueName("uploader")
	otherName := uniqueName("other")
	registerUser(t, app, ownerName)
	registerUser(t, app, otherName)
	ownerToken := login(t, app, ownerName)
	otherToken := login(t, app, otherName)

	attachment := uploadAttachment(t, app, ownerToken, "vacation photo")
	assert.Equal(t, "vacation photo", attachment.Title)
	assert.True(t, strings.Contains(attachment.File, ownerName), "file path should be keyed by username")

	target := fmt.Sprintf("/api/attachments/%d", attachment.Id)

	// Another user cannot see or delete it.
	resp, err := app.Test(jsonRequest("GET", target, otherToken, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = app.Test(jsonRequest("DELETE", target, otherToken, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// The owner can.
	resp, err = app.Test(jsonRequest("DELETE", target, ownerToken, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(jsonRequest("GET", target, ownerToken, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUntitledAttachmentGetsDefaultName(t *testing.T) {
	app := setupApp(t)

	username := uniqueName("nameless")
	registerUser(t, app, username)
	token := login(t, app, username)

	attachment := uploadAttachment(t, app, token, "")
	assert.Equal(t, "No name", attachment.Title)
}

func TestCategoryDeleteOrphansChildren(t *testing.T) {
	app := setupApp(t)

	username := uniqueName("pruner")
	registerUser(t, app, username)
	token := login(t, app, username)

	resp, err := app.Test(jsonRequest("POST", "/api/categories", token, dto.CreateCategoryRequest{Title: "Doomed"}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var parent serverutils.Response[dto.CategoryResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parent))
	parentId := parent.Data.Id

	resp, err = app.Test(jsonRequest("POST", "/api/categories", token, dto.CreateCategoryRequest{Title: "Survivor", Parent: &parentId}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var child serverutils.Response[dto.CategoryResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&child))

	// A note filed under the doomed category.
	resp, err = app.Test(jsonRequest("POST", "/api/my_notes", token, dto.CreateNoteRequest{
		Content:  "filed",
		Category: []uint{parentId},
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var note serverutils.Response[dto.NoteListItem]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&note))

	target := fmt.Sprintf("/api/categories/%d", parentId)
	resp, err = app.Test(jsonRequest("DELETE", target, token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// The child survives as a root.
	resp, err = app.Test(jsonRequest("GET", "/api/categories", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tree serverutils.Response[[]dto.CategoryTreeNode]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tree))

	var childNode *dto.CategoryTreeNode
	for i := range tree.Data {
		if tree.Data[i].Id == child.Data.Id {
			childNode = &tree.Data[i]
		}
		assert.NotEqual(t, parentId, tree.Data[i].Id, "deleted category still listed")
	}
	require.NotNil(t, childNode, "orphaned child missing from tree roots")
	assert.Nil(t, childNode.Parent)

	// The note dropped the dead category link.
	noteTarget := fmt.Sprintf("/api/my_notes/%d", note.Data.Id)
	resp, err = app.Test(jsonRequest("GET", noteTarget, token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var detail serverutils.Response[dto.NoteDetailResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&detail))
	assert.Empty(t, detail.Data.Note.Category)
}

func TestLabelDeleteDetachesFromNotes(t *testing.T) {
	app := setupApp(t)

	username := uniqueName("tagger")
	registerUser(t, app, username)
	token := login(t, app, username)

	resp, err := app.Test(jsonRequest("POST", "/api/labels", token, dto.CreateLabelRequest{Title: "ephemeral"}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var label serverutils.Response[dto.LabelSummary]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&label))

	resp, err = app.Test(jsonRequest("POST", "/api/my_notes", token, dto.CreateNoteRequest{
		Content: "tagged",
		Label:   []uint{label.Data.Id},
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var note serverutils.Response[dto.NoteListItem]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&note))
	require.Len(t, note.Data.Label, 1)

	target := fmt.Sprintf("/api/labels/%d", label.Data.Id)
	resp, err = app.Test(jsonRequest("DELETE", target, token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	noteTarget := fmt.Sprintf("/api/my_notes/%d", note.Data.Id)
	resp, err = app.Test(jsonRequest("GET", noteTarget, token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var detail serverutils.Response[dto.NoteDetailResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&detail))
	assert.Empty(t, detail.Data.Note.Label, "deleted label still linked to note")
}

func TestColorDeleteClearsNoteColor(t *testing.T) {
	app := setupApp(t)

	username := uniqueName("painter")
	registerUser(t, app, username)
	token := login(t, app, username)

	resp, err := app.Test(jsonRequest("POST", "/api/colors", token, dto.CreateColorRequest{Color: "#ABCDEF"}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var color serverutils.Response[dto.ColorResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&color))

	resp, err = app.Test(jsonRequest("POST", "/api/my_notes", token, dto.CreateNoteRequest{
		Content: "painted",
		Color:   &color.Data.Id,
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var note serverutils.Response[dto.NoteListItem]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&note))
	require.NotNil(t, note.Data.Color)

	target := fmt.Sprintf("/api/colors/%d", color.Data.Id)
	resp, err = app.Test(jsonRequest("DELETE", target, token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	noteTarget := fmt.Sprintf("/api/my_notes/%d", note.Data.Id)
	resp, err = app.Test(jsonRequest("GET", noteTarget, token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var detail serverutils.Response[dto.NoteDetailResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&detail))
	assert.Nil(t, detail.Data.Note.Color, "deleted color still set on note")
}

func TestDelegateCanAttachOwnFile(t *testing.T) {
	app := setupApp(t)

	ownerName := uniqueName("host")
	delegateName := uniqueName("helper")
	registerUser(t, app, ownerName)
	delegateId := registerUser(t, app, delegateName)
	ownerToken := login(t, app, ownerName)
	delegateToken := login(t, app, delegateName)

	resp, err := app.Test(jsonRequest("POST", "/api/my_notes", ownerToken, dto.CreateNoteRequest{
		Content:   "collaborative",
		Delegated: []uint{delegateId},
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var note serverutils.Response[dto.NoteListItem]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&note))

	attachment := uploadAttachment(t, app, delegateToken, "delegate upload")

	target := fmt.Sprintf("/api/my_notes/%d", note.Data.Id)
	resp, err = app.Test(jsonRequest("PUT", target, delegateToken, dto.UpdateNoteRequest{
		Content:   "collaborative",
		File:      []uint{attachment.Id},
		Delegated: []uint{delegateId},
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated serverutils.Response[dto.NoteListItem]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	require.Len(t, updated.Data.File, 1)
	assert.Equal(t, attachment.Id, updated.Data.File[0].Id)
}
