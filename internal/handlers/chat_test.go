package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryabhatt-hostel/arya-backend/internal/routes"
	"github.com/aryabhatt-hostel/arya-backend/internal/services"
	"github.com/aryabhatt-hostel/arya-backend/internal/storage"
)

type fakeAnswerer struct {
	answer string
	err    error
}

func (f *fakeAnswerer) Answer(ctx context.Context, question string) (string, error) {
	return f.answer, f.err
}

func newTestApp(t *testing.T, qa services.Answerer) *fiber.App {
	t.Helper()

	store := storage.NewMemoryStore()
	sessionManager := services.NewSessionManager()
	complaintFlow := services.NewComplaintFlowService(store, sessionManager, "https://grs.ietlucknow.ac.in/open.php")
	menuService := services.NewMenuService(store)
	photoService := services.NewPhotoService(t.TempDir(), "")
	require.NoError(t, photoService.Setup())

	chatbot := services.NewChatbotService(sessionManager, complaintFlow, menuService, photoService, qa)

	app := fiber.New()
	routes.SetupRoutes(app, store, chatbot, menuService, photoService, nil)
	return app
}

func postChat(t *testing.T, app *fiber.App, sessionID, message string) (int, map[string]interface{}) {
	t.Helper()

	body, err := json.Marshal(map[string]string{"session_id": sessionID, "message": message})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

// TestHandleChat_QAFallback routes a general question to the QA pipeline.
func TestHandleChat_QAFallback(t *testing.T) {
	app := newTestApp(t, &fakeAnswerer{answer: "The warden's office is on the ground floor."})

	status, reply := postChat(t, app, "", "where is the warden's office?")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "qa", reply["intent"])
	assert.Equal(t, "The warden's office is on the ground floor.", reply["response"])
	assert.NotEmpty(t, reply["session_id"], "a session id should be minted")
}

// TestHandleChat_UpstreamFailureApologizes maps QA errors to the generic
// apology message.
func TestHandleChat_UpstreamFailureApologizes(t *testing.T) {
	app := newTestApp(t, &fakeAnswerer{err: assert.AnError})

	status, reply := postChat(t, app, "s1", "tell me about the hostel")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, reply["response"], "Sorry")
}

// TestHandleChat_ComplaintDialogueAcrossTurns drives a full complaint
// registration through the HTTP surface.
func TestHandleChat_ComplaintDialogueAcrossTurns(t *testing.T) {
	app := newTestApp(t, &fakeAnswerer{answer: "unused"})

	_, reply := postChat(t, app, "sess-9", "the wifi is not working")
	assert.Equal(t, "complaint", reply["intent"])
	assert.Contains(t, reply["response"], "full name")

	_, reply = postChat(t, app, "sess-9", "Ravi Kumar")
	assert.Contains(t, reply["response"], "email")

	_, reply = postChat(t, app, "sess-9", "ravi@ietlucknow.ac.in")
	assert.Contains(t, reply["response"], "phone")

	_, reply = postChat(t, app, "sess-9", "9876543210")
	assert.Contains(t, reply["response"], "room")

	_, reply = postChat(t, app, "sess-9", "B-204")
	assert.Contains(t, reply["response"], "Complaint Summary")
	assert.NotEmpty(t, reply["complaint_url"])
	assert.Contains(t, reply["complaint_url"], "ravi%40ietlucknow.ac.in")
}

// TestHandleChat_MenuIntent answers menu questions from the seeded menu.
func TestHandleChat_MenuIntent(t *testing.T) {
	app := newTestApp(t, &fakeAnswerer{answer: "unused"})

	status, reply := postChat(t, app, "", "what's on the mess menu today?")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "menu", reply["intent"])
	assert.Contains(t, reply["response"], "Menu")
}

// TestHandleChat_RejectsEmptyMessage returns 400 without a message.
func TestHandleChat_RejectsEmptyMessage(t *testing.T) {
	app := newTestApp(t, &fakeAnswerer{})

	status, _ := postChat(t, app, "s1", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

// TestGetComplaintEndpoint_NotFound returns 404 for unknown complaint IDs.
func TestGetComplaintEndpoint_NotFound(t *testing.T) {
	app := newTestApp(t, &fakeAnswerer{})

	req := httptest.NewRequest(http.MethodGet, "/api/complaints/CMP00042", nil)
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// TestMenuEndpoints_ServeSeededWeek exercises the menu lookups.
func TestMenuEndpoints_ServeSeededWeek(t *testing.T) {
	app := newTestApp(t, &fakeAnswerer{})

	req := httptest.NewRequest(http.MethodGet, "/api/menu/week", nil)
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/menu/Tuesday", nil)
	resp, err = app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/menu/Funday", nil)
	resp, err = app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
