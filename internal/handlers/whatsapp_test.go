package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryabhatt-hostel/arya-backend/internal/handlers"
	"github.com/aryabhatt-hostel/arya-backend/internal/services"
	"github.com/aryabhatt-hostel/arya-backend/internal/storage"
)

type fakeWhatsAppSender struct {
	messages []string
	media    []string
}

func (f *fakeWhatsAppSender) SendWhatsAppMessage(to string, message string) error {
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeWhatsAppSender) SendWhatsAppMedia(to string, message string, mediaURL string) error {
	f.media = append(f.media, mediaURL)
	return nil
}

func newWhatsAppTestApp(t *testing.T, photoBaseURL string, sender handlers.WhatsAppSender) *fiber.App {
	t.Helper()

	store := storage.NewMemoryStore()
	sessionManager := services.NewSessionManager()
	complaintFlow := services.NewComplaintFlowService(store, sessionManager, "https://grs.ietlucknow.ac.in/open.php")
	menuService := services.NewMenuService(store)

	root := t.TempDir()
	photoService := services.NewPhotoService(root, photoBaseURL)
	require.NoError(t, photoService.Setup())
	for _, name := range []string{"single.jpg", "double.jpg", "triple.jpg", "quad.jpg"} {
		path := filepath.Join(root, "rooms", "rooms", name)
		require.NoError(t, os.WriteFile(path, []byte("img"), 0o644))
	}

	chatbot := services.NewChatbotService(sessionManager, complaintFlow, menuService, photoService, &fakeAnswerer{answer: "unused"})

	app := fiber.New()
	handler := handlers.NewWhatsAppHandler(chatbot, sender)
	app.Post("/webhook/whatsapp", handler.HandleWebhook)
	return app
}

func postWhatsApp(t *testing.T, app *fiber.App, from, body string) int {
	t.Helper()

	form := url.Values{}
	form.Set("From", from)
	form.Set("Body", body)

	req := httptest.NewRequest(http.MethodPost, "/webhook/whatsapp", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

// TestHandleWebhook_SendsPhotoMedia attaches requested photos as media
// messages, capped to Twilio's attachment limit.
func TestHandleWebhook_SendsPhotoMedia(t *testing.T) {
	sender := &fakeWhatsAppSender{}
	app := newWhatsAppTestApp(t, "https://photos.example/hostel", sender)

	status := postWhatsApp(t, app, "whatsapp:+919876543210", "Show me the hostel rooms")
	assert.Equal(t, http.StatusOK, status)

	require.Len(t, sender.messages, 1)
	assert.Contains(t, sender.messages[0], "photos")

	// Four photos exist but only three ride along
	require.Len(t, sender.media, 3)
	for _, mediaURL := range sender.media {
		assert.True(t, strings.HasPrefix(mediaURL, "https://photos.example/hostel/rooms/rooms/"), mediaURL)
	}
}

// TestHandleWebhook_NoBaseURLFallsBackToText points users at the web
// chat when photos cannot be served as fetchable URLs.
func TestHandleWebhook_NoBaseURLFallsBackToText(t *testing.T) {
	sender := &fakeWhatsAppSender{}
	app := newWhatsAppTestApp(t, "", sender)

	status := postWhatsApp(t, app, "whatsapp:+919876543210", "Show me the hostel rooms")
	assert.Equal(t, http.StatusOK, status)

	require.Len(t, sender.messages, 1)
	assert.Contains(t, sender.messages[0], "web chat")
	assert.Empty(t, sender.media)
}

// TestHandleWebhook_StartsComplaintDialogue keys the session by the
// sender's phone number and opens the collection dialogue.
func TestHandleWebhook_StartsComplaintDialogue(t *testing.T) {
	sender := &fakeWhatsAppSender{}
	app := newWhatsAppTestApp(t, "", sender)

	status := postWhatsApp(t, app, "whatsapp:+919876543210", "the fan in my room is broken")
	assert.Equal(t, http.StatusOK, status)

	require.Len(t, sender.messages, 1)
	assert.Contains(t, sender.messages[0], "full name")
	assert.Empty(t, sender.media)
}

// TestHandleWebhook_NilSenderStillAcknowledges accepts the webhook even
// when Twilio is not configured.
func TestHandleWebhook_NilSenderStillAcknowledges(t *testing.T) {
	app := newWhatsAppTestApp(t, "", nil)

	status := postWhatsApp(t, app, "whatsapp:+919876543210", "what's on the menu today?")
	assert.Equal(t, http.StatusOK, status)
}
