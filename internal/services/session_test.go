package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryabhatt-hostel/arya-backend/internal/services"
)

// TestGetOrCreateSession_ReusesActiveSession verifies the same key maps
// to the same session while it is alive.
func TestGetOrCreateSession_ReusesActiveSession(t *testing.T) {
	sm := services.NewSessionManager()

	first := sm.GetOrCreateSession("user-1", "web")
	first.Context["marker"] = "kept"

	second := sm.GetOrCreateSession("user-1", "web")
	assert.Equal(t, "kept", second.Context["marker"])
	assert.Equal(t, first.SessionID, second.SessionID)
}

// TestExpireSession_RemovesSession verifies a manually expired session
// is gone.
func TestExpireSession_RemovesSession(t *testing.T) {
	sm := services.NewSessionManager()
	sm.GetOrCreateSession("user-2", "whatsapp")

	require.NoError(t, sm.ExpireSession("user-2"))

	_, err := sm.GetSession("user-2")
	assert.Error(t, err)
}

// TestFlowHelpers_RoundTrip checks flow state survives and clears.
func TestFlowHelpers_RoundTrip(t *testing.T) {
	sm := services.NewSessionManager()
	session := sm.GetOrCreateSession("user-3", "web")

	sm.StartFlow(session, "complaint", map[string]interface{}{"step": "collect_name"})

	flow, data := sm.CurrentFlow(session)
	assert.Equal(t, "complaint", flow)
	require.NotNil(t, data)
	assert.Equal(t, "collect_name", data["step"])

	sm.CompleteFlow(session)
	flow, data = sm.CurrentFlow(session)
	assert.Empty(t, flow)
	assert.Nil(t, data)
}

// TestNewSessionID_Unique sanity-checks minted identifiers.
func TestNewSessionID_Unique(t *testing.T) {
	assert.NotEqual(t, services.NewSessionID(), services.NewSessionID())
	assert.NotEmpty(t, services.NewSessionID())
}

// TestGetActiveSessions_CountsLiveSessions verifies monitoring output.
func TestGetActiveSessions_CountsLiveSessions(t *testing.T) {
	sm := services.NewSessionManager()
	sm.GetOrCreateSession("a", "web")
	sm.GetOrCreateSession("b", "web")

	assert.Len(t, sm.GetActiveSessions(), 2)
}
