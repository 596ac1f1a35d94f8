package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session represents one user's ongoing conversation state. The web
// channel keys sessions by a minted UUID, the WhatsApp channel by the
// sender's phone number.
type Session struct {
	SessionID  string                 `json:"session_id"`
	Channel    string                 `json:"channel"` // "web" or "whatsapp"
	CreatedAt  time.Time              `json:"created_at"`
	LastActive time.Time              `json:"last_active"`
	ExpiresAt  time.Time              `json:"expires_at"`
	Context    map[string]interface{} `json:"context"` // For storing conversation context
}

// SessionManager manages user sessions
type SessionManager struct {
	sessions   map[string]*Session // In-memory session storage
	mu         sync.RWMutex
	sessionTTL time.Duration
}

// NewSessionManager creates a new session manager
func NewSessionManager() *SessionManager {
	sm := &SessionManager{
		sessions:   make(map[string]*Session),
		sessionTTL: 30 * time.Minute, // 30 minute session timeout
	}

	// Start cleanup routine
	go sm.cleanupExpiredSessions()

	return sm
}

// NewSessionID mints an identifier for a web session
func NewSessionID() string {
	return uuid.NewString()
}

// GetOrCreateSession returns the active session for the given key,
// creating one when none exists or the old one expired.
func (sm *SessionManager) GetOrCreateSession(sessionID, channel string) *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if session, exists := sm.sessions[sessionID]; exists && time.Now().Before(session.ExpiresAt) {
		session.LastActive = time.Now()
		session.ExpiresAt = time.Now().Add(sm.sessionTTL)
		return session
	}

	session := &Session{
		SessionID:  sessionID,
		Channel:    channel,
		CreatedAt:  time.Now(),
		LastActive: time.Now(),
		ExpiresAt:  time.Now().Add(sm.sessionTTL),
		Context:    make(map[string]interface{}),
	}
	sm.sessions[sessionID] = session
	log.Printf("Session created for %s (%s)", sessionID, channel)

	return session
}

// GetSession retrieves an active session
func (sm *SessionManager) GetSession(sessionID string) (*Session, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[sessionID]
	if !exists {
		return nil, fmt.Errorf("session not found")
	}

	// Check if session expired
	if time.Now().After(session.ExpiresAt) {
		return nil, fmt.Errorf("session expired")
	}

	return session, nil
}

// ExpireSession manually expires a session
func (sm *SessionManager) ExpireSession(sessionID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sessions[sessionID]; !exists {
		return fmt.Errorf("session not found")
	}

	delete(sm.sessions, sessionID)
	log.Printf("Session expired for %s", sessionID)
	return nil
}

// cleanupExpiredSessions runs periodically to clean up expired sessions
func (sm *SessionManager) cleanupExpiredSessions() {
	ticker := time.NewTicker(5 * time.Minute) // Check every 5 minutes
	defer ticker.Stop()

	for range ticker.C {
		sm.mu.Lock()
		for id, session := range sm.sessions {
			if time.Now().After(session.ExpiresAt) {
				delete(sm.sessions, id)
				log.Printf("Cleaned up expired session %s", id)
			}
		}
		sm.mu.Unlock()
	}
}

// GetActiveSessions returns all active sessions (for monitoring)
func (sm *SessionManager) GetActiveSessions() []*Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	activeSessions := []*Session{}
	for _, session := range sm.sessions {
		if time.Now().Before(session.ExpiresAt) {
			activeSessions = append(activeSessions, session)
		}
	}

	return activeSessions
}

// Multi-step flow support for the complaint dialogue

// StartFlow initiates a multi-step interaction
func (sm *SessionManager) StartFlow(session *Session, flowType string, initialData map[string]interface{}) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	session.Context["flow"] = flowType
	session.Context["flow_data"] = initialData
	session.Context["flow_started_at"] = time.Now()
}

// CurrentFlow retrieves the current flow name and its data
func (sm *SessionManager) CurrentFlow(session *Session) (flowType string, data map[string]interface{}) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	flowType, _ = session.Context["flow"].(string)
	data, _ = session.Context["flow_data"].(map[string]interface{})
	return flowType, data
}

// CompleteFlow clears flow state from the session
func (sm *SessionManager) CompleteFlow(session *Session) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(session.Context, "flow")
	delete(session.Context, "flow_data")
	delete(session.Context, "flow_started_at")
}
