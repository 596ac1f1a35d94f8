package services

import (
	"context"
	"log"
	"time"
)

// The generic apology returned when an upstream service fails. Every
// non-validation failure collapses to this message.
const apologyMessage = "😔 Sorry, I'm having trouble answering right now. Please try again in a moment."

// Answerer is the QA pipeline as the chatbot sees it.
type Answerer interface {
	Answer(ctx context.Context, question string) (string, error)
}

// ChatReply is the bot's answer to one message.
type ChatReply struct {
	SessionID    string   `json:"session_id"`
	Response     string   `json:"response"`
	Intent       string   `json:"intent"`
	Photos       []string `json:"photos,omitempty"`
	ComplaintURL string   `json:"complaint_url,omitempty"`
	ComplaintID  string   `json:"complaint_id,omitempty"`
	NeedsInput   bool     `json:"needs_input"`
}

// ChatbotService routes each incoming message: an active complaint
// dialogue always consumes the turn; otherwise the intent classifier
// picks menu, photos, complaint intake or the QA fallback.
type ChatbotService struct {
	sessionManager *SessionManager
	complaintFlow  *ComplaintFlowService
	menuService    *MenuService
	photoService   *PhotoService
	qaService      Answerer
}

// NewChatbotService creates the top-level chatbot service
func NewChatbotService(
	sessionManager *SessionManager,
	complaintFlow *ComplaintFlowService,
	menuService *MenuService,
	photoService *PhotoService,
	qaService Answerer,
) *ChatbotService {
	return &ChatbotService{
		sessionManager: sessionManager,
		complaintFlow:  complaintFlow,
		menuService:    menuService,
		photoService:   photoService,
		qaService:      qaService,
	}
}

// ProcessMessage handles one conversation turn for the given session.
func (s *ChatbotService) ProcessMessage(ctx context.Context, sessionID, channel, message string) *ChatReply {
	session := s.sessionManager.GetOrCreateSession(sessionID, channel)

	// An active complaint dialogue owns the turn
	if s.complaintFlow.InFlow(session) {
		reply, err := s.complaintFlow.ProcessStep(session, message)
		if err != nil {
			log.Printf("Complaint step failed for session %s: %v", sessionID, err)
			return &ChatReply{SessionID: sessionID, Response: apologyMessage, Intent: string(IntentComplaint)}
		}
		return &ChatReply{
			SessionID:    sessionID,
			Response:     reply.Message,
			Intent:       string(IntentComplaint),
			ComplaintURL: reply.ComplaintURL,
			ComplaintID:  reply.ComplaintID,
			NeedsInput:   reply.NeedsInput,
		}
	}

	intent := Classify(message)
	log.Printf("Session %s: intent %s for message %q", sessionID, intent, message)

	switch intent {
	case IntentComplaint:
		reply := s.complaintFlow.Start(session, message)
		return &ChatReply{
			SessionID:  sessionID,
			Response:   reply.Message,
			Intent:     string(IntentComplaint),
			NeedsInput: reply.NeedsInput,
		}

	case IntentMenu:
		text, err := s.menuService.TodayMenu(time.Now())
		if err != nil {
			log.Printf("Menu lookup failed: %v", err)
			return &ChatReply{SessionID: sessionID, Response: apologyMessage, Intent: string(IntentMenu)}
		}
		return &ChatReply{SessionID: sessionID, Response: text, Intent: string(IntentMenu)}

	case IntentPhotos:
		photos := s.photoService.HandlePhotoQuery(message)
		if len(photos) == 0 {
			return &ChatReply{
				SessionID: sessionID,
				Response:  "I couldn't find any photos matching that. You can ask for rooms, mess, facilities or exterior photos.",
				Intent:    string(IntentPhotos),
			}
		}
		return &ChatReply{
			SessionID: sessionID,
			Response:  "Here are the photos you asked for:",
			Intent:    string(IntentPhotos),
			Photos:    photos,
		}

	default:
		answer, err := s.qaService.Answer(ctx, message)
		if err != nil {
			log.Printf("QA pipeline failed for session %s: %v", sessionID, err)
			return &ChatReply{SessionID: sessionID, Response: apologyMessage, Intent: string(IntentQA)}
		}
		return &ChatReply{SessionID: sessionID, Response: answer, Intent: string(IntentQA)}
	}
}
