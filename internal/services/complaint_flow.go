package services

import (
	"fmt"
	"log"
	"net/url"
	"regexp"
	"strings"

	"github.com/aryabhatt-hostel/arya-backend/internal/models"
	"github.com/aryabhatt-hostel/arya-backend/internal/storage"
)

// Complaint dialogue steps. The flow only ever moves forward; invalid
// input re-prompts the same step.
const (
	StepCollectName  = "collect_name"
	StepCollectEmail = "collect_email"
	StepCollectPhone = "collect_phone"
	StepCollectRoom  = "collect_room"
	StepComplete     = "complete"
)

const flowComplaint = "complaint"

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// FlowReply is one turn's answer from the complaint flow.
type FlowReply struct {
	Message      string `json:"message"`
	Step         string `json:"step"`
	NeedsInput   bool   `json:"needs_input"`
	ComplaintURL string `json:"complaint_url,omitempty"`
	ComplaintID  string `json:"complaint_id,omitempty"`
}

// ComplaintFlowService drives the multi-turn complaint dialogue and
// finalizes records into the store.
type ComplaintFlowService struct {
	store          storage.Store
	sessionManager *SessionManager
	portalBaseURL  string
}

// NewComplaintFlowService creates a new complaint flow service
func NewComplaintFlowService(store storage.Store, sessionManager *SessionManager, portalBaseURL string) *ComplaintFlowService {
	return &ComplaintFlowService{
		store:          store,
		sessionManager: sessionManager,
		portalBaseURL:  portalBaseURL,
	}
}

// InFlow reports whether the session has an active complaint dialogue.
func (s *ComplaintFlowService) InFlow(session *Session) bool {
	flow, _ := s.sessionManager.CurrentFlow(session)
	return flow == flowComplaint
}

// Start begins collecting complaint details for the session. The
// triggering message doubles as the complaint description.
func (s *ComplaintFlowService) Start(session *Session, complaintText string) *FlowReply {
	category := ComplaintCategory(complaintText)

	s.sessionManager.StartFlow(session, flowComplaint, map[string]interface{}{
		"step":        StepCollectName,
		"description": complaintText,
		"category":    category,
	})

	log.Printf("Started complaint flow for session %s (category: %s)", session.SessionID, category)

	return &FlowReply{
		Message: fmt.Sprintf("I'm sorry to hear about this %s issue. I'll help you register a complaint. "+
			"Let me collect some basic information first.\n\nPlease provide your full name:",
			strings.ToLower(category)),
		Step:       StepCollectName,
		NeedsInput: true,
	}
}

// ProcessStep consumes one user message for the active dialogue. It
// advances to the next step only when the input validates.
func (s *ComplaintFlowService) ProcessStep(session *Session, input string) (*FlowReply, error) {
	_, data := s.sessionManager.CurrentFlow(session)
	if data == nil {
		return &FlowReply{
			Message:    "Please start by describing your complaint.",
			NeedsInput: true,
		}, nil
	}

	if isCancelMessage(input) {
		s.sessionManager.CompleteFlow(session)
		return &FlowReply{
			Message: "Complaint registration cancelled. How else can I help you?",
		}, nil
	}

	step, _ := data["step"].(string)
	input = strings.TrimSpace(input)

	switch step {
	case StepCollectName:
		data["name"] = input
		data["step"] = StepCollectEmail
		return &FlowReply{
			Message:    fmt.Sprintf("Thank you, %s. Now please provide your college email address:", input),
			Step:       StepCollectEmail,
			NeedsInput: true,
		}, nil

	case StepCollectEmail:
		if !ValidateEmail(input) {
			return &FlowReply{
				Message:    "Please provide a valid email address (preferably your college email):",
				Step:       StepCollectEmail,
				NeedsInput: true,
			}, nil
		}
		data["email"] = input
		data["step"] = StepCollectPhone
		return &FlowReply{
			Message:    "Great! Now please provide your phone number:",
			Step:       StepCollectPhone,
			NeedsInput: true,
		}, nil

	case StepCollectPhone:
		if !ValidatePhone(input) {
			return &FlowReply{
				Message:    "Please provide a valid 10-digit phone number:",
				Step:       StepCollectPhone,
				NeedsInput: true,
			}, nil
		}
		data["phone"] = input
		data["step"] = StepCollectRoom
		return &FlowReply{
			Message:    "Thank you! Please provide your room number:",
			Step:       StepCollectRoom,
			NeedsInput: true,
		}, nil

	case StepCollectRoom:
		data["room"] = input
		data["step"] = StepComplete
		return s.complete(session, data)

	default:
		// Unknown step; reset the dialogue rather than wedge the session
		s.sessionManager.CompleteFlow(session)
		return &FlowReply{
			Message:    "Something went wrong with your complaint. Please describe the issue again.",
			NeedsInput: true,
		}, nil
	}
}

// complete finalizes the record, persists it and builds the summary and
// pre-filled portal URL.
func (s *ComplaintFlowService) complete(session *Session, data map[string]interface{}) (*FlowReply, error) {
	name, _ := data["name"].(string)
	email, _ := data["email"].(string)
	phone, _ := data["phone"].(string)
	room, _ := data["room"].(string)
	category, _ := data["category"].(string)
	description, _ := data["description"].(string)

	portalURL := s.BuildPortalURL(name, email, phone, room, category, description)

	complaint := &models.Complaint{
		Name:        name,
		Email:       email,
		Phone:       phone,
		RoomNumber:  room,
		Category:    category,
		Description: description,
		PortalURL:   portalURL,
	}

	created, err := s.store.CreateComplaint(complaint)
	if err != nil {
		log.Printf("Failed to persist complaint for session %s: %v", session.SessionID, err)
		return nil, fmt.Errorf("failed to save complaint: %w", err)
	}

	s.sessionManager.CompleteFlow(session)
	log.Printf("Complaint %s registered for session %s", created.ComplaintID, session.SessionID)

	summary := fmt.Sprintf(`📋 Complaint Summary

Complaint ID: %s
Issue Category: %s
Description: %s

Your Details:
- Name: %s
- Email: %s
- Phone: %s
- Room Number: %s

✅ Next Steps:
1. Click the link below to open the complaint portal
2. The form will try to auto-fill your basic information
3. Please verify the details and add anything missing
4. Submit the complaint to receive a reference number

💡 Tip: Keep this chat open for reference while filling the form!`,
		created.ComplaintID, category, description, name, email, phone, room)

	return &FlowReply{
		Message:      summary,
		Step:         StepComplete,
		NeedsInput:   false,
		ComplaintURL: portalURL,
		ComplaintID:  created.ComplaintID,
	}, nil
}

// BuildPortalURL returns the complaint portal URL with percent-encoded
// query parameters. Field names follow common osTicket form fields, with
// best-effort aliases so at least one set pre-fills.
func (s *ComplaintFlowService) BuildPortalURL(name, email, phone, room, category, description string) string {
	summary := fmt.Sprintf("Room %s - %s", room, description)
	// Truncate on a rune boundary so multi-byte text stays valid UTF-8
	if runes := []rune(summary); len(runes) > 100 {
		summary = string(runes[:100])
	}

	params := url.Values{}
	params.Set("email", email)
	params.Set("name", name)
	params.Set("fullname", name)
	params.Set("phone", phone)
	params.Set("mobile", phone)
	params.Set("subject", summary)
	params.Set("summary", summary)
	params.Set("message", description)
	params.Set("issue", description)
	params.Set("category", category)
	params.Set("location", fmt.Sprintf("Room %s", room))
	params.Set("room", room)

	return s.portalBaseURL + "?" + params.Encode()
}

// ValidateEmail checks basic email format.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePhone accepts 10 digits (Indian mobile) up to 12 with a
// country code; all non-digit characters are ignored.
func ValidatePhone(phone string) bool {
	digits := nonDigitPattern.ReplaceAllString(phone, "")
	return len(digits) >= 10 && len(digits) <= 12
}

func isCancelMessage(input string) bool {
	msg := strings.ToLower(strings.TrimSpace(input))
	return msg == "cancel" || msg == "stop" || msg == "nevermind" || msg == "never mind"
}
