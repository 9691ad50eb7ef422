package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/barakahq/supportbot/internal/lang"
	"github.com/barakahq/supportbot/internal/model"
	appErr "github.com/barakahq/supportbot/internal/pkg/errors"
	"github.com/barakahq/supportbot/internal/repo"
	"github.com/barakahq/supportbot/internal/routing"
	"github.com/barakahq/supportbot/internal/session"
)

// summaryLimit caps the queue summary; the full text stays on the row.
const summaryLimit = 180

type ComplaintService struct {
	complaints *repo.ComplaintRepo
	sessions   *session.Store
	translator *lang.Translator
	router     *routing.Router
}

func NewComplaintService(complaints *repo.ComplaintRepo, sessions *session.Store, translator *lang.Translator, router *routing.Router) *ComplaintService {
	return &ComplaintService{
		complaints: complaints,
		sessions:   sessions,
		translator: translator,
		router:     router,
	}
}

// ComplaintTicket is what the submitter sees: the ticket plus how it
// was routed.
type ComplaintTicket struct {
	Complaint *model.Complaint `json:"complaint"`
	Routing   routing.Decision `json:"routing"`
}

// Create normalizes the complaint to English, routes it, and files the
// ticket in the original wording. The ticket id sticks to the session
// so the chat surface can show it.
func (s *ComplaintService) Create(ctx context.Context, username, sessionID, text, priority string) (*ComplaintTicket, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, appErr.ErrInvalid
	}
	if priority == "" {
		priority = model.ComplaintPriorityNormal
	}
	if !slices.Contains(model.ComplaintPriorities, priority) {
		return nil, appErr.ErrInvalid
	}

	_, textEN, _ := s.translator.ToEnglish(ctx, text)
	decision := s.router.Route(ctx, textEN)

	now := time.Now().Unix()
	complaint := &model.Complaint{
		Username:   username,
		Text:       text,
		Department: string(decision.Department),
		Status:     model.ComplaintStatusOpen,
		Priority:   priority,
		Summary:    summarize(text),
		Ctime:      now,
		Mtime:      now,
	}
	id, err := s.complaints.Create(ctx, complaint)
	if err != nil {
		return nil, err
	}
	complaint.ID = id

	if sessionID != "" {
		state := s.sessions.Get(sessionID)
		state.ActiveTicket = id
		s.sessions.Put(state)
	}
	return &ComplaintTicket{Complaint: complaint, Routing: decision}, nil
}

func (s *ComplaintService) Get(ctx context.Context, id int64) (*model.Complaint, error) {
	return s.complaints.GetByID(ctx, id)
}

func (s *ComplaintService) List(ctx context.Context, department, status string) ([]model.Complaint, error) {
	department = strings.ToUpper(strings.TrimSpace(department))
	if department != "" && !routing.Valid(routing.Department(department)) {
		return nil, appErr.ErrInvalid
	}
	if status != "" && !slices.Contains(model.ComplaintStatuses, status) {
		return nil, appErr.ErrInvalid
	}
	return s.complaints.List(ctx, department, status)
}

// Update applies the triage fields an agent can touch. Empty fields
// are left alone.
func (s *ComplaintService) Update(ctx context.Context, id int64, status, priority, department, internalNotes string) (*model.Complaint, error) {
	update := map[string]interface{}{}
	if status != "" {
		if !slices.Contains(model.ComplaintStatuses, status) {
			return nil, appErr.ErrInvalid
		}
		update["status"] = status
	}
	if priority != "" {
		if !slices.Contains(model.ComplaintPriorities, priority) {
			return nil, appErr.ErrInvalid
		}
		update["priority"] = priority
	}
	if department != "" {
		department = strings.ToUpper(strings.TrimSpace(department))
		if !routing.Valid(routing.Department(department)) {
			return nil, appErr.ErrInvalid
		}
		update["department"] = department
	}
	if internalNotes != "" {
		update["internal_notes"] = internalNotes
	}
	if len(update) == 0 {
		return nil, appErr.ErrInvalid
	}
	update["mtime"] = time.Now().Unix()
	if err := s.complaints.Update(ctx, id, update); err != nil {
		return nil, err
	}
	return s.complaints.GetByID(ctx, id)
}

func summarize(text string) string {
	runes := []rune(text)
	if len(runes) <= summaryLimit {
		return text
	}
	return string(runes[:summaryLimit]) + "..."
}
