package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/barakahq/supportbot/internal/lang"
	"github.com/barakahq/supportbot/internal/model"
	appErr "github.com/barakahq/supportbot/internal/pkg/errors"
	"github.com/barakahq/supportbot/internal/repo"
	"github.com/barakahq/supportbot/internal/routing"
	"github.com/barakahq/supportbot/internal/session"
	"github.com/barakahq/supportbot/internal/textindex"
)

func newComplaintService(t *testing.T) (*ComplaintService, *session.Store) {
	t.Helper()
	db := newTestDB(t)
	sessions := session.NewStore(16, time.Minute)
	svc := NewComplaintService(
		repo.NewComplaintRepo(db),
		sessions,
		lang.NewTranslator(nil, time.Second),
		routing.NewRouter(textindex.NewCache(16, time.Minute), 0.25),
	)
	return svc, sessions
}

func TestComplaintCreateRoutesAutomatically(t *testing.T) {
	svc, _ := newComplaintService(t)

	ticket, err := svc.Create(context.Background(), "user", "", "the atm swallowed my card and i got no cash", "")
	require.NoError(t, err)
	require.NotZero(t, ticket.Complaint.ID)
	require.Equal(t, "ATM", ticket.Complaint.Department)
	require.Equal(t, model.ComplaintStatusOpen, ticket.Complaint.Status)
	require.Equal(t, model.ComplaintPriorityNormal, ticket.Complaint.Priority)
	require.Equal(t, routing.MethodRule, ticket.Routing.Method)
	require.Equal(t, ticket.Complaint.Text, ticket.Complaint.Summary)
}

func TestComplaintSummaryTruncation(t *testing.T) {
	svc, _ := newComplaintService(t)

	long := strings.Repeat("my transfer failed again ", 20)
	ticket, err := svc.Create(context.Background(), "user", "", long, model.ComplaintPriorityHigh)
	require.NoError(t, err)
	require.Equal(t, strings.TrimSpace(long), ticket.Complaint.Text)
	require.Len(t, []rune(ticket.Complaint.Summary), 183)
	require.True(t, strings.HasSuffix(ticket.Complaint.Summary, "..."))
}

func TestComplaintCreateValidation(t *testing.T) {
	svc, _ := newComplaintService(t)

	_, err := svc.Create(context.Background(), "user", "", "   ", "")
	require.ErrorIs(t, err, appErr.ErrInvalid)

	_, err = svc.Create(context.Background(), "user", "", "real complaint", "Catastrophic")
	require.ErrorIs(t, err, appErr.ErrInvalid)
}

func TestComplaintCreateTracksActiveTicket(t *testing.T) {
	svc, sessions := newComplaintService(t)
	state := sessions.Get("")
	sessions.Put(state)

	ticket, err := svc.Create(context.Background(), "user", state.ID, "my card is blocked", "")
	require.NoError(t, err)
	require.Equal(t, ticket.Complaint.ID, sessions.Get(state.ID).ActiveTicket)
}

func TestComplaintUpdateTriage(t *testing.T) {
	svc, _ := newComplaintService(t)
	ticket, err := svc.Create(context.Background(), "user", "", "loan repayment issue", "")
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), ticket.Complaint.ID,
		model.ComplaintStatusInReview, model.ComplaintPriorityUrgent, "", "agent reviewing")
	require.NoError(t, err)
	require.Equal(t, model.ComplaintStatusInReview, updated.Status)
	require.Equal(t, model.ComplaintPriorityUrgent, updated.Priority)
	require.Equal(t, "agent reviewing", updated.InternalNotes)

	_, err = svc.Update(context.Background(), ticket.Complaint.ID, "Bogus", "", "", "")
	require.ErrorIs(t, err, appErr.ErrInvalid)

	_, err = svc.Update(context.Background(), ticket.Complaint.ID, "", "", "", "")
	require.ErrorIs(t, err, appErr.ErrInvalid)

	_, err = svc.Update(context.Background(), 99999, model.ComplaintStatusResolved, "", "", "")
	require.ErrorIs(t, err, appErr.ErrNotFound)
}

func TestComplaintListFilterValidation(t *testing.T) {
	svc, _ := newComplaintService(t)
	_, err := svc.List(context.Background(), "NOPE", "")
	require.ErrorIs(t, err, appErr.ErrInvalid)

	_, err = svc.List(context.Background(), "", "Weird")
	require.ErrorIs(t, err, appErr.ErrInvalid)

	out, err := svc.List(context.Background(), "ATM", model.ComplaintStatusOpen)
	require.NoError(t, err)
	require.Empty(t, out)
}
