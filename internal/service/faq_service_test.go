package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	appErr "github.com/barakahq/supportbot/internal/pkg/errors"
	"github.com/barakahq/supportbot/internal/repo"
	"github.com/barakahq/supportbot/internal/textindex"
)

func newFaqService(t *testing.T) (*FaqService, *textindex.Cache) {
	t.Helper()
	cache := textindex.NewCache(16, time.Minute)
	return NewFaqService(repo.NewFaqRepo(newTestDB(t)), cache), cache
}

func TestFaqCreateAndList(t *testing.T) {
	svc, _ := newFaqService(t)

	faq, err := svc.Create(context.Background(), "loan", "loan status", "processed within two days", "loans,status", "admin")
	require.NoError(t, err)
	require.NotZero(t, faq.ID)
	// department is normalized to the canonical uppercase code
	require.Equal(t, "LOAN", faq.Department)

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 1)

	scoped, err := svc.List(context.Background(), "LOAN")
	require.NoError(t, err)
	require.Len(t, scoped, 1)

	other, err := svc.List(context.Background(), "CARD")
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestFaqCreateValidation(t *testing.T) {
	svc, _ := newFaqService(t)

	_, err := svc.Create(context.Background(), "NOPE", "q", "a", "", "admin")
	require.ErrorIs(t, err, appErr.ErrInvalid)

	_, err = svc.Create(context.Background(), "LOAN", "  ", "a", "", "admin")
	require.ErrorIs(t, err, appErr.ErrInvalid)

	_, err = svc.Create(context.Background(), "LOAN", "q", "", "", "admin")
	require.ErrorIs(t, err, appErr.ErrInvalid)
}

func TestFaqMutationInvalidatesIndex(t *testing.T) {
	svc, cache := newFaqService(t)

	builds := 0
	build := func() (*textindex.Index, error) {
		builds++
		return textindex.Build([]string{"stale"}), nil
	}
	_, _ = cache.GetOrBuild("custom:LOAN", build)

	_, err := svc.Create(context.Background(), "LOAN", "loan status", "answer", "", "admin")
	require.NoError(t, err)

	// the create dropped the cached index, so the next read rebuilds
	_, _ = cache.GetOrBuild("custom:LOAN", build)
	require.Equal(t, 2, builds)
}

func TestFaqUpdateMoveInvalidatesBothDepartments(t *testing.T) {
	svc, cache := newFaqService(t)
	faq, err := svc.Create(context.Background(), "LOAN", "loan status", "answer", "", "admin")
	require.NoError(t, err)

	build := func() (*textindex.Index, error) { return textindex.Build([]string{"x"}), nil }
	_, _ = cache.GetOrBuild("custom:LOAN", build)
	_, _ = cache.GetOrBuild("custom:CARD", build)

	updated, err := svc.Update(context.Background(), faq.ID, "CARD", "card balance", "check the app", "cards")
	require.NoError(t, err)
	require.Equal(t, "CARD", updated.Department)

	builds := 0
	rebuilt := func() (*textindex.Index, error) {
		builds++
		return textindex.Build([]string{"x"}), nil
	}
	_, _ = cache.GetOrBuild("custom:LOAN", rebuilt)
	_, _ = cache.GetOrBuild("custom:CARD", rebuilt)
	require.Equal(t, 2, builds)
}

func TestFaqDelete(t *testing.T) {
	svc, _ := newFaqService(t)
	faq, err := svc.Create(context.Background(), "LOAN", "loan status", "answer", "", "admin")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), faq.ID))
	require.ErrorIs(t, svc.Delete(context.Background(), faq.ID), appErr.ErrNotFound)

	_, err = svc.Get(context.Background(), faq.ID)
	require.ErrorIs(t, err, appErr.ErrNotFound)
}
