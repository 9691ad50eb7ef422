package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/barakahq/supportbot/internal/dataset"
	"github.com/barakahq/supportbot/internal/repo"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repo.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, repo.ApplyMigrations(db))
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type stringSource struct {
	data string
}

func (s stringSource) Open(ctx context.Context) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.data)), nil
}

func newTestDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	csv := "question,answer,category\n" +
		"how do i reset my password,use the forgot password link in the app,PASSWORD\n" +
		"what are the loan requirements,you need six months of savings history,LOAN\n"
	ds, err := dataset.Load(context.Background(), stringSource{data: csv})
	require.NoError(t, err)
	return ds
}

type fakeGenerator struct {
	reply string
	err   error
	calls int
	last  string
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	g.last = prompt
	return g.reply, g.err
}
