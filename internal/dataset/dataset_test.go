package dataset

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type stringSource struct {
	data string
}

func (s stringSource) Open(ctx context.Context) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.data)), nil
}

func TestLoadStandardColumns(t *testing.T) {
	csv := "instruction,response,category,intent\n" +
		"how do I open an account,visit any branch with your ID,account,open_account\n" +
		"my card is blocked,call the card desk,CARD,blocked_card\n"
	ds, err := Load(context.Background(), stringSource{data: csv})
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())

	rows := ds.Rows()
	require.Equal(t, "how do I open an account", rows[0].Question)
	require.Equal(t, "visit any branch with your ID", rows[0].Answer)
	// categories are uppercased on load
	require.Equal(t, "ACCOUNT", rows[0].Category)
	require.Equal(t, "CARD", rows[1].Category)
	require.Equal(t, "open_account", rows[0].Intent)
}

func TestLoadAlternateColumnNames(t *testing.T) {
	csv := "query,answer\n" +
		"where is my statement,check the app under documents\n"
	ds, err := Load(context.Background(), stringSource{data: csv})
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	require.Equal(t, "where is my statement", ds.Rows()[0].Question)
	// missing category defaults to CONTACT
	require.Equal(t, "CONTACT", ds.Rows()[0].Category)
}

func TestLoadSkipsIncompleteRows(t *testing.T) {
	csv := "question,answer,category\n" +
		"complete row,an answer,LOAN\n" +
		",missing question,LOAN\n" +
		"missing answer,,LOAN\n"
	ds, err := Load(context.Background(), stringSource{data: csv})
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
}

func TestLoadRejectsUnknownHeader(t *testing.T) {
	csv := "foo,bar\na,b\n"
	_, err := Load(context.Background(), stringSource{data: csv})
	require.Error(t, err)
}

func TestByCategory(t *testing.T) {
	csv := "question,answer,category\n" +
		"q1,a1,LOAN\n" +
		"q2,a2,CARD\n" +
		"q3,a3,LOAN\n"
	ds, err := Load(context.Background(), stringSource{data: csv})
	require.NoError(t, err)

	loans := ds.ByCategory("LOAN")
	require.Len(t, loans, 2)
	require.Equal(t, "q1", loans[0].Question)

	// an unknown department falls back to the whole corpus
	all := ds.ByCategory("PASSWORD")
	require.Len(t, all, 3)

	// blank scope also means everything
	require.Len(t, ds.ByCategory(""), 3)
}

func TestFileSourceRegistered(t *testing.T) {
	src, err := NewSource(SourceConfig{Type: "file", Path: "/tmp/nope.csv"})
	require.NoError(t, err)
	require.NotNil(t, src)

	_, err = NewSource(SourceConfig{Type: "carrier-pigeon"})
	require.Error(t, err)
}
