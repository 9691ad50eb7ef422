package lang

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

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

func TestToEnglishNilGeneratorPassesThrough(t *testing.T) {
	var tr *Translator
	code, english, outcome := tr.ToEnglish(context.Background(), "nataka mkopo")
	require.Equal(t, CodeEnglish, code)
	require.Equal(t, "nataka mkopo", english)
	require.Equal(t, OutcomeSkipped, outcome)

	tr = NewTranslator(nil, time.Second)
	code, english, outcome = tr.ToEnglish(context.Background(), "nataka mkopo")
	require.Equal(t, CodeEnglish, code)
	require.Equal(t, "nataka mkopo", english)
	require.Equal(t, OutcomeSkipped, outcome)
}

func TestToEnglishParsesDetection(t *testing.T) {
	gen := &fakeGenerator{reply: `{"lang":"sw","english":"I want a loan"}`}
	tr := NewTranslator(gen, time.Second)
	code, english, outcome := tr.ToEnglish(context.Background(), "nataka mkopo")
	require.Equal(t, CodeSwahili, code)
	require.Equal(t, "I want a loan", english)
	require.Equal(t, OutcomeTranslated, outcome)
	require.Equal(t, 1, gen.calls)
}

func TestToEnglishStripsCodeFences(t *testing.T) {
	gen := &fakeGenerator{reply: "```json\n{\"lang\":\"ar\",\"english\":\"where is the branch\"}\n```"}
	tr := NewTranslator(gen, time.Second)
	code, english, outcome := tr.ToEnglish(context.Background(), "أين الفرع")
	require.Equal(t, CodeArabic, code)
	require.Equal(t, "where is the branch", english)
	require.Equal(t, OutcomeTranslated, outcome)
}

func TestToEnglishMalformedResponseDegrades(t *testing.T) {
	gen := &fakeGenerator{reply: "sorry, I cannot help with that"}
	tr := NewTranslator(gen, time.Second)
	code, english, outcome := tr.ToEnglish(context.Background(), "nataka mkopo")
	require.Equal(t, CodeEnglish, code)
	require.Equal(t, "nataka mkopo", english)
	require.Equal(t, OutcomeDegraded, outcome)
}

func TestToEnglishGeneratorErrorDegrades(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("upstream 500")}
	tr := NewTranslator(gen, time.Second)
	code, english, outcome := tr.ToEnglish(context.Background(), "nataka mkopo")
	require.Equal(t, CodeEnglish, code)
	require.Equal(t, "nataka mkopo", english)
	require.Equal(t, OutcomeDegraded, outcome)
}

func TestToEnglishUnknownCodeNormalizes(t *testing.T) {
	gen := &fakeGenerator{reply: `{"lang":"fr","english":"hello"}`}
	tr := NewTranslator(gen, time.Second)
	code, _, _ := tr.ToEnglish(context.Background(), "bonjour")
	require.Equal(t, CodeEnglish, code)
}

func TestToEnglishProtectsPlaceholders(t *testing.T) {
	gen := &fakeGenerator{reply: `{"lang":"sw","english":"send money to @@PH0@@"}`}
	tr := NewTranslator(gen, time.Second)
	_, english, _ := tr.ToEnglish(context.Background(), "tuma pesa kwa {account}")
	require.Equal(t, "send money to {account}", english)
	require.NotContains(t, gen.last, "{account}")
	require.Contains(t, gen.last, "@@PH0@@")
}

func TestFromEnglishSkipsEnglishTarget(t *testing.T) {
	gen := &fakeGenerator{reply: "should not be used"}
	tr := NewTranslator(gen, time.Second)
	out, outcome := tr.FromEnglish(context.Background(), "your balance is low", CodeEnglish)
	require.Equal(t, "your balance is low", out)
	require.Equal(t, OutcomeSkipped, outcome)
	require.Zero(t, gen.calls)
}

func TestFromEnglishTranslates(t *testing.T) {
	gen := &fakeGenerator{reply: "salio lako ni dogo"}
	tr := NewTranslator(gen, time.Second)
	out, outcome := tr.FromEnglish(context.Background(), "your balance is low", CodeSwahili)
	require.Equal(t, "salio lako ni dogo", out)
	require.Equal(t, OutcomeTranslated, outcome)
}

func TestFromEnglishErrorReturnsEnglish(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("timeout")}
	tr := NewTranslator(gen, time.Second)
	out, outcome := tr.FromEnglish(context.Background(), "your balance is low", CodeSomali)
	require.Equal(t, "your balance is low", out)
	require.Equal(t, OutcomeDegraded, outcome)
}
