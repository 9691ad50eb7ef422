package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/barakahq/supportbot/internal/ai"
)

// Outcome says what actually happened at the collaborator boundary, so
// callers never have to infer it from a swallowed error.
type Outcome string

const (
	// OutcomeTranslated means the collaborator produced the translation.
	OutcomeTranslated Outcome = "translated"
	// OutcomeSkipped means no call was attempted: no credential
	// configured, or the target language is already English.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeDegraded means a call was attempted and failed; the caller
	// got the untranslated text back.
	OutcomeDegraded Outcome = "degraded"
)

const detectPrompt = `You are a language detector and translator.
Task:
1) Detect the language of the INPUT.
2) Translate the INPUT to English.

Return ONLY valid JSON with keys: lang, english.
lang must be one of: en, sw, am, so, ar.
Preserve any placeholders exactly (tokens like @@PH0@@). Do NOT change them.

INPUT:
%s`

const renderPrompt = `You are a professional translator.
Translate from English to %s.
Rules:
- Output ONLY the translation, no explanations.
- Preserve placeholders exactly (tokens like @@PH0@@). Do NOT change them.
- Keep numbers, currency, and product names unchanged unless the target language normally uses a different script.

%s`

// Translator is the language normalizer. A nil generator is valid and
// turns every call into a pass-through: translation failure is never
// fatal to the conversation.
type Translator struct {
	gen     ai.IGenerator
	timeout time.Duration
}

func NewTranslator(gen ai.IGenerator, timeout time.Duration) *Translator {
	return &Translator{gen: gen, timeout: timeout}
}

type detectResult struct {
	Lang    string `json:"lang"`
	English string `json:"english"`
}

// ToEnglish detects the message language and returns an English
// rendering. On any collaborator failure it degrades to (en, original).
func (t *Translator) ToEnglish(ctx context.Context, text string) (Code, string, Outcome) {
	if t == nil || t.gen == nil {
		return CodeEnglish, text, OutcomeSkipped
	}
	guarded, mapping := Protect(text)
	raw, err := t.generate(ctx, fmt.Sprintf(detectPrompt, guarded))
	if err != nil {
		if err == ai.ErrUnavailable {
			return CodeEnglish, text, OutcomeSkipped
		}
		logutil.GetLogger(ctx).Warn("language detect failed", zap.Error(err))
		return CodeEnglish, text, OutcomeDegraded
	}
	var result detectResult
	if err := json.Unmarshal([]byte(extractJSON(raw)), &result); err != nil {
		logutil.GetLogger(ctx).Warn("language detect returned malformed json", zap.Error(err))
		return CodeEnglish, text, OutcomeDegraded
	}
	code := Normalize(Code(strings.ToLower(strings.TrimSpace(result.Lang))))
	english := result.English
	if english == "" {
		english = guarded
	}
	return code, Restore(english, mapping), OutcomeTranslated
}

// FromEnglish renders the reply in the target language. No-op for
// English; on failure the English text is returned unchanged.
func (t *Translator) FromEnglish(ctx context.Context, english string, target Code) (string, Outcome) {
	if target == CodeEnglish || !IsSupported(target) {
		return english, OutcomeSkipped
	}
	if t == nil || t.gen == nil {
		return english, OutcomeSkipped
	}
	guarded, mapping := Protect(english)
	out, err := t.generate(ctx, fmt.Sprintf(renderPrompt, Name(target), guarded))
	if err != nil {
		if err == ai.ErrUnavailable {
			return english, OutcomeSkipped
		}
		logutil.GetLogger(ctx).Warn("translate reply failed", zap.String("target", string(target)), zap.Error(err))
		return english, OutcomeDegraded
	}
	return Restore(out, mapping), OutcomeTranslated
}

func (t *Translator) generate(ctx context.Context, prompt string) (string, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}
	resp, err := t.gen.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(resp)
	if text == "" {
		return "", fmt.Errorf("empty ai response")
	}
	return text, nil
}

// extractJSON strips markdown fences and anything around the outermost
// object; providers occasionally wrap strict-JSON answers anyway.
func extractJSON(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)
	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start >= 0 && end > start {
		clean = clean[start : end+1]
	}
	return clean
}
