package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/barakahq/supportbot/internal/ai"
	"github.com/barakahq/supportbot/internal/dataset"
	"github.com/barakahq/supportbot/internal/lang"
	"github.com/barakahq/supportbot/internal/repo"
	"github.com/barakahq/supportbot/internal/routing"
	"github.com/barakahq/supportbot/internal/textindex"
)

const (
	SourceCustom   = "custom"
	SourceBase     = "base"
	SourceOpenAI   = "openai"
	SourceFallback = "fallback"
)

// Canned replies for the fully degraded path. The cascade never raises;
// when everything else is exhausted the user still gets one of these.
const (
	msgNoGenerator  = "I’m not fully confident yet. Please rephrase or add more detail."
	msgAIFailed     = "AI fallback is unavailable right now. I’ll answer using SACCO FAQs."
	generatorPrompt = "Your name is Baraka. " +
		"You are a helpful Kenyan retail-banking & SACCO support assistant. " +
		"Answer ONLY using the provided context. " +
		"If context is insufficient, ask a short follow-up question. " +
		"Never request PINs or passwords. " +
		"Reply in %s.\n\n" +
		"Customer question (English): %s\n\n" +
		"Context (FAQ snippets, English):\n%s"
)

// RetrievalResult is the final answer for one query, with provenance.
// Generative answers carry no similarity score.
type RetrievalResult struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
	Source string  `json:"source"`
}

type AnswerService struct {
	faqs      *repo.FaqRepo
	base      *dataset.Dataset
	cache     *textindex.Cache
	gen       ai.IGenerator
	customMin float64
	baseMin   float64
	topK      int
}

func NewAnswerService(faqs *repo.FaqRepo, base *dataset.Dataset, cache *textindex.Cache, gen ai.IGenerator, customMin, baseMin float64, topK int) *AnswerService {
	if topK <= 0 {
		topK = 3
	}
	return &AnswerService{
		faqs:      faqs,
		base:      base,
		cache:     cache,
		gen:       gen,
		customMin: customMin,
		baseMin:   baseMin,
		topK:      topK,
	}
}

// Answer walks the retrieval cascade for an already-English query:
// department custom FAQs, then the base corpus, then the generative
// fallback. Each tier either answers or rejects; rejection just means
// the next tier runs. outLang only affects the generative tier, which
// replies in the target language directly; retrieved answers are
// translated by the caller.
func (s *AnswerService) Answer(ctx context.Context, queryEN string, dept routing.Department, outLang lang.Code) *RetrievalResult {
	if result := s.fromCustom(ctx, queryEN, dept); result != nil {
		return result
	}
	if result := s.fromBase(ctx, queryEN, dept); result != nil {
		return result
	}
	return s.fromGenerator(ctx, queryEN, outLang)
}

func (s *AnswerService) fromCustom(ctx context.Context, queryEN string, dept routing.Department) *RetrievalResult {
	faqs, err := s.faqs.List(ctx, string(dept))
	if err != nil {
		logutil.GetLogger(ctx).Error("list custom faqs failed", zap.String("department", string(dept)), zap.Error(err))
		return nil
	}
	if len(faqs) == 0 {
		return nil
	}
	questions := make([]string, 0, len(faqs))
	for _, faq := range faqs {
		questions = append(questions, faq.Question)
	}
	ix, err := s.cache.GetOrBuild(customIndexKey(string(dept)), func() (*textindex.Index, error) {
		return textindex.Build(questions), nil
	})
	if err != nil || ix == nil || ix.Len() == 0 {
		return nil
	}
	best, ok := ix.Best(queryEN)
	// a stale index can outlive a concurrent FAQ mutation, never let
	// its doc ids run past the rows we just fetched
	if !ok || best.Doc >= len(faqs) {
		return nil
	}
	if best.Score < s.customMin {
		return nil
	}
	return &RetrievalResult{Answer: faqs[best.Doc].Answer, Score: best.Score, Source: SourceCustom}
}

func (s *AnswerService) fromBase(ctx context.Context, queryEN string, dept routing.Department) *RetrievalResult {
	scope := string(dept)
	rows := s.base.ByCategory(scope)
	if len(rows) == s.base.Len() {
		scope = "ALL"
	}
	ix, err := s.cache.GetOrBuild(baseIndexKey(scope), func() (*textindex.Index, error) {
		questions := make([]string, 0, len(rows))
		for _, row := range rows {
			questions = append(questions, row.Question)
		}
		return textindex.Build(questions), nil
	})
	if err != nil || ix == nil || ix.Len() == 0 {
		return nil
	}
	best, ok := ix.Best(queryEN)
	if !ok || best.Doc >= len(rows) {
		return nil
	}
	if best.Score < s.baseMin {
		return nil
	}
	return &RetrievalResult{Answer: rows[best.Doc].Answer, Score: best.Score, Source: SourceBase}
}

// fromGenerator is the last tier and always produces an answer. The
// top matches from the whole corpus ride along as context regardless of
// department, the generator is told to answer only from them.
func (s *AnswerService) fromGenerator(ctx context.Context, queryEN string, outLang lang.Code) *RetrievalResult {
	if s.gen == nil {
		return &RetrievalResult{Answer: msgNoGenerator, Score: 0, Source: SourceFallback}
	}
	rows := s.base.Rows()
	ix, err := s.cache.GetOrBuild(baseIndexKey("ALL"), func() (*textindex.Index, error) {
		questions := make([]string, 0, len(rows))
		for _, row := range rows {
			questions = append(questions, row.Question)
		}
		return textindex.Build(questions), nil
	})
	var snippets []string
	if err == nil && ix != nil {
		for _, match := range ix.TopK(queryEN, s.topK) {
			if match.Doc >= len(rows) {
				continue
			}
			snippets = append(snippets, fmt.Sprintf("Q: %s\nA: %s", rows[match.Doc].Question, rows[match.Doc].Answer))
		}
	}
	prompt := fmt.Sprintf(generatorPrompt, lang.Name(outLang), queryEN, strings.Join(snippets, "\n---\n"))
	reply, err := s.gen.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(reply) == "" {
		logutil.GetLogger(ctx).Warn("generative fallback failed", zap.Error(err))
		return &RetrievalResult{Answer: msgAIFailed, Score: 0, Source: SourceFallback}
	}
	return &RetrievalResult{Answer: strings.TrimSpace(reply), Score: 0, Source: SourceOpenAI}
}

func customIndexKey(dept string) string {
	return "custom:" + dept
}

func baseIndexKey(scope string) string {
	return "base:" + scope
}
