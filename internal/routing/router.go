package routing

import (
	"context"
	"regexp"
	"strings"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/barakahq/supportbot/internal/textindex"
)

const (
	MethodRule         = "rule"
	MethodTFIDF        = "tfidf"
	MethodTFIDFLowConf = "tfidf_lowconf"
)

// exemplarCacheKey identifies the reference exemplar corpus in the
// shared index cache. The corpus is static, so the key never changes.
const exemplarCacheKey = "router:exemplars"

// Decision is the routing verdict for one query. Score is reported for
// display only; a message is never rejected on it, every message gets
// some department.
type Decision struct {
	Department Department `json:"department"`
	Score      float64    `json:"score"`
	Method     string     `json:"method"`
}

var whitespaceRe = regexp.MustCompile(`\s+`)

func normalize(text string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), " ")
}

// Router classifies normalized English text into a department.
type Router struct {
	cache      *textindex.Cache
	lowConf    float64
	flatTexts  []string
	flatOwners []Department
}

// NewRouter builds a router over the static exemplar corpus. lowConf is
// the similarity floor below which a query is treated as a request for
// a human and routed to CONTACT.
func NewRouter(cache *textindex.Cache, lowConf float64) *Router {
	r := &Router{cache: cache, lowConf: lowConf}
	for _, dept := range All {
		for _, phrase := range exemplars[dept] {
			r.flatTexts = append(r.flatTexts, phrase)
			r.flatOwners = append(r.flatOwners, dept)
		}
	}
	return r
}

// Route is deterministic: same text, same corpus, same decision.
func (r *Router) Route(ctx context.Context, englishText string) Decision {
	text := normalize(englishText)

	for _, dept := range ruleOrder {
		for _, keyword := range keywords[dept] {
			if strings.Contains(text, keyword) {
				return Decision{Department: dept, Score: 1.0, Method: MethodRule}
			}
		}
	}

	ix, err := r.cache.GetOrBuild(exemplarCacheKey, func() (*textindex.Index, error) {
		return textindex.Build(r.flatTexts), nil
	})
	if err != nil || ix == nil || ix.Len() == 0 {
		// exemplar corpus is compiled in, this should not happen
		logutil.GetLogger(ctx).Error("exemplar index unavailable", zap.Error(err))
		return Decision{Department: DeptContact, Score: 0, Method: MethodTFIDFLowConf}
	}

	best, ok := ix.Best(text)
	if !ok {
		return Decision{Department: DeptContact, Score: 0, Method: MethodTFIDFLowConf}
	}
	if best.Score < r.lowConf {
		return Decision{Department: DeptContact, Score: best.Score, Method: MethodTFIDFLowConf}
	}
	return Decision{Department: r.flatOwners[best.Doc], Score: best.Score, Method: MethodTFIDF}
}
