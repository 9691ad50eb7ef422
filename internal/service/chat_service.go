package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/barakahq/supportbot/internal/lang"
	"github.com/barakahq/supportbot/internal/model"
	"github.com/barakahq/supportbot/internal/repo"
	"github.com/barakahq/supportbot/internal/routing"
	"github.com/barakahq/supportbot/internal/session"
)

// ChatReply is one assistant turn. Footer carries the provenance line
// appended under the answer; the structured fields are there for
// clients that render their own.
type ChatReply struct {
	SessionID     string    `json:"session_id"`
	Reply         string    `json:"reply"`
	Footer        string    `json:"footer,omitempty"`
	Lang          lang.Code `json:"lang"`
	Department    string    `json:"department,omitempty"`
	RoutingScore  float64   `json:"routing_score"`
	RoutingMethod string    `json:"routing_method,omitempty"`
	Source        string    `json:"source,omitempty"`
	Score         float64   `json:"score"`
}

type ChatService struct {
	sessions   *session.Store
	translator *lang.Translator
	router     *routing.Router
	answers    *AnswerService
	chatLogs   *repo.ChatLogRepo
}

func NewChatService(sessions *session.Store, translator *lang.Translator, router *routing.Router, answers *AnswerService, chatLogs *repo.ChatLogRepo) *ChatService {
	return &ChatService{
		sessions:   sessions,
		translator: translator,
		router:     router,
		answers:    answers,
		chatLogs:   chatLogs,
	}
}

// Turn runs one full conversation step. A language switch command
// short-circuits everything: the preference sticks to the session and
// the canned acknowledgement comes back without routing or retrieval.
func (s *ChatService) Turn(ctx context.Context, username, sessionID, message string) (*ChatReply, error) {
	message = strings.TrimSpace(message)
	state := s.sessions.Get(sessionID)

	if cmd, ok := lang.ParseCommand(message); ok {
		state.PreferredLang = cmd.Code
		s.sessions.Put(state)
		return &ChatReply{
			SessionID: state.ID,
			Reply:     cmd.Acknowledgement,
			Lang:      cmd.Code,
		}, nil
	}

	detected, queryEN, outcome := s.translator.ToEnglish(ctx, message)
	if outcome == lang.OutcomeDegraded {
		logutil.GetLogger(ctx).Warn("normalization degraded, matching raw text", zap.String("username", username))
	}
	outLang := state.PreferredLang
	if outLang == "" {
		outLang = detected
	}

	decision := s.router.Route(ctx, queryEN)
	result := s.answers.Answer(ctx, queryEN, decision.Department, outLang)

	reply := result.Answer
	// generative replies already come back in the target language, and
	// the canned degraded lines stay English on purpose
	if result.Source == SourceCustom || result.Source == SourceBase {
		reply, _ = s.translator.FromEnglish(ctx, reply, outLang)
	}

	if err := s.chatLogs.Append(ctx, &model.ChatLog{
		Username:    username,
		UserMessage: message,
		BotReply:    reply,
		Source:      result.Source,
		Score:       result.Score,
		Department:  string(decision.Department),
		Ctime:       time.Now().Unix(),
	}); err != nil {
		logutil.GetLogger(ctx).Error("append chat log failed", zap.Error(err))
	}

	s.sessions.Put(state)
	return &ChatReply{
		SessionID:     state.ID,
		Reply:         reply,
		Footer:        replyFooter(decision, result),
		Lang:          outLang,
		Department:    string(decision.Department),
		RoutingScore:  decision.Score,
		RoutingMethod: decision.Method,
		Source:        result.Source,
		Score:         result.Score,
	}, nil
}

func replyFooter(decision routing.Decision, result *RetrievalResult) string {
	var origin string
	switch result.Source {
	case SourceCustom:
		origin = fmt.Sprintf("Dept FAQ (%s)", decision.Department)
	case SourceBase:
		origin = fmt.Sprintf("Base dataset (%s)", decision.Department)
	case SourceOpenAI:
		origin = fmt.Sprintf("AI fallback (%s)", decision.Department)
	default:
		origin = fmt.Sprintf("Low confidence (%s)", decision.Department)
	}
	return fmt.Sprintf("— Department: %s (%s) | Routing: %.2f (%s)\n— Source: %s",
		decision.Department, routing.Label(decision.Department), decision.Score, decision.Method, origin)
}
