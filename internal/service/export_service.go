package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	rendererhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/barakahq/supportbot/internal/repo"
	"github.com/barakahq/supportbot/internal/routing"
)

// ExportService renders admin exports. The source of truth is plain
// markdown built from the rows; goldmark turns it into HTML so the
// export can be dropped into a wiki or mailed as-is.
type ExportService struct {
	faqs     *repo.FaqRepo
	chatLogs *repo.ChatLogRepo
	md       goldmark.Markdown
}

func NewExportService(faqs *repo.FaqRepo, chatLogs *repo.ChatLogRepo) *ExportService {
	return &ExportService{
		faqs:     faqs,
		chatLogs: chatLogs,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(rendererhtml.WithHardWraps()),
		),
	}
}

// FaqsHTML exports the custom FAQ knowledge base, optionally scoped to
// one department.
func (s *ExportService) FaqsHTML(ctx context.Context, department string) (string, error) {
	faqs, err := s.faqs.List(ctx, department)
	if err != nil {
		return "", err
	}
	var doc strings.Builder
	title := "Custom FAQ Export"
	if department != "" {
		title = fmt.Sprintf("%s - %s", title, routing.Label(routing.Department(department)))
	}
	fmt.Fprintf(&doc, "# %s\n\n", title)
	fmt.Fprintf(&doc, "Exported %s. %d entries.\n\n", time.Now().Format("2006-01-02 15:04"), len(faqs))
	for _, faq := range faqs {
		fmt.Fprintf(&doc, "## %s\n\n", faq.Question)
		fmt.Fprintf(&doc, "%s\n\n", faq.Answer)
		fmt.Fprintf(&doc, "*Department: %s | Tags: %s | By: %s*\n\n", faq.Department, orDash(faq.Tags), orDash(faq.CreatedBy))
	}
	return s.render(doc.String())
}

// TranscriptHTML exports the newest chat log entries.
func (s *ExportService) TranscriptHTML(ctx context.Context, limit uint) (string, error) {
	if limit == 0 {
		limit = 200
	}
	logs, err := s.chatLogs.List(ctx, limit)
	if err != nil {
		return "", err
	}
	var doc strings.Builder
	fmt.Fprintf(&doc, "# Chat Transcript Export\n\n")
	fmt.Fprintf(&doc, "Exported %s. %d turns, newest first.\n\n", time.Now().Format("2006-01-02 15:04"), len(logs))
	for _, entry := range logs {
		fmt.Fprintf(&doc, "## #%d %s\n\n", entry.ID, time.Unix(entry.Ctime, 0).Format("2006-01-02 15:04"))
		fmt.Fprintf(&doc, "**%s:** %s\n\n", entry.Username, entry.UserMessage)
		fmt.Fprintf(&doc, "**Baraka:** %s\n\n", entry.BotReply)
		fmt.Fprintf(&doc, "*Source: %s | Score: %.2f | Department: %s*\n\n", entry.Source, entry.Score, entry.Department)
	}
	return s.render(doc.String())
}

func (s *ExportService) render(markdown string) (string, error) {
	var out bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &out); err != nil {
		return "", err
	}
	return out.String(), nil
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
