package job

import (
	"context"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/barakahq/supportbot/internal/repo"
)

// ChatLogCleanupJob trims conversation history past the retention
// window so the transcript table does not grow without bound.
type ChatLogCleanupJob struct {
	chatLogs *repo.ChatLogRepo
	keep     time.Duration
}

func NewChatLogCleanupJob(chatLogs *repo.ChatLogRepo, keep time.Duration) *ChatLogCleanupJob {
	return &ChatLogCleanupJob{chatLogs: chatLogs, keep: keep}
}

func (j *ChatLogCleanupJob) Name() string {
	return "chatlog_cleanup"
}

func (j *ChatLogCleanupJob) Run(ctx context.Context) error {
	if j.chatLogs == nil {
		return nil
	}
	keep := j.keep
	if keep <= 0 {
		keep = 90 * 24 * time.Hour
	}
	cutoff := time.Now().Add(-keep).Unix()
	removed, err := j.chatLogs.DeleteBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	if removed > 0 {
		logutil.GetLogger(ctx).Info("trimmed chat logs", zap.Int64("removed", removed))
	}
	return nil
}
