package repo

import (
	"context"

	"github.com/didi/gendry/builder"
	"github.com/jmoiron/sqlx"

	"github.com/barakahq/supportbot/internal/model"
)

var chatLogColumns = []string{
	"id", "username", "user_message", "bot_reply", "source", "score", "department", "ctime",
}

type ChatLogRepo struct {
	db *sqlx.DB
}

func NewChatLogRepo(db *sqlx.DB) *ChatLogRepo {
	return &ChatLogRepo{db: db}
}

func (r *ChatLogRepo) Append(ctx context.Context, entry *model.ChatLog) error {
	data := map[string]interface{}{
		"username":     entry.Username,
		"user_message": entry.UserMessage,
		"bot_reply":    entry.BotReply,
		"source":       entry.Source,
		"score":        entry.Score,
		"department":   entry.Department,
		"ctime":        entry.Ctime,
	}
	sqlStr, args, err := builder.BuildInsert("chat_logs", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

// List returns the newest entries up to limit.
func (r *ChatLogRepo) List(ctx context.Context, limit uint) ([]model.ChatLog, error) {
	where := map[string]interface{}{
		"_orderby": "ctime desc",
		"_limit":   []uint{0, limit},
	}
	sqlStr, args, err := builder.BuildSelect("chat_logs", where, chatLogColumns)
	if err != nil {
		return nil, err
	}
	logs := make([]model.ChatLog, 0)
	if err := r.db.SelectContext(ctx, &logs, sqlStr, args...); err != nil {
		return nil, err
	}
	return logs, nil
}

// DeleteBefore removes entries older than the cutoff, for the retention
// job. Returns the number of rows removed.
func (r *ChatLogRepo) DeleteBefore(ctx context.Context, cutoff int64) (int64, error) {
	sqlStr, args, err := builder.BuildDelete("chat_logs", map[string]interface{}{"ctime <": cutoff})
	if err != nil {
		return 0, err
	}
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
