package model

type ChatLog struct {
	ID          int64   `json:"id" db:"id"`
	Username    string  `json:"username" db:"username"`
	UserMessage string  `json:"user_message" db:"user_message"`
	BotReply    string  `json:"bot_reply" db:"bot_reply"`
	Source      string  `json:"source" db:"source"`
	Score       float64 `json:"score" db:"score"`
	Department  string  `json:"department" db:"department"`
	Ctime       int64   `json:"ctime" db:"ctime"`
}
