package model

type FaqEntry struct {
	ID         int64  `json:"id" db:"id"`
	Department string `json:"department" db:"department"`
	Question   string `json:"question" db:"question"`
	Answer     string `json:"answer" db:"answer"`
	Tags       string `json:"tags" db:"tags"`
	CreatedBy  string `json:"created_by" db:"created_by"`
	Mtime      int64  `json:"mtime" db:"mtime"`
}
