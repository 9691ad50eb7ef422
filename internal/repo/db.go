package repo

import (
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

func Open(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users(
		username TEXT PRIMARY KEY,
		pw_hash TEXT NOT NULL,
		role TEXT NOT NULL CHECK(role IN ('user','admin')),
		ctime INTEGER NOT NULL DEFAULT 0,
		mtime INTEGER NOT NULL DEFAULT 0
	);`,
	`CREATE TABLE IF NOT EXISTS custom_faqs(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		department TEXT NOT NULL DEFAULT 'CONTACT',
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		tags TEXT NOT NULL DEFAULT '',
		created_by TEXT NOT NULL DEFAULT '',
		mtime INTEGER NOT NULL DEFAULT 0
	);`,
	`CREATE INDEX IF NOT EXISTS idx_custom_faqs_department ON custom_faqs(department);`,
	`CREATE TABLE IF NOT EXISTS complaints(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL DEFAULT '',
		text TEXT NOT NULL,
		department TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Open',
		priority TEXT NOT NULL DEFAULT 'Normal',
		summary TEXT NOT NULL DEFAULT '',
		internal_notes TEXT NOT NULL DEFAULT '',
		ctime INTEGER NOT NULL DEFAULT 0,
		mtime INTEGER NOT NULL DEFAULT 0
	);`,
	`CREATE INDEX IF NOT EXISTS idx_complaints_department ON complaints(department);`,
	`CREATE INDEX IF NOT EXISTS idx_complaints_status ON complaints(status);`,
	`CREATE TABLE IF NOT EXISTS chat_logs(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL DEFAULT '',
		user_message TEXT NOT NULL DEFAULT '',
		bot_reply TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT '',
		score REAL NOT NULL DEFAULT 0,
		department TEXT NOT NULL DEFAULT '',
		ctime INTEGER NOT NULL DEFAULT 0
	);`,
	`CREATE INDEX IF NOT EXISTS idx_chat_logs_ctime ON chat_logs(ctime);`,
}

func ApplyMigrations(db *sqlx.DB) error {
	for _, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
