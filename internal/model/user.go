package model

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"pw_hash"`
	Role         string `json:"role" db:"role"`
	Ctime        int64  `json:"ctime" db:"ctime"`
	Mtime        int64  `json:"mtime" db:"mtime"`
}
