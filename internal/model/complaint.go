package model

const (
	ComplaintStatusOpen     = "Open"
	ComplaintStatusInReview = "In Review"
	ComplaintStatusResolved = "Resolved"
	ComplaintStatusRejected = "Rejected"

	ComplaintPriorityNormal = "Normal"
	ComplaintPriorityHigh   = "High"
	ComplaintPriorityUrgent = "Urgent"
)

var (
	ComplaintStatuses   = []string{ComplaintStatusOpen, ComplaintStatusInReview, ComplaintStatusResolved, ComplaintStatusRejected}
	ComplaintPriorities = []string{ComplaintPriorityNormal, ComplaintPriorityHigh, ComplaintPriorityUrgent}
)

type Complaint struct {
	ID            int64  `json:"id" db:"id"`
	Username      string `json:"username" db:"username"`
	Text          string `json:"text" db:"text"`
	Department    string `json:"department" db:"department"`
	Status        string `json:"status" db:"status"`
	Priority      string `json:"priority" db:"priority"`
	Summary       string `json:"summary" db:"summary"`
	InternalNotes string `json:"internal_notes" db:"internal_notes"`
	Ctime         int64  `json:"ctime" db:"ctime"`
	Mtime         int64  `json:"mtime" db:"mtime"`
}
