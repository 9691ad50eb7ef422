package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/didi/gendry/builder"
	"github.com/jmoiron/sqlx"

	"github.com/barakahq/supportbot/internal/model"
	appErr "github.com/barakahq/supportbot/internal/pkg/errors"
)

var complaintColumns = []string{
	"id", "username", "text", "department", "status",
	"priority", "summary", "internal_notes", "ctime", "mtime",
}

type ComplaintRepo struct {
	db *sqlx.DB
}

func NewComplaintRepo(db *sqlx.DB) *ComplaintRepo {
	return &ComplaintRepo{db: db}
}

func (r *ComplaintRepo) Create(ctx context.Context, complaint *model.Complaint) (int64, error) {
	data := map[string]interface{}{
		"username":       complaint.Username,
		"text":           complaint.Text,
		"department":     complaint.Department,
		"status":         complaint.Status,
		"priority":       complaint.Priority,
		"summary":        complaint.Summary,
		"internal_notes": complaint.InternalNotes,
		"ctime":          complaint.Ctime,
		"mtime":          complaint.Mtime,
	}
	sqlStr, args, err := builder.BuildInsert("complaints", []map[string]interface{}{data})
	if err != nil {
		return 0, err
	}
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (r *ComplaintRepo) GetByID(ctx context.Context, id int64) (*model.Complaint, error) {
	where := map[string]interface{}{"id": id}
	sqlStr, args, err := builder.BuildSelect("complaints", where, complaintColumns)
	if err != nil {
		return nil, err
	}
	var complaint model.Complaint
	if err := r.db.GetContext(ctx, &complaint, sqlStr, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErr.ErrNotFound
		}
		return nil, err
	}
	return &complaint, nil
}

// List filters by department and/or status; empty filters mean all.
// Newest first.
func (r *ComplaintRepo) List(ctx context.Context, department, status string) ([]model.Complaint, error) {
	where := map[string]interface{}{"_orderby": "ctime desc"}
	if department != "" {
		where["department"] = department
	}
	if status != "" {
		where["status"] = status
	}
	sqlStr, args, err := builder.BuildSelect("complaints", where, complaintColumns)
	if err != nil {
		return nil, err
	}
	complaints := make([]model.Complaint, 0)
	if err := r.db.SelectContext(ctx, &complaints, sqlStr, args...); err != nil {
		return nil, err
	}
	return complaints, nil
}

// Update applies only the supplied fields plus mtime.
func (r *ComplaintRepo) Update(ctx context.Context, id int64, update map[string]interface{}) error {
	if len(update) == 0 {
		return nil
	}
	where := map[string]interface{}{"id": id}
	sqlStr, args, err := builder.BuildUpdate("complaints", where, update)
	if err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}
