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

var faqColumns = []string{"id", "department", "question", "answer", "tags", "created_by", "mtime"}

type FaqRepo struct {
	db *sqlx.DB
}

func NewFaqRepo(db *sqlx.DB) *FaqRepo {
	return &FaqRepo{db: db}
}

func (r *FaqRepo) Create(ctx context.Context, faq *model.FaqEntry) (int64, error) {
	data := map[string]interface{}{
		"department": faq.Department,
		"question":   faq.Question,
		"answer":     faq.Answer,
		"tags":       faq.Tags,
		"created_by": faq.CreatedBy,
		"mtime":      faq.Mtime,
	}
	sqlStr, args, err := builder.BuildInsert("custom_faqs", []map[string]interface{}{data})
	if err != nil {
		return 0, err
	}
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (r *FaqRepo) GetByID(ctx context.Context, id int64) (*model.FaqEntry, error) {
	where := map[string]interface{}{"id": id}
	sqlStr, args, err := builder.BuildSelect("custom_faqs", where, faqColumns)
	if err != nil {
		return nil, err
	}
	var faq model.FaqEntry
	if err := r.db.GetContext(ctx, &faq, sqlStr, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErr.ErrNotFound
		}
		return nil, err
	}
	return &faq, nil
}

// List returns FAQs newest first; an empty department means all of
// them. The id tiebreaker keeps the order total, so cached index
// positions always line up with a re-fetched slice.
func (r *FaqRepo) List(ctx context.Context, department string) ([]model.FaqEntry, error) {
	where := map[string]interface{}{"_orderby": "mtime desc, id desc"}
	if department != "" {
		where["department"] = department
	}
	sqlStr, args, err := builder.BuildSelect("custom_faqs", where, faqColumns)
	if err != nil {
		return nil, err
	}
	faqs := make([]model.FaqEntry, 0)
	if err := r.db.SelectContext(ctx, &faqs, sqlStr, args...); err != nil {
		return nil, err
	}
	return faqs, nil
}

func (r *FaqRepo) Update(ctx context.Context, faq *model.FaqEntry) error {
	where := map[string]interface{}{"id": faq.ID}
	update := map[string]interface{}{
		"department": faq.Department,
		"question":   faq.Question,
		"answer":     faq.Answer,
		"tags":       faq.Tags,
		"mtime":      faq.Mtime,
	}
	sqlStr, args, err := builder.BuildUpdate("custom_faqs", where, update)
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

func (r *FaqRepo) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := builder.BuildDelete("custom_faqs", map[string]interface{}{"id": id})
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
