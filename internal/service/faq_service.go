package service

import (
	"context"
	"strings"
	"time"

	"github.com/barakahq/supportbot/internal/model"
	appErr "github.com/barakahq/supportbot/internal/pkg/errors"
	"github.com/barakahq/supportbot/internal/repo"
	"github.com/barakahq/supportbot/internal/routing"
	"github.com/barakahq/supportbot/internal/textindex"
)

type FaqService struct {
	faqs  *repo.FaqRepo
	cache *textindex.Cache
}

func NewFaqService(faqs *repo.FaqRepo, cache *textindex.Cache) *FaqService {
	return &FaqService{faqs: faqs, cache: cache}
}

func (s *FaqService) Create(ctx context.Context, department, question, answer, tags, createdBy string) (*model.FaqEntry, error) {
	department = strings.ToUpper(strings.TrimSpace(department))
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if !routing.Valid(routing.Department(department)) || question == "" || answer == "" {
		return nil, appErr.ErrInvalid
	}
	faq := &model.FaqEntry{
		Department: department,
		Question:   question,
		Answer:     answer,
		Tags:       strings.TrimSpace(tags),
		CreatedBy:  createdBy,
		Mtime:      time.Now().Unix(),
	}
	id, err := s.faqs.Create(ctx, faq)
	if err != nil {
		return nil, err
	}
	faq.ID = id
	s.cache.Invalidate(customIndexKey(department))
	return faq, nil
}

func (s *FaqService) Get(ctx context.Context, id int64) (*model.FaqEntry, error) {
	return s.faqs.GetByID(ctx, id)
}

func (s *FaqService) List(ctx context.Context, department string) ([]model.FaqEntry, error) {
	department = strings.ToUpper(strings.TrimSpace(department))
	if department != "" && !routing.Valid(routing.Department(department)) {
		return nil, appErr.ErrInvalid
	}
	return s.faqs.List(ctx, department)
}

// Update drops the cached index for both the old and the new
// department, a move dirties two corpora.
func (s *FaqService) Update(ctx context.Context, id int64, department, question, answer, tags string) (*model.FaqEntry, error) {
	department = strings.ToUpper(strings.TrimSpace(department))
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if !routing.Valid(routing.Department(department)) || question == "" || answer == "" {
		return nil, appErr.ErrInvalid
	}
	existing, err := s.faqs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	faq := &model.FaqEntry{
		ID:         id,
		Department: department,
		Question:   question,
		Answer:     answer,
		Tags:       strings.TrimSpace(tags),
		CreatedBy:  existing.CreatedBy,
		Mtime:      time.Now().Unix(),
	}
	if err := s.faqs.Update(ctx, faq); err != nil {
		return nil, err
	}
	s.cache.Invalidate(customIndexKey(existing.Department))
	s.cache.Invalidate(customIndexKey(department))
	return faq, nil
}

func (s *FaqService) Delete(ctx context.Context, id int64) error {
	existing, err := s.faqs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.faqs.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(customIndexKey(existing.Department))
	return nil
}
