package services

import (
	"context"
	"fmt"

	"github.com/crestbuild/ops_backend/internal/core/domain"
	portsrepo "github.com/crestbuild/ops_backend/internal/core/ports/repositories"
)

// TagService manages the transaction position to tag list mapping.
type TagService struct {
	tagRepo portsrepo.TransactionTagRepositoryFacade
}

func NewTagService(tagRepo portsrepo.TransactionTagRepositoryFacade) *TagService {
	return &TagService{tagRepo: tagRepo}
}

// ListTags returns the full transaction position to tag list map.
func (s *TagService) ListTags(ctx context.Context) (domain.TransactionTags, error) {
	tags, err := s.tagRepo.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags in service: %w", err)
	}
	if tags == nil {
		return domain.TransactionTags{}, nil
	}
	return tags, nil
}

// ReplaceTags wholesale replaces the tag mapping.
func (s *TagService) ReplaceTags(ctx context.Context, tags domain.TransactionTags) error {
	if err := s.tagRepo.ReplaceTags(ctx, tags); err != nil {
		return fmt.Errorf("failed to save tags in service: %w", err)
	}
	return nil
}
