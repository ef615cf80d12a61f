package services

import (
	"context"

	"github.com/crestbuild/ops_backend/internal/core/domain"
)

// TagReaderSvc defines read operations for transaction tag data.
type TagReaderSvc interface {
	// ListTags retrieves the full transaction position to tag list map.
	ListTags(ctx context.Context) (domain.TransactionTags, error)
}

// TagWriterSvc defines write operations for transaction tag data.
type TagWriterSvc interface {
	// ReplaceTags wholesale replaces the tag mapping.
	ReplaceTags(ctx context.Context, tags domain.TransactionTags) error
}

// TagSvcFacade combines all tag-related service interfaces.
type TagSvcFacade interface {
	TagReaderSvc
	TagWriterSvc
}
