package dto

import "github.com/crestbuild/ops_backend/internal/core/domain"

// ReplaceTagsRequest wholesale replaces the tag mapping. JSON object keys
// are transaction positions. An empty or absent map clears every tag.
type ReplaceTagsRequest struct {
	Tags domain.TransactionTags `json:"tags"`
}

// TagListResponse is the envelope returned by the tag list endpoint.
type TagListResponse struct {
	Success bool                   `json:"success"`
	Tags    domain.TransactionTags `json:"tags"`
}

// ReplaceTagsResponse is the envelope returned after replacing tags.
type ReplaceTagsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
