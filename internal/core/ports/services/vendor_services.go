package services

import (
	"context"

	"github.com/crestbuild/ops_backend/internal/core/domain"
	"github.com/crestbuild/ops_backend/internal/dto"
)

// VendorReaderSvc defines read operations for vendor data.
type VendorReaderSvc interface {
	// ListVendors retrieves vendors whose name contains query
	// (case-insensitive), capped at limit.
	ListVendors(ctx context.Context, query string, limit int) ([]domain.Vendor, error)
}

// VendorWriterSvc defines write operations for vendor data.
type VendorWriterSvc interface {
	// CreateVendor validates and persists a new vendor.
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*domain.Vendor, error)
}

// VendorSvcFacade combines all vendor-related service interfaces.
type VendorSvcFacade interface {
	VendorReaderSvc
	VendorWriterSvc
}
