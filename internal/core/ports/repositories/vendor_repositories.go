package repositories

import (
	"context"

	"github.com/crestbuild/ops_backend/internal/core/domain"
)

// VendorReader defines read operations for vendor data.
type VendorReader interface {
	// ListVendors retrieves every vendor, ordered by name.
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
}

// VendorWriter defines write operations for vendor data.
type VendorWriter interface {
	// ReplaceVendors atomically replaces the whole vendor table.
	ReplaceVendors(ctx context.Context, vendors []domain.Vendor) error
}

// VendorRepositoryFacade combines all vendor-related repository interfaces.
type VendorRepositoryFacade interface {
	VendorReader
	VendorWriter
}
