package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/crestbuild/ops_backend/internal/apperrors"
	"github.com/crestbuild/ops_backend/internal/core/domain"
	portsrepo "github.com/crestbuild/ops_backend/internal/core/ports/repositories"
	"github.com/crestbuild/ops_backend/internal/dto"
)

// VendorService manages the vendor table.
type VendorService struct {
	vendorRepo portsrepo.VendorRepositoryFacade
}

func NewVendorService(vendorRepo portsrepo.VendorRepositoryFacade) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

// CreateVendor validates the candidate, assigns the next identifier, and
// rewrites the vendor table with the new record appended.
func (s *VendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*domain.Vendor, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: vendor name cannot be empty", apperrors.ErrValidation)
	}

	vendors, err := s.vendorRepo.ListVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors in service: %w", err)
	}

	for _, v := range vendors {
		if strings.EqualFold(v.Name, name) {
			return nil, fmt.Errorf("%w: vendor %q already exists", apperrors.ErrDuplicate, name)
		}
	}

	now := time.Now()
	vendor := domain.Vendor{
		ID:   strconv.Itoa(len(vendors) + 1),
		Name: name,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	vendor.Description = optionalField(req.Description)
	vendor.Contact = optionalField(req.Contact)
	vendor.Phone = optionalField(req.Phone)
	vendor.Email = optionalField(req.Email)
	vendor.Address = optionalField(req.Address)

	vendors = append(vendors, vendor)
	if err := s.vendorRepo.ReplaceVendors(ctx, vendors); err != nil {
		return nil, fmt.Errorf("failed to save vendors in service: %w", err)
	}

	return &vendor, nil
}

// ListVendors returns vendors filtered by a case-insensitive name substring
// and capped at limit.
func (s *VendorService) ListVendors(ctx context.Context, query string, limit int) ([]domain.Vendor, error) {
	vendors, err := s.vendorRepo.ListVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors in service: %w", err)
	}

	filtered := make([]domain.Vendor, 0, len(vendors))
	for _, v := range vendors {
		if query != "" && !strings.Contains(strings.ToLower(v.Name), strings.ToLower(query)) {
			continue
		}
		filtered = append(filtered, v)
		if limit > 0 && len(filtered) >= limit {
			break
		}
	}
	return filtered, nil
}
