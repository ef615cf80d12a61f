package dto

import "github.com/crestbuild/ops_backend/internal/core/domain"

// CreateVendorRequest defines the data needed to create a new vendor.
// Optional fields are pointers so an absent field is distinguishable from an
// empty one.
type CreateVendorRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Contact     *string `json:"contact"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
}

// VendorListResponse is the envelope returned by the vendor list endpoint.
type VendorListResponse struct {
	Success bool            `json:"success"`
	Vendors []domain.Vendor `json:"vendors"`
	Total   int             `json:"total"`
	Query   string          `json:"query"`
}

// CreateVendorResponse is the envelope returned after creating a vendor.
type CreateVendorResponse struct {
	Success bool          `json:"success"`
	Vendor  domain.Vendor `json:"vendor"`
	Message string        `json:"message"`
}
