package services_test

import (
	"context"
	"testing"

	"github.com/crestbuild/ops_backend/internal/apperrors"
	"github.com/crestbuild/ops_backend/internal/core/domain"
	portssvc "github.com/crestbuild/ops_backend/internal/core/ports/services"
	"github.com/crestbuild/ops_backend/internal/core/services"
	"github.com/crestbuild/ops_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock VendorRepository ---
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) ReplaceVendors(ctx context.Context, vendors []domain.Vendor) error {
	args := m.Called(ctx, vendors)
	return args.Error(0)
}

// --- Test Suite ---
type VendorServiceTestSuite struct {
	suite.Suite
	mockRepo *MockVendorRepository
	service  portssvc.VendorSvcFacade
}

func (suite *VendorServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockVendorRepository)
	suite.service = services.NewVendorService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *VendorServiceTestSuite) TestCreateVendor_Success() {
	ctx := context.Background()
	description := "Lumber supplier"
	req := dto.CreateVendorRequest{
		Name:        "Acme Lumber",
		Description: &description,
	}

	suite.mockRepo.On("ListVendors", ctx).Return([]domain.Vendor{}, nil).Once()
	suite.mockRepo.On("ReplaceVendors", ctx, mock.MatchedBy(func(vendors []domain.Vendor) bool {
		return len(vendors) == 1 && vendors[0].ID == "1" && vendors[0].Name == "Acme Lumber"
	})).Return(nil).Once()

	vendor, err := suite.service.CreateVendor(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(vendor)
	suite.Equal("1", vendor.ID)
	suite.Equal("Acme Lumber", vendor.Name)
	suite.Equal("Lumber supplier", vendor.Description)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestCreateVendor_AppendsToExisting() {
	ctx := context.Background()
	existing := []domain.Vendor{
		{ID: "1", Name: "Acme Lumber"},
		{ID: "2", Name: "Bolt Depot"},
	}

	suite.mockRepo.On("ListVendors", ctx).Return(existing, nil).Once()
	suite.mockRepo.On("ReplaceVendors", ctx, mock.MatchedBy(func(vendors []domain.Vendor) bool {
		return len(vendors) == 3 && vendors[2].ID == "3" && vendors[2].Name == "Crane Rentals"
	})).Return(nil).Once()

	vendor, err := suite.service.CreateVendor(ctx, dto.CreateVendorRequest{Name: "Crane Rentals"})

	suite.Require().NoError(err)
	suite.Equal("3", vendor.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestCreateVendor_DuplicateNameCaseInsensitive() {
	ctx := context.Background()
	existing := []domain.Vendor{{ID: "1", Name: "Acme Lumber"}}

	suite.mockRepo.On("ListVendors", ctx).Return(existing, nil).Once()

	vendor, err := suite.service.CreateVendor(ctx, dto.CreateVendorRequest{Name: "ACME lumber"})

	suite.Require().Error(err)
	suite.Nil(vendor)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "ReplaceVendors", mock.Anything, mock.Anything)
}

func (suite *VendorServiceTestSuite) TestCreateVendor_EmptyName() {
	ctx := context.Background()

	vendor, err := suite.service.CreateVendor(ctx, dto.CreateVendorRequest{Name: "   "})

	suite.Require().Error(err)
	suite.Nil(vendor)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListVendors", mock.Anything)
}

func (suite *VendorServiceTestSuite) TestListVendors_FilterAndLimit() {
	ctx := context.Background()
	existing := []domain.Vendor{
		{ID: "1", Name: "Acme Lumber"},
		{ID: "2", Name: "Bolt Depot"},
		{ID: "3", Name: "Lumber Liquidators"},
	}

	suite.mockRepo.On("ListVendors", ctx).Return(existing, nil).Twice()

	filtered, err := suite.service.ListVendors(ctx, "lumber", 0)
	suite.Require().NoError(err)
	suite.Len(filtered, 2)

	limited, err := suite.service.ListVendors(ctx, "lumber", 1)
	suite.Require().NoError(err)
	suite.Len(limited, 1)
	suite.Equal("Acme Lumber", limited[0].Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestListVendors_ReadError() {
	ctx := context.Background()
	suite.mockRepo.On("ListVendors", ctx).Return(nil, assert.AnError).Once()

	vendors, err := suite.service.ListVendors(ctx, "", 0)

	suite.Require().Error(err)
	suite.Nil(vendors)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestVendorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VendorServiceTestSuite))
}
