package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/crestbuild/ops_backend/internal/core/domain"
	portssvc "github.com/crestbuild/ops_backend/internal/core/ports/services"
	"github.com/crestbuild/ops_backend/internal/dto"
	"github.com/crestbuild/ops_backend/internal/handlers"
	"github.com/crestbuild/ops_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock VendorService ---
type MockVendorService struct {
	mock.Mock
}

func (m *MockVendorService) ListVendors(ctx context.Context, query string, limit int) ([]domain.Vendor, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vendor), args.Error(1)
}

func (m *MockVendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*domain.Vendor, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.VendorSvcFacade = (*MockVendorService)(nil)

// --- Test Suite ---
type VendorHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockVendorService *MockVendorService
}

func (suite *VendorHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockVendorService = new(MockVendorService)

	suite.router = gin.New()
	cfg := &config.Config{IsProduction: true}
	services := &portssvc.ServiceContainer{Vendor: suite.mockVendorService}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *VendorHandlerTestSuite) getVendors(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *VendorHandlerTestSuite) TestListVendors_ForwardsQParamAndDefaultLimit() {
	vendors := []domain.Vendor{{ID: "1", Name: "Acme Lumber"}}
	suite.mockVendorService.On("ListVendors", mock.Anything, "acme", 10000).Return(vendors, nil).Once()

	w := suite.getVendors("/api/v1/vendors?q=acme")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.VendorListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal(1, resp.Total)
	suite.Equal("acme", resp.Query)
	suite.mockVendorService.AssertExpectations(suite.T())
}

func (suite *VendorHandlerTestSuite) TestListVendors_NoParamsListsEverything() {
	suite.mockVendorService.On("ListVendors", mock.Anything, "", 10000).Return([]domain.Vendor{}, nil).Once()

	w := suite.getVendors("/api/v1/vendors")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockVendorService.AssertExpectations(suite.T())
}

func (suite *VendorHandlerTestSuite) TestListVendors_ExplicitLimitForwarded() {
	suite.mockVendorService.On("ListVendors", mock.Anything, "", 5).Return([]domain.Vendor{}, nil).Once()

	w := suite.getVendors("/api/v1/vendors?limit=5")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockVendorService.AssertExpectations(suite.T())
}

func (suite *VendorHandlerTestSuite) TestListVendors_InvalidLimitRejected() {
	for _, target := range []string{"/api/v1/vendors?limit=abc", "/api/v1/vendors?limit=-1"} {
		w := suite.getVendors(target)
		suite.Equal(http.StatusBadRequest, w.Code)
	}
	suite.mockVendorService.AssertNotCalled(suite.T(), "ListVendors", mock.Anything, mock.Anything, mock.Anything)
}

func TestVendorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VendorHandlerTestSuite))
}
