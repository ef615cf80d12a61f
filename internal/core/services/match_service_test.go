package services_test

import (
	"context"
	"testing"

	"github.com/crestbuild/ops_backend/internal/apperrors"
	"github.com/crestbuild/ops_backend/internal/core/domain"
	portssvc "github.com/crestbuild/ops_backend/internal/core/ports/services"
	"github.com/crestbuild/ops_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ManualMatchRepository ---
type MockManualMatchRepository struct {
	mock.Mock
}

func (m *MockManualMatchRepository) ListMatches(ctx context.Context) (domain.ManualMatches, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.ManualMatches), args.Error(1)
}

func (m *MockManualMatchRepository) ReplaceMatches(ctx context.Context, matches domain.ManualMatches) error {
	args := m.Called(ctx, matches)
	return args.Error(0)
}

// --- Mock TransactionReader ---
type MockTransactionReader struct {
	mock.Mock
}

func (m *MockTransactionReader) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Test Suite ---
type MatchServiceTestSuite struct {
	suite.Suite
	mockMatchRepo *MockManualMatchRepository
	mockTxnReader *MockTransactionReader
	service       portssvc.MatchSvcFacade
}

func (suite *MatchServiceTestSuite) SetupTest() {
	suite.mockMatchRepo = new(MockManualMatchRepository)
	suite.mockTxnReader = new(MockTransactionReader)
	suite.service = services.NewMatchService(suite.mockMatchRepo, suite.mockTxnReader)
}

func sampleTransactions() []domain.Transaction {
	return []domain.Transaction{
		{Vendor: "Acme Lumber", Amount: "125.00"},
		{Vendor: "Bolt Depot", Amount: "42.10"},
		{Vendor: "Crane Rentals", Amount: "900.00"},
	}
}

// --- Test Cases ---

func (suite *MatchServiceTestSuite) TestSetMatch_Success() {
	ctx := context.Background()

	suite.mockMatchRepo.On("ListMatches", ctx).Return(domain.ManualMatches{}, nil).Once()
	suite.mockTxnReader.On("ListTransactions", ctx).Return(sampleTransactions(), nil).Once()
	suite.mockMatchRepo.On("ReplaceMatches", ctx, domain.ManualMatches{"receipt.pdf": 1}).Return(nil).Once()

	err := suite.service.SetMatch(ctx, "receipt.pdf", 1, false)

	suite.Require().NoError(err)
	suite.mockMatchRepo.AssertExpectations(suite.T())
}

func (suite *MatchServiceTestSuite) TestSetMatch_ClearRemovesEntry() {
	ctx := context.Background()

	suite.mockMatchRepo.On("ListMatches", ctx).Return(domain.ManualMatches{"receipt.pdf": 1, "other.pdf": 2}, nil).Once()
	suite.mockMatchRepo.On("ReplaceMatches", ctx, domain.ManualMatches{"other.pdf": 2}).Return(nil).Once()

	err := suite.service.SetMatch(ctx, "receipt.pdf", domain.ClearMatchIndex, false)

	suite.Require().NoError(err)
	suite.mockTxnReader.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything)
	suite.mockMatchRepo.AssertExpectations(suite.T())
}

func (suite *MatchServiceTestSuite) TestSetMatch_ClearUnknownFileIsIdempotent() {
	ctx := context.Background()

	suite.mockMatchRepo.On("ListMatches", ctx).Return(domain.ManualMatches{}, nil).Once()
	suite.mockMatchRepo.On("ReplaceMatches", ctx, domain.ManualMatches{}).Return(nil).Once()

	err := suite.service.SetMatch(ctx, "never-matched.pdf", domain.ClearMatchIndex, false)

	suite.Require().NoError(err)
	suite.mockMatchRepo.AssertExpectations(suite.T())
}

func (suite *MatchServiceTestSuite) TestSetMatch_IndexOutOfRange() {
	ctx := context.Background()

	suite.mockMatchRepo.On("ListMatches", ctx).Return(domain.ManualMatches{}, nil)
	suite.mockTxnReader.On("ListTransactions", ctx).Return(sampleTransactions(), nil)

	for _, index := range []int{-2, 3, 99} {
		err := suite.service.SetMatch(ctx, "receipt.pdf", index, false)
		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockMatchRepo.AssertNotCalled(suite.T(), "ReplaceMatches", mock.Anything, mock.Anything)
}

func (suite *MatchServiceTestSuite) TestSetMatch_TransactionAlreadyAssigned() {
	ctx := context.Background()

	suite.mockMatchRepo.On("ListMatches", ctx).Return(domain.ManualMatches{"existing.pdf": 1}, nil).Once()
	suite.mockTxnReader.On("ListTransactions", ctx).Return(sampleTransactions(), nil).Once()

	err := suite.service.SetMatch(ctx, "incoming.pdf", 1, false)

	suite.Require().Error(err)
	var conflict *apperrors.TransactionConflictError
	suite.Require().ErrorAs(err, &conflict)
	suite.Equal("existing.pdf", conflict.ConflictFile)
	suite.Equal(1, conflict.TransactionIndex)
	suite.Equal("Bolt Depot", conflict.Vendor)
	suite.Equal("42.10", conflict.Amount)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockMatchRepo.AssertNotCalled(suite.T(), "ReplaceMatches", mock.Anything, mock.Anything)
}

func (suite *MatchServiceTestSuite) TestSetMatch_FileAlreadyMatched() {
	ctx := context.Background()

	suite.mockMatchRepo.On("ListMatches", ctx).Return(domain.ManualMatches{"receipt.pdf": 0}, nil).Once()
	suite.mockTxnReader.On("ListTransactions", ctx).Return(sampleTransactions(), nil).Once()

	err := suite.service.SetMatch(ctx, "receipt.pdf", 2, false)

	suite.Require().Error(err)
	var conflict *apperrors.FileConflictError
	suite.Require().ErrorAs(err, &conflict)
	suite.Equal("receipt.pdf", conflict.Filename)
	suite.Equal(0, conflict.TransactionIndex)
	suite.Equal("Acme Lumber", conflict.Vendor)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockMatchRepo.AssertNotCalled(suite.T(), "ReplaceMatches", mock.Anything, mock.Anything)
}

func (suite *MatchServiceTestSuite) TestSetMatch_TransactionConflictWinsOverFileConflict() {
	ctx := context.Background()

	// receipt.pdf already holds 0, and another file holds 1, so assigning
	// receipt.pdf to 1 triggers both conditions.
	suite.mockMatchRepo.On("ListMatches", ctx).Return(domain.ManualMatches{"receipt.pdf": 0, "other.pdf": 1}, nil).Once()
	suite.mockTxnReader.On("ListTransactions", ctx).Return(sampleTransactions(), nil).Once()

	err := suite.service.SetMatch(ctx, "receipt.pdf", 1, false)

	var txnConflict *apperrors.TransactionConflictError
	suite.Require().ErrorAs(err, &txnConflict)
	suite.Equal("other.pdf", txnConflict.ConflictFile)
}

func (suite *MatchServiceTestSuite) TestSetMatch_SameAssignmentIsNotAConflict() {
	ctx := context.Background()

	suite.mockMatchRepo.On("ListMatches", ctx).Return(domain.ManualMatches{"receipt.pdf": 1}, nil).Once()
	suite.mockTxnReader.On("ListTransactions", ctx).Return(sampleTransactions(), nil).Once()
	suite.mockMatchRepo.On("ReplaceMatches", ctx, domain.ManualMatches{"receipt.pdf": 1}).Return(nil).Once()

	err := suite.service.SetMatch(ctx, "receipt.pdf", 1, false)

	suite.Require().NoError(err)
	suite.mockMatchRepo.AssertExpectations(suite.T())
}

func (suite *MatchServiceTestSuite) TestSetMatch_ForceOverridesConflicts() {
	ctx := context.Background()

	suite.mockMatchRepo.On("ListMatches", ctx).Return(domain.ManualMatches{"receipt.pdf": 0, "other.pdf": 1}, nil).Once()
	suite.mockTxnReader.On("ListTransactions", ctx).Return(sampleTransactions(), nil).Once()
	suite.mockMatchRepo.On("ReplaceMatches", ctx, domain.ManualMatches{"receipt.pdf": 1, "other.pdf": 1}).Return(nil).Once()

	err := suite.service.SetMatch(ctx, "receipt.pdf", 1, true)

	suite.Require().NoError(err)
	suite.mockMatchRepo.AssertExpectations(suite.T())
}

func (suite *MatchServiceTestSuite) TestSetMatch_ForceStillValidatesIndex() {
	ctx := context.Background()

	suite.mockMatchRepo.On("ListMatches", ctx).Return(domain.ManualMatches{}, nil).Once()
	suite.mockTxnReader.On("ListTransactions", ctx).Return(sampleTransactions(), nil).Once()

	err := suite.service.SetMatch(ctx, "receipt.pdf", 50, true)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMatchRepo.AssertNotCalled(suite.T(), "ReplaceMatches", mock.Anything, mock.Anything)
}

func (suite *MatchServiceTestSuite) TestListMatches_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockMatchRepo.On("ListMatches", ctx).Return(domain.ManualMatches(nil), nil).Once()

	matches, err := suite.service.ListMatches(ctx)

	suite.Require().NoError(err)
	suite.NotNil(matches)
	suite.Empty(matches)
}

func (suite *MatchServiceTestSuite) TestListMatches_ReadError() {
	ctx := context.Background()

	suite.mockMatchRepo.On("ListMatches", ctx).Return(nil, assert.AnError).Once()

	matches, err := suite.service.ListMatches(ctx)

	suite.Require().Error(err)
	suite.Nil(matches)
	suite.ErrorIs(err, assert.AnError)
}

func TestMatchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MatchServiceTestSuite))
}
