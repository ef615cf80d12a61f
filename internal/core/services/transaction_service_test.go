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

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ReplaceTransactions(ctx context.Context, transactions []domain.Transaction) error {
	args := m.Called(ctx, transactions)
	return args.Error(0)
}

// --- Mock TransactionTagRepository ---
type MockTransactionTagRepository struct {
	mock.Mock
}

func (m *MockTransactionTagRepository) ListTags(ctx context.Context) (domain.TransactionTags, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.TransactionTags), args.Error(1)
}

func (m *MockTransactionTagRepository) ReplaceTags(ctx context.Context, tags domain.TransactionTags) error {
	args := m.Called(ctx, tags)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo   *MockTransactionRepository
	mockMatchRepo *MockManualMatchRepository
	mockTagRepo   *MockTransactionTagRepository
	service       portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockMatchRepo = new(MockManualMatchRepository)
	suite.mockTagRepo = new(MockTransactionTagRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockMatchRepo, suite.mockTagRepo, nil)
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestListTransactions_ResolvesCardholders() {
	ctx := context.Background()
	stored := []domain.Transaction{
		{Vendor: "Acme Lumber", Description: "POS PURCHASE CARD 2321"},
		{Vendor: "Bolt Depot", Description: "POS PURCHASE CARD 9999"},
	}

	suite.mockTxnRepo.On("ListTransactions", ctx).Return(stored, nil).Once()

	transactions, err := suite.service.ListTransactions(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(transactions, 2)
	suite.Equal("David Berman", transactions[0].Cardholder)
	suite.Equal("Unknown", transactions[1].Cardholder)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_EmptyStoreYieldsEmptySlice() {
	ctx := context.Background()

	suite.mockTxnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{}, nil).Once()

	transactions, err := suite.service.ListTransactions(ctx)

	suite.Require().NoError(err)
	suite.NotNil(transactions)
	suite.Empty(transactions)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_ReadError() {
	ctx := context.Background()

	suite.mockTxnRepo.On("ListTransactions", ctx).Return(nil, assert.AnError).Once()

	transactions, err := suite.service.ListTransactions(ctx)

	suite.Require().Error(err)
	suite.Nil(transactions)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *TransactionServiceTestSuite) TestImportCSV_ReplacesSetAndClearsAssociations() {
	ctx := context.Background()
	csvData := "Date,Payee,Spent\n1/1/24,Acme Lumber,$12.50\n1/2/24,Bolt Depot,$42.10\n"

	suite.mockMatchRepo.On("ListMatches", ctx).Return(domain.ManualMatches{"a.pdf": 0, "b.pdf": 1}, nil).Once()
	suite.mockTagRepo.On("ListTags", ctx).Return(domain.TransactionTags{0: {"materials"}}, nil).Once()
	suite.mockTxnRepo.On("ReplaceTransactions", ctx, mock.MatchedBy(func(transactions []domain.Transaction) bool {
		return len(transactions) == 2 &&
			transactions[0].Vendor == "Acme Lumber" &&
			transactions[0].Amount == "12.50" &&
			transactions[0].TransactionType == domain.TransactionTypeCharge
	})).Return(nil).Once()
	suite.mockMatchRepo.On("ReplaceMatches", ctx, domain.ManualMatches{}).Return(nil).Once()
	suite.mockTagRepo.On("ReplaceTags", ctx, domain.TransactionTags{}).Return(nil).Once()

	summary, err := suite.service.ImportCSV(ctx, csvData)

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.Equal(2, summary.TransactionCount)
	suite.Equal(2, summary.ClearedMatches)
	suite.Equal(1, summary.ClearedTags)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockMatchRepo.AssertExpectations(suite.T())
	suite.mockTagRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestImportCSV_EmptyInputIsRejected() {
	ctx := context.Background()

	summary, err := suite.service.ImportCSV(ctx, "")

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ReplaceTransactions", mock.Anything, mock.Anything)
	suite.mockMatchRepo.AssertNotCalled(suite.T(), "ReplaceMatches", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestImportCSV_SaveErrorLeavesAssociationsAlone() {
	ctx := context.Background()
	csvData := "Date,Payee,Spent\n1/1/24,Acme Lumber,$12.50\n"

	suite.mockMatchRepo.On("ListMatches", ctx).Return(domain.ManualMatches{}, nil).Once()
	suite.mockTagRepo.On("ListTags", ctx).Return(domain.TransactionTags{}, nil).Once()
	suite.mockTxnRepo.On("ReplaceTransactions", ctx, mock.Anything).Return(assert.AnError).Once()

	summary, err := suite.service.ImportCSV(ctx, csvData)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, assert.AnError)
	suite.mockMatchRepo.AssertNotCalled(suite.T(), "ReplaceMatches", mock.Anything, mock.Anything)
	suite.mockTagRepo.AssertNotCalled(suite.T(), "ReplaceTags", mock.Anything, mock.Anything)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
