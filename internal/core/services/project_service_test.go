package services_test

import (
	"context"
	"testing"

	"github.com/crestbuild/ops_backend/internal/apperrors"
	"github.com/crestbuild/ops_backend/internal/core/domain"
	portssvc "github.com/crestbuild/ops_backend/internal/core/ports/services"
	"github.com/crestbuild/ops_backend/internal/core/services"
	"github.com/crestbuild/ops_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProjectRepository ---
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ReplaceProjects(ctx context.Context, projects []domain.Project) error {
	args := m.Called(ctx, projects)
	return args.Error(0)
}

// --- Test Suite ---
type ProjectServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProjectRepository
	service  portssvc.ProjectSvcFacade
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProjectRepository)
	suite.service = services.NewProjectService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ProjectServiceTestSuite) TestCreateProject_Success() {
	ctx := context.Background()
	fee := 12.5
	req := dto.CreateProjectRequest{
		Name:        "Harbor Renovation",
		BuildersFee: &fee,
	}

	suite.mockRepo.On("ListProjects", ctx).Return([]domain.Project{}, nil).Once()
	suite.mockRepo.On("ReplaceProjects", ctx, mock.MatchedBy(func(projects []domain.Project) bool {
		return len(projects) == 1 && projects[0].ID == "1" && projects[0].BuildersFee != nil
	})).Return(nil).Once()

	project, err := suite.service.CreateProject(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(project)
	suite.Equal("1", project.ID)
	suite.Require().NotNil(project.BuildersFee)
	suite.Equal("12.5", project.BuildersFee.String())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestCreateProject_FeeOutOfRange() {
	ctx := context.Background()

	for _, fee := range []float64{-0.01, 100.01} {
		f := fee
		project, err := suite.service.CreateProject(ctx, dto.CreateProjectRequest{
			Name:        "Harbor Renovation",
			BuildersFee: &f,
		})
		suite.Require().Error(err)
		suite.Nil(project)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "ReplaceProjects", mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestCreateProject_FeeBoundariesAccepted() {
	ctx := context.Background()

	suite.mockRepo.On("ListProjects", ctx).Return([]domain.Project{}, nil).Twice()
	suite.mockRepo.On("ReplaceProjects", ctx, mock.Anything).Return(nil).Twice()

	for i, fee := range []float64{0, 100} {
		f := fee
		project, err := suite.service.CreateProject(ctx, dto.CreateProjectRequest{
			Name:        []string{"Boundary Low", "Boundary High"}[i],
			BuildersFee: &f,
		})
		suite.Require().NoError(err)
		suite.Require().NotNil(project.BuildersFee)
	}
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestCreateProject_DuplicateName() {
	ctx := context.Background()
	existing := []domain.Project{{ID: "1", Name: "Harbor Renovation"}}

	suite.mockRepo.On("ListProjects", ctx).Return(existing, nil).Once()

	project, err := suite.service.CreateProject(ctx, dto.CreateProjectRequest{Name: "harbor renovation"})

	suite.Require().Error(err)
	suite.Nil(project)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "ReplaceProjects", mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestCreateProject_NoFeeStaysNil() {
	ctx := context.Background()

	suite.mockRepo.On("ListProjects", ctx).Return([]domain.Project{}, nil).Once()
	suite.mockRepo.On("ReplaceProjects", ctx, mock.Anything).Return(nil).Once()

	project, err := suite.service.CreateProject(ctx, dto.CreateProjectRequest{Name: "Feeless"})

	suite.Require().NoError(err)
	suite.Nil(project.BuildersFee)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
