package project

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/numeric"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectID = "01920c4e-8a7b-7c3d-9e2f-1a2b3c4d5e6f"

type fakeProjectRepository struct {
	projects map[string]project.Project
	updates  int
}

func newFakeProjectRepository() *fakeProjectRepository {
	return &fakeProjectRepository{projects: map[string]project.Project{}}
}

func (f *fakeProjectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	p.ID = projectID
	f.projects[p.ID] = p
	return p, nil
}

func (f *fakeProjectRepository) GetByID(ctx context.Context, id string) (project.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return project.Project{}, project.ErrProjectNotFound
	}
	return p, nil
}

func (f *fakeProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	out := make([]project.Project, 0, len(f.projects))
	for _, p := range f.projects {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProjectRepository) Update(ctx context.Context, p project.Project) (project.Project, error) {
	if _, ok := f.projects[p.ID]; !ok {
		return project.Project{}, project.ErrProjectNotFound
	}
	f.updates++
	f.projects[p.ID] = p
	return p, nil
}

func (f *fakeProjectRepository) UpdateStatus(ctx context.Context, id string, status project.Status) error {
	p, ok := f.projects[id]
	if !ok {
		return project.ErrProjectNotFound
	}
	p.Status = status
	f.projects[id] = p
	return nil
}

func (f *fakeProjectRepository) Delete(ctx context.Context, id string) error {
	if _, ok := f.projects[id]; !ok {
		return project.ErrProjectNotFound
	}
	delete(f.projects, id)
	return nil
}

func runInline(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(repo project.ProjectRepository) project.ProjectService {
	now := func() time.Time { return time.Date(2025, 1, 10, 15, 0, 0, 0, time.UTC) }
	return NewProjectService(repo, runInline, time.UTC, now)
}

func seedRequest() project.CreateProjectRequest {
	deadline := "2025-01-20"
	team := project.TeamMembers{}
	team.Add(project.RoleProjectManager, "Maya")
	return project.CreateProjectRequest{
		Name:        "Storefront",
		Client:      "Acme",
		Category:    "webDevelopment",
		ProjectCost: numeric.FromInt(18000),
		Deadline:    &deadline,
		Milestone:   3,
		TeamMembers: team,
		MilestonePayments: []project.MilestonePayment{
			{Amount: numeric.FromInt(6000), Paid: true},
			{},
			{Amount: numeric.FromInt(6000), Paid: true},
			{Amount: numeric.FromInt(6000)},
			{Description: "extra row"},
		},
	}
}

func TestProjectService_CreateProject_FiltersAndTruncates(t *testing.T) {
	repo := newFakeProjectRepository()
	svc := newTestService(repo)

	resp, err := svc.CreateProject(context.Background(), seedRequest())
	require.NoError(t, err)

	assert.Equal(t, "active", resp.Status)
	require.Len(t, resp.MilestonePayments, 3)
	require.NotNil(t, resp.DaysRemaining)
	assert.Equal(t, 10, *resp.DaysRemaining)
	assert.Equal(t, "2025-01-20", *resp.Deadline)

	assert.Equal(t, 67, resp.Progress.Percent)
	assert.True(t, resp.Progress.AmountPaid.Equal(decimal.NewFromInt(12000)))
	assert.True(t, resp.Progress.Remaining.Equal(decimal.NewFromInt(6000)))
}

func TestProjectService_UpdateProject_LoweringCountDropsRows(t *testing.T) {
	repo := newFakeProjectRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.CreateProject(ctx, seedRequest())
	require.NoError(t, err)

	two := 2
	resp, err := svc.UpdateProject(ctx, project.UpdateProjectRequest{ID: projectID, Milestone: &two})
	require.NoError(t, err)
	assert.Len(t, resp.MilestonePayments, 2)

	// raising the count again does not bring the third row back
	five := 5
	resp, err = svc.UpdateProject(ctx, project.UpdateProjectRequest{ID: projectID, Milestone: &five})
	require.NoError(t, err)
	assert.Len(t, resp.MilestonePayments, 2)
	assert.Equal(t, 5, resp.Milestone)
	assert.Equal(t, 2, repo.updates)
}

func TestProjectService_UpdateProject_ReplacesPaymentsAndTeam(t *testing.T) {
	repo := newFakeProjectRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.CreateProject(ctx, seedRequest())
	require.NoError(t, err)

	payments := []project.MilestonePayment{{Description: "kickoff"}, {}, {PaymentMode: "cash", Paid: true}}
	team := project.TeamMembers{}
	team.Add(project.RoleTester, "Tom")
	noDeadline := ""

	resp, err := svc.UpdateProject(ctx, project.UpdateProjectRequest{
		ID:                projectID,
		MilestonePayments: &payments,
		TeamMembers:       &team,
		Deadline:          &noDeadline,
	})
	require.NoError(t, err)

	require.Len(t, resp.MilestonePayments, 2)
	assert.Equal(t, "kickoff", resp.MilestonePayments[0].Description)
	assert.Equal(t, []string{"Tom"}, resp.TeamMembers[project.RoleTester])
	assert.Nil(t, resp.TeamMembers[project.RoleProjectManager])
	assert.Nil(t, resp.Deadline)
	assert.Nil(t, resp.DaysRemaining)
	assert.Equal(t, 50, resp.Progress.Percent)
}

func TestProjectService_UpdateProject_Errors(t *testing.T) {
	repo := newFakeProjectRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	eleven := 11
	_, err := svc.UpdateProject(ctx, project.UpdateProjectRequest{ID: projectID, Milestone: &eleven})
	assert.True(t, errors.Is(err, validator.ErrOutOfRange))

	_, err = svc.UpdateProject(ctx, project.UpdateProjectRequest{ID: projectID})
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestProjectService_UpdateStatusAndDelete(t *testing.T) {
	repo := newFakeProjectRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.CreateProject(ctx, seedRequest())
	require.NoError(t, err)

	resp, err := svc.UpdateStatus(ctx, project.UpdateStatusRequest{ID: projectID, Status: "onHold"})
	require.NoError(t, err)
	assert.Equal(t, "onHold", resp.Status)

	_, err = svc.UpdateStatus(ctx, project.UpdateStatusRequest{ID: projectID, Status: "paused"})
	assert.True(t, errors.Is(err, validator.ErrInvalidValue))

	progress, err := svc.GetProgress(ctx, projectID)
	require.NoError(t, err)
	assert.Equal(t, 3, progress.TotalCount)

	require.NoError(t, svc.DeleteProject(ctx, projectID))
	assert.ErrorIs(t, svc.DeleteProject(ctx, projectID), project.ErrProjectNotFound)

	_, err = svc.GetProject(ctx, "42")
	assert.True(t, errors.Is(err, validator.ErrInvalidValue))
}

func TestProjectService_TransactionErrorPropagates(t *testing.T) {
	boom := errors.New("tx aborted")
	svc := NewProjectService(newFakeProjectRepository(), func(ctx context.Context, fn func(ctx context.Context) error) error {
		return boom
	}, time.UTC, nil)

	_, err := svc.CreateProject(context.Background(), seedRequest())
	assert.ErrorIs(t, err, boom)
}
