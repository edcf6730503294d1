package project

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/datemath"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/validator"
)

// TxFunc runs fn in one database transaction, passing the transactional context.
type TxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

type ProjectServiceImpl struct {
	project.ProjectRepository
	withTx   TxFunc
	location *time.Location
	now      func() time.Time
}

func NewProjectService(projectRepository project.ProjectRepository, withTx TxFunc, location *time.Location, now func() time.Time) project.ProjectService {
	if now == nil {
		now = time.Now
	}
	return &ProjectServiceImpl{
		ProjectRepository: projectRepository,
		withTx:            withTx,
		location:          location,
		now:               now,
	}
}

func (s *ProjectServiceImpl) today() time.Time {
	return datemath.CalendarDate(s.now(), s.location)
}

// CreateProject implements project.ProjectService.
func (s *ProjectServiceImpl) CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	newProject := project.Project{
		Name:              strings.TrimSpace(req.Name),
		Client:            strings.TrimSpace(req.Client),
		Category:          project.Category(strings.TrimSpace(req.Category)),
		Status:            project.Status(strings.TrimSpace(req.Status)),
		ProjectCost:       req.ProjectCost.OrZero(),
		Deadline:          parseDeadline(req.Deadline),
		Milestone:         req.Milestone,
		MilestonePayments: project.PrepareForSave(req.MilestonePayments, req.Milestone),
		TeamMembers:       req.TeamMembers,
	}
	if newProject.TeamMembers == nil {
		newProject.TeamMembers = project.TeamMembers{}
	}

	var created project.Project
	err := s.withTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.ProjectRepository.Create(txCtx, newProject)
		return err
	})
	if err != nil {
		return project.ProjectResponse{}, err
	}

	slog.Info("project created", "project_id", created.ID, "milestones", created.Milestone, "team_size", created.TeamMembers.Size())
	return s.toProjectResponse(created), nil
}

// GetProject implements project.ProjectService.
func (s *ProjectServiceImpl) GetProject(ctx context.Context, id string) (project.ProjectResponse, error) {
	if err := validateID(id); err != nil {
		return project.ProjectResponse{}, err
	}

	p, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return s.toProjectResponse(p), nil
}

// ListProjects implements project.ProjectService.
func (s *ProjectServiceImpl) ListProjects(ctx context.Context) (project.ListProjectResponse, error) {
	projects, err := s.ProjectRepository.List(ctx)
	if err != nil {
		return project.ListProjectResponse{}, err
	}

	resp := project.ListProjectResponse{
		Projects:   make([]project.ProjectResponse, 0, len(projects)),
		TotalCount: len(projects),
	}
	for _, p := range projects {
		resp.Projects = append(resp.Projects, s.toProjectResponse(p))
	}
	return resp, nil
}

// UpdateProject implements project.ProjectService. Rows beyond the
// milestone count are dropped for good, even when the count is raised later.
func (s *ProjectServiceImpl) UpdateProject(ctx context.Context, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	var updated project.Project
	err := s.withTx(ctx, func(txCtx context.Context) error {
		existing, err := s.ProjectRepository.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		p := applyUpdate(existing, req)
		before := len(p.MilestonePayments)
		p.MilestonePayments = project.PrepareForSave(p.MilestonePayments, p.Milestone)
		if dropped := before - len(p.MilestonePayments); dropped > 0 {
			slog.Info("milestone rows discarded on save", "project_id", p.ID, "dropped", dropped, "milestones", p.Milestone)
		}

		updated, err = s.ProjectRepository.Update(txCtx, p)
		return err
	})
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return s.toProjectResponse(updated), nil
}

// UpdateStatus implements project.ProjectService.
func (s *ProjectServiceImpl) UpdateStatus(ctx context.Context, req project.UpdateStatusRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	if err := s.ProjectRepository.UpdateStatus(ctx, req.ID, project.Status(strings.TrimSpace(req.Status))); err != nil {
		return project.ProjectResponse{}, err
	}

	p, err := s.ProjectRepository.GetByID(ctx, req.ID)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return s.toProjectResponse(p), nil
}

// DeleteProject implements project.ProjectService.
func (s *ProjectServiceImpl) DeleteProject(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := s.ProjectRepository.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("project deleted", "project_id", id)
	return nil
}

// GetProgress implements project.ProjectService.
func (s *ProjectServiceImpl) GetProgress(ctx context.Context, id string) (project.Progress, error) {
	if err := validateID(id); err != nil {
		return project.Progress{}, err
	}

	p, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		return project.Progress{}, err
	}
	return project.CalculateProgress(p.MilestonePayments, p.ProjectCost), nil
}

func applyUpdate(p project.Project, req project.UpdateProjectRequest) project.Project {
	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Client != nil {
		p.Client = strings.TrimSpace(*req.Client)
	}
	if req.Category != nil {
		p.Category = project.Category(strings.TrimSpace(*req.Category))
	}
	if req.Status != nil {
		p.Status = project.Status(strings.TrimSpace(*req.Status))
	}
	if req.ProjectCost != nil {
		p.ProjectCost = req.ProjectCost.OrZero()
	}
	if req.Deadline != nil {
		p.Deadline = parseDeadline(req.Deadline)
	}
	if req.Milestone != nil {
		p.Milestone = *req.Milestone
	}
	if req.MilestonePayments != nil {
		p.MilestonePayments = *req.MilestonePayments
	}
	if req.TeamMembers != nil {
		p.TeamMembers = *req.TeamMembers
	}
	return p
}

// parseDeadline expects an already validated value; "" clears the deadline.
func parseDeadline(deadline *string) *time.Time {
	if deadline == nil || strings.TrimSpace(*deadline) == "" {
		return nil
	}
	t, err := datemath.Parse(*deadline)
	if err != nil {
		return nil
	}
	return &t
}

func validateID(id string) error {
	if !validator.IsValidUUID(id) {
		return validator.ValidationErrors{validator.Invalid("id", "id must be a valid UUID")}
	}
	return nil
}

func (s *ProjectServiceImpl) toProjectResponse(p project.Project) project.ProjectResponse {
	resp := project.ProjectResponse{
		ID:                p.ID,
		Name:              p.Name,
		Client:            p.Client,
		Category:          string(p.Category),
		Status:            string(p.Status),
		ProjectCost:       p.ProjectCost,
		Milestone:         p.Milestone,
		MilestonePayments: p.MilestonePayments,
		TeamMembers:       p.TeamMembers,
		Progress:          project.CalculateProgress(p.MilestonePayments, p.ProjectCost),
		CreatedAt:         p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         p.UpdatedAt.Format(time.RFC3339),
	}
	if resp.MilestonePayments == nil {
		resp.MilestonePayments = []project.MilestonePayment{}
	}
	if resp.TeamMembers == nil {
		resp.TeamMembers = project.TeamMembers{}
	}
	if p.Deadline != nil {
		deadline := p.Deadline.Format(datemath.InputLayout)
		days := datemath.DaysRemaining(*p.Deadline, s.today())
		resp.Deadline = &deadline
		resp.DaysRemaining = &days
	}
	return resp
}
