package project

import "context"

type ProjectService interface {
	CreateProject(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	GetProject(ctx context.Context, id string) (ProjectResponse, error)
	ListProjects(ctx context.Context) (ListProjectResponse, error)
	// UpdateProject applies the request and re-applies filter/truncate to the milestone rows
	UpdateProject(ctx context.Context, req UpdateProjectRequest) (ProjectResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (ProjectResponse, error)
	DeleteProject(ctx context.Context, id string) error
	GetProgress(ctx context.Context, id string) (Progress, error)
}
