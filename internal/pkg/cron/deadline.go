package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/datemath"
)

const DeadlineDigestJob = "deadline_digest"

// DeadlineDigest is the outcome of one digest run
type DeadlineDigest struct {
	Active   int
	Overdue  int
	Critical int
	Soon     int
}

type DeadlineJobs struct {
	projectRepo project.ProjectRepository
	location    *time.Location
	now         func() time.Time
}

func NewDeadlineJobs(projectRepo project.ProjectRepository, location *time.Location, now func() time.Time) *DeadlineJobs {
	if now == nil {
		now = time.Now
	}
	return &DeadlineJobs{
		projectRepo: projectRepo,
		location:    location,
		now:         now,
	}
}

func (j *DeadlineJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(DeadlineDigestJob, 24*time.Hour, j.LogDeadlineDigest)
}

// LogDeadlineDigest logs how many active projects are overdue or close to their deadline
func (j *DeadlineJobs) LogDeadlineDigest(ctx context.Context) error {
	digest, err := j.Digest(ctx)
	if err != nil {
		return err
	}

	attrs := []any{
		"active_with_deadline", digest.Active,
		"overdue", digest.Overdue,
		"critical", digest.Critical,
		"soon", digest.Soon,
	}
	if digest.Overdue > 0 {
		slog.Warn("Cron: projects past their deadline", attrs...)
		return nil
	}
	slog.Info("Cron: deadline digest", attrs...)
	return nil
}

func (j *DeadlineJobs) Digest(ctx context.Context) (DeadlineDigest, error) {
	projects, err := j.projectRepo.List(ctx)
	if err != nil {
		return DeadlineDigest{}, fmt.Errorf("failed to list projects: %w", err)
	}

	today := datemath.CalendarDate(j.now(), j.location)
	ranked := dashboard.RankByDeadline(projects, today, len(projects))

	digest := DeadlineDigest{Active: len(ranked)}
	for _, item := range ranked {
		switch item.Urgency {
		case dashboard.UrgencyOverdue:
			digest.Overdue++
		case dashboard.UrgencyCritical:
			digest.Critical++
		case dashboard.UrgencySoon:
			digest.Soon++
		}
	}
	return digest, nil
}
