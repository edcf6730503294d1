package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProjectRepository struct {
	project.ProjectRepository
	projects []project.Project
	err      error
}

func (s *stubProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	return s.projects, s.err
}

func TestDeadlineJobs_Digest(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	// already Jan 10 in UTC+7
	now := time.Date(2025, 1, 9, 20, 0, 0, 0, time.UTC)
	at := func(day int) *time.Time {
		d := time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC)
		return &d
	}

	repo := &stubProjectRepository{projects: []project.Project{
		{Status: project.StatusActive, Deadline: at(1)},
		{Status: project.StatusActive, Deadline: at(12)},
		{Status: project.StatusActive, Deadline: at(31)},
		{Status: project.StatusActive},
		{Status: project.StatusCompleted, Deadline: at(2)},
	}}

	jobs := NewDeadlineJobs(repo, loc, func() time.Time { return now })
	digest, err := jobs.Digest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DeadlineDigest{Active: 3, Overdue: 1, Critical: 1, Soon: 1}, digest)
}

func TestDeadlineJobs_RegisterAndRunOnce(t *testing.T) {
	repo := &stubProjectRepository{err: errors.New("connection refused")}
	jobs := NewDeadlineJobs(repo, time.UTC, nil)

	scheduler := NewScheduler()
	jobs.RegisterJobs(scheduler)
	assert.Equal(t, []string{DeadlineDigestJob}, scheduler.Jobs())

	err := scheduler.RunOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), DeadlineDigestJob)
}

func TestScheduler_StartStop(t *testing.T) {
	ran := make(chan struct{}, 1)
	scheduler := NewScheduler()
	scheduler.AddJob("tick", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	scheduler.Start(context.Background())
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("job did not run on start")
	}
	scheduler.Stop()
}
