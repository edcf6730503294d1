package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/payslip"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/numeric"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRepository_CreateAndList(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewAttendanceRepository(setup.DB)
	ctx := context.Background()

	halfDay := attendance.DayTypeHalf
	hours := decimal.NewFromInt(4)
	record := attendance.Attendance{
		StaffID:     "EMP-001",
		Name:        "Asha Verma",
		Date:        time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		Status:      attendance.StatusPresent,
		DayType:     &halfDay,
		HoursWorked: &hours,
	}

	created, err := repo.Create(ctx, record)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = repo.Create(ctx, record)
	assert.ErrorIs(t, err, attendance.ErrAttendanceAlreadyRecorded)

	month := "2025-01"
	list, err := repo.List(ctx, attendance.AttendanceFilter{Month: &month})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].HoursWorked)
	assert.True(t, list[0].HoursWorked.Equal(hours))

	other := "2025-02"
	list, err = repo.List(ctx, attendance.AttendanceFilter{Month: &other})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPayslipRepository_DuplicateMonth(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewPayslipRepository(setup.DB)
	ctx := context.Background()

	entry := payslip.NewPayslipEntry("Asha Verma", "2025-01",
		decimal.NewFromInt(5000), decimal.NewFromInt(500), decimal.NewFromInt(200))

	_, err := repo.Create(ctx, entry)
	require.NoError(t, err)

	_, err = repo.Create(ctx, entry)
	assert.ErrorIs(t, err, payslip.ErrPayslipAlreadyExists)
}

func TestProjectRepository_UpdateReplacesPayments(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewProjectRepository(setup.DB)
	ctx := context.Background()

	team := project.TeamMembers{}
	team.Add(project.RoleDeveloper, "Rina")

	created, err := repo.Create(ctx, project.Project{
		Name:        "Storefront",
		Category:    project.CategoryWebDevelopment,
		Status:      project.StatusActive,
		ProjectCost: decimal.NewFromInt(18000),
		Milestone:   3,
		TeamMembers: team,
		MilestonePayments: []project.MilestonePayment{
			{Amount: numeric.FromInt(6000), Paid: true},
			{Amount: numeric.FromInt(6000)},
			{Description: "handover"},
		},
	})
	require.NoError(t, err)

	created.Milestone = 2
	created.MilestonePayments = project.PrepareForSave(created.MilestonePayments, created.Milestone)
	err = postgresql.WithTransaction(ctx, setup.DB, func(txCtx context.Context) error {
		_, err := repo.Update(txCtx, created)
		return err
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Milestone)
	require.Len(t, got.MilestonePayments, 2)
	assert.True(t, got.MilestonePayments[0].Paid)
	assert.Equal(t, []string{"Rina"}, got.TeamMembers[project.RoleDeveloper])

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.True(t, errors.Is(err, project.ErrProjectNotFound))
}

func TestWithTransaction_RollsBack(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewPayslipRepository(setup.DB)
	ctx := context.Background()

	boom := errors.New("boom")
	err := postgresql.WithTransaction(ctx, setup.DB, func(txCtx context.Context) error {
		entry := payslip.NewPayslipEntry("Bela", "2025-01", decimal.NewFromInt(1), decimal.Zero, decimal.Zero)
		if _, err := repo.Create(txCtx, entry); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := repo.List(ctx, payslip.PayslipFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}
