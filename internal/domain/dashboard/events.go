package dashboard

// Topic of the change feed the dashboard listens on
const TopicChanges = "dashboard.changes"

// Change kinds published after a successful write
const (
	ChangeProjectCreated       = "project.created"
	ChangeProjectUpdated       = "project.updated"
	ChangeProjectStatusChanged = "project.status_changed"
	ChangeProjectDeleted       = "project.deleted"
	ChangeAttendanceRecorded   = "attendance.recorded"
	ChangePayslipCreated       = "payslip.created"
)

// ChangeEvent tells dashboard clients which snapshot went stale. It carries
// no aggregates; clients re-read GET /dashboard.
type ChangeEvent struct {
	Kind string `json:"kind"`
	ID   string `json:"id,omitempty"`
	At   string `json:"at"`
}
