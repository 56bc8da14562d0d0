package models

type UserRole string
type ProjectStatus string
type TaskStatus string
type ApplicationStatus string
type PaymentStatus string
type PaymentType string

const (
	UserRoleClient    UserRole = "Client"
	UserRoleDeveloper UserRole = "Developer"
	UserRoleAdmin     UserRole = "Admin"

	ProjectStatusPending    ProjectStatus = "Pending"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusReview     ProjectStatus = "Review"
	ProjectStatusCompleted  ProjectStatus = "Completed"
	ProjectStatusRejected   ProjectStatus = "Rejected"

	TaskStatusAssigned         TaskStatus = "Assigned"
	TaskStatusInProgress       TaskStatus = "In Progress"
	TaskStatusReadyForReview   TaskStatus = "Ready For Review"
	TaskStatusCompleted        TaskStatus = "Completed"
	TaskStatusChangesRequested TaskStatus = "Changes Requested"

	ApplicationStatusPending  ApplicationStatus = "Pending"
	ApplicationStatusApproved ApplicationStatus = "Approved"
	ApplicationStatusRejected ApplicationStatus = "Rejected"

	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusFailed  PaymentStatus = "Failed"

	// Incoming: client pays the platform. Payout: platform pays a developer.
	PaymentTypeIncoming PaymentType = "Incoming"
	PaymentTypePayout   PaymentType = "Payout"
)

// ValidProjectStatus reports whether s is one of the enumerated values.
// Transitions between them are free admin-writable moves.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectStatusPending, ProjectStatusInProgress, ProjectStatusReview,
		ProjectStatusCompleted, ProjectStatusRejected:
		return true
	}
	return false
}

// ValidTaskStatus reports whether s is one of the enumerated values.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusAssigned, TaskStatusInProgress, TaskStatusReadyForReview,
		TaskStatusCompleted, TaskStatusChangesRequested:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is one of the enumerated values.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	}
	return false
}
