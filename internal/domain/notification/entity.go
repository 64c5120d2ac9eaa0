package notification

import "time"

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeApprovalRequested NotificationType = "approval_requested"
	TypeApprovalApproved  NotificationType = "approval_approved"
	TypeApprovalRejected  NotificationType = "approval_rejected"
	TypeApprovalEscalated NotificationType = "approval_escalated"
	TypeApproverMissing   NotificationType = "approver_missing"
)

// Notification is a persisted per-recipient record. Delivery (email, push)
// is another system's problem; this service only writes and lists them.
type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
