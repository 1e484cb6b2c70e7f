package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification type constants
const (
	NotifTypeSubmission    = "SUBMISSION"
	NotifTypeApproval      = "APPROVAL"
	NotifTypeRejection     = "REJECTION"
	NotifTypeReturn        = "RETURN"
	NotifTypeCancel        = "CANCEL"
	NotifTypeBOSSubmission = "BOS_SUBMISSION"
)

// Notification action constants
const (
	ActionSubmitted = "SUBMITTED"
	ActionPending   = "PENDING"
	ActionApproved  = "APPROVED"
	ActionReturned  = "RETURNED"
	ActionCancelled = "CANCELLED"
)

// Notification is one workflow event. Rows are append-only: workflow logic
// never touches a row after creation, only the read-state fields change.
type Notification struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Gencode string `gorm:"type:text;not null;index" json:"gencode"`
	RefID   int    `gorm:"column:refid;not null" json:"refid"`

	NotificationType string `gorm:"type:text;not null;index" json:"notification_type"`
	Action           string `gorm:"type:text;not null" json:"action"`

	ActorUserID     string `gorm:"column:actor_userid;type:text;not null;index" json:"actor_userid"`
	ActorName       string `gorm:"type:text;not null" json:"actor_name"`
	RecipientUserID string `gorm:"column:recipient_userid;type:text;index" json:"recipient_userid"`
	RecipientName   string `gorm:"type:text" json:"recipient_name"`

	ApprovalLevel string `gorm:"type:text" json:"approval_level"`
	CustType      string `gorm:"column:custtype;type:text" json:"custtype"`

	Title   string `gorm:"type:text;not null" json:"title"`
	Message string `gorm:"type:text;not null" json:"message"`
	Remarks string `gorm:"type:text" json:"remarks"`

	IsRead      bool       `gorm:"default:false;index" json:"is_read"`
	IsSentEmail bool       `gorm:"column:is_sent_email;default:false" json:"is_sent_email"`
	ReadAt      *time.Time `json:"read_at"`

	FormData       string `gorm:"type:jsonb" json:"form_data"`
	PreviousStatus string `gorm:"type:text" json:"previous_status"`
	NewStatus      string `gorm:"type:text;not null" json:"new_status"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Outbox entry status
const (
	OutboxPending = "PENDING"
	OutboxSending = "SENDING"
	OutboxSent    = "SENT"
	OutboxFailed  = "FAILED"
)

// NotificationOutbox decouples notification delivery from the workflow
// transition: the transition commits regardless of dispatch outcome, and
// failed entries stay visible for retry and alerting.
type NotificationOutbox struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Payload   string    `gorm:"type:jsonb;not null" json:"payload"` // serialized Notification
	Status    string    `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	Attempts  int       `gorm:"default:0" json:"attempts"`
	LastError string    `gorm:"type:text" json:"last_error"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (NotificationOutbox) TableName() string { return "notification_outbox" }
