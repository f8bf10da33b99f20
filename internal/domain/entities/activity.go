package entities

import "time"

type ActivityType string

const (
	ActivityCall     ActivityType = "Call"
	ActivityEmail    ActivityType = "Email"
	ActivityMeeting  ActivityType = "Meeting"
	ActivityDemo     ActivityType = "Demo"
	ActivityFollowUp ActivityType = "Follow-up"
	ActivityProposal ActivityType = "Proposal"
	ActivityOther    ActivityType = "Other"
)

// Activity is a sales touchpoint (call, email, meeting, ...) attached to a
// deal. The engine reads activities for completion rates and for the "no
// recent touchpoint" advisory.
type Activity struct {
	ID          string       `json:"id"`
	DealID      string       `json:"deal_id"`
	Type        ActivityType `json:"type"`
	Subject     string       `json:"subject"`
	DueDate     time.Time    `json:"due_date"`
	Completed   bool         `json:"completed"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
	OwnerID     string       `json:"owner_id,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}
