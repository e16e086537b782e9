package claim

import "strings"

// CanonicalStatus is the normalized workflow status. The stored Status column
// keeps whatever text was saved; canonicalization happens at read time so that
// legacy rows and hand-typed variants still land on a workflow track.
type CanonicalStatus string

const (
	StatusSubmitted           CanonicalStatus = "Submitted"
	StatusRegistered          CanonicalStatus = "Registered"
	StatusFollowUp            CanonicalStatus = "FollowUp"
	StatusRepairCompleted     CanonicalStatus = "RepairCompleted"
	StatusReplacementApproved CanonicalStatus = "ReplacementApproved"
	StatusClosed              CanonicalStatus = "Closed"
	StatusOther               CanonicalStatus = "Other"
)

// CanonicalizeStatus maps a raw stored status onto a canonical one.
// Comparison is case-insensitive and ignores surrounding and repeated
// whitespace. Anything unrecognized maps to StatusOther, never an error.
func CanonicalizeStatus(raw string) CanonicalStatus {
	normalized := strings.Join(strings.Fields(strings.ToLower(raw)), " ")
	switch normalized {
	case "submitted":
		return StatusSubmitted
	case "registered":
		return StatusRegistered
	case "follow up", "followup", "follow-up":
		return StatusFollowUp
	case "repair completed":
		return StatusRepairCompleted
	case "replacement approved":
		return StatusReplacementApproved
	case "closed":
		return StatusClosed
	default:
		return StatusOther
	}
}

// Helper methods for CanonicalStatus
func (cs CanonicalStatus) String() string {
	return string(cs)
}

func (cs CanonicalStatus) IsValid() bool {
	switch cs {
	case StatusSubmitted, StatusRegistered, StatusFollowUp, StatusRepairCompleted, StatusReplacementApproved, StatusClosed, StatusOther:
		return true
	default:
		return false
	}
}

// IsTerminal returns true for statuses that end the workflow
func (cs CanonicalStatus) IsTerminal() bool {
	return cs == StatusClosed || cs == StatusRepairCompleted
}

// GetAllCanonicalStatuses returns all canonical statuses
func GetAllCanonicalStatuses() []CanonicalStatus {
	return []CanonicalStatus{
		StatusSubmitted,
		StatusRegistered,
		StatusFollowUp,
		StatusRepairCompleted,
		StatusReplacementApproved,
		StatusClosed,
		StatusOther,
	}
}
