package claim

import (
	"math"
	"strings"
	"time"

	claimTypes "osg-portal/types/claim"
	"osg-portal/utils"
)

// ViewSection identifies which workflow subsection the claim workspace opens.
type ViewSection string

const (
	SectionNone        ViewSection = ""
	SectionFollowUp    ViewSection = "follow_up"
	SectionRepair      ViewSection = "repair"
	SectionReplacement ViewSection = "replacement"
	SectionAll         ViewSection = "all"
)

// DateField names a date input on the claim workspace.
type DateField string

const (
	FieldNone          DateField = ""
	FieldSubmittedDate DateField = "submitted_date"
	FieldFollowUpDate  DateField = "follow_up_date"
)

// ViewMode is the presentation plan for one claim, derived from its status.
// The API returns it alongside the claim so the front end renders without
// duplicating the status dispatch.
type ViewMode struct {
	CanonicalStatus CanonicalStatus `json:"canonical_status"`
	ShowWorkflowTab bool            `json:"show_workflow_tab"`
	ShowAllTabs     bool            `json:"show_all_tabs"`
	WorkflowSection ViewSection     `json:"workflow_section"`
	AutoFillField   DateField       `json:"auto_fill_field"`
	AutoFillValue   string          `json:"auto_fill_value,omitempty"`
	ReadOnlyField   DateField       `json:"read_only_field"`
	ShowSaveButton  bool            `json:"show_save_button"`
	Historical      bool            `json:"historical"`
}

// ViewModeFor resolves the workspace configuration for a raw status string.
// today is the IST calendar date used for auto-filled fields. Unrecognized
// statuses get the full workspace rather than an error.
func ViewModeFor(status string, today string) ViewMode {
	switch CanonicalizeStatus(status) {
	case StatusSubmitted:
		return ViewMode{
			CanonicalStatus: StatusSubmitted,
			ReadOnlyField:   FieldSubmittedDate,
		}
	case StatusRegistered:
		return ViewMode{
			CanonicalStatus: StatusRegistered,
			AutoFillField:   FieldSubmittedDate,
			AutoFillValue:   today,
			ReadOnlyField:   FieldSubmittedDate,
			ShowSaveButton:  true,
		}
	case StatusFollowUp:
		return ViewMode{
			CanonicalStatus: StatusFollowUp,
			ShowWorkflowTab: true,
			WorkflowSection: SectionFollowUp,
			AutoFillField:   FieldFollowUpDate,
			AutoFillValue:   today,
			ReadOnlyField:   FieldFollowUpDate,
			ShowSaveButton:  true,
		}
	case StatusRepairCompleted:
		return ViewMode{
			CanonicalStatus: StatusRepairCompleted,
			ShowWorkflowTab: true,
			WorkflowSection: SectionRepair,
			ReadOnlyField:   FieldSubmittedDate,
			ShowSaveButton:  true,
		}
	case StatusReplacementApproved:
		return ViewMode{
			CanonicalStatus: StatusReplacementApproved,
			ShowWorkflowTab: true,
			WorkflowSection: SectionReplacement,
			ReadOnlyField:   FieldSubmittedDate,
			ShowSaveButton:  true,
		}
	case StatusClosed:
		return ViewMode{
			CanonicalStatus: StatusClosed,
			ShowWorkflowTab: true,
			WorkflowSection: SectionFollowUp,
			ReadOnlyField:   FieldSubmittedDate,
			ShowSaveButton:  true,
			Historical:      true,
		}
	default:
		return ViewMode{
			CanonicalStatus: StatusOther,
			ShowWorkflowTab: true,
			ShowAllTabs:     true,
			WorkflowSection: SectionAll,
			ReadOnlyField:   FieldSubmittedDate,
			ShowSaveButton:  true,
		}
	}
}

// PendingStageUnknown is returned when every replacement stage is already done.
const PendingStageUnknown = "Unknown"

var replacementStageLabels = [6]string{
	"Customer Confirmation",
	"OSG Approval",
	"Mail to Store",
	"Invoice Generated",
	"Invoice Sent",
	"Settled with Accounts",
}

// ReplacementStage is one step of the replacement track.
type ReplacementStage struct {
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

func replacementFlags(c Claim) [6]bool {
	return [6]bool{
		c.ReplacementConfirmation,
		c.ReplacementOSGApproval,
		c.ReplacementMailStore,
		c.ReplacementInvoiceGen,
		c.ReplacementInvoiceSent,
		c.ReplacementSettledAccounts,
	}
}

// ReplacementStages returns the six stages in fixed process order
func ReplacementStages(c Claim) []ReplacementStage {
	flags := replacementFlags(c)
	stages := make([]ReplacementStage, len(replacementStageLabels))
	for i, label := range replacementStageLabels {
		stages[i] = ReplacementStage{Label: label, Done: flags[i]}
	}
	return stages
}

// ReplacementProgress returns the percentage of completed replacement stages,
// rounded to the nearest integer
func ReplacementProgress(c Claim) int {
	done := 0
	for _, flag := range replacementFlags(c) {
		if flag {
			done++
		}
	}
	return int(math.Round(float64(done) * 100 / float64(len(replacementStageLabels))))
}

// FirstPendingStage returns the label of the first stage not yet done,
// or PendingStageUnknown when all stages are complete
func FirstPendingStage(c Claim) string {
	flags := replacementFlags(c)
	for i, label := range replacementStageLabels {
		if !flags[i] {
			return label
		}
	}
	return PendingStageUnknown
}

// ApplyUpdate merges a partial save into an existing claim and returns the
// merged copy. Only non-nil request fields change the stored value; the claim
// ID never changes. now drives the note timestamp and LastUpdated.
func ApplyUpdate(existing Claim, req claimTypes.ClaimUpdateRequest, now time.Time) Claim {
	c := existing

	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}

	if req.Status != nil {
		c.Status = strings.TrimSpace(*req.Status)
	}
	setString(&c.SubmittedDate, req.SubmittedDate)
	setString(&c.FollowUpDate, req.FollowUpDate)
	setString(&c.ClaimSettledDate, req.ClaimSettledDate)
	setString(&c.AssignedStaff, req.AssignedStaff)
	setString(&c.CustomerName, req.CustomerName)
	setString(&c.MobileNumber, req.MobileNumber)
	setString(&c.Address, req.Address)
	setString(&c.Product, req.Product)
	setString(&c.Model, req.Model)
	setString(&c.SerialNumber, req.SerialNumber)
	setString(&c.InvoiceNumber, req.InvoiceNumber)
	setString(&c.OSID, req.OSID)
	setString(&c.Branch, req.Branch)
	setString(&c.Issue, req.Issue)

	setBool(&c.RepairFeedbackCompleted, req.RepairFeedbackCompleted)
	setBool(&c.ReplacementConfirmation, req.ReplacementConfirmation)
	setBool(&c.ReplacementOSGApproval, req.ReplacementOSGApproval)
	setBool(&c.ReplacementMailStore, req.ReplacementMailStore)
	setBool(&c.ReplacementInvoiceGen, req.ReplacementInvoiceGen)
	setBool(&c.ReplacementInvoiceSent, req.ReplacementInvoiceSent)
	setBool(&c.ReplacementSettledAccounts, req.ReplacementSettledAccounts)

	newStatus := CanonicalizeStatus(c.Status)

	// Saving the repair-completed status resets the replacement track.
	if req.Status != nil && newStatus == StatusRepairCompleted {
		c.ReplacementConfirmation = false
		c.ReplacementOSGApproval = false
		c.ReplacementMailStore = false
		c.ReplacementInvoiceGen = false
		c.ReplacementInvoiceSent = false
		c.ReplacementSettledAccounts = false
	}

	if req.NewNote != nil {
		note := strings.TrimSpace(*req.NewNote)
		if note != "" {
			stamped := "[" + utils.NoteTimestamp(now) + "] " + note
			if c.FollowUpNotes == "" {
				c.FollowUpNotes = stamped
			} else {
				c.FollowUpNotes = c.FollowUpNotes + "\n" + stamped
			}
			c.Remarks = note
		}
	}

	if req.RepairComplete != nil || req.ReplacementComplete != nil {
		c.Complete = (req.RepairComplete != nil && *req.RepairComplete) ||
			(req.ReplacementComplete != nil && *req.ReplacementComplete)
	}
	if newStatus == StatusClosed {
		c.Complete = true
	}

	c.ClaimID = existing.ClaimID
	c.LastUpdated = now
	return c
}

// IsOpen reports whether the claim still counts as an open case. Repair
// completed claims are closed regardless of the complete flag; replacement
// claims close only once marked complete.
func IsOpen(c Claim) bool {
	cs := CanonicalizeStatus(c.Status)
	if cs == StatusClosed || cs == StatusRepairCompleted {
		return false
	}
	if strings.Join(strings.Fields(strings.ToLower(c.Status)), " ") == "settled" {
		return false
	}
	if cs == StatusReplacementApproved && c.Complete {
		return false
	}
	return true
}
