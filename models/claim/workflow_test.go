package claim

import (
	"testing"
	"time"

	claimTypes "osg-portal/types/claim"
	"osg-portal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestViewModeForDispatchTable(t *testing.T) {
	today := "2026-08-29"

	tests := []struct {
		name   string
		status string
		want   ViewMode
	}{
		{
			name:   "submitted shows info only with hidden save",
			status: "Submitted",
			want: ViewMode{
				CanonicalStatus: StatusSubmitted,
				ReadOnlyField:   FieldSubmittedDate,
			},
		},
		{
			name:   "registered auto fills submitted date",
			status: "Registered",
			want: ViewMode{
				CanonicalStatus: StatusRegistered,
				AutoFillField:   FieldSubmittedDate,
				AutoFillValue:   today,
				ReadOnlyField:   FieldSubmittedDate,
				ShowSaveButton:  true,
			},
		},
		{
			name:   "follow up opens its subsection and auto fills follow up date",
			status: "Follow Up",
			want: ViewMode{
				CanonicalStatus: StatusFollowUp,
				ShowWorkflowTab: true,
				WorkflowSection: SectionFollowUp,
				AutoFillField:   FieldFollowUpDate,
				AutoFillValue:   today,
				ReadOnlyField:   FieldFollowUpDate,
				ShowSaveButton:  true,
			},
		},
		{
			name:   "repair completed opens repair subsection",
			status: "Repair Completed",
			want: ViewMode{
				CanonicalStatus: StatusRepairCompleted,
				ShowWorkflowTab: true,
				WorkflowSection: SectionRepair,
				ReadOnlyField:   FieldSubmittedDate,
				ShowSaveButton:  true,
			},
		},
		{
			name:   "replacement approved opens replacement subsection",
			status: "Replacement Approved",
			want: ViewMode{
				CanonicalStatus: StatusReplacementApproved,
				ShowWorkflowTab: true,
				WorkflowSection: SectionReplacement,
				ReadOnlyField:   FieldSubmittedDate,
				ShowSaveButton:  true,
			},
		},
		{
			name:   "closed is the historical follow up view",
			status: "Closed",
			want: ViewMode{
				CanonicalStatus: StatusClosed,
				ShowWorkflowTab: true,
				WorkflowSection: SectionFollowUp,
				ReadOnlyField:   FieldSubmittedDate,
				ShowSaveButton:  true,
				Historical:      true,
			},
		},
		{
			name:   "unknown status gets the full workspace",
			status: "Waiting for spare parts",
			want: ViewMode{
				CanonicalStatus: StatusOther,
				ShowWorkflowTab: true,
				ShowAllTabs:     true,
				WorkflowSection: SectionAll,
				ReadOnlyField:   FieldSubmittedDate,
				ShowSaveButton:  true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ViewModeFor(tt.status, today))
		})
	}
}

func TestViewModeForCaseAndWhitespaceVariants(t *testing.T) {
	today := "2026-08-29"
	canonical := ViewModeFor("Follow Up", today)

	for _, variant := range []string{"follow up", "FOLLOW UP", "  Follow   Up  ", "followup"} {
		assert.Equal(t, canonical, ViewModeFor(variant, today), "variant %q", variant)
	}
}

func TestReplacementProgressAndPendingStage(t *testing.T) {
	tests := []struct {
		name         string
		flags        [6]bool
		wantProgress int
		wantPending  string
	}{
		{"nothing done", [6]bool{}, 0, "Customer Confirmation"},
		{"two done", [6]bool{true, true, false, false, false, false}, 33, "Mail to Store"},
		{"three done", [6]bool{true, true, true, false, false, false}, 50, "Invoice Generated"},
		{"five done", [6]bool{true, true, true, true, true, false}, 83, "Settled with Accounts"},
		{"all done", [6]bool{true, true, true, true, true, true}, 100, PendingStageUnknown},
		{"gap counts but first pending wins", [6]bool{true, false, true, false, false, false}, 33, "OSG Approval"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Claim{
				ReplacementConfirmation:    tt.flags[0],
				ReplacementOSGApproval:     tt.flags[1],
				ReplacementMailStore:       tt.flags[2],
				ReplacementInvoiceGen:      tt.flags[3],
				ReplacementInvoiceSent:     tt.flags[4],
				ReplacementSettledAccounts: tt.flags[5],
			}
			assert.Equal(t, tt.wantProgress, ReplacementProgress(c))
			assert.Equal(t, tt.wantPending, FirstPendingStage(c))
		})
	}
}

func TestReplacementStagesOrder(t *testing.T) {
	stages := ReplacementStages(Claim{ReplacementConfirmation: true})
	require.Len(t, stages, 6)

	labels := make([]string, len(stages))
	for i, s := range stages {
		labels[i] = s.Label
	}
	assert.Equal(t, []string{
		"Customer Confirmation",
		"OSG Approval",
		"Mail to Store",
		"Invoice Generated",
		"Invoice Sent",
		"Settled with Accounts",
	}, labels)
	assert.True(t, stages[0].Done)
	assert.False(t, stages[1].Done)
}

func TestApplyUpdateNoteAppend(t *testing.T) {
	now := time.Date(2026, 8, 29, 14, 30, 5, 0, utils.ISTLocation)
	existing := Claim{
		ClaimID:       "CLM-0007",
		FollowUpNotes: "[20/08/2026, 11:00:00 am] called customer",
		Remarks:       "called customer",
	}

	merged := ApplyUpdate(existing, claimTypes.ClaimUpdateRequest{
		NewNote: strPtr("parts arrived"),
	}, now)

	assert.Equal(t,
		"[20/08/2026, 11:00:00 am] called customer\n[29/08/2026, 2:30:05 pm] parts arrived",
		merged.FollowUpNotes)
	assert.Equal(t, "parts arrived", merged.Remarks)
}

func TestApplyUpdateNoteAppendToEmptyHistory(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 5, 0, 0, utils.ISTLocation)

	merged := ApplyUpdate(Claim{ClaimID: "CLM-0001"}, claimTypes.ClaimUpdateRequest{
		NewNote: strPtr("first contact"),
	}, now)

	assert.Equal(t, "[29/08/2026, 9:05:00 am] first contact", merged.FollowUpNotes)
	assert.Equal(t, "first contact", merged.Remarks)
}

func TestApplyUpdateEmptyNoteLeavesHistoryUntouched(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 5, 0, 0, utils.ISTLocation)
	existing := Claim{
		ClaimID:       "CLM-0002",
		FollowUpNotes: "[20/08/2026, 11:00:00 am] called customer",
		Remarks:       "called customer",
	}

	for _, req := range []claimTypes.ClaimUpdateRequest{
		{},
		{NewNote: strPtr("")},
		{NewNote: strPtr("   ")},
	} {
		merged := ApplyUpdate(existing, req, now)
		assert.Equal(t, existing.FollowUpNotes, merged.FollowUpNotes)
		assert.Equal(t, existing.Remarks, merged.Remarks)
	}
}

func TestApplyUpdateCompletionDerivation(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, utils.ISTLocation)

	t.Run("repair checkbox sets complete", func(t *testing.T) {
		merged := ApplyUpdate(Claim{}, claimTypes.ClaimUpdateRequest{
			Status:         strPtr("Repair Completed"),
			RepairComplete: boolPtr(true),
		}, now)
		assert.True(t, merged.Complete)
	})

	t.Run("replacement checkbox sets complete", func(t *testing.T) {
		merged := ApplyUpdate(Claim{}, claimTypes.ClaimUpdateRequest{
			Status:              strPtr("Replacement Approved"),
			ReplacementComplete: boolPtr(true),
		}, now)
		assert.True(t, merged.Complete)
	})

	t.Run("unticking both checkboxes clears complete", func(t *testing.T) {
		merged := ApplyUpdate(Claim{Complete: true}, claimTypes.ClaimUpdateRequest{
			RepairComplete:      boolPtr(false),
			ReplacementComplete: boolPtr(false),
		}, now)
		assert.False(t, merged.Complete)
	})

	t.Run("no checkbox keeps previous value", func(t *testing.T) {
		merged := ApplyUpdate(Claim{Complete: true}, claimTypes.ClaimUpdateRequest{
			Status: strPtr("Follow Up"),
		}, now)
		assert.True(t, merged.Complete)

		merged = ApplyUpdate(Claim{Complete: false}, claimTypes.ClaimUpdateRequest{
			Status: strPtr("Follow Up"),
		}, now)
		assert.False(t, merged.Complete)
	})

	t.Run("closed forces complete regardless of checkboxes", func(t *testing.T) {
		merged := ApplyUpdate(Claim{}, claimTypes.ClaimUpdateRequest{
			Status:              strPtr("Closed"),
			RepairComplete:      boolPtr(false),
			ReplacementComplete: boolPtr(false),
		}, now)
		assert.True(t, merged.Complete)
	})
}

func TestApplyUpdateRepairCompletedClearsReplacementTrack(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, utils.ISTLocation)
	existing := Claim{
		ClaimID:                    "CLM-0003",
		Status:                     "Replacement Approved",
		ReplacementConfirmation:    true,
		ReplacementOSGApproval:     true,
		ReplacementMailStore:       true,
		ReplacementInvoiceGen:      true,
		ReplacementInvoiceSent:     true,
		ReplacementSettledAccounts: true,
	}

	merged := ApplyUpdate(existing, claimTypes.ClaimUpdateRequest{
		Status: strPtr("Repair Completed"),
	}, now)

	assert.False(t, merged.ReplacementConfirmation)
	assert.False(t, merged.ReplacementOSGApproval)
	assert.False(t, merged.ReplacementMailStore)
	assert.False(t, merged.ReplacementInvoiceGen)
	assert.False(t, merged.ReplacementInvoiceSent)
	assert.False(t, merged.ReplacementSettledAccounts)
}

func TestApplyUpdatePartialMergeLeavesOtherFieldsUntouched(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, utils.ISTLocation)
	existing := Claim{
		ClaimID:       "CLM-0004",
		Status:        "Registered",
		SubmittedDate: "2026-08-10",
		FollowUpDate:  "2026-08-20",
		CustomerName:  "Anjali Menon",
		MobileNumber:  "9876543210",
		Product:       "Washing Machine",
		Model:         "WM-700",
		Branch:        "Calicut",
		AssignedStaff: "Ravi",
		Remarks:       "initial inspection done",
	}

	merged := ApplyUpdate(existing, claimTypes.ClaimUpdateRequest{
		Status:       strPtr("Follow Up"),
		FollowUpDate: strPtr("2026-08-29"),
	}, now)

	assert.Equal(t, "Follow Up", merged.Status)
	assert.Equal(t, "2026-08-29", merged.FollowUpDate)
	assert.Equal(t, existing.ClaimID, merged.ClaimID)
	assert.Equal(t, existing.SubmittedDate, merged.SubmittedDate)
	assert.Equal(t, existing.CustomerName, merged.CustomerName)
	assert.Equal(t, existing.MobileNumber, merged.MobileNumber)
	assert.Equal(t, existing.Product, merged.Product)
	assert.Equal(t, existing.Model, merged.Model)
	assert.Equal(t, existing.Branch, merged.Branch)
	assert.Equal(t, existing.AssignedStaff, merged.AssignedStaff)
	assert.Equal(t, existing.Remarks, merged.Remarks)
	assert.Equal(t, now, merged.LastUpdated)
}

func TestApplyUpdateTrimsStatus(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, utils.ISTLocation)

	merged := ApplyUpdate(Claim{}, claimTypes.ClaimUpdateRequest{
		Status: strPtr("  Closed  "),
	}, now)

	assert.Equal(t, "Closed", merged.Status)
	assert.True(t, merged.Complete)
}

func TestIsOpen(t *testing.T) {
	tests := []struct {
		name  string
		claim Claim
		want  bool
	}{
		{"submitted is open", Claim{Status: "Submitted"}, true},
		{"registered is open", Claim{Status: "Registered"}, true},
		{"follow up is open", Claim{Status: "Follow Up"}, true},
		{"free text is open", Claim{Status: "Waiting for spare parts"}, true},
		{"closed is not open", Claim{Status: "Closed"}, false},
		{"settled is not open", Claim{Status: "Settled"}, false},
		{"settled case variant is not open", Claim{Status: " SETTLED "}, false},
		{"repair completed closed even when incomplete", Claim{Status: "Repair Completed", Complete: false}, false},
		{"repair completed closed when complete", Claim{Status: "Repair Completed", Complete: true}, false},
		{"replacement approved incomplete stays open", Claim{Status: "Replacement Approved", Complete: false}, true},
		{"replacement approved complete is closed", Claim{Status: "Replacement Approved", Complete: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOpen(tt.claim))
		})
	}
}
