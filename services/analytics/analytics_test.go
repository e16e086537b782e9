package analytics

import (
	"strings"
	"testing"
	"time"

	claimModel "osg-portal/models/claim"
	"osg-portal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleClaims() []claimModel.Claim {
	return []claimModel.Claim{
		{ClaimID: "CLM-0001", Status: "Submitted", SubmittedDate: "2026-08-05", Branch: "Calicut", Model: "WM-700", CustomerName: "Anjali Menon"},
		{ClaimID: "CLM-0002", Status: "Follow Up", SubmittedDate: "2026-08-27", Branch: "Kochi", Model: "TV-55"},
		{ClaimID: "CLM-0003", Status: "Closed", SubmittedDate: "2026-07-20", ClaimSettledDate: "2026-07-30", Branch: "Calicut", Model: "WM-700", Complete: true},
		{ClaimID: "CLM-0004", Status: "Repair Completed", SubmittedDate: "2026-08-10", Branch: "", Model: ""},
		{
			ClaimID: "CLM-0005", Status: "Replacement Approved", SubmittedDate: "2026-08-01",
			ReplacementConfirmation: true, ReplacementOSGApproval: true,
		},
	}
}

func TestSummarize(t *testing.T) {
	ref := time.Date(2026, 8, 29, 12, 0, 0, 0, utils.ISTLocation)

	s := Summarize(sampleClaims(), ref)

	assert.Equal(t, 5, s.TotalClaims)
	// Closed and Repair Completed are done; the replacement claim is still open.
	assert.Equal(t, 3, s.OpenClaims)
	assert.Equal(t, 2, s.CompletedClaims)
	assert.Equal(t, 4, s.ClaimsThisMonth)
}

func TestSummarizeUnparsableSubmittedDate(t *testing.T) {
	ref := time.Date(2026, 8, 29, 12, 0, 0, 0, utils.ISTLocation)
	claims := []claimModel.Claim{{ClaimID: "CLM-0001", Status: "Submitted", SubmittedDate: "not a date"}}

	s := Summarize(claims, ref)

	assert.Equal(t, 1, s.TotalClaims)
	assert.Equal(t, 0, s.ClaimsThisMonth)
}

func TestRows(t *testing.T) {
	rows := Rows(sampleClaims())
	require.Len(t, rows, 5)

	byID := make(map[string]Row)
	for _, r := range rows {
		byID[r.ClaimID] = r
	}

	settled := byID["CLM-0003"]
	require.NotNil(t, settled.TATDays)
	assert.Equal(t, 10, *settled.TATDays)
	assert.False(t, settled.Open)

	open := byID["CLM-0001"]
	assert.Nil(t, open.TATDays)
	assert.True(t, open.Open)
	assert.Empty(t, open.PendingStage)

	replacement := byID["CLM-0005"]
	assert.Equal(t, 33, replacement.ReplacementProgress)
	assert.Equal(t, "Mail to Store", replacement.PendingStage)
	assert.True(t, replacement.Open)
}

func TestStatusCounts(t *testing.T) {
	counts := StatusCounts(sampleClaims())

	assert.Equal(t, 1, counts["Submitted"])
	assert.Equal(t, 1, counts["FollowUp"])
	assert.Equal(t, 1, counts["Closed"])
	assert.Equal(t, 1, counts["RepairCompleted"])
	assert.Equal(t, 1, counts["ReplacementApproved"])
}

func TestBranchAndModelCounts(t *testing.T) {
	branches := BranchCounts(sampleClaims())
	assert.Equal(t, 2, branches["Calicut"])
	assert.Equal(t, 1, branches["Kochi"])
	assert.Equal(t, 2, branches["Unknown"])

	models := ModelCounts(sampleClaims())
	assert.Equal(t, 2, models["WM-700"])
	assert.Equal(t, 2, models["Unknown"])
}

func TestTopCounts(t *testing.T) {
	top := TopCounts(map[string]int{"a": 1, "b": 3, "c": 3, "d": 2}, 3)

	require.Len(t, top, 3)
	assert.Equal(t, LabelCount{Label: "b", Count: 3}, top[0])
	assert.Equal(t, LabelCount{Label: "c", Count: 3}, top[1])
	assert.Equal(t, LabelCount{Label: "d", Count: 2}, top[2])
}

func TestSubmissionTrend(t *testing.T) {
	ref := time.Date(2026, 8, 29, 12, 0, 0, 0, utils.ISTLocation)
	claims := []claimModel.Claim{
		{SubmittedDate: "2026-08-29"},
		{SubmittedDate: "2026-08-29"},
		{SubmittedDate: "2026-08-28"},
		{SubmittedDate: "2026-08-01"},
	}

	trend := SubmissionTrend(claims, 3, ref)

	require.Len(t, trend, 3)
	assert.Equal(t, TrendPoint{Date: "2026-08-27", Count: 0}, trend[0])
	assert.Equal(t, TrendPoint{Date: "2026-08-28", Count: 1}, trend[1])
	assert.Equal(t, TrendPoint{Date: "2026-08-29", Count: 2}, trend[2])
}

func TestReplacementFunnel(t *testing.T) {
	claims := []claimModel.Claim{
		{Status: "Replacement Approved", ReplacementConfirmation: true, ReplacementOSGApproval: true},
		{Status: "Replacement Approved", ReplacementConfirmation: true},
		{Status: "Submitted"},
	}

	funnel := ReplacementFunnel(claims)

	require.Len(t, funnel, 6)
	assert.Equal(t, FunnelStage{Label: "Customer Confirmation", Done: 2, Pending: 0}, funnel[0])
	assert.Equal(t, FunnelStage{Label: "OSG Approval", Done: 1, Pending: 1}, funnel[1])
	assert.Equal(t, FunnelStage{Label: "Mail to Store", Done: 0, Pending: 2}, funnel[2])
}

func TestReplacementFunnelEmpty(t *testing.T) {
	funnel := ReplacementFunnel(nil)

	require.Len(t, funnel, 6)
	for _, stage := range funnel {
		assert.Zero(t, stage.Done)
		assert.Zero(t, stage.Pending)
	}
}

func TestExportCSV(t *testing.T) {
	claims := []claimModel.Claim{
		{
			ClaimID:       "CLM-0001",
			SubmittedDate: "2026-08-05",
			CustomerName:  "Menon, Anjali",
			MobileNumber:  "9876543210",
			Status:        "Closed",
			Complete:      true,
		},
	}

	out := string(ExportCSV(claims))
	lines := strings.Split(strings.TrimRight(out, "\r\n"), "\r\n")
	require.Len(t, lines, 2)

	assert.True(t, strings.HasPrefix(lines[0], "Claim ID,Date,Customer Name"))
	assert.Contains(t, lines[1], "CLM-0001")
	// Commas inside fields are sanitized, not quoted.
	assert.Contains(t, lines[1], "Menon; Anjali")
	assert.Contains(t, lines[1], "Yes")
}
