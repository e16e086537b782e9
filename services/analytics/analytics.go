package analytics

import (
	"sort"
	"time"

	claimModel "osg-portal/models/claim"
	"osg-portal/utils"

	"github.com/jinzhu/now"
)

// Summary holds the dashboard KPI counters
type Summary struct {
	TotalClaims     int `json:"total_claims"`
	OpenClaims      int `json:"open_claims"`
	CompletedClaims int `json:"completed_claims"`
	ClaimsThisMonth int `json:"claims_this_month"`
}

// Summarize computes the KPI counters over the claim list. ref anchors the
// current-month window; claims whose submitted date cannot be parsed are
// counted in the totals but never in the month bucket.
func Summarize(claims []claimModel.Claim, ref time.Time) Summary {
	monthStart := now.With(ref.In(utils.ISTLocation)).BeginningOfMonth()

	s := Summary{TotalClaims: len(claims)}
	for _, c := range claims {
		if claimModel.IsOpen(c) {
			s.OpenClaims++
		} else {
			s.CompletedClaims++
		}
		if submitted, ok := utils.ParseCivilDate(c.SubmittedDate); ok && !submitted.Before(monthStart) {
			s.ClaimsThisMonth++
		}
	}
	return s
}

// Row is one claim flattened for the analytics table
type Row struct {
	ClaimID             string `json:"claim_id"`
	CustomerName        string `json:"customer_name"`
	Product             string `json:"product"`
	Model               string `json:"model"`
	Branch              string `json:"branch"`
	Status              string `json:"status"`
	SubmittedDate       string `json:"submitted_date"`
	ClaimSettledDate    string `json:"claim_settled_date"`
	Open                bool   `json:"open"`
	Complete            bool   `json:"complete"`
	TATDays             *int   `json:"tat_days"`
	ReplacementProgress int    `json:"replacement_progress"`
	PendingStage        string `json:"pending_stage,omitempty"`
}

// Rows flattens the claim list into analytics rows. TAT is only present when
// both the submitted and settled dates parse; the pending stage only for
// replacement track claims.
func Rows(claims []claimModel.Claim) []Row {
	rows := make([]Row, 0, len(claims))
	for _, c := range claims {
		row := Row{
			ClaimID:             c.ClaimID,
			CustomerName:        c.CustomerName,
			Product:             c.Product,
			Model:               c.Model,
			Branch:              c.Branch,
			Status:              c.Status,
			SubmittedDate:       c.SubmittedDate,
			ClaimSettledDate:    c.ClaimSettledDate,
			Open:                claimModel.IsOpen(c),
			Complete:            c.Complete,
			ReplacementProgress: claimModel.ReplacementProgress(c),
		}
		if tat, ok := turnaroundDays(c); ok {
			row.TATDays = &tat
		}
		if claimModel.CanonicalizeStatus(c.Status) == claimModel.StatusReplacementApproved {
			row.PendingStage = claimModel.FirstPendingStage(c)
		}
		rows = append(rows, row)
	}
	return rows
}

func turnaroundDays(c claimModel.Claim) (int, bool) {
	submitted, ok := utils.ParseCivilDate(c.SubmittedDate)
	if !ok {
		return 0, false
	}
	settled, ok := utils.ParseCivilDate(c.ClaimSettledDate)
	if !ok {
		return 0, false
	}
	days := utils.DaysBetween(submitted, settled)
	if days < 0 {
		return 0, false
	}
	return days, true
}

// StatusCounts groups the claim list by canonical status
func StatusCounts(claims []claimModel.Claim) map[string]int {
	counts := make(map[string]int)
	for _, c := range claims {
		counts[claimModel.CanonicalizeStatus(c.Status).String()]++
	}
	return counts
}

// BranchCounts groups the claim list by branch, empty branch as Unknown
func BranchCounts(claims []claimModel.Claim) map[string]int {
	counts := make(map[string]int)
	for _, c := range claims {
		branch := c.Branch
		if branch == "" {
			branch = "Unknown"
		}
		counts[branch]++
	}
	return counts
}

// ModelCounts groups the claim list by product model, empty model as Unknown
func ModelCounts(claims []claimModel.Claim) map[string]int {
	counts := make(map[string]int)
	for _, c := range claims {
		model := c.Model
		if model == "" {
			model = "Unknown"
		}
		counts[model]++
	}
	return counts
}

// TrendPoint is one day of the submission trend
type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// SubmissionTrend counts submissions per day over the trailing window ending
// at ref, oldest day first. Days with no submissions appear with a zero count.
func SubmissionTrend(claims []claimModel.Claim, days int, ref time.Time) []TrendPoint {
	if days <= 0 {
		return []TrendPoint{}
	}

	perDay := make(map[string]int)
	for _, c := range claims {
		if submitted, ok := utils.ParseCivilDate(c.SubmittedDate); ok {
			perDay[utils.FormatCivilDate(submitted)]++
		}
	}

	end := ref.In(utils.ISTLocation)
	trend := make([]TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := utils.FormatCivilDate(end.AddDate(0, 0, -i))
		trend = append(trend, TrendPoint{Date: date, Count: perDay[date]})
	}
	return trend
}

// FunnelStage is one replacement stage with how many replacement claims have
// completed it
type FunnelStage struct {
	Label   string `json:"label"`
	Done    int    `json:"done"`
	Pending int    `json:"pending"`
}

// ReplacementFunnel aggregates stage completion across all replacement track
// claims, in fixed process order.
func ReplacementFunnel(claims []claimModel.Claim) []FunnelStage {
	var replacement []claimModel.Claim
	for _, c := range claims {
		if claimModel.CanonicalizeStatus(c.Status) == claimModel.StatusReplacementApproved {
			replacement = append(replacement, c)
		}
	}

	var funnel []FunnelStage
	if len(replacement) == 0 {
		for _, stage := range claimModel.ReplacementStages(claimModel.Claim{}) {
			funnel = append(funnel, FunnelStage{Label: stage.Label})
		}
		return funnel
	}

	for i, stage := range claimModel.ReplacementStages(replacement[0]) {
		fs := FunnelStage{Label: stage.Label}
		for _, c := range replacement {
			if claimModel.ReplacementStages(c)[i].Done {
				fs.Done++
			} else {
				fs.Pending++
			}
		}
		funnel = append(funnel, fs)
	}
	return funnel
}

// LabelCount is one entry of a ranked distribution
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TopCounts returns the n largest entries of a count map, largest first,
// ties broken by label for stable output
func TopCounts(counts map[string]int, n int) []LabelCount {
	entries := make([]LabelCount, 0, len(counts))
	for label, count := range counts {
		entries = append(entries, LabelCount{Label: label, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Label < entries[j].Label
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
