package analytics

import (
	"strconv"
	"strings"

	"osg-portal/constants"
	claimModel "osg-portal/models/claim"
	"osg-portal/utils"
)

var exportHeaders = []string{
	constants.ColClaimID,
	constants.ColDate,
	constants.ColCustomerName,
	constants.ColMobileNumber,
	constants.ColProduct,
	constants.ColModel,
	constants.ColSerialNumber,
	constants.ColInvoiceNumber,
	constants.ColBranch,
	constants.ColStatus,
	constants.ColSettledDate,
	constants.ColSettledTAT,
	"Replacement Progress (%)",
	constants.ColComplete,
	constants.ColAssignedStaff,
}

// ExportCSV renders the claim list as a CSV document. Field values are
// sanitized rather than quoted, matching the rows the sheet holds.
func ExportCSV(claims []claimModel.Claim) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(exportHeaders, ","))
	b.WriteString("\r\n")

	for _, c := range claims {
		tat := ""
		if days, ok := turnaroundDays(c); ok {
			tat = strconv.Itoa(days)
		}
		complete := "No"
		if c.Complete {
			complete = "Yes"
		}

		fields := []string{
			c.ClaimID,
			c.SubmittedDate,
			c.CustomerName,
			c.MobileNumber,
			c.Product,
			c.Model,
			c.SerialNumber,
			c.InvoiceNumber,
			c.Branch,
			c.Status,
			c.ClaimSettledDate,
			tat,
			strconv.Itoa(claimModel.ReplacementProgress(c)),
			complete,
			c.AssignedStaff,
		}
		for i, f := range fields {
			fields[i] = utils.SanitizeCSVField(f)
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteString("\r\n")
	}
	return []byte(b.String())
}
