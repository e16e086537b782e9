package constants

// Column headers of the claims sheet. The sync payload and the CSV export
// both key rows by these exact strings.
const (
	ColClaimID       = "Claim ID"
	ColDate          = "Date"
	ColCustomerName  = "Customer Name"
	ColMobileNumber  = "Mobile Number"
	ColAddress       = "Address"
	ColProduct       = "Product"
	ColInvoiceNumber = "Invoice Number"
	ColSerialNumber  = "Serial Number"
	ColModel         = "Model"
	ColOSID          = "OSID"
	ColIssue         = "Issue"
	ColBranch        = "Branch"

	ColFollowUpDates = "Follow Up - Dates"
	ColFollowUpNotes = "Follow Up - Notes"
	ColSettledDate   = "Claim Settled Date"
	ColRemarks       = "Remarks"
	ColStatus        = "Status"

	ColReplacementConfirmation = "Replacement: Confirmation Pending"
	ColReplacementOSGApproval  = "Replacement: OSG Approval"
	ColReplacementMailStore    = "Replacement: Mail to Store"
	ColReplacementInvoiceGen   = "Replacement: Invoice Generated"
	ColReplacementInvoiceSent  = "Replacement: Invoice Sent to OSG"
	ColReplacementSettled      = "Replacement: Settled with Accounts"

	ColComplete      = "Complete"
	ColSettledTAT    = "Settled Time (TAT)"
	ColAssignedStaff = "Assigned Staff"
	ColLastUpdated   = "Last Updated Timestamp"
)
