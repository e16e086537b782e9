package httpServices

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"osg-portal/constants"
	claimModel "osg-portal/models/claim"
	"osg-portal/utils"
)

// SheetClient mirrors claim rows to the spreadsheet web app. The sheet is the
// business's shared record; every successful save is pushed there after the
// database commit. A timed-out push counts as failed and is not retried.
type SheetClient struct {
	httpClient *http.Client
	webAppURL  string
}

func NewClient(webAppURL string) *SheetClient {
	return &SheetClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		webAppURL: webAppURL,
	}
}

// Enabled reports whether a web app URL is configured
func (c *SheetClient) Enabled() bool {
	return c.webAppURL != ""
}

// PushClaim upserts one claim row in the sheet, keyed by claim ID
func (c *SheetClient) PushClaim(cl claimModel.Claim) error {
	if !c.Enabled() {
		return errors.New("sheet sync is not configured")
	}

	body, err := json.Marshal(claimRowPayload(cl))
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequest("POST", c.webAppURL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return errors.New("sheet sync returned non-OK status: " + resp.Status)
	}

	var apiResp SheetSyncResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return err
	}
	if apiResp.Status == "error" {
		return errors.New("sheet sync rejected row: " + apiResp.Message)
	}

	return nil
}

func yesNo(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}

// claimRowPayload keys every value by the sheet's exact column header so the
// web app can merge it column by column.
func claimRowPayload(cl claimModel.Claim) map[string]string {
	return map[string]string{
		constants.ColClaimID:       cl.ClaimID,
		constants.ColDate:          cl.SubmittedDate,
		constants.ColCustomerName:  cl.CustomerName,
		constants.ColMobileNumber:  cl.MobileNumber,
		constants.ColAddress:       cl.Address,
		constants.ColProduct:       cl.Product,
		constants.ColInvoiceNumber: cl.InvoiceNumber,
		constants.ColSerialNumber:  cl.SerialNumber,
		constants.ColModel:         cl.Model,
		constants.ColOSID:          cl.OSID,
		constants.ColIssue:         cl.Issue,
		constants.ColBranch:        cl.Branch,

		constants.ColFollowUpDates: cl.FollowUpDate,
		constants.ColFollowUpNotes: cl.FollowUpNotes,
		constants.ColSettledDate:   cl.ClaimSettledDate,
		constants.ColRemarks:       cl.Remarks,
		constants.ColStatus:        cl.Status,

		constants.ColReplacementConfirmation: yesNo(cl.ReplacementConfirmation),
		constants.ColReplacementOSGApproval:  yesNo(cl.ReplacementOSGApproval),
		constants.ColReplacementMailStore:    yesNo(cl.ReplacementMailStore),
		constants.ColReplacementInvoiceGen:   yesNo(cl.ReplacementInvoiceGen),
		constants.ColReplacementInvoiceSent:  yesNo(cl.ReplacementInvoiceSent),
		constants.ColReplacementSettled:      yesNo(cl.ReplacementSettledAccounts),

		constants.ColComplete:      yesNo(cl.Complete),
		constants.ColAssignedStaff: cl.AssignedStaff,
		constants.ColLastUpdated:   cl.LastUpdated.In(utils.ISTLocation).Format("2006-01-02 15:04:05"),
	}
}
