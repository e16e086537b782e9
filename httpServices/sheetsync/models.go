package httpServices

type SheetSyncResponse struct {
	Status  string `json:"status"`
	ClaimID string `json:"claim_id"`
	Row     int    `json:"row,omitempty"`
	Message string `json:"message,omitempty"`
}
