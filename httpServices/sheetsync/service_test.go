package httpServices

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	claimModel "osg-portal/models/claim"
	"osg-portal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClaim() claimModel.Claim {
	return claimModel.Claim{
		ClaimID:                 "CLM-0042",
		Status:                  "Follow Up",
		SubmittedDate:           "2026-08-05",
		CustomerName:            "Anjali Menon",
		MobileNumber:            "9876543210",
		Branch:                  "Calicut",
		ReplacementConfirmation: true,
		Complete:                false,
		LastUpdated:             time.Date(2026, 8, 29, 14, 30, 5, 0, utils.ISTLocation),
	}
}

func TestPushClaimSendsSheetColumns(t *testing.T) {
	var payload map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		json.NewEncoder(w).Encode(SheetSyncResponse{Status: "updated", ClaimID: "CLM-0042"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.PushClaim(testClaim())

	require.NoError(t, err)
	assert.Equal(t, "CLM-0042", payload["Claim ID"])
	assert.Equal(t, "2026-08-05", payload["Date"])
	assert.Equal(t, "Anjali Menon", payload["Customer Name"])
	assert.Equal(t, "Follow Up", payload["Status"])
	assert.Equal(t, "TRUE", payload["Replacement: Confirmation Pending"])
	assert.Equal(t, "FALSE", payload["Complete"])
	assert.Equal(t, "2026-08-29 14:30:05", payload["Last Updated Timestamp"])
}

func TestPushClaimNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.PushClaim(testClaim())

	assert.Error(t, err)
}

func TestPushClaimWebAppError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(SheetSyncResponse{Status: "error", Message: "lock timeout"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.PushClaim(testClaim())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "lock timeout")
}

func TestPushClaimDisabledWithoutURL(t *testing.T) {
	client := NewClient("")

	assert.False(t, client.Enabled())
	assert.Error(t, client.PushClaim(testClaim()))
}
