package customer

import (
	"fmt"
	"regexp"
)

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

type LookupRequest struct {
	MobileNumber string `json:"mobile_number"`
}

func (r LookupRequest) Validate() error {
	if !mobilePattern.MatchString(r.MobileNumber) {
		return fmt.Errorf("mobile number must be exactly 10 digits")
	}
	return nil
}
