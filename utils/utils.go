package utils

import (
	"regexp"
	"strings"
	"time"

	"osg-portal/types"

	"github.com/gofiber/fiber/v2"
)

// ISTLocation is the fixed business timezone. All "today" values and note
// timestamps are computed here regardless of the server's local zone.
var ISTLocation = time.FixedZone("IST", 5*3600+30*60)

const civilDateLayout = "2006-01-02"

// NowIST returns the current time in the business timezone
func NowIST() time.Time {
	return time.Now().In(ISTLocation)
}

// TodayIST returns today's date in IST as a YYYY-MM-DD string
func TodayIST() string {
	return NowIST().Format(civilDateLayout)
}

// FormatCivilDate renders t as a YYYY-MM-DD string in IST
func FormatCivilDate(t time.Time) string {
	return t.In(ISTLocation).Format(civilDateLayout)
}

// NoteTimestamp renders t the way note history entries are stamped
func NoteTimestamp(t time.Time) string {
	return t.In(ISTLocation).Format("02/01/2006, 3:04:05 pm")
}

// ParseCivilDate parses a stored date string. Values sometimes carry a time
// portion or legacy day-first formats, so the first whitespace token is tried
// against each known layout.
func ParseCivilDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if i := strings.IndexAny(s, " T"); i > 0 {
		s = s[:i]
	}
	layouts := []string{civilDateLayout, "02-01-2006", "02/01/2006", "01/02/2006"}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, ISTLocation); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DaysBetween returns whole calendar days from a to b
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// ValidateMobileNumber validates an Indian mobile number: exactly 10 digits
func ValidateMobileNumber(mobile string) bool {
	mobile = strings.TrimSpace(mobile)
	pattern := `^[0-9]{10}$`
	re := regexp.MustCompile(pattern)
	return re.MatchString(mobile)
}

// SanitizeCSVField strips characters that would break a comma-separated row
func SanitizeCSVField(value string) string {
	value = strings.ReplaceAll(value, ",", ";")
	value = strings.ReplaceAll(value, "\r\n", " ")
	value = strings.ReplaceAll(value, "\n", " ")
	return strings.TrimSpace(value)
}

// sanitizeRequestBody keeps audit rows bounded; oversized payloads are replaced
// with a marker instead of being stored verbatim
func sanitizeRequestBody(c *fiber.Ctx) string {
	body := string(c.Body())
	if len(body) > 10000 {
		return "[LARGE_REQUEST_BODY_TRUNCATED]"
	}
	return body
}

// CreateSanitizedLogEntry creates a deep copied and sanitized log entry for logging
func CreateSanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	// Create deep copies of all data to prevent memory reference issues
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	clientIP := string([]byte(c.IP()))
	requestBody := sanitizeRequestBody(c)
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	// Deep copy headers
	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		ClientIP:        clientIP,
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}
