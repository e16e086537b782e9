package notifier

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"

	claimModel "osg-portal/models/claim"
	"osg-portal/utils"
)

// Mailer sends the claim submission notification over SMTP with STARTTLS.
// Sending is best effort: intake never fails because the mail did not go out.
type Mailer struct {
	host       string
	port       string
	sender     string
	password   string
	recipients []string
}

// NewMailerFromEnv builds a Mailer from SMTP_HOST, SMTP_PORT, SMTP_SENDER,
// SMTP_PASSWORD and NOTIFY_RECIPIENTS (comma separated). Returns a disabled
// mailer when the host or recipients are not configured.
func NewMailerFromEnv() *Mailer {
	m := &Mailer{
		host:     os.Getenv("SMTP_HOST"),
		port:     os.Getenv("SMTP_PORT"),
		sender:   os.Getenv("SMTP_SENDER"),
		password: os.Getenv("SMTP_PASSWORD"),
	}
	if m.port == "" {
		m.port = "587"
	}
	for _, r := range strings.Split(os.Getenv("NOTIFY_RECIPIENTS"), ",") {
		if r = strings.TrimSpace(r); r != "" {
			m.recipients = append(m.recipients, r)
		}
	}
	return m
}

func (m *Mailer) Enabled() bool {
	return m.host != "" && m.sender != "" && len(m.recipients) > 0
}

// SendClaimSubmitted mails the details of a freshly submitted intake batch
func (m *Mailer) SendClaimSubmitted(claims []claimModel.Claim) error {
	if !m.Enabled() {
		return fmt.Errorf("mailer is not configured")
	}
	if len(claims) == 0 {
		return fmt.Errorf("no claims to notify about")
	}

	first := claims[0]
	subject := fmt.Sprintf("New OSG Claim: %s (%s)", first.ClaimID, first.CustomerName)

	var body strings.Builder
	body.WriteString("<h3>New claim submission</h3>")
	body.WriteString(fmt.Sprintf("<p><b>Customer:</b> %s<br><b>Mobile:</b> %s<br><b>Submitted:</b> %s</p>",
		first.CustomerName, first.MobileNumber, utils.NoteTimestamp(utils.NowIST())))
	body.WriteString("<table border='1' cellpadding='4'><tr><th>Claim ID</th><th>Product</th><th>Model</th><th>Serial</th><th>Branch</th><th>Issue</th></tr>")
	for _, c := range claims {
		body.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			c.ClaimID, c.Product, c.Model, c.SerialNumber, c.Branch, c.Issue))
	}
	body.WriteString("</table>")

	msg := strings.Builder{}
	msg.WriteString("From: " + m.sender + "\r\n")
	msg.WriteString("To: " + strings.Join(m.recipients, ", ") + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body.String())

	addr := m.host + ":" + m.port
	var auth smtp.Auth
	if m.password != "" {
		auth = smtp.PlainAuth("", m.sender, m.password, m.host)
	}
	if err := smtp.SendMail(addr, auth, m.sender, m.recipients, []byte(msg.String())); err != nil {
		return fmt.Errorf("send claim notification: %w", err)
	}
	return nil
}
