package mail

import (
	"fmt"
	"strings"

	"github.com/vaishalishah/portfolio/app/models"
	"github.com/vaishalishah/portfolio/internal/pkg/env"
)

// Sender delivers one email.
type Sender interface {
	SendMail(to, subject, body string) error
}

// InquiryNotifier emails the site owner about new contact inquiries.
type InquiryNotifier struct {
	sender Sender
	to     string
}

func NewInquiryNotifier(sender Sender, to string) *InquiryNotifier {
	return &InquiryNotifier{sender: sender, to: to}
}

// InquiryNotifierFromEnv returns nil unless SMTP_HOST and CONTACT_NOTIFY_EMAIL are set.
func InquiryNotifierFromEnv() *InquiryNotifier {
	to := env.GetEnv("CONTACT_NOTIFY_EMAIL", "")
	cfg := ConfigFromEnv()
	if to == "" || cfg.Host == "" {
		return nil
	}
	return NewInquiryNotifier(NewSMTPMailer(cfg), to)
}

func (n *InquiryNotifier) NotifyInquiry(inquiry *models.ContactInquiry) error {
	subject := fmt.Sprintf("New contact inquiry from %s", inquiry.Name)

	var body strings.Builder
	fmt.Fprintf(&body, "Name: %s\n", inquiry.Name)
	fmt.Fprintf(&body, "Phone: %s\n", inquiry.PhoneNumber)
	fmt.Fprintf(&body, "Received: %s\n\n", inquiry.CreatedDate.Format("2006-01-02 15:04 MST"))
	body.WriteString(inquiry.Message)
	body.WriteString("\n")

	return n.sender.SendMail(n.to, subject, body.String())
}
