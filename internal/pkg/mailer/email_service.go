// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	// SendApprovalInvalidated tells the reviewer that a recompute produced a
	// materially different recommendation and their earlier approval was
	// reset to pending.
	SendApprovalInvalidated(toEmail, accountName, oldPlan, newPlan string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendApprovalInvalidated(toEmail, accountName, oldPlan, newPlan string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Approval reset for %s", accountName))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Approval reset to pending</h2>
			<p>The recommendation for <b>%s</b> changed after a recompute.</p>
			<p>Previously approved plan: <b>%s</b></p>
			<p>Newly recommended plan: <b>%s</b></p>
			<p>Please review the new recommendation and approve or reject it again.</p>
		</div>
	`, accountName, oldPlan, newPlan)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send approval reset notice to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Approval reset notice sent to %s\n", toEmail)
	return nil
}
