package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendReactivationLink(toEmail, name, token string) error
	SendSuspensionNotice(toEmail, name, reason string) error
	SendSuspensionLifted(toEmail, name string) error
}

// MailDialer is the transport seam. gomail.Dialer satisfies it; tests
// substitute a recorder.
type MailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type emailService struct {
	dialer      MailDialer
	senderEmail string
	frontendURL string
}

func NewEmailService(host string, port int, username, password, senderEmail, frontendURL string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	return NewEmailServiceWithDialer(d, senderEmail, frontendURL)
}

func NewEmailServiceWithDialer(d MailDialer, senderEmail, frontendURL string) IEmailService {
	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) SendReactivationLink(toEmail, name, token string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Reactivate Your Account")

	reactivateLink := fmt.Sprintf("%s/reactivate-account?token=%s", s.frontendURL, token)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>Your account has been deactivated. If you change your mind, click the button below to reactivate it:</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Reactivate Account</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>This link will expire in 1 hour. Your data is kept for 30 days before permanent removal.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, name, reactivateLink, reactivateLink)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send reactivation link to %s: %w", toEmail, err)
	}
	return nil
}

func (s *emailService) SendSuspensionNotice(toEmail, name, reason string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Account Has Been Suspended")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>Your service provider account has been suspended.</p>
			<p><strong>Reason:</strong> %s</p>
			<p>You will not receive new assignments while suspended. Contact support if you believe this is a mistake.</p>
		</div>
	`, name, reason)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send suspension notice to %s: %w", toEmail, err)
	}
	return nil
}

func (s *emailService) SendSuspensionLifted(toEmail, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Account Suspension Has Been Lifted")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>Good news! Your service provider account is active again and you can receive new assignments.</p>
		</div>
	`, name)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send suspension lifted notice to %s: %w", toEmail, err)
	}
	return nil
}
