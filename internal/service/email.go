package service

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendRentalConfirmation(ctx context.Context, toEmail, clientName, plate string, start, end time.Time, totalCostCents int32) error {
	subject := fmt.Sprintf("Rental confirmed - vehicle %s", plate)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour rental of vehicle %s is confirmed.\n\nFrom: %s\nTo: %s\nTotal: %s\n\nThank you,\nThe Rentacar Team",
		clientName, plate, start.Format("2006-01-02 15:04"), end.Format("2006-01-02 15:04"), formatCents(totalCostCents))
	return s.send(toEmail, subject, body)
}

func (s *emailService) SendRentalFinalized(ctx context.Context, toEmail, clientName, plate string, totalCostCents int32) error {
	subject := fmt.Sprintf("Rental finished - vehicle %s", plate)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour rental of vehicle %s has been finalized.\n\nFinal total: %s\n\nThank you,\nThe Rentacar Team",
		clientName, plate, formatCents(totalCostCents))
	return s.send(toEmail, subject, body)
}

func (s *emailService) SendRentalCancelled(ctx context.Context, toEmail, clientName, plate string) error {
	subject := fmt.Sprintf("Rental cancelled - vehicle %s", plate)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour rental of vehicle %s has been cancelled.\n\nThank you,\nThe Rentacar Team",
		clientName, plate)
	return s.send(toEmail, subject, body)
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func formatCents(cents int32) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
