package services

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"

	"school-store/config"
	"school-store/models"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailService builds the SMTP mailer, or errors when SMTP is not
// configured; callers treat that as "run without email".
func NewEmailService() (*EmailService, error) {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}

	return &EmailService{
		dialer: gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}, nil
}

func (s *EmailService) SendOrderConfirmation(toEmail string, order *models.Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation %s - School Store", order.OrderID))

	rows := ""
	for _, item := range order.Items {
		label := item.Name
		if item.Size != "" {
			label = fmt.Sprintf("%s (%s)", item.Name, item.Size)
		}
		rows += fmt.Sprintf(
			`<tr><td style="padding:6px 12px;">%s</td><td style="padding:6px 12px;text-align:center;">%d</td><td style="padding:6px 12px;text-align:right;">%.2f</td></tr>`,
			label, item.Qty, item.Price*float64(item.Qty))
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
        <h2 style="color: #333;">Thank you for your order!</h2>
        <p><strong>Order:</strong> %s</p>
        <p><strong>Student:</strong> %s (%s-%s)</p>
        <table style="width:100%%; border-collapse: collapse; background-color: #f9fafb; border-radius: 8px;">
            %s
        </table>
        <p style="text-align:right; font-size: 18px;"><strong>Total: %.2f</strong></p>
        <p>Your order has been received and is pending. We'll update its status as it moves along.</p>
        <p style="color: #666; font-size: 12px;">This is an automated email. Please do not reply.</p>
    </div>
</body>
</html>
	`, order.OrderID, order.Student, order.StudentClass, order.StudentDivision, rows, order.Total)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
