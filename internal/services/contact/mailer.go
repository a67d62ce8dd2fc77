package contact

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/syberke1354/exion-sub001/internal/domain/model"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	NotifyTo string
}

// SMTPMailer sends the inbox notification to the school address.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	if cfg.Host == "" || cfg.Port <= 0 {
		return nil, fmt.Errorf("smtp host and port are required")
	}
	if cfg.From == "" || cfg.NotifyTo == "" {
		return nil, fmt.Errorf("smtp from and notify_to addresses are required")
	}

	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		to:     cfg.NotifyTo,
	}, nil
}

func (m *SMTPMailer) Notify(msg model.ContactMessage) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", m.to)
	mail.SetHeader("Reply-To", msg.Email)
	mail.SetHeader("Subject", "Pesan baru dari form kontak: "+msg.Name)

	var body strings.Builder
	body.WriteString("Nama: " + msg.Name + "\n")
	body.WriteString("Email: " + msg.Email + "\n")
	if msg.Phone != "" {
		body.WriteString("Telepon: " + msg.Phone + "\n")
	}
	body.WriteString("\n" + msg.Message + "\n")
	mail.SetBody("text/plain", body.String())

	if err := m.dialer.DialAndSend(mail); err != nil {
		return fmt.Errorf("send notification mail: %w", err)
	}
	return nil
}
