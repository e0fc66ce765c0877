package service

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/bolder-electric/internal/config"
	"github.com/bolder-electric/internal/models"
)

// EmailService 邮件发送服务
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// BookingNotifyInput 新预约通知邮件输入
type BookingNotifyInput struct {
	BookingID     uint
	ServiceName   string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Address       string
	ServiceDate   string
	TimeSlot      string
	Description   string
	TotalPrice    models.Money
}

// SendBookingNotification 向业务邮箱发送新预约通知
func (s *EmailService) SendBookingNotification(toEmail string, input BookingNotifyInput) error {
	subject := fmt.Sprintf("New Booking #%d - %s on %s", input.BookingID, input.ServiceName, input.ServiceDate)
	var buf bytes.Buffer
	buf.WriteString("A new booking request has been received.\n\n")
	buf.WriteString(fmt.Sprintf("Service: %s\n", input.ServiceName))
	buf.WriteString(fmt.Sprintf("Date: %s\n", input.ServiceDate))
	buf.WriteString(fmt.Sprintf("Time: %s\n", input.TimeSlot))
	buf.WriteString(fmt.Sprintf("Customer: %s\n", input.CustomerName))
	buf.WriteString(fmt.Sprintf("Phone: %s\n", input.CustomerPhone))
	if strings.TrimSpace(input.CustomerEmail) != "" {
		buf.WriteString(fmt.Sprintf("Email: %s\n", input.CustomerEmail))
	}
	if strings.TrimSpace(input.Address) != "" {
		buf.WriteString(fmt.Sprintf("Address: %s\n", input.Address))
	}
	buf.WriteString(fmt.Sprintf("Quoted Price: %s\n", input.TotalPrice.String()))
	if strings.TrimSpace(input.Description) != "" {
		buf.WriteString(fmt.Sprintf("\nDescription:\n%s\n", input.Description))
	}
	return s.sendTextEmail(toEmail, subject, buf.String())
}

// SendBookingConfirmation 向客户发送预约确认邮件
func (s *EmailService) SendBookingConfirmation(toEmail string, input BookingNotifyInput) error {
	subject := fmt.Sprintf("Booking Received - %s on %s", input.ServiceName, input.ServiceDate)
	body := fmt.Sprintf(
		"Hi %s,\n\nWe have received your booking request for %s on %s at %s.\n"+
			"We will contact you at %s to confirm the appointment.\n\nThank you!",
		input.CustomerName, input.ServiceName, input.ServiceDate, input.TimeSlot, input.CustomerPhone,
	)
	return s.sendTextEmail(toEmail, subject, body)
}

func (s *EmailService) sendTextEmail(toEmail, subject, body string) error {
	if s.cfg == nil || !s.cfg.Enabled {
		return ErrEmailDisabled
	}
	if s.cfg.Host == "" || s.cfg.Port == 0 || s.cfg.From == "" {
		return ErrEmailDisabled
	}
	if _, err := mail.ParseAddress(toEmail); err != nil {
		return ErrValidation
	}

	from := buildFromAddress(s.cfg.From, s.cfg.FromName)
	msg := buildEmailMessage(from, toEmail, subject, body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" || s.cfg.Password != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if s.cfg.UseSSL {
		return sendMailWithSSL(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg))
	}
	if s.cfg.UseTLS {
		return sendMailWithStartTLS(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg))
	}
	return sendMailPlain(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg))
}

func buildFromAddress(from, name string) string {
	if strings.TrimSpace(name) == "" {
		return from
	}
	encoded := mime.QEncoding.Encode("UTF-8", name)
	return (&mail.Address{Name: encoded, Address: from}).String()
}

func buildEmailMessage(from, to, subject, body string) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("From: %s\r\n", from))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", to))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject)))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)
	return buf.String()
}

func sendMailWithSSL(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: host})
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	return sendSMTPData(client, from, to, msg)
}

func sendMailWithStartTLS(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
		return err
	}

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	return sendSMTPData(client, from, to, msg)
}

func sendMailPlain(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	return sendSMTPData(client, from, to, msg)
}

func sendSMTPData(client *smtp.Client, from string, to []string, msg []byte) error {
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
