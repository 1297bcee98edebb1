package notify

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"
)

// Mailer es el colaborador de transporte de correo. El resolver nunca
// hace I/O de red por su cuenta.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer envía por SMTP con STARTTLS, configurado desde el entorno.
type SMTPMailer struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

// NewSMTPMailerDesdeEnv lee EMAIL_HOST, EMAIL_PORT, EMAIL_USER,
// EMAIL_PASSWORD y EMAIL_FROM (si falta, se usa EMAIL_USER).
func NewSMTPMailerDesdeEnv() *SMTPMailer {
	m := &SMTPMailer{
		Host:     os.Getenv("EMAIL_HOST"),
		Port:     os.Getenv("EMAIL_PORT"),
		User:     os.Getenv("EMAIL_USER"),
		Password: os.Getenv("EMAIL_PASSWORD"),
		From:     os.Getenv("EMAIL_FROM"),
	}
	if m.Port == "" {
		m.Port = "587"
	}
	if m.From == "" {
		m.From = m.User
	}
	return m
}

// Habilitado indica si hay configuración SMTP suficiente para enviar.
func (m *SMTPMailer) Habilitado() bool {
	return m.Host != "" && m.User != "" && m.Password != ""
}

// Send entrega el cuerpo HTML a un único destinatario.
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	if !m.Habilitado() {
		return fmt.Errorf("SMTP no configurado")
	}

	var msg strings.Builder
	msg.WriteString("From: " + m.From + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	auth := smtp.PlainAuth("", m.User, m.Password, m.Host)
	addr := m.Host + ":" + m.Port
	if err := smtp.SendMail(addr, auth, m.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("no se pudo enviar email a %s: %w", to, err)
	}
	return nil
}
