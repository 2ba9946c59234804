package mailer

import (
	"bytes"
	"crypto/tls"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"esuka/config"
)

const (
	passwordResetSubject = "Atur Ulang Kata Sandi e-SuKa BAPPEDA"
	implicitTLSPort      = 465
)

var (
	//go:embed templates/password_reset.html
	emailTemplates embed.FS

	passwordResetTemplate = template.Must(template.New("password_reset.html").ParseFS(emailTemplates, "templates/password_reset.html"))

	ErrHostMissing = errors.New("smtp host is not configured")
	ErrFromMissing = errors.New("smtp from address is not configured")
)

// Message is one outgoing HTML mail.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
	Date    time.Time
}

// Bytes renders the RFC 5322 form. Non-ASCII subjects are Q-encoded.
func (m Message) Bytes() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", m.From)
	fmt.Fprintf(&b, "To: %s\r\n", m.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", m.Subject))
	fmt.Fprintf(&b, "Date: %s\r\n", m.Date.Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n\r\n")
	b.WriteString(m.HTML)
	return b.Bytes()
}

// sendFunc has the shape of smtp.SendMail.
type sendFunc func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error

// Client delivers the password reset mail of the reset flow.
type Client struct {
	cfg  config.EmailConfig
	send sendFunc
	now  func() time.Time
}

func NewClient(cfg config.EmailConfig) *Client {
	c := &Client{cfg: cfg, now: time.Now}
	c.send = smtp.SendMail
	if cfg.Port == implicitTLSPort {
		c.send = c.sendImplicitTLS
	}
	return c
}

// RenderPasswordReset renders the reset mail body.
func RenderPasswordReset(fullName, resetLink string) (string, error) {
	var body bytes.Buffer
	data := struct {
		FullName  string
		ResetLink string
	}{FullName: fullName, ResetLink: resetLink}

	if err := passwordResetTemplate.Execute(&body, data); err != nil {
		return "", fmt.Errorf("render password reset template: %w", err)
	}
	return body.String(), nil
}

// SendPasswordResetEmail mails the one-hour reset link to toEmail.
func (c *Client) SendPasswordResetEmail(toEmail, fullName, resetLink string) error {
	from, err := c.sender()
	if err != nil {
		return err
	}

	html, err := RenderPasswordReset(fullName, resetLink)
	if err != nil {
		return err
	}

	msg := Message{From: from, To: toEmail, Subject: passwordResetSubject, HTML: html, Date: c.now()}
	if err := c.send(c.addr(), c.auth(), from, []string{toEmail}, msg.Bytes()); err != nil {
		return fmt.Errorf("send password reset to %s: %w", toEmail, err)
	}
	return nil
}

func (c *Client) sender() (string, error) {
	if c.cfg.Host == "" {
		return "", ErrHostMissing
	}
	if c.cfg.FromAddress != "" {
		return c.cfg.FromAddress, nil
	}
	if c.cfg.Username != "" {
		return c.cfg.Username, nil
	}
	return "", ErrFromMissing
}

func (c *Client) addr() string {
	return net.JoinHostPort(c.cfg.Host, strconv.Itoa(c.cfg.Port))
}

// auth is nil for relays that accept unauthenticated mail.
func (c *Client) auth() smtp.Auth {
	if c.cfg.Username == "" && c.cfg.Password == "" {
		return nil
	}
	return smtp.PlainAuth("", c.cfg.Username, c.cfg.Password, c.cfg.Host)
}

// sendImplicitTLS talks SMTPS: the TLS handshake happens before any SMTP
// command, which smtp.SendMail cannot do.
func (c *Client) sendImplicitTLS(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: c.cfg.Host, MinVersion: tls.VersionTLS12})
	if err != nil {
		return fmt.Errorf("dial smtps: %w", err)
	}
	client, err := smtp.NewClient(conn, c.cfg.Host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}
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
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
