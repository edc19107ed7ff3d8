package notifications

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"os"
	"time"

	"CheckDiskGo/internal/pkg/config"
)

// send performs one SMTP delivery attempt for a single sender. It supports
// implicit SSL, STARTTLS, and plain connections.
func (e *EmailManager) send(sender config.SenderEmail, to []string, addr string, msg []byte, useTLS, useSSL bool, timeout time.Duration) error {
	server := e.Config.Notifications.Email.SMTPServer
	hostname, _ := os.Hostname()

	dialer := &net.Dialer{Timeout: timeout, KeepAlive: 30 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set connection deadline: %w", err)
	}

	if useSSL {
		tlsConn := tls.Client(conn, e.tlsConfig(server))
		if err := tlsConn.Handshake(); err != nil {
			tlsConn.Close()
			return fmt.Errorf("TLS handshake failed: %w", err)
		}
		conn = tlsConn
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, server)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	if err := client.Hello(hostname); err != nil {
		return fmt.Errorf("HELO error: %w", err)
	}

	if useTLS && !useSSL {
		if ok, _ := client.Extension("STARTTLS"); !ok {
			return fmt.Errorf("server doesn't support STARTTLS")
		}
		if err := client.StartTLS(e.tlsConfig(server)); err != nil {
			return fmt.Errorf("StartTLS error: %w", err)
		}
	}

	if sender.Password != "" {
		if ok, _ := client.Extension("AUTH"); !ok {
			return fmt.Errorf("server doesn't support AUTH")
		}
		auth := smtp.PlainAuth("", sender.Email, sender.Password, server)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("authentication failed: %w", err)
		}
	}

	if err := client.Mail(sender.Email); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	for _, recipient := range to {
		if err := client.Rcpt(recipient); err != nil {
			return fmt.Errorf("failed to add recipient %s: %w", recipient, err)
		}
	}

	wc, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to start email data: %w", err)
	}
	if _, err = wc.Write(msg); err != nil {
		wc.Close()
		return fmt.Errorf("failed to write email content: %w", err)
	}
	if err = wc.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}

	return client.Quit()
}

func (e *EmailManager) tlsConfig(serverName string) *tls.Config {
	return &tls.Config{
		ServerName: serverName,
		MinVersion: tls.VersionTLS12,
	}
}
