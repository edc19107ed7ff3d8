package notifications

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"CheckDiskGo/internal/pkg/config"
	"CheckDiskGo/internal/pkg/logger"
)

// EmailManager handles sending email notifications
type EmailManager struct {
	Config *config.Config
}

// NewEmailManager creates a new instance of EmailManager
func NewEmailManager(cfg *config.Config) *EmailManager {
	return &EmailManager{Config: cfg}
}

// SendEmail sends an email with the given subject and body. The body may
// contain HTML. Senders are tried in order until one succeeds; each sender
// gets the configured number of retries.
func (e *EmailManager) SendEmail(subject, body string) error {
	emailCfg := e.Config.Notifications.Email
	if !emailCfg.Enabled {
		logger.Debug("Email notifications are disabled")
		return fmt.Errorf("email notifications are disabled")
	}

	subject = fmt.Sprintf("[%s] %s", e.Config.AppName, subject)

	smtpAddr := fmt.Sprintf("%s:%d", emailCfg.SMTPServer, emailCfg.SMTPPort)
	timeout := time.Duration(emailCfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	retryInterval := time.Duration(emailCfg.RetryInterval) * time.Second
	to := emailCfg.RecipientEmails

	for _, sender := range e.Config.Notifications.Email.SenderEmails {
		fromHeader := sender.Email
		if sender.RealName != "" {
			fromHeader = fmt.Sprintf("%s <%s>", sender.RealName, sender.Email)
		}

		var msg bytes.Buffer
		msg.WriteString(fmt.Sprintf("From: %s\r\n", fromHeader))
		msg.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(to, ", ")))
		msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
		msg.WriteString("MIME-Version: 1.0\r\n")
		msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
		msg.WriteString(body)

		for attempt := 0; attempt <= emailCfg.RetryCount; attempt++ {
			if attempt > 0 {
				logger.Info("Retrying email sending",
					logger.Int("attempt", attempt+1),
					logger.Int("max_attempts", emailCfg.RetryCount+1))
				time.Sleep(retryInterval)
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			done := make(chan error, 1)
			go func() {
				done <- e.send(sender, to, smtpAddr, msg.Bytes(), emailCfg.UseTLS, emailCfg.UseSSL, timeout/2)
			}()

			var err error
			select {
			case err = <-done:
			case <-ctx.Done():
				err = fmt.Errorf("email sending timed out after %v", timeout)
			}
			cancel()

			if err == nil {
				logger.Info("Email sent successfully",
					logger.String("from", sender.Email),
					logger.String("smtp_server", smtpAddr))
				return nil
			}

			logger.Warn("Failed to send email",
				logger.String("from", sender.Email),
				logger.String("smtp_server", smtpAddr),
				logger.Int("attempt", attempt+1),
				logger.String("error", err.Error()))
		}
	}

	return fmt.Errorf("all email senders failed")
}
