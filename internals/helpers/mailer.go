// internals/helpers/mailer.go
package helper

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// SendAdminMail delivers a plain-text notification to the configured admin
// address. Delivery failures are logged and swallowed: notification mail
// must never fail the request that triggered it.
func SendAdminMail(subject, body string) {
	host := os.Getenv("SMTP_HOST")
	to := strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))
	if host == "" || to == "" {
		return
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@localhost"
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", from, to, subject, body)

	var auth smtp.Auth
	if user := os.Getenv("SMTP_USER"); user != "" {
		auth = smtp.PlainAuth("", user, os.Getenv("SMTP_PASSWORD"), host)
	}

	if err := smtp.SendMail(host+":"+port, auth, from, []string{to}, []byte(msg)); err != nil {
		log.Printf("[MAILER] failed to send %q: %v", subject, err)
	}
}
