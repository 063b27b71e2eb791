package mailing

import (
	"strconv"

	"recipe-api/internal/utils"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

// SendMail delivers an HTML mail through the configured SMTP relay. Used
// for the password-reset flow.
func SendMail(toEmail string, subject string, body string) error {
	mailConfig := LoadMailConfig()

	port, err := strconv.Atoi(mailConfig.SMTPPort)
	if err != nil {
		return err
	}

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", mailConfig.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	dialer := gomail.NewDialer(
		mailConfig.SMTPHost,
		port,
		mailConfig.SMTPEmail,
		mailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}
