package gomail

import (
	"crypto/tls"
	"fmt"
	"io"

	"gopkg.in/gomail.v2"

	"github.com/idrisalani/knlLogistics/internal/entity"
	"github.com/idrisalani/knlLogistics/pkg/config"
)

type Client struct {
	cfg    config.Mailer
	dialer *gomail.Dialer
}

func New(cfg config.Mailer) *Client {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return &Client{
		cfg:    cfg,
		dialer: dialer,
	}
}

func (c *Client) Send(m entity.EmailMessage) error {
	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", c.cfg.From, c.cfg.FromName)
	msg.SetHeader("To", m.Recipients...)
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/plain", m.Body)

	if len(m.Attachment) != 0 {
		msg.Attach(m.AttachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(m.Attachment)
			return err
		}))
	}

	err := c.dialer.DialAndSend(msg)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
