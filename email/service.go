package email

import (
	"github.com/go-mail/mail"

	"blackcart-io/api/pkg/util"
)

type BlackcartEmailService struct {
	mailer  *mail.Message
	content BlackcartEmailComposer
}

func NewBlackcartEmailService(content BlackcartEmailComposer) BlackcartEmailService {
	return BlackcartEmailService{
		mailer:  mail.NewMessage(),
		content: content,
	}
}

func (s *BlackcartEmailService) SendMail() error {
	m := s.mailer
	for _, content := range s.content.Header {
		m.SetHeader(content.field, content.value...)
	}

	for _, content := range s.content.AddressHeader {
		m.SetAddressHeader(content.field, content.address, content.name)
	}

	body := s.content.Body
	m.SetBody(body.contentType, body.body)

	SmtpHost := util.LoadEnvFor("SMTP_HOST")
	SmtpUsername := util.LoadEnvFor("SMTP_USERNAME")
	SmtpPassword := util.LoadEnvFor("SMTP_PASSWORD")
	dialer := mail.NewDialer(SmtpHost, 2525, SmtpUsername, SmtpPassword)
	if err := dialer.DialAndSend(m); err != nil {
		return err
	}

	return nil
}

type BlackcartEmailComposer struct {
	Header        []SetHeader
	AddressHeader []SetAddressHeader
	Body          SetBody
	Attach        string
}

type SetHeader struct {
	field string
	value []string
}

type SetAddressHeader struct {
	field   string
	address string
	name    string
}

type SetBody struct {
	contentType string
	body        string
}
