package email

import (
	"fmt"
	"log"
)

type BlackcartEmailData struct {
	Email     string
	Name      string
	Link      string
	StoreName string
	OrderRef  string
	Total     float64
	ItemCount int
}

func SendSellerWelcomeEmail(data BlackcartEmailData) {
	from := SetHeader{
		field: "From",
		value: []string{"no-reply@blackcart.io"},
	}

	to := SetHeader{
		field: "To",
		value: []string{data.Email},
	}

	subject := SetHeader{
		field: "Subject",
		value: []string{"Welcome to BlackCart - Your Store Awaits!"},
	}

	body := SetBody{
		contentType: "text/html",
		body:        fmt.Sprintf("<body>\n    <h1>Welcome to BlackCart!</h1>\n    <p>Dear %v,</p>\n    <p>\n      Your store <b>%v</b> has been registered and is pending verification.\n      Once verified, your products will appear on your public storefront and\n      buyers can start placing orders right away.\n    </p>\n    <p>\n      Head over to your dashboard to list your first products. Our team is\n      always here if you have any questions.\n    </p>\n    <p>Best,</p>\n    <p>The BlackCart Team</p>\n  </body>", data.Name, data.StoreName),
	}

	compose := BlackcartEmailComposer{
		Header:        []SetHeader{from, to, subject},
		AddressHeader: nil,
		Body:          body,
		Attach:        "",
	}
	service := NewBlackcartEmailService(compose)
	if err := service.SendMail(); err != nil {
		log.Println(err)
	}
}

func SendPasswordResetEmail(data BlackcartEmailData) {
	from := SetHeader{
		field: "From",
		value: []string{"no-reply@blackcart.io"},
	}

	to := SetHeader{
		field: "To",
		value: []string{data.Email},
	}

	subject := SetHeader{
		field: "Subject",
		value: []string{"BlackCart Password Reset Request"},
	}

	body := SetBody{
		contentType: "text/html",
		body:        fmt.Sprintf("<body>\n    <h1>BlackCart Password Reset Request</h1>\n    <p>Dear %v,</p>\n    <p>\n      We received a request to reset the password for your BlackCart seller\n      account. To reset your password, please click the button below:\n    </p>\n    <div style=\"text-align: center;\">\n      <a\n        href=\"%v\"\n        style=\"\n          background-color: #111111;\n          color: #ffffff;\n          border-radius: 30px;\n          display: inline-block;\n          font-size: 16px;\n          font-weight: bold;\n          padding: 10px 16px;\n          text-align: center;\n          text-decoration: none;\n        \"\n        >Reset Password</a\n      >\n    </div>\n    <p>\n      If you did not request a password reset, please ignore this message and\n      your password will remain unchanged.\n    </p>\n    <p>Thank you,</p>\n    <p>The BlackCart Team</p>\n  </body>", data.Name, data.Link),
	}

	compose := BlackcartEmailComposer{
		Header:        []SetHeader{from, to, subject},
		AddressHeader: nil,
		Body:          body,
		Attach:        "",
	}
	service := NewBlackcartEmailService(compose)
	if err := service.SendMail(); err != nil {
		log.Println(err)
	}
}

func SendPasswordResetSuccessfulEmail(data BlackcartEmailData) {
	from := SetHeader{
		field: "From",
		value: []string{"no-reply@blackcart.io"},
	}

	to := SetHeader{
		field: "To",
		value: []string{data.Email},
	}

	subject := SetHeader{
		field: "Subject",
		value: []string{"Your BlackCart Password Was Changed"},
	}

	body := SetBody{
		contentType: "text/html",
		body:        fmt.Sprintf("<body>\n    <h1>Password Changed</h1>\n    <p>Dear %v,</p>\n    <p>\n      The password for your BlackCart seller account was just changed. If this\n      was you, no further action is needed. If you did not make this change,\n      please reset your password immediately and contact support.\n    </p>\n    <p>Thank you,</p>\n    <p>The BlackCart Team</p>\n  </body>", data.Name),
	}

	compose := BlackcartEmailComposer{
		Header:        []SetHeader{from, to, subject},
		AddressHeader: nil,
		Body:          body,
		Attach:        "",
	}
	service := NewBlackcartEmailService(compose)
	if err := service.SendMail(); err != nil {
		log.Println(err)
	}
}
