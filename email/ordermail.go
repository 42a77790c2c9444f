package email

import (
	"fmt"
	"log"
)

// SendOrderReceivedEmail notifies the seller that a new order landed in
// their dashboard. Best-effort: failures are logged and swallowed.
func SendOrderReceivedEmail(data BlackcartEmailData) {
	from := SetHeader{
		field: "From",
		value: []string{"orders@blackcart.io"},
	}

	to := SetHeader{
		field: "To",
		value: []string{data.Email},
	}

	subject := SetHeader{
		field: "Subject",
		value: []string{fmt.Sprintf("New Order %v on BlackCart", data.OrderRef)},
	}

	body := SetBody{
		contentType: "text/html",
		body:        fmt.Sprintf("<body>\n    <h1>You Have a New Order!</h1>\n    <p>Dear %v,</p>\n    <p>\n      Order <b>%v</b> with %v item(s) totalling $%.2f was just placed at your\n      store <b>%v</b>. Log in to your dashboard to confirm and start\n      processing it.\n    </p>\n    <p>Best,</p>\n    <p>The BlackCart Team</p>\n  </body>", data.Name, data.OrderRef, data.ItemCount, data.Total, data.StoreName),
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

// SendOrderConfirmationEmail is the buyer-facing receipt.
func SendOrderConfirmationEmail(data BlackcartEmailData) {
	from := SetHeader{
		field: "From",
		value: []string{"orders@blackcart.io"},
	}

	to := SetHeader{
		field: "To",
		value: []string{data.Email},
	}

	subject := SetHeader{
		field: "Subject",
		value: []string{fmt.Sprintf("Your BlackCart Order %v", data.OrderRef)},
	}

	body := SetBody{
		contentType: "text/html",
		body:        fmt.Sprintf("<body>\n    <h1>Thanks for Your Order!</h1>\n    <p>Dear %v,</p>\n    <p>\n      Your order <b>%v</b> from <b>%v</b> has been received. %v item(s),\n      total $%.2f. The seller will confirm it shortly and you will be\n      contacted at this address with shipping updates.\n    </p>\n    <p>Thank you for shopping with BlackCart!</p>\n  </body>", data.Name, data.OrderRef, data.StoreName, data.ItemCount, data.Total),
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
