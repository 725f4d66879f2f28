package notifications

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/models"
)

// EmailNotifier sends confirmation emails to the submitter through SMTP.
type EmailNotifier struct {
	from     string
	password string
	host     string
	port     string
}

func NewEmailNotifier(host, port, user, password string) *EmailNotifier {
	return &EmailNotifier{
		from:     user,
		password: password,
		host:     host,
		port:     port,
	}
}

func (n *EmailNotifier) Name() string { return "email" }

func (n *EmailNotifier) EnquiryReceived(ctx context.Context, e *models.Enquiry, product ProductView) error {
	subject, body := enquiryEmail(e, product)
	return n.send(e.Email, subject, body)
}

func (n *EmailNotifier) ApplicationReceived(ctx context.Context, a *models.Application) error {
	subject, body := applicationEmail(a)
	return n.send(a.Email, subject, body)
}

// send composes an HTML email and delivers it in one attempt.
func (n *EmailNotifier) send(to, subject, body string) error {
	if n.host == "" || n.port == "" || n.from == "" || n.password == "" {
		return fmt.Errorf("missing SMTP configuration")
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"utf-8\"\r\n"+
			"\r\n%s\r\n",
		n.from, to, subject, body,
	))

	auth := smtp.PlainAuth("", n.from, n.password, n.host)
	return smtp.SendMail(n.host+":"+n.port, auth, n.from, []string{to}, msg)
}

// enquiryEmail picks one of two templates depending on whether the enquiry
// carries a product.
func enquiryEmail(e *models.Enquiry, product ProductView) (subject, body string) {
	if e.ProductID != nil {
		subject = fmt.Sprintf("We received your enquiry about %s", product.Title)
		body = fmt.Sprintf(
			`<h2>Hi %s,</h2>
<p>Thanks for your interest in <b>%s</b>. Our team has received your enquiry
and will reach out to you on %s or %s shortly.</p>
<p><b>Your message:</b></p>
<blockquote>%s</blockquote>
<p>— The DigiCraft Team</p>`,
			e.Name, product.Title, e.Email, e.Phone, e.Message,
		)
		return subject, body
	}

	subject = "We received your enquiry"
	body = fmt.Sprintf(
		`<h2>Hi %s,</h2>
<p>Thanks for reaching out. Our team has received your enquiry and will get
back to you on %s or %s shortly.</p>
<p><b>Your message:</b></p>
<blockquote>%s</blockquote>
<p>— The DigiCraft Team</p>`,
		e.Name, e.Email, e.Phone, e.Message,
	)
	return subject, body
}

func applicationEmail(a *models.Application) (subject, body string) {
	subject = fmt.Sprintf("Application received — %s", a.Role)
	body = fmt.Sprintf(
		`<h2>Hi %s,</h2>
<p>We received your application for the <b>%s</b> role. Our team reviews
every application and will contact you at %s if your profile is selected.</p>
<p>— The DigiCraft Team</p>`,
		a.Name, a.Role, a.Email,
	)
	return subject, body
}
