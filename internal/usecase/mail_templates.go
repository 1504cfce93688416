package usecase

import (
	"bytes"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/cyprus-transfer/internal/pkg/format"
)

var mailFuncs = map[string]interface{}{
	"formatCurrency": format.FormatCurrency,
	"formatDateTime": format.FormatDateTime,
}

const contactHTML = `<h2>New message from the website</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>E-mail:</strong> {{.Email}}</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p style="white-space:pre-wrap">{{.Message}}</p>`

const contactText = `New message from the website

Name: {{.Name}}
E-mail: {{.Email}}
Subject: {{.Subject}}

{{.Message}}
`

const confirmationHTML = `<h2>Thank you for your reservation, {{.CustomerName}}!</h2>
<p>Your reservation code is <strong>{{.Code}}</strong>.</p>
<table cellpadding="6">
<tr><td>From</td><td>{{.PickupName}}</td></tr>
<tr><td>To</td><td>{{.DropoffName}}</td></tr>
<tr><td>Date</td><td>{{formatDateTime .TransferDate}}</td></tr>
<tr><td>Vehicle</td><td>{{.VehicleName}} ({{.TransferType}})</td></tr>
<tr><td>Passengers</td><td>{{.PassengerCount}}</td></tr>
{{if .FlightNumber}}<tr><td>Flight</td><td>{{.FlightNumber}}</td></tr>{{end}}
<tr><td>Total</td><td><strong>{{formatCurrency .TotalPrice .Currency}}</strong></td></tr>
</table>
<p>Reservation details: <a href="{{.LookupURL}}">{{.LookupURL}}</a></p>`

const confirmationText = `Thank you for your reservation, {{.CustomerName}}!

Reservation code: {{.Code}}
From: {{.PickupName}}
To: {{.DropoffName}}
Date: {{formatDateTime .TransferDate}}
Vehicle: {{.VehicleName}} ({{.TransferType}})
Passengers: {{.PassengerCount}}
{{if .FlightNumber}}Flight: {{.FlightNumber}}
{{end}}Total: {{formatCurrency .TotalPrice .Currency}}

Reservation details: {{.LookupURL}}
`

var (
	contactHTMLTmpl      = htmltemplate.Must(htmltemplate.New("contact").Funcs(mailFuncs).Parse(contactHTML))
	contactTextTmpl      = texttemplate.Must(texttemplate.New("contact").Funcs(mailFuncs).Parse(contactText))
	confirmationHTMLTmpl = htmltemplate.Must(htmltemplate.New("confirmation").Funcs(mailFuncs).Parse(confirmationHTML))
	confirmationTextTmpl = texttemplate.Must(texttemplate.New("confirmation").Funcs(mailFuncs).Parse(confirmationText))
)

// renderBodies - HTML и текстовая версии письма
func renderBodies(html *htmltemplate.Template, text *texttemplate.Template, data interface{}) (string, string, error) {
	var h, t bytes.Buffer
	if err := html.Execute(&h, data); err != nil {
		return "", "", err
	}
	if err := text.Execute(&t, data); err != nil {
		return "", "", err
	}
	return h.String(), t.String(), nil
}
