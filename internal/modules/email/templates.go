package email

import (
	"fmt"
	"strings"

	"github.com/tompettersson/reparatur-formular/internal/modules/orders"
	"github.com/tompettersson/reparatur-formular/internal/modules/pricing"
)

const footer = `
<hr style="margin: 32px 0; border: none; border-top: 1px solid #e5e5e5;">
<p style="font-size: 12px; color: #888888; line-height: 1.5;">
  Diese E-Mail wurde automatisch generiert.<br>
  Bei Fragen antworten Sie bitte direkt auf diese E-Mail oder kontaktieren Sie uns unter:<br>
  <a href="mailto:info@kletterschuhe.de" style="color: #ef6a27;">info@kletterschuhe.de</a>
</p>
<p style="font-size: 12px; color: #888888;">
  kletterschuhe.de – Reparatur-Service
</p>
`

func baseTemplate(content string) string {
	return `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, Arial, sans-serif; margin: 0; padding: 0; background-color: #f3f3f3;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: linear-gradient(135deg, #efa335 0%, #ef6a27 100%); padding: 24px; border-radius: 8px 8px 0 0; text-align: center;">
      <h1 style="margin: 0; color: white; font-size: 24px;">kletterschuhe.de</h1>
      <p style="margin: 8px 0 0; color: rgba(255,255,255,0.9); font-size: 14px;">Reparatur-Service</p>
    </div>
    <div style="background: white; padding: 32px; border-radius: 0 0 8px 8px;">
` + content + footer + `
    </div>
  </div>
</body>
</html>
`
}

func customerName(o orders.Order) string {
	return strings.TrimSpace(o.FirstName + " " + o.LastName)
}

func orderConfirmationEmail(o orders.Order, items []orders.OrderItem) message {
	subject := fmt.Sprintf("Auftragsbestätigung %s – kletterschuhe.de", o.Number())

	var textLines, htmlRows strings.Builder
	for _, it := range items {
		line := fmt.Sprintf("%s %s (Anzahl %s): %s",
			it.Manufacturer, it.Model,
			strings.Replace(it.Quantity.String(), ".", ",", 1),
			pricing.FormatEUR(it.CalculatedPrice))
		textLines.WriteString("- " + line + "\n")
		htmlRows.WriteString("<li>" + line + "</li>\n")
	}
	total := pricing.FormatEUR(o.TotalPrice)

	text := fmt.Sprintf(`Hallo %s,

vielen Dank für Ihren Reparaturauftrag!

Auftragsnummer: %s

Positionen:
%s
Kostenvoranschlag gesamt: %s

Bitte senden Sie Ihre Schuhe an uns. Sobald sie eintreffen, melden wir uns.

Ihr kletterschuhe.de Team
`, customerName(o), o.Number(), textLines.String(), total)

	html := baseTemplate(fmt.Sprintf(`
      <h2>Auftragsbestätigung</h2>
      <p>Hallo %s,</p>
      <p>vielen Dank für Ihren Reparaturauftrag!</p>
      <p><strong>Auftragsnummer:</strong> %s</p>
      <ul>%s</ul>
      <p><strong>Kostenvoranschlag gesamt:</strong> %s</p>
      <p>Bitte senden Sie Ihre Schuhe an uns. Sobald sie eintreffen, melden wir uns.</p>
`, customerName(o), o.Number(), htmlRows.String(), total))

	return message{Subject: subject, Text: text, HTML: html}
}

func statusUpdateEmail(o orders.Order, change orders.OrderStatusChange) message {
	label := change.ToStatus.Label()
	subject := fmt.Sprintf("Statusupdate %s: %s – kletterschuhe.de", o.Number(), label)

	var extraText, extraHTML strings.Builder
	if change.Comment != nil && *change.Comment != "" {
		extraText.WriteString("\nAnmerkung: " + *change.Comment + "\n")
		extraHTML.WriteString("<p><strong>Anmerkung:</strong> " + *change.Comment + "</p>")
	}
	if change.TrackingNumber != nil && *change.TrackingNumber != "" {
		carrier := ""
		if change.TrackingCarrier != nil {
			carrier = *change.TrackingCarrier
		}
		extraText.WriteString(fmt.Sprintf("\nSendungsverfolgung: %s %s\n", carrier, *change.TrackingNumber))
		extraHTML.WriteString(fmt.Sprintf("<p><strong>Sendungsverfolgung:</strong> %s %s</p>", carrier, *change.TrackingNumber))
	}

	text := fmt.Sprintf(`Hallo %s,

der Status Ihres Auftrags %s hat sich geändert:

Neuer Status: %s
%s
Ihr kletterschuhe.de Team
`, customerName(o), o.Number(), label, extraText.String())

	html := baseTemplate(fmt.Sprintf(`
      <h2>Statusupdate zu Ihrem Auftrag</h2>
      <p>Hallo %s,</p>
      <p>der Status Ihres Auftrags <strong>%s</strong> hat sich geändert:</p>
      <p style="font-size: 18px;"><strong>%s</strong></p>
      %s
`, customerName(o), o.Number(), label, extraHTML.String()))

	return message{Subject: subject, Text: text, HTML: html}
}
