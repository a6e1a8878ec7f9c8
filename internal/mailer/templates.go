package mailer

import (
	"fmt"
	"html/template"
	"strings"
)

func render(t *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}
	return b.String(), nil
}

var baseStyle = `
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .content { background: #fff; padding: 30px; border: 1px solid #e5e7eb; }
    .details { background: #f9fafb; padding: 20px; border-radius: 8px; margin: 20px 0; }
    .detail-row { display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px solid #e5e7eb; }
    .detail-row:last-child { border-bottom: none; }
    .label { font-weight: bold; color: #6b7280; }
    .value { color: #111827; }
    .footer { text-align: center; padding: 20px; color: #6b7280; font-size: 14px; }
`

var bookingTmpl = template.Must(template.New("booking").Parse(`<!DOCTYPE html>
<html>
  <head>
    <style>` + baseStyle + `
      .header { background: linear-gradient(135deg, #f97316 0%, #ea580c 100%); color: white; padding: 30px; text-align: center; border-radius: 8px 8px 0 0; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header"><h1>&#128591; Pooja Booking Confirmed</h1></div>
      <div class="content">
        <p>Namaste {{.Name}},</p>
        <p>Your pooja booking has been confirmed! We look forward to serving you.</p>
        <div class="details">
          <div class="detail-row"><span class="label">Pooja Name:</span><span class="value">{{.PoojaName}}</span></div>
          <div class="detail-row"><span class="label">Date:</span><span class="value">{{.ScheduledDate}}</span></div>
          <div class="detail-row"><span class="label">Time:</span><span class="value">{{.ScheduledTime}}</span></div>
          <div class="detail-row"><span class="label">Amount Paid:</span><span class="value">&#8377;{{.AmountPaid}}</span></div>
        </div>
        <p>Please arrive 15 minutes before the scheduled time. If you need to reschedule, please contact us at least 24 hours in advance.</p>
        <p style="margin-top: 30px;">With blessings,<br><strong>Temple Management</strong></p>
      </div>
      <div class="footer"><p>This is an automated email. Please do not reply to this message.</p></div>
    </div>
  </body>
</html>`))

var donationTmpl = template.Must(template.New("donation").Parse(`<!DOCTYPE html>
<html>
  <head>
    <style>` + baseStyle + `
      .header { background: linear-gradient(135deg, #10b981 0%, #059669 100%); color: white; padding: 30px; text-align: center; border-radius: 8px 8px 0 0; }
      .amount { font-size: 36px; font-weight: bold; color: #10b981; text-align: center; margin: 20px 0; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header"><h1>&#128591; Thank You for Your Donation</h1></div>
      <div class="content">
        <p>Dear {{.Name}},</p>
        <p>Your generous contribution has been received with heartfelt gratitude.</p>
        <div class="amount">&#8377;{{.Amount}}</div>
        <div class="details">
          {{if .CampaignTitle}}<div class="detail-row"><span class="label">Campaign:</span><span class="value">{{.CampaignTitle}}</span></div>{{end}}
          {{if .PaymentReference}}<div class="detail-row"><span class="label">Receipt No:</span><span class="value">{{.PaymentReference}}</span></div>{{end}}
          <div class="detail-row"><span class="label">Date:</span><span class="value">{{.Date}}</span></div>
        </div>
        <p>Your donation helps us continue our sacred services and maintain the temple. May your generosity bring you abundant blessings.</p>
        <p style="margin-top: 30px;">With prayers and blessings,<br><strong>Temple Management</strong></p>
      </div>
      <div class="footer"><p>This receipt is for your records. Please save it for tax purposes if applicable.</p></div>
    </div>
  </body>
</html>`))

var festivalTmpl = template.Must(template.New("festival").Parse(`<!DOCTYPE html>
<html>
  <head>
    <style>` + baseStyle + `
      .header { background: linear-gradient(135deg, #8b5cf6 0%, #7c3aed 100%); color: white; padding: 30px; text-align: center; border-radius: 8px 8px 0 0; }
      .festival-title { font-size: 28px; font-weight: bold; color: #8b5cf6; text-align: center; margin: 20px 0; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header"><h1>&#129682; Festival Reminder</h1></div>
      <div class="content">
        <p>Namaste {{.Name}},</p>
        <p>We are delighted to remind you about the upcoming festival celebration:</p>
        <div class="festival-title">{{.FestivalTitle}}</div>
        <div class="details">
          <div class="detail-row"><span class="label">Date:</span><span class="value">{{.EventDate}}</span></div>
          {{if .StartTime}}<div class="detail-row"><span class="label">Time:</span><span class="value">{{.StartTime}}</span></div>{{end}}
          {{if .Location}}<div class="detail-row"><span class="label">Location:</span><span class="value">{{.Location}}</span></div>{{end}}
        </div>
        <p>Join us for this sacred celebration. Your presence will make this occasion even more special.</p>
        <p style="margin-top: 30px;">Looking forward to seeing you,<br><strong>Temple Management</strong></p>
      </div>
      <div class="footer"><p>May this festival bring joy, peace, and prosperity to you and your family.</p></div>
    </div>
  </body>
</html>`))
