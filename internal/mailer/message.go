package mailer

import (
	"encoding/json"
	"fmt"
)

// Message is the closed set of notification emails. Every variant carries
// its own subject and template, so adding a message type without a template
// is a compile error rather than a runtime 500.
type Message interface {
	Recipient() string
	Subject() string
	HTML() (string, error)

	sealed()
}

// BookingConfirmation confirms a scheduled pooja
type BookingConfirmation struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	PoojaName     string  `json:"poojaName"`
	ScheduledDate string  `json:"scheduledDate"`
	ScheduledTime string  `json:"scheduledTime"`
	AmountPaid    float64 `json:"amountPaid"`
}

func (m BookingConfirmation) Recipient() string { return m.Email }
func (m BookingConfirmation) Subject() string {
	return fmt.Sprintf("Pooja Booking Confirmation - %s", m.PoojaName)
}
func (m BookingConfirmation) HTML() (string, error) { return render(bookingTmpl, m) }
func (BookingConfirmation) sealed()                 {}

// DonationReceipt thanks a donor; campaign and reference lines are omitted
// when absent
type DonationReceipt struct {
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Amount           float64 `json:"amount"`
	CampaignTitle    string  `json:"campaignTitle,omitempty"`
	PaymentReference string  `json:"paymentReference,omitempty"`
	Date             string  `json:"-"`
}

func (m DonationReceipt) Recipient() string     { return m.Email }
func (m DonationReceipt) Subject() string       { return "Thank You for Your Donation" }
func (m DonationReceipt) HTML() (string, error) { return render(donationTmpl, m) }
func (DonationReceipt) sealed()                 {}

// FestivalReminder announces an upcoming festival; time and location lines
// are omitted when absent
type FestivalReminder struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	FestivalTitle string `json:"festivalTitle"`
	EventDate     string `json:"eventDate"`
	StartTime     string `json:"startTime,omitempty"`
	Location      string `json:"location,omitempty"`
}

func (m FestivalReminder) Recipient() string { return m.Email }
func (m FestivalReminder) Subject() string {
	return fmt.Sprintf("Festival Reminder - %s", m.FestivalTitle)
}
func (m FestivalReminder) HTML() (string, error) { return render(festivalTmpl, m) }
func (FestivalReminder) sealed()                 {}

// ParseMessage decodes the discriminated {type, data} request shape into the
// matching variant. An unrecognized type is a caller error.
func ParseMessage(msgType string, data json.RawMessage) (Message, error) {
	switch msgType {
	case "booking":
		var m BookingConfirmation
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("invalid booking payload: %w", err)
		}
		return m, nil
	case "donation":
		var m DonationReceipt
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("invalid donation payload: %w", err)
		}
		return m, nil
	case "festival":
		var m FestivalReminder
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("invalid festival payload: %w", err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("invalid email type: %q", msgType)
	}
}
