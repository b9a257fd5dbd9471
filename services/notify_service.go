// services/notify_service.go
package services

import (
	"log"
	"os"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// NotifyService sends the booking-confirmation SMS. It is disabled unless the
// Twilio credentials are configured, so local setups run without it.
type NotifyService struct {
	client *twilio.RestClient
	from   string
}

func NewNotifyService() *NotifyService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_PHONE_NUMBER")
	if accountSid == "" || authToken == "" || from == "" {
		return &NotifyService{}
	}
	return &NotifyService{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: from,
	}
}

// SendBookingConfirmation texts the customer after a successful intake.
// Best-effort: failures are logged, never surfaced to the caller.
func (n *NotifyService) SendBookingConfirmation(to, message string) {
	if n == nil || n.client == nil {
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)
	params.SetFrom(n.from)

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send confirmation to %s: %v", to, err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Confirmation sent to %s, SID: %s", to, *resp.Sid)
	}
}
