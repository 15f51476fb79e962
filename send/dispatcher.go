package send

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"bulktext/message"
	"bulktext/recipients"
)

// sendInterval throttles the native application to one send per second.
// It is deliberately not configurable.
const sendInterval = time.Second

// Dispatcher delivers one rendered message per recipient, strictly in
// order. A failed send is logged and skipped; it never aborts the batch.
type Dispatcher struct {
	sender  Sender
	service string
	limiter *rate.Limiter
	log     zerolog.Logger
}

func NewDispatcher(sender Sender, service string, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		sender:  sender,
		service: service,
		limiter: rate.NewLimiter(rate.Every(sendInterval), 1),
		log:     log,
	}
}

// Run sends the template to every recipient. The only error it returns is
// context cancellation between sends; per-recipient send failures are
// logged at error level and the batch continues.
func (d *Dispatcher) Run(ctx context.Context, recs []recipients.Recipient, tmpl *message.Template) error {
	for _, rec := range recs {
		if err := d.limiter.Wait(ctx); err != nil {
			return err
		}

		text := tmpl.Render(rec.Name)

		log := d.log.With().Str("number", rec.Number).Logger()
		if rec.Name != "" {
			log = log.With().Str("name", rec.Name).Logger()
		}

		if err := d.sender.Send(ctx, text, rec.Number, d.service); err != nil {
			log.Error().Err(err).Msg("Failed to send message")
			continue
		}
		log.Info().Msg("Message sent")
	}

	return nil
}
