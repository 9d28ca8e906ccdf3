package webevents

import (
	"context"
	"encoding/json"
	"log/slog"

	gosse "github.com/alexandrevicenzi/go-sse"
	"github.com/diwise/messaging-golang/pkg/messaging"
)

// WebEvents pushes alert and printer status events to connected web
// clients over server sent events.
type WebEvents interface {
	Server() *gosse.Server
	Shutdown()
	Publish(event string, data any) error
}

type webEvents struct {
	s *gosse.Server
}

func New(messenger messaging.MsgContext) (WebEvents, error) {
	we := &webEvents{
		s: gosse.NewServer(&gosse.Options{}),
	}

	topics := map[string]string{
		"alerts.alertCreated":      "alertCreated",
		"alerts.alertAcknowledged": "alertAcknowledged",
		"printers.statusChanged":   "printerStatusChanged",
	}

	for routingKey, event := range topics {
		err := messenger.RegisterTopicMessageHandler(routingKey, forward(we, event))
		if err != nil {
			return nil, err
		}
	}

	return we, nil
}

// forward relays the message body as-is, since the publishers already
// encode their payloads as json.
func forward(we *webEvents, event string) messaging.TopicMessageHandler {
	return func(ctx context.Context, msg messaging.IncomingTopicMessage, logger *slog.Logger) {
		we.s.SendMessage("", gosse.NewMessage("", string(msg.Body()), event))
	}
}

func (we *webEvents) Server() *gosse.Server {
	return we.s
}

func (we *webEvents) Shutdown() {
	we.s.Shutdown()
}

func (we *webEvents) Publish(event string, data any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}

	we.s.SendMessage("", gosse.NewMessage("", string(b), event))

	return nil
}
