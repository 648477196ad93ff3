package pubsub

import (
	"encoding/json"

	"adresses/internal/domain/entity"
	"adresses/internal/errors"
)

// Message attribute keys. Subscriptions filter on them without decoding the body.
const (
	AttrEventID   = "event_id"
	AttrEventType = "event_type"
	AttrAddressID = "address_id"
	AttrRequestID = "request_id"
)

// PushMessage is the body Google Pub/Sub POSTs to push subscriptions.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// encodeEvent returns the JSON body and the attributes of an event message.
func encodeEvent(event *entity.AddressEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "encode event %s", event.ID)
	}

	attrs := map[string]string{
		AttrEventID:   event.ID,
		AttrEventType: string(event.Type),
		AttrAddressID: event.AddressID,
	}
	if event.RequestID != "" {
		attrs[AttrRequestID] = event.RequestID
	}

	return data, attrs, nil
}
