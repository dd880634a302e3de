package pubsub

import (
	"encoding/base64"
	"encoding/json"

	"courier/internal/errors"
)

// AttrRequestID carries the tracing id on published messages.
const AttrRequestID = "request_id"

// PushEnvelope is the body Pub/Sub POSTs to push subscriptions.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// Decode base64-decodes the message data and unmarshals it into v. Empty data leaves v untouched.
func (e *PushEnvelope) Decode(v any) error {
	if e.Message.Data == "" {
		return nil
	}

	raw, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return errors.Wrap(err, "failed to decode message data")
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return errors.Wrap(err, "failed to parse message payload")
	}

	return nil
}

// Attribute returns a message attribute or "".
func (e *PushEnvelope) Attribute(key string) string {
	return e.Message.Attributes[key]
}
