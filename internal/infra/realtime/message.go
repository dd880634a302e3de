package realtime

import (
	"encoding/json"

	"courier/internal/domain/service"
)

// Phoenix channel events.
const (
	eventJoin      = "phx_join"
	eventLeave     = "phx_leave"
	eventReply     = "phx_reply"
	eventError     = "phx_error"
	eventClose     = "phx_close"
	eventHeartbeat = "heartbeat"
	eventChanges   = "postgres_changes"
	eventSystem    = "system"

	phoenixTopic = "phoenix"
	topicPrefix  = "realtime:"
	replyOK      = "ok"
)

// message is one Phoenix v1 frame.
type message struct {
	Topic   string          `json:"topic"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
	Ref     string          `json:"ref,omitempty"`
}

type replyPayload struct {
	Status   string          `json:"status"`
	Response json.RawMessage `json:"response"`
}

type changeBinding struct {
	Event  string `json:"event"`
	Schema string `json:"schema"`
	Table  string `json:"table"`
	Filter string `json:"filter,omitempty"`
}

type joinConfig struct {
	Broadcast struct {
		Self bool `json:"self"`
	} `json:"broadcast"`
	Presence struct {
		Key string `json:"key"`
	} `json:"presence"`
	PostgresChanges []changeBinding `json:"postgres_changes"`
}

type joinPayload struct {
	Config      joinConfig `json:"config"`
	AccessToken string     `json:"access_token,omitempty"`
}

type changesPayload struct {
	IDs  []int64 `json:"ids"`
	Data struct {
		Schema    string          `json:"schema"`
		Table     string          `json:"table"`
		Type      string          `json:"type"`
		Record    json.RawMessage `json:"record"`
		OldRecord json.RawMessage `json:"old_record"`
	} `json:"data"`
}

func newJoinPayload(filter service.ChangeFilter, accessToken string) joinPayload {
	schema := filter.Schema
	if schema == "" {
		schema = "public"
	}

	var cfg joinConfig
	cfg.PostgresChanges = []changeBinding{{
		Event:  string(filter.Event),
		Schema: schema,
		Table:  filter.Table,
		Filter: filter.Filter,
	}}

	return joinPayload{Config: cfg, AccessToken: accessToken}
}
