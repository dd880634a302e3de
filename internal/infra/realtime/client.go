// Package realtime is a Phoenix-channel websocket client for postgres_changes streams.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"courier/config"
	"courier/internal/domain/entity"
	"courier/internal/domain/lifecycle"
	"courier/internal/domain/service"
	"courier/internal/errors"

	"github.com/gorilla/websocket"
	"go.uber.org/fx"
)

const (
	writeTimeout          = 10 * time.Second
	dispatchQueue         = 256
	defaultHeartbeat      = 25 * time.Second
	defaultReconnectDelay = 5 * time.Second
)

// ErrConnectionLost is returned to callers waiting on a reply when the socket drops.
var ErrConnectionLost = errors.New("realtime connection lost")

// Client multiplexes channels over one websocket and rejoins them after a reconnect.
type Client struct {
	endpoint       string
	accessToken    string
	heartbeat      time.Duration
	reconnectDelay time.Duration
	dialer         *websocket.Dialer
	logger         *slog.Logger

	ref     atomic.Uint64
	seq     atomic.Uint64
	writeMu sync.Mutex

	mu       sync.Mutex
	conn     *websocket.Conn
	channels map[string]*channel
	pending  map[string]chan replyPayload
	closed   bool

	events chan dispatch
	done   chan struct{}
}

type dispatch struct {
	handler func(service.ChangeEvent)
	event   service.ChangeEvent
}

// Params holds dependencies for the realtime client, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New creates the change stream; the socket is dialed on the first Subscribe.
func New(params Params) (service.ChangeStream, error) {
	client, err := NewClient(params.Config.Realtime, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// NewClient builds a Client from the realtime config section.
func NewClient(cfg *config.RealtimeConfig, logger *slog.Logger) (*Client, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, errors.New("realtime.url is required")
	}

	endpoint, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid realtime.url")
	}
	query := endpoint.Query()
	if cfg.AnonKey != "" {
		query.Set("apikey", cfg.AnonKey)
	}
	query.Set("vsn", "1.0.0")
	endpoint.RawQuery = query.Encode()

	accessToken := cfg.AccessToken
	if accessToken == "" {
		accessToken = cfg.AnonKey
	}

	heartbeat := cfg.HeartbeatInterval
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}
	reconnectDelay := cfg.ReconnectDelay
	if reconnectDelay <= 0 {
		reconnectDelay = defaultReconnectDelay
	}

	c := &Client{
		endpoint:       endpoint.String(),
		accessToken:    accessToken,
		heartbeat:      heartbeat,
		reconnectDelay: reconnectDelay,
		dialer:         websocket.DefaultDialer,
		logger:         logger.With(slog.String("component", "realtime")),
		channels:       make(map[string]*channel),
		pending:        make(map[string]chan replyPayload),
		events:         make(chan dispatch, dispatchQueue),
		done:           make(chan struct{}),
	}

	go c.dispatchLoop()

	return c, nil
}

// Subscribe joins a new channel for filter and waits for the server to accept it.
func (c *Client) Subscribe(ctx context.Context, filter service.ChangeFilter, handler func(service.ChangeEvent)) (service.Subscription, error) {
	if filter.Table == "" {
		return nil, errors.New("change filter needs a table")
	}
	if filter.Event == "" {
		filter.Event = entity.ChangeAll
	}

	if err := c.ensureConnected(ctx); err != nil {
		return nil, err
	}

	ch := &channel{
		client:  c,
		topic:   topicPrefix + filter.Table + ":" + strconv.FormatUint(c.seq.Add(1), 10),
		filter:  filter,
		handler: handler,
	}

	c.mu.Lock()
	c.channels[ch.topic] = ch
	c.mu.Unlock()

	reply, err := c.request(ctx, ch.topic, eventJoin, newJoinPayload(filter, c.accessToken))
	if err == nil && reply.Status != replyOK {
		err = errors.Errorf("join %s rejected: %s %s", ch.topic, reply.Status, string(reply.Response))
	}
	if err != nil {
		c.forget(ch.topic)

		return nil, err
	}

	c.logger.Debug("Joined channel",
		slog.String("topic", ch.topic),
		slog.String("table", filter.Table),
		slog.String("filter", filter.Filter),
	)

	return ch, nil
}

// Close leaves the socket for good; later Subscribe calls fail.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()

		return nil
	}
	c.closed = true
	conn := c.conn
	c.conn = nil
	c.failPendingLocked()
	c.mu.Unlock()

	close(c.done)

	if conn == nil {
		return nil
	}

	c.writeMu.Lock()
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeTimeout))
	c.writeMu.Unlock()

	return errors.WithStack(conn.Close())
}

func (c *Client) ensureConnected(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.New("realtime client closed")
	}
	if c.conn != nil {
		return nil
	}

	return c.connectLocked(ctx)
}

// connectLocked requires c.mu.
func (c *Client) connectLocked(ctx context.Context) error {
	conn, resp, err := c.dialer.DialContext(ctx, c.endpoint, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return errors.Wrap(err, "failed to dial realtime socket")
	}

	c.conn = conn
	stop := make(chan struct{})

	go c.readLoop(conn, stop)
	go c.heartbeatLoop(conn, stop)

	c.logger.Info("Realtime socket connected")

	return nil
}

func (c *Client) readLoop(conn *websocket.Conn, stop chan struct{}) {
	defer close(stop)

	for {
		var msg message
		if err := conn.ReadJSON(&msg); err != nil {
			c.handleDisconnect(conn, err)

			return
		}

		c.route(&msg)
	}
}

func (c *Client) heartbeatLoop(conn *websocket.Conn, stop <-chan struct{}) {
	ticker := time.NewTicker(c.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := c.write(conn, &message{
				Topic:   phoenixTopic,
				Event:   eventHeartbeat,
				Payload: json.RawMessage(`{}`),
				Ref:     c.nextRef(),
			}); err != nil {
				c.logger.Warn("Heartbeat failed", slog.Any("error", err))
				_ = conn.Close()

				return
			}
		}
	}
}

func (c *Client) route(msg *message) {
	switch msg.Event {
	case eventReply:
		var reply replyPayload
		if err := json.Unmarshal(msg.Payload, &reply); err != nil {
			c.logger.Warn("Malformed reply", slog.String("topic", msg.Topic), slog.Any("error", err))

			return
		}

		c.mu.Lock()
		waiter, ok := c.pending[msg.Ref]
		delete(c.pending, msg.Ref)
		c.mu.Unlock()

		if ok {
			waiter <- reply
		}
	case eventChanges:
		c.mu.Lock()
		ch := c.channels[msg.Topic]
		c.mu.Unlock()
		if ch == nil {
			return
		}

		var payload changesPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			c.logger.Warn("Malformed change payload", slog.String("topic", msg.Topic), slog.Any("error", err))

			return
		}

		select {
		case c.events <- dispatch{handler: ch.handler, event: service.ChangeEvent{
			Type:      entity.ChangeEventType(payload.Data.Type),
			Table:     payload.Data.Table,
			Record:    payload.Data.Record,
			OldRecord: payload.Data.OldRecord,
		}}:
		case <-c.done:
		}
	case eventError, eventClose:
		c.logger.Warn("Channel closed by server", slog.String("topic", msg.Topic), slog.String("event", msg.Event))
	case eventSystem:
		c.logger.Debug("System message", slog.String("topic", msg.Topic), slog.String("payload", string(msg.Payload)))
	}
}

// dispatchLoop runs handlers off the read goroutine, preserving order.
func (c *Client) dispatchLoop() {
	for {
		select {
		case <-c.done:
			return
		case d := <-c.events:
			d.handler(d.event)
		}
	}
}

func (c *Client) handleDisconnect(conn *websocket.Conn, cause error) {
	c.mu.Lock()
	if c.conn != conn {
		c.mu.Unlock()

		return
	}
	c.conn = nil
	c.failPendingLocked()
	closed := c.closed
	c.mu.Unlock()

	_ = conn.Close()
	if closed {
		return
	}

	c.logger.Warn("Realtime socket dropped, reconnecting", slog.Any("error", cause))

	go c.reconnect()
}

func (c *Client) reconnect() {
	timer := time.NewTimer(c.reconnectDelay)
	defer timer.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-timer.C:
		}

		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		err := c.rejoin(ctx)
		cancel()
		if err == nil {
			return
		}

		c.logger.Warn("Realtime reconnect failed", slog.Any("error", err))
		timer.Reset(c.reconnectDelay)
	}
}

// rejoin dials a fresh socket and replays every join; replies are not awaited.
func (c *Client) rejoin(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()

		return nil
	}
	if c.conn == nil {
		if err := c.connectLocked(ctx); err != nil {
			c.mu.Unlock()

			return err
		}
	}
	conn := c.conn
	channels := make([]*channel, 0, len(c.channels))
	for _, ch := range c.channels {
		channels = append(channels, ch)
	}
	c.mu.Unlock()

	for _, ch := range channels {
		payload, err := json.Marshal(newJoinPayload(ch.filter, c.accessToken))
		if err != nil {
			return errors.WithStack(err)
		}
		if err := c.write(conn, &message{Topic: ch.topic, Event: eventJoin, Payload: payload, Ref: c.nextRef()}); err != nil {
			return err
		}
	}

	c.logger.Info("Realtime channels rejoined", slog.Int("channels", len(channels)))

	return nil
}

// request sends one frame and waits for its phx_reply.
func (c *Client) request(ctx context.Context, topic, event string, payload any) (replyPayload, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return replyPayload{}, errors.WithStack(err)
	}

	ref := c.nextRef()
	waiter := make(chan replyPayload, 1)

	c.mu.Lock()
	conn := c.conn
	if conn == nil {
		c.mu.Unlock()

		return replyPayload{}, ErrConnectionLost
	}
	c.pending[ref] = waiter
	c.mu.Unlock()

	if err := c.write(conn, &message{Topic: topic, Event: event, Payload: raw, Ref: ref}); err != nil {
		c.mu.Lock()
		delete(c.pending, ref)
		c.mu.Unlock()

		return replyPayload{}, err
	}

	select {
	case <-ctx.Done():
		c.mu.Lock()
		delete(c.pending, ref)
		c.mu.Unlock()

		return replyPayload{}, errors.WithStack(ctx.Err())
	case reply, ok := <-waiter:
		if !ok {
			return replyPayload{}, ErrConnectionLost
		}

		return reply, nil
	}
}

// send writes one frame without waiting; a missing socket is not an error.
func (c *Client) send(topic, event string) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return nil
	}

	return c.write(conn, &message{Topic: topic, Event: event, Payload: json.RawMessage(`{}`), Ref: c.nextRef()})
}

func (c *Client) write(conn *websocket.Conn, msg *message) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrap(conn.WriteJSON(msg), "realtime write")
}

func (c *Client) forget(topic string) {
	c.mu.Lock()
	delete(c.channels, topic)
	c.mu.Unlock()
}

// failPendingLocked requires c.mu.
func (c *Client) failPendingLocked() {
	for ref, waiter := range c.pending {
		close(waiter)
		delete(c.pending, ref)
	}
}

func (c *Client) nextRef() string {
	return strconv.FormatUint(c.ref.Add(1), 10)
}
