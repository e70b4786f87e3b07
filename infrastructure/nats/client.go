package nats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"task-tracker/domain/ports"
	"task-tracker/pkg/logger"
)

// Client wraps the NATS connection with a JetStream context
type Client struct {
	conn          *nats.Conn
	js            jetstream.JetStream
	subjectPrefix string
}

type ClientConfig struct {
	URL           string // nats://localhost:4222
	SubjectPrefix string
}

func NewClient(cfg ClientConfig) (*Client, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.Name("task-tracker"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	prefix := cfg.SubjectPrefix
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}

	client := &Client{
		conn:          nc,
		js:            js,
		subjectPrefix: prefix,
	}

	if err := client.setupStream(context.Background()); err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to setup stream: %w", err)
	}

	logger.Info("NATS client initialized", "url", cfg.URL, "stream", StreamName)
	return client, nil
}

func (c *Client) setupStream(ctx context.Context) error {
	_, err := c.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        StreamName,
		Subjects:    []string{c.subjectPrefix + ".>"},
		Storage:     jetstream.FileStorage,
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      streamMaxAge,
		Replicas:    1,
		Description: "Task lifecycle events",
	})
	if err != nil {
		return fmt.Errorf("failed to create/update task events stream: %w", err)
	}
	logger.Info("JetStream stream ready", "name", StreamName, "subjects", c.subjectPrefix+".>")
	return nil
}

func (c *Client) JetStream() jetstream.JetStream {
	return c.js
}

func (c *Client) SubjectPrefix() string {
	return c.subjectPrefix
}

func (c *Client) Close() error {
	if c.conn != nil {
		c.conn.Close()
		logger.Info("NATS connection closed")
	}
	return nil
}

var errNotConnected = errors.New("nats: not connected")

func (c *Client) Name() string {
	return "nats"
}

// Check reports whether the connection is up and the server answers a flush.
func (c *Client) Check(ctx context.Context) error {
	if !c.IsConnected() {
		return errNotConnected
	}
	return c.Ping(ctx)
}

func (c *Client) Ping(ctx context.Context) error {
	return c.conn.FlushWithContext(ctx)
}

func (c *Client) IsConnected() bool {
	return c.conn != nil && c.conn.IsConnected()
}

var _ ports.DependencyChecker = (*Client)(nil)
