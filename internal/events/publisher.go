// Package events publishes answered-turn notifications over NATS. The
// publisher is optional: without NATS_URL the service runs silently.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// SubjectAnswered is the NATS subject for answered questions.
const SubjectAnswered = "sage.question.answered"

// AnswerEvent describes one answered turn.
type AnswerEvent struct {
	Question   string `json:"question"`
	Source     string `json:"source"` // duckduckgo | wikipedia | fallback | comparison | store
	Cached     bool   `json:"cached"`
	Comparison bool   `json:"comparison"`
	Score      int    `json:"score,omitempty"`
	Entity     string `json:"entity,omitempty"`
	Timestamp  string `json:"timestamp"`
}

type Publisher struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func NewPublisher(ctx context.Context, url, token string, logger *slog.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Publisher{conn: nc, logger: logger}, nil
}

func (p *Publisher) Publish(subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return p.conn.Publish(subject, payload)
}

func (p *Publisher) Close() {
	p.conn.Close()
}
