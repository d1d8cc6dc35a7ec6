// Package events publishes post lifecycle events to NATS. Publishing is
// best-effort and optional; feeds do not depend on it.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/emre/postova/internal/app/models"
	"github.com/emre/postova/internal/pkg/logger"
)

// Subjects for post lifecycle events
const (
	SubjectPostCreated = "post.created"
	SubjectPostDeleted = "post.deleted"
)

// PostCreatedEvent is the payload published on SubjectPostCreated
type PostCreatedEvent struct {
	ID       int64     `json:"id"`
	AuthorID int64     `json:"author_id"`
	GroupID  *int64    `json:"group_id,omitempty"`
	Text     string    `json:"text"`
	PubDate  time.Time `json:"pub_date"`
}

// Publisher publishes post events. A nil Publisher is valid and drops all
// events, which is how the application runs when NATS is not configured.
type Publisher struct {
	nc *nats.Conn
}

// Connect dials NATS and returns a Publisher. An empty URL yields a nil
// Publisher without error.
func Connect(url string) (*Publisher, error) {
	if url == "" {
		return nil, nil
	}

	nc, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info().Str("url", url).Msg("Connected to NATS")
	return &Publisher{nc: nc}, nil
}

// Close drains the connection
func (p *Publisher) Close() {
	if p == nil || p.nc == nil {
		return
	}
	if err := p.nc.Drain(); err != nil {
		logger.Warn().Err(err).Msg("Failed to drain NATS connection")
	}
}

// PublishPostCreated publishes a post.created event
func (p *Publisher) PublishPostCreated(_ context.Context, post *models.Post) error {
	if p == nil || p.nc == nil {
		return nil
	}

	event := PostCreatedEvent{
		ID:       post.ID,
		AuthorID: post.AuthorID,
		GroupID:  post.GroupID,
		Text:     post.Text,
		PubDate:  post.PubDate,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshalling error: %w", err)
	}

	return p.nc.Publish(SubjectPostCreated, data)
}

// PublishPostDeleted publishes a post.deleted event
func (p *Publisher) PublishPostDeleted(_ context.Context, postID int64) error {
	if p == nil || p.nc == nil {
		return nil
	}
	return p.nc.Publish(SubjectPostDeleted, []byte(strconv.FormatInt(postID, 10)))
}
