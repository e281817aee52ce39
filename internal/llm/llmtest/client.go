// Package llmtest provides a scripted gateway client for tests.
package llmtest

import (
	"context"
	"errors"
	"sync"

	"github.com/arno/linkedin-post-agent/internal/llm"
)

// Reply scripts one gateway round trip: either Text or Err is used.
type Reply struct {
	Text string
	Err  error
}

// Client is a scripted llm.Client. It returns replies in order and
// records every conversation it receives, so tests can assert both
// instruction content and invocation counts.
type Client struct {
	mu      sync.Mutex
	replies []Reply
	calls   []llm.Conversation
}

// New creates a scripted client that plays back the given replies.
func New(replies ...Reply) *Client {
	return &Client{replies: replies}
}

// Chat records the conversation and pops the next scripted reply.
func (c *Client) Chat(_ context.Context, conv llm.Conversation) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, conv)
	if len(c.replies) == 0 {
		return "", errors.New("llmtest: no scripted reply left")
	}

	next := c.replies[0]
	c.replies = c.replies[1:]
	if next.Err != nil {
		return "", next.Err
	}
	return next.Text, nil
}

// Close implements llm.Client.
func (c *Client) Close() error { return nil }

// Calls returns the recorded conversations in invocation order.
func (c *Client) Calls() []llm.Conversation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]llm.Conversation(nil), c.calls...)
}

// CallCount returns how many round trips were made.
func (c *Client) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}
