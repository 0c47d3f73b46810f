package client

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// Refresh is one server-sent refresh signal. Kind is "content_updated" or
// "gallery_updated".
type Refresh struct {
	Kind string
}

// Subscribe opens the server's event stream and delivers refresh signals on
// the returned channel until ctx is cancelled or the stream closes. The
// channel is closed when the stream ends.
func (c *Client) Subscribe(ctx context.Context) (<-chan Refresh, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get("/api/events")
	if err != nil {
		return nil, fmt.Errorf("event stream request failed: %w", err)
	}
	if resp.StatusCode() >= 400 {
		_ = resp.RawBody().Close()
		return nil, fmt.Errorf("event stream returned %s", resp.Status())
	}

	ch := make(chan Refresh)
	go func() {
		defer close(ch)
		defer func() { _ = resp.RawBody().Close() }()

		scanner := bufio.NewScanner(resp.RawBody())
		for scanner.Scan() {
			line := scanner.Text()
			// Comment lines keep the connection warm; only event names carry
			// a signal worth forwarding.
			if !strings.HasPrefix(line, "event: ") {
				continue
			}
			select {
			case ch <- Refresh{Kind: strings.TrimPrefix(line, "event: ")}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}
