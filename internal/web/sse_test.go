package web_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/IngridGit24/MeetingPlanner/internal/service"
	"github.com/IngridGit24/MeetingPlanner/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// streamLines reads the SSE stream line by line into a channel so tests can
// wait on it with a timeout
func streamLines(t *testing.T, ctx context.Context, url string) (<-chan string, func()) {
	t.Helper()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	lines := make(chan string, 64)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	return lines, func() { resp.Body.Close() }
}

// waitForLine waits until a line with the given prefix arrives
func waitForLine(t *testing.T, lines <-chan string, prefix string) string {
	t.Helper()

	timeout := time.After(3 * time.Second)
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				t.Fatalf("stream closed while waiting for %q", prefix)
			}
			if strings.HasPrefix(line, prefix) {
				return line
			}
		case <-timeout:
			t.Fatalf("timed out waiting for line with prefix %q", prefix)
		}
	}
}

func TestSSEDeliversReservationEvents(t *testing.T) {
	manager := web.NewSSEManager()
	defer manager.Shutdown()

	server := httptest.NewServer(manager)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lines, closeBody := streamLines(t, ctx, server.URL)
	defer closeBody()

	// The manager greets new clients before anything else
	waitForLine(t, lines, "event:connected")

	manager.NotifyReservation(service.ReservationEvent{
		RoomID:    "room1",
		MeetingID: "req1",
		Accepted:  true,
		Timestamp: time.Now(),
	})

	waitForLine(t, lines, "event:reservation")
	data := waitForLine(t, lines, "data:")
	assert.Contains(t, data, `"room_id":"room1"`)
	assert.Contains(t, data, `"accepted":true`)
}

func TestSSENotifyWithoutClients(t *testing.T) {
	manager := web.NewSSEManager()
	defer manager.Shutdown()

	// Nothing to deliver to; must simply not panic
	manager.NotifyReservation(service.ReservationEvent{RoomID: "room1"})
}

func TestSSEShutdownDisconnectsClients(t *testing.T) {
	manager := web.NewSSEManager()

	server := httptest.NewServer(manager)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lines, closeBody := streamLines(t, ctx, server.URL)
	defer closeBody()

	waitForLine(t, lines, "event:connected")

	manager.Shutdown()

	// The server ends the stream; the reader goroutine sees EOF
	timeout := time.After(3 * time.Second)
	for {
		select {
		case _, ok := <-lines:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("stream did not close after shutdown")
		}
	}
}
