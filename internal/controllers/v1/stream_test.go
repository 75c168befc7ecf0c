package v1_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	v1 "github.com/coincraft/backend/internal/controllers/v1"
	"github.com/coincraft/backend/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

func TestStreamPortfolio(t *testing.T) {
	co, d := newController()

	r, teardown, err := router.Config()
	require.NoError(t, err)
	defer teardown()
	router.AttachRoutes(co, r.Group("/"))

	server := httptest.NewServer(r)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/v1/portfolio/stream"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool {
		return d.Feed.Subscribers() == 1
	}, time.Second, 10*time.Millisecond, "the stream handler should subscribe to the feed")

	require.NoError(t, d.TickJob().Run())

	var response v1.HoldingListResponse
	require.NoError(t, wsjson.Read(ctx, conn, &response))

	assert.Len(t, response.Data, 3)
	for _, holding := range response.Data {
		assert.True(t, holding.CurrentPrice.IsPositive())
		assert.NotEmpty(t, holding.PriceHistory)
	}
}

func TestStreamPortfolioUnsubscribesOnClose(t *testing.T) {
	co, d := newController()

	r, teardown, err := router.Config()
	require.NoError(t, err)
	defer teardown()
	router.AttachRoutes(co, r.Group("/"))

	server := httptest.NewServer(r)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/v1/portfolio/stream"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return d.Feed.Subscribers() == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))

	require.NoError(t, d.TickJob().Run())
	require.Eventually(t, func() bool {
		return d.Feed.Subscribers() == 0
	}, time.Second, 10*time.Millisecond, "a closed connection should be unsubscribed")
}
