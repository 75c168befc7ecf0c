package portfolio_test

import (
	"testing"

	"github.com/coincraft/backend/internal/models"
	"github.com/coincraft/backend/internal/portfolio"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedSubscribePublish(t *testing.T) {
	feed := portfolio.NewFeed(zerolog.Nop())

	ch, cancel := feed.Subscribe()
	assert.Equal(t, 1, feed.Subscribers())

	snapshot := []models.Holding{{Symbol: "AAPL"}}
	feed.Publish(snapshot)

	received := <-ch
	require.Len(t, received, 1)
	assert.Equal(t, "AAPL", received[0].Symbol)

	cancel()
	assert.Equal(t, 0, feed.Subscribers())

	// Publishing without subscribers must not block.
	feed.Publish(snapshot)
}

func TestFeedDropsWhenFull(t *testing.T) {
	feed := portfolio.NewFeed(zerolog.Nop())

	ch, cancel := feed.Subscribe()
	defer cancel()

	// Fill the buffer and keep publishing: the feed must never block.
	for i := 0; i < 100; i++ {
		feed.Publish([]models.Holding{})
	}

	drained := 0
	for {
		select {
		case <-ch:
			drained++
			continue
		default:
		}
		break
	}

	assert.Equal(t, 16, drained)
}
