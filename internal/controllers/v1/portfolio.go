package v1

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coincraft/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// streamWriteTimeout bounds a single websocket write. A subscriber that
// cannot keep up is disconnected instead of stalling the stream handler.
const streamWriteTimeout = 5 * time.Second

func (co Controller) RegisterPortfolioRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsPortfolio)
		r.GET("", co.GetPortfolio)
	}

	r.GET("/stream", co.StreamPortfolio)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Portfolio
// @Success		204
// @Router			/v1/portfolio [options]
func OptionsPortfolio(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get portfolio valuation
// @Description	Returns the current value, cost basis and unrealized gain or loss of the whole portfolio
// @Tags			Portfolio
// @Produce		json
// @Success		200	{object}	ValuationResponse
// @Router			/v1/portfolio [get]
func (co Controller) GetPortfolio(c *gin.Context) {
	c.JSON(http.StatusOK, ValuationResponse{
		Data: co.dashboard.Portfolio.Valuation(),
	})
}

// @Summary		Stream price ticks
// @Description	Upgrades the connection to a websocket and sends the holdings snapshot after every simulated price tick as a JSON message
// @Tags			Portfolio
// @Success		101
// @Router			/v1/portfolio/stream [get]
func (co Controller) StreamPortfolio(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		// Browser clients connect cross-origin from the dashboard UI, the
		// stream carries no credentials.
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.Debug().Err(err).Msg("websocket accept failed")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "stream aborted")

	snapshots, cancel := co.dashboard.Feed.Subscribe()
	defer cancel()

	// The stream is write-only. CloseRead keeps processing control frames so
	// that a client close is noticed without a pending write.
	ctx := conn.CloseRead(c.Request.Context())

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return

		case holdings, ok := <-snapshots:
			if !ok {
				conn.Close(websocket.StatusNormalClosure, "")
				return
			}

			data := make([]Holding, 0, len(holdings))
			for _, holding := range holdings {
				data = append(data, newHolding(holding))
			}

			writeCtx, cancelWrite := context.WithTimeout(ctx, streamWriteTimeout)
			err := wsjson.Write(writeCtx, conn, HoldingListResponse{Data: data})
			cancelWrite()

			if err != nil {
				closeStatus := websocket.CloseStatus(err)
				if closeStatus != websocket.StatusNormalClosure && closeStatus != websocket.StatusGoingAway && !errors.Is(err, context.Canceled) {
					log.Debug().Err(err).Msg("websocket write failed, dropping subscriber")
				}
				return
			}
		}
	}
}
