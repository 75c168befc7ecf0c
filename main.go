package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/coincraft/backend/internal/controllers/v1"
	"github.com/coincraft/backend/internal/dashboard"
	"github.com/coincraft/backend/internal/router"
	"github.com/coincraft/backend/internal/simulation"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// shutdownTimeout bounds the drain of in-flight requests on shutdown.
const shutdownTimeout = 10 * time.Second

func main() {
	// Load a .env file if one exists, without overriding variables that
	// are already set
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	d := dashboard.New(log.Logger)

	// Price simulation
	tickInterval := simulation.DefaultInterval
	if value, ok := os.LookupEnv("PRICE_TICK_INTERVAL"); ok {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			log.Fatal().Str("PRICE_TICK_INTERVAL", value).Msg("invalid tick interval")
		}
		tickInterval = parsed
	}

	ticker := simulation.New(log.Logger)
	if err := ticker.Schedule(tickInterval, d.TickJob()); err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config()
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(v1.NewController(d), r.Group("/"))

	addr := ":8080"
	if port, ok := os.LookupEnv("PORT"); ok {
		addr = ":" + port
	}

	server := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker.Start()

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msg(err.Error())
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	ticker.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Msg(err.Error())
	}
}
