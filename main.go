package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/aaronzipp/party-rooms/internal/config"
	"github.com/aaronzipp/party-rooms/internal/game"
	"github.com/aaronzipp/party-rooms/internal/handlers"
	"github.com/aaronzipp/party-rooms/internal/logger"
	"github.com/aaronzipp/party-rooms/internal/session"
	"github.com/aaronzipp/party-rooms/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Setup(false)
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Setup(cfg.Debug)
	gin.SetMode(cfg.GinMode)

	lex := loadLexicon(cfg.WordsPath)
	rng := game.NewRandom()

	cards := session.NewCardEngine(store.NewRoomStore(), rng, cfg.ToiletRounds)
	draw := session.NewDrawEngine(store.NewRoomStore(), rng, lex, session.NewRealClock(), cfg.RoundSeconds, cfg.MaxRounds)

	ctx := handlers.NewContext(cfg.PublicURL, cfg.AllowedOrigins, cards, draw)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handlers.NewRouter(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// loadLexicon reads the word file, falling back to the built-in words
func loadLexicon(path string) *game.Lexicon {
	lex, err := game.LoadLexicon(path)
	if err != nil {
		log.Warn().Err(err).Msg("using built-in word list")
		return game.DefaultLexicon()
	}
	log.Info().Int("categories", lex.Categories()).Str("path", path).Msg("loaded word list")
	return lex
}
