package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jinzhu/configor"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hellman53/book-my-doctor-sub000/api"
	"github.com/hellman53/book-my-doctor-sub000/assistant"
	"github.com/hellman53/book-my-doctor-sub000/data"
	"github.com/hellman53/book-my-doctor-sub000/service"
	"github.com/hellman53/book-my-doctor-sub000/video"
)

var Config AppConfig

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	configor.New(&configor.Config{ENVPrefix: "APP", Silent: true}).Load(&Config, "config.yml")

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if len(Config.Server.Cors) > 0 {
		c := cors.New(cors.Options{
			AllowedOrigins:   Config.Server.Cors,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "Remote-Token", "X-Requested-With"},
			AllowCredentials: true,
			MaxAge:           300,
		})
		r.Use(c.Handler)
	}

	dao := data.NewDAO(Config.DB)
	prefs := data.NewPrefsStore(Config.Redis)
	rooms := video.NewZegoProvider(Config.Video)

	var gen assistant.Client
	if Config.Assistant.APIKey != "" {
		gemini, err := assistant.NewGemini(context.Background(), Config.Assistant)
		if err != nil {
			log.Fatal().Err(err).Msg("assistant init failed")
		}
		gen = gemini
	} else {
		log.Warn().Msg("assistant api key not set, /api/generate disabled")
	}

	svc := service.NewService(dao, prefs, rooms)
	handlers := api.NewAPI(svc, gen)

	handlers.InitRoutes(r)

	if Config.Server.ResetFrequence > 0 {
		go func() {
			now := data.Now()
			freq := time.Duration(Config.Server.ResetFrequence) * time.Minute

			next := now.Truncate(freq).Add(freq).Sub(now)
			time.Sleep(next)

			log.Info().Msg("resetting demo data")
			dao.RestartData()

			ticker := time.NewTicker(freq)
			for range ticker.C {
				log.Info().Msg("resetting demo data")
				dao.RestartData()
			}
		}()
	}

	log.Info().Str("port", Config.Server.Port).Msg("starting webserver")
	if err := http.ListenAndServe(Config.Server.Port, r); err != nil {
		log.Error().Err(err).Msg("webserver stopped")
	}
}
