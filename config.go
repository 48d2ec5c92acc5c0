package main

import (
	"github.com/hellman53/book-my-doctor-sub000/assistant"
	"github.com/hellman53/book-my-doctor-sub000/data"
	"github.com/hellman53/book-my-doctor-sub000/video"
)

type AppConfig struct {
	Server struct {
		Port           string `default:":3000"`
		Cors           []string
		ResetFrequence int // demo data reset interval in minutes, 0 disables
	}

	DB        data.DBConfig
	Redis     data.RedisConfig
	Video     video.Config
	Assistant assistant.Config
}
