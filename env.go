package main

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Env struct {
	GeminiAPIKey string `env:"GEMINI_API_KEY" env-required:"true"`
	GeminiModel  string `env:"GEMINI_MODEL" env-default:"gemini-2.0-flash"`

	RedisURL     string `env:"REDIS_URL" env-required:"true"`
	CacheBackend string `env:"CACHE_BACKEND" env-default:"memory"`

	Port string `env:"PORT" env-default:"1323"`

	OTLPEndpoint string `env:"OTLP_ENDPOINT" env-default:"localhost:4318"`

	LogFormat string `env:"LOG_FORMAT" env-default:"json"`
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
}

var env Env

func LoadEnv() error {
	err := godotenv.Load()
	if err != nil {
		logrus.WithError(err).Warn("Failed to load env variables from file")
	}

	return cleanenv.ReadEnv(&env)
}

func GetEnv() *Env {
	return &env
}
