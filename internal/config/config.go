package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	DefaultOutputFile  = "inputs.txt"
	DefaultNumMessages = 5
)

func init() {
	switch Environment() {
	case "staging", "sandbox", "production":
		// do nothing in cloud env
	default:
		err := maybeLoadDotEnv()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load .env file if it is present")
		}
	}
	time.Local = time.UTC
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if zerolog.DefaultContextLogger == nil {
		zerolog.DefaultContextLogger = &log.Logger
	}
	zerolog.SetGlobalLevel(logLevel())
}

func Environment() string {
	return os.Getenv("ENVIRONMENT")
}

func OutputFile() string {
	path := os.Getenv("LIN_OUTPUT_FILE")
	if path == "" {
		path = DefaultOutputFile
	}
	return path
}

// NumMessages is not range checked here, a negative count is rejected by the batch writer.
func NumMessages() int {
	n := DefaultNumMessages
	s := os.Getenv("LIN_NUM_MESSAGES")
	if s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			log.Fatal().Err(err).Msgf("failed to parse LIN_NUM_MESSAGES: %s", s)
		}
		n = v
	}

	return n
}

// Seed returns nil when LIN_SEED is unset, meaning the output is not reproducible.
func Seed() *uint64 {
	s := os.Getenv("LIN_SEED")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		log.Fatal().Err(err).Msgf("failed to parse LIN_SEED: %s", s)
	}
	return &v
}

func maybeLoadDotEnv() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	for {
		candidate := filepath.Join(dir, ".env")
		if fi, err := os.Stat(candidate); err == nil && !fi.IsDir() {
			return godotenv.Load(candidate)
		} else if err != nil && !os.IsNotExist(err) {
			return err
		}
		d := filepath.Dir(dir)
		if d == dir {
			break
		}
		dir = d
	}

	return nil
}

func logLevel() zerolog.Level {
	level := os.Getenv("LOG_LEVEL")
	if strings.EqualFold("debug", level) {
		return zerolog.DebugLevel
	}
	if strings.EqualFold("warn", level) {
		return zerolog.WarnLevel
	}
	if strings.EqualFold("error", level) {
		return zerolog.ErrorLevel
	}
	if strings.EqualFold("fatal", level) {
		return zerolog.FatalLevel
	}

	return zerolog.InfoLevel
}
