package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the process configuration
type Config struct {
	Port           string
	AllowedOrigins []string
	Debug          bool
	GinMode        string
	WordsPath      string
	RoundSeconds   int
	MaxRounds      int
	ToiletRounds   int
	PublicURL      string
}

// Load reads .env (if present) and then the environment
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	cfg := &Config{
		Port:           getEnv("PORT", "3000"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		Debug:          os.Getenv("DEBUG") != "",
		GinMode:        getEnv("GIN_MODE", "release"),
		WordsPath:      getEnv("WORDS_PATH", "data/drawguess-words.json"),
		PublicURL:      getEnv("PUBLIC_URL", "http://localhost:3000"),
	}

	var err error
	if cfg.RoundSeconds, err = getPositiveInt("ROUND_SECONDS", 60); err != nil {
		return nil, err
	}
	if cfg.MaxRounds, err = getPositiveInt("MAX_ROUNDS", 3); err != nil {
		return nil, err
	}
	if cfg.ToiletRounds, err = getPositiveInt("TOILET_ROUNDS", 3); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getPositiveInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
