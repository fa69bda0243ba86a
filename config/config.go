package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// defaultDomains is the fixed set of brokerage sites sharing the common
// backend API pattern. The same sites also serve the rendered search UI.
const defaultDomains = "imoveisinvest.com," +
	"imobiliariadcasa.com.br," +
	"barbianimoveis.com.br," +
	"oktoberimoveis.com.br," +
	"borbaimoveis.com.br," +
	"predilarimoveis.com.br," +
	"karnoppimoveis.com.br," +
	"imoveismdm.com.br," +
	"verenaimoveis.com.br," +
	"imoveisdasantinha.com.br," +
	"muranoimobiliaria.com.br," +
	"imobjardim.com.br," +
	"imobiliariaimigrante.com.br," +
	"garbonegociosimobiliarios.com.br"

// Config holds all application configuration loaded from environment variables.
type Config struct {
	APIDomains      []string
	FrontendDomains []string

	// Browser search filters; prices are in minor currency units (centavos)
	// as the sites expect them in the query string.
	FilterTypes   []string
	MinPriceCents int
	MaxPriceCents int

	RequestTimeoutSec int
	RateLimitMs       int
	MaxRetries        int
	MaxPages          int
	MaxScrollRounds   int

	CSVOutputPath string
	ChromeBin     string
	Debug         bool

	PostgresEnabled  bool
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		APIDomains:      getEnvList("API_DOMAINS", defaultDomains),
		FrontendDomains: getEnvList("FRONTEND_DOMAINS", defaultDomains),

		FilterTypes:   getEnvList("FILTER_TYPES", "apartamento,casa"),
		MinPriceCents: getEnvInt("FILTER_MIN_PRICE_CENTS", 25000000),
		MaxPriceCents: getEnvInt("FILTER_MAX_PRICE_CENTS", 32000000),

		RequestTimeoutSec: getEnvInt("REQUEST_TIMEOUT_SEC", 15),
		RateLimitMs:       getEnvInt("RATE_LIMIT_MS", 1000),
		MaxRetries:        getEnvInt("MAX_RETRIES", 3),
		MaxPages:          getEnvInt("MAX_PAGES", 100),
		MaxScrollRounds:   getEnvInt("MAX_SCROLL_ROUNDS", 30),

		CSVOutputPath: getEnv("CSV_OUTPUT_PATH", "./data/all_properties.csv"),
		ChromeBin:     getEnv("CHROME_BIN", ""),
		Debug:         getEnvBool("DEBUG", false),

		PostgresEnabled:  getEnvBool("POSTGRES_ENABLED", true),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "scraper"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "scraper123"),
		PostgresDB:       getEnv("POSTGRES_DB", "imoveis_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

// SearchFilters assembles the browser engine's filter mapping from the
// configured options. Zero values are left out of the query string.
func (c *Config) SearchFilters() map[string]any {
	filters := make(map[string]any)
	if len(c.FilterTypes) > 0 {
		filters["tipos"] = c.FilterTypes
	}
	if c.MinPriceCents > 0 {
		filters["precoMinimo"] = c.MinPriceCents
	}
	if c.MaxPriceCents > 0 {
		filters["precoMaximo"] = c.MaxPriceCents
	}
	return filters
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}

func getEnvList(key, fallback string) []string {
	raw := getEnv(key, fallback)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
