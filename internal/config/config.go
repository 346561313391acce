package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host            string
	Port            string
	ShutdownTimeout time.Duration
	StaticDir       string
	CORSOrigins     []string
}

type Ollama struct {
	URL       string
	Model     string
	HostDir   string
	ModelsDir string
}

type TTS struct {
	URL   string
	Model string
}

type STT struct {
	URL string
}

// Redis is optional. An empty Host turns the model catalog cache off.
type Redis struct {
	Host       string
	Port       string
	Password   string
	CatalogTTL time.Duration
}

func (r Redis) Enabled() bool {
	return r.Host != ""
}

type Room struct {
	CodeAttempts int
}

type Log struct {
	Level string
}

type Config struct {
	HTTP   HTTPServer
	Ollama Ollama
	TTS    TTS
	STT    STT
	Redis  Redis
	Room   Room
	Log    Log
}

const (
	logtag   = "[config]"
	redacted = "******"
)

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	if c.Redis.Password != "" {
		c.Redis.Password = redacted
	}
	return c
}

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := FromEnv()

	log.Printf("%s backend config : %+v\n", logtag, cfg.Redacted())
	return cfg
}

// FromEnv builds the config from the current environment only.
func FromEnv() *Config {
	return &Config{
		HTTP:   *newHTTP(),
		Ollama: *newOllama(),
		TTS:    *newTTS(),
		STT:    *newSTT(),
		Redis:  *newRedis(),
		Room:   *newRoom(),
		Log:    *newLog(),
	}
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port:            getenv("HTTP_PORT", "8000"),
		Host:            getenv("HTTP_HOST", "0.0.0.0"),
		ShutdownTimeout: getenvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		StaticDir:       getenv("STATIC_DIR", "/app/static"),
		CORSOrigins:     splitList(getenv("CORS_ORIGINS", "*")),
	}
}

func newOllama() *Ollama {
	return &Ollama{
		URL:       getenv("OLLAMA_URL", "http://host.docker.internal:11434"),
		Model:     getenv("OLLAMA_MODEL", "dolphin-mistral"),
		HostDir:   getenv("HOST_MODELS_PATH", `F:\TITAN_MODELS`),
		ModelsDir: getenv("MODELS_PATH", "/models"),
	}
}

func newTTS() *TTS {
	return &TTS{
		URL:   getenv("TTS_URL", "http://host.docker.internal:8880/v1"),
		Model: getenv("TTS_MODEL", "tts-1"),
	}
}

func newSTT() *STT {
	return &STT{
		URL: getenv("STT_URL", "http://host.docker.internal:8090"),
	}
}

func newRedis() *Redis {
	return &Redis{
		Host:       getenv("REDIS_HOST", ""),
		Port:       getenv("REDIS_PORT", "6379"),
		Password:   getenvSecret("REDIS_PASSWORD"),
		CatalogTTL: getenvDuration("CATALOG_TTL", 30*time.Second),
	}
}

func newRoom() *Room {
	return &Room{
		CodeAttempts: getenvInt("ROOM_CODE_ATTEMPTS", 1024),
	}
}

func newLog() *Log {
	return &Log{
		Level: getenv("LOG_LEVEL", "info"),
	}
}

func getenvSecret(key string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined\n", logtag, key)
		return ""
	}
	fmt.Printf("%s %s = %s\n", logtag, key, redacted)
	return val
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getenvInt(key string, defaultValue int) int {
	raw := getenv(key, strconv.Itoa(defaultValue))
	val, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("%s invalid int value for %s: %s, using default: %d", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return val
}

func getenvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getenv(key, defaultValue.String())
	val, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("%s invalid duration value for %s: %s, using default: %s", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return val
}

func splitList(raw string) []string {
	items := make([]string, 0)
	for _, s := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
