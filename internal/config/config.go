package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel          string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis             Redis         `yaml:"redis"`
	SQLiteStoragePath string        `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"./jeopardy.db"`
	JWTSecretKey      string        `yaml:"jwt-secret-key" env:"JWT_SECRET_KEY" env-required:"true"`
	JWTTTL            time.Duration `yaml:"jwt-ttl" env:"JWT_TTL" env-default:"168h"`
	Generator         Generator     `yaml:"generator"`
	Game              Game          `yaml:"game"`
}

type Redis struct {
	Host       string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port       string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password   string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB         int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"REDIS_SESSION_TTL" env-default:"24h"`
}

type Generator struct {
	APIKey      string        `yaml:"api-key" env:"GEMINI_API_KEY" env-required:"true"`
	Model       string        `yaml:"model" env:"GEMINI_MODEL" env-default:"gemini-1.5-flash"`
	Temperature float32       `yaml:"temperature" env:"GEMINI_TEMPERATURE" env-default:"0.7"`
	Timeout     time.Duration `yaml:"timeout" env:"GEMINI_TIMEOUT" env-default:"60s"`
}

type Game struct {
	CorrectDismiss   time.Duration `yaml:"correct-dismiss" env:"GAME_CORRECT_DISMISS" env-default:"2s"`
	IncorrectDismiss time.Duration `yaml:"incorrect-dismiss" env:"GAME_INCORRECT_DISMISS" env-default:"3s"`
	SkipDismiss      time.Duration `yaml:"skip-dismiss" env:"GAME_SKIP_DISMISS" env-default:"2s"`
}

// MustLoad - load all configurations in config.yml file, overridden by the environment.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
