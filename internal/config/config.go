package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-trophy/internal/entity"
	"github.com/rocketscienceinc/tictactoe-trophy/internal/service"
)

const (
	RedisStorage  = "redis"
	SQLiteStorage = "sqlite"
	MemoryStorage = "memory"
)

type Config struct {
	LogLevel          string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort        string        `yaml:"socket-port" env:"SOCKET_PORT" env-default:"7000"`
	Storage           string        `yaml:"storage" env:"STORAGE" env-default:"redis"`
	Redis             Redis         `yaml:"redis"`
	SQLiteStoragePath string        `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"./storage/scores.db"`
	LeaderboardSize   int           `yaml:"leaderboard-size" env:"LEADERBOARD_SIZE" env-default:"10"`
	ScoreTimeout      time.Duration `yaml:"score-timeout" env:"SCORE_TIMEOUT" env-default:"2s"`
	SessionTTL        time.Duration `yaml:"session-ttl" env:"SESSION_TTL" env-default:"24h"`
	Bot               Bot           `yaml:"bot"`
	Rewards           Rewards       `yaml:"rewards"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Bot struct {
	EasyPolicy   string        `yaml:"easy-policy" env:"BOT_EASY_POLICY" env-default:"random"`
	HardPlyLimit int           `yaml:"hard-ply-limit" env:"BOT_HARD_PLY_LIMIT" env-default:"3"`
	MoveDelay    time.Duration `yaml:"move-delay" env:"BOT_MOVE_DELAY" env-default:"300ms"`
}

// Rewards - trophies granted for beating the computer on each difficulty.
type Rewards struct {
	Easy       int `yaml:"easy" env:"REWARD_EASY" env-default:"1"`
	Hard       int `yaml:"hard" env:"REWARD_HARD" env-default:"5"`
	Impossible int `yaml:"impossible" env:"REWARD_IMPOSSIBLE" env-default:"1000"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) validate() error {
	switch that.Storage {
	case RedisStorage, SQLiteStorage, MemoryStorage:
	default:
		return fmt.Errorf("unknown storage %q", that.Storage)
	}

	if that.LeaderboardSize <= 0 {
		return fmt.Errorf("leaderboard-size must be positive, got %d", that.LeaderboardSize)
	}

	if that.Bot.HardPlyLimit <= 0 {
		return fmt.Errorf("bot.hard-ply-limit must be positive, got %d", that.Bot.HardPlyLimit)
	}

	rewards := map[string]int{
		"rewards.easy":       that.Rewards.Easy,
		"rewards.hard":       that.Rewards.Hard,
		"rewards.impossible": that.Rewards.Impossible,
	}
	for key, value := range rewards {
		if value < 0 {
			return fmt.Errorf("%s must not be negative, got %d", key, value)
		}
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Bot) BotConfig() service.BotConfig {
	return service.BotConfig{
		EasyPolicy:   that.EasyPolicy,
		HardPlyLimit: that.HardPlyLimit,
	}
}

func (that *Rewards) Table() service.RewardTable {
	return service.RewardTable{
		entity.EasyDifficulty:       that.Easy,
		entity.HardDifficulty:       that.Hard,
		entity.ImpossibleDifficulty: that.Impossible,
	}
}
