package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
	} `yaml:"server"`

	Workers struct {
		PoolSize  int           `yaml:"pool_size" default:"8"`
		QueueSize int           `yaml:"queue_size" default:"256"`
		RateLimit int           `yaml:"rate_limit" default:"60"` // searches per minute per user
		Timeout   time.Duration `yaml:"timeout" default:"30s"`
	} `yaml:"workers"`

	// Matcher carries the single reconciled scoring-weight table. The weights
	// for the four sub-scores must sum to at most 100 before clamping.
	Matcher struct {
		TitleWeight          int     `yaml:"title_weight" default:"30"`
		KeywordWeight        int     `yaml:"keyword_weight" default:"25"`
		RequirementsWeight   int     `yaml:"requirements_weight" default:"20"`
		FilterBonusWeight    int     `yaml:"filter_bonus_weight" default:"25"`
		NoRequirementsCredit int     `yaml:"no_requirements_credit" default:"12"`
		ScoreFloor           int     `yaml:"score_floor" default:"0"`
		MinScore             int     `yaml:"min_score" default:"50"`
		MinResultCount       int     `yaml:"min_result_count" default:"30"`
		RelaxedShare         float64 `yaml:"relaxed_share" default:"0.30"`
		TopKeywords          int     `yaml:"top_keywords" default:"15"`
		DefaultPageSize      int     `yaml:"default_page_size" default:"10"`
	} `yaml:"matcher"`

	Redis struct {
		URL       string        `yaml:"url" default:"redis://localhost:6379"`
		Password  string        `yaml:"password"`
		DB        int           `yaml:"db" default:"0"`
		Timeout   time.Duration `yaml:"timeout" default:"5s"`
		ResultTTL time.Duration `yaml:"result_ttl" default:"24h"`
		ResumeTTL time.Duration `yaml:"resume_ttl" default:"720h"`
	} `yaml:"redis"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`
		Output string `yaml:"output" default:"stdout"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	// Expand ${VAR} syntax
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1] // Remove ${ and }
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match // Return original if env var not found
	})

	// Expand $VAR syntax (but avoid replacing ${VAR} that was already processed)
	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:] // Remove $
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.Workers.PoolSize = 8
	config.Workers.QueueSize = 256
	config.Workers.RateLimit = 60
	config.Workers.Timeout = 30 * time.Second

	config.Matcher.TitleWeight = 30
	config.Matcher.KeywordWeight = 25
	config.Matcher.RequirementsWeight = 20
	config.Matcher.FilterBonusWeight = 25
	config.Matcher.NoRequirementsCredit = 12
	config.Matcher.ScoreFloor = 0
	config.Matcher.MinScore = 50
	config.Matcher.MinResultCount = 30
	config.Matcher.RelaxedShare = 0.30
	config.Matcher.TopKeywords = 15
	config.Matcher.DefaultPageSize = 10

	config.Redis.URL = "redis://localhost:6379"
	config.Redis.DB = 0
	config.Redis.Timeout = 5 * time.Second
	config.Redis.ResultTTL = 24 * time.Hour
	config.Redis.ResumeTTL = 30 * 24 * time.Hour

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.Output = "stdout"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			// Expand environment variables in the YAML content
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}

	if poolSize := os.Getenv("WORKER_POOL_SIZE"); poolSize != "" {
		if size, err := strconv.Atoi(poolSize); err == nil {
			c.Workers.PoolSize = size
		}
	}

	if rateLimit := os.Getenv("WORKER_RATE_LIMIT"); rateLimit != "" {
		if limit, err := strconv.Atoi(rateLimit); err == nil {
			c.Workers.RateLimit = limit
		}
	}

	if minScore := os.Getenv("MATCHER_MIN_SCORE"); minScore != "" {
		if score, err := strconv.Atoi(minScore); err == nil {
			c.Matcher.MinScore = score
		}
	}

	if minResults := os.Getenv("MATCHER_MIN_RESULT_COUNT"); minResults != "" {
		if count, err := strconv.Atoi(minResults); err == nil {
			c.Matcher.MinResultCount = count
		}
	}

	if scoreFloor := os.Getenv("MATCHER_SCORE_FLOOR"); scoreFloor != "" {
		if floor, err := strconv.Atoi(scoreFloor); err == nil {
			c.Matcher.ScoreFloor = floor
		}
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.URL = redisURL
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Redis.Password = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Redis.DB = db
		}
	}

	if redisTimeout := os.Getenv("REDIS_TIMEOUT"); redisTimeout != "" {
		if timeout, err := time.ParseDuration(redisTimeout); err == nil {
			c.Redis.Timeout = timeout
		}
	}

	if resultTTL := os.Getenv("REDIS_RESULT_TTL"); resultTTL != "" {
		if ttl, err := time.ParseDuration(resultTTL); err == nil {
			c.Redis.ResultTTL = ttl
		}
	}

	if resumeTTL := os.Getenv("REDIS_RESUME_TTL"); resumeTTL != "" {
		if ttl, err := time.ParseDuration(resumeTTL); err == nil {
			c.Redis.ResumeTTL = ttl
		}
	}
}
