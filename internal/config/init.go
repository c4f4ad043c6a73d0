package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	AppPort       int           `envconfig:"app_port" default:"8080"`
	Env           string        `envconfig:"app_env" default:"dev"`
	DBDriver      string        `envconfig:"db_driver" default:"mysql"`
	DBDSN         string        `envconfig:"db_dsn"`
	RedisAddr     string        `envconfig:"redis_addr"`
	RedisPassword string        `envconfig:"redis_password"`
	RedisDB       int           `envconfig:"redis_db" default:"0"`
	JWTSecret     string        `envconfig:"jwt_secret"`
	AmountPosts   int           `envconfig:"amount_posts" default:"10"`
	IndexCacheTTL time.Duration `envconfig:"index_cache_ttl" default:"20s"`
	SeedGroups    []string      `envconfig:"seed_groups"`
}

// Load reads .env (when present) and the process environment. Variables may be
// prefixed with BLOGFEED_ or given bare.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	c := &Config{}
	if err := envconfig.Process("blogfeed", c); err != nil {
		return nil, errors.Wrap(err, "process env")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	var problems []string
	if c.DBDSN == "" {
		problems = append(problems, "DB_DSN is not set")
	}
	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET is not set")
	}
	if c.AmountPosts < 1 {
		problems = append(problems, fmt.Sprintf("AMOUNT_POSTS must be >= 1, got %d", c.AmountPosts))
	}
	if c.IndexCacheTTL <= 0 {
		problems = append(problems, "INDEX_CACHE_TTL must be positive")
	}
	switch c.DBDriver {
	case "mysql", "postgres":
	default:
		problems = append(problems, fmt.Sprintf("unsupported DB_DRIVER %q", c.DBDriver))
	}
	if len(problems) > 0 {
		return errors.New("invalid config: " + strings.Join(problems, "; "))
	}
	return nil
}

// GroupSeed is one "slug:Title" entry of SEED_GROUPS.
type GroupSeed struct {
	Slug  string
	Title string
}

func (c *Config) GroupSeeds() []GroupSeed {
	seeds := make([]GroupSeed, 0, len(c.SeedGroups))
	for _, raw := range c.SeedGroups {
		slug, title, found := strings.Cut(strings.TrimSpace(raw), ":")
		slug = strings.TrimSpace(slug)
		if slug == "" {
			continue
		}
		if !found || strings.TrimSpace(title) == "" {
			title = slug
		}
		seeds = append(seeds, GroupSeed{Slug: slug, Title: strings.TrimSpace(title)})
	}
	return seeds
}
