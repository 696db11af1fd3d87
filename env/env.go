package env

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	serverError "github.com/supakorn-kn/go-dashboard/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultServerPort    = 8080
	defaultMongoDBHost   = "localhost"
	defaultMongoDBPort   = 27017
	defaultMongoDBName   = "go-dashboard"
	defaultRemoteTimeout = 30 * time.Second
	defaultPageSize      = 10
	defaultSessionTTL    = 24 * time.Hour

	MongoSessionStore  = "mongodb"
	MemorySessionStore = "memory"
)

type Env struct {
	Server  ServerConfig  `yaml:"server"`
	MongoDB MongoDBConfig `yaml:"mongodb"`
	Remote  RemoteConfig  `yaml:"remote"`
	Session SessionConfig `yaml:"session"`
	Log     LogConfig     `yaml:"log"`

	PageSize int `yaml:"page_size"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type MongoDBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DB       string `yaml:"db"`
}

// URI builds the connection string, adding credentials only when a user is set.
func (c MongoDBConfig) URI() string {

	if c.User == "" {
		return fmt.Sprintf("mongodb://%s:%d", c.Host, c.Port)
	}

	return fmt.Sprintf("mongodb://%s:%s@%s:%d", c.User, c.Password, c.Host, c.Port)
}

type RemoteConfig struct {
	BaseURL string        `yaml:"base_url"`
	Token   string        `yaml:"token"`
	Timeout time.Duration `yaml:"timeout"`
}

type SessionConfig struct {
	Store string        `yaml:"store"`
	TTL   time.Duration `yaml:"ttl"`
}

type LogConfig struct {
	Format string `yaml:"format"`
	Level  string `yaml:"level"`
}

// LookupFunc matches os.LookupEnv so tests can inject variables.
type LookupFunc func(key string) (string, bool)

var env *Env

// GetEnv loads the config once from DASHBOARD_CONFIG and the process environment.
func GetEnv() (*Env, error) {

	if env == nil {

		loaded, err := Load(os.LookupEnv)
		if err != nil {
			return nil, err
		}

		env = loaded
	}

	return env, nil
}

// Load builds an Env from defaults, then the YAML file named by
// DASHBOARD_CONFIG, then individual environment variables.
func Load(lookup LookupFunc) (*Env, error) {

	loaded := Default()

	if path, ok := lookup("DASHBOARD_CONFIG"); ok && path != "" {

		b, err := os.ReadFile(path)
		if err != nil {
			return nil, serverError.InvalidConfigError.New("DASHBOARD_CONFIG", err)
		}

		if err := yaml.Unmarshal(b, &loaded); err != nil {
			return nil, serverError.InvalidConfigError.New(path, err)
		}
	}

	if err := applyOverrides(&loaded, lookup); err != nil {
		return nil, err
	}

	if err := loaded.Validate(); err != nil {
		return nil, err
	}

	return &loaded, nil
}

func Default() Env {

	return Env{
		Server: ServerConfig{
			Port: defaultServerPort,
		},
		MongoDB: MongoDBConfig{
			Host: defaultMongoDBHost,
			Port: defaultMongoDBPort,
			DB:   defaultMongoDBName,
		},
		Remote: RemoteConfig{
			Timeout: defaultRemoteTimeout,
		},
		Session: SessionConfig{
			Store: MongoSessionStore,
			TTL:   defaultSessionTTL,
		},
		Log: LogConfig{
			Format: "text",
			Level:  "info",
		},
		PageSize: defaultPageSize,
	}
}

func (e Env) Validate() error {

	if e.Remote.BaseURL == "" {
		return serverError.InvalidConfigError.New("REMOTE_BASE_URL", "must not be empty")
	}

	if e.PageSize < 1 {
		return serverError.PageSizeInvalidError.New()
	}

	if e.Session.Store != MongoSessionStore && e.Session.Store != MemorySessionStore {
		return serverError.InvalidConfigError.New("SESSION_STORE", fmt.Sprintf("%q is neither mongodb nor memory", e.Session.Store))
	}

	return nil
}

func applyOverrides(e *Env, lookup LookupFunc) error {

	stringVars := map[string]*string{
		"MONGODB_HOST":     &e.MongoDB.Host,
		"MONGODB_USER":     &e.MongoDB.User,
		"MONGODB_PASSWORD": &e.MongoDB.Password,
		"MONGODB_NAME":     &e.MongoDB.DB,
		"REMOTE_BASE_URL":  &e.Remote.BaseURL,
		"REMOTE_TOKEN":     &e.Remote.Token,
		"SESSION_STORE":    &e.Session.Store,
		"LOG_FORMAT":       &e.Log.Format,
		"LOG_LEVEL":        &e.Log.Level,
	}

	for key, target := range stringVars {
		if value, ok := lookup(key); ok && value != "" {
			*target = strings.TrimSpace(value)
		}
	}

	intVars := map[string]*int{
		"SERVER_PORT":  &e.Server.Port,
		"MONGODB_PORT": &e.MongoDB.Port,
		"PAGE_SIZE":    &e.PageSize,
	}

	for key, target := range intVars {

		value, ok := lookup(key)
		if !ok || value == "" {
			continue
		}

		parsed, err := strconv.Atoi(value)
		if err != nil {
			return serverError.InvalidConfigError.New(key, err)
		}

		*target = parsed
	}

	durationVars := map[string]*time.Duration{
		"REMOTE_TIMEOUT": &e.Remote.Timeout,
		"SESSION_TTL":    &e.Session.TTL,
	}

	for key, target := range durationVars {

		value, ok := lookup(key)
		if !ok || value == "" {
			continue
		}

		parsed, err := time.ParseDuration(value)
		if err != nil {
			return serverError.InvalidConfigError.New(key, err)
		}

		*target = parsed
	}

	return nil
}
