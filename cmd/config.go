package main

import (
	"errors"
	"fmt"
	"math"
	"net/netip"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	defaultListenAddr             = "127.0.0.1:3400"
	defaultDeadlineSeconds uint64 = 15
	defaultLogLevel               = "info"

	maxDeadlineSeconds = uint64(math.MaxInt64 / int64(time.Second))
)

type MyHeartbeatConfig struct {
	ListenAddr      string
	GRPCListenAddr  string
	Token           string
	DefaultDeadline time.Duration
	LogLevel        string
	// ConfigPath is the YAML file the config was read from, empty when none.
	ConfigPath string
	// TokenFromFile is true when Token came from ConfigPath and may be reloaded from it.
	TokenFromFile bool
}

// fileConfig mirrors the YAML config file. Absent keys stay nil.
type fileConfig struct {
	ListenAddr             *string `yaml:"listen_addr"`
	GRPCListenAddr         *string `yaml:"grpc_listen_addr"`
	Token                  *string `yaml:"token"`
	DefaultDeadlineSeconds *uint64 `yaml:"default_deadline_seconds"`
	LogLevel               *string `yaml:"log_level"`
}

// LoadConfig loads configuration from command line args, environment variables and
// an optional YAML file. A flag wins over an environment variable, which wins over
// the file. The write token is required.
func LoadConfig(args []string) (*MyHeartbeatConfig, error) {
	flags := pflag.NewFlagSet("myheartbeat", pflag.ContinueOnError)
	listenAddr := flags.StringP("listen-addr", "l", defaultListenAddr, "The address to listen on")
	token := flags.StringP("token", "t", "", "The token to use for write operations")
	grpcListenAddr := flags.String("grpc-listen-addr", "", "The address to serve gRPC health checks on, disabled when empty")
	deadlineSeconds := flags.Uint64("default-deadline-seconds", defaultDeadlineSeconds, "Deadline applied to announcements without deadline_seconds")
	logLevel := flags.String("log-level", defaultLogLevel, "Log level: debug, info, warn or error")
	configPath := flags.StringP("config", "c", "", "Path to a YAML config file")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	cfg := &MyHeartbeatConfig{
		ListenAddr:      defaultListenAddr,
		DefaultDeadline: time.Duration(defaultDeadlineSeconds) * time.Second,
		LogLevel:        defaultLogLevel,
	}

	cfg.ConfigPath = os.Getenv("CONFIG_PATH")
	if flags.Changed("config") {
		cfg.ConfigPath = *configPath
	}
	if cfg.ConfigPath != "" {
		file, err := readConfigFile(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		if err := cfg.applyFile(file); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if flags.Changed("listen-addr") {
		cfg.ListenAddr = *listenAddr
	}
	if flags.Changed("token") {
		cfg.Token = *token
		cfg.TokenFromFile = false
	}
	if flags.Changed("grpc-listen-addr") {
		cfg.GRPCListenAddr = *grpcListenAddr
	}
	if flags.Changed("default-deadline-seconds") {
		if err := cfg.setDefaultDeadline(*deadlineSeconds); err != nil {
			return nil, fmt.Errorf("invalid --default-deadline-seconds: %w", err)
		}
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = *logLevel
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readConfigFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &file, nil
}

// loadFileToken reads the write token from the YAML config file at path.
func loadFileToken(path string) (string, error) {
	file, err := readConfigFile(path)
	if err != nil {
		return "", err
	}
	if file.Token == nil || *file.Token == "" {
		return "", fmt.Errorf("token is required in %s", path)
	}
	return *file.Token, nil
}

func (c *MyHeartbeatConfig) applyFile(file *fileConfig) error {
	if file.ListenAddr != nil {
		c.ListenAddr = *file.ListenAddr
	}
	if file.GRPCListenAddr != nil {
		c.GRPCListenAddr = *file.GRPCListenAddr
	}
	if file.Token != nil {
		c.Token = *file.Token
		c.TokenFromFile = true
	}
	if file.DefaultDeadlineSeconds != nil {
		if err := c.setDefaultDeadline(*file.DefaultDeadlineSeconds); err != nil {
			return fmt.Errorf("invalid default_deadline_seconds: %w", err)
		}
	}
	if file.LogLevel != nil {
		c.LogLevel = *file.LogLevel
	}
	return nil
}

func (c *MyHeartbeatConfig) applyEnv() error {
	if v, ok := os.LookupEnv("LISTEN_ADDR"); ok {
		c.ListenAddr = v
	}
	if v, ok := os.LookupEnv("GRPC_LISTEN_ADDR"); ok {
		c.GRPCListenAddr = v
	}
	if v, ok := os.LookupEnv("TOKEN"); ok {
		c.Token = v
		c.TokenFromFile = false
	}
	if v, ok := os.LookupEnv("DEFAULT_DEADLINE_SECONDS"); ok {
		seconds, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid DEFAULT_DEADLINE_SECONDS: %w", err)
		}
		if err := c.setDefaultDeadline(seconds); err != nil {
			return fmt.Errorf("invalid DEFAULT_DEADLINE_SECONDS: %w", err)
		}
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	return nil
}

func (c *MyHeartbeatConfig) setDefaultDeadline(seconds uint64) error {
	if seconds == 0 {
		return errors.New("must be positive")
	}
	if seconds > maxDeadlineSeconds {
		return fmt.Errorf("must not exceed %d", maxDeadlineSeconds)
	}
	c.DefaultDeadline = time.Duration(seconds) * time.Second
	return nil
}

func (c *MyHeartbeatConfig) validate() error {
	if c.Token == "" {
		return errors.New("token is required (--token, TOKEN or token in the config file)")
	}
	if _, err := netip.ParseAddrPort(c.ListenAddr); err != nil {
		return fmt.Errorf("invalid listen address %q: %w", c.ListenAddr, err)
	}
	if c.GRPCListenAddr != "" {
		if _, err := netip.ParseAddrPort(c.GRPCListenAddr); err != nil {
			return fmt.Errorf("invalid gRPC listen address %q: %w", c.GRPCListenAddr, err)
		}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}
