package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/liamg/netmap/scan"
	"gopkg.in/yaml.v3"
)

const envPrefix = "NETMAP_"

// Config is the file/environment form of the scanner settings. Flags given
// on the command line are applied on top of it.
type Config struct {
	Timeout          time.Duration `yaml:"timeout"`
	PortTimeout      time.Duration `yaml:"port_timeout"`
	Protocol         string        `yaml:"protocol"`
	MaxConnections   int           `yaml:"max_connections"`
	SweepConnections int           `yaml:"sweep_connections"`
	ControlPort      int           `yaml:"control_port"`
}

func Default() Config {
	return Config{
		Timeout:          scan.DefaultTimeout,
		PortTimeout:      scan.DefaultPortTimeout,
		Protocol:         scan.DefaultProtocol,
		MaxConnections:   scan.DefaultMaxConnections,
		SweepConnections: scan.DefaultSweepParallel,
		ControlPort:      scan.DefaultControlPort,
	}
}

// Load starts from the defaults, then applies the YAML file at path (if any),
// then variables from envFile (if it exists) and the process environment.
func Load(path string, envFile string) (Config, error) {

	c := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return c, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	if err := c.applyEnv(); err != nil {
		return c, err
	}

	return c, nil
}

func (c *Config) applyEnv() error {

	durations := map[string]*time.Duration{
		"TIMEOUT":      &c.Timeout,
		"PORT_TIMEOUT": &c.PortTimeout,
	}
	for key, target := range durations {
		if value, ok := os.LookupEnv(envPrefix + key); ok {
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("invalid %s%s: %w", envPrefix, key, err)
			}
			*target = d
		}
	}

	ints := map[string]*int{
		"MAX_CONNECTIONS":   &c.MaxConnections,
		"SWEEP_CONNECTIONS": &c.SweepConnections,
		"CONTROL_PORT":      &c.ControlPort,
	}
	for key, target := range ints {
		if value, ok := os.LookupEnv(envPrefix + key); ok {
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid %s%s: %w", envPrefix, key, err)
			}
			*target = n
		}
	}

	if value, ok := os.LookupEnv(envPrefix + "PROTOCOL"); ok {
		c.Protocol = value
	}

	return nil
}

func (c Config) ScanConfig() scan.Config {
	return scan.Config{
		Timeout:     c.Timeout,
		PortTimeout: c.PortTimeout,
		Protocol:    c.Protocol,
	}
}
