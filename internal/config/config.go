// Package config loads the defaults the CLI supplies to the orchestrator:
// region, rule group naming and ingress, sentinels and wait timeouts.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRegion               = "us-east-1"
	DefaultInstanceType         = "t2.micro"
	DefaultRuleGroupName        = "SSHAccess"
	DefaultRuleGroupDescription = "Allow SSH access to EC2 instances"
	DefaultUntaggedName         = "N/A"
	DefaultOutputFormat         = "table"
	DefaultLogLevel             = "info"
	DefaultWaitTimeout          = 10 * time.Minute
)

// Ingress is the single inbound rule authorized on a newly created rule group.
type Ingress struct {
	Protocol string `yaml:"protocol"`
	Port     int32  `yaml:"port"`
	CIDR     string `yaml:"cidr"`
}

// Config holds the tool's defaults. Every field can be set from a YAML file.
type Config struct {
	Region               string        `yaml:"region"`
	InstanceType         string        `yaml:"instance_type"`
	RuleGroupName        string        `yaml:"security_group_name"`
	RuleGroupDescription string        `yaml:"security_group_description"`
	Ingress              Ingress       `yaml:"ingress"`
	UntaggedName         string        `yaml:"untagged_name"`
	WaitTimeout          time.Duration `yaml:"wait_timeout"`
	OutputFormat         string        `yaml:"output"`
	LogLevel             string        `yaml:"log_level"`
	RollbackOnFailure    bool          `yaml:"rollback_on_failure"`
	ConcurrencyLimit     int           `yaml:"concurrency"`

	// ConformanceAttributes limits the post-launch check to these attributes.
	// Empty means every comparable attribute is checked.
	ConformanceAttributes []string `yaml:"conformance_attributes"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadFile reads and parses the configuration from a YAML file.
// An empty path yields the defaults.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML data, fills in defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.InstanceType == "" {
		c.InstanceType = DefaultInstanceType
	}
	if c.RuleGroupName == "" {
		c.RuleGroupName = DefaultRuleGroupName
	}
	if c.RuleGroupDescription == "" {
		c.RuleGroupDescription = DefaultRuleGroupDescription
	}
	if c.Ingress.Protocol == "" {
		c.Ingress.Protocol = "tcp"
	}
	if c.Ingress.Port == 0 {
		c.Ingress.Port = 22
	}
	if c.Ingress.CIDR == "" {
		c.Ingress.CIDR = "0.0.0.0/0"
	}
	if c.UntaggedName == "" {
		c.UntaggedName = DefaultUntaggedName
	}
	if c.WaitTimeout == 0 {
		c.WaitTimeout = DefaultWaitTimeout
	}
	if c.OutputFormat == "" {
		c.OutputFormat = DefaultOutputFormat
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate checks the configuration for values the tool cannot work with.
func (c *Config) Validate() error {
	var errs []error

	if c.Ingress.Port < 0 || c.Ingress.Port > 65535 {
		errs = append(errs, fmt.Errorf("ingress port %d out of range", c.Ingress.Port))
	}
	if _, _, err := net.ParseCIDR(c.Ingress.CIDR); err != nil {
		errs = append(errs, fmt.Errorf("ingress cidr %q is invalid: %w", c.Ingress.CIDR, err))
	}
	switch strings.ToLower(c.Ingress.Protocol) {
	case "tcp", "udp", "icmp", "-1":
	default:
		errs = append(errs, fmt.Errorf("ingress protocol %q is not supported", c.Ingress.Protocol))
	}
	if c.WaitTimeout < 0 {
		errs = append(errs, fmt.Errorf("wait timeout must be positive, got %s", c.WaitTimeout))
	}
	if c.ConcurrencyLimit < 0 {
		errs = append(errs, fmt.Errorf("concurrency must not be negative, got %d", c.ConcurrencyLimit))
	}
	for _, attr := range c.ConformanceAttributes {
		if strings.TrimSpace(attr) == "" {
			errs = append(errs, errors.New("conformance attributes must not contain empty names"))
			break
		}
	}
	switch strings.ToLower(c.OutputFormat) {
	case "table", "json":
	default:
		errs = append(errs, fmt.Errorf("output format %q is not supported (table, json)", c.OutputFormat))
	}

	return errors.Join(errs...)
}
