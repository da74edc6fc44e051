package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration to support YAML unmarshalling from strings like "5s".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}

	d.Duration = parsed

	return nil
}

// Config is the top-level application configuration.
// Target counts and -dry-run come from flags, not config.
type Config struct {
	AWS      AWSConfig      `yaml:"aws"`
	Fleet    FleetConfig    `yaml:"fleet"`
	Instance InstanceConfig `yaml:"instance"`
	Waiter   WaiterConfig   `yaml:"waiter"`
}

// AWSConfig selects the account and region the fleet lives in.
// Empty values fall back to the SDK's default credential and region chain.
type AWSConfig struct {
	Region  string `yaml:"region"`
	Profile string `yaml:"profile"`
}

// FleetConfig describes how workers are named and tagged.
type FleetConfig struct {
	NameTagKey   string            `yaml:"name_tag_key"`
	NamePrefix   string            `yaml:"name_prefix"`
	Separator    string            `yaml:"separator"`
	RoleTagKey   string            `yaml:"role_tag_key"`
	RoleTagValue string            `yaml:"role_tag_value"`
	ExtraTags    map[string]string `yaml:"extra_tags"`
}

// InstanceConfig is the launch shape of a new worker. It is passed to the provider as is.
type InstanceConfig struct {
	ImageID          string         `yaml:"image_id"`
	InstanceType     string         `yaml:"instance_type"`
	SubnetID         string         `yaml:"subnet_id"`
	PlacementGroupID string         `yaml:"placement_group_id"`
	SecurityGroupIDs []string       `yaml:"security_group_ids"`
	Metadata         MetadataConfig `yaml:"metadata"`
}

// MetadataConfig holds instance metadata service options.
type MetadataConfig struct {
	HTTPEndpoint            string `yaml:"http_endpoint"`
	HTTPTokens              string `yaml:"http_tokens"`
	HTTPPutResponseHopLimit int32  `yaml:"http_put_response_hop_limit"`
}

// WaiterConfig bounds the convergence waits.
type WaiterConfig struct {
	RunningTimeout    Duration `yaml:"running_timeout"`
	TerminatedTimeout Duration `yaml:"terminated_timeout"`
	MinDelay          Duration `yaml:"min_delay"`
	MaxDelay          Duration `yaml:"max_delay"`
}

// Default returns the configuration used for fields missing from the file.
func Default() Config {
	return Config{
		Fleet: FleetConfig{
			NameTagKey:   "Name",
			NamePrefix:   "Worker",
			Separator:    "-",
			RoleTagKey:   "ClusterNodeType",
			RoleTagValue: "Worker",
		},
		Instance: InstanceConfig{
			ImageID:      "ami-09efc42336106d2f2",
			InstanceType: "c5.4xlarge",
			Metadata: MetadataConfig{
				HTTPEndpoint:            "enabled",
				HTTPTokens:              "required",
				HTTPPutResponseHopLimit: 2,
			},
		},
		Waiter: WaiterConfig{
			RunningTimeout:    Duration{10 * time.Minute},
			TerminatedTimeout: Duration{10 * time.Minute},
			MinDelay:          Duration{15 * time.Second},
			MaxDelay:          Duration{2 * time.Minute},
		},
	}
}

// Load reads and parses the YAML config file at the given path on top of Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	cfg := Default()
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the config can drive the fleet.
func (c *Config) Validate() error {
	var errs []error

	if c.Fleet.NameTagKey == "" {
		errs = append(errs, errors.New("fleet.name_tag_key must not be empty"))
	}
	if c.Fleet.NamePrefix == "" {
		errs = append(errs, errors.New("fleet.name_prefix must not be empty"))
	}
	if c.Fleet.Separator == "" {
		errs = append(errs, errors.New("fleet.separator must not be empty"))
	}
	if c.Instance.ImageID == "" {
		errs = append(errs, errors.New("instance.image_id must not be empty"))
	}
	if c.Instance.InstanceType == "" {
		errs = append(errs, errors.New("instance.instance_type must not be empty"))
	}
	if c.Waiter.RunningTimeout.Duration <= 0 || c.Waiter.TerminatedTimeout.Duration <= 0 {
		errs = append(errs, errors.New("waiter timeouts must be positive"))
	}
	if c.Waiter.MinDelay.Duration <= 0 || c.Waiter.MaxDelay.Duration < c.Waiter.MinDelay.Duration {
		errs = append(errs, errors.New("waiter delays must satisfy 0 < min_delay <= max_delay"))
	}

	return errors.Join(errs...)
}
