package config

import (
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/mutker/pemon/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultInterval = 3
	DefaultLogLevel = "warning"

	configName = "pemon"
	configType = "toml"
	envPrefix  = "PEMON"
	envConfig  = "PEMON_CONFIG"
)

type Config struct {
	Interval int           `mapstructure:"interval"`
	LogLevel string        `mapstructure:"log_level"`
	Proc     ProcConfig    `mapstructure:"proc"`
	Sensors  SensorsConfig `mapstructure:"sensors"`
	Storage  StorageConfig `mapstructure:"storage"`
}

type ProcConfig struct {
	CPUInfo string `mapstructure:"cpuinfo"`
	Stat    string `mapstructure:"stat"`
}

type SensorsConfig struct {
	Command string       `mapstructure:"command"`
	Labels  SensorLabels `mapstructure:"labels"`
}

// SensorLabels names the lines of the sensors output holding each reading.
type SensorLabels struct {
	CPUTemp         string `mapstructure:"cpu_temp"`
	MotherboardTemp string `mapstructure:"motherboard_temp"`
	ChipsetTemp     string `mapstructure:"chipset_temp"`
	CPUFan          string `mapstructure:"cpu_fan"`
	ChassisFan      string `mapstructure:"chassis_fan"`
}

type StorageConfig struct {
	Command string `mapstructure:"command"`
	Device  string `mapstructure:"device"`
}

var defaults = map[string]any{
	"interval":                        DefaultInterval,
	"log_level":                       DefaultLogLevel,
	"proc.cpuinfo":                    "/proc/cpuinfo",
	"proc.stat":                       "/proc/stat",
	"sensors.command":                 "sensors",
	"sensors.labels.cpu_temp":         "CPU",
	"sensors.labels.motherboard_temp": "Motherboard",
	"sensors.labels.chipset_temp":     "Chipset",
	"sensors.labels.cpu_fan":          "CPU Fan",
	"sensors.labels.chassis_fan":      "Chassis Fan",
	"storage.command":                 "nvme",
	"storage.device":                  "/dev/nvme0n1",
}

// Load builds the configuration from defaults, the config file, PEMON_*
// environment variables and the command line, in increasing precedence.
// It returns pflag.ErrHelp unchanged when --help is given.
func Load(args []string) (*Config, error) {
	errFactory := errors.New()

	flags := pflag.NewFlagSet(configName, pflag.ContinueOnError)
	configPath := flags.String("config", "", "Path to the configuration file")
	debugFlag := flags.Bool("debug", false, "Enable debugging mode")
	verboseFlag := flags.Bool("verbose", false, "Enable verbose logging")
	flags.IntP("interval", "i", DefaultInterval, "Seconds between samples")
	flags.String("log-level", DefaultLogLevel, "Log level: debug, info, warning, error")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, *configPath); err != nil {
		return nil, err
	}

	if err := v.BindPFlag("interval", flags.Lookup("interval")); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}
	if err := v.BindPFlag("log_level", flags.Lookup("log-level")); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	// Shorthand flags win over any configured level
	if *verboseFlag {
		config.LogLevel = "info"
	}
	if *debugFlag {
		config.LogLevel = "debug"
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	errFactory := errors.New()

	if path == "" {
		path = os.Getenv(envConfig)
	}

	v.SetConfigType(configType)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath("/etc")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return errFactory.Wrap(errors.ErrReadConfig, err)
	}

	return nil
}

// Validate checks every value the sampler depends on.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.Interval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Interval)
	}

	if !LogLevel(c.LogLevel).IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	required := map[string]string{
		"proc.cpuinfo":    c.Proc.CPUInfo,
		"proc.stat":       c.Proc.Stat,
		"sensors.command": c.Sensors.Command,
		"storage.command": c.Storage.Command,
		"storage.device":  c.Storage.Device,
	}
	for key, value := range required {
		if strings.TrimSpace(value) == "" {
			return errFactory.WithData(errors.ErrInvalidConfig, key+" must not be empty")
		}
	}

	return nil
}

// LogLevel represents valid logging levels
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

// IsValid returns whether the log level is valid
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
		return true
	default:
		return false
	}
}

// String implements the Stringer interface
func (l LogLevel) String() string {
	return string(l)
}
