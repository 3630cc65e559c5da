package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strings"

	"github.com/de-tools/finreport/pkg/services/report"
	"github.com/de-tools/finreport/pkg/services/source"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "FINREPORT"
	DefaultEnvFile = ".env"
)

var ErrInvalidSettings = errors.New("invalid settings")

type Settings struct {
	Format   string `mapstructure:"format" validate:"required,oneof=plain simple grid fancy_grid github pipe orgtbl rst mediawiki html latex"`
	Summary  bool   `mapstructure:"summary"`
	Dedupe   bool   `mapstructure:"dedupe"`
	RevKey   string `mapstructure:"rev_key" validate:"required"`
	ProfKey  string `mapstructure:"prof_key" validate:"required"`
	Color    string `mapstructure:"color" validate:"oneof=auto always never"`
	Title    string `mapstructure:"title"`
	Export   string `mapstructure:"export"`
	LogLevel string `mapstructure:"log_level" validate:"loglevel"`
	LogFile  string `mapstructure:"log_file"`
}

var defaults = map[string]any{
	"format":    "simple",
	"summary":   true,
	"dedupe":    false,
	"rev_key":   source.DefaultRevenueKey,
	"prof_key":  source.DefaultProfitKey,
	"color":     "auto",
	"title":     report.DefaultTitle,
	"export":    "",
	"log_level": "error",
	"log_file":  "",
}

// Keys returns every settings key in the order flags are usually declared
func Keys() []string {
	return []string{"format", "summary", "dedupe", "rev_key", "prof_key", "color", "title", "export", "log_level", "log_file"}
}

// FlagName maps a settings key to its command-line flag
func FlagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

type LoadOptions struct {
	ConfigFile   string
	Profile      string
	ProfilesFile string
	EnvFile      string
	Flags        *pflag.FlagSet
}

// Load resolves settings from defaults, config file, profile, environment and flags,
// each layer overriding the previous one
func Load(opts LoadOptions) (*Settings, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if opts.Profile != "" {
		path := opts.ProfilesFile
		if path == "" {
			path = DefaultProfilesPath()
		}
		registry, err := NewProfileRegistry(path)
		if err != nil {
			return nil, err
		}
		values, err := registry.GetProfile(opts.Profile)
		if err != nil {
			return nil, err
		}
		if err := v.MergeConfigMap(values); err != nil {
			return nil, fmt.Errorf("failed to merge profile %s: %w", opts.Profile, err)
		}
	}

	if opts.Flags != nil {
		for _, key := range Keys() {
			if flag := opts.Flags.Lookup(FlagName(key)); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
				}
			}
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if err := Validate(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func loadEnvFile(path string) error {
	if path == "" {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("loglevel", isLogLevel)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("mapstructure")
	})
	return v
}

// Validate checks settings against their struct tags
func Validate(s *Settings) error {
	err := newValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, formatFieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidSettings, strings.Join(messages, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s %q must be one of: %s", field, fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "loglevel":
		return fmt.Sprintf("%s %q is not a log level", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

func isLogLevel(fl validator.FieldLevel) bool {
	_, err := zerolog.ParseLevel(fl.Field().String())
	return err == nil
}
