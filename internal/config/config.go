// Package config loads mathdash settings from an optional config file, an
// optional .env file and MATHDASH_* environment variables, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/llm"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/roster"
)

// EnvPrefix prefixes every environment variable, e.g. MATHDASH_LLM_PROVIDER.
const EnvPrefix = "MATHDASH"

// Config is the resolved application configuration.
type Config struct {
	// LLM is only meaningful when LLMConfigured reports true.
	LLM llm.Config

	// Seed loads the sample student when no students are configured.
	Seed bool

	// Students are loaded into the roster at startup.
	Students []roster.Student

	// File is the config file that was read, if any.
	File string
}

// LLMConfigured reports whether AI features can be used.
func (c *Config) LLMConfigured() bool {
	return c.LLM.Provider != "" && c.LLM.Validate() == nil
}

func setDefaults(v *viper.Viper) {
	d := llm.DefaultConfig()

	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.timeout", d.Timeout)
	v.SetDefault("llm.retry.max_attempts", d.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", d.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", d.Retry.MaxWait)

	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", d.Anthropic.Model)
	v.SetDefault("llm.anthropic.base_url", "")
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", d.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", d.Gemini.Model)
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", d.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", "")

	v.SetDefault("roster.seed", true)
}

// LoadDotEnv loads variables from file into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(file string) error {
	if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("stat %s: %w", file, err)
	}
	if err := godotenv.Load(file); err != nil {
		return fmt.Errorf("load %s: %w", file, err)
	}
	return nil
}

// Load resolves the configuration. path may be empty, in which case
// mathdash.{yaml,json,toml} is looked up in the working directory and
// $HOME/.config/mathdash. A .env file in the working directory is loaded
// first.
func Load(path string) (*Config, error) {
	if err := LoadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("mathdash")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.config/mathdash")
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		LLM:  llmConfig(v),
		Seed: v.GetBool("roster.seed"),
		File: v.ConfigFileUsed(),
	}
	if err := v.UnmarshalKey("students", &cfg.Students, viper.DecodeHook(decodeHook())); err != nil {
		return nil, fmt.Errorf("decode students: %w", err)
	}
	return cfg, nil
}

// decodeHook keeps viper's default hooks and adds the roster enums, so a
// file may say "A*" or "advanced". Unparseable values pass through for
// validation to report.
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		enumHook,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

var (
	gradeType          = reflect.TypeFor[roster.Grade]()
	masteryType        = reflect.TypeFor[roster.MasteryLevel]()
	assessmentTypeType = reflect.TypeFor[roster.AssessmentType]()
)

func enumHook(from, to reflect.Type, data any) (any, error) {
	s, ok := data.(string)
	if from.Kind() != reflect.String || !ok {
		return data, nil
	}
	var (
		v   any
		err error
	)
	switch to {
	case gradeType:
		v, err = roster.ParseGrade(s)
	case masteryType:
		v, err = roster.ParseMasteryLevel(s)
	case assessmentTypeType:
		v, err = roster.ParseAssessmentType(s)
	default:
		return data, nil
	}
	if err != nil {
		return data, nil
	}
	return v, nil
}

// llmConfig builds the provider config. Without llm.provider, vendor key
// variables such as ANTHROPIC_API_KEY are probed.
func llmConfig(v *viper.Viper) llm.Config {
	cfg := llm.DefaultConfig()
	if p := v.GetString("llm.provider"); p != "" {
		cfg.Provider = strings.ToLower(p)
	} else if discovered, ok := llm.DiscoverConfig(); ok {
		cfg = discovered
	} else {
		cfg.Provider = ""
	}

	cfg.Timeout = v.GetDuration("llm.timeout")
	cfg.Retry.MaxAttempts = v.GetInt("llm.retry.max_attempts")
	cfg.Retry.InitialWait = v.GetDuration("llm.retry.initial_wait")
	cfg.Retry.MaxWait = v.GetDuration("llm.retry.max_wait")

	overlay(&cfg.Anthropic.APIKey, v.GetString("llm.anthropic.api_key"))
	overlay(&cfg.Anthropic.Model, v.GetString("llm.anthropic.model"))
	overlay(&cfg.Anthropic.BaseURL, v.GetString("llm.anthropic.base_url"))
	overlay(&cfg.OpenAI.APIKey, v.GetString("llm.openai.api_key"))
	overlay(&cfg.OpenAI.Model, v.GetString("llm.openai.model"))
	overlay(&cfg.OpenAI.BaseURL, v.GetString("llm.openai.base_url"))
	overlay(&cfg.Gemini.APIKey, v.GetString("llm.gemini.api_key"))
	overlay(&cfg.Gemini.Model, v.GetString("llm.gemini.model"))
	overlay(&cfg.OpenRouter.APIKey, v.GetString("llm.openrouter.api_key"))
	overlay(&cfg.OpenRouter.Model, v.GetString("llm.openrouter.model"))
	overlay(&cfg.OpenRouter.BaseURL, v.GetString("llm.openrouter.base_url"))

	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	return cfg
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
