// Package config contains utilities for loading configs
package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

const (
	defaultConfigFilePath = "/data/mealplan.yaml"
	appSecretBytes        = 32
	appSecretFilePerms    = 0o600
)

const (
	EnvProd = "PROD"
	EnvDev  = "DEV"
)

const (
	defaultPort           = 5000
	defaultAppSecretPath  = "/data/secret"
	defaultSecretVersion  = "1"
	defaultTokenLifetime  = 30 * 24 * time.Hour
	defaultCORSOrigin     = "http://localhost:3000"
	defaultRateLimitWin   = 15 * time.Minute
	defaultRateLimitMax   = 100
	defaultLogLevel       = "info"
	defaultObjectStoreSSL = true
)

// Duration is a time.Duration that decodes from strings such as "15m".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(b []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(b)), `"'`)
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", raw, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type AppSecretValue string

func (a *AppSecretValue) Validate() error {
	if a == nil {
		return errors.New("secret should not be nil")
	}
	if len([]byte(*a)) < appSecretBytes {
		return errors.New("secret should be at least 32 bytes")
	}
	return nil
}

func splitFieldList(param string) []string {
	// "A,B,C" or "A B C"
	param = strings.ReplaceAll(param, " ", ",")
	parts := strings.Split(param, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// allOrNothing is a cross-field validator: the listed sibling fields must be
// either all zero or all non-zero. It is attached to a placeholder field, e.g.
// `validate:"allOrNothing=A B C"`. Nil pointers count as zero. A missing field
// name fails validation.
func allOrNothing(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Pointer {
		if parent.IsNil() {
			return true
		}
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return false
	}

	names := splitFieldList(fl.Param())
	if len(names) == 0 {
		return false
	}

	hasZero := false
	hasNonZero := false

	for _, name := range names {
		f := parent.FieldByName(name)
		if !f.IsValid() {
			return false
		}

		for (f.Kind() == reflect.Pointer || f.Kind() == reflect.Interface) && !f.IsNil() {
			f = f.Elem()
		}

		if f.IsZero() {
			hasZero = true
		} else {
			hasNonZero = true
		}

		if hasZero && hasNonZero {
			return false
		}
	}

	return true
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("allOrNothing", allOrNothing)
	return v
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	for _, e := range validationErrs {
		if e.Tag() == "allOrNothing" {
			// "Config.ObjectStore.Validate" -> "ObjectStore"
			parts := strings.Split(e.Namespace(), ".")
			var structName string
			//nolint:mnd
			if len(parts) >= 2 {
				structName = parts[len(parts)-2]
			}

			var fields string
			switch structName {
			case "ObjectStore":
				fields = "Endpoint, AccessKey, SecretKey, and Bucket"
			default:
				fields = "all related fields"
			}

			return fmt.Errorf(
				"%s configuration is incomplete: either all fields must be set (%s) or all must be empty",
				structName, fields)
		}
	}

	return err
}

type AppSecret struct {
	Value   *AppSecretValue `yaml:"value" validate:"omitempty,validateFn"`
	Path    string          `yaml:"path" validate:"omitempty,filepath"`
	Version string          `yaml:"version" validate:"required"`
	// TokenLifetime is how long an issued access token stays valid.
	TokenLifetime Duration `yaml:"token_lifetime" validate:"gt=0"`
}

type Database struct {
	URI string `yaml:"uri" validate:"required,url"`
}

type CORS struct {
	Origin string `yaml:"origin" validate:"required,url"`
}

type RateLimit struct {
	Window Duration `yaml:"window" validate:"gt=0"`
	Max    int      `yaml:"max" validate:"gte=1"`
}

// ObjectStore configures the S3-compatible bucket that holds recipe images.
// Leaving every field empty disables image uploads.
type ObjectStore struct {
	Endpoint  string `yaml:"endpoint" validate:"omitempty,hostname_port"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
	PublicURL string `yaml:"public_url" validate:"omitempty,url"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Endpoint AccessKey SecretKey Bucket"`
}

func (o ObjectStore) Enabled() bool {
	return o.Endpoint != ""
}

type Config struct {
	Env         string      `yaml:"env" validate:"omitempty,oneof=DEV PROD"`
	Port        uint16      `yaml:"port" validate:"required"`
	LogLevel    string      `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	AppSecret   AppSecret   `yaml:"app_secret"`
	Database    Database    `yaml:"database"`
	CORS        CORS        `yaml:"cors"`
	RateLimit   RateLimit   `yaml:"rate_limit"`
	ObjectStore ObjectStore `yaml:"object_store"`
}

func (c Config) IsProd() bool {
	return c.Env == EnvProd
}

func newAppSecret() (string, error) {
	token := make([]byte, appSecretBytes)
	if _, err := rand.Read(token); err != nil {
		return "", fmt.Errorf("creating app secret: %w", err)
	}
	return base64.StdEncoding.EncodeToString(token), nil
}

// loadAppSecret fills in AppSecret.Value from AppSecret.Path when no value
// was given, generating and persisting a new secret if the file is missing.
func loadAppSecret(config *Config) error {
	if config.AppSecret.Value != nil {
		return nil
	}

	var secret string
	if f1, err := os.Lstat(config.AppSecret.Path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("checking secret path: %w", err)
		}

		file, err := os.OpenFile(config.AppSecret.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, appSecretFilePerms)
		if err != nil {
			return fmt.Errorf("creating secret file: %w", err)
		}
		defer func() { _ = file.Close() }()

		secret, err = newAppSecret()
		if err != nil {
			return fmt.Errorf("generating new app secret: %w", err)
		}

		if _, err := file.WriteString(secret); err != nil {
			return fmt.Errorf("writing secret file: %w", err)
		}
	} else {
		if f1.IsDir() {
			return fmt.Errorf("expected file, got directory at %q", config.AppSecret.Path)
		}
		data, err := os.ReadFile(config.AppSecret.Path)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		secret = strings.TrimSpace(string(data))
	}
	val := AppSecretValue(secret)
	if err := val.Validate(); err != nil {
		return fmt.Errorf("secret at %q: %w", config.AppSecret.Path, err)
	}
	config.AppSecret.Value = &val
	return nil
}

func loadWithDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func loadDuration(key string, def time.Duration) (Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return Duration(def), nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s (%q): %w", key, raw, err)
	}
	return Duration(d), nil
}

func loadConfigFromEnv() (Config, error) {
	conf := Config{
		Env:      loadWithDefault("ENV", EnvDev),
		LogLevel: loadWithDefault("LOG_LEVEL", defaultLogLevel),
	}

	port := loadWithDefault("PORT", strconv.Itoa(defaultPort))
	if p, err := strconv.ParseUint(port, 10, 16); err != nil {
		return conf, fmt.Errorf("invalid PORT (%q): %w", port, err)
	} else {
		conf.Port = uint16(p)
	}

	// AppSecret
	conf.AppSecret = AppSecret{
		Path:    loadWithDefault("APP_SECRET_PATH", defaultAppSecretPath),
		Version: loadWithDefault("APP_SECRET_VERSION", defaultSecretVersion),
	}
	if secret := loadWithDefault("APP_SECRET", os.Getenv("JWT_SECRET")); secret != "" {
		val := AppSecretValue(secret)
		conf.AppSecret.Value = &val
	}
	lifetime, err := loadDuration("TOKEN_LIFETIME", defaultTokenLifetime)
	if err != nil {
		return conf, err
	}
	conf.AppSecret.TokenLifetime = lifetime

	// Database
	conf.Database = Database{
		URI: loadWithDefault("DATABASE_URI", os.Getenv("DATABASE_URL")),
	}

	// CORS
	conf.CORS = CORS{
		Origin: loadWithDefault("CORS_ORIGIN", defaultCORSOrigin),
	}

	// Rate limiting
	window, err := loadDuration("RATE_LIMIT_WINDOW", defaultRateLimitWin)
	if err != nil {
		return conf, err
	}
	conf.RateLimit.Window = window
	rateMax := loadWithDefault("RATE_LIMIT_MAX", strconv.Itoa(defaultRateLimitMax))
	if m, err := strconv.Atoi(rateMax); err != nil {
		return conf, fmt.Errorf("invalid RATE_LIMIT_MAX (%q): %w", rateMax, err)
	} else {
		conf.RateLimit.Max = m
	}

	// Object store
	conf.ObjectStore = ObjectStore{
		Endpoint:  loadWithDefault("OBJECT_STORE_ENDPOINT", ""),
		AccessKey: loadWithDefault("OBJECT_STORE_ACCESS_KEY", ""),
		SecretKey: loadWithDefault("OBJECT_STORE_SECRET_KEY", ""),
		Bucket:    loadWithDefault("OBJECT_STORE_BUCKET", ""),
		PublicURL: loadWithDefault("OBJECT_STORE_PUBLIC_URL", ""),
	}
	useSSL := loadWithDefault("OBJECT_STORE_USE_SSL", strconv.FormatBool(defaultObjectStoreSSL))
	if b, err := strconv.ParseBool(useSSL); err != nil {
		return conf, fmt.Errorf("invalid OBJECT_STORE_USE_SSL (%q): %w", useSSL, err)
	} else {
		conf.ObjectStore.UseSSL = b
	}

	if err := newValidator().Struct(conf); err != nil {
		return conf, formatValidationError(err)
	}

	if err := loadAppSecret(&conf); err != nil {
		return conf, fmt.Errorf("loading app secret: %w", err)
	}

	return conf, nil
}

func loadConfigFromFile(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	config := Config{
		ObjectStore: ObjectStore{UseSSL: defaultObjectStoreSSL},
	}
	if err := yaml.Unmarshal(contents, &config); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Set defaults
	if config.Env == "" {
		config.Env = EnvDev
	}
	if config.Port == 0 {
		config.Port = defaultPort
	}
	if config.LogLevel == "" {
		config.LogLevel = defaultLogLevel
	}
	if config.AppSecret.Path == "" {
		config.AppSecret.Path = defaultAppSecretPath
	}
	if config.AppSecret.Version == "" {
		config.AppSecret.Version = defaultSecretVersion
	}
	if config.AppSecret.TokenLifetime == 0 {
		config.AppSecret.TokenLifetime = Duration(defaultTokenLifetime)
	}
	if config.CORS.Origin == "" {
		config.CORS.Origin = defaultCORSOrigin
	}
	if config.RateLimit.Window == 0 {
		config.RateLimit.Window = Duration(defaultRateLimitWin)
	}
	if config.RateLimit.Max == 0 {
		config.RateLimit.Max = defaultRateLimitMax
	}

	if err := newValidator().Struct(config); err != nil {
		return Config{}, formatValidationError(err)
	}

	if err := loadAppSecret(&config); err != nil {
		return Config{}, fmt.Errorf("loading app secret: %w", err)
	}

	return config, nil
}

func configFileExists(path string) bool {
	f, err := os.Lstat(path)
	if err != nil {
		return false
	}

	return !f.IsDir()
}

// LoadConfig reads the YAML file at CONFIG_PATH (default /data/mealplan.yaml)
// when it exists and falls back to environment variables otherwise.
func LoadConfig() (Config, error) {
	path := loadWithDefault("CONFIG_PATH", defaultConfigFilePath)
	if configFileExists(path) {
		return loadConfigFromFile(path)
	}

	return loadConfigFromEnv()
}
