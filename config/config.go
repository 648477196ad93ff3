package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "12MB"
	defaultMaxUploadSize      = 10 << 20
	defaultMediaBaseURL       = "/media"
	defaultBucketURL          = "mem://"
	defaultNominatimEndpoint  = "https://nominatim.openstreetmap.org"
	defaultPlaceLanguage      = "fr"
	defaultPlaceLimit         = 8
	defaultPlaceMinQuery      = 2
	defaultPlaceRate          = 1.0
	defaultPlaceTimeout       = 10 * time.Second
	defaultAccessTokenTTL     = 24 * time.Hour
	defaultMetricsPath        = "/metrics"
)

// Store drivers.
const (
	StoreDriverPostgres  = "postgres"
	StoreDriverFirestore = "firestore"
)

// Identity providers.
const (
	IdentityProviderLocal    = "local"
	IdentityProviderFirebase = "firebase"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Store selects the persistence backend for addresses, comments and ratings
	Store *StoreConfig `json:"store" yaml:"store"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Firebase configuration shared by Firestore and Firebase Authentication
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Identity *IdentityConfig `json:"identity" yaml:"identity"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Storage configuration for address photos and avatars
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	PlaceSearch *PlaceSearchConfig `json:"placeSearch" yaml:"placeSearch"`

	// PubSub configuration for address event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for address share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig defines which document store backs the address repository
type StoreConfig struct {
	// Driver is "postgres" or "firestore"
	Driver string `json:"driver" yaml:"driver"`

	// AutoMigrate runs GORM migrations on startup (postgres driver only)
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// SlowQueryThreshold logs slower SQL statements as warnings (postgres driver only)
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// FirebaseConfig defines Firebase Admin SDK configuration
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// IdentityConfig defines the identity provider and token settings
type IdentityConfig struct {
	// Provider is "local" (bcrypt + JWT) or "firebase"
	Provider       string        `json:"provider" yaml:"provider"`
	AccessTokenTTL time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
}

// StorageConfig defines the object store for uploaded images
type StorageConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. gs://bucket, s3://bucket?region=eu-west-3, file:///var/lib/adresses, mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// PublicBaseURL prefixes object keys to build durable retrieval URLs.
	// Defaults to "/media", served by the API itself.
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	// MaxUploadSize in bytes for a single image
	MaxUploadSize int64 `json:"maxUploadSize" yaml:"maxUploadSize"`
}

// PlaceSearchConfig defines the Nominatim place search client
type PlaceSearchConfig struct {
	Endpoint          string        `json:"endpoint" yaml:"endpoint"`
	Language          string        `json:"language" yaml:"language"`
	Limit             int           `json:"limit" yaml:"limit"`
	MinQueryLength    int           `json:"minQueryLength" yaml:"minQueryLength"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	UserAgent         string        `json:"userAgent" yaml:"userAgent"`
	Timeout           time.Duration `json:"timeout" yaml:"timeout"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	configFile, err := findConfigFile(currEnv, configPath...)
	if err != nil {
		return nil, err
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// ENV_VAR_NAME is aligned with existing YAML keys, e.g. STORAGE_BUCKETURL -> storage.bucketUrl
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, configPath ...string) (string, error) {
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", currEnv)
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills optional sections so the rest of the code can rely on them being set.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = StoreDriverPostgres
	}

	if cfg.Identity == nil {
		cfg.Identity = &IdentityConfig{}
	}
	if cfg.Identity.Provider == "" {
		cfg.Identity.Provider = IdentityProviderLocal
	}
	if cfg.Identity.AccessTokenTTL <= 0 {
		cfg.Identity.AccessTokenTTL = defaultAccessTokenTTL
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.BucketURL == "" {
		cfg.Storage.BucketURL = defaultBucketURL
	}
	if cfg.Storage.PublicBaseURL == "" {
		cfg.Storage.PublicBaseURL = defaultMediaBaseURL
	}
	if cfg.Storage.MaxUploadSize <= 0 {
		cfg.Storage.MaxUploadSize = defaultMaxUploadSize
	}

	if cfg.PlaceSearch == nil {
		cfg.PlaceSearch = &PlaceSearchConfig{}
	}
	applyPlaceSearchDefaults(cfg.PlaceSearch, cfg.Env.ServiceName)

	if cfg.Metrics != nil && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}
}

func applyPlaceSearchDefaults(ps *PlaceSearchConfig, serviceName string) {
	if ps.Endpoint == "" {
		ps.Endpoint = defaultNominatimEndpoint
	}
	if ps.Language == "" {
		ps.Language = defaultPlaceLanguage
	}
	if ps.Limit <= 0 {
		ps.Limit = defaultPlaceLimit
	}
	if ps.MinQueryLength <= 0 {
		ps.MinQueryLength = defaultPlaceMinQuery
	}
	if ps.RequestsPerSecond <= 0 {
		ps.RequestsPerSecond = defaultPlaceRate
	}
	if ps.Timeout <= 0 {
		ps.Timeout = defaultPlaceTimeout
	}
	if ps.UserAgent == "" {
		name := serviceName
		if name == "" {
			name = "adresses"
		}
		ps.UserAgent = name + "/1.0"
	}
}

// Validate rejects combinations the wiring cannot satisfy.
func (cfg *Config) Validate() error {
	switch cfg.Store.Driver {
	case StoreDriverPostgres:
		if cfg.Postgres == nil {
			return errors.New("postgres section is required for the postgres store driver")
		}
	case StoreDriverFirestore:
		if cfg.Firebase == nil {
			return errors.New("firebase section is required for the firestore store driver")
		}
	default:
		return errors.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}

	switch cfg.Identity.Provider {
	case IdentityProviderLocal:
		if cfg.Store.Driver != StoreDriverPostgres {
			return errors.New("local identity provider requires the postgres store driver")
		}
		if cfg.SecretKey.Access == "" {
			return errors.New("secretKey.access is required for the local identity provider")
		}
	case IdentityProviderFirebase:
		if cfg.Firebase == nil {
			return errors.New("firebase section is required for the firebase identity provider")
		}
	default:
		return errors.Errorf("unknown identity provider: %s", cfg.Identity.Provider)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
