package config

import (
	"os"
	"path/filepath"
	"slices"
	"strconv"
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
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultPath                = "."
	defaultMaxRequestBodySize  = "10M"
	defaultAPIPrefix           = "/api"
	defaultTokenTTL            = 24 * time.Hour
	defaultAdminUsername       = "admin"
	defaultAdminPassword       = "admin123"
	defaultOperatorChannel     = "whatsapp:+905326832603"
	defaultNotificationTimeout = 10 * time.Second
	defaultBucketURL           = "file:///tmp/bdgaraj-uploads?create_dir=true"
	defaultUploadsPrefix       = "/uploads"
	defaultMaxUploadSize       = 5 << 20
	defaultQRCodeSize          = 256
)

// Storage drivers
const (
	StorageDriverMongo    = "mongo"
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Notification providers
const (
	NotificationProviderLog      = "log"
	NotificationProviderWebhook  = "webhook"
	NotificationProviderFirebase = "firebase"
	NotificationProviderPubSub   = "pubsub"
)

//nolint:gochecknoglobals
var defaultAllowedTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/webp", "image/gif"}

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
		// APIPrefix is the shared prefix of every API route.
		APIPrefix string `json:"apiPrefix" yaml:"apiPrefix"`
		Timeouts  struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		CORS struct {
			AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		} `json:"cors" yaml:"cors"`
	} `json:"http" yaml:"http"`

	Storage struct {
		// Driver selects the document store: mongo, postgres or memory. There is no default.
		Driver string `json:"driver" yaml:"driver"`
	} `json:"storage" yaml:"storage"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Seed *SeedConfig `json:"seed" yaml:"seed"`

	// Notification configuration for new appointment alerts
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	Uploads *UploadsConfig `json:"uploads" yaml:"uploads"`

	// QRCode configuration for the WhatsApp contact QR code
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// MongoConfig defines the MongoDB connection
type MongoConfig struct {
	URI            string        `json:"uri" yaml:"uri"`
	Database       string        `json:"database" yaml:"database"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL   time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
}

// SeedConfig controls the startup seeding of baseline data
type SeedConfig struct {
	Enabled       bool   `json:"enabled" yaml:"enabled"`
	AdminUsername string `json:"adminUsername" yaml:"adminUsername"`
	AdminPassword string `json:"adminPassword" yaml:"adminPassword"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// NotificationConfig defines how the operator is told about new appointments
type NotificationConfig struct {
	// Provider type: "log", "webhook", "firebase" or "pubsub"
	Provider string `json:"provider" yaml:"provider"`

	// OperatorChannel is the fixed destination, e.g. "whatsapp:+905326832603"
	OperatorChannel string `json:"operatorChannel" yaml:"operatorChannel"`

	// Timeout bounds a single delivery attempt
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	Webhook struct {
		Endpoint string `json:"endpoint" yaml:"endpoint"`
		Token    string `json:"token" yaml:"token"`
	} `json:"webhook" yaml:"webhook"`

	Firebase struct {
		CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
		Topic           string `json:"topic" yaml:"topic"`
	} `json:"firebase" yaml:"firebase"`

	PubSub struct {
		ProjectID string `json:"projectId" yaml:"projectId"`
		TopicID   string `json:"topicId" yaml:"topicId"`
	} `json:"pubsub" yaml:"pubsub"`
}

// UploadsConfig defines where uploaded images go and what is accepted
type UploadsConfig struct {
	// BucketURL is a gocloud blob URL, e.g. file:///var/lib/bdgaraj/uploads or s3://bucket
	BucketURL    string   `json:"bucketURL" yaml:"bucketURL"`
	PublicPrefix string   `json:"publicPrefix" yaml:"publicPrefix"`
	MaxSizeBytes int64    `json:"maxSizeBytes" yaml:"maxSizeBytes"`
	AllowedTypes []string `json:"allowedTypes" yaml:"allowedTypes"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// validate rejects settings that have no safe default.
func validate(cfg *Config) error {
	switch cfg.Storage.Driver {
	case StorageDriverMongo, StorageDriverPostgres, StorageDriverMemory:
		return nil
	case "":
		return errors.New("storage.driver is required: set mongo, postgres or memory")
	default:
		return errors.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.APIPrefix == "" {
		cfg.HTTP.APIPrefix = defaultAPIPrefix
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}

	if cfg.Seed == nil {
		cfg.Seed = &SeedConfig{Enabled: true}
	}
	if cfg.Seed.AdminUsername == "" {
		cfg.Seed.AdminUsername = defaultAdminUsername
	}
	if cfg.Seed.AdminPassword == "" {
		cfg.Seed.AdminPassword = defaultAdminPassword
	}

	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{}
	}
	if cfg.Notification.Provider == "" {
		cfg.Notification.Provider = NotificationProviderLog
	}
	if cfg.Notification.OperatorChannel == "" {
		cfg.Notification.OperatorChannel = defaultOperatorChannel
	}
	if cfg.Notification.Timeout == 0 {
		cfg.Notification.Timeout = defaultNotificationTimeout
	}

	if cfg.Uploads == nil {
		cfg.Uploads = &UploadsConfig{}
	}
	if cfg.Uploads.BucketURL == "" {
		cfg.Uploads.BucketURL = defaultBucketURL
	}
	if cfg.Uploads.PublicPrefix == "" {
		cfg.Uploads.PublicPrefix = defaultUploadsPrefix
	}
	if cfg.Uploads.MaxSizeBytes == 0 {
		cfg.Uploads.MaxSizeBytes = defaultMaxUploadSize
	}
	if len(cfg.Uploads.AllowedTypes) == 0 {
		cfg.Uploads.AllowedTypes = slices.Clone(defaultAllowedTypes)
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: defaultQRCodeSize, ErrorCorrectionLevel: "M"}
	}
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
