package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultWorkerBatchSize   = 500
	defaultMaxAttempts       = 5
	defaultRetryBackoff      = 5 * time.Minute
	defaultGatewayBatchSize  = 100
	defaultStaleAfter        = 15 * time.Minute
	defaultDedupeTTL         = 24 * time.Hour
	defaultDriverCooldown    = 12 * time.Hour
	defaultUpcomingWindow    = 72 * time.Hour
	defaultGraceDays         = 7
	defaultLowBalance        = "50"
	defaultFeePerKm          = 10.0
	defaultFeeCacheTTL       = 5 * time.Minute
	defaultMaxDistanceKm     = 15.0
	defaultBaseTimeMin       = 30
	defaultGeocodingURL      = "https://nominatim.openstreetmap.org"
	defaultGeocodingTimeout  = 10 * time.Second
	defaultGeocodingInterval = time.Second
	defaultExpoURL           = "https://exp.host/--/api/v2/push/send"
	defaultPushTimeout       = 30 * time.Second
	defaultHeartbeat         = 25 * time.Second
	defaultReconnectDelay    = 5 * time.Second
	defaultLockTTL           = 10 * time.Minute
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

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Auth holds the keys used to trust callers of the notify endpoint
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Worker configures the push queue worker and its invocation secrets
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	// Billing configures the charge and billing-notification schedulers
	Billing *BillingConfig `json:"billing" yaml:"billing"`

	// Notify configures the notify-user endpoint
	Notify *NotifyConfig `json:"notify" yaml:"notify"`

	// Push configures the outbound push gateways
	Push *PushConfig `json:"push" yaml:"push"`

	// Firebase configuration for raw FCM tokens
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Geocoding configures the address lookup client
	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// Delivery configures fee and distance rules
	Delivery *DeliveryConfig `json:"delivery" yaml:"delivery"`

	// Redis is optional; locks and push dedupe are disabled without it
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for queue kick events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Realtime configures the change-stream websocket
	Realtime *RealtimeConfig `json:"realtime" yaml:"realtime"`

	// OrderWatch selects the user the orderwatch binary listens for
	OrderWatch *OrderWatchConfig `json:"orderWatch" yaml:"orderWatch"`

	// Scheduler configures in-process job intervals
	Scheduler *SchedulerConfig `json:"scheduler" yaml:"scheduler"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AuthConfig defines how bearer tokens on admin endpoints are verified
type AuthConfig struct {
	// JWTSecret signs end-user access tokens (HS256)
	JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`

	// ServiceRoleKey is a bearer accepted as a trusted backend caller
	ServiceRoleKey string `json:"serviceRoleKey" yaml:"serviceRoleKey"`
}

// WorkerConfig defines the push worker behavior
type WorkerConfig struct {
	Secret           string        `json:"secret" yaml:"secret"`
	WebhookSecret    string        `json:"webhookSecret" yaml:"webhookSecret"`
	BatchSize        int           `json:"batchSize" yaml:"batchSize"`
	MaxAttempts      int           `json:"maxAttempts" yaml:"maxAttempts"`
	RetryBackoff     time.Duration `json:"retryBackoff" yaml:"retryBackoff"`
	GatewayBatchSize int           `json:"gatewayBatchSize" yaml:"gatewayBatchSize"`
	StaleAfter       time.Duration `json:"staleAfter" yaml:"staleAfter"`
	DedupeTTL        time.Duration `json:"dedupeTTL" yaml:"dedupeTTL"`
}

// BillingConfig defines the billing schedulers
type BillingConfig struct {
	// CronKey is checked against x-cron-key when non-empty
	CronKey             string        `json:"cronKey" yaml:"cronKey"`
	DriverCooldown      time.Duration `json:"driverCooldown" yaml:"driverCooldown"`
	LowBalanceThreshold string        `json:"lowBalanceThreshold" yaml:"lowBalanceThreshold"`
	UpcomingWindow      time.Duration `json:"upcomingWindow" yaml:"upcomingWindow"`
	GraceDays           int           `json:"graceDays" yaml:"graceDays"`
}

// NotifyConfig defines the notify-user endpoint
type NotifyConfig struct {
	Secret string `json:"secret" yaml:"secret"`
	// KickWorker publishes a queue kick after enqueueing
	KickWorker bool `json:"kickWorker" yaml:"kickWorker"`
}

// PushConfig defines outbound push delivery
type PushConfig struct {
	// Provider is "expo", "firebase" or "auto" (route by token format)
	Provider    string        `json:"provider" yaml:"provider"`
	ExpoURL     string        `json:"expoUrl" yaml:"expoUrl"`
	AccessToken string        `json:"accessToken" yaml:"accessToken"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// GeocodingConfig defines the OpenStreetMap-compatible geocoder
type GeocodingConfig struct {
	BaseURL        string        `json:"baseUrl" yaml:"baseUrl"`
	UserAgent      string        `json:"userAgent" yaml:"userAgent"`
	AcceptLanguage string        `json:"acceptLanguage" yaml:"acceptLanguage"`
	Timeout        time.Duration `json:"timeout" yaml:"timeout"`
	// MinInterval spaces out batch lookups (usage policy is one request per second)
	MinInterval time.Duration `json:"minInterval" yaml:"minInterval"`
}

// DeliveryConfig defines delivery fee rules
type DeliveryConfig struct {
	DefaultFeePerKm float64       `json:"defaultFeePerKm" yaml:"defaultFeePerKm"`
	FeeCacheTTL     time.Duration `json:"feeCacheTTL" yaml:"feeCacheTTL"`
	MaxDistanceKm   float64       `json:"maxDistanceKm" yaml:"maxDistanceKm"`
	BaseTimeMin     int           `json:"baseTimeMin" yaml:"baseTimeMin"`
}

// RedisConfig defines the optional Redis connection
type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// PubSubConfig defines Pub/Sub configuration for queue kicks
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

// RealtimeConfig defines the change-stream connection
type RealtimeConfig struct {
	URL               string        `json:"url" yaml:"url"`
	AnonKey           string        `json:"anonKey" yaml:"anonKey"`
	AccessToken       string        `json:"accessToken" yaml:"accessToken"`
	HeartbeatInterval time.Duration `json:"heartbeatInterval" yaml:"heartbeatInterval"`
	ReconnectDelay    time.Duration `json:"reconnectDelay" yaml:"reconnectDelay"`
}

// OrderWatchConfig selects whose orders the orderwatch binary follows
type OrderWatchConfig struct {
	UserID   string   `json:"userId" yaml:"userId"`
	Role     string   `json:"role" yaml:"role"`
	StoreIDs []string `json:"storeIds" yaml:"storeIds"`
	Sound    bool     `json:"sound" yaml:"sound"`
}

// SchedulerConfig defines in-process job cadence
type SchedulerConfig struct {
	PushDrainInterval     time.Duration `json:"pushDrainInterval" yaml:"pushDrainInterval"`
	ReclaimInterval       time.Duration `json:"reclaimInterval" yaml:"reclaimInterval"`
	NotifyBillingInterval time.Duration `json:"notifyBillingInterval" yaml:"notifyBillingInterval"`
	ChargeInterval        time.Duration `json:"chargeInterval" yaml:"chargeInterval"`
	LockTTL               time.Duration `json:"lockTTL" yaml:"lockTTL"`
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
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: WORKER_MAXATTEMPTS -> worker.maxAttempts
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
				mapstructure.StringToSliceHookFunc(","),
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

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills every optional section so consumers never nil-check.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Notify == nil {
		cfg.Notify = &NotifyConfig{}
	}
	if cfg.Firebase == nil {
		cfg.Firebase = &FirebaseConfig{}
	}
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.OrderWatch == nil {
		cfg.OrderWatch = &OrderWatchConfig{}
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	w := cfg.Worker
	w.BatchSize = positiveOr(w.BatchSize, defaultWorkerBatchSize)
	w.MaxAttempts = positiveOr(w.MaxAttempts, defaultMaxAttempts)
	w.RetryBackoff = durationOr(w.RetryBackoff, defaultRetryBackoff)
	w.GatewayBatchSize = positiveOr(w.GatewayBatchSize, defaultGatewayBatchSize)
	w.StaleAfter = durationOr(w.StaleAfter, defaultStaleAfter)
	w.DedupeTTL = durationOr(w.DedupeTTL, defaultDedupeTTL)

	if cfg.Billing == nil {
		cfg.Billing = &BillingConfig{}
	}
	b := cfg.Billing
	b.DriverCooldown = durationOr(b.DriverCooldown, defaultDriverCooldown)
	b.UpcomingWindow = durationOr(b.UpcomingWindow, defaultUpcomingWindow)
	b.GraceDays = positiveOr(b.GraceDays, defaultGraceDays)
	if strings.TrimSpace(b.LowBalanceThreshold) == "" {
		b.LowBalanceThreshold = defaultLowBalance
	}

	if cfg.Push == nil {
		cfg.Push = &PushConfig{}
	}
	if cfg.Push.ExpoURL == "" {
		cfg.Push.ExpoURL = defaultExpoURL
	}
	cfg.Push.Timeout = durationOr(cfg.Push.Timeout, defaultPushTimeout)

	if cfg.Geocoding == nil {
		cfg.Geocoding = &GeocodingConfig{}
	}
	if cfg.Geocoding.BaseURL == "" {
		cfg.Geocoding.BaseURL = defaultGeocodingURL
	}
	if cfg.Geocoding.UserAgent == "" {
		cfg.Geocoding.UserAgent = cfg.Env.ServiceName
	}
	cfg.Geocoding.Timeout = durationOr(cfg.Geocoding.Timeout, defaultGeocodingTimeout)
	cfg.Geocoding.MinInterval = durationOr(cfg.Geocoding.MinInterval, defaultGeocodingInterval)

	if cfg.Delivery == nil {
		cfg.Delivery = &DeliveryConfig{}
	}
	if cfg.Delivery.DefaultFeePerKm <= 0 {
		cfg.Delivery.DefaultFeePerKm = defaultFeePerKm
	}
	if cfg.Delivery.MaxDistanceKm <= 0 {
		cfg.Delivery.MaxDistanceKm = defaultMaxDistanceKm
	}
	cfg.Delivery.FeeCacheTTL = durationOr(cfg.Delivery.FeeCacheTTL, defaultFeeCacheTTL)
	cfg.Delivery.BaseTimeMin = positiveOr(cfg.Delivery.BaseTimeMin, defaultBaseTimeMin)

	if cfg.Realtime == nil {
		cfg.Realtime = &RealtimeConfig{}
	}
	cfg.Realtime.HeartbeatInterval = durationOr(cfg.Realtime.HeartbeatInterval, defaultHeartbeat)
	cfg.Realtime.ReconnectDelay = durationOr(cfg.Realtime.ReconnectDelay, defaultReconnectDelay)

	if cfg.Scheduler == nil {
		cfg.Scheduler = &SchedulerConfig{}
	}
	s := cfg.Scheduler
	s.PushDrainInterval = durationOr(s.PushDrainInterval, time.Minute)
	s.ReclaimInterval = durationOr(s.ReclaimInterval, 5*time.Minute)
	s.NotifyBillingInterval = durationOr(s.NotifyBillingInterval, time.Hour)
	s.ChargeInterval = durationOr(s.ChargeInterval, 24*time.Hour)
	s.LockTTL = durationOr(s.LockTTL, defaultLockTTL)
}

func positiveOr(v, fallback int) int {
	if v <= 0 {
		return fallback
	}

	return v
}

func durationOr(v, fallback time.Duration) time.Duration {
	if v <= 0 {
		return fallback
	}

	return v
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

// buildReplicasFromEnv builds the replicas slice from POSTGRES_REPLICAS_{index}_{field}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
