package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		MessagesRefreshInterval    time.Duration
		OrderStatusMetricsInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // пополнение корзины вызывающего, токенов/сек
		RateLimiterBurst int           // ёмкость корзины вызывающего
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host           string
		Port           string
		User           string
		Password       string
		DBName         string
		SSLMode        string
		MigrateOnStart bool
	}

	PermissionService struct {
		GRPCHost         string
		Timeout          time.Duration
		BreakerFailures  uint32        // подряд неудачных вызовов до размыкания
		BreakerOpenDelay time.Duration // сколько breaker остаётся разомкнутым
	}

	Messages struct {
		DefaultLocale string
	}

	Tracing struct {
		Enabled      bool
		OTLPEndpoint string
		ServiceName  string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks             Tasks
		Server            HTTPServer
		Database          Database
		PermissionService PermissionService
		Messages          Messages
		Tracing           Tracing
		Kafka             Kafka
	}
)

const (
	defaultLocale            = "ru"
	defaultServiceName       = "orders"
	defaultPermissionTimeout = 3 * time.Second
	defaultBreakerFailures   = 5
	defaultBreakerOpenDelay  = 30 * time.Second
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	messagesInterval, err := osGetEnvDuration("BACKGROUND_MESSAGES_REFRESH_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	metricsInterval, err := osGetEnvDuration("BACKGROUND_ORDER_METRICS_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	migrateOnStart, err := osGetBool("POSTGRES_MIGRATE_ON_START")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	permissionTimeout, err := osGetEnvDuration("PERMISSION_SERVICE_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	breakerFailures, err := osGetInt("PERMISSION_SERVICE_BREAKER_FAILURES")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	breakerOpenDelay, err := osGetEnvDuration("PERMISSION_SERVICE_BREAKER_OPEN_DELAY")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	tracingEnabled, err := osGetBool("TRACING_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg := &Config{
		Tasks: Tasks{
			MessagesRefreshInterval:    messagesInterval,
			OrderStatusMetricsInterval: metricsInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:           os.Getenv("POSTGRES_HOST"),
			Port:           os.Getenv("POSTGRES_PORT"),
			User:           os.Getenv("POSTGRES_USER"),
			Password:       os.Getenv("POSTGRES_PASSWORD"),
			DBName:         os.Getenv("POSTGRES_DB"),
			SSLMode:        os.Getenv("POSTGRES_SSLMODE"),
			MigrateOnStart: migrateOnStart,
		},
		PermissionService: PermissionService{
			GRPCHost:         os.Getenv("PERMISSION_SERVICE_GRPC_HOST"),
			Timeout:          permissionTimeout,
			BreakerFailures:  uint32(breakerFailures),
			BreakerOpenDelay: breakerOpenDelay,
		},
		Messages: Messages{
			DefaultLocale: os.Getenv("MESSAGES_DEFAULT_LOCALE"),
		},
		Tracing: Tracing{
			Enabled:      tracingEnabled,
			OTLPEndpoint: os.Getenv("TRACING_OTLP_ENDPOINT"),
			ServiceName:  os.Getenv("TRACING_SERVICE_NAME"),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: orderStatusChangedTimeout,
				},
			},
		},
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Messages.DefaultLocale == "" {
		cfg.Messages.DefaultLocale = defaultLocale
	}
	if cfg.Tracing.ServiceName == "" {
		cfg.Tracing.ServiceName = defaultServiceName
	}
	if cfg.PermissionService.Timeout == 0 {
		cfg.PermissionService.Timeout = defaultPermissionTimeout
	}
	if cfg.PermissionService.BreakerFailures == 0 {
		cfg.PermissionService.BreakerFailures = defaultBreakerFailures
	}
	if cfg.PermissionService.BreakerOpenDelay == 0 {
		cfg.PermissionService.BreakerOpenDelay = defaultBreakerOpenDelay
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if err := ValidateDatabase(&cfg.Database); err != nil {
		return err
	}

	if cfg.Tasks.MessagesRefreshInterval == time.Duration(0) {
		return errors.New("BACKGROUND_MESSAGES_REFRESH_INTERVAL is required")
	}
	if cfg.Tasks.OrderStatusMetricsInterval == time.Duration(0) {
		return errors.New("BACKGROUND_ORDER_METRICS_INTERVAL is required")
	}

	if cfg.PermissionService.GRPCHost == "" {
		return errors.New("PERMISSION_SERVICE_GRPC_HOST is required")
	}

	if cfg.Tracing.Enabled && cfg.Tracing.OTLPEndpoint == "" {
		return errors.New("TRACING_OTLP_ENDPOINT is required when TRACING_ENABLED is set")
	}

	return nil
}

// ValidateDatabase нужен и воркеру, которому остальные секции не требуются.
func ValidateDatabase(db *Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

// ValidateKafka проверяет секцию Kafka, она обязательна только для воркера.
func ValidateKafka(k *Kafka) error {
	if k.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if k.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if k.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if k.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if k.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if k.Handlers.OrderStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
