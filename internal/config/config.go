package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/sportsline-dashboard/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                  string
	ServiceName             string
	ServiceVersion          string
	HTTPAddr                string
	ReadTimeout             time.Duration
	WriteTimeout            time.Duration
	ShutdownTimeout         time.Duration
	DBURL                   string
	DBDisabled              bool
	DBDisablePreparedBinary bool
	DBMaxOpenConns          int
	CacheEnabled            bool
	CacheTTL                time.Duration
	PhotoProbeEnabled       bool
	PhotoProbeTimeout       time.Duration
	PhotoProbeCacheTTL      time.Duration
	PhotoCircuitEnabled     bool
	PhotoCircuitFailures    int
	PhotoCircuitOpenTimeout time.Duration
	CORSAllowedOrigins      []string
	RateLimitRPS            float64
	RateLimitBurst          int
	DisplayLocale           string
	DisplayTimezone         *time.Location
	LatestResultsWorkers    int
	SwaggerEnabled          bool
	MetricsEnabled          bool
	PprofEnabled            bool
	PprofAddr               string
	UptraceEnabled          bool
	UptraceDSN              string
	PyroscopeEnabled        bool
	PyroscopeServerAddress  string
	PyroscopeAppName        string
	PyroscopeAuthToken      string
	PyroscopeBasicAuthUser  string
	PyroscopeBasicAuthPass  string
	PyroscopeUploadRate     time.Duration
	LogLevel                logging.Level
	LogFormat               logging.Format
}

// LoadDotEnv loads the given env files (default ".env") into the process
// environment. Missing files are skipped and variables that are already set
// win over file values.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", file, err)
		}
	}
	return nil
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}
	metricsEnabled, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse METRICS_ENABLED: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}
	shutdownTimeout, err := time.ParseDuration(getEnv("APP_SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_SHUTDOWN_TIMEOUT: %w", err)
	}
	if shutdownTimeout <= 0 {
		return Config{}, fmt.Errorf("APP_SHUTDOWN_TIMEOUT must be > 0")
	}

	dbDisabled, err := strconv.ParseBool(getEnv("DB_DISABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLED: %w", err)
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	dbMaxOpenConns, err := getEnvAsInt("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_MAX_OPEN_CONNS: %w", err)
	}
	if dbMaxOpenConns < 1 {
		return Config{}, fmt.Errorf("DB_MAX_OPEN_CONNS must be >= 1")
	}
	dbURL := strings.TrimSpace(getEnv("DATABASE_URL", getEnv("DB_URL", "")))
	if dbURL == "" {
		dbURL = buildDBURL(
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", "postgres"),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_NAME", "sportsline"),
			getEnv("DB_SSLMODE", "disable"),
		)
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	photoProbeEnabled, err := strconv.ParseBool(getEnv("PHOTO_PROBE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PHOTO_PROBE_ENABLED: %w", err)
	}
	photoProbeTimeout, err := time.ParseDuration(getEnv("PHOTO_PROBE_TIMEOUT", "2s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PHOTO_PROBE_TIMEOUT: %w", err)
	}
	if photoProbeTimeout <= 0 {
		return Config{}, fmt.Errorf("PHOTO_PROBE_TIMEOUT must be > 0")
	}
	photoProbeCacheTTL, err := time.ParseDuration(getEnv("PHOTO_PROBE_CACHE_TTL", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PHOTO_PROBE_CACHE_TTL: %w", err)
	}
	photoCircuitEnabled, err := strconv.ParseBool(getEnv("PHOTO_PROBE_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PHOTO_PROBE_CIRCUIT_ENABLED: %w", err)
	}
	photoCircuitFailures, err := getEnvAsInt("PHOTO_PROBE_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse PHOTO_PROBE_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if photoCircuitFailures < 1 {
		return Config{}, fmt.Errorf("PHOTO_PROBE_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	photoCircuitOpenTimeout, err := time.ParseDuration(getEnv("PHOTO_PROBE_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PHOTO_PROBE_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if photoCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("PHOTO_PROBE_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}

	rateLimitRPS, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "50"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_RPS: %w", err)
	}
	if rateLimitRPS < 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS must be >= 0")
	}
	rateLimitBurst, err := getEnvAsInt("RATE_LIMIT_BURST", 100)
	if err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_BURST: %w", err)
	}
	if rateLimitRPS > 0 && rateLimitBurst < 1 {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST must be >= 1 when RATE_LIMIT_RPS > 0")
	}

	displayLocale, err := parseDisplayLocale(getEnv("DISPLAY_LOCALE", "ko-KR"))
	if err != nil {
		return Config{}, err
	}
	displayTimezone, err := time.LoadLocation(getEnv("DISPLAY_TIMEZONE", "Asia/Seoul"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DISPLAY_TIMEZONE: %w", err)
	}

	latestWorkers, err := getEnvAsInt("LATEST_RESULTS_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse LATEST_RESULTS_WORKERS: %w", err)
	}
	if latestWorkers < 1 {
		return Config{}, fmt.Errorf("LATEST_RESULTS_WORKERS must be >= 1")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	logFormatDefault := string(logging.FormatConsole)
	if appEnv != EnvDev {
		logFormatDefault = string(logging.FormatJSON)
	}
	logFormat, err := parseLogFormat(getEnv("APP_LOG_FORMAT", logFormatDefault))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                  appEnv,
		ServiceName:             getEnv("APP_SERVICE_NAME", "sportsline-dashboard-api"),
		ServiceVersion:          getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:             readTimeout,
		WriteTimeout:            writeTimeout,
		ShutdownTimeout:         shutdownTimeout,
		DBURL:                   dbURL,
		DBDisabled:              dbDisabled,
		DBDisablePreparedBinary: dbDisablePreparedBinary,
		DBMaxOpenConns:          dbMaxOpenConns,
		CacheEnabled:            cacheEnabled,
		CacheTTL:                cacheTTL,
		PhotoProbeEnabled:       photoProbeEnabled,
		PhotoProbeTimeout:       photoProbeTimeout,
		PhotoProbeCacheTTL:      photoProbeCacheTTL,
		PhotoCircuitEnabled:     photoCircuitEnabled,
		PhotoCircuitFailures:    photoCircuitFailures,
		PhotoCircuitOpenTimeout: photoCircuitOpenTimeout,
		CORSAllowedOrigins:      splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		RateLimitRPS:            rateLimitRPS,
		RateLimitBurst:          rateLimitBurst,
		DisplayLocale:           displayLocale,
		DisplayTimezone:         displayTimezone,
		LatestResultsWorkers:    latestWorkers,
		SwaggerEnabled:          swaggerEnabled,
		MetricsEnabled:          metricsEnabled,
		PprofEnabled:            pprofEnabled,
		PprofAddr:               pprofAddr,
		UptraceEnabled:          uptraceEnabled,
		UptraceDSN:              uptraceDSN,
		PyroscopeEnabled:        pyroscopeEnabled,
		PyroscopeServerAddress:  pyroscopeServerAddress,
		PyroscopeAuthToken:      strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:  strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPass:  strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:     pyroscopeUploadRate,
		LogLevel:                parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		LogFormat:               logFormat,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func buildDBURL(user, password, host, port, name, sslMode string) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(strings.TrimSpace(user), password),
		Host:   net.JoinHostPort(strings.TrimSpace(host), strings.TrimSpace(port)),
		Path:   "/" + strings.TrimSpace(name),
	}
	if mode := strings.TrimSpace(sslMode); mode != "" {
		u.RawQuery = url.Values{"sslmode": []string{mode}}.Encode()
	}
	return u.String()
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseLogFormat(v string) (logging.Format, error) {
	switch logging.Format(strings.ToLower(strings.TrimSpace(v))) {
	case logging.FormatJSON:
		return logging.FormatJSON, nil
	case logging.FormatConsole:
		return logging.FormatConsole, nil
	default:
		return "", fmt.Errorf("invalid APP_LOG_FORMAT %q: valid values are %s, %s", v, logging.FormatJSON, logging.FormatConsole)
	}
}

func parseDisplayLocale(v string) (string, error) {
	switch value := strings.TrimSpace(v); value {
	case "ko-KR", "en-US":
		return value, nil
	default:
		return "", fmt.Errorf("invalid DISPLAY_LOCALE %q: valid values are ko-KR, en-US", v)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
