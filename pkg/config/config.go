package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers de persistencia y de almacenamiento de fotos.
const (
	DBDriverPostgres = "postgres"
	DBDriverMemory   = "memory"

	UploadDriverLocal = "local"
	UploadDriverS3    = "s3"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
// Se construye una sola vez en el arranque y se pasa por referencia a los constructores.
type Config struct {
	App    AppConfig
	DB     DBConfig
	JWT    JWTConfig
	HTTP   HTTPConfig
	Upload UploadConfig
	S3     S3Config
	Events EventsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	Driver      string // postgres | memory
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	AutoMigrate bool
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig secretos y duraciones de los tokens de acceso y refresco.
type JWTConfig struct {
	Secret            string
	Expiration        time.Duration
	RefreshSecret     string
	RefreshExpiration time.Duration
	Issuer            string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host           string
	Port           int
	AllowedOrigins string // lista separada por comas o "*"
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// UploadConfig límites y destino de las fotos subidas.
type UploadConfig struct {
	Driver        string // local | s3
	Dir           string
	MaxFileSizeMB int
	MaxFiles      int
}

// MaxFileBytes tamaño máximo por archivo en bytes.
func (c UploadConfig) MaxFileBytes() int64 {
	return int64(c.MaxFileSizeMB) * 1024 * 1024
}

// S3Config bucket S3 o MinIO para las fotos cuando Upload.Driver = "s3".
type S3Config struct {
	Endpoint        string // host:port; vacío = endpoint AWS por defecto
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
}

// EventsConfig publicación de eventos del marketplace. URL vacía = publisher no-op.
type EventsConfig struct {
	RabbitMQURL string
	Exchange    string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, etc.
func Load() (*Config, error) {
	return fromViper(readViper())
}

// LoadDB lee solo la sección de base de datos; la usa ganadoctl, que no necesita secretos JWT.
func LoadDB() (DBConfig, error) {
	db := dbFromViper(readViper())
	if db.Driver != DBDriverPostgres {
		return db, fmt.Errorf("config: ganadoctl requiere DB_DRIVER=postgres")
	}
	return db, nil
}

func readViper() *viper.Viper {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func fromViper(v *viper.Viper) (*Config, error) {
	accessTTL, err := getDuration(v, "JWT_EXPIRES_IN", 15*time.Minute)
	if err != nil {
		return nil, err
	}
	refreshTTL, err := getDuration(v, "JWT_REFRESH_EXPIRES_IN", 7*24*time.Hour)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "ganadoboy-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: dbFromViper(v),
		JWT: JWTConfig{
			Secret:            getString(v, "JWT_SECRET", ""),
			Expiration:        accessTTL,
			RefreshSecret:     getString(v, "JWT_REFRESH_SECRET", ""),
			RefreshExpiration: refreshTTL,
			Issuer:            getString(v, "JWT_ISSUER", "ganadoboy"),
		},
		HTTP: HTTPConfig{
			Host:           getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:           getInt(v, "HTTP_PORT", 3000),
			AllowedOrigins: getString(v, "ALLOWED_ORIGINS", "*"),
		},
		Upload: UploadConfig{
			Driver:        getString(v, "UPLOAD_DRIVER", UploadDriverLocal),
			Dir:           getString(v, "UPLOAD_DIR", "uploads"),
			MaxFileSizeMB: getInt(v, "UPLOAD_MAX_FILE_MB", 5),
			MaxFiles:      getInt(v, "UPLOAD_MAX_FILES", 5),
		},
		S3: S3Config{
			Endpoint:        getString(v, "S3_ENDPOINT", ""),
			Region:          getString(v, "S3_REGION", "us-east-1"),
			Bucket:          getString(v, "S3_BUCKET", ""),
			AccessKeyID:     getString(v, "S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getString(v, "S3_SECRET_ACCESS_KEY", ""),
			UseSSL:          getBool(v, "S3_USE_SSL", false),
		},
		Events: EventsConfig{
			RabbitMQURL: getString(v, "RABBITMQ_URL", ""),
			Exchange:    getString(v, "RABBITMQ_EXCHANGE", "ganadoboy.marketplace"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func dbFromViper(v *viper.Viper) DBConfig {
	return DBConfig{
		Driver:      getString(v, "DB_DRIVER", DBDriverPostgres),
		DatabaseURL: getString(v, "DATABASE_URL", ""),
		Host:        getString(v, "DB_HOST", "localhost"),
		Port:        getInt(v, "DB_PORT", 5432),
		User:        getString(v, "DB_USER", "postgres"),
		Password:    getString(v, "DB_PASSWORD", ""),
		DBName:      getString(v, "DB_NAME", "ganado_bovino"),
		SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		MaxConns:    getInt(v, "DB_MAX_CONNS", 10),
		AutoMigrate: getBool(v, "DB_AUTO_MIGRATE", false),
	}
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DBDriverPostgres, DBDriverMemory:
	default:
		return fmt.Errorf("config: DB_DRIVER desconocido %q", c.DB.Driver)
	}
	switch c.Upload.Driver {
	case UploadDriverLocal:
	case UploadDriverS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("config: S3_BUCKET requerido con UPLOAD_DRIVER=s3")
		}
	default:
		return fmt.Errorf("config: UPLOAD_DRIVER desconocido %q", c.Upload.Driver)
	}
	if c.JWT.Secret == "" || c.JWT.RefreshSecret == "" {
		return fmt.Errorf("config: JWT_SECRET y JWT_REFRESH_SECRET son requeridos")
	}
	if c.JWT.Secret == c.JWT.RefreshSecret {
		return fmt.Errorf("config: JWT_SECRET y JWT_REFRESH_SECRET deben ser distintos")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}

// getDuration acepta la sintaxis de time.ParseDuration y además el sufijo "d" (días): "7d".
func getDuration(v *viper.Viper, key string, def time.Duration) (time.Duration, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	d, err := ParseDuration(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

// ParseDuration interpreta "15m", "1h30m" o "7d".
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return 0, fmt.Errorf("duración inválida %q", s)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("duración inválida %q", s)
	}
	return d, nil
}
