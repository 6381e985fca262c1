package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados.
const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y .env).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	JWT   JWTConfig
	Store StoreConfig
	DB    DBConfig
	Redis RedisConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT. Los tokens los emite el sistema de usuarios externo.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// StoreConfig selecciona el backend de las colecciones.
type StoreConfig struct {
	Driver    string // memory | file | postgres | redis
	FilePath  string
	KeyPrefix string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
}

// ConnectionString devuelve DATABASE_URL si está definido, si no el DSN construido.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN arma el connection string con URL encoding para la contraseña.
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

// RedisConfig configuración de Redis para el almacén compartido.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	LockTTL  time.Duration
}

// Load lee la configuración desde variables de entorno. Un archivo .env en el directorio
// actual se carga primero sin pisar variables ya definidas.
func Load() (*Config, error) {
	_ = godotenv.Load() // ignoramos error si no existe

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "mb-vendas"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 720),
			Issuer:     getString(v, "JWT_ISSUER", "mb-vendas"),
		},
		Store: StoreConfig{
			Driver:    strings.ToLower(getString(v, "STORE_DRIVER", StoreFile)),
			FilePath:  getString(v, "STORE_FILE_PATH", "./data/pdv.json"),
			KeyPrefix: getString(v, "STORE_KEY_PREFIX", "mb_vendas_"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "mb_vendas"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 4),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
			LockTTL:  time.Duration(getInt(v, "REDIS_LOCK_TTL_SECONDS", 10)) * time.Second,
		},
	}

	switch cfg.Store.Driver {
	case StoreMemory, StoreFile, StorePostgres, StoreRedis:
	default:
		return nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.Store.Driver)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return n
}
