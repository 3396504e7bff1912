package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Gateway GatewayConfig
	State   StateConfig
	MockGW  MockGWConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// GatewayConfig ubicación de la gateway HTTP que agrega los servicios backend.
// Por defecto se usa el loopback IPv4 explícito: en algunas máquinas `localhost`
// resuelve a ::1 y la gateway solo escucha en IPv4.
type GatewayConfig struct {
	BaseURL string
}

// StateConfig directorio donde la consola persiste sesión y carrito.
type StateConfig struct {
	Dir string
}

// MockGWConfig configuración de la gateway de desarrollo (cmd/mockgw).
type MockGWConfig struct {
	Host       string
	Port       int
	JWTSecret  string
	JWTIssuer  string
	Expiration int // minutos de validez del token emitido
}

// Addr devuelve la dirección de escucha (host:port).
func (c MockGWConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, GATEWAY_URL, STATE_DIR, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "nblb-console"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Gateway: GatewayConfig{
			BaseURL: getString(v, "GATEWAY_URL", "http://127.0.0.1:8222"),
		},
		State: StateConfig{
			Dir: getString(v, "STATE_DIR", defaultStateDir()),
		},
		MockGW: MockGWConfig{
			Host:       getString(v, "MOCKGW_HOST", "127.0.0.1"),
			Port:       getInt(v, "MOCKGW_PORT", 8222),
			JWTSecret:  getString(v, "JWT_SECRET", "dev-only-secret"),
			JWTIssuer:  getString(v, "JWT_ISSUER", "nblb-mockgw"),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
		},
	}

	return cfg, nil
}

// defaultStateDir resuelve ~/.nblb como directorio de estado; sin HOME se usa
// un directorio relativo al directorio de trabajo.
func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".nblb"
	}
	return filepath.Join(home, ".nblb")
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
