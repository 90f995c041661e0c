package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Shell   ShellConfig
	Catalog CatalogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
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

// ShellConfig configuración del layout de administración.
type ShellConfig struct {
	Title          string // título declarado en el <head> de cada página
	WideOffset     string // clase de margen con la barra expandida
	NarrowOffset   string // clase de margen con la barra colapsada
	IdleTTLMinutes int    // minutos de inactividad antes de desmontar (0 = nunca)
}

// IdleTTL devuelve la inactividad máxima como duración.
func (c ShellConfig) IdleTTL() time.Duration {
	return time.Duration(c.IdleTTLMinutes) * time.Minute
}

// CatalogConfig selecciona la tabla versionada de categorías y marcas.
type CatalogConfig struct {
	Version string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, SHELL_TITLE, CATALOG_VERSION, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "tienda-admin"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Shell: ShellConfig{
			Title:          getString(v, "SHELL_TITLE", "Panel de Administración"),
			WideOffset:     getString(v, "SHELL_WIDE_OFFSET", "ml-64"),
			NarrowOffset:   getString(v, "SHELL_NARROW_OFFSET", "ml-20"),
			IdleTTLMinutes: getInt(v, "SHELL_IDLE_TTL_MINUTES", 30),
		},
		Catalog: CatalogConfig{
			Version: getString(v, "CATALOG_VERSION", "v1"),
		},
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("config: HTTP_PORT inválido: %d", cfg.HTTP.Port)
	}
	if cfg.Shell.IdleTTLMinutes < 0 {
		return nil, fmt.Errorf("config: SHELL_IDLE_TTL_MINUTES no puede ser negativo")
	}
	if cfg.Shell.WideOffset == cfg.Shell.NarrowOffset {
		return nil, fmt.Errorf("config: SHELL_WIDE_OFFSET y SHELL_NARROW_OFFSET deben ser distintos")
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
