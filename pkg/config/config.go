// Package config centraliza la configuración de la sesión (lectura vía
// Viper desde env y opcionalmente archivo) y los datos semilla del
// inventario. La semilla es configuración, no estado derivado: la sesión
// se re-siembra con ella en cada arranque.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación.
type Config struct {
	App    AppConfig
	Log    LogConfig
	Export ExportConfig
	Alerts AlertsConfig
	Seed   SeedConfig
}

// AppConfig configuración general.
type AppConfig struct {
	Env    string // development, production
	Name   string // título del restaurante en reportes
	Locale string // locale BCP 47 para ordenar nombres ("en", "es", ...)
}

// LogConfig configuración del logger.
type LogConfig struct {
	Level string
}

// ExportConfig configuración de los exportadores.
type ExportConfig struct {
	Dir      string // directorio donde se escriben CSV/PDF/HTML
	Currency string // etiqueta de moneda en reportes, ej "Rs."
}

// AlertsConfig configuración de las notificaciones de stock bajo.
type AlertsConfig struct {
	Enabled bool
}

// SeedConfig origen de los datos semilla.
type SeedConfig struct {
	File string // YAML opcional; vacío o inexistente usa la semilla embebida
}

// SeedItem un ítem de la semilla inicial (name/stock/unit/threshold/cost).
type SeedItem struct {
	Name      string  `mapstructure:"name"`
	Stock     float64 `mapstructure:"stock"`
	Unit      string  `mapstructure:"unit"`
	Threshold float64 `mapstructure:"threshold"`
	Cost      float64 `mapstructure:"cost"`
}

// Load lee la configuración desde variables de entorno y opcionalmente
// desde .env / config.yaml en el directorio actual. Las env vars tienen
// prioridad.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig() // ignoramos error si no existe

	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "Toss in F11")
	v.SetDefault("APP_LOCALE", "en")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("EXPORT_DIR", ".")
	v.SetDefault("EXPORT_CURRENCY", "Rs.")
	v.SetDefault("ALERTS_ENABLED", true)
	v.SetDefault("SEED_FILE", "")

	cfg := &Config{
		App: AppConfig{
			Env:    v.GetString("APP_ENV"),
			Name:   v.GetString("APP_NAME"),
			Locale: v.GetString("APP_LOCALE"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Export: ExportConfig{
			Dir:      v.GetString("EXPORT_DIR"),
			Currency: v.GetString("EXPORT_CURRENCY"),
		},
		Alerts: AlertsConfig{
			Enabled: v.GetBool("ALERTS_ENABLED"),
		},
		Seed: SeedConfig{
			File: v.GetString("SEED_FILE"),
		},
	}
	return cfg, nil
}

// LoadSeed devuelve los ítems semilla. Con SEED_FILE definido lee ese YAML
// (clave "items"); si no, aplica la semilla embebida de la pizzería.
func LoadSeed(cfg SeedConfig) ([]SeedItem, error) {
	if cfg.File == "" {
		return defaultSeed(), nil
	}

	v := viper.New()
	v.SetConfigFile(cfg.File)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("semilla: leer %s: %w", cfg.File, err)
	}
	var items []SeedItem
	if err := v.UnmarshalKey("items", &items); err != nil {
		return nil, fmt.Errorf("semilla: parsear %s: %w", cfg.File, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("semilla: %s no define items", cfg.File)
	}
	return items, nil
}

func defaultSeed() []SeedItem {
	return []SeedItem{
		{Name: "Pizza Dough", Stock: 50, Unit: "units", Threshold: 10, Cost: 0.80},
		{Name: "Mozzarella Cheese", Stock: 20, Unit: "kg", Threshold: 5, Cost: 9.50},
		{Name: "Tomato Sauce", Stock: 15, Unit: "liters", Threshold: 5, Cost: 2.20},
		{Name: "Pepperoni", Stock: 10, Unit: "kg", Threshold: 2, Cost: 12.00},
		{Name: "Mushrooms", Stock: 5, Unit: "kg", Threshold: 1, Cost: 4.00},
		{Name: "Olives", Stock: 3, Unit: "kg", Threshold: 2, Cost: 7.00},
		{Name: "Onions", Stock: 10, Unit: "kg", Threshold: 3, Cost: 1.50},
		{Name: "Green Peppers", Stock: 7, Unit: "kg", Threshold: 2, Cost: 3.50},
	}
}
