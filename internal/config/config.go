package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Fusion    Fusion    `mapstructure:",squash"`
	Retention Retention `mapstructure:",squash"`
	SecretKey string    `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Fusion configura el procesamiento del export de surtidores.
type Fusion struct {
	// MaxBombas es el tamaño de la flota. Las totalizaciones por bomba
	// siempre emiten 1..MaxBombas, incluso bombas sin transacciones.
	MaxBombas int `mapstructure:"fusion_max_bombas"`
}

// Retention configura la purga nocturna de transacciones Fusion antiguas.
type Retention struct {
	CronSchedule string `mapstructure:"retention_cron"`
	Days         int    `mapstructure:"retention_days"`
	Enabled      bool   `mapstructure:"retention_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/cuadres")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// La estación tiene 10 bombas hoy; si se amplía la pista solo cambia
	// esta variable.
	viper.SetDefault("FUSION_MAX_BOMBAS", 10)

	viper.SetDefault("RETENTION_CRON", "0 2 * * *") // Todos los días a las 2am
	viper.SetDefault("RETENTION_DAYS", 365)
	viper.SetDefault("RETENTION_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primero cargar el archivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variables cargadas por godotenv (viper no pudo leer .env):", err)
	} else {
		logrus.Info("Archivo .env leído por viper con éxito")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile intenta cargar el archivo .env desde las ubicaciones conocidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("No se pudo obtener el directorio actual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Archivo .env cargado con éxito desde:", location)
			return
		}
	}

	logrus.Warn("No se pudo cargar el archivo .env desde ninguna ubicación conocida")
}
