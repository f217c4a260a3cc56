package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/cliente-integral-api/internal/domain"
)

// Drivers de fonte suportados
const (
	SourceDriverCSV      = "csv"
	SourceDriverPostgres = "postgres"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Source        Source        `mapstructure:",squash"`
	Residential   Residential   `mapstructure:",squash"`
	Commercial    Commercial    `mapstructure:",squash"`
	SourceRefresh SourceRefresh `mapstructure:",squash"`
	Export        Export        `mapstructure:",squash"`
	Populations   []Population  `mapstructure:"-"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Source struct {
	Driver string `mapstructure:"source_driver"`
}

type Residential struct {
	Name           string   `mapstructure:"residential_name"`
	CustomersPath  string   `mapstructure:"residential_customers_path"`
	DimensionsPath string   `mapstructure:"residential_dimensions_path"`
	Areas          []string `mapstructure:"residential_areas"`
}

type Commercial struct {
	Name           string   `mapstructure:"commercial_name"`
	CustomersPath  string   `mapstructure:"commercial_customers_path"`
	DimensionsPath string   `mapstructure:"commercial_dimensions_path"`
	Areas          []string `mapstructure:"commercial_areas"`
	Enabled        bool     `mapstructure:"commercial_enabled"`
}

type SourceRefresh struct {
	CronSchedule string `mapstructure:"source_refresh_cron"`
	Enabled      bool   `mapstructure:"source_refresh_enabled"`
}

type Export struct {
	FileName string `mapstructure:"export_file_name"`
}

// Population é uma variante de esquema com seu par de fontes
type Population struct {
	Name           string
	CustomersPath  string
	DimensionsPath string
	Areas          []string
}

// PopulationByName busca a população configurada pelo nome
func (c *Config) PopulationByName(name string) (Population, bool) {
	for _, p := range c.Populations {
		if p.Name == name {
			return p, true
		}
	}
	return Population{}, false
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/cliente_integral?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SOURCE_DRIVER", SourceDriverCSV)

	viper.SetDefault("RESIDENTIAL_NAME", domain.PopulationDefault)
	viper.SetDefault("RESIDENTIAL_CUSTOMERS_PATH", "data/base_clientes.csv")
	viper.SetDefault("RESIDENTIAL_DIMENSIONS_PATH", "data/dimensiones_todas.csv")
	viper.SetDefault("RESIDENTIAL_AREAS", "brilla,consumo,sad")

	viper.SetDefault("COMMERCIAL_NAME", "comercial")
	viper.SetDefault("COMMERCIAL_CUSTOMERS_PATH", "data/base_clientes_comercial.csv")
	viper.SetDefault("COMMERCIAL_DIMENSIONS_PATH", "data/dimensiones_comercial.csv")
	viper.SetDefault("COMMERCIAL_AREAS", "brilla,consumo,sad,seguros")
	viper.SetDefault("COMMERCIAL_ENABLED", false)

	viper.SetDefault("SOURCE_REFRESH_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("SOURCE_REFRESH_ENABLED", false)

	viper.SetDefault("EXPORT_FILE_NAME", "promedios_dimensiones_clientes.csv")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Populations = buildPopulations(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica a consistência das populações configuradas
func (c *Config) Validate() error {
	if c.Source.Driver != SourceDriverCSV && c.Source.Driver != SourceDriverPostgres {
		return fmt.Errorf("config: source_driver inválido: %q", c.Source.Driver)
	}

	if len(c.Populations) == 0 {
		return fmt.Errorf("config: nenhuma população configurada")
	}

	seen := make(map[string]struct{}, len(c.Populations))
	for _, p := range c.Populations {
		if p.Name == "" {
			return fmt.Errorf("config: população sem nome")
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("config: população duplicada: %s", p.Name)
		}
		seen[p.Name] = struct{}{}

		if len(p.Areas) == 0 {
			return fmt.Errorf("config: população %s sem áreas", p.Name)
		}
		if c.Source.Driver == SourceDriverCSV && (p.CustomersPath == "" || p.DimensionsPath == "") {
			return fmt.Errorf("config: população %s sem caminhos de arquivo", p.Name)
		}
	}

	return nil
}

func buildPopulations(c *Config) []Population {
	populations := []Population{
		{
			Name:           c.Residential.Name,
			CustomersPath:  c.Residential.CustomersPath,
			DimensionsPath: c.Residential.DimensionsPath,
			Areas:          normalizeAreas(c.Residential.Areas),
		},
	}

	if c.Commercial.Enabled {
		populations = append(populations, Population{
			Name:           c.Commercial.Name,
			CustomersPath:  c.Commercial.CustomersPath,
			DimensionsPath: c.Commercial.DimensionsPath,
			Areas:          normalizeAreas(c.Commercial.Areas),
		})
	}

	return populations
}

func normalizeAreas(areas []string) []string {
	out := make([]string, 0, len(areas))
	for _, a := range areas {
		a = strings.TrimSpace(a)
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
