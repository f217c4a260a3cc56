package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cliente-integral-api/internal/domain"
)

func validConfig() *Config {
	return &Config{
		Source: Source{Driver: SourceDriverCSV},
		Populations: []Population{
			{
				Name:           "residencial",
				CustomersPath:  "data/base_clientes.csv",
				DimensionsPath: "data/dimensiones_todas.csv",
				Areas:          []string{"brilla", "consumo", "sad"},
			},
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "Configuração válida", mutate: func(c *Config) {}},
		{
			name:    "Driver desconhecido",
			mutate:  func(c *Config) { c.Source.Driver = "parquet" },
			wantErr: "source_driver",
		},
		{
			name:    "Sem populações",
			mutate:  func(c *Config) { c.Populations = nil },
			wantErr: "nenhuma população",
		},
		{
			name:    "População duplicada",
			mutate:  func(c *Config) { c.Populations = append(c.Populations, c.Populations[0]) },
			wantErr: "duplicada",
		},
		{
			name:    "População sem áreas",
			mutate:  func(c *Config) { c.Populations[0].Areas = nil },
			wantErr: "sem áreas",
		},
		{
			name:    "Driver csv exige caminhos",
			mutate:  func(c *Config) { c.Populations[0].DimensionsPath = "" },
			wantErr: "caminhos",
		},
		{
			name: "Driver postgres dispensa caminhos",
			mutate: func(c *Config) {
				c.Source.Driver = SourceDriverPostgres
				c.Populations[0].CustomersPath = ""
				c.Populations[0].DimensionsPath = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildPopulations(t *testing.T) {
	cfg := &Config{
		Residential: Residential{
			Name:           "residencial",
			CustomersPath:  "r_clientes.csv",
			DimensionsPath: "r_dimensiones.csv",
			Areas:          []string{" brilla", "consumo ", "", "sad"},
		},
		Commercial: Commercial{
			Name:           "comercial",
			CustomersPath:  "c_clientes.csv",
			DimensionsPath: "c_dimensiones.csv",
			Areas:          []string{"brilla", "seguros"},
		},
	}

	populations := buildPopulations(cfg)
	require.Len(t, populations, 1)
	assert.Equal(t, []string{"brilla", "consumo", "sad"}, populations[0].Areas)

	cfg.Commercial.Enabled = true
	populations = buildPopulations(cfg)
	require.Len(t, populations, 2)
	assert.Equal(t, "comercial", populations[1].Name)
	assert.Equal(t, []string{"brilla", "seguros"}, populations[1].Areas)
}

func TestConfig_PopulationByName(t *testing.T) {
	cfg := validConfig()

	p, ok := cfg.PopulationByName("residencial")
	assert.True(t, ok)
	assert.Equal(t, "data/base_clientes.csv", p.CustomersPath)

	_, ok = cfg.PopulationByName("comercial")
	assert.False(t, ok)
}

func TestSetDefaults(t *testing.T) {
	SetDefaults()

	assert.Equal(t, domain.PopulationDefault, viper.GetString("RESIDENTIAL_NAME"))
	assert.Equal(t, SourceDriverCSV, viper.GetString("SOURCE_DRIVER"))
	assert.False(t, viper.GetBool("COMMERCIAL_ENABLED"))
}
