package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cliente-integral-api/internal/config"
	"github.com/vfg2006/cliente-integral-api/internal/domain"
)

func TestBuildCustomers(t *testing.T) {
	areas := []string{"brilla", "consumo", "sad"}

	tests := []struct {
		name        string
		memberships []MembershipRow
		expected    []domain.CustomerRecord
	}{
		{
			name: "Agrupa por cliente na ordem da primeira ocorrência",
			memberships: []MembershipRow{
				{CustomerID: "B", Area: "brilla", Member: true},
				{CustomerID: "A", Area: "brilla", Member: true},
				{CustomerID: "B", Area: "consumo", Member: true},
				{CustomerID: "A", Area: "sad", Member: true},
			},
			expected: []domain.CustomerRecord{
				{ID: "B", Areas: map[string]bool{"brilla": true, "consumo": true, "sad": false}},
				{ID: "A", Areas: map[string]bool{"brilla": true, "consumo": false, "sad": true}},
			},
		},
		{
			name: "Linhas duplicadas - basta uma marcada como membro",
			memberships: []MembershipRow{
				{CustomerID: "A", Area: "brilla", Member: true},
				{CustomerID: "A", Area: "brilla", Member: false},
			},
			expected: []domain.CustomerRecord{
				{ID: "A", Areas: map[string]bool{"brilla": true, "consumo": false, "sad": false}},
			},
		},
		{
			name:        "Sem linhas",
			memberships: nil,
			expected:    []domain.CustomerRecord{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildCustomers(tt.memberships, areas))
		})
	}
}

func TestCustomerSourceRepository_LoadUnknownPopulation(t *testing.T) {
	cfg := &config.Config{
		Populations: []config.Population{{Name: "residencial", Areas: []string{"brilla"}}},
	}
	repo := NewCustomerSourceRepository(nil, cfg)

	dataset, err := repo.Load(context.Background(), "industrial")

	require.Nil(t, dataset)
	assert.ErrorIs(t, err, domain.ErrSourceLoad)
	assert.ErrorIs(t, err, domain.ErrPopulationNotFound)
}
