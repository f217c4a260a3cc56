package segmenting

import (
	"github.com/vfg2006/cliente-integral-api/internal/domain"
)

// FilterByAreas retorna os clientes marcados como membros de TODAS as áreas selecionadas
func FilterByAreas(customers []domain.CustomerRecord, selectedAreas []string) (map[string]struct{}, error) {
	if len(selectedAreas) == 0 {
		return nil, domain.NewInvalidSelectionError("nenhuma área selecionada")
	}

	ids := make(map[string]struct{})
	for _, customer := range customers {
		if isMemberOfAll(customer, selectedAreas) {
			ids[customer.ID] = struct{}{}
		}
	}

	return ids, nil
}

func isMemberOfAll(customer domain.CustomerRecord, areas []string) bool {
	for _, area := range areas {
		if !customer.IsMember(area) {
			return false
		}
	}
	return true
}
