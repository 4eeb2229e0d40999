package entity

import (
	"fmt"
	"strings"

	"github.com/jhoicas/personnel-api/internal/domain"
)

// Enrichment selecciona datos auxiliares a adjuntar al cargar una entidad.
type Enrichment string

const (
	// EnrichRoles adjunta los roles del usuario en la misma lectura lógica.
	EnrichRoles Enrichment = "ROLES"
)

// Enrichments devuelve todos los enrichments soportados.
func Enrichments() []Enrichment {
	return []Enrichment{EnrichRoles}
}

// ParseEnrichment convierte un string a Enrichment sin distinguir mayúsculas.
func ParseEnrichment(value string) (Enrichment, bool) {
	for _, e := range Enrichments() {
		if strings.EqualFold(string(e), strings.TrimSpace(value)) {
			return e, true
		}
	}
	return "", false
}

// ParseEnrichments convierte una lista de tokens. Un token desconocido hace
// fallar la llamada completa con ErrInvalidEnrichment; nunca se ignora en
// silencio. Tokens vacíos y repetidos se descartan.
func ParseEnrichments(values []string) ([]Enrichment, error) {
	var out []Enrichment
	seen := make(map[Enrichment]bool)
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		e, ok := ParseEnrichment(v)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidEnrichment, v)
		}
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	return out, nil
}

// String implementa fmt.Stringer.
func (e Enrichment) String() string {
	return string(e)
}
