package services

import (
	"sort"
	"strings"

	"github.com/YongHui-X/ecoplate-sub001/models"
)

// EmissionService resolves a product to a kg-CO2e-per-kg emission factor.
// The tables are static; there is no store behind this service.
type EmissionService struct{}

// Resolve walks the fallback chain: explicit override → product-name keyword
// (exact, then substring) → category table → default constant. It never
// fails; unknown products get the conservative default.
func (es *EmissionService) Resolve(productName, category string, explicitFactor float64) float64 {
	if explicitFactor > 0 {
		return explicitFactor
	}

	name := strings.ToLower(strings.TrimSpace(productName))
	if name != "" {
		if factor, ok := models.EmissionKeywords[name]; ok {
			return factor
		}
		// Substring pass in sorted keyword order so a name matching several
		// keywords always resolves the same way.
		keywords := make([]string, 0, len(models.EmissionKeywords))
		for keyword := range models.EmissionKeywords {
			keywords = append(keywords, keyword)
		}
		sort.Strings(keywords)
		for _, keyword := range keywords {
			if strings.Contains(name, keyword) {
				return models.EmissionKeywords[keyword]
			}
		}
	}

	if factor, ok := models.EmissionCategories[strings.ToLower(strings.TrimSpace(category))]; ok {
		return factor
	}

	return models.DefaultEmissionFactor
}
