// services/heat.go
package services

import (
	"hot-takes-system/models"
)

// HeatScore weighs a super flame at 3× a regular flame.
func HeatScore(flames, superFlames int) int {
	return flames + superFlames*3
}

// ClassifyHeat maps reaction counters to a heat tier. Thresholds are checked
// highest first; a score on a boundary lands in the higher tier.
func ClassifyHeat(flames, superFlames int) models.HeatLevel {
	score := HeatScore(flames, superFlames)

	switch {
	case score >= 60:
		return models.HeatInferno
	case score >= 31:
		return models.HeatChaotic
	case score >= 16:
		return models.HeatSpicy
	case score >= 6:
		return models.HeatHot
	default:
		return models.HeatMild
	}
}
