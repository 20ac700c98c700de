package services

import (
	"testing"

	"hot-takes-system/models"

	"github.com/stretchr/testify/require"
)

func TestClassifyHeatBoundaries(t *testing.T) {
	cases := []struct {
		name        string
		flames      int
		superFlames int
		want        models.HeatLevel
	}{
		{"zero is mild", 0, 0, models.HeatMild},
		{"score 5 stays mild", 5, 0, models.HeatMild},
		{"score 6 is hot", 6, 0, models.HeatHot},
		{"score 15 stays hot", 15, 0, models.HeatHot},
		{"score 16 is spicy", 16, 0, models.HeatSpicy},
		{"score 30 stays spicy", 30, 0, models.HeatSpicy},
		{"score 31 is chaotic", 31, 0, models.HeatChaotic},
		{"score 58 stays chaotic", 58, 0, models.HeatChaotic},
		{"score 59 stays chaotic", 59, 0, models.HeatChaotic},
		{"score 60 is inferno", 60, 0, models.HeatInferno},
		{"super flames weigh triple", 0, 20, models.HeatInferno},
		{"two super flames reach hot", 0, 2, models.HeatHot},
		{"mixed counters sum correctly", 1, 5, models.HeatSpicy},
		{"mixed chaotic", 10, 7, models.HeatChaotic},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ClassifyHeat(tc.flames, tc.superFlames))
		})
	}
}

func TestClassifyHeatMonotonic(t *testing.T) {
	tier := map[models.HeatLevel]int{
		models.HeatMild:    0,
		models.HeatHot:     1,
		models.HeatSpicy:   2,
		models.HeatChaotic: 3,
		models.HeatInferno: 4,
	}

	prev := tier[ClassifyHeat(0, 0)]
	for score := 1; score <= 120; score++ {
		current := tier[ClassifyHeat(score, 0)]
		require.GreaterOrEqual(t, current, prev, "tier regressed at score %d", score)
		prev = current
	}
}

func TestHeatScore(t *testing.T) {
	require.Equal(t, 0, HeatScore(0, 0))
	require.Equal(t, 13, HeatScore(4, 3))
}
