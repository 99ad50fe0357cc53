package pricing

import (
	"testing"

	"rotuprint_back_end/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestEstimateWeightVinyl(t *testing.T) {
	p := models.Product{
		Reference:  "VM12250",
		Name:       "Vinilo monomerico blanco",
		IsFlexible: true,
		Width:      1.22,
		Length:     50,
	}
	// 61 m² × 130 g/m² = 7.93 kg
	assert.InDelta(t, 7.93, EstimateWeight(p), 1e-9)
}

func TestEstimateWeightLaminate(t *testing.T) {
	p := models.Product{
		Reference:  "LM10625",
		Name:       "Laminado brillo",
		IsFlexible: true,
	}
	// Dimensions retrouvées depuis la référence : 1.06 × 25 = 26.5 m² × 100 g
	assert.InDelta(t, 2.65, EstimateWeight(p), 1e-9)
}

func TestEstimateWeightLonaFromDescription(t *testing.T) {
	p := models.Product{
		Reference:   "LN-0001",
		Name:        "Lona frontlit",
		Description: "Lona blanca 510 gr cara frontal",
		Width:       1.6,
		Length:      50,
	}
	// 80 m² × 510 g = 40.8 kg
	assert.InDelta(t, 40.8, EstimateWeight(p), 1e-9)
}

func TestEstimateWeightLonaWithoutGramsKeepsStored(t *testing.T) {
	p := models.Product{
		Name:        "Lona frontlit",
		Description: "sans grammage indiqué",
		Width:       1.6,
		Length:      50,
		Weight:      12.5,
	}
	// Grammage introuvable → la valeur stockée n'est pas écrasée
	assert.Equal(t, 12.5, EstimateWeight(p))
}

func TestEstimateWeightDimensionFallbackOrder(t *testing.T) {
	// La référence ne matche pas, le nom si
	p := models.Product{
		Reference: "ZZ-9",
		Name:      "Vinilo impresion 1,37x50",
	}
	// 1.37 × 50 = 68.5 m² × 130 g = 8.905 kg
	assert.InDelta(t, 8.905, EstimateWeight(p), 1e-9)
}

func TestEstimateWeightUnknownKeepsStored(t *testing.T) {
	p := models.Product{
		Reference: "ACC-042",
		Name:      "Cutter profesional",
		Weight:    0.2,
	}
	assert.Equal(t, 0.2, EstimateWeight(p))

	// Aucune dimension, aucun poids stocké → zéro
	assert.Zero(t, EstimateWeight(models.Product{Name: "Cinta de aplicacion"}))
}
