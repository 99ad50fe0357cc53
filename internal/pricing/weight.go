package pricing

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"rotuprint_back_end/internal/models"
)

// Grammages par m² des matières souples connues
const (
	gramsVinyl    = 130.0
	gramsLaminate = 100.0
)

// "510 gr", "440gr" dans une description libre de bâche
var lonaGramsPattern = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*gr`)

// EstimateWeight estime le poids d'expédition (kg, 3 décimales) d'un
// produit en rouleau à partir de ses dimensions et de son grammage.
// Si les dimensions ou le grammage sont introuvables, le poids stocké est
// renvoyé tel quel : une estimation à zéro n'écrase jamais une valeur réelle.
func EstimateWeight(p models.Product) float64 {
	width, length := p.Width, p.Length

	if width == 0 || length == 0 {
		// Référence d'abord, nom ensuite, premier succès gagnant
		if dims, ok := ExtractDimensions(p.Reference); ok {
			width, length = dims.Width, dims.Length
		} else if dims, ok := ExtractDimensions(p.Name); ok {
			width, length = dims.Width, dims.Length
		}
	}

	if width == 0 || length == 0 {
		return p.Weight
	}

	grams := gramsPerM2(p)
	if grams == 0 {
		return p.Weight
	}

	area := width * length
	return math.Round(area*grams/1000*1000) / 1000
}

// gramsPerM2 résout le grammage par mot-clé sur le nom ou la sous-catégorie
func gramsPerM2(p models.Product) float64 {
	haystack := strings.ToLower(p.Name + " " + p.Subcategory)

	switch {
	case strings.Contains(haystack, "vinil"):
		return gramsVinyl
	case strings.Contains(haystack, "laminad"):
		return gramsLaminate
	case strings.Contains(haystack, "lona"):
		if m := lonaGramsPattern.FindStringSubmatch(strings.ToLower(p.Description)); m != nil {
			raw := strings.ReplaceAll(m[1], ",", ".")
			if g, err := strconv.ParseFloat(raw, 64); err == nil {
				return g
			}
		}
		return 0
	}
	return 0
}
