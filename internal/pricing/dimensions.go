package pricing

import (
	"regexp"
	"strconv"
	"strings"
)

// Dimensions d'un rouleau, en mètres
type Dimensions struct {
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
}

var (
	// Forme explicite avec séparateur : "1,22x50", "152X50"
	sepDimPattern = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*[xX]\s*(\d+)`)

	// Forme compacte 5 chiffres : 3 chiffres de laize + longueur standard.
	// La liste blanche de longueurs (50, 25, 10, 05, 30) évite les faux
	// positifs sur des codes produit quelconques à 5 chiffres.
	compactDimPattern = regexp.MustCompile(`(?:^|[^0-9])(\d{3})(50|25|10|05|30)(?:[^0-9]|$)`)
)

// ExtractDimensions retrouve laize et longueur dans un texte libre
// (référence ou nom de produit). Heuristique best-effort : un faux négatif
// est acceptable (l'appelant retombe sur les dimensions stockées), les faux
// positifs de la forme compacte sont limités par la liste blanche.
// La forme avec séparateur est essayée en premier, premier match gagnant.
func ExtractDimensions(text string) (Dimensions, bool) {
	if m := sepDimPattern.FindStringSubmatch(text); m != nil {
		raw := strings.ReplaceAll(m[1], ",", ".")
		width, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Dimensions{}, false
		}
		// Une laize ≥ 10 est exprimée en centimètres ("152" → 1.52 m),
		// sinon elle est déjà en mètres ("1.22")
		if width >= 10 {
			width = width / 100
		}
		length, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return Dimensions{}, false
		}
		return Dimensions{Width: width, Length: length}, true
	}

	if m := compactDimPattern.FindStringSubmatch(text); m != nil {
		width, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Dimensions{}, false
		}
		length, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return Dimensions{}, false
		}
		return Dimensions{Width: width / 100, Length: length}, true
	}

	return Dimensions{}, false
}
