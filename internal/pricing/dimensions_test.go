package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDimensions(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		width  float64
		length float64
		ok     bool
	}{
		{"séparateur virgule", "1,22x50", 1.22, 50, true},
		{"séparateur point", "1.52x25", 1.52, 25, true},
		{"centimètres majuscule", "152X50", 1.52, 50, true},
		{"centimètres dans un nom", "Vinilo monomerico 137x50 brillo", 1.37, 50, true},
		{"compact 5 chiffres", "12250", 1.22, 50, true},
		{"compact dans une référence", "VM-15225-B", 1.52, 25, true},
		{"compact longueur 05", "10605", 1.06, 5, true},
		{"longueur hors liste blanche", "03529", 0, 0, false},
		{"noyé dans un nombre plus long", "1225034", 0, 0, false},
		{"aucun motif", "tinta eco-solvente cian", 0, 0, false},
		{"vide", "", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dims, ok := ExtractDimensions(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.width, dims.Width, 1e-9)
				assert.InDelta(t, tt.length, dims.Length, 1e-9)
			}
		})
	}
}

func TestExtractDimensionsSeparatorWinsOverCompact(t *testing.T) {
	// Les deux formes présentes : la forme explicite gagne
	dims, ok := ExtractDimensions("13750 vinilo 1,06x25")
	assert.True(t, ok)
	assert.InDelta(t, 1.06, dims.Width, 1e-9)
	assert.InDelta(t, 25.0, dims.Length, 1e-9)
}
