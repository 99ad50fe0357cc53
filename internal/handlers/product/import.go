package product

import (
	"log"
	"net/http"
	"regexp"
	"strings"

	"rotuprint_back_end/internal/database"
	"rotuprint_back_end/internal/models"
	"rotuprint_back_end/internal/pricing"
	"rotuprint_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

var subcategoryCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// normalizeSubcategory - minuscules + underscores, ASCII uniquement
func normalizeSubcategory(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = subcategoryCleaner.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// BulkImport - POST /api/admin/products/import (Admin)
// Import en masse du catalogue fournisseur, clé de conflit = référence.
// Passe d'enrichissement sur chaque ligne avant écriture : dimensions
// retrouvées depuis la référence ou le nom quand elles manquent, poids
// estimé depuis le grammage matière. Cet outillage tourne avant les
// opérations de panier, jamais pendant le checkout.
func BulkImport(c *gin.Context) {
	var req struct {
		Products []models.Product `json:"products" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides: " + err.Error()})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	imported := 0
	enriched := 0
	var failed []string

	for i := range req.Products {
		p := &req.Products[i]
		if p.Reference == "" {
			failed = append(failed, p.Name)
			continue
		}

		p.Subcategory = normalizeSubcategory(p.Subcategory)

		// Dimensions manquantes : référence d'abord, nom ensuite
		if p.IsFlexible && (p.Width == 0 || p.Length == 0) {
			if dims, ok := pricing.ExtractDimensions(p.Reference); ok {
				p.Width, p.Length = dims.Width, dims.Length
				enriched++
			} else if dims, ok := pricing.ExtractDimensions(p.Name); ok {
				p.Width, p.Length = dims.Width, dims.Length
				enriched++
			}
		}

		// Poids estimé depuis surface × grammage ; une estimation nulle
		// n'écrase jamais un poids déjà renseigné
		p.Weight = pricing.EstimateWeight(*p)

		if err := upsertProduct(session, p); err != nil {
			log.Printf("❌ Erreur import produit %s: %v", p.Reference, err)
			failed = append(failed, p.Reference)
			continue
		}

		services.IndexProduct(*p)
		imported++
	}

	log.Printf("✅ Import catalogue: %d produits, %d enrichis, %d échecs",
		imported, enriched, len(failed))

	c.JSON(http.StatusOK, gin.H{
		"imported": imported,
		"enriched": enriched,
		"failed":   failed,
	})
}
