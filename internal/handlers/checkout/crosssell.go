package checkout

import (
	"log"
	"net/http"

	"rotuprint_back_end/internal/cache"
	"rotuprint_back_end/internal/database"
	"rotuprint_back_end/internal/models"
	"rotuprint_back_end/internal/pricing"

	"github.com/gin-gonic/gin"
)

// GetBundleOffers - GET /api/checkout/cross-sell
// Pour chaque vinyle du panier, les laminés assortis (même laize, même
// marque). Offre de présentation uniquement : rien ne change tant que le
// client n'accepte pas.
func GetBundleOffers(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	session, err := cache.GetCartSession(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	catalog, err := listCatalog()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture catalogue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"offers": pricing.FindBundleOffers(session, catalog)})
}

// AcceptBundleOffer - POST /api/checkout/cross-sell/accept
func AcceptBundleOffer(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	var req struct {
		VinylLineID       string `json:"vinyl_line_id" binding:"required"`
		LaminateReference string `json:"laminate_reference" binding:"required"`
		Finish            string `json:"finish" binding:"required"` // "gloss" | "matte"
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	session, err := cache.GetCartSession(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	laminate, err := fetchCatalogProduct(req.LaminateReference)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Laminé introuvable: " + req.LaminateReference})
		return
	}

	item, err := pricing.AcceptBundle(session, req.VinylLineID, laminate, req.Finish)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := cache.SaveCartSession(c.Request.Context(), session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	log.Printf("✅ Lot vinyle+laminé accepté: %s pour %s", req.LaminateReference, req.VinylLineID)
	c.JSON(http.StatusOK, gin.H{
		"item":  item,
		"items": session.Items,
	})
}

// listCatalog lit le catalogue entier pour la recherche de candidats
func listCatalog() ([]models.Product, error) {
	session, err := database.GetProductsSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT reference, name, category, subcategory, is_flexible, price,
		price_per_m2, width, length, brand FROM products`).Iter()

	var products []models.Product
	var p models.Product
	for iter.Scan(&p.Reference, &p.Name, &p.Category, &p.Subcategory, &p.IsFlexible,
		&p.Price, &p.PricePerM2, &p.Width, &p.Length, &p.Brand) {
		products = append(products, p)
	}
	return products, iter.Close()
}

func fetchCatalogProduct(reference string) (models.Product, error) {
	var p models.Product

	session, err := database.GetProductsSession()
	if err != nil {
		return p, err
	}

	err = session.Query(`SELECT reference, name, category, subcategory, is_flexible, price,
		price_per_m2, width, length, brand FROM products WHERE reference = ?`, reference).Scan(
		&p.Reference, &p.Name, &p.Category, &p.Subcategory, &p.IsFlexible,
		&p.Price, &p.PricePerM2, &p.Width, &p.Length, &p.Brand)
	return p, err
}
