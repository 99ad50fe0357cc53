package product

import (
	"log"
	"net/http"
	"time"

	"rotuprint_back_end/internal/database"
	"rotuprint_back_end/internal/models"
	"rotuprint_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

// GetProducts - GET /api/products - catalogue complet
func GetProducts(c *gin.Context) {
	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT reference, name, category, subcategory, is_flexible, price,
		price_per_m2, width, length, unit, in_stock, brand, finish, backing, adhesive,
		material_type, weight, description FROM products`).Iter()

	var products []models.Product
	var p models.Product
	for iter.Scan(&p.Reference, &p.Name, &p.Category, &p.Subcategory, &p.IsFlexible, &p.Price,
		&p.PricePerM2, &p.Width, &p.Length, &p.Unit, &p.InStock, &p.Brand,
		&p.Attributes.Finish, &p.Attributes.Backing, &p.Attributes.Adhesive,
		&p.Attributes.MaterialType, &p.Weight, &p.Description) {
		products = append(products, p)
	}
	if err := iter.Close(); err != nil {
		log.Println("❌ Erreur récupération produits:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération produits"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    len(products),
	})
}

// SearchProducts - GET /api/products/search?q=... via Elasticsearch
func SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre de recherche requis"})
		return
	}

	products, err := services.SearchProducts(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur recherche produits"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    len(products),
	})
}

// UpsertProduct - PUT /api/admin/products/:reference (Admin)
// Clé de conflit = référence : création ou écrasement, même requête
func UpsertProduct(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.Reference = c.Param("reference")
	if p.Reference == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le champ 'reference' est obligatoire"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := upsertProduct(session, &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement produit: " + err.Error()})
		return
	}

	// 🔄 Indexation Elasticsearch
	go services.IndexProduct(p)

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit enregistré",
		"product": p,
	})
}

// DeleteAllProducts - DELETE /api/admin/products (Admin)
// Purge complète avant réimport du catalogue fournisseur
func DeleteAllProducts(c *gin.Context) {
	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := session.Query(`TRUNCATE products`).Exec(); err != nil {
		log.Printf("❌ Erreur purge catalogue: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la purge du catalogue"})
		return
	}

	services.DeleteProductIndex()

	log.Println("🧹 Catalogue purgé")
	c.JSON(http.StatusOK, gin.H{"message": "Catalogue purgé avec succès"})
}

func upsertProduct(session *gocql.Session, p *models.Product) error {
	now := time.Now()
	if p.CreatedAt == nil {
		p.CreatedAt = &now
	}
	p.UpdatedAt = &now

	return session.Query(`INSERT INTO products (reference, name, category, subcategory, is_flexible,
		price, price_per_m2, width, length, unit, in_stock, brand, finish, backing, adhesive,
		material_type, weight, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Reference, p.Name, p.Category, p.Subcategory, p.IsFlexible,
		p.Price, p.PricePerM2, p.Width, p.Length, p.Unit, p.InStock, p.Brand,
		p.Attributes.Finish, p.Attributes.Backing, p.Attributes.Adhesive,
		p.Attributes.MaterialType, p.Weight, p.Description, p.CreatedAt, p.UpdatedAt).Exec()
}
