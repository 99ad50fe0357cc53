package checkout

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"rotuprint_back_end/internal/cache"
	"rotuprint_back_end/internal/database"
	"rotuprint_back_end/internal/models"
	"rotuprint_back_end/internal/pricing"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

// ApplyCoupon - POST /api/checkout/coupon
// Applique un code promo à la session. Un seul coupon à la fois : en
// appliquer un nouveau remplace le précédent. Aucun effet persistant
// avant la finalisation.
func ApplyCoupon(c *gin.Context) {
	userID := c.GetString("user_id")
	email := c.GetString("email")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	var req struct {
		Code string `json:"code" binding:"required"`
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

	code := pricing.NormalizeCouponCode(req.Code)
	coupon, err := fetchCouponByCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Code coupon invalide"})
		return
	}

	client := loadClient(c.Request.Context(), email)
	validation := pricing.ValidateCoupon(coupon, pricing.Subtotal(session), client, time.Now())
	if !validation.IsValid {
		// Le refus ne touche ni le panier ni un coupon déjà appliqué
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.ErrorMessage})
		return
	}

	session.CouponCode = validation.Code
	if err := cache.SaveCartSession(c.Request.Context(), session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	log.Printf("✅ Coupon appliqué: %s (%.2f€ de réduction)", validation.Code, validation.Discount)
	c.JSON(http.StatusOK, gin.H{
		"code":     validation.Code,
		"type":     validation.Type,
		"discount": validation.Discount,
	})
}

// RemoveCoupon - DELETE /api/checkout/coupon
func RemoveCoupon(c *gin.Context) {
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

	session.CouponCode = ""
	// Sans coupon pourcentage, le rachat de rappel n'est plus éligible
	session.UseRappel = false
	if err := cache.SaveCartSession(c.Request.Context(), session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Coupon retiré"})
}

// ================== ADMIN ==================

// CreateCoupon - Créer un nouveau coupon (Admin seulement)
func CreateCoupon(c *gin.Context) {
	var req struct {
		Code          string    `json:"code" binding:"required"`
		Type          string    `json:"type" binding:"required"` // "percentage", "fixed"
		Value         float64   `json:"value" binding:"required"`
		MinAmount     float64   `json:"min_amount"`
		MaxUses       int       `json:"max_uses"`
		OncePerClient bool      `json:"once_per_client"`
		ExpiresAt     time.Time `json:"expires_at" binding:"required"`
		StartsAt      time.Time `json:"starts_at"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides: " + err.Error()})
		return
	}

	if req.Type != "percentage" && req.Type != "fixed" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Type de coupon invalide"})
		return
	}

	if req.Type == "percentage" && (req.Value <= 0 || req.Value > 100) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pourcentage doit être entre 1 et 100"})
		return
	}

	if req.Type == "fixed" && req.Value <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Montant fixe doit être positif"})
		return
	}

	ordersSession, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	code := pricing.NormalizeCouponCode(req.Code)

	// Vérifier si le code existe déjà
	var existingCode string
	if err := ordersSession.Query(`SELECT code FROM coupons WHERE code = ? LIMIT 1`, code).Scan(&existingCode); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Ce code coupon existe déjà"})
		return
	}

	userID := c.GetString("user_id")
	now := time.Now()
	if req.StartsAt.IsZero() {
		req.StartsAt = now
	}

	coupon := models.Coupon{
		ID:            gocql.TimeUUID(),
		Code:          code,
		Type:          req.Type,
		Value:         req.Value,
		MinAmount:     req.MinAmount,
		MaxUses:       req.MaxUses,
		UsedCount:     0,
		OncePerClient: req.OncePerClient,
		StartsAt:      req.StartsAt,
		ExpiresAt:     req.ExpiresAt,
		IsActive:      true,
		CreatedBy:     userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	insertQuery := `
		INSERT INTO coupons (
			id, code, type, value, min_amount, max_uses, used_count,
			once_per_client, starts_at, expires_at, is_active, created_by, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	if err := ordersSession.Query(insertQuery,
		coupon.ID, coupon.Code, coupon.Type, coupon.Value, coupon.MinAmount,
		coupon.MaxUses, coupon.UsedCount, coupon.OncePerClient,
		coupon.StartsAt, coupon.ExpiresAt, coupon.IsActive, coupon.CreatedBy,
		coupon.CreatedAt, coupon.UpdatedAt,
	).Exec(); err != nil {
		log.Printf("❌ Erreur création coupon: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création du coupon"})
		return
	}

	log.Printf("✅ Coupon créé: %s", coupon.Code)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Coupon créé avec succès",
		"coupon":  coupon,
	})
}

// GetAllCoupons - Récupérer tous les coupons (Admin)
func GetAllCoupons(c *gin.Context) {
	ordersSession, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := ordersSession.Query(`SELECT id, code, type, value, min_amount, max_uses, used_count,
		once_per_client, starts_at, expires_at, is_active, created_by, created_at, updated_at
		FROM coupons`).Iter()

	var coupons []models.Coupon
	var coupon models.Coupon
	for iter.Scan(&coupon.ID, &coupon.Code, &coupon.Type, &coupon.Value,
		&coupon.MinAmount, &coupon.MaxUses, &coupon.UsedCount, &coupon.OncePerClient,
		&coupon.StartsAt, &coupon.ExpiresAt, &coupon.IsActive, &coupon.CreatedBy,
		&coupon.CreatedAt, &coupon.UpdatedAt) {
		coupons = append(coupons, coupon)
	}

	if err := iter.Close(); err != nil {
		log.Printf("❌ Erreur récupération coupons: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"coupons": coupons,
		"total":   len(coupons),
	})
}

// UpdateCoupon - Mettre à jour un coupon
func UpdateCoupon(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID coupon invalide"})
		return
	}

	var req struct {
		IsActive  *bool      `json:"is_active"`
		MaxUses   *int       `json:"max_uses"`
		ExpiresAt *time.Time `json:"expires_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	updates := []string{}
	values := []interface{}{}

	if req.IsActive != nil {
		updates = append(updates, "is_active = ?")
		values = append(values, *req.IsActive)
	}
	if req.MaxUses != nil {
		updates = append(updates, "max_uses = ?")
		values = append(values, *req.MaxUses)
	}
	if req.ExpiresAt != nil {
		updates = append(updates, "expires_at = ?")
		values = append(values, *req.ExpiresAt)
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Aucune mise à jour fournie"})
		return
	}

	updates = append(updates, "updated_at = ?")
	values = append(values, time.Now())
	values = append(values, id)

	query := fmt.Sprintf("UPDATE coupons SET %s WHERE id = ?", strings.Join(updates, ", "))

	ordersSession, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := ordersSession.Query(query, values...).Exec(); err != nil {
		log.Printf("❌ Erreur mise à jour coupon: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la mise à jour"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Coupon mis à jour avec succès"})
}

// DeleteCoupon - Supprimer un coupon
func DeleteCoupon(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID coupon invalide"})
		return
	}

	ordersSession, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := ordersSession.Query(`DELETE FROM coupons WHERE id = ?`, id).Exec(); err != nil {
		log.Printf("❌ Erreur suppression coupon: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la suppression"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Coupon supprimé avec succès"})
}
