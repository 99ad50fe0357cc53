package checkout

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"rotuprint_back_end/internal/cache"
	"rotuprint_back_end/internal/database"
	"rotuprint_back_end/internal/models"
	"rotuprint_back_end/internal/pricing"
	"rotuprint_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

// Finalize - POST /api/checkout/finalize
// Transforme la session de panier en commande persistée. Séquence stricte :
// upsert client → entête de commande → lignes → email, chaque étape
// dépendant de la précédente. Pas de rollback compensatoire en cas d'échec
// partiel : l'erreur est remontée avec son détail pour relance manuelle.
// L'identifiant de commande dérive de la clé d'idempotence de la session,
// une resoumission réécrit la même ligne. L'accrual de rappel et le
// marquage du coupon sont verrouillés par cette clé : appliqués exactement
// une fois, à la confirmation de la création, jamais rejoués.
func Finalize(c *gin.Context) {
	userID := c.GetString("user_id")
	email := c.GetString("email")
	if userID == "" || email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	ctx := c.Request.Context()

	session, err := cache.GetCartSession(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}
	if len(session.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
		return
	}

	var req struct {
		Observations string `json:"observations"`
	}
	_ = c.ShouldBindJSON(&req)

	// Profil client frais : le solde rappel débité doit être le vrai
	cache.InvalidateClient(ctx, email)
	client, err := cache.GetClientFromCache(ctx, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture client", "details": err.Error()})
		return
	}

	// Revalidation du coupon contre l'état courant : la sélection de
	// session est spéculative, jamais supposée encore valide
	validation := sessionCouponValidation(session, client)
	if session.CouponCode != "" && !validation.IsValid {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.ErrorMessage})
		return
	}

	totals := pricing.ComputeTotals(session, validation, client.RappelAccumulated)

	orderUUID, err := uuid.Parse(session.SubmissionKey)
	if err != nil {
		orderUUID = uuid.New()
	}
	orderID := gocql.UUID(orderUUID)
	now := time.Now()

	usersSession, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}
	ordersSession, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	// ✅ 1. Upsert du client (clé = email)
	if err := usersSession.Query(`UPDATE clients SET name = ?, delegation = ?, address = ?, updated_at = ?
		WHERE email = ?`, client.Name, client.Delegation, client.Address, now, email).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement client", "details": err.Error()})
		return
	}

	// ✅ 2. Entête de commande
	insertOrder := `INSERT INTO orders (order_id, user_id, created_at, subtotal, coupon_code,
		coupon_discount, rappel_discount, tax, shipping_method, shipping_cost, total, status,
		sales_rep, observations) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if err := ordersSession.Query(insertOrder,
		orderID, userID, now, totals.Subtotal, session.CouponCode,
		totals.CouponDiscount, totals.RappelDiscount, totals.Tax,
		session.ShippingMethod, totals.ShippingCost, totals.Total,
		models.OrderStatusPending, client.SalesRep, req.Observations).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création commande", "details": err.Error()})
		return
	}
	if err := ordersSession.Query(`INSERT INTO orders_by_user (user_id, order_id, created_at, subtotal,
		coupon_code, coupon_discount, rappel_discount, tax, shipping_method, shipping_cost, total,
		status, sales_rep, observations) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, orderID, now, totals.Subtotal, session.CouponCode,
		totals.CouponDiscount, totals.RappelDiscount, totals.Tax,
		session.ShippingMethod, totals.ShippingCost, totals.Total,
		models.OrderStatusPending, client.SalesRep, req.Observations).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création commande", "details": err.Error()})
		return
	}

	// ✅ 3. Lignes de commande (snapshots figés du panier)
	for _, it := range session.Items {
		if err := ordersSession.Query(`INSERT INTO order_lines (order_id, line_id, reference, name,
			is_flexible, width, length, price_per_m2, quantity, calculated_price)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			orderID, it.LineID, it.Reference, it.Name, it.IsFlexible, it.Width, it.Length,
			it.PricePerM2, it.Quantity, it.CalculatedPrice).Exec(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":    "Erreur enregistrement lignes de commande",
				"details":  err.Error(),
				"order_id": orderID.String(),
			})
			return
		}
	}

	// ✅ 4. Effets exactement-une-fois : débit du rappel racheté, accrual
	// sur le net, marquage du coupon. Verrouillés par la clé d'idempotence.
	claimed, err := cache.ClaimSubmission(ctx, session.SubmissionKey)
	if err != nil {
		log.Printf("⚠️ Verrou d'idempotence indisponible pour %s: %v", orderID, err)
	}
	if claimed {
		accrual := pricing.RappelAccrual(totals.NetSubtotal)
		newBalance := client.RappelAccumulated - totals.RappelDiscount + accrual
		if newBalance < 0 {
			newBalance = 0
		}
		if err := usersSession.Query(`UPDATE clients SET rappel_accumulated = ? WHERE email = ?`,
			newBalance, email).Exec(); err != nil {
			log.Printf("❌ Erreur mise à jour solde rappel pour %s: %v", email, err)
		}

		if validation.IsValid {
			markCouponUsed(ordersSession, usersSession, validation.Code, email, client)
		}
		log.Printf("💳 Rappel: -%.2f€ rachetés, +%.2f€ accrual (solde %.2f€) pour %s",
			totals.RappelDiscount, accrual, newBalance, email)
	} else if err == nil {
		log.Printf("⚠️ Soumission déjà traitée, effets rappel/coupon non rejoués: %s", orderID)
	}
	cache.InvalidateClient(ctx, email)

	// ✅ 5. Panier vidé après soumission réussie
	if err := cache.DeleteCartSession(ctx, userID); err != nil {
		log.Printf("⚠️ Erreur vidage panier pour %s: %v", userID, err)
	}

	// ✅ 6. Email de confirmation (après persistance ; l'échec n'annule rien)
	fields := map[string]string{
		"Commande":       orderID.String(),
		"Sous-total":     fmt.Sprintf("%.2f€", totals.Subtotal),
		"Remise coupon":  fmt.Sprintf("%.2f€", totals.CouponDiscount),
		"Remise rappel":  fmt.Sprintf("%.2f€", totals.RappelDiscount),
		"TVA 21%":        fmt.Sprintf("%.2f€", totals.Tax),
		"Livraison":      fmt.Sprintf("%.2f€", totals.ShippingCost),
		"Total":          fmt.Sprintf("%.2f€", totals.Total),
		"Nombre de refs": fmt.Sprintf("%d", len(session.Items)),
	}
	if err := utils.SendOrderConfirmation(email, fields); err != nil {
		log.Printf("❌ Erreur envoi email de confirmation à %s: %v", email, err)
	} else {
		log.Printf("📧 Email de confirmation envoyé: %s (commande: %s)", email, orderID)
	}

	log.Printf("🧾 Commande créée: %s (%.2f€) pour %s", orderID, totals.Total, email)
	c.JSON(http.StatusCreated, gin.H{
		"order_id": orderID.String(),
		"totals":   totals,
		"status":   models.OrderStatusPending,
	})
}

// markCouponUsed incrémente le compteur global et, pour un coupon à usage
// unique, l'ajoute aux coupons consommés du client
func markCouponUsed(ordersSession, usersSession *gocql.Session, code, email string, client *models.User) {
	coupon, err := fetchCouponByCode(code)
	if err != nil {
		log.Printf("❌ Coupon introuvable au marquage: %s: %v", code, err)
		return
	}

	if err := ordersSession.Query(`UPDATE coupons SET used_count = ?, updated_at = ? WHERE id = ?`,
		coupon.UsedCount+1, time.Now(), coupon.ID).Exec(); err != nil {
		log.Printf("❌ Erreur incrément utilisation coupon %s: %v", code, err)
	}

	if coupon.OncePerClient {
		if err := usersSession.Query(`UPDATE clients SET used_coupons = used_coupons + ? WHERE email = ?`,
			[]string{code}, email).Exec(); err != nil {
			log.Printf("❌ Erreur marquage coupon consommé pour %s: %v", email, err)
		}
	}

	log.Printf("✅ Coupon consommé: %s par %s", code, client.ID)
}
