package user

import (
	"log"
	"net/http"

	"rotuprint_back_end/internal/database"
	"rotuprint_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

// ✅ Récupère toutes les commandes de l'utilisateur connecté
func GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT order_id, user_id, created_at, subtotal, coupon_code, coupon_discount,
		rappel_discount, tax, shipping_method, shipping_cost, total, status, sales_rep, observations
		FROM orders_by_user WHERE user_id = ?`, userID).Iter()

	var orders []models.Order
	var o models.Order
	for iter.Scan(&o.ID, &o.UserID, &o.CreatedAt, &o.Subtotal, &o.CouponCode, &o.CouponDiscount,
		&o.RappelDiscount, &o.Tax, &o.ShippingMethod, &o.ShippingCost, &o.Total, &o.Status,
		&o.SalesRep, &o.Observations) {
		orders = append(orders, o)
	}
	if err := iter.Close(); err != nil {
		log.Println("❌ Erreur récupération commandes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// ✅ Récupère une commande spécifique par ID, lignes comprises
func GetOrderByID(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	orderID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID commande invalide"})
		return
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var o models.Order
	err = session.Query(`SELECT order_id, user_id, created_at, subtotal, coupon_code, coupon_discount,
		rappel_discount, tax, shipping_method, shipping_cost, total, status, sales_rep, observations
		FROM orders WHERE order_id = ?`, orderID).Scan(
		&o.ID, &o.UserID, &o.CreatedAt, &o.Subtotal, &o.CouponCode, &o.CouponDiscount,
		&o.RappelDiscount, &o.Tax, &o.ShippingMethod, &o.ShippingCost, &o.Total, &o.Status,
		&o.SalesRep, &o.Observations)
	// ✅ Sécurité : on vérifie que la commande appartient bien à l'utilisateur
	if err != nil || o.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	iter := session.Query(`SELECT line_id, reference, name, is_flexible, width, length, price_per_m2,
		quantity, calculated_price FROM order_lines WHERE order_id = ?`, orderID).Iter()

	var it models.CartItem
	for iter.Scan(&it.LineID, &it.Reference, &it.Name, &it.IsFlexible, &it.Width, &it.Length,
		&it.PricePerM2, &it.Quantity, &it.CalculatedPrice) {
		o.Items = append(o.Items, it)
	}
	if err := iter.Close(); err != nil {
		log.Println("❌ Erreur récupération lignes de commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commande"})
		return
	}

	c.JSON(http.StatusOK, o)
}
