package user

import (
	"net/http"
	"time"

	"rotuprint_back_end/internal/cache"
	"rotuprint_back_end/internal/database"
	"rotuprint_back_end/internal/models"
	"rotuprint_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ================== AUTH LOCALE ==================

func Register(c *gin.Context) {
	var input struct {
		Name       string `json:"name" binding:"required"`
		Email      string `json:"email" binding:"required,email"`
		Username   string `json:"username" binding:"required"`
		Password   string `json:"password" binding:"required,min=8"`
		Delegation string `json:"delegation"`
		Address    string `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	// email déjà pris ?
	var existing string
	if err := session.Query(`SELECT email FROM clients WHERE email = ? LIMIT 1`, input.Email).Scan(&existing); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Un compte avec cet email existe déjà"})
		return
	}

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)

	user := models.User{
		ID:         uuid.NewString(),
		Name:       input.Name,
		Email:      input.Email,
		Username:   input.Username,
		Password:   string(hashedPassword),
		Role:       "client",
		Delegation: input.Delegation,
		Address:    input.Address,
	}

	now := time.Now()
	if err := session.Query(`INSERT INTO clients (email, user_id, username, password, name, role,
		rappel_accumulated, custom_prices, used_coupons, sales_rep, delegation, address, hide_prices, created_at)
		VALUES (?, ?, ?, ?, ?, ?, 0, {}, [], '', ?, ?, false, ?)`,
		user.Email, user.ID, user.Username, user.Password, user.Name, user.Role,
		user.Delegation, user.Address, now).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}

	if err := session.Query(`INSERT INTO clients_by_username (username, email) VALUES (?, ?)`,
		user.Username, user.Email).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":  token,
		"userId": user.ID,
		"email":  user.Email,
		"name":   user.Name,
		"role":   user.Role,
	})
}

func Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var email string
	if err := session.Query(`SELECT email FROM clients_by_username WHERE username = ?`,
		input.Username).Scan(&email); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiant ou mot de passe incorrect"})
		return
	}

	user, err := cache.GetClientFromCache(c.Request.Context(), email)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiant ou mot de passe incorrect"})
		return
	}

	token, err := utils.GenerateJWT(*user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":              token,
		"userId":             user.ID,
		"email":              user.Email,
		"name":               user.Name,
		"role":               user.Role,
		"rappel_accumulated": user.RappelAccumulated,
		"hide_prices":        user.HidePrices,
	})
}

// Logout vide la session de panier : le panier ne survit pas à la déconnexion
func Logout(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	if err := cache.DeleteCartSession(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Déconnecté"})
}
