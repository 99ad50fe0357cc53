package cache

import (
	"context"
	"encoding/json"
	"time"

	"rotuprint_back_end/internal/database"
	"rotuprint_back_end/internal/models"
)

const ClientCacheTTL = 5 * time.Minute

// GetClientFromCache récupère un client depuis Redis ou ScyllaDB.
// Le profil client (tarifs négociés, solde rappel, coupons consommés) est
// lu à chaque opération de panier, d'où le cache court.
func GetClientFromCache(ctx context.Context, email string) (*models.User, error) {
	key := "client:" + email

	// 1. Essayer le cache Redis
	data, err := database.Redis.Get(ctx, key).Result()
	if err == nil {
		var user models.User
		if json.Unmarshal([]byte(data), &user) == nil {
			return &user, nil
		}
	}

	// 2. Récupérer de ScyllaDB
	session, err := database.GetUsersSession()
	if err != nil {
		return nil, err
	}

	var user models.User
	var customPrices map[string]float64
	var usedCoupons []string

	err = session.Query(`SELECT user_id, email, username, password, name, role, rappel_accumulated,
		custom_prices, used_coupons, sales_rep, delegation, address, hide_prices
		FROM clients WHERE email = ?`, email).Scan(
		&user.ID, &user.Email, &user.Username, &user.Password, &user.Name, &user.Role,
		&user.RappelAccumulated, &customPrices, &usedCoupons, &user.SalesRep,
		&user.Delegation, &user.Address, &user.HidePrices)
	if err != nil {
		return nil, err
	}
	user.CustomPrices = customPrices
	user.UsedCoupons = usedCoupons

	// 3. Mettre en cache
	if jsonData, err := json.Marshal(user); err == nil {
		database.Redis.Set(ctx, key, jsonData, ClientCacheTTL)
	}

	return &user, nil
}

// InvalidateClient purge le cache après toute écriture sur le profil
// (accrual de rappel, coupon consommé, tarifs négociés modifiés)
func InvalidateClient(ctx context.Context, email string) {
	database.Redis.Del(ctx, "client:"+email)
}
