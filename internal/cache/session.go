package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rotuprint_back_end/internal/database"
	"rotuprint_back_end/internal/models"

	"github.com/google/uuid"
)

// La session de panier vit 30 jours dans Redis, comme le panier lui-même
const CartSessionTTL = 30 * 24 * time.Hour

func cartKey(userID string) string {
	return "cart:" + userID
}

// GetCartSession récupère la session de panier d'un client depuis Redis.
// Absente → session vide prête à l'emploi, avec sa clé d'idempotence.
func GetCartSession(ctx context.Context, userID string) (*models.CartSession, error) {
	data, err := database.Redis.Get(ctx, cartKey(userID)).Result()
	if err != nil || data == "" {
		return &models.CartSession{
			UserID:        userID,
			SubmissionKey: uuid.NewString(),
		}, nil
	}

	var session models.CartSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("erreur décodage session panier: %v", err)
	}
	if session.SubmissionKey == "" {
		session.SubmissionKey = uuid.NewString()
	}
	return &session, nil
}

// SaveCartSession écrit la session en Redis. C'est le seul point d'écriture :
// un handler qui échoue avant d'appeler SaveCartSession laisse l'état intact.
func SaveCartSession(ctx context.Context, session *models.CartSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("erreur sérialisation session panier: %v", err)
	}
	return database.Redis.Set(ctx, cartKey(session.UserID), data, CartSessionTTL).Err()
}

// DeleteCartSession supprime la session : après commande ou à la déconnexion
func DeleteCartSession(ctx context.Context, userID string) error {
	return database.Redis.Del(ctx, cartKey(userID)).Err()
}

// ClaimSubmission pose le verrou d'idempotence d'une finalisation de
// commande. Retourne false si cette clé a déjà été consommée : l'accrual de
// rappel et le marquage du coupon ne doivent jamais être rejoués.
func ClaimSubmission(ctx context.Context, submissionKey string) (bool, error) {
	return database.Redis.SetNX(ctx, "order_submitted:"+submissionKey, "1", CartSessionTTL).Result()
}
