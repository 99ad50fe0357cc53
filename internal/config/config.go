package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Variables d'environnement indispensables au démarrage. Sans elles le
// serveur ne peut rien faire : on échoue tout de suite, pas à la première
// requête.
var required = []string{
	"SCYLLA_HOSTS",
	"SCYLLA_KS_PRODUCTS_KEYSPACE",
	"SCYLLA_KS_USERS_KEYSPACE",
	"SCYLLA_KS_ORDERS_KEYSPACE",
	"REDIS_HOST",
	"JWT_SECRET",
}

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}

	for _, key := range required {
		if os.Getenv(key) == "" {
			log.Fatalf("❌ Variable d'environnement manquante: %s", key)
		}
	}
}
