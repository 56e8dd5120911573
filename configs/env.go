package configs

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, reading configuration from environment")
	}
}

func EnvMongoURI() string {
	return os.Getenv("MONGO_DB_CONNECTION_STRING")
}

func EnvPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	return port
}

// EnvPaginationBaseURL is the base used when building pagination links for
// the products listing.
func EnvPaginationBaseURL() string {
	base := os.Getenv("PAGINATION_BASE_URL")
	if base == "" {
		base = "http://localhost:3001/products"
	}
	return base
}
