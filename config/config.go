package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	Port              string
	MongoURI          string
	DBName            string
	GeminiAPIKey      string
	AWSRegion         string
	AWSBucketName     string
	SwatchDir         string
	JWTSecret         string
	AdminPasswordHash string
	SendGridAPIKey    string
	EmailFromAddress  string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	MongoURI = os.Getenv("MONGO_URI")
	if MongoURI == "" {
		MongoURI = "mongodb://localhost:27017/"
	}

	DBName = os.Getenv("MONGO_DB")
	if DBName == "" {
		DBName = "mirror"
	}

	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	AWSRegion = os.Getenv("AWS_REGION")
	if AWSRegion == "" {
		AWSRegion = "us-east-1"
	}
	AWSBucketName = os.Getenv("AWS_BUCKET_NAME")

	SwatchDir = os.Getenv("SWATCH_DIR")
	if SwatchDir == "" {
		SwatchDir = "public/swatches"
	}

	// Dashboard auth is optional: when ADMIN_PASSWORD_HASH is empty the
	// session endpoints are served without authentication (kiosk mode).
	JWTSecret = os.Getenv("JWT_SECRET")
	AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")

	SendGridAPIKey = os.Getenv("SENDGRID_API_KEY")
	EmailFromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	if EmailFromAddress == "" {
		EmailFromAddress = "no-reply@mirror-kiosk.app"
	}
}
