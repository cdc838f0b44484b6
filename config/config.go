package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	BotToken      string
	BotUsername   string
	GeminiAPIKey  string
	GeminiModel   string
	MongoURI      string
	MongoDB       string
	AdminID       int64
	AWSRegion     string
	AWSBucketName string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	BotToken = os.Getenv("BOT_TOKEN")
	if BotToken == "" {
		log.Fatal("BOT_TOKEN is required")
	}

	BotUsername = os.Getenv("BOT_USERNAME")

	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	GeminiModel = os.Getenv("GEMINI_MODEL")
	if GeminiModel == "" {
		GeminiModel = "gemini-1.5-flash"
	}

	MongoURI = os.Getenv("MONGO_URI")
	MongoDB = os.Getenv("MONGO_DB")
	if MongoDB == "" {
		MongoDB = "bitewise"
	}

	if v := os.Getenv("ADMIN_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Printf("Invalid ADMIN_ID %q, admin commands disabled", v)
		} else {
			AdminID = id
		}
	}

	AWSRegion = os.Getenv("AWS_REGION")
	AWSBucketName = os.Getenv("AWS_BUCKET_NAME")
}
