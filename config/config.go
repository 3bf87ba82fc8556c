package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort        string
	TesseractDataPath string
	MaxFileSize       int64
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	tesseractDataPath := os.Getenv("TESSDATA_PREFIX")
	if tesseractDataPath == "" {
		tesseractDataPath = "/usr/share/tesseract-ocr/5/tessdata/"
	}

	maxFileSize := int64(10 * 1024 * 1024) // 10 MB
	if v := os.Getenv("MAX_FILE_SIZE"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			maxFileSize = parsed
		}
	}

	return &Config{
		ServerPort:        serverPort,
		TesseractDataPath: tesseractDataPath,
		MaxFileSize:       maxFileSize,
	}
}
