// Package config loads runtime configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// APIURL is the Sharthi backend base URL.
	APIURL string

	// AssetsURL is the Cloudinary upload base URL for the account.
	AssetsURL string

	// UploadPreset is the unsigned Cloudinary upload preset.
	UploadPreset string

	// Home overrides the local state directory when set.
	Home string
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		APIURL:       getenv("SHARTHI_API_URL", "https://sharthi-api.onrender.com"),
		AssetsURL:    getenv("SHARTHI_ASSETS_URL", "https://api.cloudinary.com/v1_1/sharthi"),
		UploadPreset: getenv("SHARTHI_UPLOAD_PRESET", "sharthi_unsigned"),
		Home:         os.Getenv("SHARTHI_HOME"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
