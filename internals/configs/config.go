package configs

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config is built once at startup and passed explicitly to every
// component. Nothing in the app reads the environment after Load.
type Config struct {
	Port    string
	BaseDir string

	AdminUser     string
	AdminPass     string
	CaptchaSecret string
	JWTSecret     string

	RecaptchaSecret  string
	XBearerToken     string
	OpenRouterAPIKey string
	OpenRouterModel  string
	AIAPIBase        string
}

// =======================
// ENV LOADER
// =======================
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system ENV")
	} else {
		log.Println("✅ .env file loaded")
	}

	cfg := &Config{
		Port:             GetEnv("PORT", "8005"),
		BaseDir:          GetEnv("BASE_DIR", "."),
		AdminUser:        GetEnv("ADMIN_USER", "admin"),
		AdminPass:        GetEnv("ADMIN_PASS", "admin"),
		CaptchaSecret:    GetEnv("CAPTCHA_SECRET", "airesq"),
		JWTSecret:        GetEnv("JWT_SECRET"),
		RecaptchaSecret:  GetEnv("RECAPTCHA_PRIVATE_KEY"),
		XBearerToken:     GetEnv("X_BEARER_TOKEN"),
		OpenRouterAPIKey: GetEnv("OPENROUTER_API_KEY"),
		OpenRouterModel:  GetEnv("OPENROUTER_MODEL", "openrouter/auto"),
		AIAPIBase:        GetEnv("AI_API_BASE", "http://127.0.0.1:5001"),
	}

	if cfg.JWTSecret == "" {
		// Per-process secret: restarting the server logs every operator out.
		cfg.JWTSecret = randomHex(32)
		log.Println("⚠️ JWT_SECRET not set, generated a per-process secret")
	}
	if cfg.RecaptchaSecret == "" {
		log.Println("⚠️ RECAPTCHA_PRIVATE_KEY not set, reCAPTCHA verification disabled")
	}

	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func randomHex(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("❌ crypto/rand failed: %v", err)
	}
	return hex.EncodeToString(buf)
}

// =======================
// DATA LAYOUT
// =======================
// One directory tree under BaseDir. The path convention is load-bearing:
// record deletion and image serving both derive paths from it.

func (c *Config) DataDir() string        { return filepath.Join(c.BaseDir, "crowd_data") }
func (c *Config) SubmissionsDir() string { return filepath.Join(c.DataDir(), "submissions") }
func (c *Config) ImagesDir() string      { return filepath.Join(c.DataDir(), "images") }
func (c *Config) ThumbnailsDir() string  { return filepath.Join(c.DataDir(), "thumbnails") }
func (c *Config) IntelDir() string       { return filepath.Join(c.DataDir(), "intel") }
func (c *Config) VolunteersDir() string  { return filepath.Join(c.DataDir(), "volunteers") }
func (c *Config) ScrapedNewsDir() string { return filepath.Join(c.DataDir(), "scraped_news") }

func (c *Config) EnsureDataDirs() error {
	dirs := []string{
		c.DataDir(),
		c.SubmissionsDir(),
		c.ImagesDir(),
		c.ThumbnailsDir(),
		c.IntelDir(),
		c.VolunteersDir(),
		c.ScrapedNewsDir(),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	return nil
}
