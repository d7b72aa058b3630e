package config

import (
	"os"
	"strconv"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Port      string
	DBDriver  string
	DBDSN     string
	TaxRateBP int
	GinMode   string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads configuration from the environment. godotenv populates the
// environment from .env before this runs, see main.
func Load() Config {
	cfg := Config{
		Port:      getenv("PORT", "8080"),
		DBDriver:  getenv("DB_DRIVER", "sqlite"),
		DBDSN:     getenv("DB_DSN", "canteen.db"),
		TaxRateBP: 500,
		GinMode:   os.Getenv("GIN_MODE"),
	}
	if v := os.Getenv("TAX_RATE_BP"); v != "" {
		if bp, err := strconv.Atoi(v); err == nil && bp >= 0 {
			cfg.TaxRateBP = bp
		}
	}
	return cfg
}

// InitDB opens the configured database. SQLite is the default; set
// DB_DRIVER=mysql with a DSN for a shared deployment.
func InitDB(cfg Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	default:
		return gorm.Open(sqlite.Open(cfg.DBDSN), &gorm.Config{})
	}
}
