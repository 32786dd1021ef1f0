package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Addr      string `envconfig:"ADDR" default:":8080"`
	DBDSN     string `envconfig:"DB_DSN" default:"technostore.db"`
	StaticDir string `envconfig:"STATIC_DIR" default:"./web/static"`
	LogFile   string `envconfig:"LOG_FILE" default:""`
}

func Load() Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("[config] %v", err)
	}
	log.Printf("[config] ADDR=%s DB_DSN=%s STATIC_DIR=%s LOG_FILE=%s", cfg.Addr, cfg.DBDSN, cfg.StaticDir, cfg.LogFile)
	return cfg
}
