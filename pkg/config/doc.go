// Package config loads typed configuration from environment variables and
// caches each configuration type for the lifetime of the process.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing:
//
//	type Settings struct {
//	    Blocklist []string `env:"BOOKMETA_TITLE_BLOCKLIST" envSeparator:"," envDefault:"Boaty McBoatface"`
//	}
//
//	if err := config.LoadEnv("./config/.env"); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// The first Load also reads ./.env when it exists. Later calls for the same
// type are served from the cache; ForceReload and ResetCache bypass or clear
// it, which is mostly useful in tests.
//
// # Error Handling
//
// Failures wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile and
// ErrNilPointer and can be matched with errors.Is.
package config
