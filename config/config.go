package config

import (
	"flag"
	"os"
	"sync"
)

const (
	defaultServerAddr   = ":5000"
	defaultDatabaseURI  = "mongodb://localhost:27017"
	defaultDatabaseName = "modernCarDb"
	defaultLogLevel     = "debug"
)

type Config struct {
	ServerAddr      string
	DatabaseURI     string
	DatabaseName    string
	StripeSecretKey string
	LogLevel        string
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. It parses command line and environment variables only once.
func New() (*Config, error) {
	once.Do(func() {
		cfg := Config{}

		// initialize flags
		flag.StringVar(&cfg.ServerAddr, "a", defaultServerAddr, "car house server address")
		flag.StringVar(&cfg.DatabaseURI, "d", defaultDatabaseURI, "car house database URI")
		flag.StringVar(&cfg.DatabaseName, "n", defaultDatabaseName, "car house database name")
		flag.StringVar(&cfg.StripeSecretKey, "s", "", "payment provider secret key")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")

		flag.Parse()

		// if environment variable is set, then using it
		if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
			cfg.ServerAddr = runAddrEnv
		}
		if dataBaseURIEnv := os.Getenv("DATABASE_URI"); dataBaseURIEnv != "" {
			cfg.DatabaseURI = dataBaseURIEnv
		}
		if dataBaseNameEnv := os.Getenv("DATABASE_NAME"); dataBaseNameEnv != "" {
			cfg.DatabaseName = dataBaseNameEnv
		}
		if stripeKeyEnv := os.Getenv("STRIPE_SECRET_KEY"); stripeKeyEnv != "" {
			cfg.StripeSecretKey = stripeKeyEnv
		}
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			cfg.LogLevel = logLevelEnv
		}

		singleton = &cfg
	})

	return singleton, nil
}
