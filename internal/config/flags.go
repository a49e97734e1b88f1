package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-public static assets directory
//	-read-timeout request read deadline (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown deadline
//	-bcrypt-cost bcrypt work factor for password hashing
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var publicDir string
	var readTimeout time.Duration
	var shutdownTimeout time.Duration
	var bcryptCost int

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&publicDir, "public", "", "Static assets directory")
	flag.DurationVar(&readTimeout, "read-timeout", 0, "Request read deadline (e.g., 30s, 1m)")
	flag.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown deadline")
	flag.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt work factor")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			BcryptCost: bcryptCost,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress,
			ReadTimeout:     readTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Assets: Assets{
			PublicDir: publicDir,
		},
	}
}
