package config

import (
	"os"
	"time"
)

// Server captures HTTP server and service level configuration.
type Server struct {
	Addr        string
	Environment string

	// SnapshotPath points at the directory snapshot file. A missing file is
	// not an error: the service starts with an empty directory.
	SnapshotPath  string
	WatchSnapshot bool

	// Basic-auth credentials presented by the orchestration engine on
	// /validate and /simulate calls. Only the bcrypt hash is held here.
	BasicAuthUser string
	BasicAuthHash string

	// Admin bearer-token signing.
	AdminSigningKey string
	AdminTokenTTL   time.Duration

	// Upper bound for the demo delay endpoint.
	SimulateMaxDelay time.Duration

	ShutdownTimeout time.Duration
}

const (
	defaultAddr             = ":8080"
	defaultSnapshotPath     = "users.json"
	defaultBasicAuthUser    = "journey-caller"
	defaultAdminTokenTTL    = 15 * time.Minute
	defaultSimulateMaxDelay = 10 * time.Second
	defaultShutdownTimeout  = 10 * time.Second

	// Dev defaults - must be overridden in production.
	devBasicAuthPassword = "dev-password-change-in-production"
	devAdminSigningKey   = "dev-signing-key-change-in-production"
)

// FromEnv builds a Server config from environment variables so main stays lean.
// The basic-auth password may be provided pre-hashed (ROSTER_BASIC_AUTH_HASH)
// or in plaintext (ROSTER_BASIC_AUTH_PASSWORD), in which case the caller is
// expected to hash it at boot via pkg/secrets.
func FromEnv() Server {
	cfg := Server{
		Addr:             envOr("ROSTER_ADDR", defaultAddr),
		Environment:      envOr("ROSTER_ENV", "dev"),
		SnapshotPath:     envOr("ROSTER_SNAPSHOT_PATH", defaultSnapshotPath),
		WatchSnapshot:    os.Getenv("ROSTER_SNAPSHOT_WATCH") != "false",
		BasicAuthUser:    envOr("ROSTER_BASIC_AUTH_USER", defaultBasicAuthUser),
		BasicAuthHash:    os.Getenv("ROSTER_BASIC_AUTH_HASH"),
		AdminSigningKey:  envOr("ROSTER_ADMIN_SIGNING_KEY", devAdminSigningKey),
		AdminTokenTTL:    durationOr("ROSTER_ADMIN_TOKEN_TTL", defaultAdminTokenTTL),
		SimulateMaxDelay: durationOr("ROSTER_SIMULATE_MAX_DELAY", defaultSimulateMaxDelay),
		ShutdownTimeout:  durationOr("ROSTER_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}
	return cfg
}

// BasicAuthPassword returns the plaintext basic-auth password, used only when
// no pre-hashed credential was configured.
func BasicAuthPassword() string {
	return envOr("ROSTER_BASIC_AUTH_PASSWORD", devBasicAuthPassword)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
