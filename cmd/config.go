package cmd

// Config carries process-level settings loaded from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// JWTSecret signs authentication tokens. Must be set; there is no
	// usable default.
	JWTSecret string

	// StrictStatusTransitions rejects status changes out of delivered or
	// cancelled orders when set. The default permissive mode lets
	// dispatchers correct mislabeled scans.
	StrictStatusTransitions bool
}
