package cmd

// Config carries everything the process needs from the environment.
type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	InternalAPIKey string
}
