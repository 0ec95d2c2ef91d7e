package cmd

import "time"

// Config carries the runtime settings read from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string
	JWTTTL    time.Duration

	RateLimitRPS   float64
	RateLimitBurst int

	OrderExpirySchedule string
	OrderPendingMaxAge  time.Duration
}
