package cmd

// Config carries the runtime settings of the scheduling service.
// GranularityMinutes is the rounding step of hour calculations;
// LockTimeoutMS bounds how long a sequence code issuance waits for its
// namespace lock.
type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	GranularityMinutes int
	LockTimeoutMS      int
}
