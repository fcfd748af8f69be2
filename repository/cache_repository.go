package repository

// CacheRepository memoizes computed simulation results keyed by input.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
