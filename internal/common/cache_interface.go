package common

import "time"

// CacheInterface abstracts the cache backend so datasets, geocode results
// and sessions can live in memory locally and in Redis in deployment.
type CacheInterface interface {
	Set(key string, value interface{}, duration time.Duration)
	Get(key string) (interface{}, bool)
	Delete(key string)
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)
	Close() error
}
