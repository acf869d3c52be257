package ports

import "time"

type CachePort[T any] interface {
	Get(key string) (T, bool)
	Set(key string, val T)
	ClearKey(key string)
	ClearAll()
	SetTTL(newTTL time.Duration)
	GetTTL() time.Duration
}
