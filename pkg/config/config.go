package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> value
	cacheMu    sync.Mutex
)

// loadDotenv loads .env from the working directory once. A missing file is not an error.
func loadDotenv() {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})
}

// Parse fills target from environment variables without caching.
func Parse(target any) error {
	loadDotenv()
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	return nil
}

// Load fills cfg from environment variables. Each type is parsed once;
// later calls copy the cached value.
func Load[T any](cfg *T) error {
	key := reflect.TypeFor[T]()
	if v, ok := cache.Load(key); ok {
		*cfg = v.(T)
		return nil
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if v, ok := cache.Load(key); ok {
		*cfg = v.(T)
		return nil
	}

	var parsed T
	if err := Parse(&parsed); err != nil {
		return err
	}
	cache.Store(key, parsed)
	*cfg = parsed
	return nil
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
