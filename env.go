package bake

import "os"

// EnvOr returns the value of the named environment variable, or fallback when
// the variable is unset or empty. The usual pattern picks tools and flags:
//
//	cc := bake.EnvOr("CC", "cc")
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
