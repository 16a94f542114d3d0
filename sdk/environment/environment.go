// Package environment loads .env files and reads namespaced environment
// variables. Configuration structs are filled through ParseEnvTags.
package environment

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads a .env file from the working directory. A missing file is
// reported as an error; callers usually ignore it outside development.
func LoadEnv() error {
	return godotenv.Load()
}

// LoadPath loads the env file at p, or the default .env when p is empty.
func LoadPath(p string) error {
	if p != "" {
		return godotenv.Load(p)
	}
	return godotenv.Load()
}

// GetEnvOrDefault returns the value of key or fallback when it is unset.
func GetEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetNamespaceEnvKey joins namespace and key with an underscore.
//
//	GetNamespaceEnvKey("JOIN", "PORT") // "JOIN_PORT"
//	GetNamespaceEnvKey("", "PORT")     // "PORT"
func GetNamespaceEnvKey(namespace, key string) string {
	if namespace == "" {
		return key
	}
	return fmt.Sprintf("%s_%s", namespace, key)
}

// GetNamespaceEnvOrDefault reads a namespaced variable with a fallback.
func GetNamespaceEnvOrDefault(namespace, key, fallback string) string {
	return GetEnvOrDefault(GetNamespaceEnvKey(namespace, key), fallback)
}
