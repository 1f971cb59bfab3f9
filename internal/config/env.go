package config

import "os"

// EnvLookup возвращает значение переменной окружения key и признак того,
// что она задана. Сигнатура совпадает с os.LookupEnv.
type EnvLookup func(key string) (string, bool)

// lookupEnv возвращает значение переменной окружения и true, только если
// она задана и не пустая. lookup == nil означает окружение процесса.
func lookupEnv(lookup EnvLookup, key string) (string, bool) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	value, ok := lookup(key)
	return value, ok && value != ""
}

// getEnvOrDefault возвращает значение переменной окружения, если она задана
// и не пустая, иначе значение по умолчанию.
func getEnvOrDefault(lookup EnvLookup, key string, defaultValue string) string {
	if value, ok := lookupEnv(lookup, key); ok {
		return value
	}
	return defaultValue
}
