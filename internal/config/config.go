package config

import "os"

const (
	// APIURLEnv переменная окружения с адресом API todolist
	APIURLEnv = "REACT_APP_API_URL"
	// DefaultAPIURL адрес API, если APIURLEnv не задана или пустая
	DefaultAPIURL = "http://localhost:8080/todolist"
)

// Source откуда было взято значение адреса API
type Source int

const (
	// SourceDefault использовано значение по умолчанию
	SourceDefault Source = iota
	// SourceEnv значение взято из переменной окружения
	SourceEnv
)

func (s Source) String() string {
	switch s {
	case SourceEnv:
		return "env"
	case SourceDefault:
		return "default"
	}
	return "unknown"
}

// Config настройки приложения. Вычисляются один раз при старте и
// передаются потребителям явно.
type Config struct {
	// APIURL базовый адрес API todolist
	APIURL string `json:"api_url"`
	// Source откуда взят APIURL
	Source Source `json:"-"`
}

// ResolveEndpoint возвращает адрес API из переменной окружения APIURLEnv,
// либо DefaultAPIURL, если переменная не задана или пустая.
// Корректность URL не проверяется.
func ResolveEndpoint(lookup EnvLookup) string {
	return getEnvOrDefault(lookup, APIURLEnv, DefaultAPIURL)
}

// Load вычисляет конфигурацию одним чтением окружения через lookup.
// Если lookup == nil, используется os.LookupEnv.
func Load(lookup EnvLookup) *Config {
	if value, ok := lookupEnv(lookup, APIURLEnv); ok {
		return &Config{APIURL: value, Source: SourceEnv}
	}
	return &Config{APIURL: DefaultAPIURL, Source: SourceDefault}
}

// GetConfig возвращает конфигурацию приложения из окружения процесса.
func GetConfig() *Config {
	return Load(os.LookupEnv)
}
