package imported

import (
	"os"

	"config"
)

type env struct{}

func (env) Getenv(key string) string {
	return key
}

func endpoint() string {
	return os.Getenv(config.APIURLEnv) // want "read REACT_APP_API_URL via config.GetConfig instead"
}

func notOs() string {
	var os env
	return os.Getenv("REACT_APP_API_URL")
}
