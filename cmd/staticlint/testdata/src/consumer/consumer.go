package consumer

import (
	"os"
	goos "os"
)

const apiKey = "REACT_APP_API_URL"

func endpoint() string {
	if v, ok := os.LookupEnv("REACT_APP_API_URL"); ok { // want "read REACT_APP_API_URL via config.GetConfig instead"
		return v
	}
	return os.Getenv("REACT_APP_API_URL") // want "read REACT_APP_API_URL via config.GetConfig instead"
}

func fromConst() string {
	return os.Getenv(apiKey) // want "read REACT_APP_API_URL via config.GetConfig instead"
}

func fromConcat() string {
	return os.Getenv("REACT_APP_" + "API_URL") // want "read REACT_APP_API_URL via config.GetConfig instead"
}

func fromAlias() string {
	return goos.Getenv("REACT_APP_API_URL") // want "read REACT_APP_API_URL via config.GetConfig instead"
}

func home() string {
	return os.Getenv("HOME")
}

func dynamic(key string) string {
	return os.Getenv(key)
}
