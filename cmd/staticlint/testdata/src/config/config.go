package config

import "os"

const APIURLEnv = "REACT_APP_API_URL"

func endpoint() string {
	return os.Getenv(APIURLEnv)
}
