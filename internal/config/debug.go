package config

import "os"

func IsDebug() bool {
	return os.Getenv("KORD_DEBUG") == "1"
}
