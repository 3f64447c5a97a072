package main

import (
	"os"
)

// env returns the value of an environment variable if provided (even if empty)
// or a fallback value.
func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

func defaultKeyPath() string {
	return env("BEEHIVECLI_PRIV_KEY", os.Getenv("HOME")+"/.beehive.priv.key")
}

func defaultNode() string {
	return env("BEEHIVECLI_NODE", "tcp://localhost:26657")
}

func defaultChain() string {
	return env("BEEHIVECLI_CHAIN", "")
}
