package config

// Auth carries the optional API key for the compute endpoint. An empty key
// disables authentication entirely.
type Auth struct {
	APIKey string
}

func newAuth(lookup func(string) (string, bool)) *Auth {
	return &Auth{
		APIKey: getEnv(lookup, "APP_API_KEY", ""),
	}
}
