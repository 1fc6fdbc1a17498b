package config

import "os"

// RegistryConfig holds settings for the external company-registry lookup.
// The lookup is display-only; when no API key is configured the service
// serves deterministic mock profiles instead.
type RegistryConfig struct {
	APIKey    string `json:"-"` // Never serialize
	BaseURL   string `json:"baseUrl"`
	TimeoutMS int    `json:"timeoutMs"`
}

// DefaultRegistryConfig returns the registry configuration from the environment
func DefaultRegistryConfig() *RegistryConfig {
	return &RegistryConfig{
		APIKey:    os.Getenv("REGISTRY_API_KEY"),
		BaseURL:   getEnvOrDefault("REGISTRY_BASE_URL", "https://api.mca-registry.example.com/v1"),
		TimeoutMS: 10000,
	}
}

// IsEnabled returns true if the registry API is configured
func (c *RegistryConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// LookupEndpoint returns the full endpoint for a CIN lookup
func (c *RegistryConfig) LookupEndpoint(cin string) string {
	return c.BaseURL + "/companies/" + cin
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
