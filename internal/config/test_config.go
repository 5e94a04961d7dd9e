package config

import "time"

// TestConfig returns a config suitable for testing
func TestConfig() *Config {
	return &Config{
		API: APIConfig{
			Token:           "test-token",
			BaseURL:         "http://localhost",
			Limit:           3,
			DefaultLanguage: "en",
			DefaultCategory: "",
			HTTPTimeout:     5 * time.Second,
			UserAgent:       "tidings-test/1.0",
		},
		UI:      defaultConfig().UI,
		Browser: defaultConfig().Browser,
		Keys:    defaultConfig().Keys,
		Log:     LogConfig{Level: "off"},
	}
}
