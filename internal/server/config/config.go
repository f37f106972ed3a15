// Package config handles configuration for the server,
// including defaults, JSON overlay, environment variables, and
// command-line flags (applied in that order).
package config

// Config holds runtime settings for the FarmConnect server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DatabaseDSN: path to the SQLite database file (or ":memory:").
//   - Environment: deployment environment name; "development" exposes
//     store error detail in product endpoint responses.
//   - StaticDir: directory served as static assets (landing page, cart widget).
type Config struct {
	EndpointAddr string
	DatabaseDSN  string
	Environment  string
	StaticDir    string
}

// Development is the Environment value that switches on error detail in
// responses. Never run production traffic with it.
const Development = "development"

// LoadDefaults populates Config with the stock deployment defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":3000"
	c.DatabaseDSN = "farmconnect.db"
	c.Environment = "production"
	c.StaticDir = "web"
}

// IsDevelopment reports whether error detail may be included in responses.
func (c *Config) IsDevelopment() bool {
	return c.Environment == Development
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
