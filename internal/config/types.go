package config

// Config is the resolved runtime configuration for tenctl.
// Field order matches the on-disk YAML layout so saved files diff cleanly.
type Config struct {
	// URL is the base endpoint of the control-plane admin API.
	URL string `yaml:"url"`
	// APIKey authenticates admin requests. Absent means unauthenticated.
	APIKey string `yaml:"api_key,omitempty"`
	// AgentID optionally scopes requests to a specific agent.
	AgentID string `yaml:"agent_id,omitempty"`
	// Timeout is the transport timeout in seconds.
	Timeout float64 `yaml:"timeout"`
	// Output selects the rendering style: "table" or "json".
	Output string `yaml:"output"`
	// EchoCommand echoes the invoked command line to stderr before output.
	// Pointer so an explicit `false` survives the defaulting pass.
	EchoCommand *bool `yaml:"echo_command"`
}

// Echo reports the effective echo_command setting.
func (c Config) Echo() bool {
	if c.EchoCommand == nil {
		return true
	}
	return *c.EchoCommand
}
