package config

// Manifest represents the structure of the regen.yaml configuration file.
type Manifest struct {
	Version   string        `yaml:"version"`
	Staging   string        `yaml:"staging"`
	Variants  []VariantDTO  `yaml:"variants"`
	Bootstrap *BootstrapDTO `yaml:"bootstrap"`
}

// VariantDTO represents one generation variant in the configuration.
type VariantDTO struct {
	Name    string    `yaml:"name"`
	Key     string    `yaml:"key"`
	Inputs  []string  `yaml:"inputs"`
	Steps   []StepDTO `yaml:"steps"`
	Outputs []string  `yaml:"outputs"`
	Index   string    `yaml:"index"`
}

// StepDTO represents one declared command. Exactly one of program and tool
// must be set.
type StepDTO struct {
	Program string   `yaml:"program"`
	Tool    string   `yaml:"tool"`
	Dir     string   `yaml:"dir"`
	Args    []string `yaml:"args"`
	Env     []string `yaml:"env"`
}

// BootstrapDTO represents the bootstrap section in the configuration.
type BootstrapDTO struct {
	Upstream     string   `yaml:"upstream"`
	Checkout     string   `yaml:"checkout"`
	Seed         string   `yaml:"seed"`
	Tool         string   `yaml:"tool"`
	Args         []string `yaml:"args"`
	Generates    []string `yaml:"generates"`
	PluginInputs []string `yaml:"pluginInputs"`
}
