package config

import "github.com/podhmo/exprcalc/internal/bindings"

// Config holds the configuration for the exprcalc tool itself,
// typically derived from its command-line arguments.
type Config struct {
	Expression   string        // Expression to evaluate or compile (e.g., "10-2-x")
	Vars         bindings.Vars // Bindings given with repeated -var flags
	BindingsFile string        // Path to a YAML or TOML bindings file
	Strict       bool          // Report parse errors instead of printing the sentinel 0
	FuncName     string        // Name of the generated function (emit)
	PackageName  string        // Package clause of the generated file (emit)
	OutputFile   string        // Path for the generated file; stdout if empty (emit)
}

// Bindings returns the effective bindings: the bindings file, if any,
// overlaid with the -var flags.
func (c *Config) Bindings() (map[rune]int, error) {
	var vars map[rune]int
	if c.BindingsFile != "" {
		loaded, err := bindings.Load(c.BindingsFile)
		if err != nil {
			return nil, err
		}
		vars = loaded
	}
	return bindings.Merge(vars, c.Vars), nil
}
