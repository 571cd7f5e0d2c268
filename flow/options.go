// SPDX-License-Identifier: MIT

package flow

// Option customizes Build.
type Option func(*buildConfig)

type buildConfig struct {
	name     string
	shortcut *Shortcut
}

// DefaultProblemName names built problems unless WithName is given.
const DefaultProblemName = "MultiCommodityTransportationPlanning"

// WithShortcut augments the model with s. Validation happens in Build so
// that bad configuration surfaces as an error, not a panic.
func WithShortcut(s Shortcut) Option {
	return func(c *buildConfig) { c.shortcut = &s }
}

// WithName sets the LP problem name. Panics on "".
func WithName(name string) Option {
	if name == "" {
		panic("flow: WithName(\"\")")
	}
	return func(c *buildConfig) { c.name = name }
}
