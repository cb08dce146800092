package indexcmd

// FeatureGates exposes runtime feature toggles required by index command
// handlers. Callers supply closures reading from postindex.Config.Features so
// handlers stay decoupled from configuration while honouring feature flags.
type FeatureGates struct {
	GeneratorEnabled func() bool
}

func (g FeatureGates) generatorEnabled() bool {
	if g.GeneratorEnabled == nil {
		return true
	}
	return g.GeneratorEnabled()
}
