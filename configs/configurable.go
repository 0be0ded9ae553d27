package configs

// Configurable is implemented by typed config values. ConfigExpr is the cue
// path the value is read from.
type Configurable interface {
	ConfigExpr() string
}
