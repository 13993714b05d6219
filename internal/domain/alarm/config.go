package alarm

// Config is what callers hand to the gateway: either a raw partial
// configuration or an alarm that is already normalized.
// The zero Config is a raw configuration with no fields set.
type Config struct {
	raw        any
	normalized *Alarm
}

// Raw wraps a partial configuration. It is normalized with New on use.
func Raw(params any) Config {
	return Config{raw: params}
}

// Normalized wraps an alarm that needs no further defaulting.
func Normalized(a *Alarm) Config {
	return Config{normalized: a}
}

// IsNormalized reports whether the config already carries an Alarm.
func (c Config) IsNormalized() bool {
	return c.normalized != nil
}

// Alarm returns the normalized alarm, building it from the raw
// configuration when needed.
func (c Config) Alarm() *Alarm {
	if c.normalized != nil {
		return c.normalized
	}

	return New(c.raw)
}
