package config

// Board bounds offered to players when nothing else is configured.
const (
	DefaultMinDimension = 5
	DefaultMaxDimension = 20
)
