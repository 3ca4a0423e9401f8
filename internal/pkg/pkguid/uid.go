package pkguid

import "fmt"

// StringID generates unique string identifiers.
type StringID interface {
	// Generate generates a unique identifier as a string.
	Generate() string
}

// NumberID generates unique numeric identifiers.
type NumberID interface {
	// Generate generates a unique identifier as an int64 number.
	Generate() int64
}

// Strategy names accepted by NewStringID.
const (
	StrategyUUID      = "uuid"
	StrategySnowflake = "snowflake"
)

// NewStringID builds the string generator for the named strategy. An empty
// name selects UUID.
func NewStringID(strategy string) (StringID, error) {
	switch strategy {
	case "", StrategyUUID:
		return NewUUID(), nil
	case StrategySnowflake:
		sf, err := NewSnowflake()
		if err != nil {
			return nil, err
		}
		return sf.Strings(), nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}
