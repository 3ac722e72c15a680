package lighting

import (
	"errors"
	"fmt"

	"github.com/Faultbox/spritelight/pkg/math"
)

// ErrInvalidNormal matches every *InvalidNormalError via errors.Is.
var ErrInvalidNormal = errors.New("lighting: invalid surface normal")

// ConfigError reports an invalid material or light parameter.
type ConfigError struct {
	Field  string
	Value  float32
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("lighting: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// InvalidNormalError is returned by Evaluate when a sample's normal has no
// direction (zero length) or contains NaN/Inf components.
type InvalidNormalError struct {
	Normal math.Vec3
}

func (e *InvalidNormalError) Error() string {
	return fmt.Sprintf("lighting: invalid surface normal (%v, %v, %v)", e.Normal.X, e.Normal.Y, e.Normal.Z)
}

// Is lets errors.Is(err, ErrInvalidNormal) match.
func (e *InvalidNormalError) Is(target error) bool {
	return target == ErrInvalidNormal
}
