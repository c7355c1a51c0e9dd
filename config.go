package quix

import (
	"image"

	"github.com/pkg/errors"
)

// Mode is how the player wants to move this tick.
type Mode int

const (
	// ModeMove walks along existing edges.
	ModeMove Mode = iota

	// ModeFast cuts into open space; claims score their area.
	ModeFast

	// ModeSlow cuts into open space; claims score double their area.
	ModeSlow
)

func (m Mode) String() string {
	switch m {
	case ModeFast:
		return "fast"
	case ModeSlow:
		return "slow"
	}
	return "move"
}

// cutting is true for the modes that draw a cut.
func (m Mode) cutting() bool {
	return m == ModeFast || m == ModeSlow
}

// scoreFactor multiplies a claimed area into score.
func (m Mode) scoreFactor() int {
	if m == ModeSlow {
		return 2
	}
	return 1
}

// FieldConfig holds the settings of a Field.
type FieldConfig struct {
	// Width and Height of the playfield. The border runs from (0,0) to
	// (Width,Height) inclusive. Both required.
	Width  int
	Height int

	// Seed for the random choices made on behalf of enemies (exit picks,
	// spawn points). 0 picks a time based seed.
	Seed int64

	// PickRadius is how far from a point ClosestEdgeTo looks for an edge.
	PickRadius float64

	// SpawnDistance is the minimum distance between the player and a
	// point returned by SpawnPoint with AwayFromPlayer.
	SpawnDistance float64

	// StraightBias is the chance an enemy at a junction turns even though
	// it could carry straight on. In [0,1].
	StraightBias float64

	// Start is where the player starts, on the border. Defaults to the
	// middle of the bottom edge when nil.
	Start *image.Point
}

// DefaultConfig is a 640x480 field.
func DefaultConfig() *FieldConfig {
	return &FieldConfig{
		Width:         640,
		Height:        480,
		PickRadius:    20,
		SpawnDistance: 30,
		StraightBias:  0.33,
	}
}

// Validate returns ErrInvalidConfig naming the first bad setting.
func (c *FieldConfig) Validate() error {
	switch {
	case c.Width < 2:
		return errors.Wrapf(ErrInvalidConfig, "width %d must be at least 2", c.Width)
	case c.Height < 2:
		return errors.Wrapf(ErrInvalidConfig, "height %d must be at least 2", c.Height)
	case c.PickRadius < 0:
		return errors.Wrapf(ErrInvalidConfig, "pick radius %v is negative", c.PickRadius)
	case c.SpawnDistance < 0:
		return errors.Wrapf(ErrInvalidConfig, "spawn distance %v is negative", c.SpawnDistance)
	case c.StraightBias < 0 || c.StraightBias > 1:
		return errors.Wrapf(ErrInvalidConfig, "straight bias %v is outside [0,1]", c.StraightBias)
	}
	if c.Start != nil {
		onX := c.Start.X == 0 || c.Start.X == c.Width
		onY := c.Start.Y == 0 || c.Start.Y == c.Height
		inX := c.Start.X >= 0 && c.Start.X <= c.Width
		inY := c.Start.Y >= 0 && c.Start.Y <= c.Height
		if !(inX && inY && (onX || onY)) {
			return errors.Wrapf(ErrInvalidConfig, "start (%d,%d) is not on the border", c.Start.X, c.Start.Y)
		}
	}
	return nil
}
