package quix

import (
	"image"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	pt := func(x, y int) *image.Point {
		p := image.Pt(x, y)
		return &p
	}

	cases := []struct {
		name   string
		modify func(c *FieldConfig)
		ok     bool
	}{
		{"default", func(c *FieldConfig) {}, true},
		{"narrow", func(c *FieldConfig) { c.Width = 1 }, false},
		{"flat", func(c *FieldConfig) { c.Height = 0 }, false},
		{"negative pick radius", func(c *FieldConfig) { c.PickRadius = -1 }, false},
		{"negative spawn distance", func(c *FieldConfig) { c.SpawnDistance = -0.5 }, false},
		{"bias above one", func(c *FieldConfig) { c.StraightBias = 1.1 }, false},
		{"bias zero", func(c *FieldConfig) { c.StraightBias = 0 }, true},
		{"start on top", func(c *FieldConfig) { c.Start = pt(10, 0) }, true},
		{"start on corner", func(c *FieldConfig) { c.Start = pt(640, 480) }, true},
		{"start inside", func(c *FieldConfig) { c.Start = pt(10, 10) }, false},
		{"start outside", func(c *FieldConfig) { c.Start = pt(700, 0) }, false},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)

			_, err = New(cfg)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestNewDefaults(t *testing.T) {
	f, err := New(nil)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 640, 480), f.Bounds())
	assert.NotZero(t, f.Seed())
	assert.Len(t, f.Edges(), 4)

	p, e := f.Player()
	assert.Equal(t, image.Pt(320, 480), p)
	assert.NotEqual(t, NoEdge, e)
}

func TestNewStart(t *testing.T) {
	cfg := DefaultConfig()
	start := image.Pt(0, 100)
	cfg.Start = &start

	f, err := New(cfg)
	require.NoError(t, err)

	p, e := f.Player()
	assert.Equal(t, start, p)
	a, b := f.EdgePoints(e)
	assert.Equal(t, image.Pt(0, 0), a)
	assert.Equal(t, image.Pt(0, 480), b)
}

func TestModes(t *testing.T) {
	assert.Equal(t, "move", ModeMove.String())
	assert.Equal(t, "fast", ModeFast.String())
	assert.Equal(t, "slow", ModeSlow.String())

	assert.False(t, ModeMove.cutting())
	assert.True(t, ModeFast.cutting())
	assert.Equal(t, 1, ModeFast.scoreFactor())
	assert.Equal(t, 2, ModeSlow.scoreFactor())
}
