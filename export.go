package quix

import (
	"encoding/json"
	"os"
)

// Stats sums up a field.
type Stats struct {
	Width, Height  int
	Seed           int64
	Score          int
	ClaimedArea    float64
	ClaimedPercent float64
	ClaimedPoints  int
	Vertices       int
	Edges          int
}

// export is what JSON writes.
type export struct {
	Stats  *Stats
	Claims []*Claim `json:",omitempty"`
}

// Stats returns the current totals of the field.
func (f *Field) Stats() *Stats {
	return &Stats{
		Width:          f.cfg.Width,
		Height:         f.cfg.Height,
		Seed:           f.seed,
		Score:          f.score,
		ClaimedArea:    f.claimedArea,
		ClaimedPercent: f.ClaimedPercent(),
		ClaimedPoints:  f.claimed.Count(),
		Vertices:       f.arena.NumVertices(),
		Edges:          f.perm.Len() + len(f.cut.Edges()),
	}
}

// JSON returns the stats and claims of the field as json.
func (f *Field) JSON() ([]byte, error) {
	return json.Marshal(&export{Stats: f.Stats(), Claims: f.claims})
}

// SaveJSON writes a json file to the given path.
func (f *Field) SaveJSON(fpath string) error {
	data, err := f.JSON()
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, data, 0644)
}
