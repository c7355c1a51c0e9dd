package mesh

import (
	"image"

	"github.com/pkg/errors"
	"github.com/toby1984/quix/internal/encoding"
)

// MarshalBinary encodes the arena as big endian 32 bit values:
//
//	vertex count, then per vertex x y up down left right
//	edge count, then per edge a b
func (a *Arena) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, 4*(2+6*len(a.vertices)+2*len(a.edges)))

	buf = encoding.AppendInt32(buf, len(a.vertices))
	for _, v := range a.vertices {
		buf = encoding.AppendInt32(buf, v.Pos.X)
		buf = encoding.AppendInt32(buf, v.Pos.Y)
		buf = encoding.AppendInt32(buf, int(v.Up))
		buf = encoding.AppendInt32(buf, int(v.Down))
		buf = encoding.AppendInt32(buf, int(v.Left))
		buf = encoding.AppendInt32(buf, int(v.Right))
	}

	buf = encoding.AppendInt32(buf, len(a.edges))
	for _, e := range a.edges {
		buf = encoding.AppendInt32(buf, int(e.A))
		buf = encoding.AppendInt32(buf, int(e.B))
	}

	return buf, nil
}

// UnmarshalBinary replaces the arena with the one encoded in data. The
// decoded arena must pass Check.
func (a *Arena) UnmarshalBinary(data []byte) error {
	r := encoding.NewReader(data)

	nv, err := r.Int32()
	if err != nil {
		return errors.Wrap(ErrCorrupt, err.Error())
	}
	if nv < 0 || nv*24 > r.Remaining() {
		return errors.Wrapf(ErrCorrupt, "bad vertex count %d", nv)
	}

	vertices := make([]Vertex, nv)
	for i := range vertices {
		vals := [6]int{}
		for j := range vals {
			vals[j], err = r.Int32()
			if err != nil {
				return errors.Wrap(ErrCorrupt, err.Error())
			}
		}
		vertices[i] = Vertex{
			ID:    VertexID(i),
			Pos:   image.Pt(vals[0], vals[1]),
			Up:    EdgeID(vals[2]),
			Down:  EdgeID(vals[3]),
			Left:  EdgeID(vals[4]),
			Right: EdgeID(vals[5]),
		}
	}

	ne, err := r.Int32()
	if err != nil {
		return errors.Wrap(ErrCorrupt, err.Error())
	}
	if ne < 0 || ne*8 != r.Remaining() {
		return errors.Wrapf(ErrCorrupt, "bad edge count %d with %d bytes left", ne, r.Remaining())
	}

	edges := make([]Edge, ne)
	for i := range edges {
		v0, err := r.Int32()
		if err != nil {
			return errors.Wrap(ErrCorrupt, err.Error())
		}
		v1, err := r.Int32()
		if err != nil {
			return errors.Wrap(ErrCorrupt, err.Error())
		}
		if v0 < 0 || v0 >= nv || v1 < 0 || v1 >= nv {
			return errors.Wrapf(ErrCorrupt, "edge %d joins missing vertices %d, %d", i, v0, v1)
		}
		edges[i] = Edge{ID: EdgeID(i), A: VertexID(v0), B: VertexID(v1)}
	}

	decoded := &Arena{vertices: vertices, edges: edges}
	if err := decoded.Check(); err != nil {
		return err
	}
	*a = *decoded
	return nil
}
