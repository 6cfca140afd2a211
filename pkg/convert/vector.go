package convert

import "github.com/goliatone/go-fieldbind/pkg/model"

var (
	vectorLabels = []string{"x", "y", "z", "w"}
	colorLabels  = []string{"r", "g", "b", "a"}
)

// Components splits a vector or colour into its float components and the
// labels shown next to each editor.
func Components(value any) ([]float32, []string, bool) {
	switch v := value.(type) {
	case model.Vector2:
		return []float32{v.X, v.Y}, vectorLabels[:2], true
	case model.Vector3:
		return []float32{v.X, v.Y, v.Z}, vectorLabels[:3], true
	case model.Vector4:
		return []float32{v.X, v.Y, v.Z, v.W}, vectorLabels[:4], true
	case model.Color:
		return []float32{v.R, v.G, v.B, v.A}, colorLabels, true
	}
	return nil, nil, false
}

// FromComponents rebuilds a vector or colour of kind from its components.
// Missing components are zero.
func FromComponents(kind model.TypeKind, c []float32) any {
	at := func(i int) float32 {
		if i < len(c) {
			return c[i]
		}
		return 0
	}
	switch kind {
	case model.TypeVector2:
		return model.Vector2{X: at(0), Y: at(1)}
	case model.TypeVector3:
		return model.Vector3{X: at(0), Y: at(1), Z: at(2)}
	case model.TypeVector4:
		return model.Vector4{X: at(0), Y: at(1), Z: at(2), W: at(3)}
	case model.TypeColor:
		return model.Color{R: at(0), G: at(1), B: at(2), A: at(3)}
	}
	return nil
}
