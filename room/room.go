package room

import (
	"fmt"
	"sort"

	"github.com/fogleman/pt/pt"
	"github.com/hpinc/go3mf"
)

// SCALE converts 3MF model units (millimeters) to scene units
const SCALE = 1000

// SliceParams guides how a 3D model is cut into a floor plan
type SliceParams struct {
	// Height of the cut, in scene units
	Height float64
	// Model units per scene unit. Zero means SCALE.
	Scale float64
	// Reflectivity per object name. The "default" entry applies to unlisted objects;
	// without it, unlisted objects are reflective.
	Reflective map[string]bool
}

func (p SliceParams) reflective(name string) bool {
	if r, ok := p.Reflective[name]; ok {
		return r
	}
	if r, ok := p.Reflective["default"]; ok {
		return r
	}
	return true
}

// NewFrom3MF builds a scene by slicing every object in a 3MF model at params.Height.
//
// Each object's outline becomes a set of segments tagged with the object's name.
func NewFrom3MF(filepath string, params SliceParams) (Scene, error) {
	var model go3mf.Model
	r, err := go3mf.OpenReader(filepath)
	if err != nil {
		return Scene{}, fmt.Errorf("opening 3mf file: %w", err)
	}
	defer r.Close()
	if err := r.Decode(&model); err != nil {
		return Scene{}, fmt.Errorf("decoding 3mf file: %w", err)
	}

	scale := params.Scale
	if scale == 0 {
		scale = SCALE
	}
	plane := HorizontalPlane(params.Height)

	meshes := map[string][]*pt.Triangle{}
	for _, item := range model.Build.Items {
		obj, ok := model.FindObject(item.ObjectPath(), item.ObjectID)
		if !ok || obj.Mesh == nil {
			continue
		}
		vertex := func(i uint32) pt.Vector {
			v := obj.Mesh.Vertices.Vertex[i]
			return pt.Vector{
				X: float64(v.X()) / scale,
				Y: float64(v.Y()) / scale,
				Z: float64(v.Z()) / scale,
			}
		}
		for _, t := range obj.Mesh.Triangles.Triangle {
			ptTri := &pt.Triangle{}
			ptTri.V1 = vertex(t.V1)
			ptTri.V2 = vertex(t.V2)
			ptTri.V3 = vertex(t.V3)
			ptTri.FixNormals()
			meshes[obj.Name] = append(meshes[obj.Name], ptTri)
		}
	}

	names := make([]string, 0, len(meshes))
	for name := range meshes {
		names = append(names, name)
	}
	sort.Strings(names)

	scene := Scene{}
	for _, name := range names {
		mesh := pt.NewMesh(meshes[name])
		scene = scene.with(plane.MeshToSegments(mesh, params.reflective(name), SurfaceID(name))...)
	}
	if len(scene.Segments) == 0 {
		return Scene{}, fmt.Errorf("no geometry at height %v in %s", params.Height, filepath)
	}
	return scene, nil
}
