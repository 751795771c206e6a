package core

// Material holds the Phong reflection coefficients of a surface.
// Kd and Ks are per-channel triples in [0,1]; Shininess controls the
// tightness of the specular lobe. Immutable once attached to a geometry.
type Material struct {
	Kd        Vector // diffuse coefficient
	Ks        Vector // specular coefficient
	Shininess int
}

// NewMaterial creates a material with uniform diffuse and specular coefficients
func NewMaterial(kd, ks float64, shininess int) Material {
	return Material{
		Kd:        NewVector(kd, kd, kd),
		Ks:        NewVector(ks, ks, ks),
		Shininess: shininess,
	}
}
