package material

import (
	"fmt"
	"math"

	"voxel-raytracer/internal/raster"
	"voxel-raytracer/internal/texture"
)

// Albedo apportions a surface's response: diffuse, specular, reflective, transmissive.
// The last two are further weighted by the Fresnel split at shading time.
type Albedo [4]float64

const (
	Diffuse = iota
	Specular
	Reflective
	Transmissive
)

// Material describes the optical properties of a surface. It is never
// mutated after scene construction and may be shared by many cubes.
type Material struct {
	Diffuse         raster.Color
	Shininess       float64 // Phong specular exponent
	Albedo          Albedo
	RefractiveIndex float64

	// Texture overrides Diffuse when present.
	Texture texture.Provider

	Emission raster.Color
}

// New builds a validated material. Malformed weights are a content
// authoring error and are rejected here rather than clamped while shading.
func New(diffuse raster.Color, shininess float64, albedo Albedo, refractiveIndex float64, tex texture.Provider, emission raster.Color) (Material, error) {
	m := Material{
		Diffuse:         diffuse,
		Shininess:       shininess,
		Albedo:          albedo,
		RefractiveIndex: refractiveIndex,
		Texture:         tex,
		Emission:        emission,
	}
	if err := m.Validate(); err != nil {
		return Material{}, err
	}
	return m, nil
}

// Black returns the no-contribution material.
func Black() Material {
	return Material{
		Diffuse:         raster.Black,
		Shininess:       0,
		Albedo:          Albedo{0, 0, 0, 0},
		RefractiveIndex: 1,
		Emission:        raster.Black,
	}
}

// Validate checks the authoring constraints the shading composite relies on.
func (m Material) Validate() error {
	for i, w := range m.Albedo {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("material: albedo[%d] = %v must be a non-negative finite weight", i, w)
		}
	}
	if sum := m.Albedo[Reflective] + m.Albedo[Transmissive]; sum > 1 {
		return fmt.Errorf("material: reflective + transmissive weights = %v exceed 1", sum)
	}
	if math.IsNaN(m.RefractiveIndex) || m.RefractiveIndex < 1 {
		return fmt.Errorf("material: refractive index %v must be >= 1", m.RefractiveIndex)
	}
	if math.IsNaN(m.Shininess) || m.Shininess < 0 {
		return fmt.Errorf("material: shininess %v must be >= 0", m.Shininess)
	}
	return nil
}

// HasTexture reports whether the diffuse color comes from a texture.
func (m Material) HasTexture() bool {
	return m.Texture != nil && m.Texture.Width() > 0 && m.Texture.Height() > 0
}

// WithDiffuse returns a copy of m with a resolved diffuse color.
func (m Material) WithDiffuse(c raster.Color) Material {
	m.Diffuse = c
	return m
}
