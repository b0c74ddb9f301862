// Package tracer implements the recursive Whitted-style shading of
// voxel scenes: direct Phong lighting with soft shadows plus Fresnel
// weighted reflection and refraction.
package tracer

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"voxel-raytracer/internal/geometry"
	"voxel-raytracer/internal/material"
	"voxel-raytracer/internal/mathutil"
	"voxel-raytracer/internal/raster"
	"voxel-raytracer/internal/scene"
	"voxel-raytracer/internal/skybox"
)

const (
	// MaxDepth bounds recursion; rays deeper than this see only the sky.
	MaxDepth = 3

	// OriginBias offsets secondary ray origins along the surface normal.
	OriginBias = 1e-4
)

// CastRay returns the clamped color seen along a ray. Lights and the scene
// are read only; the sky is sampled for misses and for rays past MaxDepth.
//
// A primary ray with a zero-length direction panics.
func CastRay(origin, direction mgl64.Vec3, sc *scene.Scene, lights []scene.Light, depth int, sky skybox.Sampler) raster.Color {
	if depth == 0 && mathutil.IsDegenerate(direction) {
		panic(fmt.Sprintf("tracer: degenerate ray direction %v", direction))
	}
	if depth > MaxDepth {
		return sky.Sample(direction)
	}

	hit := sc.Nearest(origin, direction)
	if !hit.IsIntersecting {
		return sky.Sample(direction)
	}

	m := hit.Material
	diffuse, specular := directLight(hit, direction, sc, lights)

	kr := Fresnel(direction, hit.Normal, m.RefractiveIndex)
	reflectivity := kr * m.Albedo[material.Reflective]
	transmission := (1 - kr) * m.Albedo[material.Transmissive]

	var reflected, refracted raster.Color
	if reflectivity > 0 {
		dir := mathutil.MustNormalize(mathutil.Reflect(direction, hit.Normal))
		reflected = CastRay(offsetOrigin(hit.Point, hit.Normal, dir), dir, sc, lights, depth+1, sky)
	}
	if transmission > 0 {
		dir := mathutil.MustNormalize(Refract(direction, hit.Normal, m.RefractiveIndex))
		refracted = CastRay(offsetOrigin(hit.Point, hit.Normal, dir), dir, sc, lights, depth+1, sky)
	}

	local := diffuse.Add(specular).Scale(1 - reflectivity - transmission)
	return m.Emission.
		Add(local).
		Add(reflected.Scale(reflectivity)).
		Add(refracted.Scale(transmission)).
		Clamp()
}

// directLight sums the albedo-weighted Phong diffuse and specular terms of
// every light, each attenuated by its shadow.
func directLight(hit geometry.Intersect, direction mgl64.Vec3, sc *scene.Scene, lights []scene.Light) (diffuse, specular raster.Color) {
	m := hit.Material
	view := direction.Mul(-1)

	for _, light := range lights {
		toLight := light.Position.Sub(hit.Point)
		dist := toLight.Len()
		if dist < 1e-12 {
			continue
		}
		lightDir := toLight.Mul(1 / dist)

		intensity := light.Intensity * (1 - shadow(hit, lightDir, dist, sc))
		if intensity <= 0 {
			continue
		}

		lambert := mathutil.Clamp(hit.Normal.Dot(lightDir), 0, 1)
		diffuse = diffuse.Add(m.Diffuse.Mul(light.Color).Scale(m.Albedo[material.Diffuse] * lambert * intensity))

		mirror := mathutil.Reflect(lightDir.Mul(-1), hit.Normal)
		spec := math.Pow(math.Max(0, view.Dot(mirror)), m.Shininess)
		specular = specular.Add(light.Color.Scale(m.Albedo[material.Specular] * spec * intensity))
	}
	return diffuse, specular
}

// shadow returns how much the nearest occluder between the surface and the
// light darkens it: 0 for a clear path, approaching 1 as the occluder nears
// the surface.
func shadow(hit geometry.Intersect, lightDir mgl64.Vec3, lightDist float64, sc *scene.Scene) float64 {
	origin := offsetOrigin(hit.Point, hit.Normal, lightDir)
	occluder := sc.Nearest(origin, lightDir)
	if !occluder.IsIntersecting || occluder.Distance >= lightDist {
		return 0
	}
	r := occluder.Distance / lightDist
	return 1 - math.Min(1, r*r)
}
