package tracer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"voxel-raytracer/internal/mathutil"
)

// Refract bends a unit incident direction through a surface with unit normal
// and refractive index ior, assuming the other side is air. The normal may
// face either way; exiting rays use the inverse ratio. Under total internal
// reflection the mirrored direction is returned instead.
func Refract(incident, normal mgl64.Vec3, ior float64) mgl64.Vec3 {
	cosi := mathutil.Clamp(incident.Dot(normal), -1, 1)
	etaI, etaT := 1.0, ior
	n := normal
	if cosi < 0 {
		cosi = -cosi
	} else {
		etaI, etaT = etaT, etaI
		n = normal.Mul(-1)
	}

	eta := etaI / etaT
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return mathutil.Reflect(incident, normal)
	}
	return incident.Mul(eta).Add(n.Mul(eta*cosi - math.Sqrt(k)))
}

// Fresnel returns the reflected fraction kr in [0, 1] for unpolarized light;
// 1 - kr is transmitted. Total internal reflection yields 1.
func Fresnel(incident, normal mgl64.Vec3, ior float64) float64 {
	cosi := mathutil.Clamp(incident.Dot(normal), -1, 1)
	etaI, etaT := 1.0, ior
	if cosi > 0 {
		etaI, etaT = etaT, etaI
	}

	sint := etaI / etaT * math.Sqrt(math.Max(0, 1-cosi*cosi))
	if sint >= 1 {
		return 1
	}

	cost := math.Sqrt(math.Max(0, 1-sint*sint))
	cosi = math.Abs(cosi)
	rs := (etaT*cosi - etaI*cost) / (etaT*cosi + etaI*cost)
	rp := (etaI*cosi - etaT*cost) / (etaI*cosi + etaT*cost)
	return mathutil.Clamp((rs*rs+rp*rp)/2, 0, 1)
}

// offsetOrigin nudges a secondary ray origin off the surface, to the side the
// ray travels toward, so it does not re-hit the surface it leaves.
func offsetOrigin(point, normal, direction mgl64.Vec3) mgl64.Vec3 {
	if direction.Dot(normal) < 0 {
		return point.Sub(normal.Mul(OriginBias))
	}
	return point.Add(normal.Mul(OriginBias))
}
