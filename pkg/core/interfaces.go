package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// MaterialID is an index into a scene's material registry
type MaterialID int

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T         float32    // Parameter t along the ray
	Point     Vec3       // Point of intersection
	Normal    Vec3       // Unit normal, always facing against the incoming ray
	FrontFace bool       // Whether ray hit the outside of the surface
	Material  MaterialID // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
