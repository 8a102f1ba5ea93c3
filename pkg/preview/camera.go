package preview

import (
	"math"

	"github.com/circleprints/plategen/pkg/geometry"
)

// Camera is a perspective camera orbiting the part
type Camera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // field of view in radians
	Distance float64
}

// NewCamera creates a camera framing a bounding box from a fixed
// three-quarter view above the build plate.
func NewCamera(bbox geometry.BoundingBox) *Camera {
	center := bbox.Center()
	size := bbox.Size()
	distance := math.Max(size.X, math.Max(size.Y, size.Z)) * 2.5

	// Spherical placement: 35 degrees elevation, 45 degrees azimuth.
	elevation := 35.0 * math.Pi / 180.0
	azimuth := 45.0 * math.Pi / 180.0
	offset := geometry.NewVector3(
		distance*math.Cos(elevation)*math.Sin(azimuth),
		-distance*math.Cos(elevation)*math.Cos(azimuth),
		distance*math.Sin(elevation),
	)

	return &Camera{
		Position: center.Add(offset),
		Target:   center,
		Up:       geometry.NewVector3(0, 0, 1),
		FOV:      math.Pi / 4,
		Distance: distance,
	}
}

// Project projects a 3D point to screen coordinates, returning the
// screen position and the view-space depth.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	if z <= 0.01 {
		z = 0.01 // behind or on the camera plane
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}

// ViewDirection returns the normalized direction from the camera to
// the target
func (c *Camera) ViewDirection() geometry.Vector3 {
	return c.Target.Sub(c.Position).Normalize()
}
