package assets

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BubbleShading is everything the bubble texture is baked from.
type BubbleShading struct {
	Tint         color.Color
	IOR          float64
	Roughness    float64
	Transmission float64
	Thickness    float64
	Clearcoat    float64
	Opacity      float64
	EnvIntensity float64

	Ambient          color.Color
	AmbientIntensity float64
	// Lights are directions toward each light in view space, with their colour
	// and intensity.
	Lights []BubbleLight
}

type BubbleLight struct {
	Dir       mgl64.Vec3
	Color     color.Color
	Intensity float64
}

// Fresnel is Schlick's approximation of reflectance for a dielectric.
func Fresnel(cosTheta, ior float64) float64 {
	f0 := (ior - 1) / (ior + 1)
	f0 *= f0
	c := 1 - math.Max(0, math.Min(1, cosTheta))
	return f0 + (1-f0)*c*c*c*c*c
}

// BubbleImage renders a size x size bubble seen head on: a mostly clear
// body, a fresnel rim tinted by the ambient light and specular highlights.
func BubbleImage(size int, s BubbleShading) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if size <= 0 {
		return img
	}
	ior := s.IOR
	if ior <= 1 {
		ior = 1.33
	}
	tint := rgb(s.Tint, mgl64.Vec3{1, 1, 1})
	ambient := rgb(s.Ambient, mgl64.Vec3{1, 1, 1}).Mul(s.AmbientIntensity)
	rim := mgl64.Vec3{1, 1, 1}.Add(ambient).Mul(0.5)
	shininess := math.Min(2/(math.Pow(s.Roughness, 4)+1e-3)-2, 400)
	view := mgl64.Vec3{0, 0, 1}

	c := float64(size) / 2
	r := c - 1
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			nx := (float64(px) + 0.5 - c) / r
			ny := -(float64(py) + 0.5 - c) / r
			d2 := nx*nx + ny*ny
			if d2 > 1+2/r {
				continue
			}
			edge := math.Max(0, math.Min(1, (1-math.Sqrt(d2))*r+0.5))
			nz := math.Sqrt(math.Max(0, 1-d2))
			n := mgl64.Vec3{nx, ny, nz}

			f := Fresnel(nz, ior) * math.Max(s.EnvIntensity, 0)
			body := (1-s.Transmission)*(1-f) + 0.04*s.Thickness

			col := tint.Mul(body).Add(rim.Mul(f)).Add(ambient.Mul(0.5))
			spec := 0.0
			for _, l := range s.Lights {
				dir := l.Dir
				if dir.Len() == 0 {
					continue
				}
				h := dir.Normalize().Add(view).Normalize()
				k := math.Pow(math.Max(0, n.Dot(h)), shininess) * l.Intensity * (0.5 + 0.5*s.Clearcoat)
				spec += k
				col = col.Add(rgb(l.Color, mgl64.Vec3{1, 1, 1}).Mul(k))
			}

			a := math.Min(1, f+body+spec) * s.Opacity * edge
			if a <= 0 {
				continue
			}
			col = mgl64.Vec3{math.Min(col[0], 1), math.Min(col[1], 1), math.Min(col[2], 1)}
			img.SetRGBA(px, py, color.RGBA{
				R: uint8(col[0] * a * 255),
				G: uint8(col[1] * a * 255),
				B: uint8(col[2] * a * 255),
				A: uint8(a * 255),
			})
		}
	}
	return img
}

// VerticalGradient returns a 1 x height image fading from top to bottom.
func VerticalGradient(height int, top, bottom color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, height))
	t0 := rgb(top, mgl64.Vec3{})
	b0 := rgb(bottom, mgl64.Vec3{})
	for y := 0; y < height; y++ {
		k := 0.0
		if height > 1 {
			k = float64(y) / float64(height-1)
		}
		c := t0.Mul(1 - k).Add(b0.Mul(k))
		img.SetRGBA(0, y, color.RGBA{R: uint8(c[0]*255 + 0.5), G: uint8(c[1]*255 + 0.5), B: uint8(c[2]*255 + 0.5), A: 0xff})
	}
	return img
}

func rgb(c color.Color, fallback mgl64.Vec3) mgl64.Vec3 {
	if c == nil {
		return fallback
	}
	r, g, b, _ := color.NRGBAModel.Convert(c).RGBA()
	return mgl64.Vec3{float64(r) / 0xffff, float64(g) / 0xffff, float64(b) / 0xffff}
}
