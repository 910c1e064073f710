package resources

import (
	"image"
	"image/color"

	"github.com/muurk/imagexplorer/internal/catalog"
)

// Placeholder pictures use a 16:9 frame.
const (
	PlaceholderWidth  = 64
	PlaceholderHeight = 36
)

var builtinTexts = map[catalog.TextRef]string{
	catalog.TitleProfessionals:  "ComPro Professionals",
	catalog.TitleAdmission:      "ComPro Admission Team",
	catalog.TitleFacultyStudent: "Faculty and Student",
	catalog.TitleFriends:        "Friends",
	catalog.TitleGraduation:     "Graduation",

	catalog.ButtonNext: "Next",
}

type palette struct {
	sky, ground, sun color.RGBA
}

var builtinPalettes = map[catalog.ImageRef]palette{
	catalog.ImageProfessionals: {
		sky:    color.RGBA{0x1E, 0x3A, 0x8A, 0xFF},
		ground: color.RGBA{0x33, 0x41, 0x55, 0xFF},
		sun:    color.RGBA{0xFA, 0xCC, 0x15, 0xFF},
	},
	catalog.ImageAdmissionTeam: {
		sky:    color.RGBA{0x7D, 0x56, 0xF4, 0xFF},
		ground: color.RGBA{0x43, 0xBF, 0x6D, 0xFF},
		sun:    color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
	},
	catalog.ImageFacultyStudent: {
		sky:    color.RGBA{0x0E, 0x74, 0x90, 0xFF},
		ground: color.RGBA{0x85, 0x4D, 0x0E, 0xFF},
		sun:    color.RGBA{0xFF, 0x8B, 0x94, 0xFF},
	},
	catalog.ImageFriends: {
		sky:    color.RGBA{0xF9, 0x73, 0x16, 0xFF},
		ground: color.RGBA{0x16, 0x65, 0x34, 0xFF},
		sun:    color.RGBA{0xFE, 0xF0, 0x8A, 0xFF},
	},
	catalog.ImageGraduation: {
		sky:    color.RGBA{0x11, 0x18, 0x27, 0xFF},
		ground: color.RGBA{0x4C, 0x1D, 0x95, 0xFF},
		sun:    color.RGBA{0xE5, 0xE7, 0xEB, 0xFF},
	},
}

// DefaultBundle resolves every reference used by catalog.Default.
func DefaultBundle() *Bundle {
	b := NewBundle()
	for ref, text := range builtinTexts {
		b.SetText(ref, text)
	}
	for ref, p := range builtinPalettes {
		b.SetPicture(ref, Placeholder(p.sky, p.ground, p.sun))
	}
	return b
}

// Placeholder draws a simple landscape card: a sky gradient, a sun disc and
// a ground band across the lower third.
func Placeholder(sky, ground, sun color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, PlaceholderWidth, PlaceholderHeight))

	horizon := PlaceholderHeight * 2 / 3
	cx, cy, radius := PlaceholderWidth*3/4, horizon/2, PlaceholderHeight/6

	for y := 0; y < PlaceholderHeight; y++ {
		for x := 0; x < PlaceholderWidth; x++ {
			var c color.RGBA
			switch {
			case y >= horizon:
				c = ground
			case (x-cx)*(x-cx)+(y-cy)*(y-cy) <= radius*radius:
				c = sun
			default:
				c = shade(sky, y, horizon)
			}
			img.SetRGBA(x, y, c)
		}
	}

	return img
}

// shade lightens c towards the horizon.
func shade(c color.RGBA, y, horizon int) color.RGBA {
	lift := func(v uint8) uint8 {
		return v + uint8(int(0xFF-v)*y/(horizon*2))
	}
	return color.RGBA{lift(c.R), lift(c.G), lift(c.B), c.A}
}
