package mdv

import "math"

// Plan holds the target render dimensions for one image. When Fits is true
// the image displays at native size and no scaling is declared.
type Plan struct {
	TargetWidth  int
	TargetHeight int
	Fits         bool
}

// PlanRender computes target dimensions that fit the viewport while
// preserving aspect ratio. Images narrower than the viewport display at
// native size. Wider images scale down to the viewport width; if the
// scaled height would still exceed the row budget, the height constraint
// drives the scale instead, so the tighter constraint always wins.
// PlanRender never upscales and never fails.
func PlanRender(nativeWidth, nativeHeight int, g Geometry) Plan {
	if nativeWidth <= 0 || nativeHeight <= 0 {
		return Plan{TargetWidth: nativeWidth, TargetHeight: nativeHeight, Fits: true}
	}

	maxWidth := g.MaxImageWidth()
	if maxWidth <= 0 || nativeWidth <= maxWidth {
		return Plan{TargetWidth: nativeWidth, TargetHeight: nativeHeight, Fits: true}
	}

	scale := float64(maxWidth) / float64(nativeWidth)
	width := maxWidth
	height := int(math.Round(float64(nativeHeight) * scale))

	if maxHeight := g.MaxImageHeight(); maxHeight > 0 && height > maxHeight {
		scale = float64(maxHeight) / float64(nativeHeight)
		height = maxHeight
		width = int(math.Round(float64(nativeWidth) * scale))
	}

	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return Plan{TargetWidth: width, TargetHeight: height}
}
