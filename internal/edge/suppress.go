package edge

// directionSlope is tan(67.5 degrees). Comparing |gy| and |gx| against it
// buckets the gradient direction into 45-degree sectors without computing
// the angle itself.
const directionSlope = 2.4142

// Suppress performs non-maximum suppression on a gradient magnitude buffer.
//
// Each interior pixel is compared against its two neighbors along the
// gradient direction; it survives only as a local maximum (ties survive on
// both sides, keeping two-pixel ridges intact for hysteresis). The gradient
// direction is bucketed into vertical, horizontal, and the two diagonals:
//
//   - |gy| > |gx|*2.4142: vertical gradient, compare above/below
//   - |gx| > |gy|*2.4142: horizontal gradient, compare left/right
//   - otherwise diagonal, chosen by the sign product of gx and gy
//
// Zero-magnitude pixels and the image border stay zero. The returned buffer
// never exceeds the input anywhere.
func Suppress(mag []float32, gx, gy []int16, width, height int) []float32 {
	out := make([]float32, len(mag))

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			idx := y*width + x
			m := mag[idx]
			if m == 0 {
				continue
			}

			dx := int(gx[idx])
			dy := int(gy[idx])
			absX := dx
			if absX < 0 {
				absX = -absX
			}
			absY := dy
			if absY < 0 {
				absY = -absY
			}

			var n1, n2 float32
			switch {
			case float64(absY) > float64(absX)*directionSlope:
				n1, n2 = mag[idx-width], mag[idx+width]
			case float64(absX) > float64(absY)*directionSlope:
				n1, n2 = mag[idx-1], mag[idx+1]
			case (dx > 0) == (dy > 0):
				// 45 degrees: ridge runs top-right to bottom-left.
				n1, n2 = mag[idx-width+1], mag[idx+width-1]
			default:
				// 135 degrees: ridge runs top-left to bottom-right.
				n1, n2 = mag[idx-width-1], mag[idx+width+1]
			}

			if m >= n1 && m >= n2 {
				out[idx] = m
			}
		}
	}
	return out
}
