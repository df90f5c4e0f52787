package xlsx

import "math"

// MaxDigitWidth is the pixel width of the widest digit in Excel's default
// font (Calibri 11) at 96 DPI.
const MaxDigitWidth = 7

// PixelsToPoints converts a pixel height at 96 DPI to points.
// 1 inch = 72 points = 96 pixels.
func PixelsToPoints(px int) float64 {
	return float64(px) * 72 / 96
}

// PixelsToColumnWidth converts a pixel width to Excel's character-based
// column width, truncated to two decimals as Excel stores it.
func PixelsToColumnWidth(px int) float64 {
	if px <= 5 {
		return 0
	}
	w := float64(px-5) / MaxDigitWidth
	return math.Trunc(w*100+0.5) / 100
}
