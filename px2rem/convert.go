package px2rem

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"pxrem/style"
)

// pxPattern alternation order matters: complete url() and var() calls are
// consumed first so digits followed by "px" inside them never reach the
// numeric branch.
var pxPattern = regexp.MustCompile(`url\([^)]+\)|var\([^)]+\)|(\d*\.?\d+)px`)

// replacePixels converts every pixel token in s. keepUnit selects calc rule.
func (c *Converter) replacePixels(s string, keepUnit bool) string {
	matches := pxPattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	last := 0
	for _, m := range matches {
		sb.WriteString(s[last:m[0]])
		if m[2] < 0 {
			// url() or var()
			sb.WriteString(s[m[0]:m[1]])
		} else {
			sb.WriteString(c.convertToken(s[m[0]:m[1]], s[m[2]:m[3]], keepUnit))
		}
		last = m[1]
	}
	sb.WriteString(s[last:])
	return sb.String()
}

// convertToken converts single matched token, number is its numeric part.
func (c *Converter) convertToken(token, number string, keepUnit bool) string {
	pixels, err := strconv.ParseFloat(number, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// cannot happen, pattern only captures decimal numerals
		return token
	}
	if pixels < c.opts.MinPixelValue {
		return token
	}
	fixed := toFixed(pixels/c.opts.RootValue, c.opts.Precision)
	if fixed == 0 && !keepUnit {
		return "0"
	}
	return style.FormatNumber(fixed) + "rem"
}

// toFixed rounds value to precision digits, ties away from zero. Value is
// truncated to precision+1 digits before rounding.
func toFixed(value float64, precision int) float64 {
	multiplier := math.Pow(10, float64(precision+1))
	whole := math.Floor(value * multiplier)
	return math.Round(whole/10) / math.Pow(10, float64(precision))
}
