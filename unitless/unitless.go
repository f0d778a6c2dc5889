// Package unitless provides sets of style property names whose bare numeric
// values are not lengths.
package unitless

// Set is a read-only lookup of property names. Keys are matched exactly, as
// they appear in style objects (camelCase).
type Set map[string]struct{}

// New creates set from names.
func New(names ...string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// With returns a new set containing names of s and additional names.
func (s Set) With(names ...string) Set {
	out := make(Set, len(s)+len(names))
	for name := range s {
		out[name] = struct{}{}
	}
	for _, name := range names {
		out[name] = struct{}{}
	}
	return out
}

// Default mirrors property list used by CSS-in-JS serializers (emotion's
// unitless table).
var Default = New(
	"animationIterationCount",
	"aspectRatio",
	"borderImageOutset",
	"borderImageSlice",
	"borderImageWidth",
	"boxFlex",
	"boxFlexGroup",
	"boxOrdinalGroup",
	"columnCount",
	"columns",
	"flex",
	"flexGrow",
	"flexPositive",
	"flexShrink",
	"flexNegative",
	"flexOrder",
	"gridRow",
	"gridRowEnd",
	"gridRowSpan",
	"gridRowStart",
	"gridColumn",
	"gridColumnEnd",
	"gridColumnSpan",
	"gridColumnStart",
	"msGridRow",
	"msGridRowSpan",
	"msGridColumn",
	"msGridColumnSpan",
	"fontWeight",
	"lineHeight",
	"opacity",
	"order",
	"orphans",
	"scale",
	"tabSize",
	"widows",
	"zIndex",
	"zoom",
	"WebkitLineClamp",

	// SVG-related properties
	"fillOpacity",
	"floodOpacity",
	"stopOpacity",
	"strokeDasharray",
	"strokeDashoffset",
	"strokeMiterlimit",
	"strokeOpacity",
	"strokeWidth",
)
