package style

import (
	"bytes"
	"testing"
)

func TestPropertyName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"fontSize", "font-size"},
		{"margin", "margin"},
		{"borderTopLeftRadius", "border-top-left-radius"},
		{"WebkitLineClamp", "-webkit-line-clamp"},
		{"msGridRow", "-ms-grid-row"},
		{"msg", "msg"},
		{"--gapSize", "--gapSize"},
		{"font-size", "font-size"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := PropertyName(tt.in); got != tt.want {
				t.Errorf("PropertyName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNestSelector(t *testing.T) {
	tests := []struct {
		name           string
		parent, nested string
		want           string
	}{
		{name: "descendant", parent: ".a", nested: "span", want: ".a span"},
		{name: "ampersand", parent: ".a", nested: "&:hover", want: ".a:hover"},
		{name: "ampersand twice", parent: ".a", nested: "& + &", want: ".a + .a"},
		{name: "lists", parent: ".a, .b", nested: "&:hover, i", want: ".a:hover, .b:hover, .a i, .b i"},
		{name: "no parent", parent: "", nested: "&.x", want: ".x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NestSelector(tt.parent, tt.nested); got != tt.want {
				t.Errorf("NestSelector(%q, %q) = %q, want %q", tt.parent, tt.nested, got, tt.want)
			}
		})
	}
}

func TestWriteCSS(t *testing.T) {
	n := nodeOf(
		"fontSize", "1rem",
		"margin", 0,
		"&:hover", nodeOf("color", "red"),
		"@media (min-width: 48rem)", nodeOf("padding", "1rem", "span", nodeOf("zIndex", 2)),
		"lineHeight", 1.5,
	)

	want := `.a {
  font-size: 1rem;
  margin: 0;
  line-height: 1.5;
}
.a:hover {
  color: red;
}
@media (min-width: 48rem) {
  .a {
    padding: 1rem;
  }
  .a span {
    z-index: 2;
  }
}
`
	var buf bytes.Buffer
	n64, err := WriteCSS(&buf, ".a", n)
	if err != nil {
		t.Fatalf("WriteCSS() error = %v", err)
	}
	if buf.String() != want {
		t.Errorf("WriteCSS() =\n%s\nwant\n%s", buf.String(), want)
	}
	if n64 != int64(buf.Len()) {
		t.Errorf("WriteCSS() reported %d bytes, wrote %d", n64, buf.Len())
	}
}

func TestWriteCSS_NoSelector(t *testing.T) {
	n := nodeOf("width", "1rem", "height", "2rem")
	want := "width: 1rem;\nheight: 2rem;\n"
	if got := CSS("", n); got != want {
		t.Errorf("CSS() = %q, want %q", got, want)
	}
}

func TestWriteCSS_Empty(t *testing.T) {
	if got := CSS(".a", NewNode()); got != "" {
		t.Errorf("CSS() of empty node = %q, want empty", got)
	}
}
