package px2rem

import (
	"slices"
	"sync"
	"testing"

	"pxrem/style"
	"pxrem/unitless"
)

// nodeOf builds node from alternating keys and values.
func nodeOf(kv ...any) *style.Node {
	n := style.NewNode()
	for i := 0; i+1 < len(kv); i += 2 {
		n.Set(kv[i].(string), kv[i+1])
	}
	return n
}

// assertNode compares keys (order included) and values of two nodes. Nested
// nodes are compared by identity.
func assertNode(t *testing.T, got, want *style.Node) {
	t.Helper()
	gotKeys, wantKeys := slices.Collect(got.Keys()), slices.Collect(want.Keys())
	if !slices.Equal(gotKeys, wantKeys) {
		t.Fatalf("keys = %q, want %q", gotKeys, wantKeys)
	}
	for key, wv := range want.All() {
		gv, _ := got.Get(key)
		if gv != wv {
			t.Errorf("%q = %#v, want %#v", key, gv, wv)
		}
	}
}

func TestRewrite_Scenario(t *testing.T) {
	conv := New(unitless.Default)
	in := nodeOf("margin", "10px 20px", "opacity", 1, "width", "calc(100% - 10px)")

	got := conv.Rewrite(in)

	assertNode(t, got, nodeOf("margin", "0.625rem 1.25rem", "opacity", 1, "width", "calc(100% - 0.625rem)"))
}

func TestRewrite_ZeroNumberUntouched(t *testing.T) {
	conv := New(unitless.Default)
	got := conv.Rewrite(nodeOf("fontSize", 0))
	assertNode(t, got, nodeOf("fontSize", 0.0))
}

func TestRewrite_StringValues(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		in   string
		want string
	}{
		{name: "single token", in: "16px", want: "1rem"},
		{name: "several tokens", in: "1px solid 2px", want: "0.0625rem solid 0.125rem"},
		{name: "fraction", in: "10.5px", want: "0.65625rem"},
		{name: "leading dot", in: ".5px", want: "0.03125rem"},
		{name: "negative", in: "-10px", want: "-0.625rem"},
		{name: "other units kept", in: "1rem 2em 50% 3vh", want: "1rem 2em 50% 3vh"},
		{name: "px inside word only", in: "expx", want: "expx"},
		{name: "zero collapses", in: "0px 8px", want: "0 0.5rem"},
		{name: "tiny rounds to bare zero", in: "0.00001px", want: "0"},
		{name: "url kept", in: "url(/a/1px.png) 10px", want: "url(/a/1px.png) 0.625rem"},
		{name: "var kept", in: "var(--gap-1px)", want: "var(--gap-1px)"},
		{name: "var fallback kept", in: "var(--gap, 16px) 16px", want: "var(--gap, 16px) 1rem"},
		{name: "calc keeps zero unit", in: "calc(100% - 0.00001px)", want: "calc(100% - 0rem)"},
		{name: "calc detected after trim", in: "  calc(0px + 1px)", want: "  calc(0rem + 0.0625rem)"},
		{name: "calc inside keeps default rule", in: "min(0px, calc(1px))", want: "min(0, calc(0.0625rem))"},
		{name: "calc zero rem disabled", opts: []Option{WithCalcZeroRem(false)}, in: "calc(100% - 0px)", want: "calc(100% - 0)"},
		{name: "precision 2", opts: []Option{WithPrecision(2)}, in: "10px", want: "0.63rem"},
		{name: "precision 0 ties away from zero", opts: []Option{WithPrecision(0)}, in: "8px 24px", want: "1rem 2rem"},
		{name: "precision 3", opts: []Option{WithPrecision(3)}, in: "7px", want: "0.438rem"},
		{name: "root value 10", opts: []Option{WithRootValue(10)}, in: "15px", want: "1.5rem"},
		{name: "min pixel value", opts: []Option{WithMinPixelValue(2)}, in: "1px 2px 3px", want: "1px 0.125rem 0.1875rem"},
		{name: "zero root value", opts: []Option{WithRootValue(0)}, in: "16px 0px", want: "Infinityrem NaNrem"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := New(unitless.Default, tt.opts...)
			got := conv.Rewrite(nodeOf("value", tt.in))
			if v, _ := got.Get("value"); v != tt.want {
				t.Errorf("Rewrite(%q) = %q, want %q", tt.in, v, tt.want)
			}
			if cv := conv.ConvertValue(tt.in); cv != tt.want {
				t.Errorf("ConvertValue(%q) = %q, want %q", tt.in, cv, tt.want)
			}
		})
	}
}

func TestRewrite_NumberValues(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		key  string
		in   float64
		want any
	}{
		{name: "length", key: "width", in: 24, want: "1.5rem"},
		{name: "negative length", key: "marginTop", in: -8, want: "-0.5rem"},
		{name: "fraction", key: "top", in: 0.5, want: "0.03125rem"},
		{name: "tiny collapses to string zero", key: "left", in: 0.00001, want: "0"},
		{name: "unitless kept", key: "opacity", in: 2, want: 2.0},
		{name: "unitless zIndex kept", key: "zIndex", in: 10, want: 10.0},
		{name: "zero kept as number", key: "width", in: 0, want: 0.0},
		{name: "below minimum keeps px", opts: []Option{WithMinPixelValue(2)}, key: "width", in: 1, want: "1px"},
		{name: "calc rule never applies", key: "width", in: 0.00001, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := New(unitless.Default, tt.opts...)
			got := conv.Rewrite(nodeOf(tt.key, tt.in))
			if v, _ := got.Get(tt.key); v != tt.want {
				t.Errorf("Rewrite(%s: %v) = %#v, want %#v", tt.key, tt.in, v, tt.want)
			}
		})
	}
}

func TestRewrite_UnitlessSets(t *testing.T) {
	t.Run("nil set converts everything", func(t *testing.T) {
		got := New(nil).Rewrite(nodeOf("opacity", 16))
		if v, _ := got.Get("opacity"); v != "1rem" {
			t.Errorf("opacity = %#v, want 1rem", v)
		}
	})

	t.Run("custom function", func(t *testing.T) {
		conv := New(UnitlessFunc(func(key string) bool { return key == "ratio" }))
		got := conv.Rewrite(nodeOf("ratio", 16, "width", 16))
		assertNode(t, got, nodeOf("ratio", 16, "width", "1rem"))
	})

	t.Run("unitless string values are still converted", func(t *testing.T) {
		got := New(unitless.Default).Rewrite(nodeOf("lineHeight", "24px"))
		if v, _ := got.Get("lineHeight"); v != "1.5rem" {
			t.Errorf("lineHeight = %#v, want 1.5rem", v)
		}
	})
}

func TestRewrite_MediaQueryKeys(t *testing.T) {
	inner := nodeOf("width", "100%")

	tests := []struct {
		name string
		opts []Option
		in   *style.Node
		want *style.Node
	}{
		{
			name: "disabled by default",
			in:   nodeOf("@media (min-width: 768px)", inner, "color", "red"),
			want: nodeOf("@media (min-width: 768px)", inner, "color", "red"),
		},
		{
			name: "renamed and moved to the end",
			opts: []Option{WithMediaQuery(true)},
			in:   nodeOf("@media (min-width: 768px)", inner, "color", "red"),
			want: nodeOf("color", "red", "@media (min-width: 48rem)", inner),
		},
		{
			name: "any at-rule",
			opts: []Option{WithMediaQuery(true)},
			in:   nodeOf("@container (min-width: 320px)", inner),
			want: nodeOf("@container (min-width: 20rem)", inner),
		},
		{
			name: "leading whitespace",
			opts: []Option{WithMediaQuery(true)},
			in:   nodeOf(" @media (max-width: 1px)", inner),
			want: nodeOf(" @media (max-width: 0.0625rem)", inner),
		},
		{
			name: "selector key left alone",
			opts: []Option{WithMediaQuery(true)},
			in:   nodeOf("& .icon-16px", inner),
			want: nodeOf("& .icon-16px", inner),
		},
		{
			name: "at-rule without px",
			opts: []Option{WithMediaQuery(true)},
			in:   nodeOf("@media print", inner),
			want: nodeOf("@media print", inner),
		},
		{
			name: "zero collapses in key",
			opts: []Option{WithMediaQuery(true)},
			in:   nodeOf("@media (min-width: 0px)", inner),
			want: nodeOf("@media (min-width: 0)", inner),
		},
		{
			name: "protected token keeps key",
			opts: []Option{WithMediaQuery(true)},
			in:   nodeOf("@supports (width: var(--w-1px))", inner),
			want: nodeOf("@supports (width: var(--w-1px))", inner),
		},
		{
			name: "key and string value both converted",
			opts: []Option{WithMediaQuery(true)},
			in:   nodeOf("@media (min-width: 16px)", "8px"),
			want: nodeOf("@media (min-width: 1rem)", "0.5rem"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(unitless.Default, tt.opts...).Rewrite(tt.in)
			assertNode(t, got, tt.want)
		})
	}
}

func TestRewrite_DoesNotModifyInput(t *testing.T) {
	inner := nodeOf("padding", "8px")
	in := nodeOf("margin", "16px", "width", 32, "@media (min-width: 16px)", inner)

	conv := New(unitless.Default, WithMediaQuery(true))
	got := conv.Rewrite(in)

	assertNode(t, in, nodeOf("margin", "16px", "width", 32, "@media (min-width: 16px)", inner))
	if v, _ := inner.Get("padding"); v != "8px" {
		t.Errorf("nested node modified: %v", v)
	}
	if v, _ := got.Get("@media (min-width: 1rem)"); v != inner {
		t.Error("nested node should be passed through by identity")
	}
}

func TestRewrite_Deterministic(t *testing.T) {
	conv := New(unitless.Default, WithMediaQuery(true))
	in := nodeOf("margin", "10px 20px", "@media (min-width: 768px)", nodeOf("a", "b"), "flexGrow", 1, "top", 4)

	first := conv.Rewrite(in)
	second := conv.Rewrite(in)
	assertNode(t, second, first)
}

func TestRewrite_Nil(t *testing.T) {
	if New(nil).Rewrite(nil) != nil {
		t.Error("Rewrite(nil) should return nil")
	}
}

func TestRewrite_Concurrent(t *testing.T) {
	conv := New(unitless.Default, WithMediaQuery(true))
	in := nodeOf("margin", "10px 20px", "width", 24, "@media (min-width: 768px)", nodeOf("a", "b"))
	want := conv.Rewrite(in)

	var wg sync.WaitGroup
	results := make([]*style.Node, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = conv.Rewrite(in)
		}()
	}
	wg.Wait()

	for _, got := range results {
		assertNode(t, got, want)
	}
}

func TestConverter_WalkTree(t *testing.T) {
	tree := nodeOf(
		"fontSize", 14,
		"@media (min-width: 768px)", nodeOf(
			"fontSize", 16,
			"&:hover", nodeOf("borderWidth", "2px"),
		),
	)

	got := style.Walk(tree, New(unitless.Default, WithMediaQuery(true)))

	if v, _ := got.Get("fontSize"); v != "0.875rem" {
		t.Errorf("fontSize = %#v, want 0.875rem", v)
	}
	media, ok := got.Get("@media (min-width: 48rem)")
	if !ok {
		t.Fatalf("media key not converted, keys: %q", slices.Collect(got.Keys()))
	}
	if v, _ := media.(*style.Node).Get("fontSize"); v != "1rem" {
		t.Errorf("nested fontSize = %#v, want 1rem", v)
	}
	hover, _ := media.(*style.Node).Get("&:hover")
	if v, _ := hover.(*style.Node).Get("borderWidth"); v != "0.125rem" {
		t.Errorf("nested borderWidth = %#v, want 0.125rem", v)
	}
}

func TestConverter_InChain(t *testing.T) {
	suffix := style.TransformerFunc(func(node *style.Node) *style.Node {
		out := node.Clone()
		out.Set("margin", "auto")
		return out
	})
	chain := style.Chain(New(nil), suffix)

	got := chain.Visit(nodeOf("width", "32px", "margin", "8px"))
	assertNode(t, got, nodeOf("width", "2rem", "margin", "auto"))
}

func TestNew_Options(t *testing.T) {
	conv := New(nil)
	if got := conv.Options(); got != DefaultOptions() {
		t.Errorf("Options() = %+v, want defaults %+v", got, DefaultOptions())
	}

	custom := Options{RootValue: 10, Precision: 2, MinPixelValue: 1, MediaQuery: true}
	conv = New(nil, WithOptions(custom), WithPrecision(3))
	want := custom
	want.Precision = 3
	if got := conv.Options(); got != want {
		t.Errorf("Options() = %+v, want %+v", got, want)
	}
}
