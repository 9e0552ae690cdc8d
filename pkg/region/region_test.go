package region

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		api  string
		want bool
	}{
		{name: "Simple", api: "org", want: true},
		{name: "Dotted", api: "org.apache.felix.inventory", want: true},
		{name: "UnderscoreSegment", api: "org.apache._internal", want: true},
		{name: "DigitsInSegment", api: "org.apache.sling2", want: true},
		{name: "Empty", api: "", want: false},
		{name: "LeadingDigit", api: "123bad", want: false},
		{name: "UppercaseFirstSegment", api: "Org.apache", want: false},
		{name: "TrailingDot", api: "org.apache.", want: false},
		{name: "DashSegment", api: "javax.jms.doc-files", want: false},
		{name: "ReservedWordSegment", api: "org.apache.commons.lang.enum", want: false},
		{name: "ReservedWordOnly", api: "org.apache.new", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			r, err := c.Create("global")
			if err != nil {
				t.Fatalf("Create: %v", err)
			}

			if got := r.Add(tt.api); got != tt.want {
				t.Errorf("Add(%q) = %v, want %v", tt.api, got, tt.want)
			}
			if got := r.Contains(tt.api); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.api, got, tt.want)
			}
		})
	}
}

func TestAddIdempotent(t *testing.T) {
	c := New()
	r, _ := c.Create("base")

	if !r.Add("org.apache.felix") {
		t.Fatal("first Add should succeed")
	}
	if r.Add("org.apache.felix") {
		t.Error("second Add of the same identifier should report false")
	}
	if got := len(r.Exports()); got != 1 {
		t.Errorf("Exports() has %d entries, want 1", got)
	}
}

func TestAddRejectsInherited(t *testing.T) {
	c := New()
	base, _ := c.Create("base")
	ext, _ := c.Create("extended")

	base.Add("org.apache.felix.inventory")

	if ext.Add("org.apache.felix.inventory") {
		t.Error("Add should reject an identifier already exported by an ancestor")
	}
	if len(ext.Exports()) != 0 {
		t.Errorf("extended own exports = %v, want none", ext.Exports())
	}
}

func TestContainsPropagatesToDescendants(t *testing.T) {
	c := New()
	base, _ := c.Create("base")
	base.Add("org.apache.felix.inventory")

	mid, _ := c.Create("mid")
	leaf, _ := c.Create("leaf")

	for _, r := range []*Region{base, mid, leaf} {
		if !r.Contains("org.apache.felix.inventory") {
			t.Errorf("region %q should contain the inherited identifier", r.Name())
		}
	}
	if base.Contains("") {
		t.Error("empty identifier must never be contained")
	}
}

func TestRemoveMutatesNearestHolder(t *testing.T) {
	c := New()
	base, _ := c.Create("base")
	ext, _ := c.Create("extended")

	base.Add("org.apache.felix.inventory")
	ext.Add("org.apache.felix.scr.component")

	// Removing through the child reaches the ancestor that declared it.
	if !ext.Remove("org.apache.felix.inventory") {
		t.Fatal("Remove should find the identifier in the ancestor chain")
	}
	if base.Contains("org.apache.felix.inventory") {
		t.Error("identifier should be gone from the ancestor")
	}

	if ext.Remove("org.apache.felix.inventory") {
		t.Error("second Remove should report false")
	}
	if ext.Remove("") {
		t.Error("Remove of empty identifier should report false")
	}
	if !ext.Contains("org.apache.felix.scr.component") {
		t.Error("unrelated entries must survive Remove")
	}
}

func TestIsEmpty(t *testing.T) {
	c := New()
	base, _ := c.Create("base")
	ext, _ := c.Create("extended")

	if !ext.IsEmpty() {
		t.Error("fresh chain should be empty")
	}

	base.Add("org.apache.felix.inventory")
	if ext.IsEmpty() {
		t.Error("region with a non-empty ancestor is not empty")
	}

	base.Remove("org.apache.felix.inventory")
	if !ext.IsEmpty() {
		t.Error("chain should be empty again after removal")
	}
}

func TestAddAll(t *testing.T) {
	c := New()
	r, _ := c.Create("base")

	in := []string{"org.apache.felix", "123bad", "", "org.apache.sling", "org.apache.felix"}
	if err := r.AddAll(slices.Values(in)); err != nil {
		t.Fatalf("AddAll: %v", err)
	}

	want := []string{"org.apache.felix", "org.apache.sling"}
	if got := r.Exports(); !slices.Equal(got, want) {
		t.Errorf("Exports() = %v, want %v", got, want)
	}
}

func TestAddAllNilSequence(t *testing.T) {
	c := New()
	r, _ := c.Create("base")

	err := r.AddAll(nil)
	if !errors.Is(err, ErrNilSequence) {
		t.Errorf("AddAll(nil) error = %v, want ErrNilSequence", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		api  string
		want error
	}{
		{api: "org.apache.felix", want: nil},
		{api: "", want: ErrInvalidIdentifier},
		{api: "123bad", want: ErrInvalidIdentifier},
		{api: "org.apache.commons.lang.enum", want: ErrReservedWord},
		{api: "while", want: ErrReservedWord},
	}

	for _, tt := range tests {
		err := Validate(tt.api)
		if tt.want == nil && err != nil {
			t.Errorf("Validate(%q) = %v, want nil", tt.api, err)
		}
		if tt.want != nil && !errors.Is(err, tt.want) {
			t.Errorf("Validate(%q) = %v, want %v", tt.api, err, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	c := New()
	base, _ := c.Create("base")
	base.Add("org.apache.felix.inventory")
	ext, _ := c.Create("extended")
	ext.Add("org.apache.felix.scr.component")

	s := ext.String()
	for _, want := range []string{
		`Region "extended"`,
		"inherits from",
		`Region "base"`,
		" * org.apache.felix.inventory",
		" * org.apache.felix.scr.component",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestAllOrderNearestFirst(t *testing.T) {
	c := New()
	a, _ := c.Create("a")
	b, _ := c.Create("b")
	d, _ := c.Create("c")

	a.Add("x")
	b.Add("y")
	d.Add("z")

	got := slices.Collect(d.All())
	want := []string{"z", "y", "x"}
	if !slices.Equal(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}

	// A second traversal restarts from scratch and sees live membership.
	d.Add("zz")
	if got := slices.Collect(d.All()); len(got) != 4 {
		t.Errorf("restarted All() yielded %v, want 4 elements", got)
	}
}
