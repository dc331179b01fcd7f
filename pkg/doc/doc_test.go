package doc

import (
	"strings"
	"testing"

	"github.com/matzehuels/boxkit/pkg/errors"
)

func TestValidateUnknownOp(t *testing.T) {
	d := &Document{Root: Node{Op: "spin"}}
	err := d.Validate()
	if !errors.Is(err, errors.ErrCodeInvalidDocument) {
		t.Errorf("Validate error = %v, want INVALID_DOCUMENT", err)
	}
	if err == nil || !strings.Contains(err.Error(), "root") {
		t.Errorf("error should name the node path, got %v", err)
	}
}

func TestValidateArity(t *testing.T) {
	d := &Document{Root: Node{
		Op:       OpBeside,
		Children: []Node{{Op: OpEmpty}},
	}}
	if err := d.Validate(); !errors.Is(err, errors.ErrCodeInvalidDocument) {
		t.Errorf("beside with one child: error = %v, want INVALID_DOCUMENT", err)
	}
}

func TestValidateFillChar(t *testing.T) {
	for _, char := range []string{"", "ab"} {
		d := &Document{Root: Node{Op: OpFill, Char: char, Height: 1, Width: 1}}
		if err := d.Validate(); !errors.Is(err, errors.ErrCodeInvalidDocument) {
			t.Errorf("fill char %q: error = %v, want INVALID_DOCUMENT", char, err)
		}
	}
}

func TestValidateNestedPath(t *testing.T) {
	d := &Document{Root: Node{
		Op: OpFramed,
		Children: []Node{{
			Op:       OpHConcat,
			Children: []Node{{Op: OpEmpty}, {Op: "bogus"}},
		}},
	}}
	err := d.Validate()
	if err == nil || !strings.Contains(err.Error(), "root.children[0].children[1]") {
		t.Errorf("error should carry the nested path, got %v", err)
	}
}

func TestBuild(t *testing.T) {
	d := &Document{
		Name: "banner",
		Root: Node{
			Op:       OpFramed,
			Children: []Node{{Op: OpText, Text: "hi"}},
		},
	}
	b, err := Build(d)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	want := "+--+\n|hi|\n+--+"
	if got := b.String(); got != want {
		t.Errorf("Build = %q, want %q", got, want)
	}
}

func TestBuildGrid(t *testing.T) {
	d := &Document{Root: Node{
		Op:     OpGrid,
		HAlign: "left",
		VAlign: "top",
		Cells: [][]Node{
			{{Op: OpText, Text: "a"}, {Op: OpFill, Char: "b", Height: 2, Width: 1}},
			{{Op: OpFill, Char: "c", Height: 1, Width: 3}, {Op: OpText, Text: "d"}},
		},
	}}
	b, err := Build(d)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	want := "a  b\n   b\ncccd"
	if got := b.String(); got != want {
		t.Errorf("Build = %q, want %q", got, want)
	}
}

func TestBuildInvalidDimension(t *testing.T) {
	d := &Document{Root: Node{Op: OpFill, Char: "x", Height: -1, Width: 2}}
	err := func() error { _, err := Build(d); return err }()
	if !errors.Is(err, errors.ErrCodeInvalidDimension) {
		t.Errorf("Build error = %v, want INVALID_DIMENSION", err)
	}
}

func TestBuildWidenBelowCurrent(t *testing.T) {
	d := &Document{Root: Node{
		Op:       OpWiden,
		Width:    1,
		Children: []Node{{Op: OpFill, Char: "x", Height: 1, Width: 3}},
	}}
	_, err := Build(d)
	if !errors.Is(err, errors.ErrCodeInvalidDimension) {
		t.Errorf("Build error = %v, want INVALID_DIMENSION", err)
	}
}

func TestBuildBadAlignment(t *testing.T) {
	d := &Document{Root: Node{
		Op:       OpVConcat,
		HAlign:   "sideways",
		Children: []Node{{Op: OpEmpty}},
	}}
	_, err := Build(d)
	if !errors.Is(err, errors.ErrCodeInvalidDocument) {
		t.Errorf("Build error = %v, want INVALID_DOCUMENT", err)
	}
}

func TestBuildDefaultsToCenter(t *testing.T) {
	// Omitted alignments mean centering on both axes.
	d := &Document{Root: Node{
		Op: OpAbove,
		Children: []Node{
			{Op: OpText, Text: "a"},
			{Op: OpFill, Char: "b", Height: 1, Width: 3},
		},
	}}
	b, err := Build(d)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if got := b.String(); got != " a \nbbb" {
		t.Errorf("Build = %q, want %q", got, " a \nbbb")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := &Document{
		Name: "roundtrip",
		Root: Node{
			Op:     OpHConcat,
			VAlign: "bottom",
			Children: []Node{
				{Op: OpFill, Char: "#", Height: 3, Width: 2},
				{Op: OpText, Text: "x"},
			},
		},
	}

	data, err := Marshal(d)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	h1, _ := Hash(d)
	h2, _ := Hash(back)
	if h1 != h2 {
		t.Error("round trip changed the document hash")
	}
}

func TestUnmarshalRejectsInvalid(t *testing.T) {
	if _, err := Unmarshal([]byte(`{"root":{"op":"nope"}}`)); err == nil {
		t.Error("Unmarshal should validate the document")
	}
	if _, err := Unmarshal([]byte(`{not json`)); err == nil {
		t.Error("Unmarshal should reject malformed JSON")
	}
}

func TestReadTOML(t *testing.T) {
	src := `
name = "banner"

[root]
op = "framed"

  [[root.children]]
  op = "text"
  text = "hi"
`
	d, err := ReadTOML(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadTOML error: %v", err)
	}
	b, err := Build(d)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if got := b.String(); got != "+--+\n|hi|\n+--+" {
		t.Errorf("Build = %q", got)
	}
}

func TestHashIsDeterministic(t *testing.T) {
	d := &Document{Root: Node{Op: OpText, Text: "same"}}
	h1, err := Hash(d)
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	h2, _ := Hash(d)
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length = %d, want 64", len(h1))
	}

	other := &Document{Root: Node{Op: OpText, Text: "different"}}
	h3, _ := Hash(other)
	if h1 == h3 {
		t.Error("different documents should hash differently")
	}
}

func TestToDOT(t *testing.T) {
	d := &Document{Root: Node{
		Op:     OpBeside,
		VAlign: "top",
		Children: []Node{
			{Op: OpText, Text: "a"},
			{Op: OpFill, Char: "b", Height: 2, Width: 1},
		},
	}}
	dot := ToDOT(d)

	for _, want := range []string{
		"digraph layout {",
		`"beside top"`,
		`text \"a\"`,
		"n0 -> n1",
		"n0 -> n2",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT output missing %q:\n%s", want, dot)
		}
	}
}
