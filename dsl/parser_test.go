package dsl_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/ByLCY/edgeposter/dsl"
	"github.com/ByLCY/edgeposter/layout"
)

const sampleDSL = `
// launch poster
poster "16:9" Neon seed 42 {
  title: "Ship it, ${user.name}!"
  subtitle: "Edge rendering"   # trailing comment
  /* footer keeps the default */
}
`

func TestParseDocument(t *testing.T) {
	doc, err := dsl.ParseString(sampleDSL)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(doc.Header) != 3 {
		t.Fatalf("expected 3 header args, got %d", len(doc.Header))
	}
	if doc.Header[0].Aspect == nil || string(*doc.Header[0].Aspect) != "16:9" {
		t.Fatalf("expected aspect header, got %+v", doc.Header[0])
	}
	if doc.Header[1].Theme == nil || *doc.Header[1].Theme != "Neon" {
		t.Fatalf("expected theme header, got %+v", doc.Header[1])
	}
	if doc.Header[2].Seed == nil || *doc.Header[2].Seed != "42" {
		t.Fatalf("expected seed header, got %+v", doc.Header[2])
	}
	if len(doc.Block.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(doc.Block.Statements))
	}
	title := doc.Block.Statements[0]
	if title.Key != "title" || title.Value.Text() != "Ship it, ${user.name}!" {
		t.Fatalf("unexpected title statement %+v", title)
	}
}

func TestDocumentRequest(t *testing.T) {
	doc, err := dsl.ParseString(sampleDSL)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	req, err := doc.Request()
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	want := layout.Request{
		Aspect:   layout.AspectLandscape,
		Theme:    layout.ThemeNeon,
		Title:    "Ship it, ${user.name}!",
		Subtitle: "Edge rendering",
		Seed:     42,
	}
	if req != want {
		t.Fatalf("unexpected request\n got %+v\nwant %+v", req, want)
	}
}

func TestBlockOverridesHeader(t *testing.T) {
	doc, err := dsl.ParseString(`poster "9:16" cyber { theme: Minimal; seed: 7; aspect: "1x1" }`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	req, err := doc.Request()
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if req.Aspect != layout.AspectSquare || req.Theme != layout.ThemeMinimal || req.Seed != 7 {
		t.Fatalf("unexpected request %+v", req)
	}
}

func TestHeaderIsOptional(t *testing.T) {
	doc, err := dsl.ParseString("poster {\n}\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	req, err := doc.Request()
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if req != (layout.Request{}) {
		t.Fatalf("expected empty request, got %+v", req)
	}
}

func TestRequestErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":   `poster { color: "red" }`,
		"bad theme":     `poster Retro { }`,
		"bad aspect":    `poster "4:3" { }`,
		"seed overflow": `poster { seed: 4294967296 }`,
		"seed type":     `poster { seed: "42" }`,
		"title type":    `poster { title: 12 }`,
	}
	for name, src := range cases {
		doc, err := dsl.ParseString(src)
		if err != nil {
			t.Fatalf("%s: parse failed: %v", name, err)
		}
		if _, err := doc.Request(); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestRequestUnrecognizedIsSentinel(t *testing.T) {
	doc, err := dsl.ParseString(`poster Retro { }`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = doc.Request()
	if !errors.Is(err, layout.ErrUnrecognized) {
		t.Fatalf("expected ErrUnrecognized, got %v", err)
	}
	if !strings.Contains(err.Error(), "1:") {
		t.Fatalf("expected position in error, got %v", err)
	}
}

func TestParseRejectsMissingBlock(t *testing.T) {
	if _, err := dsl.ParseString(`poster "9:16" Cyber`); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestParseReader(t *testing.T) {
	doc, err := dsl.Parse("inline.poster", strings.NewReader("poster {\n  footer: \"bye\"\n}"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	req, err := doc.Request()
	if err != nil || req.Footer != "bye" {
		t.Fatalf("unexpected result %+v, %v", req, err)
	}
}

func TestParseExampleFile(t *testing.T) {
	f, err := os.Open("../examples/launch.poster")
	if err != nil {
		t.Fatalf("open example: %v", err)
	}
	defer f.Close()
	doc, err := dsl.Parse("launch.poster", f)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	req, err := doc.Request()
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if req.Aspect != layout.AspectPortrait || req.Theme != layout.ThemeCyber || req.Seed != 20250101 {
		t.Fatalf("unexpected request %+v", req)
	}
}
