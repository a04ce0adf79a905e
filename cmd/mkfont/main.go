// Command mkfont compiles an atlas font into Go source.
//
//	mkfont -src tiny3x5.txt -pkg tiny3x5 -out font.go
//	mkfont -src tomthumb -pkg tomthumb -var TomThumb
//
// -src is a glyph art file (see lwfont.ParseArt) or one of the converted
// built-ins: tomthumb (tinyfont) and basic7x13 (x/image basicfont).
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/image/font/basicfont"
	"tinygo.org/x/tinyfont"

	"sgfx/gfx/lwfont"
)

func main() {
	var (
		src  = flag.String("src", "", "Glyph art file, or tomthumb|basic7x13.")
		pkg  = flag.String("pkg", "", "Package name of the generated file.")
		name = flag.String("var", "Font", "Name of the generated font variable.")
		out  = flag.String("out", "", "Output file (default stdout).")
	)
	flag.Parse()

	if *src == "" || *pkg == "" {
		fatalf("usage: mkfont -src font.txt|tomthumb|basic7x13 -pkg name [-var Font] [-out font.go]")
	}

	f, err := load(*src)
	if err != nil {
		fatalf("load %s: %v", *src, err)
	}
	code, err := generate(f, *pkg, *name, filepath.Base(*src))
	if err != nil {
		fatalf("generate: %v", err)
	}
	if *out == "" {
		_, _ = os.Stdout.Write(code)
		return
	}
	if err := os.WriteFile(*out, code, 0o644); err != nil {
		fatalf("write: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func load(src string) (*lwfont.Font, error) {
	switch src {
	case "tomthumb":
		return lwfont.FromFonter(&tinyfont.TomThumb, lwfont.ASCII(), "TomThumb", 6)
	case "basic7x13":
		return lwfont.FromFace(basicfont.Face7x13, lwfont.ASCII(), "Basic", 13)
	}
	in, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return lwfont.ParseArt(in)
}

const bytesPerLine = 12

// generate renders f as a gofmt'ed Go file declaring one *lwfont.Font
// variable named name.
func generate(f *lwfont.Font, pkg, name, source string) ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if !isIdent(pkg) || !isIdent(name) {
		return nil, fmt.Errorf("bad identifier %q or %q", pkg, name)
	}
	prefix := strings.ToLower(name[:1]) + name[1:]

	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by mkfont from %s; DO NOT EDIT.\n\n", source)
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("import (\n\t\"sgfx/gfx\"\n\t\"sgfx/gfx/lwfont\"\n)\n\n")

	fmt.Fprintf(&b, "// %s is %s %s %d, %d glyphs.\n", name, f.Family, f.Style, f.Size, len(f.Chars))
	fmt.Fprintf(&b, "var %s = &lwfont.Font{\n", name)
	fmt.Fprintf(&b, "Family: %q,\n", f.Family)
	fmt.Fprintf(&b, "Style: %q,\n", f.Style)
	fmt.Fprintf(&b, "Size: %d,\n", f.Size)
	fmt.Fprintf(&b, "Height: %d,\n", f.Height)
	fmt.Fprintf(&b, "Baseline: %d,\n", f.Baseline)
	fmt.Fprintf(&b, "Chars: %sChars,\n", prefix)
	fmt.Fprintf(&b, "Atlas: gfx.Pixmap{Data: %sAtlas, Width: %d, Height: %d", prefix, f.Atlas.Width, f.Atlas.Height)
	if f.Atlas.Inverted {
		b.WriteString(", Inverted: true")
	}
	b.WriteString("},\n}\n\n")

	fmt.Fprintf(&b, "var %sChars = []lwfont.CharMap{\n", prefix)
	for _, c := range f.Chars {
		fmt.Fprintf(&b, "{Key: %q, Def: lwfont.CharDef{%s}},\n", c.Key, charDef(c.Def))
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "var %sAtlas = []byte{\n", prefix)
	for i, v := range f.Atlas.Data {
		sep := " "
		if i%bytesPerLine == bytesPerLine-1 || i == len(f.Atlas.Data)-1 {
			sep = "\n"
		}
		fmt.Fprintf(&b, "0x%02x,%s", v, sep)
	}
	b.WriteString("}\n")

	return format.Source(b.Bytes())
}

// charDef lists the non-zero fields of d.
func charDef(d lwfont.CharDef) string {
	fields := []struct {
		name string
		v    int
	}{
		{"Advance", int(d.Advance)},
		{"OffsetX", int(d.OffsetX)},
		{"OffsetY", int(d.OffsetY)},
		{"RectX", int(d.RectX)},
		{"RectY", int(d.RectY)},
		{"RectW", int(d.RectW)},
		{"RectH", int(d.RectH)},
	}
	var parts []string
	for _, f := range fields {
		if f.v != 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", f.name, f.v))
		}
	}
	return strings.Join(parts, ", ")
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r != '_' && !unicode.IsLetter(r) && (i == 0 || !unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}
