package lwfont

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

var ErrArtSyntax = errors.New("lwfont: glyph art syntax error")

// ParseArt reads a font drawn as text:
//
//	# comment
//	family Tiny
//	size 5
//	height 7
//	baseline 5
//	glyph A 4 0 1
//	.#.
//	#.#
//	###
//	#.#
//	#.#
//
// A glyph header names the rune (a single character, "space" or U+XXXX),
// the advance and an optional x, y offset from the top left corner of the
// line. The rows that follow, up to the next blank line or header, draw the
// glyph with '#' for "on"; every other character is "off".
func ParseArt(r io.Reader) (*Font, error) {
	f := &Font{Style: "Regular"}
	var glyphs []bitmap
	var cur *bitmap
	lineNo := 0

	fail := func(format string, args ...any) error {
		return fmt.Errorf("line %d: %s: %w", lineNo, fmt.Sprintf(format, args...), ErrArtSyntax)
	}
	flush := func() {
		if cur != nil {
			glyphs = append(glyphs, *cur)
			cur = nil
		}
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), " \t\r")
		if cur == nil && strings.HasPrefix(line, "#") {
			continue
		}
		if line == "" {
			flush()
			continue
		}
		fields := strings.Fields(line)
		if cur != nil && len(fields) == 1 && !isKeyword(fields[0]) {
			row := []rune(fields[0])
			if cur.h > 0 && len(row) != cur.w {
				return nil, fail("row width %d, want %d", len(row), cur.w)
			}
			cur.w = len(row)
			for _, c := range row {
				cur.pix = append(cur.pix, c == '#')
			}
			cur.h++
			continue
		}

		switch fields[0] {
		case "family":
			f.Family = strings.TrimSpace(strings.TrimPrefix(line, "family"))
		case "style":
			f.Style = strings.TrimSpace(strings.TrimPrefix(line, "style"))
		case "size", "height", "baseline":
			if len(fields) != 2 {
				return nil, fail("%s takes one value", fields[0])
			}
			v, err := strconv.ParseUint(fields[1], 10, 8)
			if err != nil {
				return nil, fail("%s: %v", fields[0], err)
			}
			switch fields[0] {
			case "size":
				f.Size = uint8(v)
			case "height":
				f.Height = uint8(v)
			default:
				f.Baseline = uint8(v)
			}
		case "glyph":
			flush()
			if len(fields) != 3 && len(fields) != 5 {
				return nil, fail("glyph header wants rune, advance and optional x y offset")
			}
			key, err := parseRune(fields[1])
			if err != nil {
				return nil, fail("%v", err)
			}
			nums := make([]int, 0, 3)
			for _, s := range fields[2:] {
				v, err := strconv.Atoi(s)
				if err != nil {
					return nil, fail("glyph %q: %v", key, err)
				}
				nums = append(nums, v)
			}
			cur = &bitmap{r: key, advance: nums[0]}
			if len(nums) == 3 {
				cur.offX, cur.offY = nums[1], nums[2]
			}
		default:
			return nil, fail("unexpected %q", fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()

	if f.Height == 0 {
		return nil, fmt.Errorf("missing height: %w", ErrArtSyntax)
	}
	return pack(f, glyphs)
}

func isKeyword(s string) bool {
	switch s {
	case "family", "style", "size", "height", "baseline", "glyph":
		return true
	}
	return false
}

func parseRune(s string) (rune, error) {
	switch {
	case s == "space":
		return ' ', nil
	case strings.HasPrefix(s, "U+") && len(s) > 2:
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("rune %q: %v", s, err)
		}
		return rune(v), nil
	case utf8.RuneCountInString(s) == 1:
		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	}
	return 0, fmt.Errorf("rune %q: want one character, space or U+XXXX", s)
}
