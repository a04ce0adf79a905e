// Package fonts collects the atlas fonts the demo can use by name.
package fonts

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/image/font/basicfont"
	"tinygo.org/x/tinyfont"

	"sgfx/fonts/tiny3x5"
	"sgfx/gfx/lwfont"
)

var ErrUnknown = errors.New("fonts: unknown font")

var (
	tomThumb = sync.OnceValues(func() (*lwfont.Font, error) {
		return lwfont.FromFonter(&tinyfont.TomThumb, lwfont.ASCII(), "TomThumb", 6)
	})
	basic7x13 = sync.OnceValues(func() (*lwfont.Font, error) {
		return lwfont.FromFace(basicfont.Face7x13, lwfont.ASCII(), "Basic", 13)
	})
)

// Tiny3x5 is compiled in.
func Tiny3x5() *lwfont.Font { return tiny3x5.Font }

// TomThumb converts tinyfont's TomThumb on first use.
func TomThumb() (*lwfont.Font, error) { return tomThumb() }

// Basic7x13 converts the x/image basic font on first use.
func Basic7x13() (*lwfont.Font, error) { return basic7x13() }

var byName = map[string]func() (*lwfont.Font, error){
	"tiny3x5":   func() (*lwfont.Font, error) { return tiny3x5.Font, nil },
	"tomthumb":  TomThumb,
	"basic7x13": Basic7x13,
}

// Names lists the fonts ByName knows, sorted.
func Names() []string {
	out := make([]string, 0, len(byName))
	for n := range byName {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// ByName returns the named font.
func ByName(name string) (*lwfont.Font, error) {
	get, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknown, name, Names())
	}
	return get()
}
