// Package tiny3x5 is a 3x5 pixel ASCII font, the smallest that stays
// readable on a 320x240 panel.
package tiny3x5

//go:generate go run sgfx/cmd/mkfont -src tiny3x5.txt -pkg tiny3x5 -out font.go
