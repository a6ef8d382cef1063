// Package customization describes how duelists look and derives an enemy
// wizard from the player's choices.
package customization

import (
	"fmt"
	"strings"
)

// Face is a portrait style.
type Face string

const (
	RuggedWarrior Face = "RuggedWarrior"
	WiseElder     Face = "WiseElder"
	YoungProdigy  Face = "YoungProdigy"
)

// Faces lists every portrait in display order.
var Faces = []Face{RuggedWarrior, WiseElder, YoungProdigy}

// Hat is a headwear option.
type Hat string

const (
	PointyHat   Hat = "pointy_hat"
	WideBrimHat Hat = "wide_brim_hat"
	Hood        Hat = "hood"
	TopHat      Hat = "top_hat"
	Crown       Hat = "crown"
)

var Hats = []Hat{PointyHat, WideBrimHat, Hood, TopHat, Crown}

// Robe is a robe colour.
type Robe string

const (
	Blue   Robe = "blue"
	Red    Robe = "red"
	Purple Robe = "purple"
	Green  Robe = "green"
	Black  Robe = "black"
	White  Robe = "white"
)

var Robes = []Robe{Blue, Red, Purple, Green, Black, White}

// Staff is a staff option.
type Staff string

const (
	WoodenStaff  Staff = "wooden_staff"
	BoneStaff    Staff = "bone_staff"
	CrystalStaff Staff = "crystal_staff"
	GoldStaff    Staff = "gold_staff"
)

var Staffs = []Staff{WoodenStaff, BoneStaff, CrystalStaff, GoldStaff}

// Opposites used when dressing the enemy. Anything missing maps to the
// fallback returned by the Opposite methods.
var (
	oppositeHats = map[Hat]Hat{
		PointyHat:   WideBrimHat,
		WideBrimHat: PointyHat,
		Crown:       Hood,
		Hood:        Crown,
		TopHat:      Hood,
	}
	oppositeRobes = map[Robe]Robe{
		Blue:   Red,
		Red:    Blue,
		Purple: Green,
		Green:  Purple,
		Black:  White,
		White:  Black,
	}
	oppositeStaffs = map[Staff]Staff{
		WoodenStaff:  BoneStaff,
		BoneStaff:    WoodenStaff,
		CrystalStaff: GoldStaff,
		GoldStaff:    CrystalStaff,
	}
)

// Opposite returns the hat an enemy wears against h.
func (h Hat) Opposite() Hat {
	if o, ok := oppositeHats[h]; ok {
		return o
	}
	return Hood
}

// Opposite returns the robe colour an enemy wears against r.
func (r Robe) Opposite() Robe {
	if o, ok := oppositeRobes[r]; ok {
		return o
	}
	return Black
}

// Opposite returns the staff an enemy carries against s.
func (s Staff) Opposite() Staff {
	if o, ok := oppositeStaffs[s]; ok {
		return o
	}
	return BoneStaff
}

// Title returns a display name such as "Wise Elder" or "Pointy Hat".
func Title(option string) string {
	var b strings.Builder
	prev := rune(0)
	for i, r := range option {
		switch {
		case r == '_':
			b.WriteRune(' ')
		case i > 0 && r >= 'A' && r <= 'Z' && prev != '_':
			b.WriteRune(' ')
			b.WriteRune(r)
		case i == 0 || prev == '_':
			b.WriteString(strings.ToUpper(string(r)))
		default:
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}

func parse[T ~string](kind, s string, options []T) (T, error) {
	normalized := strings.TrimSpace(s)
	for _, o := range options {
		if strings.EqualFold(string(o), normalized) ||
			strings.EqualFold(Title(string(o)), normalized) {
			return o, nil
		}
	}
	return "", fmt.Errorf("unknown %s: %s", kind, s)
}

// ParseFace parses a portrait name, case-insensitive.
func ParseFace(s string) (Face, error) { return parse("face", s, Faces) }

// ParseHat parses a hat name, case-insensitive.
func ParseHat(s string) (Hat, error) { return parse("hat", s, Hats) }

// ParseRobe parses a robe colour, case-insensitive.
func ParseRobe(s string) (Robe, error) { return parse("robe", s, Robes) }

// ParseStaff parses a staff name, case-insensitive.
func ParseStaff(s string) (Staff, error) { return parse("staff", s, Staffs) }
