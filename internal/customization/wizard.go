package customization

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wizbiz/wizardduel/internal/battle"
	"github.com/wizbiz/wizardduel/internal/deck"
	"github.com/wizbiz/wizardduel/internal/dice"
	"github.com/wizbiz/wizardduel/internal/namefilter"
)

// DefaultName is what an unnamed wizard is called.
const DefaultName = "Wizard"

// EvilNames are the names enemy wizards are drawn from.
var EvilNames = []string{
	"Malachar", "Vexor", "Shadowmane", "Dreadmoor", "Nightshade",
	"Morgath", "Grimveil", "Darkflame", "Ravenclaw", "Thornhex",
	"Blackthorn", "Venomspire", "Skullcrusher", "Doomweaver", "Bloodmoon",
}

var ErrInvalidName = errors.New("invalid wizard name")

// Wizard is one duelist's look and name.
type Wizard struct {
	Name  string
	Face  Face
	Hat   Hat
	Robe  Robe
	Staff Staff
}

// DefaultPlayer returns the wizard a new player starts as.
func DefaultPlayer() Wizard {
	return Wizard{
		Name:  DefaultName,
		Face:  WiseElder,
		Hat:   PointyHat,
		Robe:  Blue,
		Staff: WoodenStaff,
	}
}

// NewPlayer builds the player's wizard, checking the name against nf.
// A nil filter applies shape rules only.
func NewPlayer(name string, face Face, hat Hat, robe Robe, staff Staff, nf *namefilter.NameFilter) (Wizard, error) {
	if nf == nil {
		nf = namefilter.New(nil)
	}
	name = strings.TrimSpace(name)
	if res := nf.Check(name); !res.Allowed {
		return Wizard{}, fmt.Errorf("%w: %s", ErrInvalidName, res.Reason)
	}
	return Wizard{Name: name, Face: face, Hat: hat, Robe: robe, Staff: staff}, nil
}

// NewEnemy dresses an enemy against the player: a different face, the
// opposite hat, robe and staff, and a random evil name.
func NewEnemy(player Wizard, src *dice.Source) Wizard {
	faces := make([]Face, 0, len(Faces))
	for _, f := range Faces {
		if f != player.Face {
			faces = append(faces, f)
		}
	}
	if len(faces) == 0 {
		faces = Faces
	}

	return Wizard{
		Name:  dice.Pick(src, EvilNames),
		Face:  dice.Pick(src, faces),
		Hat:   player.Hat.Opposite(),
		Robe:  player.Robe.Opposite(),
		Staff: player.Staff.Opposite(),
	}
}

// Appearance returns the look as opaque key/value pairs for the battle.
func (w Wizard) Appearance() map[string]string {
	return map[string]string{
		"face":  string(w.Face),
		"hat":   string(w.Hat),
		"robe":  string(w.Robe),
		"staff": string(w.Staff),
	}
}

// Describe returns a one-line description such as
// "Merlin, a Wise Elder in a blue robe with a Pointy Hat and a Wooden Staff".
func (w Wizard) Describe() string {
	return fmt.Sprintf("%s, a %s in a %s robe with a %s and a %s",
		w.Name, Title(string(w.Face)), w.Robe, Title(string(w.Hat)), Title(string(w.Staff)))
}

// ActorConfig converts the wizard into a battle participant with default
// stats and the given deck contribution.
func (w Wizard) ActorConfig(profile deck.Profile) battle.ActorConfig {
	return battle.ActorConfig{
		Name:        w.Name,
		DeckProfile: profile,
		Appearance:  w.Appearance(),
	}
}
