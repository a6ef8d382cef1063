package spells

import (
	"errors"
	"testing"

	"github.com/wizbiz/wizardduel/internal/effects"
)

type dummy struct {
	name   string
	hp     int
	maxHp  int
	shield int
	status map[effects.Kind]effects.Effect
}

func newDummy(name string, hp int) *dummy {
	return &dummy{name: name, hp: hp, maxHp: 100, status: map[effects.Kind]effects.Effect{}}
}

func (d *dummy) Name() string { return d.name }

func (d *dummy) TakeDamage(amount int) (int, int) {
	absorbed := min(amount, d.shield)
	d.shield -= absorbed
	dealt := amount - absorbed
	d.hp = max(d.hp-dealt, 0)
	return absorbed, dealt
}

func (d *dummy) Heal(amount int) int {
	before := d.hp
	d.hp = min(d.hp+amount, d.maxHp)
	return d.hp - before
}

func (d *dummy) ApplyEffect(e effects.Effect) bool {
	_, had := d.status[e.Kind]
	d.status[e.Kind] = e
	return had
}

func (d *dummy) HasEffect(k effects.Kind) bool {
	_, ok := d.status[k]
	return ok
}

func TestCastFireball(t *testing.T) {
	registry := DefaultRegistry()
	fireball, _ := registry.GetSpell("fireball")

	caster := newDummy("Wizard", 100)
	target := newDummy("Vexor", 100)

	out, err := fireball.Cast(caster, target, nil)
	if err != nil {
		t.Fatalf("Cast returned error: %v", err)
	}
	if target.hp != 90 {
		t.Errorf("target hp = %d, want 90", target.hp)
	}
	if out.Dealt != 10 || out.Nominal != 10 {
		t.Errorf("outcome = %+v, want 10 dealt of 10 nominal", out)
	}
	burn, ok := target.status[effects.KindBurn]
	if !ok || burn.TurnsLeft != 3 {
		t.Errorf("expected Burn(3), got %+v", burn)
	}
}

func TestCastDrainHealsAfterDamage(t *testing.T) {
	registry := DefaultRegistry()
	drain, _ := registry.GetSpell("drain")

	caster := newDummy("Wizard", 50)
	target := newDummy("Vexor", 10)

	out, err := drain.Cast(caster, target, &Context{})
	if err != nil {
		t.Fatalf("Cast returned error: %v", err)
	}
	if target.hp != 0 {
		t.Errorf("target hp = %d, want 0", target.hp)
	}
	if caster.hp != 62 {
		t.Errorf("caster hp = %d, want 62", caster.hp)
	}
	if out.Healed != 12 {
		t.Errorf("healed = %d, want 12", out.Healed)
	}
}

func TestCastWeakenedCaster(t *testing.T) {
	tests := []struct {
		name    string
		spell   string
		percent int
		want    int
	}{
		{"Lightning default 25%", "lightning", 0, 18},
		{"Fireball default 25%", "fireball", 0, 7},
		{"Curse with 50%", "curse", 50, 4},
		{"Poison Cloud with 90% keeps 1", "poison_cloud", 90, 1},
	}

	registry := DefaultRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spell, _ := registry.GetSpell(tt.spell)
			caster := newDummy("Wizard", 100)
			caster.status[effects.KindWeaken] = effects.Weaken(3)
			target := newDummy("Vexor", 100)

			out, err := spell.Cast(caster, target, &Context{WeakenPercent: tt.percent})
			if err != nil {
				t.Fatalf("Cast returned error: %v", err)
			}
			if out.Dealt != tt.want {
				t.Errorf("dealt = %d, want %d", out.Dealt, tt.want)
			}
			if out.Dealt+out.Absorbed != out.Nominal-out.Reduced {
				t.Errorf("absorbed+dealt = %d, want nominal-reduced = %d",
					out.Dealt+out.Absorbed, out.Nominal-out.Reduced)
			}
		})
	}
}

func TestCastShieldAbsorbs(t *testing.T) {
	registry := DefaultRegistry()
	fireball, _ := registry.GetSpell("fireball")

	caster := newDummy("Wizard", 100)
	target := newDummy("Vexor", 100)
	target.shield = 15

	out, _ := fireball.Cast(caster, target, nil)
	if out.Absorbed != 10 || out.Dealt != 0 {
		t.Errorf("outcome = %+v, want 10 absorbed 0 dealt", out)
	}
	if target.hp != 100 {
		t.Errorf("target hp = %d, want 100", target.hp)
	}
}

func TestCastNilActor(t *testing.T) {
	registry := DefaultRegistry()
	heal, _ := registry.GetSpell("heal")
	_, err := heal.Cast(nil, newDummy("Vexor", 50), nil)
	if !errors.Is(err, ErrNilActor) {
		t.Errorf("err = %v, want ErrNilActor", err)
	}
}

func TestWithEffectFunc(t *testing.T) {
	registry := DefaultRegistry()
	lightning, _ := registry.GetSpell("lightning")
	called := false
	custom := lightning.WithEffectFunc(func(caster, target Combatant, ctx *Context) Outcome {
		called = true
		return Outcome{}
	})

	target := newDummy("Vexor", 100)
	if _, err := custom.Cast(newDummy("Wizard", 100), target, nil); err != nil {
		t.Fatalf("Cast returned error: %v", err)
	}
	if !called {
		t.Error("custom effect function was not used")
	}
	if target.hp != 100 {
		t.Errorf("target hp = %d, want 100", target.hp)
	}
	if custom.GetDamageAmount() != 25 {
		t.Error("descriptive effects should be preserved")
	}
}

func TestCastSeparatesGrantedFromApplied(t *testing.T) {
	registry := DefaultRegistry()
	tests := []struct {
		id          string
		wantApplied int
		wantGranted int
	}{
		{"fireball", 1, 0},
		{"shield", 0, 1},
		{"regeneration", 0, 1},
		{"heal", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			s, ok := registry.GetSpell(tt.id)
			if !ok {
				t.Fatalf("GetSpell(%q) not found", tt.id)
			}
			out, err := s.Cast(newDummy("Wizard", 100), newDummy("Vexor", 100), nil)
			if err != nil {
				t.Fatalf("Cast returned error: %v", err)
			}
			if len(out.Applied) != tt.wantApplied {
				t.Errorf("len(Applied) = %d, want %d", len(out.Applied), tt.wantApplied)
			}
			if len(out.Granted) != tt.wantGranted {
				t.Errorf("len(Granted) = %d, want %d", len(out.Granted), tt.wantGranted)
			}
		})
	}
}
