package ai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/arena/internal/game/ai"
	"github.com/cory-johannsen/arena/internal/game/combat"
	"github.com/cory-johannsen/arena/internal/game/element"
)

// seqSrc returns vals in order and records every bound it was asked for.
type seqSrc struct {
	vals  []int
	calls []int
}

func (s *seqSrc) Intn(n int) int {
	s.calls = append(s.calls, n)
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v
}

// mockScriptCaller always returns the given value for any hook call.
type mockScriptCaller struct {
	returnVal lua.LValue
	hooks     []string
	args      []lua.LValue
}

func (m *mockScriptCaller) CallHook(setID, hook string, args ...lua.LValue) (lua.LValue, error) {
	m.hooks = append(m.hooks, hook)
	m.args = args
	if m.returnVal == nil {
		return lua.LNil, nil
	}
	return m.returnVal, nil
}

func stateWithMP(mp int) ai.State {
	return ai.State{
		Self:   ai.CombatantState{Name: "Goblin", HP: 80, MaxHP: 80, MP: mp, MaxMP: 50, Strength: 15},
		Target: ai.CombatantState{Name: "Hero", HP: 200, MaxHP: 200, Element: element.Fire},
	}
}

func TestStandard_CastsWhenAffordableAndCoinSucceeds(t *testing.T) {
	src := &seqSrc{vals: []int{0, 2}}
	d := ai.Standard{}.Decide(stateWithMP(50), src)
	assert.Equal(t, ai.ActionSpell, d.Action)
	assert.Equal(t, element.Earth, d.Element)
	assert.Equal(t, []int{2, 4}, src.calls)
}

func TestStandard_AttacksWhenCoinFails(t *testing.T) {
	src := &seqSrc{vals: []int{1}}
	d := ai.Standard{}.Decide(stateWithMP(50), src)
	assert.Equal(t, ai.Attack, d)
}

func TestStandard_NoDrawWhenBroke(t *testing.T) {
	src := &seqSrc{}
	d := ai.Standard{}.Decide(stateWithMP(combat.SpellCost-1), src)
	assert.Equal(t, ai.Attack, d)
	assert.Empty(t, src.calls)
}

func TestStandard_Property_SpellOnlyWhenAffordable(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		mp := rapid.IntRange(0, 60).Draw(rt, "mp")
		coin := rapid.IntRange(0, 1).Draw(rt, "coin")
		el := rapid.IntRange(0, 3).Draw(rt, "element")
		d := ai.Standard{}.Decide(stateWithMP(mp), &seqSrc{vals: []int{coin, el}})
		if d.Action == ai.ActionSpell {
			assert.GreaterOrEqual(rt, mp, combat.SpellCost)
			assert.Contains(rt, element.Spells(), d.Element)
		} else {
			assert.Equal(rt, ai.ActionAttack, d.Action)
		}
	})
}

func TestSignatureFirst(t *testing.T) {
	st := stateWithMP(30)
	st.Signature = &ai.Signature{Name: "Inferno", Element: element.Fire, Cost: 30, DamagePct: 120}

	d := ai.SignatureFirst{}.Decide(st, &seqSrc{vals: []int{0}})
	assert.Equal(t, ai.ActionSignature, d.Action)

	d = ai.SignatureFirst{}.Decide(st, &seqSrc{vals: []int{1}})
	assert.Equal(t, ai.ActionAttack, d.Action)

	st.Self.MP = 29
	src := &seqSrc{}
	d = ai.SignatureFirst{}.Decide(st, src)
	assert.Equal(t, ai.ActionAttack, d.Action)
	assert.Empty(t, src.calls)

	st.Signature = nil
	st.Self.MP = 150
	assert.Equal(t, ai.Attack, ai.SignatureFirst{}.Decide(st, &seqSrc{}))
}

func TestSignature_Damage(t *testing.T) {
	sig := ai.Signature{DamagePct: 120}
	assert.Equal(t, 42, sig.Damage(35))
	assert.Equal(t, 6, sig.Damage(5))
	assert.Equal(t, 13, sig.Damage(11))
}

func TestParseDecision(t *testing.T) {
	d, ok := ai.ParseDecision("attack")
	require.True(t, ok)
	assert.Equal(t, ai.Attack, d)

	d, ok = ai.ParseDecision(" Spell:Water ")
	require.True(t, ok)
	assert.Equal(t, ai.Decision{Action: ai.ActionSpell, Element: element.Water}, d)

	d, ok = ai.ParseDecision("signature")
	require.True(t, ok)
	assert.Equal(t, ai.ActionSignature, d.Action)

	for _, bad := range []string{"", "flee", "spell:", "spell:none", "spell:plasma"} {
		_, ok := ai.ParseDecision(bad)
		assert.False(t, ok, "%q", bad)
	}
}

func TestScripted_UsesHookAnswer(t *testing.T) {
	caller := &mockScriptCaller{returnVal: lua.LString("spell:air")}
	p := ai.NewScripted(caller, "ai", "decide")
	d := p.Decide(stateWithMP(50), &seqSrc{})
	assert.Equal(t, ai.Decision{Action: ai.ActionSpell, Element: element.Air}, d)
	assert.Equal(t, []string{"decide"}, caller.hooks)
	require.Len(t, caller.args, 10)
	assert.Equal(t, lua.LString("Goblin"), caller.args[0])
	assert.Equal(t, lua.LString("fire"), caller.args[7])
	assert.Equal(t, lua.LFalse, caller.args[8])
	assert.Equal(t, lua.LNumber(100), caller.args[9])

	wounded := stateWithMP(50)
	wounded.Self.HP = 20
	p.Decide(wounded, &seqSrc{})
	assert.Equal(t, lua.LNumber(25), caller.args[9])
}

func TestScripted_FallsBackOnNil(t *testing.T) {
	p := ai.NewScripted(&mockScriptCaller{}, "ai", "decide")
	d := p.Decide(stateWithMP(50), &seqSrc{vals: []int{1}})
	assert.Equal(t, ai.Attack, d)
}

func TestScripted_FallsBackOnGarbage(t *testing.T) {
	p := ai.NewScripted(&mockScriptCaller{returnVal: lua.LString("dance")}, "ai", "decide")
	p.Fallback = ai.PolicyFunc(func(ai.State, ai.Source) ai.Decision {
		return ai.Decision{Action: ai.ActionSpell, Element: element.Fire}
	})
	d := p.Decide(stateWithMP(50), &seqSrc{})
	assert.Equal(t, element.Fire, d.Element)
}

func TestScripted_UnaffordableSignatureFallsBack(t *testing.T) {
	p := ai.NewScripted(&mockScriptCaller{returnVal: lua.LString("signature")}, "ai", "decide")
	st := stateWithMP(10)
	st.Signature = &ai.Signature{Cost: 30}
	d := p.Decide(st, &seqSrc{})
	assert.Equal(t, ai.Attack, d)
}

func TestNewScripted_NilCallerPanics(t *testing.T) {
	assert.Panics(t, func() { ai.NewScripted(nil, "ai", "decide") })
}

func TestActionType_String(t *testing.T) {
	assert.Equal(t, "attack", ai.ActionAttack.String())
	assert.Equal(t, "spell", ai.ActionSpell.String())
	assert.Equal(t, "signature", ai.ActionSignature.String())
	assert.Equal(t, "unknown", ai.ActionUnknown.String())
}

func TestCombatantState_HPPercent(t *testing.T) {
	assert.Equal(t, 50.0, ai.CombatantState{HP: 40, MaxHP: 80}.HPPercent())
	assert.Equal(t, 0.0, ai.CombatantState{}.HPPercent())
}
