package character_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/arena/internal/game/character"
	"github.com/cory-johannsen/arena/internal/game/element"
)

func TestBuild_NormalizesName(t *testing.T) {
	p, err := character.Build("  sir   robin ", element.Water, character.DefaultLoadout())
	require.NoError(t, err)
	assert.Equal(t, "Sir Robin", p.Name)
	assert.Equal(t, element.Water, p.Element)
	assert.Equal(t, 1, p.Level)
}

func TestBuild_EmptyName(t *testing.T) {
	_, err := character.Build("   ", element.Fire, character.DefaultLoadout())
	assert.Error(t, err)
}

func TestBuild_LongName(t *testing.T) {
	_, err := character.Build(strings.Repeat("a", character.MaxNameLength+1), element.Fire, character.DefaultLoadout())
	assert.Error(t, err)
}

func TestNormalizeName_KeepsInnerCapitals(t *testing.T) {
	assert.Equal(t, "McDonald", character.NormalizeName("McDonald"))
	assert.Equal(t, "Ada LaFey", character.NormalizeName(" ada  LaFey "))
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "Bartholomew Maximilian F", character.TruncateName("bartholomew maximilian fitzgerald"))
	assert.Equal(t, "Ash", character.TruncateName("ash"))
	long := character.TruncateName(strings.Repeat("x", 40))
	assert.Len(t, []rune(long), character.MaxNameLength)
	_, err := character.Build(long, element.Fire, character.DefaultLoadout())
	assert.NoError(t, err)
}

func TestBuild_NoneDefaultsToFire(t *testing.T) {
	p, err := character.Build("ash", element.None, character.DefaultLoadout())
	require.NoError(t, err)
	assert.Equal(t, element.Fire, p.Element)
}

func TestBuild_CustomLoadout(t *testing.T) {
	lo := character.Loadout{MaxHP: 50, MaxMP: 10, Defense: 1, Strength: 2, Speed: 3, HealingPotions: 1}
	p, err := character.Build("ash", element.Air, lo)
	require.NoError(t, err)
	assert.Equal(t, 50, p.CurrentHP)
	assert.Equal(t, 10, p.CurrentMP)
	assert.Equal(t, 1, p.HealingPotions)
	assert.Equal(t, 0, p.ManaPotions)
}
