package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_DefaultsToVoce(t *testing.T) {
	assert.Equal(t, TabVoce, New().Current())
}

func TestSelect(t *testing.T) {
	s := New()

	assert.Equal(t, TabMomentos, s.Select("momentos"))
	assert.Equal(t, TabMomentos, s.Current())

	assert.Equal(t, TabAgente, s.Select("agente"))
	assert.Equal(t, TabAgente, s.Current())
}

func TestSelect_UnknownFallsBack(t *testing.T) {
	s := New()
	s.Select("momentos")

	assert.Equal(t, TabVoce, s.Select("galeria"))
	assert.Equal(t, TabVoce, s.Current())
}

func TestOnChange(t *testing.T) {
	s := New()
	var got []Tab
	s.OnChange(func(t Tab) { got = append(got, t) })

	s.Select("momentos")
	s.Select("momentos")
	s.Select("")

	assert.Equal(t, []Tab{TabMomentos, TabVoce}, got)
}

func TestTabs(t *testing.T) {
	tabs := Tabs()
	assert.Equal(t, []Tab{TabVoce, TabAgente, TabMomentos}, tabs)

	tabs[0] = "x"
	assert.Equal(t, TabVoce, Tabs()[0])
}
