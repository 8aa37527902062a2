package listview

import (
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderInt(item int, selected bool) string {
	if selected {
		return "> " + strconv.Itoa(item)
	}
	return "  " + strconv.Itoa(item)
}

func TestModel_Empty(t *testing.T) {
	m := New(renderInt)

	assert.Equal(t, 0, m.ItemCount())
	assert.Empty(t, m.View())
	assert.Nil(t, m.GetSelectedItem())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Selected())
}

func TestModel_Navigation(t *testing.T) {
	m := New(renderInt)
	m.SetItems([]int{10, 20, 30})

	tests := []struct {
		name string
		key  tea.KeyType
		want int
	}{
		{name: "up at top stays", key: tea.KeyUp, want: 0},
		{name: "down", key: tea.KeyDown, want: 1},
		{name: "down again", key: tea.KeyDown, want: 2},
		{name: "down at bottom stays", key: tea.KeyDown, want: 2},
		{name: "home", key: tea.KeyHome, want: 0},
		{name: "end", key: tea.KeyEnd, want: 2},
		{name: "up", key: tea.KeyUp, want: 1},
	}

	for _, tt := range tests {
		m.Update(tea.KeyMsg{Type: tt.key})
		assert.Equal(t, tt.want, m.Selected(), tt.name)
	}

	item := m.GetSelectedItem()
	require.NotNil(t, item)
	assert.Equal(t, 20, *item)
}

func TestModel_SetItemsResetsSelection(t *testing.T) {
	m := New(renderInt)
	m.SetItems([]int{1, 2, 3})
	m.SetSelected(2)

	m.SetItems([]int{4, 5})
	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, "> 4\n  5", m.View())
}

func TestModel_SetSelectedClamps(t *testing.T) {
	m := New(renderInt)
	m.SetItems([]int{1, 2, 3})

	m.SetSelected(-5)
	assert.Equal(t, 0, m.Selected())
	m.SetSelected(99)
	assert.Equal(t, 2, m.Selected())
}
