package modals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestModal(onFirst, onSecond func(), closed *bool) *BaseModal {
	return &BaseModal{
		Title:   "Test",
		Message: "Pick one",
		Options: []ModalOption{
			{Label: "First", OnSelect: onFirst},
			{Label: "Second", OnSelect: onSecond},
		},
		CloseSelf: func() { *closed = true },
	}
}

func TestSelectionWraps(t *testing.T) {
	var closed bool
	m := newTestModal(func() {}, func() {}, &closed)

	assert.Equal(t, 0, m.Selected)
	m.SelectNext()
	assert.Equal(t, 1, m.Selected)
	m.SelectNext()
	assert.Equal(t, 0, m.Selected)

	m.SelectPrev()
	assert.Equal(t, 1, m.Selected)
}

func TestChooseRunsOptionAndCloses(t *testing.T) {
	var closed, first, second bool
	m := newTestModal(func() { first = true }, func() { second = true }, &closed)

	m.SelectNext()
	m.Choose()

	assert.False(t, first)
	assert.True(t, second)
	assert.True(t, closed)
}

func TestCloseSkipsOptions(t *testing.T) {
	var closed, first bool
	m := newTestModal(func() { first = true }, func() {}, &closed)

	m.Close()

	assert.False(t, first)
	assert.True(t, closed)
}

func TestViewRegionShowsContent(t *testing.T) {
	var closed bool
	m := newTestModal(func() {}, func() {}, &closed)

	out := m.ViewRegion(50)
	assert.Contains(t, out, "Test")
	assert.Contains(t, out, "Pick one")
	assert.Contains(t, out, "First")
	assert.Contains(t, out, "Second")
}
