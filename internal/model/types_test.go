package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListClone(t *testing.T) {
	orig := List{{ID: 1, Text: "a"}}
	c := orig.Clone()
	c[0].Text = "changed"
	assert.Equal(t, "a", orig[0].Text)

	var nilList List
	assert.NotNil(t, nilList.Clone())
	assert.Len(t, nilList.Clone(), 0)
}

func TestListIndexAndMaxID(t *testing.T) {
	l := List{{ID: 5}, {ID: 9}, {ID: 2}}
	assert.Equal(t, 1, l.Index(9))
	assert.Equal(t, -1, l.Index(3))
	assert.Equal(t, int64(9), l.MaxID())
	assert.Equal(t, int64(0), List{}.MaxID())
}

func TestListStats(t *testing.T) {
	l := List{{ID: 1, Done: true}, {ID: 2}, {ID: 3}}
	done, pending := l.Stats()
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, pending)
}

func TestActiveEdit(t *testing.T) {
	_, ok := ActiveEdit(NoActiveEdit{})
	assert.False(t, ok)

	e, ok := ActiveEdit(Editing{TargetID: 3, Draft: "x"})
	assert.True(t, ok)
	assert.Equal(t, int64(3), e.TargetID)
	assert.Equal(t, "x", e.Draft)
}
