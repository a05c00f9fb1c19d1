package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosString(t *testing.T) {
	tests := []struct {
		name string
		pos  Pos
		want string
	}{
		{"with filename", NewPos("test.ssl", 10, 5), "test.ssl:10:5"},
		{"without filename", NewPos("", 10, 5), "10:5"},
		{"first column", NewPos("main.ssl", 1, 1), "main.ssl:1:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pos.String())
		})
	}
}

func TestPosAccessors(t *testing.T) {
	p := NewPos("a.ssl", 3, 7)
	assert.True(t, p.IsValid())
	assert.Equal(t, uint32(3), p.Line())
	assert.Equal(t, uint32(7), p.Col())
	assert.Equal(t, "a.ssl", p.Filename())

	assert.False(t, Pos{}.IsValid())
	assert.False(t, NewPos("a.ssl", 0, 1).IsValid())
}
