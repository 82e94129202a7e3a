package id

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type account struct {
	id ID[account]
}

func (a account) ID() ID[account] {
	return a.id
}

type order struct{}

func TestUnique(t *testing.T) {
	a := Unique[account]()
	b := Unique[account]()

	assert.NotEqual(t, a, b)
	assert.Equal(t, strings.ToUpper(a.String()), a.String())
	_, err := uuid.Parse(a.String())
	assert.NoError(t, err)
}

func TestNew(t *testing.T) {
	i := New[order]("ord-1")
	assert.Equal(t, "ord-1", i.String())
	assert.False(t, i.IsZero())

	var zero ID[order]
	assert.True(t, zero.IsZero())
}

func TestIdentifiable(t *testing.T) {
	var e Identifiable[account] = account{id: New[account]("acc-1")}
	assert.Equal(t, New[account]("acc-1"), e.ID())
}

func TestID_JSON(t *testing.T) {
	type payload struct {
		Account ID[account] `json:"account"`
	}

	data, err := json.Marshal(payload{Account: New[account]("acc-1")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"account":"acc-1"}`, string(data))

	var got payload
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, New[account]("acc-1"), got.Account)
}

func TestID_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []any{"acc-1", []byte("acc-1")}
		for _, tt := range tests {
			var got ID[account]
			require.NoError(t, got.Scan(tt))
			assert.Equal(t, New[account]("acc-1"), got)
		}
	})

	t.Run("error", func(t *testing.T) {
		var got ID[account]
		assert.Error(t, got.Scan(42))
		assert.Error(t, got.Scan(nil))
	})
}

func TestID_Value(t *testing.T) {
	v, err := New[account]("acc-1").Value()
	require.NoError(t, err)
	assert.Equal(t, "acc-1", v)
}
