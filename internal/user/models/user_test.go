package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRequestNormalize(t *testing.T) {
	t.Run("empty role defaults to reader", func(t *testing.T) {
		req := CreateUserRequest{Name: "John Doe"}
		req.Normalize()
		assert.Equal(t, RoleReader, req.Role)
		assert.Equal(t, "John Doe", req.Name)
	})

	t.Run("explicit role is kept", func(t *testing.T) {
		req := CreateUserRequest{Name: "John Doe", Role: RoleWriter}
		req.Normalize()
		assert.Equal(t, RoleWriter, req.Role)
	})

	t.Run("name is not touched", func(t *testing.T) {
		req := CreateUserRequest{Name: "  "}
		req.Normalize()
		assert.Equal(t, "  ", req.Name)
	})
}

func TestUserJSONShape(t *testing.T) {
	raw, err := json.Marshal(User{ID: "abc", Name: "Jane", Role: RoleWriter})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"abc","name":"Jane","role":"WRITER"}`, string(raw))
}
