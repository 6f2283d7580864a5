package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPublicUserJSONShape(t *testing.T) {
	u := User{
		ID:      primitive.NewObjectID(),
		Name:    "Ada",
		Email:   "ada@example.com",
		Type:    "developer",
		IsAdmin: true,
	}

	b, err := json.Marshal(u.Public())
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &got))

	require.Equal(t, u.ID.Hex(), got["id"])
	require.Equal(t, "Ada", got["name"])
	require.Equal(t, "ada@example.com", got["email"])
	require.Equal(t, true, got["isAdmin"])

	// redacted view carries no audit fields and no user type
	require.NotContains(t, got, "type")
	require.NotContains(t, got, "createdAt")
	require.NotContains(t, got, "_id")
}
