package service

import (
	"testing"

	"github.com/MukulParasar/PRODIGY-FS-02/database"
	"github.com/MukulParasar/PRODIGY-FS-02/web/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registration(email string) *schema.RegisterUser {
	return &schema.RegisterUser{
		Email:     email,
		Password:  "secret123",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
}

func TestCreateUserAndLookup(t *testing.T) {
	setup(t)
	defer teardown()

	service := UserService{}
	user, err := service.CreateUser(registration("admin@x.com"))
	require.NoError(t, err)
	assert.NotZero(t, user.Id)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")

	byId, err := service.GetUser(user.Id)
	require.NoError(t, err)
	require.NotNil(t, byId)
	assert.Equal(t, "admin@x.com", byId.Email)

	byEmail, err := service.GetUserByEmail("admin@x.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.Id, byEmail.Id)

	missing, err := service.GetUserByEmail("nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	setup(t)
	defer teardown()

	service := UserService{}
	first, err := service.CreateUser(registration("dup@x.com"))
	require.NoError(t, err)

	_, err = service.CreateUser(registration("dup@x.com"))
	require.Error(t, err)
	assert.True(t, database.IsDuplicate(err))

	// the first registration stays intact
	still, err := service.GetUser(first.Id)
	require.NoError(t, err)
	require.NotNil(t, still)
	assert.Equal(t, "dup@x.com", still.Email)
}

func TestCheckUserIsGeneric(t *testing.T) {
	setup(t)
	defer teardown()

	service := UserService{}
	_, err := service.CreateUser(registration("admin@x.com"))
	require.NoError(t, err)

	assert.NotNil(t, service.CheckUser("admin@x.com", "secret123"))

	// wrong password and unknown email are indistinguishable
	assert.Nil(t, service.CheckUser("admin@x.com", "wrongpass"))
	assert.Nil(t, service.CheckUser("ghost@x.com", "secret123"))
}
