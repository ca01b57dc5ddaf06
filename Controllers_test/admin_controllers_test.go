package Controllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restofood-client/controllers"
	"github.com/yeremiapane/restofood-client/gateway"
	"github.com/yeremiapane/restofood-client/stubserver"
)

func TestAdminCreateAppendsAfterConfirmation(t *testing.T) {
	env := setupStub(t)
	env.loginAs(t, "admin")
	env.seedRestaurants(t)

	admin := controllers.NewAdminController(env.API, env.Store, env.Auth, yesConfirmer())
	defer admin.Close()
	require.NoError(t, admin.Refresh())
	require.Len(t, admin.Restaurants(), 3)

	err := admin.Create(controllers.RestaurantInput{
		Name: "Sate Madura Cak Har", Address: "Jl. Panglima Sudirman 18",
		Latitude: -7.27, Longitude: 112.74, Category: "Street Food",
	})
	require.NoError(t, err)

	list := admin.Restaurants()
	require.Len(t, list, 4)
	created := list[3]
	assert.Equal(t, "Sate Madura Cak Har", created.Name)
	assert.NotZero(t, created.ID, "id harus dari konfirmasi server")
}

func TestAdminUpdateReplacesExactlyOne(t *testing.T) {
	env := setupStub(t)
	env.loginAs(t, "admin")
	seeded := env.seedRestaurants(t)

	admin := controllers.NewAdminController(env.API, env.Store, env.Auth, yesConfirmer())
	defer admin.Close()
	require.NoError(t, admin.Refresh())

	err := admin.Update(seeded[1].ID, controllers.RestaurantInput{
		Name: "Bakso Pak Kumis Cabang Baru", Address: seeded[1].Address,
		Latitude: seeded[1].Latitude, Longitude: seeded[1].Longitude,
		Category: seeded[1].Category,
	})
	require.NoError(t, err)

	var updatedName string
	for _, r := range admin.Restaurants() {
		if r.ID == seeded[1].ID {
			updatedName = r.Name
		}
	}
	assert.Equal(t, "Bakso Pak Kumis Cabang Baru", updatedName)
	assert.Len(t, admin.Restaurants(), 3)
}

func TestAdminDeleteRemovesExactlyOne(t *testing.T) {
	env := setupStub(t)
	env.loginAs(t, "admin")
	seeded := env.seedRestaurants(t)

	admin := controllers.NewAdminController(env.API, env.Store, env.Auth, yesConfirmer())
	defer admin.Close()
	require.NoError(t, admin.Refresh())

	require.NoError(t, admin.Delete(seeded[0].ID))

	list := admin.Restaurants()
	require.Len(t, list, 2)
	for _, r := range list {
		assert.NotEqual(t, seeded[0].ID, r.ID)
	}

	var count int64
	env.DB.Model(&stubserver.Restaurant{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestAdminDeleteCancelledIssuesNoRequest(t *testing.T) {
	env := setupStub(t)
	env.loginAs(t, "admin")
	seeded := env.seedRestaurants(t)

	admin := controllers.NewAdminController(env.API, env.Store, env.Auth, noConfirmer())
	defer admin.Close()
	require.NoError(t, admin.Refresh())

	require.NoError(t, admin.Delete(seeded[0].ID))

	assert.Len(t, admin.Restaurants(), 3)
	var count int64
	env.DB.Model(&stubserver.Restaurant{}).Count(&count)
	assert.EqualValues(t, 3, count)
}

func TestAdminInputValidationBlocksRequest(t *testing.T) {
	env := setupStub(t)
	env.loginAs(t, "admin")

	admin := controllers.NewAdminController(env.API, env.Store, env.Auth, yesConfirmer())
	defer admin.Close()

	err := admin.Create(controllers.RestaurantInput{Address: "Jl. Tanpa Nama"})
	var validation *gateway.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "Please fill in all required fields", admin.ErrorMessage())

	err = admin.Create(controllers.RestaurantInput{
		Name: "X", Address: "Y", Latitude: 120, Longitude: 10,
	})
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "Invalid latitude (-90 to 90) or longitude (-180 to 180)", admin.ErrorMessage())
}

func TestNonAdminMutationSurfacesServerMessage(t *testing.T) {
	env := setupStub(t)
	env.loginAs(t, "user")

	admin := controllers.NewAdminController(env.API, env.Store, env.Auth, yesConfirmer())
	defer admin.Close()

	err := admin.Create(controllers.RestaurantInput{
		Name: "Warung Baru", Address: "Jl. Baru", Latitude: -6.2, Longitude: 106.8,
	})
	require.Error(t, err)
	assert.Equal(t, "admin access required", admin.ErrorMessage())
}

func TestActionsComputedFromRole(t *testing.T) {
	assert.True(t, controllers.ActionsForRole("admin").Can(controllers.ActionEdit))
	assert.True(t, controllers.ActionsForRole("admin").Can(controllers.ActionDelete))
	assert.True(t, controllers.ActionsForRole("admin").Can(controllers.ActionManageMenus))
	assert.False(t, controllers.ActionsForRole("user").Can(controllers.ActionEdit))
	assert.False(t, controllers.ActionsForRole("").Can(controllers.ActionDelete))
}
