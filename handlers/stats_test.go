package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/abtaheetaseen/Life-Drop-Server/models"
	"github.com/stretchr/testify/require"
)

func TestAdminStats(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "admin@x.com", models.RoleAdmin)
	env.addUser(t, "donor@x.com", models.RoleDonor)
	env.addDonationRequest(t, "req@x.com", time.Now())

	for _, amount := range []float64{10, 20.5, 5} {
		_, err := env.payments.Insert(context.Background(), models.Payment{Amount: amount})
		require.NoError(t, err)
	}

	recorder := env.do(t, http.MethodGet, "/admin-stats", tokenFor(t, "admin@x.com"), nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	stats := decodeBody[map[string]float64](t, recorder)
	require.Equal(t, float64(2), stats["totalUsers"])
	require.Equal(t, float64(1), stats["totalDonationRequests"])
	require.Equal(t, 35.5, stats["revenue"])
}

func TestVolunteerStatsGated(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "vol@x.com", models.RoleVolunteer)
	env.addUser(t, "donor@x.com", models.RoleDonor)

	allowed := env.do(t, http.MethodGet, "/volunteer-stats", tokenFor(t, "vol@x.com"), nil)
	require.Equal(t, http.StatusOK, allowed.Code)

	denied := env.do(t, http.MethodGet, "/volunteer-stats", tokenFor(t, "donor@x.com"), nil)
	require.Equal(t, http.StatusForbidden, denied.Code)
}

func TestCountEndpoints(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "admin@x.com", models.RoleAdmin)
	env.addDonationRequest(t, "a@x.com", time.Now())
	env.addDonationRequest(t, "a@x.com", time.Now())
	env.addDonationRequest(t, "b@x.com", time.Now())

	users := env.do(t, http.MethodGet, "/totalUsersCount", tokenFor(t, "admin@x.com"), nil)
	require.Equal(t, http.StatusOK, users.Code)
	require.Equal(t, float64(1), decodeBody[map[string]float64](t, users)["totalUsersCount"])

	total := env.do(t, http.MethodGet, "/totalDonationRequestCount", tokenFor(t, "admin@x.com"), nil)
	require.Equal(t, http.StatusOK, total.Code)
	require.Equal(t, float64(3), decodeBody[map[string]float64](t, total)["totalDonationRequestCount"])

	perUser := env.do(t, http.MethodGet, "/totalDonationRequestCountUser?email=a@x.com", "", nil)
	require.Equal(t, http.StatusOK, perUser.Code)
	require.Equal(t, float64(2), decodeBody[map[string]float64](t, perUser)["totalDonationRequestCountUser"])

	payments := env.do(t, http.MethodGet, "/totalPaymentCountForPagination", "", nil)
	require.Equal(t, http.StatusOK, payments.Code)
	require.Equal(t, float64(0), decodeBody[map[string]float64](t, payments)["totalPaymentCountForPagination"])
}
