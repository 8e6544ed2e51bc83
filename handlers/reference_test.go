package handlers

import (
	"net/http"
	"testing"

	"github.com/abtaheetaseen/Life-Drop-Server/models"
	"github.com/stretchr/testify/require"
)

func TestGetDivisionsWithoutAuth(t *testing.T) {
	env := newTestEnv(t)
	env.reference.divisions = []models.Division{
		{RefID: "1", Name: "Chattagram"},
		{RefID: "6", Name: "Dhaka"},
	}

	recorder := env.do(t, http.MethodGet, "/divisions", "", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	divisions := decodeBody[[]models.Division](t, recorder)
	require.Len(t, divisions, 2)
}

func TestGetDistrictsAndUpazilas(t *testing.T) {
	env := newTestEnv(t)
	env.reference.districts = []models.District{{RefID: "47", DivisionID: "6", Name: "Dhaka"}}
	env.reference.upazilas = []models.Upazila{{RefID: "103", DistrictID: "47", Name: "Savar"}}

	districts := env.do(t, http.MethodGet, "/districts", "", nil)
	require.Equal(t, http.StatusOK, districts.Code)
	require.Len(t, decodeBody[[]models.District](t, districts), 1)

	upazilas := env.do(t, http.MethodGet, "/upazilas", "", nil)
	require.Equal(t, http.StatusOK, upazilas.Code)
	require.Len(t, decodeBody[[]models.Upazila](t, upazilas), 1)
}
