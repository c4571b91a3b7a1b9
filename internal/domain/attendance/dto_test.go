package attendance

import (
	"testing"

	"github.com/absensi-app/absensi-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := CheckInRequest{Latitude: "-6.200000", Longitude: "106.816666"}
	assert.NoError(t, valid.Validate())

	missing := CheckInRequest{}
	err := missing.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "latitude")
	assert.Contains(t, m, "longitude")

	malformed := CheckInRequest{Latitude: "north", Longitude: "106.8"}
	err = malformed.Validate()
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "latitude")
}

func TestHistoryFilter_Validate_Defaults(t *testing.T) {
	t.Parallel()

	f := HistoryFilter{}
	require.NoError(t, f.Validate())
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 10, f.Limit)

	capped := HistoryFilter{Limit: 500}
	require.NoError(t, capped.Validate())
	assert.Equal(t, 100, capped.Limit)
}

func TestHistoryFilter_Validate_DateRange(t *testing.T) {
	t.Parallel()

	start, end := "2025-03-15", "2025-03-01"
	f := HistoryFilter{StartDate: &start, EndDate: &end}
	require.Error(t, f.Validate())

	badFormat := "15/03/2025"
	g := HistoryFilter{StartDate: &badFormat}
	require.Error(t, g.Validate())
}
