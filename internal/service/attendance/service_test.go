package attendance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/absensi-app/absensi-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAttendanceRepo is an in-memory stand-in that enforces the same
// one-pending-record-per-day guarantee the partial unique index provides.
type fakeAttendanceRepo struct {
	mu      sync.Mutex
	records map[string]*attendance.Attendance // keyed by employeeID + date
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func recordKey(employeeID string, day time.Time) string {
	return employeeID + "|" + day.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) CreatePending(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := recordKey(att.EmployeeID, att.Date)
	if existing, ok := f.records[key]; ok && existing.IsPending() {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}
	stored := att
	f.records[key] = &stored
	return stored, nil
}

func (f *fakeAttendanceRepo) CompleteOpen(ctx context.Context, employeeID string, day, checkOut time.Time, latitude, longitude string) (attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.records[recordKey(employeeID, day)]
	if !ok || existing.IsCompleted() {
		return attendance.Attendance{}, attendance.ErrNoOpenCheckIn
	}
	out := checkOut
	existing.CheckOutTime = &out
	existing.Latitude = latitude
	existing.Longitude = longitude
	return *existing, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, day time.Time) (*attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.records[recordKey(employeeID, day)]
	if !ok {
		return nil, nil
	}
	clone := *existing
	return &clone, nil
}

func (f *fakeAttendanceRepo) ListForEmployee(ctx context.Context, employeeID string, filter attendance.HistoryFilter) ([]attendance.Attendance, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []attendance.Attendance
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			result = append(result, *rec)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeAttendanceRepo) MonthlyTotalsForEmployee(ctx context.Context, employeeID string, monthStart, monthEnd time.Time) (attendance.MonthlyTotals, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var totals attendance.MonthlyTotals
	for _, rec := range f.records {
		if rec.EmployeeID != employeeID || rec.Date.Before(monthStart) || rec.Date.After(monthEnd) {
			continue
		}
		totals.WorkDays++
		if minutes := rec.WorkingDurationMinutes(); minutes != nil {
			totals.TotalMinutes += int64(*minutes)
		}
	}
	return totals, nil
}

func newTestService(repo attendance.AttendanceRepository, now time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		loc:                  time.UTC,
		now:                  func() time.Time { return now },
	}
}

const testEmployeeID = "0195f9f6-2f9e-7bbd-95c9-8f6cbd1d1a10"

func validCheckIn() attendance.CheckInRequest {
	return attendance.CheckInRequest{Latitude: "-6.200000", Longitude: "106.816666"}
}

func validCheckOut() attendance.CheckOutRequest {
	return attendance.CheckOutRequest{Latitude: "-6.201000", Longitude: "106.817000"}
}

func TestAttendanceService_CheckIn_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	checkInAt := time.Date(2025, 3, 10, 8, 15, 0, 0, time.UTC)
	svc := newTestService(newFakeAttendanceRepo(), checkInAt)

	resp, err := svc.CheckIn(ctx, testEmployeeID, validCheckIn())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, testEmployeeID, resp.EmployeeID)
	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Equal(t, "-6.200000", resp.Latitude)
	assert.False(t, resp.IsCompleted)
	assert.Nil(t, resp.WorkingDurationMinutes)
}

func TestAttendanceService_CheckIn_Twice_Rejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(newFakeAttendanceRepo(), time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))

	_, err := svc.CheckIn(ctx, testEmployeeID, validCheckIn())
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, testEmployeeID, validCheckIn())
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestAttendanceService_CheckIn_Concurrent_ExactlyOneWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(newFakeAttendanceRepo(), time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))

	const workers = 16
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_, errs[idx] = svc.CheckIn(ctx, testEmployeeID, validCheckIn())
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
		}
	}
	assert.Equal(t, 1, successes)
}

func TestAttendanceService_CheckIn_InvalidCoordinates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(newFakeAttendanceRepo(), time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))

	_, err := svc.CheckIn(ctx, testEmployeeID, attendance.CheckInRequest{Latitude: "abc", Longitude: ""})
	require.Error(t, err)
	assert.NotErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestAttendanceService_CheckOut_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newFakeAttendanceRepo()
	checkInAt := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	svc := newTestService(repo, checkInAt)
	_, err := svc.CheckIn(ctx, testEmployeeID, validCheckIn())
	require.NoError(t, err)

	svc.now = func() time.Time { return checkInAt.Add(8*time.Hour + 30*time.Minute) }
	resp, err := svc.CheckOut(ctx, testEmployeeID, validCheckOut())
	require.NoError(t, err)

	assert.True(t, resp.IsCompleted)
	require.NotNil(t, resp.WorkingDurationMinutes)
	assert.Equal(t, 510, *resp.WorkingDurationMinutes)
	require.NotNil(t, resp.WorkingDurationFormatted)
	assert.Equal(t, "8 jam 30 menit", *resp.WorkingDurationFormatted)
	// Check-out coordinates replace the check-in pair.
	assert.Equal(t, "-6.201000", resp.Latitude)
	assert.Equal(t, "106.817000", resp.Longitude)
}

func TestAttendanceService_CheckOut_WithoutCheckIn(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(newFakeAttendanceRepo(), time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC))

	_, err := svc.CheckOut(ctx, testEmployeeID, validCheckOut())
	assert.ErrorIs(t, err, attendance.ErrNoOpenCheckIn)
}

func TestAttendanceService_CheckOut_Twice_Rejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newFakeAttendanceRepo()
	checkInAt := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	svc := newTestService(repo, checkInAt)

	_, err := svc.CheckIn(ctx, testEmployeeID, validCheckIn())
	require.NoError(t, err)

	svc.now = func() time.Time { return checkInAt.Add(9 * time.Hour) }
	_, err = svc.CheckOut(ctx, testEmployeeID, validCheckOut())
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx, testEmployeeID, validCheckOut())
	assert.ErrorIs(t, err, attendance.ErrNoOpenCheckIn)
}

func TestAttendanceService_CheckOut_ClockBeforeCheckIn(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newFakeAttendanceRepo()
	checkInAt := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	svc := newTestService(repo, checkInAt)

	_, err := svc.CheckIn(ctx, testEmployeeID, validCheckIn())
	require.NoError(t, err)

	// Same calendar day, but the clock went backwards.
	svc.now = func() time.Time { return checkInAt.Add(-30 * time.Minute) }
	_, err = svc.CheckOut(ctx, testEmployeeID, validCheckOut())
	assert.ErrorIs(t, err, attendance.ErrCheckOutBeforeCheckIn)
}

func TestAttendanceService_Today_NoRecord(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(newFakeAttendanceRepo(), time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))

	resp, err := svc.Today(ctx, testEmployeeID)
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestAttendanceService_Summary_MonthlyAggregate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Time{})

	// Two completed days and one pending day in March.
	seed := []struct {
		day      time.Time
		duration time.Duration
	}{
		{time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC), 8 * time.Hour},
		{time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC), 7*time.Hour + 30*time.Minute},
		{time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC), 0},
	}
	for _, s := range seed {
		svc.now = func() time.Time { return s.day }
		_, err := svc.CheckIn(ctx, testEmployeeID, validCheckIn())
		require.NoError(t, err)
		if s.duration > 0 {
			svc.now = func() time.Time { return s.day.Add(s.duration) }
			_, err = svc.CheckOut(ctx, testEmployeeID, validCheckOut())
			require.NoError(t, err)
		}
	}

	svc.now = func() time.Time { return time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC) }
	resp, err := svc.Summary(ctx, testEmployeeID)
	require.NoError(t, err)

	// Pending days count toward work days but not hours.
	assert.Equal(t, int64(3), resp.Summary.WorkDays)
	assert.Equal(t, 15.5, resp.Summary.TotalHours)
	assert.Equal(t, 5.17, resp.Summary.AverageHoursPerDay)

	require.NotNil(t, resp.Today)
	assert.False(t, resp.Today.IsCompleted)
}

func TestAttendanceService_Summary_EmptyMonth(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(newFakeAttendanceRepo(), time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))

	resp, err := svc.Summary(ctx, testEmployeeID)
	require.NoError(t, err)

	assert.Nil(t, resp.Today)
	assert.Equal(t, int64(0), resp.Summary.WorkDays)
	assert.Equal(t, 0.0, resp.Summary.TotalHours)
	assert.Equal(t, 0.0, resp.Summary.AverageHoursPerDay)
}
