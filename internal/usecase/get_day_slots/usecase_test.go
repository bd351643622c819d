package get_day_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	policyRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/policy"
	whRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/workinghours"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// --- Фейки зависимостей ---

type fakeTimeProvider struct{ now time.Time }

func (f *fakeTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeWorkingHoursRepo отдает одни и те же часы сотрудника независимо от дня недели
type fakeWorkingHoursRepo struct {
	hoursByStaff map[int64]*domain.WorkingHours
}

func (f *fakeWorkingHoursRepo) GetActive(_ context.Context, _ int64, staffID *int64, _ int) (*domain.WorkingHours, error) {
	if staffID == nil {
		return nil, whRepo.ErrWorkingHoursNotFound
	}
	wh, ok := f.hoursByStaff[*staffID]
	if !ok {
		return nil, whRepo.ErrWorkingHoursNotFound
	}
	return wh, nil
}

type fakeTimeOffRepo struct {
	entries []*domain.TimeOff
}

func (f *fakeTimeOffRepo) GetForDate(_ context.Context, _ int64, staffID int64, _ time.Time) ([]*domain.TimeOff, error) {
	result := make([]*domain.TimeOff, 0)
	for _, e := range f.entries {
		if e.AppliesToStaff(staffID) {
			result = append(result, e)
		}
	}
	return result, nil
}

type fakeAppointmentRepo struct {
	busyByStaff map[int64][]domain.Interval
}

func (f *fakeAppointmentRepo) GetBusyIntervals(_ context.Context, _ int64, staffID int64, _ time.Time) ([]domain.Interval, error) {
	return f.busyByStaff[staffID], nil
}

type fakePolicyRepo struct {
	policy *domain.TenantPolicy
}

func (f *fakePolicyRepo) GetByTenant(_ context.Context, _ int64) (*domain.TenantPolicy, error) {
	if f.policy == nil {
		return nil, policyRepo.ErrPolicyNotFound
	}
	return f.policy, nil
}

type fakeCatalogClient struct {
	services map[int64]*catalogservice.Service
	staff    map[int64]*catalogservice.Staff
	eligible []int64
}

func (f *fakeCatalogClient) GetService(_ context.Context, _, serviceID int64) (*catalogservice.Service, error) {
	svc, ok := f.services[serviceID]
	if !ok {
		return nil, catalogservice.ErrServiceNotFound
	}
	return svc, nil
}

func (f *fakeCatalogClient) GetStaff(_ context.Context, _, staffID int64) (*catalogservice.Staff, error) {
	s, ok := f.staff[staffID]
	if !ok {
		return nil, catalogservice.ErrStaffNotFound
	}
	return s, nil
}

func (f *fakeCatalogClient) GetEligibleStaffIDs(_ context.Context, _, _ int64) ([]int64, error) {
	return f.eligible, nil
}

type fakeSlotCache struct {
	data   map[string][]domain.Slot
	stores int
}

func cacheKey(staffID *int64, date time.Time) string {
	return staffLabel(staffID) + ":" + date.Format(domain.DateFormat)
}

func (f *fakeSlotCache) GetDaySlots(_ context.Context, _, _ int64, staffID *int64, date time.Time) ([]domain.Slot, bool) {
	slots, ok := f.data[cacheKey(staffID, date)]
	return slots, ok
}

func (f *fakeSlotCache) StoreDaySlots(_ context.Context, _, _ int64, staffID *int64, date time.Time, slots []domain.Slot) {
	if f.data == nil {
		f.data = make(map[string][]domain.Slot)
	}
	f.data[cacheKey(staffID, date)] = slots
	f.stores++
}

// --- Конструктор тестового окружения ---

type testEnv struct {
	workingHours *fakeWorkingHoursRepo
	timeOff      *fakeTimeOffRepo
	appointments *fakeAppointmentRepo
	policies     *fakePolicyRepo
	catalog      *fakeCatalogClient
	cache        *fakeSlotCache
}

func newTestEnv() *testEnv {
	return &testEnv{
		workingHours: &fakeWorkingHoursRepo{hoursByStaff: map[int64]*domain.WorkingHours{}},
		timeOff:      &fakeTimeOffRepo{},
		appointments: &fakeAppointmentRepo{busyByStaff: map[int64][]domain.Interval{}},
		policies:     &fakePolicyRepo{},
		catalog: &fakeCatalogClient{
			services: map[int64]*catalogservice.Service{},
			staff:    map[int64]*catalogservice.Staff{},
		},
	}
}

func (e *testEnv) useCase(now time.Time) *UseCase {
	var cache SlotCache
	if e.cache != nil {
		cache = e.cache
	}
	uc := NewUseCase(e.workingHours, e.timeOff, e.appointments, e.policies, e.catalog, cache, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func (e *testEnv) withService(id int64, durationMinutes int, bookable bool) *testEnv {
	e.catalog.services[id] = &catalogservice.Service{
		ID: id, TenantID: 1, Name: "Haircut",
		DurationMinutes: durationMinutes, OnlineBookable: bookable,
	}
	return e
}

func (e *testEnv) withStaff(id int64, bookable bool) *testEnv {
	e.catalog.staff[id] = &catalogservice.Staff{ID: id, TenantID: 1, Name: "Staff", Bookable: bookable}
	return e
}

func (e *testEnv) withHours(staffID int64, start, end string) *testEnv {
	e.workingHours.hoursByStaff[staffID] = &domain.WorkingHours{
		ID: staffID, TenantID: 1, StaffID: &staffID,
		StartTime: types.TimeString(start), EndTime: types.TimeString(end),
		Active: true,
	}
	return e
}

func request(staffID *int64) *Request {
	return &Request{
		TenantID:  1,
		ServiceID: 10,
		StaffID:   staffID,
		Date:      testDay,
	}
}

// --- Тесты ---

func TestExecute_Validation(t *testing.T) {
	env := newTestEnv()
	uc := env.useCase(at(8, 0))

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero tenant", req: &Request{TenantID: 0, ServiceID: 10, Date: testDay}},
		{name: "negative service", req: &Request{TenantID: 1, ServiceID: -1, Date: testDay}},
		{name: "zero staff", req: &Request{TenantID: 1, ServiceID: 10, StaffID: ptr.Ptr(int64(0)), Date: testDay}},
		{name: "zero date", req: &Request{TenantID: 1, ServiceID: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ServiceNotFound(t *testing.T) {
	env := newTestEnv()
	uc := env.useCase(at(8, 0))

	_, err := uc.Execute(context.Background(), request(nil))
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ServiceNotBookable(t *testing.T) {
	env := newTestEnv().withService(10, 60, false)
	uc := env.useCase(at(8, 0))

	_, err := uc.Execute(context.Background(), request(nil))
	assert.ErrorIs(t, err, ErrServiceNotBookable)
}

func TestExecute_StaffNotFound(t *testing.T) {
	env := newTestEnv().withService(10, 60, true)
	uc := env.useCase(at(8, 0))

	_, err := uc.Execute(context.Background(), request(ptr.Ptr(int64(5))))
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_StaffNotBookable(t *testing.T) {
	env := newTestEnv().withService(10, 60, true).withStaff(5, false)
	uc := env.useCase(at(8, 0))

	_, err := uc.Execute(context.Background(), request(ptr.Ptr(int64(5))))
	assert.ErrorIs(t, err, ErrStaffNotBookable)
}

func TestExecute_PastDateReturnsEmpty(t *testing.T) {
	// Дата в прошлом - валидный пустой результат, а не ошибка
	env := newTestEnv().withService(10, 60, true).withStaff(5, true).withHours(5, "09:00", "18:00")
	uc := env.useCase(testDay.AddDate(0, 0, 3).Add(12 * time.Hour))

	resp, err := uc.Execute(context.Background(), request(ptr.Ptr(int64(5))))
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_BeyondHorizonReturnsEmpty(t *testing.T) {
	env := newTestEnv().withService(10, 60, true).withStaff(5, true).withHours(5, "09:00", "18:00")
	env.policies.policy = &domain.TenantPolicy{
		TenantID: 1, LeadTimeHours: 0, MaxDaysInAdvance: 7, SlotIntervalMinutes: 30,
	}
	// Сейчас за 30 дней до запрошенной даты, горизонт всего 7
	uc := env.useCase(testDay.AddDate(0, 0, -30).Add(8 * time.Hour))

	resp, err := uc.Execute(context.Background(), request(ptr.Ptr(int64(5))))
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_SingleStaffHappyPath(t *testing.T) {
	env := newTestEnv().withService(10, 60, true).withStaff(5, true).withHours(5, "09:00", "12:00")
	env.policies.policy = &domain.TenantPolicy{
		TenantID: 1, LeadTimeHours: 0, MaxDaysInAdvance: 0, SlotIntervalMinutes: 30,
	}
	env.appointments.busyByStaff[5] = []domain.Interval{window(10, 0, 11, 0)}
	uc := env.useCase(at(7, 0))

	resp, err := uc.Execute(context.Background(), request(ptr.Ptr(int64(5))))
	require.NoError(t, err)

	require.Len(t, resp.Slots, 5)
	assert.Equal(t, []string{"09:00", "11:00"}, availableTimes(resp.Slots))
	// По конкретному сотруднику наружу выходят и недоступные слоты
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, slotTimes(resp.Slots))
}

func TestExecute_DefaultPolicyApplied(t *testing.T) {
	// Политика не настроена: шаг 30 минут, lead time 1 час
	env := newTestEnv().withService(10, 30, true).withStaff(5, true).withHours(5, "09:00", "11:00")
	uc := env.useCase(at(8, 30))

	resp, err := uc.Execute(context.Background(), request(ptr.Ptr(int64(5))))
	require.NoError(t, err)

	// Минимально допустимое начало 09:30
	assert.Equal(t, []string{"09:30", "10:00", "10:30"}, availableTimes(resp.Slots))
}

func TestExecute_AllDayTimeOff(t *testing.T) {
	env := newTestEnv().withService(10, 60, true).withStaff(5, true).withHours(5, "09:00", "18:00")
	env.timeOff.entries = []*domain.TimeOff{
		{TenantID: 1, StaffID: ptr.Ptr(int64(5)), Date: testDay},
	}
	uc := env.useCase(at(7, 0))

	resp, err := uc.Execute(context.Background(), request(ptr.Ptr(int64(5))))
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_PartialTimeOffBlocksSlots(t *testing.T) {
	env := newTestEnv().withService(10, 30, true).withStaff(5, true).withHours(5, "12:00", "15:00")
	env.policies.policy = &domain.TenantPolicy{
		TenantID: 1, LeadTimeHours: 0, SlotIntervalMinutes: 30,
	}
	env.timeOff.entries = []*domain.TimeOff{
		{
			TenantID: 1, StaffID: ptr.Ptr(int64(5)), Date: testDay,
			StartTime: ptr.Ptr(types.TimeString("13:00")),
			EndTime:   ptr.Ptr(types.TimeString("14:00")),
		},
	}
	uc := env.useCase(at(7, 0))

	resp, err := uc.Execute(context.Background(), request(ptr.Ptr(int64(5))))
	require.NoError(t, err)
	assert.Equal(t, []string{"12:00", "12:30", "14:00", "14:30"}, availableTimes(resp.Slots))
}

func TestExecute_NoWorkingHoursMeansEmptyDay(t *testing.T) {
	// Нерабочий день - это нулевая доступность, а не ошибка
	env := newTestEnv().withService(10, 60, true).withStaff(5, true)
	uc := env.useCase(at(7, 0))

	resp, err := uc.Execute(context.Background(), request(ptr.Ptr(int64(5))))
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_CacheHitSkipsComputation(t *testing.T) {
	env := newTestEnv().withService(10, 60, true).withStaff(5, true)
	cached := []domain.Slot{{Time: "09:00", Available: true}}
	env.cache = &fakeSlotCache{data: map[string][]domain.Slot{
		cacheKey(ptr.Ptr(int64(5)), testDay): cached,
	}}
	uc := env.useCase(at(7, 0))

	resp, err := uc.Execute(context.Background(), request(ptr.Ptr(int64(5))))
	require.NoError(t, err)
	assert.Equal(t, cached, resp.Slots)
	assert.Zero(t, env.cache.stores)
}

func TestExecute_CacheMissStoresResult(t *testing.T) {
	env := newTestEnv().withService(10, 60, true).withStaff(5, true).withHours(5, "09:00", "12:00")
	env.policies.policy = &domain.TenantPolicy{
		TenantID: 1, LeadTimeHours: 0, SlotIntervalMinutes: 30,
	}
	env.cache = &fakeSlotCache{}
	uc := env.useCase(at(7, 0))

	resp, err := uc.Execute(context.Background(), request(ptr.Ptr(int64(5))))
	require.NoError(t, err)
	assert.Equal(t, 1, env.cache.stores)

	// Повторный запрос отдается из кэша
	again, err := uc.Execute(context.Background(), request(ptr.Ptr(int64(5))))
	require.NoError(t, err)
	assert.Equal(t, resp.Slots, again.Slots)
	assert.Equal(t, 1, env.cache.stores)
}
