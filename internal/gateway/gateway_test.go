package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
)

var errTestService = errors.New("test service error")

// fakeService records every call and returns canned results.
type fakeService struct {
	// calls lists the invoked operations in order.
	calls []string
	// uids lists the uid arguments in order.
	uids []string
	// records lists the record arguments in order.
	records []alarm.Record

	// all is returned by GetAll.
	all []alarm.Record
	// one is returned by Get.
	one alarm.Record
	// state is returned by GetState.
	state any
	// err is returned by every operation when set.
	err error
}

func (f *fakeService) record(name string, record alarm.Record) error {
	f.calls = append(f.calls, name)
	f.records = append(f.records, record)

	return f.err
}

func (f *fakeService) uid(name, uid string) error {
	f.calls = append(f.calls, name)
	f.uids = append(f.uids, uid)

	return f.err
}

func (f *fakeService) bare(name string) error {
	f.calls = append(f.calls, name)

	return f.err
}

func (f *fakeService) Set(_ context.Context, r alarm.Record) error    { return f.record("set", r) }
func (f *fakeService) Update(_ context.Context, r alarm.Record) error { return f.record("update", r) }
func (f *fakeService) Enable(_ context.Context, uid string) error    { return f.uid("enable", uid) }
func (f *fakeService) Disable(_ context.Context, uid string) error   { return f.uid("disable", uid) }
func (f *fakeService) Remove(_ context.Context, uid string) error    { return f.uid("remove", uid) }
func (f *fakeService) RemoveAll(context.Context) error               { return f.bare("removeAll") }
func (f *fakeService) Stop(context.Context) error                    { return f.bare("stop") }
func (f *fakeService) Snooze(context.Context) error                  { return f.bare("snooze") }

func (f *fakeService) GetAll(context.Context) ([]alarm.Record, error) {
	return f.all, f.bare("getAll")
}

func (f *fakeService) Get(_ context.Context, uid string) (alarm.Record, error) {
	return f.one, f.uid("get", uid)
}

func (f *fakeService) GetState(context.Context) (any, error) {
	return f.state, f.bare("getState")
}

// TestScheduleAlarm_RawMatchesNormalized verifies raw configurations produce the same payload as New+ToService.
func TestScheduleAlarm_RawMatchesNormalized(t *testing.T) {
	t.Parallel()

	params := alarm.Params{
		alarm.KeyUID:     "morning",
		alarm.KeyHour:    6,
		alarm.KeyMinutes: 15,
		alarm.KeyDays:    []int{0, 6},
	}

	svc := new(fakeService)
	g := New(svc)

	require.NoError(t, g.ScheduleAlarm(context.Background(), alarm.Raw(params)))
	require.NoError(t, g.ScheduleAlarm(context.Background(), alarm.Normalized(alarm.New(params))))

	require.Equal(t, []string{"set", "set"}, svc.calls)
	require.Equal(t, alarm.New(params).ToService(), svc.records[0])
	require.Equal(t, svc.records[0], svc.records[1])
	require.Equal(t, []int{1, 0}, svc.records[0][alarm.KeyDays])
}

// TestUpdateAlarm converts days to the service convention.
func TestUpdateAlarm(t *testing.T) {
	t.Parallel()

	svc := new(fakeService)
	g := New(svc)

	a := alarm.New(alarm.Params{alarm.KeyUID: "x", alarm.KeyDays: []int{3}})
	require.NoError(t, g.UpdateAlarm(context.Background(), alarm.Normalized(a)))

	require.Equal(t, []string{"update"}, svc.calls)
	require.Equal(t, []int{4}, svc.records[0][alarm.KeyDays])
	require.Equal(t, []int{3}, a.Days)
}

// TestForwarding checks the uid and argument-less operations reach the service.
func TestForwarding(t *testing.T) {
	t.Parallel()

	svc := new(fakeService)
	g := New(svc)
	ctx := context.Background()

	require.NoError(t, g.EnableAlarm(ctx, "a"))
	require.NoError(t, g.DisableAlarm(ctx, "b"))
	require.NoError(t, g.RemoveAlarm(ctx, "c"))
	require.NoError(t, g.RemoveAllAlarms(ctx))
	require.NoError(t, g.StopAlarm(ctx))
	require.NoError(t, g.SnoozeAlarm(ctx))

	require.Equal(t, []string{"enable", "disable", "remove", "removeAll", "stop", "snooze"}, svc.calls)
	require.Equal(t, []string{"a", "b", "c"}, svc.uids)
}

// TestReads converts service records back to the in-app convention and passes state through.
func TestReads(t *testing.T) {
	t.Parallel()

	state := map[string]any{"ringing": "a"}
	svc := &fakeService{
		all: []alarm.Record{
			{alarm.KeyUID: "a", alarm.KeyDays: []int{0}},
			{alarm.KeyUID: "b", alarm.KeyDays: []any{float64(1), float64(6)}},
		},
		one:   alarm.Record{alarm.KeyUID: "c", alarm.KeyTitle: "Nap", alarm.KeyDays: []int{2}},
		state: state,
	}
	g := New(svc)
	ctx := context.Background()

	all, err := g.GetAllAlarms(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "a", all[0].UID)
	require.Equal(t, []int{6}, all[0].Days)
	require.Equal(t, []int{0, 5}, all[1].Days)

	one, err := g.GetAlarm(ctx, "c")
	require.NoError(t, err)
	require.Equal(t, "Nap", one.Title)
	require.Equal(t, []int{1}, one.Days)
	require.Equal(t, []string{"c"}, svc.uids)

	got, err := g.GetAlarmState(ctx)
	require.NoError(t, err)
	require.Equal(t, state, got)
}

// TestErrorsPropagateUnchanged ensures service errors are returned as they are.
func TestErrorsPropagateUnchanged(t *testing.T) {
	t.Parallel()

	svc := &fakeService{err: errTestService}
	g := New(svc)
	ctx := context.Background()

	require.Same(t, errTestService, g.ScheduleAlarm(ctx, alarm.Raw(nil)))
	require.Same(t, errTestService, g.EnableAlarm(ctx, "x"))
	require.Same(t, errTestService, g.StopAlarm(ctx))

	all, err := g.GetAllAlarms(ctx)
	require.Same(t, errTestService, err)
	require.Nil(t, all)

	one, err := g.GetAlarm(ctx, "x")
	require.Same(t, errTestService, err)
	require.Nil(t, one)

	_, err = g.GetAlarmState(ctx)
	require.Same(t, errTestService, err)
}
