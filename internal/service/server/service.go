package server

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/gateway"
	"github.com/oshokin/alarm-clock/internal/logger"
	repo "github.com/oshokin/alarm-clock/internal/repository/alarms"
)

// Control actions reported in the service state.
const (
	actionNone   = "none"
	actionStop   = "stop"
	actionSnooze = "snooze"
)

var _ gateway.Service = (*registry)(nil)

// registry is the reference implementation of the alarm service contract.
// It keeps records in the service day convention and persists them after
// every write. It never fires alarms.
// It is unexported to keep the transport decoupled from the implementation.
type registry struct {
	// repo handles persistent storage of alarm records.
	repo repo.Repository
	// records holds alarms by uid.
	records map[string]alarm.Record
	// order keeps uids in scheduling order.
	order []string
	// lastAction is the most recent control action.
	lastAction string
	// updatedAt is when anything last changed.
	updatedAt time.Time
	// now returns the current moment.
	now func() time.Time
	// mu protects the fields above.
	mu sync.RWMutex
}

// newRegistry creates a registry backed by the provided repository.
func newRegistry(ctx context.Context, repository repo.Repository) (*registry, error) {
	r := &registry{
		repo:       repository,
		records:    make(map[string]alarm.Record),
		lastAction: actionNone,
		now:        time.Now,
	}

	r.updatedAt = r.now()

	if repository == nil {
		return r, nil
	}

	records, err := repository.Load(ctx)
	switch {
	case err == nil:
		for _, record := range records {
			r.put(record)
		}
	case errors.Is(err, repo.ErrNotFound):
		// Start empty.
	default:
		return nil, fmt.Errorf("load alarms: %w", err)
	}

	logger.InfoKV(ctx, "Alarms loaded", "count", len(r.order))

	return r, nil
}

// Set stores a new alarm, replacing any alarm with the same uid.
func (r *registry) Set(ctx context.Context, record alarm.Record) error {
	uid := record.UID()
	if uid == "" {
		return fmt.Errorf("%w: uid is required", gateway.ErrInvalidAlarm)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.put(record)

	logger.InfoKV(ctx, "Alarm scheduled", "uid", uid)

	return r.persist(ctx)
}

// Update replaces an existing alarm.
func (r *registry) Update(ctx context.Context, record alarm.Record) error {
	uid := record.UID()
	if uid == "" {
		return fmt.Errorf("%w: uid is required", gateway.ErrInvalidAlarm)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, found := r.records[uid]; !found {
		return fmt.Errorf("%w: %s", gateway.ErrAlarmNotFound, uid)
	}

	r.put(record)

	logger.InfoKV(ctx, "Alarm updated", "uid", uid)

	return r.persist(ctx)
}

// Enable switches an alarm on.
func (r *registry) Enable(ctx context.Context, uid string) error {
	return r.setEnabled(ctx, uid, true)
}

// Disable switches an alarm off.
func (r *registry) Disable(ctx context.Context, uid string) error {
	return r.setEnabled(ctx, uid, false)
}

func (r *registry) setEnabled(ctx context.Context, uid string, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, found := r.records[uid]
	if !found {
		return fmt.Errorf("%w: %s", gateway.ErrAlarmNotFound, uid)
	}

	record[alarm.KeyEnabled] = enabled
	r.touch()

	logger.InfoKV(ctx, "Alarm toggled", "uid", uid, "enabled", enabled)

	return r.persist(ctx)
}

// Remove deletes one alarm.
func (r *registry) Remove(ctx context.Context, uid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, found := r.records[uid]; !found {
		return fmt.Errorf("%w: %s", gateway.ErrAlarmNotFound, uid)
	}

	delete(r.records, uid)
	r.order = slices.DeleteFunc(r.order, func(s string) bool { return s == uid })
	r.touch()

	logger.InfoKV(ctx, "Alarm removed", "uid", uid)

	return r.persist(ctx)
}

// RemoveAll deletes every alarm.
func (r *registry) RemoveAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := len(r.order)
	r.records = make(map[string]alarm.Record)
	r.order = nil
	r.touch()

	logger.InfoKV(ctx, "All alarms removed", "count", removed)

	return r.persist(ctx)
}

// Stop records a stop request for the ringing alarm.
func (r *registry) Stop(ctx context.Context) error {
	return r.control(ctx, actionStop)
}

// Snooze records a snooze request for the ringing alarm.
func (r *registry) Snooze(ctx context.Context) error {
	return r.control(ctx, actionSnooze)
}

func (r *registry) control(ctx context.Context, action string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastAction = action
	r.touch()

	logger.InfoKV(ctx, "Alarm control received", "action", action)

	return nil
}

// GetAll returns copies of every alarm in scheduling order.
func (r *registry) GetAll(context.Context) ([]alarm.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshot(), nil
}

// Get returns a copy of one alarm.
func (r *registry) Get(_ context.Context, uid string) (alarm.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, found := r.records[uid]
	if !found {
		return nil, fmt.Errorf("%w: %s", gateway.ErrAlarmNotFound, uid)
	}

	return maps.Clone(record), nil
}

// GetState reports alarm counts and the last control action.
func (r *registry) GetState(context.Context) (any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	enabled := 0

	for _, record := range r.records {
		if alarm.FromService(record).Enabled {
			enabled++
		}
	}

	return map[string]any{
		"alarms":     len(r.records),
		"enabled":    enabled,
		"lastAction": r.lastAction,
		"updatedAt":  r.updatedAt.UTC().Format(time.RFC3339),
	}, nil
}

// put stores a copy of record. Callers hold the write lock.
func (r *registry) put(record alarm.Record) {
	uid := record.UID()
	if uid == "" {
		return
	}

	if _, found := r.records[uid]; !found {
		r.order = append(r.order, uid)
	}

	r.records[uid] = maps.Clone(record)
	r.touch()
}

// touch marks the registry as changed. Callers hold the write lock.
func (r *registry) touch() {
	r.updatedAt = r.now()
}

// snapshot copies the records in order. Callers hold a lock.
func (r *registry) snapshot() []alarm.Record {
	result := make([]alarm.Record, 0, len(r.order))
	for _, uid := range r.order {
		result = append(result, maps.Clone(r.records[uid]))
	}

	return result
}

// persist saves the records. Callers hold the write lock.
func (r *registry) persist(ctx context.Context) error {
	if r.repo == nil {
		return nil
	}

	if err := r.repo.Save(ctx, r.snapshot()); err != nil {
		logger.Errorf(ctx, "Failed to persist alarms: %v", err)

		return fmt.Errorf("persist alarms: %w", err)
	}

	return nil
}
