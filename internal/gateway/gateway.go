package gateway

import (
	"context"
	"errors"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
)

var (
	// ErrAlarmNotFound is returned by services that know no alarm with the requested uid.
	ErrAlarmNotFound = errors.New("alarm not found")
	// ErrInvalidAlarm is returned by services that reject a record.
	ErrInvalidAlarm = errors.New("invalid alarm")
)

// Service is the call surface of the alarm service that actually schedules,
// stores and fires alarms. Records carry days in the service convention.
type Service interface {
	Set(ctx context.Context, record alarm.Record) error
	Enable(ctx context.Context, uid string) error
	Disable(ctx context.Context, uid string) error
	Update(ctx context.Context, record alarm.Record) error
	Remove(ctx context.Context, uid string) error
	RemoveAll(ctx context.Context) error
	Stop(ctx context.Context) error
	Snooze(ctx context.Context) error
	GetAll(ctx context.Context) ([]alarm.Record, error)
	Get(ctx context.Context, uid string) (alarm.Record, error)
	GetState(ctx context.Context) (any, error)
}

// Gateway exposes the alarm operations of the application on top of a Service.
type Gateway struct {
	// service receives every forwarded call.
	service Service
}

// New wires the gateway to the provided service.
func New(service Service) *Gateway {
	return &Gateway{
		service: service,
	}
}

// ScheduleAlarm hands a new alarm to the service.
func (g *Gateway) ScheduleAlarm(ctx context.Context, cfg alarm.Config) error {
	record := cfg.Alarm().ToService()

	logger.InfoKV(ctx, "Scheduling alarm", "alarm", record)

	return g.service.Set(ctx, record)
}

// UpdateAlarm replaces the configuration of an existing alarm.
func (g *Gateway) UpdateAlarm(ctx context.Context, cfg alarm.Config) error {
	return g.service.Update(ctx, cfg.Alarm().ToService())
}

// EnableAlarm switches an alarm on.
func (g *Gateway) EnableAlarm(ctx context.Context, uid string) error {
	return g.service.Enable(ctx, uid)
}

// DisableAlarm switches an alarm off.
func (g *Gateway) DisableAlarm(ctx context.Context, uid string) error {
	return g.service.Disable(ctx, uid)
}

// RemoveAlarm deletes one alarm.
func (g *Gateway) RemoveAlarm(ctx context.Context, uid string) error {
	return g.service.Remove(ctx, uid)
}

// RemoveAllAlarms deletes every alarm.
func (g *Gateway) RemoveAllAlarms(ctx context.Context) error {
	return g.service.RemoveAll(ctx)
}

// StopAlarm stops the alarm that is ringing.
func (g *Gateway) StopAlarm(ctx context.Context) error {
	return g.service.Stop(ctx)
}

// SnoozeAlarm snoozes the alarm that is ringing.
func (g *Gateway) SnoozeAlarm(ctx context.Context) error {
	return g.service.Snooze(ctx)
}

// GetAllAlarms returns every alarm known to the service.
func (g *Gateway) GetAllAlarms(ctx context.Context) ([]*alarm.Alarm, error) {
	records, err := g.service.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*alarm.Alarm, 0, len(records))
	for _, record := range records {
		result = append(result, alarm.FromService(record))
	}

	return result, nil
}

// GetAlarm returns the alarm with the given uid.
func (g *Gateway) GetAlarm(ctx context.Context, uid string) (*alarm.Alarm, error) {
	record, err := g.service.Get(ctx, uid)
	if err != nil {
		return nil, err
	}

	return alarm.FromService(record), nil
}

// GetAlarmState returns the service state as the service reported it.
func (g *Gateway) GetAlarmState(ctx context.Context) (any, error) {
	return g.service.GetState(ctx)
}
