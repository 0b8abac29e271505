package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"medicenter-portal/internal/domain/entity"
)

func parseUpstreamTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}

func (c *Client) DoctorAppointments(ctx context.Context, token string) ([]entity.Appointment, error) {
	body, err := c.do(ctx, "doctor.appointments", http.MethodGet, "/doctor/appointments", token, nil)
	if err != nil {
		return nil, err
	}
	return normalizeAppointmentList(body), nil
}

func (c *Client) CancelDoctorAppointment(ctx context.Context, token, appointmentID, reason string) error {
	path := "/doctor/appointments/" + url.PathEscape(appointmentID) + "/cancel"
	_, err := c.do(ctx, "doctor.cancel_appointment", http.MethodPut, path, token, map[string]string{
		"cancellationReason": reason,
	})
	return err
}

func (c *Client) CompleteAppointment(ctx context.Context, token, appointmentID, prescription, notes string) error {
	path := "/doctor/appointments/" + url.PathEscape(appointmentID) + "/complete"
	_, err := c.do(ctx, "doctor.complete_appointment", http.MethodPut, path, token, map[string]string{
		"prescription": prescription,
		"notes":        notes,
	})
	return err
}

type schedulePayload struct {
	DoctorID       string   `json:"doctorId"`
	Date           string   `json:"date"`
	IsWorkingDay   *bool    `json:"isWorkingDay"`
	AvailableTimes []string `json:"availableTimes"`
}

func (c *Client) Schedule(ctx context.Context, token, date string) (*entity.ScheduleOverride, error) {
	path := "/doctor/schedule?date=" + url.QueryEscape(date)
	body, err := c.do(ctx, "doctor.schedule", http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}

	var payload schedulePayload
	if err := json.Unmarshal(unwrapData(body), &payload); err != nil {
		// No override recorded for the date: a working day with no
		// extra times, so the weekly schedule stands.
		return &entity.ScheduleOverride{Date: date, IsWorkingDay: true, AvailableTimes: []string{}}, nil
	}

	override := &entity.ScheduleOverride{
		DoctorID:       payload.DoctorID,
		Date:           payload.Date,
		IsWorkingDay:   true,
		AvailableTimes: payload.AvailableTimes,
	}
	if override.Date == "" {
		override.Date = date
	}
	if payload.IsWorkingDay != nil {
		override.IsWorkingDay = *payload.IsWorkingDay
	}
	if override.AvailableTimes == nil {
		override.AvailableTimes = []string{}
	}
	return override, nil
}

func (c *Client) SaveSchedule(ctx context.Context, token string, override *entity.ScheduleOverride) error {
	_, err := c.do(ctx, "doctor.save_schedule", http.MethodPost, "/doctor/schedule", token, map[string]interface{}{
		"date":           override.Date,
		"isWorkingDay":   override.IsWorkingDay,
		"availableTimes": override.AvailableTimes,
	})
	return err
}
