package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"medicenter-portal/internal/domain/entity"
	"medicenter-portal/internal/domain/gateway"
)

type slotPayload struct {
	AllSlots       []string `json:"allSlots"`
	AvailableSlots []string `json:"availableSlots"`
	BookedSlots    []string `json:"bookedSlots"`
}

// normalizeSlotAvailability maps whatever the slots endpoint sent onto the
// canonical SlotAvailability. Three shapes are tolerated: a bare array of
// available slot strings, a full object, and a partial object. Anything
// unrecognizable degrades to empty sets rather than an error.
func normalizeSlotAvailability(doctorID, date string, body []byte) *entity.SlotAvailability {
	raw := unwrapData(body)

	var bare []string
	if err := json.Unmarshal(raw, &bare); err == nil {
		return entity.NewSlotAvailability(doctorID, date, bare, nil)
	}

	var payload slotPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return entity.NewSlotAvailability(doctorID, date, nil, nil)
	}

	all := payload.AllSlots
	if len(all) == 0 {
		all = payload.AvailableSlots
	}
	return entity.NewSlotAvailability(doctorID, date, all, payload.BookedSlots)
}

func (c *Client) AvailableSlots(ctx context.Context, token, doctorID, date string) (*entity.SlotAvailability, error) {
	path := "/patient/available-slots/" + url.PathEscape(doctorID) + "?date=" + url.QueryEscape(date)
	body, err := c.do(ctx, "patient.available_slots", http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	return normalizeSlotAvailability(doctorID, date, body), nil
}

type appointmentPayload struct {
	ID                 string `json:"id"`
	LegacyID           string `json:"_id"`
	DoctorID           string `json:"doctorId"`
	PatientID          string `json:"patientId"`
	SpecializationID   string `json:"specializationId"`
	DoctorName         string `json:"doctorName"`
	PatientName        string `json:"patientName"`
	Date               string `json:"date"`
	Time               string `json:"time"`
	Status             string `json:"status"`
	Notes              string `json:"notes"`
	Prescription       string `json:"prescription"`
	CancellationReason string `json:"cancellationReason"`
	CompletedAt        string `json:"completedAt"`
}

func (p *appointmentPayload) toEntity() entity.Appointment {
	appointment := entity.Appointment{
		ID:                 p.ID,
		DoctorID:           p.DoctorID,
		PatientID:          p.PatientID,
		SpecializationID:   p.SpecializationID,
		DoctorName:         p.DoctorName,
		PatientName:        p.PatientName,
		Date:               p.Date,
		Time:               p.Time,
		Status:             entity.AppointmentStatus(p.Status),
		Notes:              p.Notes,
		Prescription:       p.Prescription,
		CancellationReason: p.CancellationReason,
	}
	if appointment.ID == "" {
		appointment.ID = p.LegacyID
	}
	if t, err := parseUpstreamTime(p.CompletedAt); err == nil {
		appointment.CompletedAt = &t
	}
	return appointment
}

// normalizeAppointmentList accepts a bare array or an {appointments: [...]}
// object; anything else is an empty list, never an error.
func normalizeAppointmentList(body []byte) []entity.Appointment {
	raw := unwrapData(body)

	var payloads []appointmentPayload
	if err := json.Unmarshal(raw, &payloads); err != nil {
		var wrapped struct {
			Appointments []appointmentPayload `json:"appointments"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return []entity.Appointment{}
		}
		payloads = wrapped.Appointments
	}

	appointments := make([]entity.Appointment, 0, len(payloads))
	for i := range payloads {
		appointments = append(appointments, payloads[i].toEntity())
	}
	return appointments
}

func (c *Client) CreateAppointment(ctx context.Context, token string, input gateway.BookingInput) (*entity.Appointment, error) {
	body, err := c.do(ctx, "patient.create_appointment", http.MethodPost, "/patient/appointments", token, map[string]string{
		"doctorId":         input.DoctorID,
		"specializationId": input.SpecializationID,
		"date":             input.Date,
		"time":             input.Time,
		"notes":            input.Notes,
	})
	if err != nil {
		return nil, err
	}

	var payload appointmentPayload
	if err := json.Unmarshal(unwrapData(body), &payload); err != nil {
		return nil, err
	}
	appointment := payload.toEntity()
	return &appointment, nil
}

func (c *Client) PatientAppointments(ctx context.Context, token string) ([]entity.Appointment, error) {
	body, err := c.do(ctx, "patient.appointments", http.MethodGet, "/patient/appointments", token, nil)
	if err != nil {
		return nil, err
	}
	return normalizeAppointmentList(body), nil
}

func (c *Client) CancelPatientAppointment(ctx context.Context, token, appointmentID, reason string) error {
	path := "/patient/appointments/" + url.PathEscape(appointmentID) + "/cancel"
	_, err := c.do(ctx, "patient.cancel_appointment", http.MethodPut, path, token, map[string]string{
		"cancellationReason": reason,
	})
	return err
}

type doctorPayload struct {
	ID                 string `json:"id"`
	LegacyID           string `json:"_id"`
	Name               string `json:"name"`
	SpecializationID   string `json:"specializationId"`
	SpecializationName string `json:"specializationName"`
	ExperienceYears    int    `json:"experienceYears"`

	// weeklyAvailability arrives either as an array of {day, timeSlots}
	// or as a day -> slots map, depending on the upstream version.
	WeeklyAvailability json.RawMessage `json:"weeklyAvailability"`
}

func (p *doctorPayload) toEntity() entity.Doctor {
	doctor := entity.Doctor{
		ID:                 p.ID,
		Name:               p.Name,
		SpecializationID:   p.SpecializationID,
		SpecializationName: p.SpecializationName,
		ExperienceYears:    p.ExperienceYears,
		WeeklyAvailability: normalizeWeeklyAvailability(p.WeeklyAvailability),
	}
	if doctor.ID == "" {
		doctor.ID = p.LegacyID
	}
	return doctor
}

func normalizeWeeklyAvailability(raw json.RawMessage) []entity.DayAvailability {
	if len(raw) == 0 {
		return []entity.DayAvailability{}
	}

	var asList []struct {
		Day       string   `json:"day"`
		TimeSlots []string `json:"timeSlots"`
	}
	if err := json.Unmarshal(raw, &asList); err == nil {
		days := make([]entity.DayAvailability, 0, len(asList))
		for _, item := range asList {
			days = append(days, entity.DayAvailability{Day: item.Day, TimeSlots: item.TimeSlots})
		}
		return days
	}

	var asMap map[string][]string
	if err := json.Unmarshal(raw, &asMap); err == nil {
		days := make([]entity.DayAvailability, 0, len(asMap))
		for _, weekday := range weekdayOrder {
			if slots, ok := asMap[weekday]; ok {
				days = append(days, entity.DayAvailability{Day: weekday, TimeSlots: slots})
			}
		}
		return days
	}

	return []entity.DayAvailability{}
}

var weekdayOrder = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func (c *Client) Doctors(ctx context.Context, token, specializationID string) ([]entity.Doctor, error) {
	path := "/patient/doctors"
	if specializationID != "" {
		path += "?specialization=" + url.QueryEscape(specializationID)
	}
	body, err := c.do(ctx, "patient.doctors", http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}

	var payloads []doctorPayload
	if err := json.Unmarshal(unwrapData(body), &payloads); err != nil {
		return []entity.Doctor{}, nil
	}
	doctors := make([]entity.Doctor, 0, len(payloads))
	for i := range payloads {
		doctors = append(doctors, payloads[i].toEntity())
	}
	return doctors, nil
}

func (c *Client) Specializations(ctx context.Context, token string) ([]entity.Specialization, error) {
	body, err := c.do(ctx, "patient.specializations", http.MethodGet, "/patient/specializations", token, nil)
	if err != nil {
		return nil, err
	}
	return normalizeSpecializationList(body), nil
}
