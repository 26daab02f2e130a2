package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"babygpt/internal/agent"
	"babygpt/internal/model"
	"babygpt/internal/plan"
	"babygpt/pkg/gcalendar"
	pkgLog "babygpt/pkg/log"
)

// CalendarClient abstracts the Google Calendar API for mocking
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

type ScheduleAppointmentTool struct {
	calendar   CalendarClient // nil when no credentials are configured
	calendarID string
	planRepo   plan.Repository
	l          pkgLog.Logger
}

func NewScheduleAppointmentTool(calendar CalendarClient, calendarID string, planRepo plan.Repository, l pkgLog.Logger) *ScheduleAppointmentTool {
	return &ScheduleAppointmentTool{
		calendar:   calendar,
		calendarID: calendarID,
		planRepo:   planRepo,
		l:          l,
	}
}

func (t *ScheduleAppointmentTool) Name() string {
	return "schedule_appointment"
}

func (t *ScheduleAppointmentTool) Description() string {
	return "Schedule a prenatal appointment. Records it in the Appointments section of the pregnancy plan and, when a calendar is connected, creates a Google Calendar event."
}

func (t *ScheduleAppointmentTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"title": map[string]interface{}{
				"type":        "string",
				"description": "Appointment title, e.g. '20-week anatomy scan'",
			},
			"date": map[string]interface{}{
				"type":        "string",
				"description": "Date in YYYY-MM-DD format",
			},
			"time": map[string]interface{}{
				"type":        "string",
				"description": "Start time in HH:MM 24-hour format",
			},
			"duration_minutes": map[string]interface{}{
				"type":        "integer",
				"description": "Duration in minutes",
				"default":     30,
			},
			"notes": map[string]interface{}{
				"type":        "string",
				"description": "Optional notes, e.g. clinic name or questions to ask",
			},
		},
		"required": []string{"title", "date", "time"},
	}
}

type ScheduleAppointmentInput struct {
	Title           string `json:"title"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	Notes           string `json:"notes"`
}

type ScheduleAppointmentOutput struct {
	Title         string `json:"title"`
	StartTime     string `json:"start_time"`
	CalendarEvent bool   `json:"calendar_event"`
	EventLink     string `json:"event_link,omitempty"`
	Summary       string `json:"summary"`
}

func (t *ScheduleAppointmentTool) Execute(ctx context.Context, sc model.Scope, input map[string]interface{}) (interface{}, error) {
	// Parse input
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	var params ScheduleAppointmentInput
	if err := json.Unmarshal(inputBytes, &params); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	if params.DurationMinutes <= 0 {
		params.DurationMinutes = 30
	}

	startTime, err := time.Parse("2006-01-02 15:04", params.Date+" "+params.Time)
	if err != nil {
		return nil, fmt.Errorf("invalid date/time format: %w", err)
	}
	endTime := startTime.Add(time.Duration(params.DurationMinutes) * time.Minute)

	t.l.Infof(ctx, "schedule_appointment: username=%s title=%q start=%s", sc.Username, params.Title, startTime.Format(time.RFC3339))

	// Record in the plan first so the appointment survives calendar outages
	entry := fmt.Sprintf("- %s %s: %s", params.Date, params.Time, params.Title)
	if params.Notes != "" {
		entry += " (" + params.Notes + ")"
	}

	existing := ""
	if content, readErr := t.planRepo.Read(ctx, sc.Username); readErr == nil {
		existing = appointmentsSection(content)
	} else if !errors.Is(readErr, plan.ErrNotFound) {
		return nil, readErr
	}

	body := entry
	if existing != "" {
		body = existing + "\n" + entry
	}
	if err := t.planRepo.UpdateSection(ctx, sc.Username, "Appointments", body); err != nil {
		return nil, fmt.Errorf("failed to record appointment in plan: %w", err)
	}

	out := ScheduleAppointmentOutput{
		Title:     params.Title,
		StartTime: startTime.Format(time.RFC3339),
	}

	if t.calendar == nil {
		out.Summary = fmt.Sprintf("Appointment %q recorded in the plan. No calendar is connected, so no event was created.", params.Title)
		return out, nil
	}

	event, err := t.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  t.calendarID,
		Summary:     params.Title,
		Description: params.Notes,
		StartTime:   startTime,
		EndTime:     endTime,
	})
	if err != nil {
		t.l.Errorf(ctx, "schedule_appointment: failed to create calendar event: %v", err)
		out.Summary = fmt.Sprintf("Appointment %q recorded in the plan, but the calendar event could not be created: %v", params.Title, err)
		return out, nil
	}

	out.CalendarEvent = true
	out.EventLink = event.HtmlLink
	out.Summary = fmt.Sprintf("Appointment %q scheduled for %s %s and added to the calendar.", params.Title, params.Date, params.Time)
	return out, nil
}

// appointmentsSection extracts the body of the Appointments section, if any.
func appointmentsSection(content string) string {
	for _, chunk := range strings.Split(content, "## ")[1:] {
		if chunk == "Appointments" || strings.HasPrefix(chunk, "Appointments\n") {
			body := strings.TrimPrefix(chunk, "Appointments")
			return strings.TrimSpace(body)
		}
	}
	return ""
}

var _ agent.Tool = (*ScheduleAppointmentTool)(nil)
