package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"babygpt/internal/agent"
	"babygpt/internal/model"
	"babygpt/pkg/gcalendar"
	pkgLog "babygpt/pkg/log"
)

type ListAppointmentsTool struct {
	calendar   CalendarClient // nil when no credentials are configured
	calendarID string
	l          pkgLog.Logger
}

func NewListAppointmentsTool(calendar CalendarClient, calendarID string, l pkgLog.Logger) *ListAppointmentsTool {
	return &ListAppointmentsTool{
		calendar:   calendar,
		calendarID: calendarID,
		l:          l,
	}
}

func (t *ListAppointmentsTool) Name() string {
	return "list_appointments"
}

func (t *ListAppointmentsTool) Description() string {
	return "List upcoming calendar appointments. Use this to check for conflicts before scheduling or to remind the user what is coming up."
}

func (t *ListAppointmentsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"days_ahead": map[string]interface{}{
				"type":        "integer",
				"description": "How many days ahead to look",
				"default":     30,
			},
		},
		"required": []string{},
	}
}

type ListAppointmentsInput struct {
	DaysAhead int `json:"days_ahead"`
}

type AppointmentEntry struct {
	Title     string `json:"title"`
	StartTime string `json:"start_time"`
	Location  string `json:"location,omitempty"`
}

type ListAppointmentsOutput struct {
	Appointments []AppointmentEntry `json:"appointments"`
	Summary      string             `json:"summary"`
}

func (t *ListAppointmentsTool) Execute(ctx context.Context, sc model.Scope, input map[string]interface{}) (interface{}, error) {
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	var params ListAppointmentsInput
	if err := json.Unmarshal(inputBytes, &params); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}
	if params.DaysAhead <= 0 {
		params.DaysAhead = 30
	}

	if t.calendar == nil {
		return ListAppointmentsOutput{
			Appointments: []AppointmentEntry{},
			Summary:      "No calendar is connected. Appointments recorded in the pregnancy plan can be found with read_plan.",
		}, nil
	}

	now := time.Now()
	events, err := t.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: t.calendarID,
		TimeMin:    now,
		TimeMax:    now.AddDate(0, 0, params.DaysAhead),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	t.l.Infof(ctx, "list_appointments: username=%s days_ahead=%d found=%d", sc.Username, params.DaysAhead, len(events))

	out := ListAppointmentsOutput{Appointments: make([]AppointmentEntry, 0, len(events))}
	for _, ev := range events {
		out.Appointments = append(out.Appointments, AppointmentEntry{
			Title:     ev.Summary,
			StartTime: ev.StartTime.Format(time.RFC3339),
			Location:  ev.Location,
		})
	}
	out.Summary = fmt.Sprintf("Found %d appointment(s) in the next %d days.", len(events), params.DaysAhead)
	return out, nil
}

var _ agent.Tool = (*ListAppointmentsTool)(nil)
