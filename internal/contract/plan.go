package contract

import (
	"time"
)

// GeneratePlanRequest is the wire shape for plan generation. Dates use
// the 2006-01-02 layout; optional knobs default via Validate.
type GeneratePlanRequest struct {
	StartDate          string   `json:"startDate"`
	EndDate            string   `json:"endDate"`
	DailyStudyHours    *float64 `json:"dailyStudyHours,omitempty"`
	IncludeWeekends    *bool    `json:"includeWeekends,omitempty"`
	PrioritizeDueTasks *bool    `json:"prioritizeDueTasks,omitempty"`
}

// PlanWindow is the validated, defaulted form of a GeneratePlanRequest.
type PlanWindow struct {
	StartDate          time.Time
	EndDate            time.Time
	DailyStudyHours    float64
	IncludeWeekends    bool
	PrioritizeDueTasks bool
}

const (
	DefaultDailyStudyHours = 6.0
	MaxDailyStudyHours     = 16.0
)

const dateLayout = "2006-01-02"

// Validate checks the request at the boundary and applies defaults.
// The planner core assumes pre-validated input; every rejection happens here.
func (r GeneratePlanRequest) Validate() (PlanWindow, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return PlanWindow{}, &PlanError{
			Code:    ErrInvalidDate,
			Message: "startDate must be formatted as YYYY-MM-DD",
		}
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return PlanWindow{}, &PlanError{
			Code:    ErrInvalidDate,
			Message: "endDate must be formatted as YYYY-MM-DD",
		}
	}
	if end.Before(start) {
		return PlanWindow{}, &PlanError{
			Code:    ErrInvalidDateRange,
			Message: "endDate must not be before startDate",
		}
	}

	hours := DefaultDailyStudyHours
	if r.DailyStudyHours != nil {
		hours = *r.DailyStudyHours
	}
	if hours <= 0 || hours > MaxDailyStudyHours {
		return PlanWindow{}, &PlanError{
			Code:    ErrInvalidDailyHours,
			Message: "dailyStudyHours must be greater than 0 and at most 16",
		}
	}

	w := PlanWindow{
		StartDate:          start,
		EndDate:            end,
		DailyStudyHours:    hours,
		PrioritizeDueTasks: true,
	}
	if r.IncludeWeekends != nil {
		w.IncludeWeekends = *r.IncludeWeekends
	}
	if r.PrioritizeDueTasks != nil {
		w.PrioritizeDueTasks = *r.PrioritizeDueTasks
	}
	return w, nil
}

// Session is a single scheduled study block within a day plan.
type Session struct {
	Title      string    `json:"title"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	WorkItemID *string   `json:"workItemId,omitempty"`
	Subject    string    `json:"subject,omitempty"`
	Difficulty int       `json:"difficulty,omitempty"`
	Hours      float64   `json:"hours"`
}

// DayPlan holds the sessions scheduled for one calendar day.
type DayPlan struct {
	Date       string    `json:"date"`
	TotalHours float64   `json:"totalHours"`
	Sessions   []Session `json:"sessions"`
}

// StudyPlan is the full plan-generation result. Days with nothing
// scheduled are omitted from DailyPlans.
type StudyPlan struct {
	TotalDays       int       `json:"totalDays"`
	TotalStudyHours float64   `json:"totalStudyHours"`
	DailyPlans      []DayPlan `json:"dailyPlans"`
}

// ApplySession is one session to persist as a calendar event.
type ApplySession struct {
	Title      string    `json:"title"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	WorkItemID *string   `json:"workItemId,omitempty"`
}

// ApplyPlanRequest persists a generated plan's sessions as calendar
// events. The idempotency key guards against double application.
type ApplyPlanRequest struct {
	IdempotencyKey string         `json:"idempotencyKey"`
	Sessions       []ApplySession `json:"sessions"`
}

// Validate rejects empty applications and missing idempotency keys.
func (r ApplyPlanRequest) Validate() error {
	if r.IdempotencyKey == "" {
		return &PlanError{
			Code:    ErrMissingIdempotencyKey,
			Message: "idempotencyKey is required",
		}
	}
	if len(r.Sessions) == 0 {
		return &PlanError{
			Code:    ErrEmptyPlan,
			Message: "at least one session is required",
		}
	}
	for _, s := range r.Sessions {
		if !s.EndTime.After(s.StartTime) {
			return &PlanError{
				Code:    ErrInvalidSession,
				Message: "session endTime must be after startTime",
			}
		}
	}
	return nil
}

type PlanErrorCode string

const (
	ErrInvalidDate           PlanErrorCode = "INVALID_DATE"
	ErrInvalidDateRange      PlanErrorCode = "INVALID_DATE_RANGE"
	ErrInvalidDailyHours     PlanErrorCode = "INVALID_DAILY_HOURS"
	ErrMissingIdempotencyKey PlanErrorCode = "MISSING_IDEMPOTENCY_KEY"
	ErrEmptyPlan             PlanErrorCode = "EMPTY_PLAN"
	ErrInvalidSession        PlanErrorCode = "INVALID_SESSION"
	ErrDuplicateApplication  PlanErrorCode = "DUPLICATE_APPLICATION"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
