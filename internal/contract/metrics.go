package contract

import "time"

// LogMetricsRequest records one day's productivity telemetry.
type LogMetricsRequest struct {
	Date               string  `json:"date,omitempty"`
	ProductivityRating float64 `json:"productivityRating"`
	StudyTimeMinutes   int     `json:"studyTimeMinutes"`
}

type MetricsErrorCode string

const (
	ErrInvalidMetricDate MetricsErrorCode = "INVALID_METRIC_DATE"
	ErrInvalidRating     MetricsErrorCode = "INVALID_RATING"
	ErrInvalidMinutes    MetricsErrorCode = "INVALID_MINUTES"
)

type MetricsError struct {
	Code    MetricsErrorCode
	Message string
}

func (e *MetricsError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Validate checks ranges and resolves the metric day, defaulting to now.
func (r LogMetricsRequest) Validate(now time.Time) (time.Time, error) {
	day := now.UTC().Truncate(24 * time.Hour)
	if r.Date != "" {
		parsed, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			return time.Time{}, &MetricsError{
				Code:    ErrInvalidMetricDate,
				Message: "date must be formatted as YYYY-MM-DD",
			}
		}
		day = parsed
	}
	if r.ProductivityRating < 1 || r.ProductivityRating > 5 {
		return time.Time{}, &MetricsError{
			Code:    ErrInvalidRating,
			Message: "productivityRating must be between 1 and 5",
		}
	}
	if r.StudyTimeMinutes < 0 {
		return time.Time{}, &MetricsError{
			Code:    ErrInvalidMinutes,
			Message: "studyTimeMinutes must not be negative",
		}
	}
	return day, nil
}
