package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/absensi-app/absensi-backend-go/internal/pkg/validator"
)

// Filter carries the raw, possibly-conflicting report query parameters.
type Filter struct {
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	FilterBy   *string `json:"filter_by,omitempty"`  // today, week, month, year
	EmployeeID *string `json:"employee_id,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

var namedPeriods = []string{"today", "week", "month", "year"}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}

	var start, end time.Time
	hasStart, hasEnd := false, false
	if f.StartDate != nil && *f.StartDate != "" {
		var ok bool
		if start, ok = validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		} else {
			hasStart = true
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		var ok bool
		if end, ok = validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		} else {
			hasEnd = true
		}
	}
	if hasStart && hasEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be on or after start_date",
		})
	}

	if f.FilterBy != nil && *f.FilterBy != "" && !validator.IsInSlice(*f.FilterBy, namedPeriods) {
		errs = append(errs, validator.ValidationError{
			Field:   "filter_by",
			Message: "filter_by must be one of: today, week, month, year",
		})
	}

	if f.EmployeeID != nil && *f.EmployeeID != "" && !validator.IsValidUUID(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Rule identifies which resolution rule produced a ResolvedFilter. The rules
// form a priority chain; the first one whose inputs are present wins.
type Rule string

const (
	RuleExplicitRange Rule = "explicit_range" // start_date and end_date
	RuleFromOnly      Rule = "from_only"      // start_date alone
	RuleUntilOnly     Rule = "until_only"     // end_date alone
	RuleNamedPeriod   Rule = "named_period"   // filter_by
	RuleDefault       Rule = "default"        // last 30 days
)

// ResolvedFilter is one concrete query plan: an inclusive date interval
// (nil bound = unbounded), a human-readable description, and an optional
// employee scope. Records match when the calendar day of their check-in time
// falls inside the interval.
type ResolvedFilter struct {
	Rule        Rule
	Start       *time.Time
	End         *time.Time
	Description string
	EmployeeID  *string
}

// Resolve turns a validated Filter into a ResolvedFilter, anchored on today's
// calendar date. Explicit dates always beat filter_by; the employee scope is
// additive and independent of the priority chain.
func Resolve(f Filter, today time.Time) ResolvedFilter {
	today = truncateToDay(today)

	resolved := resolveInterval(f, today)
	if f.EmployeeID != nil && *f.EmployeeID != "" {
		resolved.EmployeeID = f.EmployeeID
	}
	return resolved
}

func resolveInterval(f Filter, today time.Time) ResolvedFilter {
	var start, end *time.Time
	if f.StartDate != nil && *f.StartDate != "" {
		if d, ok := validator.IsValidDate(*f.StartDate); ok {
			start = &d
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if d, ok := validator.IsValidDate(*f.EndDate); ok {
			end = &d
		}
	}

	switch {
	case start != nil && end != nil:
		return ResolvedFilter{
			Rule:        RuleExplicitRange,
			Start:       start,
			End:         end,
			Description: fmt.Sprintf("Custom range: %s to %s", *f.StartDate, *f.EndDate),
		}
	case start != nil:
		return ResolvedFilter{
			Rule:        RuleFromOnly,
			Start:       start,
			Description: fmt.Sprintf("From: %s", *f.StartDate),
		}
	case end != nil:
		return ResolvedFilter{
			Rule:        RuleUntilOnly,
			End:         end,
			Description: fmt.Sprintf("Until: %s", *f.EndDate),
		}
	case f.FilterBy != nil && *f.FilterBy != "":
		periodStart, periodEnd := namedPeriodBounds(*f.FilterBy, today)
		return ResolvedFilter{
			Rule:        RuleNamedPeriod,
			Start:       &periodStart,
			End:         &periodEnd,
			Description: strings.ToUpper((*f.FilterBy)[:1]) + (*f.FilterBy)[1:],
		}
	default:
		defaultStart := today.AddDate(0, 0, -30)
		return ResolvedFilter{
			Rule:        RuleDefault,
			Start:       &defaultStart,
			End:         &today,
			Description: "Last 30 days (default)",
		}
	}
}

// namedPeriodBounds computes the inclusive day interval of a named period.
// Weeks run Monday through Sunday.
func namedPeriodBounds(period string, today time.Time) (time.Time, time.Time) {
	switch period {
	case "today":
		return today, today
	case "week":
		daysSinceMonday := (int(today.Weekday()) + 6) % 7
		start := today.AddDate(0, 0, -daysSinceMonday)
		return start, start.AddDate(0, 0, 6)
	case "month":
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return start, start.AddDate(0, 1, -1)
	case "year":
		start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		return start, time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, today.Location())
	default:
		return today, today
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
