package leave

import (
	"github.com/cmlabs-hris/leave-calendar-go/internal/pkg/validator"
)

// SelectionPayload is the flat wire shape of the client's selection state.
// The client round-trips it with every grid and detail request; the server
// holds no selection state between calls.
type SelectionPayload struct {
	Departments []string `json:"departments"`
	Employees   []string `json:"employees"`
	Expanded    []string `json:"expanded,omitempty"`
}

type GridRequest struct {
	Month     string           `json:"month"`
	Mode      string           `json:"mode"`
	Selection SelectionPayload `json:"selection"`
}

func (r *GridRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be a valid YYYY-MM value",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DayDetailRequest struct {
	Date      string           `json:"date"`
	Mode      string           `json:"mode"`
	Selection SelectionPayload `json:"selection"`
	Page      int              `json:"page"`
	PageSize  int              `json:"page_size,omitempty"`
}

func (r *DayDetailRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD value",
		})
	}

	if r.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ChainRequest struct {
	Mode        string   `json:"mode"`
	ApproverIDs []string `json:"approver_ids"`
}

func (r *ChainRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.ApproverIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "approver_ids",
			Message: "approver_ids must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
