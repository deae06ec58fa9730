package leave

import (
	"time"

	"github.com/cmlabs-hris/leave-calendar-go/internal/pkg/validator"
)

// RecordPayload is the boundary shape of one leave record as emitted by the
// upstream leave service. The upstream is inconsistent about field spelling
// (snake_case from the legacy endpoint, camelCase from the newer one), so
// both spellings are accepted here and nowhere else: Normalize is the single
// place that resolves the variants into the canonical LeaveRecord.
type RecordPayload struct {
	ID     string `json:"id,omitempty"`
	IDAlt  string `json:"leave_id,omitempty"`
	Name   string `json:"name,omitempty"`
	NameCC string `json:"employeeName,omitempty"`
	NameSC string `json:"employee_name,omitempty"`

	Department   string `json:"department,omitempty"`
	DepartmentSC string `json:"department_name,omitempty"`

	StartDate   string `json:"startDate,omitempty"`
	StartDateSC string `json:"start_date,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	EndDateSC   string `json:"end_date,omitempty"`

	LeaveType   string `json:"leaveType,omitempty"`
	LeaveTypeSC string `json:"leave_type,omitempty"`

	HalfDaySlot   string `json:"halfDaySlot,omitempty"`
	HalfDaySlotSC string `json:"half_day_slot,omitempty"`

	Status string `json:"status,omitempty"`

	Reason          string `json:"reason,omitempty"`
	RejectMessage   string `json:"rejectMessage,omitempty"`
	RejectMessageSC string `json:"reject_message,omitempty"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Normalize resolves the spelling variants and parses dates into the
// canonical internal record. A missing name or department stays the empty
// string (the record then groups under the empty-string key); an
// unparseable date is a shape error and is reported.
func (p RecordPayload) Normalize() (LeaveRecord, error) {
	var errs validator.ValidationErrors

	start, ok := validator.IsValidDate(firstNonEmpty(p.StartDate, p.StartDateSC))
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid YYYY-MM-DD date",
		})
	}
	end, ok := validator.IsValidDate(firstNonEmpty(p.EndDate, p.EndDateSC))
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid YYYY-MM-DD date",
		})
	}
	if len(errs) > 0 {
		return LeaveRecord{}, errs
	}

	return LeaveRecord{
		ID:            firstNonEmpty(p.ID, p.IDAlt),
		EmployeeName:  firstNonEmpty(p.Name, p.NameCC, p.NameSC),
		Department:    firstNonEmpty(p.Department, p.DepartmentSC),
		StartDate:     start,
		EndDate:       end,
		LeaveType:     firstNonEmpty(p.LeaveType, p.LeaveTypeSC),
		HalfDaySlot:   ParseHalfDaySlot(firstNonEmpty(p.HalfDaySlot, p.HalfDaySlotSC)),
		Status:        ParseStatus(p.Status),
		Reason:        p.Reason,
		RejectMessage: firstNonEmpty(p.RejectMessage, p.RejectMessageSC),
	}, nil
}

// NormalizeAll normalizes a whole snapshot, dropping records with shape
// errors rather than failing the batch.
func NormalizeAll(payloads []RecordPayload) []LeaveRecord {
	records := make([]LeaveRecord, 0, len(payloads))
	for _, p := range payloads {
		rec, err := p.Normalize()
		if err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// LeaveRecordResponse is the outbound shape of one record in grid and
// detail responses.
type LeaveRecordResponse struct {
	ID            string `json:"id,omitempty"`
	EmployeeName  string `json:"employee_name"`
	Department    string `json:"department"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	LeaveType     string `json:"leave_type"`
	HalfDaySlot   string `json:"half_day_slot,omitempty"`
	Status        string `json:"status"`
	Reason        string `json:"reason,omitempty"`
	RejectMessage string `json:"reject_message,omitempty"`
}

func NewLeaveRecordResponse(r LeaveRecord) LeaveRecordResponse {
	return LeaveRecordResponse{
		ID:            r.ID,
		EmployeeName:  r.EmployeeName,
		Department:    r.Department,
		StartDate:     r.StartDate.Format(time.DateOnly),
		EndDate:       r.EndDate.Format(time.DateOnly),
		LeaveType:     r.LeaveType,
		HalfDaySlot:   string(r.HalfDaySlot),
		Status:        string(r.Status),
		Reason:        r.Reason,
		RejectMessage: r.RejectMessage,
	}
}

func NewLeaveRecordResponses(records []LeaveRecord) []LeaveRecordResponse {
	out := make([]LeaveRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, NewLeaveRecordResponse(r))
	}
	return out
}
