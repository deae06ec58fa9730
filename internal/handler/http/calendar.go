package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cmlabs-hris/leave-calendar-go/internal/domain/leave"
	"github.com/cmlabs-hris/leave-calendar-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/leave-calendar-go/internal/handler/http/response"
	"github.com/cmlabs-hris/leave-calendar-go/internal/service/calendar"
	"github.com/go-chi/chi/v5"
)

type CalendarHandler interface {
	GetMonth(w http.ResponseWriter, r *http.Request)
	BuildGrid(w http.ResponseWriter, r *http.Request)
	GetDayDetails(w http.ResponseWriter, r *http.Request)
	GetRoster(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	calendarService *calendar.Service
}

func NewCalendarHandler(calendarService *calendar.Service) CalendarHandler {
	return &CalendarHandlerImpl{calendarService: calendarService}
}

// MonthResponse describes one navigable month page.
type MonthResponse struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Label     string `json:"label"`
	PageIndex int    `json:"page_index"`
}

// DayCellResponse is the wire shape of one grid cell.
type DayCellResponse struct {
	Date           string                      `json:"date"`
	IsCurrentMonth bool                        `json:"is_current_month"`
	IsToday        bool                        `json:"is_today"`
	Leaves         []leave.LeaveRecordResponse `json:"leaves"`
}

// GetMonth implements CalendarHandler. It resolves a flat page index into
// its year-month for the navigation header.
func (h *CalendarHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	rawIndex := chi.URLParam(r, "index")
	index, err := strconv.Atoi(rawIndex)
	if err != nil {
		response.BadRequest(w, "Month index must be an integer", nil)
		return
	}

	anchor := calendar.MonthFromIndex(index)
	response.Success(w, MonthResponse{
		Year:      anchor.Year(),
		Month:     int(anchor.Month()),
		Label:     anchor.Format("2006-01"),
		PageIndex: calendar.MonthIndex(anchor),
	})
}

// BuildGrid implements CalendarHandler.
func (h *CalendarHandlerImpl) BuildGrid(w http.ResponseWriter, r *http.Request) {
	var req leave.GridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("BuildGrid decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	anchor, _ := time.Parse("2006-01", req.Month)
	mode := calendar.ParseViewMode(req.Mode)
	sel := calendar.SelectionFromLists(req.Selection.Departments, req.Selection.Employees, req.Selection.Expanded)

	grid, err := h.calendarService.MonthGrid(r.Context(), middleware.UserID(r), anchor, mode, sel)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	weeks := make([][]DayCellResponse, 0, len(grid))
	for _, week := range grid {
		row := make([]DayCellResponse, 0, len(week))
		for _, cell := range week {
			row = append(row, DayCellResponse{
				Date:           cell.Date.Format(time.DateOnly),
				IsCurrentMonth: cell.IsCurrentMonth,
				IsToday:        cell.IsToday,
				Leaves:         leave.NewLeaveRecordResponses(cell.Leaves),
			})
		}
		weeks = append(weeks, row)
	}

	response.Success(w, weeks)
}

// GetDayDetails implements CalendarHandler.
func (h *CalendarHandlerImpl) GetDayDetails(w http.ResponseWriter, r *http.Request) {
	var req leave.DayDetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("GetDayDetails decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	day, _ := time.Parse(time.DateOnly, req.Date)
	mode := calendar.ParseViewMode(req.Mode)
	sel := calendar.SelectionFromLists(req.Selection.Departments, req.Selection.Employees, req.Selection.Expanded)

	page, err := h.calendarService.DayDetails(r.Context(), middleware.UserID(r), day, mode, sel, req.Page, req.PageSize)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, leave.NewLeaveRecordResponses(page.Items), &response.Meta{
		Page:       page.PageIndex,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	})
}

// GetRoster implements CalendarHandler. It returns the department-to-
// employees map the selection sidebar renders.
func (h *CalendarHandlerImpl) GetRoster(w http.ResponseWriter, r *http.Request) {
	rawMonth := r.URL.Query().Get("month")
	anchor := time.Now()
	if rawMonth != "" {
		parsed, err := time.Parse("2006-01", rawMonth)
		if err != nil {
			response.HandleError(w, leave.ErrInvalidMonth)
			return
		}
		anchor = parsed
	}

	roster, err := h.calendarService.Roster(r.Context(), anchor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, roster)
}
