// Package httpapi exposes the accounting engine over a JSON REST API.
// Handlers translate between wire payloads and services; no accounting
// logic lives here.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/clocked-app/clocked/internal/domain"
	"github.com/clocked-app/clocked/internal/holiday"
	"github.com/clocked-app/clocked/internal/repository"
	"github.com/clocked-app/clocked/internal/service"
	"github.com/clocked-app/clocked/internal/worktime"
	"github.com/google/uuid"
)

// Handler wraps the HTTP handlers with their service dependencies.
type Handler struct {
	log      *zap.Logger
	validate *validator.Validate
	users    repository.UserRepo
	tracking service.TrackingService
	leave    service.LeaveService
	calendar service.CalendarService
	stats    service.StatsService
	holidays service.HolidayService
}

// New creates a new Handler instance.
func New(
	log *zap.Logger,
	users repository.UserRepo,
	tracking service.TrackingService,
	leave service.LeaveService,
	calendar service.CalendarService,
	stats service.StatsService,
	holidays service.HolidayService,
) *Handler {
	return &Handler{
		log:      log,
		validate: validator.New(),
		users:    users,
		tracking: tracking,
		leave:    leave,
		calendar: calendar,
		stats:    stats,
		holidays: holidays,
	}
}

// Healthz is a simple health check endpoint.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("unable to write response stream", zap.Error(err))
	}
}

// writeError maps service errors onto HTTP statuses.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, domain.ErrCalendarMissing):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrEntryOpen), errors.Is(err, domain.ErrBreakOpen):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrNoOpenEntry),
		errors.Is(err, domain.ErrNoOpenBreak),
		errors.Is(err, worktime.ErrInvalidWeekToken),
		errors.Is(err, holiday.ErrUnknownRegion):
		status = http.StatusBadRequest
	default:
		h.log.Error("request failed", zap.Error(err))
		status = http.StatusInternalServerError
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// decodeValid decodes a JSON body and runs struct validation.
func (h *Handler) decodeValid(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request payload"})
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		h.log.Warn("validation failed", zap.Error(err))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return false
	}
	return true
}

type createUserRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// CreateUser registers a user. A session layer would normally sit in
// front of this; the API itself only needs the user to exist.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	user := &domain.User{ID: uuid.New().String(), Email: req.Email}
	if err := h.users.Create(r.Context(), user); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, userResponse{ID: user.ID, Email: user.Email})
}

type noteRequest struct {
	Note string `json:"note"`
}

type breakResponse struct {
	ID    string `json:"id"`
	Start int64  `json:"start"`
	End   *int64 `json:"end"`
	Note  string `json:"note,omitempty"`
}

type entryResponse struct {
	ID     string          `json:"id"`
	Start  int64           `json:"start"`
	End    *int64          `json:"end"`
	Note   string          `json:"note,omitempty"`
	Breaks []breakResponse `json:"breaks"`
}

func toEntryResponse(e *domain.TimeEntry) entryResponse {
	breaks := make([]breakResponse, 0, len(e.Breaks))
	for _, b := range e.Breaks {
		breaks = append(breaks, breakResponse{ID: b.ID, Start: b.Start, End: b.End, Note: b.Note})
	}
	return entryResponse{ID: e.ID, Start: e.Start, End: e.End, Note: e.Note, Breaks: breaks}
}

func (h *Handler) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if r.ContentLength > 0 && !h.decodeValid(w, r, &req) {
		return
	}

	entry, err := h.tracking.ClockIn(r.Context(), userID(r), req.Note)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

func (h *Handler) ClockOut(w http.ResponseWriter, r *http.Request) {
	entry, err := h.tracking.ClockOut(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

func (h *Handler) StartBreak(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if r.ContentLength > 0 && !h.decodeValid(w, r, &req) {
		return
	}

	brk, err := h.tracking.StartBreak(r.Context(), userID(r), req.Note)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, breakResponse{ID: brk.ID, Start: brk.Start, End: brk.End, Note: brk.Note})
}

func (h *Handler) EndBreak(w http.ResponseWriter, r *http.Request) {
	brk, err := h.tracking.EndBreak(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, breakResponse{ID: brk.ID, Start: brk.Start, End: brk.End, Note: brk.Note})
}

func (h *Handler) CurrentEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := h.tracking.Current(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

type entryRequest struct {
	Start int64  `json:"start" validate:"required"`
	End   *int64 `json:"end"`
	Note  string `json:"note"`
}

func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	entry := &domain.TimeEntry{
		UserID: userID(r),
		Start:  req.Start,
		End:    req.End,
		Note:   req.Note,
	}
	if err := h.tracking.Create(r.Context(), entry); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.tracking.ListByUser(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) GetEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := h.tracking.GetByID(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

func (h *Handler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	entry, err := h.tracking.GetByID(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	entry.Start = req.Start
	entry.End = req.End
	entry.Note = req.Note
	if err := h.tracking.Update(r.Context(), entry); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.tracking.Delete(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type leaveRequest struct {
	Type          string  `json:"type" validate:"required,oneof=annual sick"`
	Start         int64   `json:"start" validate:"required"`
	Duration      float64 `json:"duration" validate:"required,gt=0"`
	PublicHoliday bool    `json:"public_holiday"`
	Note          string  `json:"note"`
}

type leaveResponse struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Start         int64   `json:"start"`
	Duration      float64 `json:"duration"`
	PublicHoliday bool    `json:"public_holiday"`
	Note          string  `json:"note,omitempty"`
}

func toLeaveResponse(l *domain.LeaveEntry) leaveResponse {
	return leaveResponse{
		ID:            l.ID,
		Type:          string(l.Type),
		Start:         l.Start,
		Duration:      l.Duration,
		PublicHoliday: l.PublicHoliday,
		Note:          l.Note,
	}
}

func (h *Handler) CreateLeave(w http.ResponseWriter, r *http.Request) {
	var req leaveRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	leave := &domain.LeaveEntry{
		UserID:        userID(r),
		Type:          domain.LeaveType(req.Type),
		Start:         req.Start,
		Duration:      req.Duration,
		PublicHoliday: req.PublicHoliday,
		Note:          req.Note,
	}
	if err := h.leave.Create(r.Context(), leave); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toLeaveResponse(leave))
}

func (h *Handler) ListLeave(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.leave.ListByUser(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]leaveResponse, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, toLeaveResponse(l))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) GetLeave(w http.ResponseWriter, r *http.Request) {
	leave, err := h.leave.GetByID(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toLeaveResponse(leave))
}

func (h *Handler) UpdateLeave(w http.ResponseWriter, r *http.Request) {
	var req leaveRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	leave, err := h.leave.GetByID(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	leave.Type = domain.LeaveType(req.Type)
	leave.Start = req.Start
	leave.Duration = req.Duration
	leave.PublicHoliday = req.PublicHoliday
	leave.Note = req.Note
	if err := h.leave.Update(r.Context(), leave); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toLeaveResponse(leave))
}

func (h *Handler) DeleteLeave(w http.ResponseWriter, r *http.Request) {
	if err := h.leave.Delete(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type statsResponse struct {
	LoggedThisWeek    string `json:"logged_this_week"`
	LoggedToday       string `json:"logged_today"`
	RemainingThisWeek string `json:"remaining_this_week"`
	RemainingToday    string `json:"remaining_today"`
	Overtime          string `json:"overtime"`
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Stats(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, statsResponse{
		LoggedThisWeek:    stats.LoggedThisWeek,
		LoggedToday:       stats.LoggedToday,
		RemainingThisWeek: stats.RemainingThisWeek,
		RemainingToday:    stats.RemainingToday,
		Overtime:          stats.Overtime,
	})
}

func (h *Handler) WeekList(w http.ResponseWriter, r *http.Request) {
	weeks, err := h.stats.WeekList(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string][]string{"weeks": weeks})
}

type weekResponse struct {
	Token        string          `json:"token"`
	Start        int64           `json:"start"`
	End          int64           `json:"end"`
	TimeEntries  []entryResponse `json:"time_entries"`
	LeaveEntries []leaveResponse `json:"leave_entries"`
}

func (h *Handler) WeekEntries(w http.ResponseWriter, r *http.Request) {
	week, err := h.stats.EntriesForWeek(r.Context(), userID(r), chi.URLParam(r, "token"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := weekResponse{
		Token:        week.Token,
		Start:        week.Start.Unix(),
		End:          week.End.Unix(),
		TimeEntries:  make([]entryResponse, 0, len(week.TimeEntries)),
		LeaveEntries: make([]leaveResponse, 0, len(week.LeaveEntries)),
	}
	for _, e := range week.TimeEntries {
		resp.TimeEntries = append(resp.TimeEntries, toEntryResponse(e))
	}
	for _, l := range week.LeaveEntries {
		resp.LeaveEntries = append(resp.LeaveEntries, toLeaveResponse(l))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

type settingsRequest struct {
	Timezone      string  `json:"timezone" validate:"required"`
	WeekStart     int     `json:"week_start" validate:"required,min=1,max=7"`
	HoursPerDay   float64 `json:"hours_per_day" validate:"required,gt=0"`
	WorkDays      string  `json:"work_days" validate:"required,len=7"`
	HolidayRegion string  `json:"holiday_region"`
}

type settingsResponse struct {
	Timezone      string   `json:"timezone"`
	WeekStart     int      `json:"week_start"`
	HoursPerDay   float64  `json:"hours_per_day"`
	WorkDays      string   `json:"work_days"`
	WorkDayNames  []string `json:"work_day_names"`
	HolidayRegion string   `json:"holiday_region,omitempty"`
}

func toSettingsResponse(c *domain.WorkCalendar) settingsResponse {
	return settingsResponse{
		Timezone:      c.Timezone,
		WeekStart:     c.WeekStart,
		HoursPerDay:   c.HoursPerDay,
		WorkDays:      c.WorkDays,
		WorkDayNames:  c.WorkDayNames(),
		HolidayRegion: c.HolidayRegion,
	}
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	cal, err := h.calendar.Fetch(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toSettingsResponse(cal))
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	cal, err := h.calendar.Fetch(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}

	cal.Timezone = req.Timezone
	cal.WeekStart = req.WeekStart
	cal.HoursPerDay = req.HoursPerDay
	cal.WorkDays = req.WorkDays
	cal.HolidayRegion = req.HolidayRegion
	if err := h.calendar.Update(r.Context(), cal); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	h.writeJSON(w, http.StatusOK, toSettingsResponse(cal))
}

type holidayResponse struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func toHolidayResponses(holidays []holiday.Holiday) []holidayResponse {
	out := make([]holidayResponse, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, holidayResponse{Date: h.Date.Format("2006-01-02"), Name: h.Name})
	}
	return out
}

func (h *Handler) UpcomingHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.holidays.Upcoming(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toHolidayResponses(holidays))
}

func (h *Handler) PreviousHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.holidays.Previous(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toHolidayResponses(holidays))
}

func (h *Handler) NextHoliday(w http.ResponseWriter, r *http.Request) {
	next, err := h.holidays.Next(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	if next == nil {
		h.writeJSON(w, http.StatusOK, nil)
		return
	}
	h.writeJSON(w, http.StatusOK, holidayResponse{Date: next.Date.Format("2006-01-02"), Name: next.Name})
}
