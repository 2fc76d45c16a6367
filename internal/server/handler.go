package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/username/holiday-calendar/internal/calendar"
	"github.com/username/holiday-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

// Response is the envelope of every API answer
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// DayDetail describes one calendar date
type DayDetail struct {
	Date    string `json:"date"`
	Status  string `json:"status"`
	Workday bool   `json:"workday"`
	Weekend bool   `json:"weekend"`
}

// YearDetail lists the special dates of one year
type YearDetail struct {
	Year           int      `json:"year"`
	Holidays       []string `json:"holidays"`
	MakeupWorkdays []string `json:"makeup_workdays"`
}

// Handler serves holiday lookups from a Calendar
type Handler struct {
	cal    calendar.Calendar
	now    func() time.Time
	logger *zap.Logger
}

// NewHandler creates a new Handler
func NewHandler(cal calendar.Calendar, logger *zap.Logger) *Handler {
	return &Handler{
		cal:    cal,
		now:    dateutil.Today,
		logger: logger,
	}
}

// HolidayHandler answers ?date=YYYY, ?date=YYYY-MM or ?date=YYYY-MM-DD.
// Without a date it answers for today.
func (h *Handler) HolidayHandler(w http.ResponseWriter, r *http.Request) {
	value := r.URL.Query().Get("date")
	ctx := r.Context()

	if value == "" {
		h.sendSuccessResponse(w, h.dayDetail(r, h.now()))
		return
	}

	if t, err := time.Parse("2006", value); err == nil {
		h.sendSuccessResponse(w, yearDetail(h.cal.Resolve(ctx, t.Year())))
		return
	}

	if t, err := time.Parse("2006-01", value); err == nil {
		c := h.cal.Resolve(ctx, t.Year())
		days := make([]DayDetail, 0, 31)
		dateutil.EachDay(t, t.AddDate(0, 1, -1), func(d time.Time) {
			days = append(days, newDayDetail(d, c))
		})
		h.sendSuccessResponse(w, days)
		return
	}

	t, err := dateutil.ParseDate(value)
	if err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "date must be YYYY, YYYY-MM or YYYY-MM-DD")
		return
	}
	h.sendSuccessResponse(w, h.dayDetail(r, t))
}

// YearHandler answers /api/years/{year}
func (h *Handler) YearHandler(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(mux.Vars(r)["year"])
	if err != nil || year <= 0 {
		h.sendErrorResponse(w, http.StatusBadRequest, "invalid year")
		return
	}

	h.sendSuccessResponse(w, yearDetail(h.cal.Resolve(r.Context(), year)))
}

func (h *Handler) dayDetail(r *http.Request, d time.Time) DayDetail {
	return newDayDetail(d, h.cal.Resolve(r.Context(), d.Year()))
}

func newDayDetail(d time.Time, c *calendar.Classification) DayDetail {
	status := calendar.Classify(d, c)
	weekend := dateutil.IsWeekend(d)

	workday := !weekend
	switch status {
	case calendar.DayStatusHoliday:
		workday = false
	case calendar.DayStatusMakeup:
		workday = true
	}

	return DayDetail{
		Date:    dateutil.FormatDate(d),
		Status:  status.String(),
		Workday: workday,
		Weekend: weekend,
	}
}

func yearDetail(c *calendar.Classification) YearDetail {
	return YearDetail{
		Year:           c.Year,
		Holidays:       c.Holidays.Sorted(),
		MakeupWorkdays: c.MakeupWorkdays.Sorted(),
	}
}

func (h *Handler) sendSuccessResponse(w http.ResponseWriter, data interface{}) {
	h.sendJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

func (h *Handler) sendErrorResponse(w http.ResponseWriter, status int, message string) {
	h.sendJSON(w, status, Response{Success: false, Error: message})
}

func (h *Handler) sendJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}
