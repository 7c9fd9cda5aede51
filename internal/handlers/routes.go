package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/condor-ops/pos-roster/internal/domain"
	"github.com/condor-ops/pos-roster/internal/domain/entity"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.services.Registry.List()
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, employees)
}

func (h *Handler) handleUpsertEmployee(w http.ResponseWriter, r *http.Request) {
	var form entity.EmployeeForm
	if err := h.readJSON(r, &form); err != nil {
		h.errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	employee, err := h.services.Registry.Upsert(r.Context(), form)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, employee)
}

func (h *Handler) handleRenameEmployee(w http.ResponseWriter, r *http.Request) {
	oldName := chi.URLParam(r, "name")

	var form entity.EmployeeForm
	if err := h.readJSON(r, &form); err != nil {
		h.errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	employee, err := h.services.Registry.Rename(r.Context(), oldName, form)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, employee)
}

func (h *Handler) handleRemoveEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Registry.Remove(chi.URLParam(r, "name")); err != nil {
		h.serviceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleEnrollSunday(w http.ResponseWriter, r *http.Request) {
	var form entity.SundayEnrollmentForm
	if err := h.readJSON(r, &form); err != nil {
		h.errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	employee, err := h.services.Registry.EnrollSunday(r.Context(), form)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, employee)
}

func (h *Handler) handleAvailableEmployees(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	shift, ok := parseShift(r.URL.Query().Get("shift"))
	if !ok {
		h.errorJSON(w, http.StatusUnprocessableEntity, "shift must be morning or afternoon")
		return
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		h.errorJSON(w, http.StatusUnprocessableEntity, "date must be YYYY-MM-DD")
		return
	}

	employees, err := h.services.Roster.AvailableEmployees(date, shift)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, employees)
}

func (h *Handler) handleListAssignments(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		h.errorJSON(w, http.StatusUnprocessableEntity, "date must be YYYY-MM-DD")
		return
	}

	assignments, err := h.services.Roster.ListForDate(date)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, assignments)
}

func (h *Handler) handleAssign(w http.ResponseWriter, r *http.Request) {
	var form entity.AssignmentForm
	if err := h.readJSON(r, &form); err != nil {
		h.errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assignment, err := h.services.Roster.Assign(r.Context(), form)
	if err != nil {
		// An unresolved name is a validation failure of the assign
		// request, not a missing resource.
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			h.errorJSON(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.serviceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, assignment)
}

func (h *Handler) handleUnassign(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	shift, ok := parseShift(q.Get("shift"))
	if !ok {
		h.errorJSON(w, http.StatusUnprocessableEntity, "shift must be morning or afternoon")
		return
	}

	if err := h.services.Roster.Unassign(q.Get("date"), q.Get("terminal"), shift); err != nil {
		h.serviceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRotationPlan(w http.ResponseWriter, r *http.Request) {
	category, month, year, ok := h.rotationParams(w, r)
	if !ok {
		return
	}

	plan, err := h.services.Rotation.MonthPlan(category, month, year)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, plan)
}

func (h *Handler) handleDayOffs(w http.ResponseWriter, r *http.Request) {
	groups, err := h.services.DayOff.WeekOverview()
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, groups)
}

func (h *Handler) handleExportRotation(w http.ResponseWriter, r *http.Request) {
	category, month, year, ok := h.rotationParams(w, r)
	if !ok {
		return
	}

	buf, filename, err := h.services.Export.SundayRotation(category, month, year)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.writeWorkbook(w, buf, filename)
}

func (h *Handler) handleExportDayOffs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// Without parameters the whole four-bucket workbook is produced.
	if q.Get("category") == "" && q.Get("shift") == "" {
		buf, filename, err := h.services.Export.DayOffWeekAll()
		if err != nil {
			h.serviceError(w, r, err)
			return
		}
		h.writeWorkbook(w, buf, filename)
		return
	}

	category, ok := parseCategory(q.Get("category"))
	if !ok {
		h.errorJSON(w, http.StatusUnprocessableEntity, "category must be in_house or outsourced")
		return
	}
	shift, ok := parseShift(q.Get("shift"))
	if !ok {
		h.errorJSON(w, http.StatusUnprocessableEntity, "shift must be morning or afternoon")
		return
	}

	buf, filename, err := h.services.Export.DayOffWeek(category, shift)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.writeWorkbook(w, buf, filename)
}

func (h *Handler) handleExportAssignments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	date := q.Get("date")
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		h.errorJSON(w, http.StatusUnprocessableEntity, "date must be YYYY-MM-DD")
		return
	}
	shift, ok := parseShift(q.Get("shift"))
	if !ok {
		h.errorJSON(w, http.StatusUnprocessableEntity, "shift must be morning or afternoon")
		return
	}

	buf, filename, err := h.services.Export.DailyAssignments(date, shift)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.writeWorkbook(w, buf, filename)
}

func (h *Handler) rotationParams(w http.ResponseWriter, r *http.Request) (domain.SundayCategory, time.Month, int, bool) {
	q := r.URL.Query()

	category := domain.SundayCategory(q.Get("category"))
	if _, known := domain.SundayCategoryLabels[category]; !known {
		h.errorJSON(w, http.StatusUnprocessableEntity, "category must be packer, cashier or supervisor")
		return "", 0, 0, false
	}

	month, err := strconv.Atoi(q.Get("month"))
	if err != nil || month < 1 || month > 12 {
		h.errorJSON(w, http.StatusUnprocessableEntity, "month must be 1..12")
		return "", 0, 0, false
	}

	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		h.errorJSON(w, http.StatusUnprocessableEntity, "year must be a number")
		return "", 0, 0, false
	}

	return category, time.Month(month), year, true
}

func (h *Handler) writeWorkbook(w http.ResponseWriter, buf *bytes.Buffer, filename string) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))

	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("failed to write workbook", zap.Error(err))
	}
}

func parseShift(v string) (domain.ShiftBucket, bool) {
	switch domain.ShiftBucket(v) {
	case domain.ShiftMorning, domain.ShiftAfternoon:
		return domain.ShiftBucket(v), true
	}
	return "", false
}

func parseCategory(v string) (domain.WorkerCategory, bool) {
	switch domain.WorkerCategory(v) {
	case domain.CategoryInHouse, domain.CategoryOutsourced:
		return domain.WorkerCategory(v), true
	}
	return "", false
}
