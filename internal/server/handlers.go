package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"

	apperrors "github.com/agbru/gradebook/internal/errors"
	"github.com/agbru/gradebook/internal/format"
	"github.com/agbru/gradebook/internal/gradebook"
	"github.com/agbru/gradebook/internal/logging"
)

type addStudentRequest struct {
	Name string `json:"name"`
}

type addStudentResponse struct {
	Student  string `json:"student"`
	Existing bool   `json:"existing"`
}

// addGradeRequest accepts the grade as a JSON string or number. Both are
// handed to the store as raw text so parsing rules stay in one place.
type addGradeRequest struct {
	Subject string          `json:"subject"`
	Grade   json.RawMessage `json:"grade"`
}

type addGradeResponse struct {
	Student string  `json:"student"`
	Subject string  `json:"subject"`
	Grade   float64 `json:"grade"`
}

type averageResponse struct {
	Student string            `json:"student"`
	Subject string            `json:"subject,omitempty"`
	Average gradebook.Average `json:"average"`
}

type healthResponse struct {
	Status   string `json:"status"`
	Students int    `json:"students"`
	Uptime   string `json:"uptime"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	var n int
	_ = s.call(r.Context(), "Len", func(st gradebook.Store) error {
		n = st.Len()
		return nil
	})
	writeJSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Students: n,
		Uptime:   format.FormatDuration(time.Since(s.started)),
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	s.metrics.WritePrometheus(w, r)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	var summary gradebook.Summary
	_ = s.call(r.Context(), "AllStudentsSummary", func(st gradebook.Store) error {
		summary = st.AllStudentsSummary()
		return nil
	})
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleAddStudent(w http.ResponseWriter, r *http.Request) {
	var req addStudentRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	name := strings.TrimSpace(req.Name)

	var students int
	err := s.call(r.Context(), "AddStudent", func(st gradebook.Store) error {
		err := st.AddStudent(name)
		students = st.Len()
		return err
	}, attribute.String("student", name))

	switch {
	case err == nil:
		s.metrics.SetStudents(students)
		s.logger.Info("student added", logging.String("student", name))
		writeJSON(w, http.StatusCreated, addStudentResponse{Student: name})
	case apperrors.IsSoft(err):
		writeJSON(w, http.StatusOK, addStudentResponse{Student: name, Existing: true})
	default:
		s.writeError(w, r, errorStatus(err), err)
	}
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	var report gradebook.Report
	err := s.call(r.Context(), "StudentReport", func(st gradebook.Store) error {
		var err error
		report, err = st.StudentReport(name)
		return err
	}, attribute.String("student", name))
	if err != nil {
		s.writeError(w, r, errorStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleAddGrade(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	var req addGradeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	subject := strings.TrimSpace(req.Subject)
	raw := rawGrade(req.Grade)

	var value float64
	err := s.call(r.Context(), "AddGrade", func(st gradebook.Store) error {
		var err error
		value, err = st.AddGrade(name, subject, raw)
		return err
	}, attribute.String("student", name), attribute.String("subject", subject))
	if err != nil {
		s.writeError(w, r, errorStatus(err), err)
		return
	}

	s.metrics.RecordGrade()
	s.logger.Info("grade added",
		logging.String("student", name), logging.String("subject", subject), logging.Float64("grade", value))
	writeJSON(w, http.StatusCreated, addGradeResponse{Student: name, Subject: subject, Grade: value})
}

func (s *Server) handleSubjectAverage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name, subject := vars["name"], vars["subject"]
	var avg gradebook.Average
	_ = s.call(r.Context(), "SubjectAverage", func(st gradebook.Store) error {
		avg = st.SubjectAverage(name, subject)
		return nil
	}, attribute.String("student", name), attribute.String("subject", subject))
	writeJSON(w, http.StatusOK, averageResponse{Student: name, Subject: subject, Average: avg})
}

func (s *Server) handleOverallAverage(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	var avg gradebook.Average
	err := s.call(r.Context(), "OverallAverage", func(st gradebook.Store) error {
		if !st.HasStudent(name) {
			return apperrors.NotFoundError{Student: name}
		}
		avg = st.OverallAverage(name)
		return nil
	}, attribute.String("student", name))
	if err != nil {
		s.writeError(w, r, errorStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, averageResponse{Student: name, Average: avg})
}

// errorStatus maps a store error to its HTTP status code.
func errorStatus(err error) int {
	var validation apperrors.ValidationError
	switch {
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case apperrors.IsInvalidInput(err):
		return http.StatusUnprocessableEntity
	case apperrors.IsSoft(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// rawGrade turns the JSON grade field back into the text a user would type.
func rawGrade(msg json.RawMessage) string {
	trimmed := bytes.TrimSpace(msg)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}
	if bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	return string(trimmed)
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperrors.WrapError(err, "invalid request body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", err,
			logging.String("path", r.URL.Path), logging.String("request_id", RequestID(r.Context())))
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
