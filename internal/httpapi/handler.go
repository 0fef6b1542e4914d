package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"taxcalc/internal/domain"
	"taxcalc/internal/tax"
)

// maxBodyBytes caps request bodies; a calculation request is tiny.
const maxBodyBytes = 4 << 10

// Engine is the part of the tax engine the API serves.
type Engine interface {
	domain.TaxEngine
	Table(year domain.FiscalYear) (domain.Table, bool)
}

type calculateRequest struct {
	Year   string `json:"year"`
	Income string `json:"income"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// Handler returns the API routes over engine, wrapped in an access log.
func Handler(engine Engine, log *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /years", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, struct {
			Years []domain.FiscalYear `json:"years"`
		}{Years: engine.AvailableYears()})
	})

	mux.HandleFunc("GET /years/{year}/brackets", func(w http.ResponseWriter, r *http.Request) {
		table, ok := engine.Table(domain.FiscalYear(r.PathValue("year")))
		if !ok {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown fiscal year"})
			return
		}
		writeJSON(w, http.StatusOK, table)
	})

	mux.HandleFunc("POST /calculate", func(w http.ResponseWriter, r *http.Request) {
		var req calculateRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
			return
		}

		year, err := engine.ValidateYear(req.Year)
		if err != nil {
			writeValidation(w, err)
			return
		}
		income, err := engine.ValidateIncome(req.Income)
		if err != nil {
			writeValidation(w, err)
			return
		}

		res, err := engine.CalculateResult(year, income)
		if err != nil {
			if errors.Is(err, tax.ErrInvalidYear) {
				writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
				return
			}
			log.Error("calculate", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
		writeJSON(w, http.StatusOK, res)
	})

	return accessLog(log, mux)
}

func writeValidation(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Message, Field: verr.Field})
		return
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusRecorder captures the status code and byte count for the access log.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

// accessLog records method, path, remote, status, bytes and duration.
func accessLog(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Int("status", rec.status),
			zap.Int("bytes", rec.bytes),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
