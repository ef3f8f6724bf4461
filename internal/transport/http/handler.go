package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"childscreen-service/internal/app"
	"childscreen-service/internal/catalog"
	"childscreen-service/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// Handler exposes the REST surface: login, catalogs, scoring, and the
// JWT-gated admin view of the usage log.
type Handler struct {
	auth        *app.AuthService
	assessments *app.AssessmentService
	jwtSecret   []byte
}

func NewHandler(auth *app.AuthService, assessments *app.AssessmentService, jwtSecret []byte) *Handler {
	return &Handler{auth: auth, assessments: assessments, jwtSecret: jwtSecret}
}

// Register mounts the API routes onto the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/login", h.handleLogin)
	mux.HandleFunc("GET /api/instruments/{instrument}", h.handleInstrument)
	mux.HandleFunc("POST /api/score", h.handleScore)
	mux.HandleFunc("GET /api/usage", h.handleUsage)
}

type loginRequest struct {
	CardNo     string            `json:"cardNo"`
	Password   string            `json:"password"`
	Instrument domain.Instrument `json:"instrument"`
}

type loginResponse struct {
	OK         bool              `json:"ok"`
	Reason     string            `json:"reason,omitempty"`
	AccountID  string            `json:"accountId,omitempty"`
	Instrument domain.Instrument `json:"instrument,omitempty"`
	IsAdmin    bool              `json:"isAdmin,omitempty"`
	Token      string            `json:"token,omitempty"`
}

// handleLogin validates a card, applies the instrument-affinity policy for
// the requested assessment, and on acceptance commits the card's usage.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, loginResponse{Reason: "invalid request body"})
		return
	}

	result, err := h.auth.Login(r.Context(), req.CardNo, req.Password)
	if err != nil {
		status := http.StatusUnauthorized
		var locked *domain.AccountLockedError
		if errors.As(err, &locked) {
			status = http.StatusLocked
		}
		writeJSON(w, status, loginResponse{Reason: err.Error()})
		return
	}

	// Cards are bound to one questionnaire; administrators may open either.
	if !result.IsAdmin && req.Instrument.Valid() && req.Instrument != result.Instrument {
		writeJSON(w, http.StatusForbidden, loginResponse{Reason: domain.ErrInstrumentMismatch.Error()})
		return
	}

	if err := h.auth.MarkUsed(r.Context(), result.AccountID); err != nil {
		// Best effort: a failed write must not reject an accepted login.
		log.Printf("mark used for %s failed: %v", result.AccountID, err)
	}

	resp := loginResponse{
		OK:         true,
		AccountID:  result.AccountID,
		Instrument: result.Instrument,
		IsAdmin:    result.IsAdmin,
	}
	if result.IsAdmin {
		token, err := h.signAdminToken(result.AccountID)
		if err != nil {
			log.Printf("sign admin token: %v", err)
		} else {
			resp.Token = token
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type instrumentResponse struct {
	Instrument  domain.Instrument     `json:"instrument"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Options     []domain.AnswerOption `json:"options"`
	Items       []domain.Item         `json:"items"`
}

// handleInstrument returns the catalog for one instrument with the active
// item list for the declared age (query parameter "age").
func (h *Handler) handleInstrument(w http.ResponseWriter, r *http.Request) {
	instrument := domain.Instrument(r.PathValue("instrument"))
	def, err := h.assessments.Definition(instrument)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	items, err := h.assessments.ActiveItems(instrument, r.URL.Query().Get("age"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, instrumentResponse{
		Instrument:  def.Instrument,
		Title:       def.Title,
		Description: def.Description,
		Options:     def.Options,
		Items:       items,
	})
}

type scoreRequest struct {
	Instrument domain.Instrument `json:"instrument"`
	Age        string            `json:"age"`
	Answers    domain.AnswerSet  `json:"answers"`
}

type scoreResponse struct {
	domain.ScoreResult
	Descriptions       map[string]string `json:"descriptions"`
	OverallDescription string            `json:"overallDescription"`
}

// handleScore runs the scoring pipeline and attaches the interpretation
// prose the report view renders next to each dimension.
func (h *Handler) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.assessments.Score(req.Instrument, req.Age, req.Answers)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	descriptions := make(map[string]string, len(result.DimensionScores))
	for dimension := range result.DimensionScores {
		descriptions[dimension] = h.assessments.Describe(req.Instrument, dimension)
	}
	writeJSON(w, http.StatusOK, scoreResponse{
		ScoreResult:        result,
		Descriptions:       descriptions,
		OverallDescription: h.assessments.Describe(req.Instrument, catalog.OverallSummary),
	})
}

// handleUsage returns the raw usage log to authenticated administrators.
func (h *Handler) handleUsage(w http.ResponseWriter, r *http.Request) {
	if !h.authorizeAdmin(r) {
		http.Error(w, "admin token required", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, h.auth.UsageLog(r.Context()))
}

func (h *Handler) signAdminToken(accountID string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   accountID,
		"admin": true,
		"exp":   time.Now().Add(12 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.jwtSecret)
}

func (h *Handler) authorizeAdmin(r *http.Request) bool {
	header := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return false
	}
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return h.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	admin, _ := claims["admin"].(bool)
	return admin
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write response: %v", err)
	}
}
