package http

import (
	"encoding/json"
	"log"
	"net/http"

	"childscreen-service/internal/app"
	"childscreen-service/internal/catalog"
	"childscreen-service/internal/domain"
	"github.com/gorilla/websocket"
)

// WSHandler runs one interactive assessment session per connection:
// login, intake, item-by-item answers, then scoring on submit.
type WSHandler struct {
	auth        *app.AuthService
	assessments *app.AssessmentService
	upgrader    websocket.Upgrader
}

func NewWSHandler(auth *app.AuthService, assessments *app.AssessmentService) *WSHandler {
	return &WSHandler{
		auth:        auth,
		assessments: assessments,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

type wsLoginPayload struct {
	CardNo     string            `json:"cardNo"`
	Password   string            `json:"password"`
	Instrument domain.Instrument `json:"instrument"`
}

type wsStartPayload struct {
	Age string `json:"age"`
}

type wsAnswerPayload struct {
	ItemID int `json:"itemId"`
	Score  int `json:"score"`
}

type wsProgressPayload struct {
	Answered int `json:"answered"`
	Total    int `json:"total"`
}

type wsItemsPayload struct {
	Title   string                `json:"title"`
	Options []domain.AnswerOption `json:"options"`
	Items   []domain.Item         `json:"items"`
}

// wsSender hands outbound messages to the writer goroutine. Once the
// writer has exited on a write error, further messages are dropped instead
// of blocking the read loop on a full buffer.
type wsSender struct {
	ch   chan<- outboundMessage[any]
	done <-chan struct{}
}

func (s wsSender) emit(msg outboundMessage[any]) {
	select {
	case s.ch <- msg:
	case <-s.done:
	}
}

// session is the per-connection state machine. Connections are handled
// one goroutine at a time, so no locking is needed here.
type session struct {
	login      domain.LoginResult
	instrument domain.Instrument
	age        string
	items      []domain.Item
	answers    domain.AnswerSet
}

// ServeWS upgrades the request and drives the assessment session loop.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	send := make(chan outboundMessage[any], 16)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	sender := wsSender{ch: send, done: writerDone}
	sess := &session{answers: make(domain.AnswerSet)}
	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "login":
			h.handleWSLogin(r, sess, inbound.Payload, sender)
		case "start":
			h.handleWSStart(sess, inbound.Payload, sender)
		case "answer":
			h.handleWSAnswer(sess, inbound.Payload, sender)
		case "submit":
			h.handleWSSubmit(sess, sender)
		default:
			sender.emit(outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}})
		}
	}

	close(send)
	<-writerDone
}

func (h *WSHandler) handleWSLogin(r *http.Request, sess *session, raw json.RawMessage, send wsSender) {
	var payload wsLoginPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		send.emit(outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid login payload"}})
		return
	}

	result, err := h.auth.Login(r.Context(), payload.CardNo, payload.Password)
	if err != nil {
		send.emit(outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	if !result.IsAdmin && payload.Instrument.Valid() && payload.Instrument != result.Instrument {
		send.emit(outboundMessage[any]{Type: "error", Payload: errorPayload{Message: domain.ErrInstrumentMismatch.Error()}})
		return
	}

	if err := h.auth.MarkUsed(r.Context(), result.AccountID); err != nil {
		log.Printf("mark used for %s failed: %v", result.AccountID, err)
	}

	sess.login = result
	sess.instrument = result.Instrument
	if result.IsAdmin && payload.Instrument.Valid() {
		sess.instrument = payload.Instrument
	}
	send.emit(outboundMessage[any]{Type: "loggedIn", Payload: result})
}

func (h *WSHandler) handleWSStart(sess *session, raw json.RawMessage, send wsSender) {
	if sess.login.AccountID == "" {
		send.emit(outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "login required"}})
		return
	}
	var payload wsStartPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		send.emit(outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid start payload"}})
		return
	}

	def, err := h.assessments.Definition(sess.instrument)
	if err != nil {
		send.emit(outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	items, err := h.assessments.ActiveItems(sess.instrument, payload.Age)
	if err != nil {
		send.emit(outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}

	sess.age = payload.Age
	sess.items = items
	sess.answers = make(domain.AnswerSet)
	send.emit(outboundMessage[any]{Type: "items", Payload: wsItemsPayload{
		Title:   def.Title,
		Options: def.Options,
		Items:   items,
	}})
}

func (h *WSHandler) handleWSAnswer(sess *session, raw json.RawMessage, send wsSender) {
	if len(sess.items) == 0 {
		send.emit(outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "assessment not started"}})
		return
	}
	var payload wsAnswerPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		send.emit(outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid answer payload"}})
		return
	}

	known := false
	for _, item := range sess.items {
		if item.ID == payload.ItemID {
			known = true
			break
		}
	}
	if !known {
		send.emit(outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "item not in active set"}})
		return
	}

	// Re-answering an item overwrites the earlier selection, matching the
	// back-and-forth navigation of the quiz client.
	sess.answers[payload.ItemID] = payload.Score
	send.emit(outboundMessage[any]{Type: "progress", Payload: wsProgressPayload{
		Answered: len(sess.answers),
		Total:    len(sess.items),
	}})
}

func (h *WSHandler) handleWSSubmit(sess *session, send wsSender) {
	if len(sess.items) == 0 {
		send.emit(outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "assessment not started"}})
		return
	}

	result, err := h.assessments.Score(sess.instrument, sess.age, sess.answers)
	if err != nil {
		send.emit(outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	descriptions := make(map[string]string, len(result.DimensionScores))
	for dimension := range result.DimensionScores {
		descriptions[dimension] = h.assessments.Describe(sess.instrument, dimension)
	}
	send.emit(outboundMessage[any]{Type: "result", Payload: scoreResponse{
		ScoreResult:        result,
		Descriptions:       descriptions,
		OverallDescription: h.assessments.Describe(sess.instrument, catalog.OverallSummary),
	}})
}
