package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"ontap-quiz-service/internal/app"
	"ontap-quiz-service/internal/domain"
)

// WSHandler runs one exam session per websocket connection. The socket is
// both the control channel (answers, navigation, submission) and the
// best-effort tab-close signal: a connection dropping mid-exam submits
// whatever was answered.
type WSHandler struct {
	service  *app.ExamService
	log      *zap.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.ExamService, log *zap.Logger) *WSHandler {
	return &WSHandler{
		service: service,
		log:     log,
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

type answerPayload struct {
	Index  int `json:"index"`
	Option int `json:"option"`
}

type navigatePayload struct {
	Index int `json:"index"`
}

// questionView is the question as shown to the participant: no correct
// index until review.
type questionView struct {
	Text     string   `json:"question"`
	Options  []string `json:"options"`
	ImageURL string   `json:"image,omitempty"`
}

type startedPayload struct {
	SessionID string              `json:"sessionId"`
	State     domain.SessionState `json:"state"`
	Questions []questionView      `json:"questions"`
}

type finishedPayload struct {
	Summary domain.ResultSummary `json:"summary"`
	Saved   bool                 `json:"saved"`
}

type reviewPayload struct {
	Entries []domain.ReviewEntry `json:"entries"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the request, starts a session for the requested quiz,
// and relays triggers until a terminal state or disconnect.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	quizName := r.URL.Query().Get("quiz")
	if quizName == "" {
		http.Error(w, "missing quiz", http.StatusBadRequest)
		return
	}
	user := domain.User{
		Username: r.URL.Query().Get("username"),
		Role:     r.URL.Query().Get("role"),
		Class:    r.URL.Query().Get("class"),
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	quiz, err := domain.ParseQuizID(quizName)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}

	session, err := h.service.StartQuiz(r.Context(), user, quiz)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	sessionID := session.ID()

	defer func() {
		// A dropped socket is the tab-close analogue: submit what we have,
		// then tear the session down. Both calls are no-ops if the student
		// already finished or exited.
		_, _ = h.service.Submit(sessionID, app.TriggerDisconnect)
		h.service.Abandon(sessionID)
	}()

	updates, cancel, err := h.service.Subscribe(sessionID)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	defer cancel()

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				h.log.Debug("ws write error", zap.Error(err))
				return
			}
		}
	}()

	send <- outboundMessage[any]{Type: "started", Payload: startedPayload{
		SessionID: sessionID,
		State:     session.State(),
		Questions: viewQuestions(session.Questions()),
	}}

	go func() {
		defer close(updatesDone)
		finishedSent := false
		for {
			select {
			case state, ok := <-updates:
				if !ok {
					return
				}
				select {
				case send <- outboundMessage[any]{Type: "state", Payload: state}:
				case <-closeSignals:
					return
				}
				if state.Status == domain.StatusFinished && !finishedSent {
					finishedSent = true
					summary, _ := session.Summary()
					_, saved := session.Record()
					select {
					case send <- outboundMessage[any]{Type: "finished", Payload: finishedPayload{Summary: summary, Saved: saved}}:
					case <-closeSignals:
						return
					}
				}
			case <-closeSignals:
				return
			}
		}
	}()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- errMsg("invalid answer payload")
				continue
			}
			if err := session.SelectAnswer(payload.Index, payload.Option); err != nil {
				send <- errMsg(err.Error())
			}
		case "navigate":
			var payload navigatePayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- errMsg("invalid navigate payload")
				continue
			}
			if err := session.Navigate(payload.Index); err != nil {
				send <- errMsg(err.Error())
			}
		case "submit":
			if _, err := h.service.Submit(sessionID, app.TriggerSubmit); err != nil {
				send <- errMsg(err.Error())
			}
		case "escape":
			if _, err := h.service.Submit(sessionID, app.TriggerEscape); err != nil {
				send <- errMsg(err.Error())
			}
		case "review":
			entries, err := session.Review()
			if err != nil {
				send <- errMsg(err.Error())
				continue
			}
			send <- outboundMessage[any]{Type: "review", Payload: reviewPayload{Entries: entries}}
		case "exit":
			h.service.Abandon(sessionID)
		default:
			send <- errMsg("unsupported message type")
		}
	}

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}

func errMsg(message string) outboundMessage[any] {
	return outboundMessage[any]{Type: "error", Payload: errorPayload{Message: message}}
}

func viewQuestions(questions []domain.Question) []questionView {
	views := make([]questionView, len(questions))
	for i, q := range questions {
		views[i] = questionView{Text: q.Text, Options: q.Options, ImageURL: q.ImageURL}
	}
	return views
}
