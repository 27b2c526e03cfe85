package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"ontap-quiz-service/internal/app"
	"ontap-quiz-service/internal/domain"
	"ontap-quiz-service/internal/infra/memory"
)

func TestWebSocketExamFlow(t *testing.T) {
	service, results := newTestService()
	wsHandler := NewWSHandler(service, zap.NewNop())

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	server := httptest.NewServer(mux)
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws?quiz=TOÁN%20-%20LỚP%203%20-%20Vòng%201:%20Khởi%20động&username=an&class=LỚP%203"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Expect the started event with the question set.
	msgType, payload := readNext(conn, t, "started")
	if msgType != "started" {
		t.Fatalf("expected started, got %s", msgType)
	}
	questions, ok := payload["questions"].([]any)
	if !ok || len(questions) != 30 {
		t.Fatalf("expected 30 questions in started payload, got %v", payload["questions"])
	}

	// Answer the first question (option 0 may or may not be right; the
	// engine accepts either).
	if err := conn.WriteJSON(map[string]any{
		"type":    "answer",
		"payload": map[string]any{"index": 0, "option": 0},
	}); err != nil {
		t.Fatalf("write answer: %v", err)
	}
	waitFor(conn, t, "state")

	if err := conn.WriteJSON(map[string]any{"type": "submit"}); err != nil {
		t.Fatalf("write submit: %v", err)
	}
	_, finished := waitFor(conn, t, "finished")
	summary, ok := finished["summary"].(map[string]any)
	if !ok {
		t.Fatalf("expected summary in finished payload, got %v", finished)
	}
	if summary["answeredCount"].(float64) != 1 {
		t.Fatalf("expected 1 answered, got %v", summary["answeredCount"])
	}

	// Review stays available after finishing.
	if err := conn.WriteJSON(map[string]any{"type": "review"}); err != nil {
		t.Fatalf("write review: %v", err)
	}
	_, _ = waitFor(conn, t, "review")

	records, err := results.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 || records[0].Username != "an" {
		t.Fatalf("expected one persisted result for an, got %+v", records)
	}
}

func TestWebSocketRejectsUnknownQuiz(t *testing.T) {
	service, _ := newTestService()
	wsHandler := NewWSHandler(service, zap.NewNop())

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	server := httptest.NewServer(mux)
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws?quiz=TOÁN%20-%20LỚP%209%20-%20Vòng%201:%20Khởi%20động&username=an"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	msgType, payload := readNext(conn, t, "error")
	if msgType != "error" || payload["message"] == "" {
		t.Fatalf("expected error message, got %s %v", msgType, payload)
	}
}

func waitFor(conn *websocket.Conn, t *testing.T, want string) (string, map[string]any) {
	t.Helper()
	for i := 0; i < 20; i++ {
		typ, payload := readNext(conn, t, "")
		if typ == want {
			return typ, payload
		}
	}
	t.Fatalf("never received %q", want)
	return "", nil
}

func readNext(conn *websocket.Conn, t *testing.T, expect string) (string, map[string]any) {
	t.Helper()
	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if expect != "" && msg.Type != expect {
		t.Fatalf("expected type %s, got %s", expect, msg.Type)
	}
	return msg.Type, msg.Payload
}

func newTestService() (*app.ExamService, *memory.ResultStore) {
	questions := make([]domain.Question, 35)
	for i := range questions {
		questions[i] = domain.Question{
			Text:         fmt.Sprintf("%d + 1 = ?", i),
			Options:      []string{"A", "B", "C", "D"},
			CorrectIndex: i % 4,
			Difficulty:   domain.DifficultyEasy,
		}
	}
	bank := memory.NewBankRepository(domain.Bank{
		"ÔN TẬP MÔN TOÁN": {"LỚP 3": questions},
	}, memory.NewStaticBankLoader(nil), time.Minute)
	results := memory.NewResultStore()
	service := app.NewExamService(bank, memory.NewAttemptStore(), results, memory.NewSessionStore(), zap.NewNop())
	return service, results
}
