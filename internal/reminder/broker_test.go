package reminder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smart-todo/config"
	"smart-todo/internal/model"
	"smart-todo/pkg/telegram"
)

func TestBroker(t *testing.T) {
	b := NewBroker(1)

	ch, unsubscribe := b.Subscribe("u1")
	other, unsubscribeOther := b.Subscribe("u2")
	defer unsubscribeOther()

	if got := b.Publish(model.Notification{ID: "n1", UserID: "u1"}); got != 1 {
		t.Fatalf("expected 1 delivery, got %d", got)
	}
	// Buffer is full: the second event is dropped instead of blocking.
	if got := b.Publish(model.Notification{ID: "n2", UserID: "u1"}); got != 0 {
		t.Errorf("expected drop on full buffer, got %d deliveries", got)
	}

	if n := <-ch; n.ID != "n1" {
		t.Errorf("unexpected notification %s", n.ID)
	}
	select {
	case n := <-other:
		t.Errorf("u2 received %s", n.ID)
	default:
	}

	unsubscribe()
	unsubscribe()
	if _, ok := <-ch; ok {
		t.Error("channel should be closed after unsubscribe")
	}
	if b.Subscribers("u1") != 0 {
		t.Error("subscriber not removed")
	}
	if got := b.Publish(model.Notification{ID: "n3", UserID: "u1"}); got != 0 {
		t.Errorf("no subscribers expected, got %d", got)
	}
}

func TestTelegramNotifier(t *testing.T) {
	var got telegram.SendMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/sendMessage") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	bot := telegram.NewBot("token")
	bot.SetAPIURL(srv.URL)

	n := NewTelegramNotifier(bot, 42)
	err := n.Notify(context.Background(), model.Notification{ID: "x", Title: "Reminder: Dentist", Message: "soon"})
	if err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if got.ChatID != 42 || got.Text != "Reminder: Dentist\n\nsoon" {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestPlatformNotifiers(t *testing.T) {
	tc := config.TelegramConfig{BotToken: "token", ChatID: 42}

	if got := PlatformNotifiers(config.ReminderConfig{PlatformAlerts: false}, tc); len(got) != 0 {
		t.Fatalf("alerts disabled: got %d notifiers", len(got))
	}
	if got := PlatformNotifiers(config.ReminderConfig{PlatformAlerts: true}, config.TelegramConfig{BotToken: "token"}); len(got) != 0 {
		t.Fatalf("missing chat id: got %d notifiers", len(got))
	}
	if got := PlatformNotifiers(config.ReminderConfig{PlatformAlerts: true}, tc); len(got) != 1 {
		t.Fatalf("want 1 notifier, got %d", len(got))
	}
}
