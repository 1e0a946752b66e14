package gcalendar_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"smart-todo/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestCalendarClient(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("Initialize with broken JWT/OAuth config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Initialize from installed app config", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Initialize from installed app config bad token", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"broken": true`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Initialize from File", func(t *testing.T) {
		tmpFile, _ := os.CreateTemp("", "creds.json")
		defer os.Remove(tmpFile.Name())
		tmpFile.WriteString(`{"broken":true}`)
		tmpFile.Close()

		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), tmpFile.Name())
		if err == nil {
			t.Errorf("expected failure loading broken file")
		}

		_, err = gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})

	t.Run("Initialize from provider token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromToken(context.Background(), nil, &oauth2.Token{AccessToken: "ya29.dummy"})
		if err != nil {
			t.Fatalf("expected token client: %v", err)
		}

		cfg := &oauth2.Config{ClientID: "id", ClientSecret: "secret"}
		_, err = gcalendar.NewClientFromToken(context.Background(), cfg, &oauth2.Token{AccessToken: "a", RefreshToken: "r"})
		if err != nil {
			t.Fatalf("expected refreshable token client: %v", err)
		}

		_, err = gcalendar.NewClientFromToken(context.Background(), nil, &oauth2.Token{})
		if !errors.Is(err, gcalendar.ErrMissingToken) {
			t.Errorf("expected ErrMissingToken, got %v", err)
		}
	})

	t.Run("Create Event E2E", func(t *testing.T) {
		var got map[string]interface{}
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
				body, _ := io.ReadAll(r.Body)
				json.Unmarshal(body, &got)
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"id": "event-123",
					"htmlLink": "https://calendar.google.com/event-uri",
					"status": "confirmed"
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:     "[TODO] Title",
			Description: "Desc",
			StartTime:   time.Now(),
			EndTime:     time.Now().Add(time.Hour),
			Timezone:    "UTC",
			Reminders: []gcalendar.ReminderOverride{
				{Method: "popup", Minutes: 60},
				{Method: "email", Minutes: 60},
			},
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.ID != "event-123" || event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected event: %+v", event)
		}

		reminders, _ := got["reminders"].(map[string]interface{})
		if reminders == nil {
			t.Fatalf("expected reminders in request body, got %v", got)
		}
		if reminders["useDefault"] != false {
			t.Errorf("expected useDefault=false, got %v", reminders["useDefault"])
		}
		if overrides, _ := reminders["overrides"].([]interface{}); len(overrides) != 2 {
			t.Errorf("expected 2 overrides, got %v", reminders["overrides"])
		}
	})

	t.Run("Update Event E2E", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events/event-123" && r.Method == http.MethodPut {
				w.Write([]byte(`{"id": "event-123", "summary": "[TODO] New"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		event, err := client.UpdateEvent(context.Background(), gcalendar.UpdateEventRequest{
			EventID: "event-123",
			CreateEventRequest: gcalendar.CreateEventRequest{
				Summary:   "[TODO] New",
				StartTime: time.Now(),
				EndTime:   time.Now().Add(time.Hour),
			},
		})
		if err != nil {
			t.Fatalf("failed to update event: %v", err)
		}
		if event.Summary != "[TODO] New" {
			t.Errorf("unexpected summary: %s", event.Summary)
		}

		_, err = client.UpdateEvent(context.Background(), gcalendar.UpdateEventRequest{})
		if !errors.Is(err, gcalendar.ErrMissingEventID) {
			t.Errorf("expected ErrMissingEventID, got %v", err)
		}
	})

	t.Run("Delete Event E2E", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			if r.URL.Path == "/calendar/v3/calendars/primary/events/event-123" {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		if err := client.DeleteEvent(context.Background(), "", "event-123"); err != nil {
			t.Fatalf("failed to delete event: %v", err)
		}
		if err := client.DeleteEvent(context.Background(), "", "missing"); err == nil {
			t.Errorf("expected not found error")
		}
		if err := client.DeleteEvent(context.Background(), "", ""); !errors.Is(err, gcalendar.ErrMissingEventID) {
			t.Errorf("expected ErrMissingEventID, got %v", err)
		}
	})

	t.Run("List Events E2E", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/test-fail/events" && r.Method == http.MethodGet {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodGet {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"items": [
						{
							"id": "event-123",
							"summary": "Existing Event",
							"start": { "date": "2024-05-01" },
							"end": { "date": "2024-05-02" }
						},
						{
							"id": "event-456",
							"summary": "Timed Event",
							"start": { "dateTime": "2024-05-01T14:00:00Z" },
							"end": { "dateTime": "2024-05-01T15:00:00Z" }
						}
					]
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			CalendarID: "primary",
			TimeMin:    time.Now(),
			TimeMax:    time.Now().Add(time.Hour * 24),
		})
		if err != nil {
			t.Fatalf("failed to list events: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
		if events[0].Summary != "Existing Event" || !events[0].AllDay {
			t.Errorf("unexpected event: %+v", events[0])
		}
		if events[1].AllDay || events[1].StartTime.Hour() != 14 {
			t.Errorf("unexpected timed event: %+v", events[1])
		}

		_, err = client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			CalendarID: "test-fail",
			TimeMin:    time.Now(),
			TimeMax:    time.Now().Add(time.Hour * 24),
		})
		if err == nil {
			t.Fatalf("expected api error on test-fail")
		}
	})

	t.Run("Create Event Error E2E", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			CalendarID: "primary",
		})
		if err == nil {
			t.Fatalf("expected create event error")
		}
	})
}
