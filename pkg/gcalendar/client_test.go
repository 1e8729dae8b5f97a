package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"voice-task-manager/pkg/gcalendar"
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

// insertedEvent is the subset of the events.insert body the task flow controls.
type insertedEvent struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Start       struct {
		Date     string `json:"date"`
		DateTime string `json:"dateTime"`
		TimeZone string `json:"timeZone"`
	} `json:"start"`
	End struct {
		Date     string `json:"date"`
		DateTime string `json:"dateTime"`
		TimeZone string `json:"timeZone"`
	} `json:"end"`
}

type calendarServer struct {
	path  string
	event insertedEvent
}

// newCalendarClient points a client at a fake Calendar API answering with status.
func newCalendarClient(t *testing.T, status int) (*gcalendar.Client, *calendarServer) {
	t.Helper()
	captured := &calendarServer{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		captured.path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&captured.event)
		w.WriteHeader(status)
		if status == http.StatusOK {
			w.Write([]byte(`{"id":"evt-1","summary":"` + captured.event.Summary + `","htmlLink":"https://calendar.google.com/event?eid=evt-1"}`))
		}
	}))
	t.Cleanup(ts.Close)

	httpClient := ts.Client()
	httpClient.Transport = &rewriteTransport{
		Transport: httpClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), httpClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client, captured
}

func TestCreateEvent_TaskPayloads(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	friday := time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC)
	concert := time.Date(2025, 1, 17, 18, 0, 0, 0, la)

	tests := []struct {
		name          string
		req           gcalendar.CreateEventRequest
		wantPath      string
		wantStartDate string
		wantEndDate   string
		wantStartTime string
		wantEndTime   string
		wantZone      string
	}{
		{
			name: "dated task without time is all day",
			req: gcalendar.CreateEventRequest{
				Summary:     "Dentist",
				Description: "dentist friday",
				StartTime:   friday,
				EndTime:     friday.AddDate(0, 0, 1),
				AllDay:      true,
				Timezone:    "America/Los_Angeles",
			},
			wantPath:      "/calendar/v3/calendars/primary/events",
			wantStartDate: "2025-01-17",
			wantEndDate:   "2025-01-18",
		},
		{
			name: "timed task carries offset and zone",
			req: gcalendar.CreateEventRequest{
				CalendarID:  "family",
				Summary:     "Noc2 concert",
				Description: "Noc2 concert at 6pm Friday",
				StartTime:   concert,
				EndTime:     concert.Add(time.Hour),
				Timezone:    "America/Los_Angeles",
			},
			wantPath:      "/calendar/v3/calendars/family/events",
			wantStartTime: "2025-01-17T18:00:00-08:00",
			wantEndTime:   "2025-01-17T19:00:00-08:00",
			wantZone:      "America/Los_Angeles",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, server := newCalendarClient(t, http.StatusOK)

			event, err := client.CreateEvent(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if server.path != tt.wantPath {
				t.Errorf("expected insert on %s, got %s", tt.wantPath, server.path)
			}
			got := server.event
			if got.Summary != tt.req.Summary || got.Description != tt.req.Description {
				t.Errorf("unexpected summary/description: %+v", got)
			}
			if got.Start.Date != tt.wantStartDate || got.End.Date != tt.wantEndDate {
				t.Errorf("expected dates %q..%q, got %q..%q", tt.wantStartDate, tt.wantEndDate, got.Start.Date, got.End.Date)
			}
			if got.Start.DateTime != tt.wantStartTime || got.End.DateTime != tt.wantEndTime {
				t.Errorf("expected times %q..%q, got %q..%q", tt.wantStartTime, tt.wantEndTime, got.Start.DateTime, got.End.DateTime)
			}
			if got.Start.TimeZone != tt.wantZone {
				t.Errorf("expected zone %q, got %q", tt.wantZone, got.Start.TimeZone)
			}

			if event.HtmlLink != "https://calendar.google.com/event?eid=evt-1" {
				t.Errorf("unexpected link: %s", event.HtmlLink)
			}
			if event.AllDay != tt.req.AllDay || !event.StartTime.Equal(tt.req.StartTime) {
				t.Errorf("expected the request window back, got %+v", event)
			}
		})
	}
}

func TestCreateEvent_APIError(t *testing.T) {
	client, _ := newCalendarClient(t, http.StatusForbidden)

	day := time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)
	_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "Call mom",
		StartTime: day,
		EndTime:   day.AddDate(0, 0, 1),
		AllDay:    true,
	})
	if err == nil || !strings.Contains(err.Error(), "failed to create calendar event") {
		t.Fatalf("expected a wrapped API error, got %v", err)
	}
}

func TestNewClientFromCredentials(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), filepath.Join(t.TempDir(), "credentials.json"))
		if err == nil {
			t.Error("expected read error")
		}
	})

	t.Run("unsupported credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"type":"api_key"}`))
		if err == nil || !strings.Contains(err.Error(), "unsupported credentials format") {
			t.Errorf("expected unsupported format error, got %v", err)
		}
	})

	desktop := []byte(`{"installed":{"client_id":"cid.apps.googleusercontent.com","client_secret":"secret","auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token","redirect_uris":["http://localhost"]}}`)

	t.Run("desktop credentials need the auth command first", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), desktop)
		if err == nil || !strings.Contains(err.Error(), gcalendar.TokenPath) {
			t.Errorf("expected a missing token error, got %v", err)
		}
	})

	t.Run("desktop credentials with saved token", func(t *testing.T) {
		t.Chdir(t.TempDir())
		token := `{"access_token":"a","refresh_token":"r","token_type":"Bearer","expiry":"2030-01-01T00:00:00Z"}`
		if err := os.WriteFile(gcalendar.TokenPath, []byte(token), 0o600); err != nil {
			t.Fatalf("write token: %v", err)
		}

		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), desktop); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
