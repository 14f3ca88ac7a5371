package internal

import (
	"testing"
	"time"

	"github.com/iksnae/chat-session/testutil"
)

func TestStorage_LoadEmptyDatabase(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	defer db.Close()

	state := NewStorage(db).Load()
	if state == nil {
		t.Fatal("Load() returned nil state")
	}
	if len(state.Sessions) != 0 {
		t.Errorf("Load() returned %d sessions from empty database, want 0", len(state.Sessions))
	}
	if state.ActiveID != "" {
		t.Errorf("Load() ActiveID = %q from empty database, want empty", state.ActiveID)
	}
}

func TestStorage_LoadMalformedData(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "not json", value: "not valid json"},
		{name: "wrong shape", value: `{"id": "x"}`},
		{name: "truncated", value: `[{"id": "x", "name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.CreateInMemoryDB(t)
			defer db.Close()
			testutil.InsertValue(t, db, "sessions", tt.value)

			// Malformed data degrades to an empty state, never an error
			state := NewStorage(db).Load()
			if len(state.Sessions) != 0 {
				t.Errorf("Load() returned %d sessions from malformed data, want 0", len(state.Sessions))
			}
		})
	}
}

func TestStorage_LoadSeededState(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	defer db.Close()
	testutil.SeedSampleState(t, db, "sess-empty")

	state := NewStorage(db).Load()
	if len(state.Sessions) != 2 {
		t.Fatalf("Load() returned %d sessions, want 2", len(state.Sessions))
	}
	if state.Sessions[0].ID != "sess-greetings" {
		t.Errorf("Sessions[0].ID = %q, want sess-greetings (display order)", state.Sessions[0].ID)
	}
	if state.ActiveID != "sess-empty" {
		t.Errorf("ActiveID = %q, want sess-empty", state.ActiveID)
	}

	msgs := state.Sessions[0].Messages
	if len(msgs) != 2 {
		t.Fatalf("session has %d messages, want 2", len(msgs))
	}
	if msgs[0].Sender != SenderUser || msgs[1].Sender != SenderAssistant {
		t.Error("message senders did not survive deserialization")
	}
	if got := msgs[0].Timestamp.UnixMilli(); got != 1000 {
		t.Errorf("timestamp = %d ms, want 1000", got)
	}
	if msgs[1].Timestamp.Before(msgs[0].Timestamp) {
		t.Error("message ordering was corrupted by deserialization")
	}
}

func TestStorage_LoadDanglingActiveID(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	defer db.Close()
	testutil.SeedSampleState(t, db, "sess-deleted-elsewhere")

	// A dangling persisted active id falls back to the first session
	state := NewStorage(db).Load()
	if state.ActiveID != "sess-greetings" {
		t.Errorf("ActiveID = %q, want fallback to first session", state.ActiveID)
	}
}

func TestStorage_LoadNoActiveID(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	defer db.Close()
	testutil.SeedSampleState(t, db, "")

	state := NewStorage(db).Load()
	if state.ActiveID != "sess-greetings" {
		t.Errorf("ActiveID = %q, want fallback to first session", state.ActiveID)
	}
}

func TestStorage_RoundTrip(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	defer db.Close()
	storage := NewStorage(db)

	now := time.Now()
	state := &State{
		Sessions: []*ChatSession{
			{
				ID:   "s2",
				Name: "second",
				Messages: []Message{
					NewMessage(SenderUser, "how's the weather", now.Add(time.Minute)),
					NewMessage(SenderAssistant, "sunny", now.Add(time.Minute+500*time.Millisecond)),
				},
			},
			{
				ID:   "s1",
				Name: "first",
				Messages: []Message{
					NewMessage(SenderUser, "hello there", now),
				},
			},
		},
		ActiveID: "s1",
	}

	if err := storage.Save(state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded := storage.Load()

	if loaded.ActiveID != state.ActiveID {
		t.Errorf("ActiveID = %q, want %q", loaded.ActiveID, state.ActiveID)
	}
	if len(loaded.Sessions) != len(state.Sessions) {
		t.Fatalf("loaded %d sessions, want %d", len(loaded.Sessions), len(state.Sessions))
	}

	// Structural equality under millisecond time normalization
	for i, want := range state.Sessions {
		got := loaded.Sessions[i]
		if got.ID != want.ID || got.Name != want.Name {
			t.Errorf("session %d = %s/%s, want %s/%s", i, got.ID, got.Name, want.ID, want.Name)
		}
		if len(got.Messages) != len(want.Messages) {
			t.Fatalf("session %d has %d messages, want %d", i, len(got.Messages), len(want.Messages))
		}
		for j, wm := range want.Messages {
			gm := got.Messages[j]
			if gm.ID != wm.ID || gm.Text != wm.Text || gm.Sender != wm.Sender {
				t.Errorf("message %d/%d = %+v, want %+v", i, j, gm, wm)
			}
			if gm.Timestamp.UnixMilli() != wm.Timestamp.UnixMilli() {
				t.Errorf("message %d/%d timestamp = %d, want %d", i, j, gm.Timestamp.UnixMilli(), wm.Timestamp.UnixMilli())
			}
		}
	}
}

func TestStorage_SaveRemovesActiveKey(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	defer db.Close()
	storage := NewStorage(db)

	if err := storage.Save(&State{Sessions: []*ChatSession{{ID: "s1", Name: "x"}}, ActiveID: "s1"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, ok := testutil.GetRawValue(t, db, "last_active_session_id"); !ok {
		t.Fatal("active id key missing after save with active session")
	}

	if err := storage.Save(&State{}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, ok := testutil.GetRawValue(t, db, "last_active_session_id"); ok {
		t.Error("active id key still present after save with no active session")
	}
}
