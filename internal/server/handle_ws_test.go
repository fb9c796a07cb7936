package server

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/watchingglass/fortune/internal/fortune"
)

func TestAttemptSocket(t *testing.T) {
	h, attempts := testHandler(t)
	srv := httptest.NewServer(h)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a, err := attempts.Start(ctx)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/attempts/" + a.ID + "/ws"
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.CloseNow()

	var v AttemptView
	if err := wsjson.Read(ctx, conn, &v); err != nil {
		t.Fatalf("read initial: %v", err)
	}
	if v.ID != a.ID || v.Step != 0 {
		t.Fatalf("initial view = %+v", v)
	}

	send := func(action fortune.Action) AttemptView {
		t.Helper()
		if err := wsjson.Write(ctx, conn, action); err != nil {
			t.Fatalf("write %s: %v", action.Type, err)
		}
		var got AttemptView
		if err := wsjson.Read(ctx, conn, &got); err != nil {
			t.Fatalf("read after %s: %v", action.Type, err)
		}
		return got
	}

	if v = send(fortune.Action{Type: fortune.ActionChoose, Value: "Cool"}); v.Pending != "Cool" {
		t.Errorf("pending = %q, want Cool", v.Pending)
	}
	if v = send(fortune.Action{Type: fortune.ActionContinue}); v.Step != 1 || v.Answers[0] != "Cool" {
		t.Errorf("after continue: %+v", v)
	}

	stored, err := attempts.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Session.State.Step != 1 {
		t.Errorf("stored step = %d, want 1", stored.Session.State.Step)
	}

	conn.Close(websocket.StatusNormalClosure, "")
}

func TestAttemptSocketRejectsColorOnChoiceStep(t *testing.T) {
	h, attempts := testHandler(t)
	srv := httptest.NewServer(h)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a, _ := attempts.Start(ctx)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/attempts/" + a.ID + "/ws"
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.CloseNow()

	var initial AttemptView
	wsjson.Read(ctx, conn, &initial)

	if err := wsjson.Write(ctx, conn, fortune.Action{Type: fortune.ActionPalette}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var resp ErrorResponse
	if err := wsjson.Read(ctx, conn, &resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if resp.Error != fortune.ErrNoPicker.Error() {
		t.Errorf("error = %q, want %q", resp.Error, fortune.ErrNoPicker.Error())
	}
}

func TestAttemptSocketRejectsBlankChoice(t *testing.T) {
	h, attempts := testHandler(t)
	srv := httptest.NewServer(h)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a, _ := attempts.Start(ctx)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/attempts/" + a.ID + "/ws"
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.CloseNow()

	var initial AttemptView
	wsjson.Read(ctx, conn, &initial)

	if err := wsjson.Write(ctx, conn, fortune.Action{Type: fortune.ActionChoose, Value: "   "}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var resp ErrorResponse
	if err := wsjson.Read(ctx, conn, &resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(resp.Error, fortune.ErrNotAnOption.Error()) {
		t.Errorf("error = %q, want %q", resp.Error, fortune.ErrNotAnOption.Error())
	}

	stored, err := attempts.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Session.State.Pending != "" {
		t.Errorf("blank choice stored as pending %q", stored.Session.State.Pending)
	}
}
