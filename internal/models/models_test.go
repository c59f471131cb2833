package models

import "testing"

func TestSession(t *testing.T) {
	t.Run("NewSession seeds one assistant greeting", func(t *testing.T) {
		sess := NewSession("abc", "hello")
		if sess.ID != "abc" {
			t.Errorf("expected id 'abc', got %s", sess.ID)
		}
		if len(sess.Messages) != 1 {
			t.Fatalf("expected 1 message, got %d", len(sess.Messages))
		}
		if sess.Messages[0].Role != RoleAssistant || sess.Messages[0].Content != "hello" {
			t.Errorf("unexpected greeting message: %+v", sess.Messages[0])
		}
	})

	t.Run("Append preserves chronological order", func(t *testing.T) {
		sess := NewSession("abc", "hello")
		sess.Append(RoleUser, "first")
		sess.Append(RoleAssistant, "second")
		sess.Append(RoleUser, "third")

		want := []string{"hello", "first", "second", "third"}
		for i, content := range want {
			if sess.Messages[i].Content != content {
				t.Errorf("position %d: expected %q, got %q", i, content, sess.Messages[i].Content)
			}
		}
	})

	t.Run("Turns counts user messages only", func(t *testing.T) {
		sess := NewSession("abc", "hello")
		if sess.Turns() != 0 {
			t.Errorf("expected 0 turns, got %d", sess.Turns())
		}

		sess.Append(RoleUser, "a")
		sess.Append(RoleAssistant, "b")
		sess.Append(RoleUser, "c")
		sess.Append(RoleAssistant, "d")
		if sess.Turns() != 2 {
			t.Errorf("expected 2 turns, got %d", sess.Turns())
		}
	})
}

func TestResolution(t *testing.T) {
	t.Run("Matched requires an id and no error", func(t *testing.T) {
		if (Resolution{VideoID: "abc"}).Matched() != true {
			t.Error("expected resolution with id to match")
		}
		if (Resolution{}).Matched() {
			t.Error("expected empty resolution not to match")
		}
	})
}
