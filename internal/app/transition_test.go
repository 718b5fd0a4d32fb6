package app

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/inkwell-md/inkwell/internal/note"
	"github.com/inkwell-md/inkwell/internal/prefs"
)

func testState() State {
	return NewState(prefs.Default())
}

func boundNote(name, text string) note.Note {
	ts := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	return note.Note{Name: name, LastModified: &ts, Text: text}
}

func TestEditTextReplacesBodyAndPropagates(t *testing.T) {
	st := testState()
	next, effects := Transition(EditText{Body: "hello *world*"}, st)

	if next.Note.Text != "hello *world*" {
		t.Errorf("note text = %q", next.Note.Text)
	}
	want := []Effect{PropagateText{Text: "hello *world*"}}
	if !reflect.DeepEqual(effects, want) {
		t.Errorf("effects = %#v, want %#v", effects, want)
	}
	if st.Note.Text != "" {
		t.Errorf("input state mutated: %q", st.Note.Text)
	}
}

func TestNoteLoadedFromDevice(t *testing.T) {
	st := testState()

	t.Run("valid payload replaces note", func(t *testing.T) {
		raw := []byte(`{"name":"ideas.md","lastModified":"2024-05-01T09:00:00Z","text":"# Ideas"}`)
		next, effects := Transition(NoteLoadedFromDevice{Raw: raw}, st)
		if next.Note.Name != "ideas.md" || next.Note.Text != "# Ideas" || !next.Note.Bound() {
			t.Errorf("note = %+v", next.Note)
		}
		if len(effects) != 0 {
			t.Errorf("effects = %#v, want none", effects)
		}
	})

	t.Run("malformed payload degrades to empty note", func(t *testing.T) {
		st := st
		st.Note = boundNote("old.md", "old text")
		next, _ := Transition(NoteLoadedFromDevice{Raw: []byte("}{")}, st)
		if !reflect.DeepEqual(next.Note, note.Empty()) {
			t.Errorf("note = %+v, want empty", next.Note)
		}
	})
}

func TestNewNoteBuiltFromTemplate(t *testing.T) {
	raw := []byte(`{"name":"plan.md","text":""}`)

	t.Run("empty editor takes template text", func(t *testing.T) {
		next, _ := Transition(NewNoteBuiltFromTemplate{Raw: raw}, testState())
		if next.Note.Text != "# plan" {
			t.Errorf("text = %q, want %q", next.Note.Text, "# plan")
		}
		if next.Note.Name != "plan.md" {
			t.Errorf("name = %q", next.Note.Name)
		}
	})

	t.Run("in-progress text survives the template", func(t *testing.T) {
		st := testState()
		st.Note = st.Note.WithText("hello")
		next, _ := Transition(NewNoteBuiltFromTemplate{Raw: raw}, st)
		if next.Note.Text != "hello" {
			t.Errorf("text = %q, want hello", next.Note.Text)
		}
		if next.Note.Name != "plan.md" {
			t.Errorf("name = %q, want plan.md", next.Note.Name)
		}
	})

	t.Run("malformed payload degrades to empty note", func(t *testing.T) {
		next, _ := Transition(NewNoteBuiltFromTemplate{Raw: []byte("nope")}, testState())
		if !reflect.DeepEqual(next.Note, note.Empty()) {
			t.Errorf("note = %+v, want empty", next.Note)
		}
	})
}

func TestSaveFileKeyedOffBinding(t *testing.T) {
	t.Run("bound note overwrites in place", func(t *testing.T) {
		st := testState()
		st.Note = boundNote("plan.md", "body")
		_, effects := Transition(MenuSaveFile{}, st)
		want := []Effect{OverwriteFile{Text: "body"}}
		if !reflect.DeepEqual(effects, want) {
			t.Errorf("effects = %#v, want %#v", effects, want)
		}
	})

	t.Run("unbound note goes through save-as", func(t *testing.T) {
		st := testState()
		st.Note = st.Note.WithText("body")
		_, effects := Transition(MenuSaveFile{}, st)
		want := []Effect{SaveFileAs{Text: "body"}}
		if !reflect.DeepEqual(effects, want) {
			t.Errorf("effects = %#v, want %#v", effects, want)
		}
	})
}

func TestMenuFileActions(t *testing.T) {
	cases := []struct {
		name string
		ev   Event
		want Effect
	}{
		{"new file", MenuNewFile{}, CreateNewFile{}},
		{"open file", MenuOpenFile{}, OpenFilePicker{}},
		{"list cloud", MenuListCloudFiles{}, FetchCloudList{}},
		{"open cloud file", MenuOpenCloudFile{Name: "a.md"}, FetchCloudFile{Name: "a.md"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := testState()
			next, effects := Transition(tc.ev, st)
			if !reflect.DeepEqual(next, st) {
				t.Errorf("state changed: %+v", next)
			}
			if len(effects) != 1 || !reflect.DeepEqual(effects[0], tc.want) {
				t.Errorf("effects = %#v, want [%#v]", effects, tc.want)
			}
		})
	}
}

func TestMenuSaveCloudFileUsesNoteNameAndText(t *testing.T) {
	st := testState()
	st.Note = note.Note{Name: "notes/a.md", Text: "body"}
	_, effects := Transition(MenuSaveCloudFile{}, st)
	want := []Effect{PushCloudFile{Name: "notes/a.md", Text: "body"}}
	if !reflect.DeepEqual(effects, want) {
		t.Errorf("effects = %#v, want %#v", effects, want)
	}
}

func TestMenuChangeTheme(t *testing.T) {
	next, effects := Transition(MenuChangeTheme{Theme: prefs.ThemeDark}, testState())
	if next.Prefs.ColorTheme != prefs.ThemeDark {
		t.Errorf("theme = %q", next.Prefs.ColorTheme)
	}
	if len(effects) != 0 {
		t.Errorf("effects = %#v", effects)
	}
}

func TestMenuChangeLayout(t *testing.T) {
	t.Run("write and focus are reachable", func(t *testing.T) {
		for _, mode := range []prefs.LayoutMode{prefs.LayoutWrite, prefs.LayoutFocus} {
			next, _ := Transition(MenuChangeLayout{Mode: mode}, testState())
			if next.Prefs.LayoutMode != mode {
				t.Errorf("layout = %q, want %q", next.Prefs.LayoutMode, mode)
			}
		}
	})

	t.Run("read via menu is a no-op", func(t *testing.T) {
		st := testState()
		next, effects := Transition(MenuChangeLayout{Mode: prefs.LayoutRead}, st)
		if !reflect.DeepEqual(next, st) {
			t.Errorf("state changed: %+v", next)
		}
		if len(effects) != 0 {
			t.Errorf("effects = %#v", effects)
		}
	})
}

func TestToggleReadPreview(t *testing.T) {
	st := testState()
	st.Prefs.LayoutMode = prefs.LayoutFocus

	next, _ := Transition(ToggleReadPreview{}, st)
	if next.Prefs.LayoutMode != prefs.LayoutRead {
		t.Fatalf("layout = %q, want Read", next.Prefs.LayoutMode)
	}

	back, _ := Transition(ToggleReadPreview{}, next)
	if back.Prefs.LayoutMode != prefs.LayoutFocus {
		t.Fatalf("layout = %q, want Focus", back.Prefs.LayoutMode)
	}
}

func TestToggleReadPreviewIgnoredInWrite(t *testing.T) {
	st := testState()
	next, _ := Transition(ToggleReadPreview{}, st)
	if next.Prefs.LayoutMode != prefs.LayoutWrite {
		t.Errorf("layout = %q, want Write", next.Prefs.LayoutMode)
	}
}

func TestRemoteListReceived(t *testing.T) {
	t.Run("ok replaces the cache wholesale", func(t *testing.T) {
		st := testState()
		st.CloudFiles = []string{"stale.md"}
		next, _ := Transition(RemoteListReceived{Files: []string{"a.md", "b.md"}}, st)
		if !reflect.DeepEqual(next.CloudFiles, []string{"a.md", "b.md"}) {
			t.Errorf("cloudFiles = %v", next.CloudFiles)
		}
	})

	t.Run("error keeps the cached list", func(t *testing.T) {
		st := testState()
		st.CloudFiles = []string{"a.md"}
		next, effects := Transition(RemoteListReceived{Err: errors.New("boom")}, st)
		if !reflect.DeepEqual(next, st) {
			t.Errorf("state changed: %+v", next)
		}
		if len(effects) != 0 {
			t.Errorf("effects = %#v", effects)
		}
	})
}

func TestRemoteFileReceived(t *testing.T) {
	t.Run("ok installs an unbound note and retitles", func(t *testing.T) {
		next, effects := Transition(RemoteFileReceived{Name: "notes/a.md", Text: "body"}, testState())
		if next.Note.Name != "notes/a.md" || next.Note.Text != "body" {
			t.Errorf("note = %+v", next.Note)
		}
		if next.Note.Bound() {
			t.Errorf("cloud-sourced note must be unbound")
		}
		want := []Effect{PropagateTitle{Title: "notes/a.md"}}
		if !reflect.DeepEqual(effects, want) {
			t.Errorf("effects = %#v, want %#v", effects, want)
		}
	})

	t.Run("error changes nothing and emits nothing", func(t *testing.T) {
		st := testState()
		st.Note = st.Note.WithText("keep me")
		next, effects := Transition(RemoteFileReceived{Name: "notes/a.md", Err: errors.New("timeout")}, st)
		if !reflect.DeepEqual(next, st) {
			t.Errorf("state changed: %+v", next)
		}
		if len(effects) != 0 {
			t.Errorf("effects = %#v", effects)
		}
	})
}

func TestAcknowledgementsAreNoOps(t *testing.T) {
	st := testState()
	st.Note = boundNote("a.md", "text")

	for _, ev := range []Event{
		DeviceWriteAcknowledged{OK: true},
		DeviceWriteAcknowledged{OK: false},
		RemoteSaveAcknowledged{},
		RemoteSaveAcknowledged{Err: errors.New("boom")},
	} {
		next, effects := Transition(ev, st)
		if !reflect.DeepEqual(next, st) {
			t.Errorf("%T changed state", ev)
		}
		if len(effects) != 0 {
			t.Errorf("%T emitted %#v", ev, effects)
		}
	}
}

func TestListThenReceiveFlow(t *testing.T) {
	st := testState()

	st2, effects := Transition(MenuListCloudFiles{}, st)
	if len(effects) != 1 {
		t.Fatalf("effects = %#v", effects)
	}
	if _, ok := effects[0].(FetchCloudList); !ok {
		t.Fatalf("effect = %#v, want FetchCloudList", effects[0])
	}

	st3, _ := Transition(RemoteListReceived{Files: []string{"a.md", "b.md"}}, st2)
	if !reflect.DeepEqual(st3.CloudFiles, []string{"a.md", "b.md"}) {
		t.Errorf("cloudFiles = %v", st3.CloudFiles)
	}
}

func TestUpdateAppendsPersistEffectLast(t *testing.T) {
	st := testState()

	next, effects := Update(EditText{Body: "x"}, st)
	if len(effects) != 2 {
		t.Fatalf("effects = %#v, want 2", effects)
	}
	if _, ok := effects[0].(PropagateText); !ok {
		t.Errorf("first effect = %#v, want PropagateText", effects[0])
	}
	persist, ok := effects[1].(PersistPreferences)
	if !ok {
		t.Fatalf("last effect = %#v, want PersistPreferences", effects[1])
	}
	if persist.Prefs != next.Prefs {
		t.Errorf("persisted %+v, state has %+v", persist.Prefs, next.Prefs)
	}
}

func TestUpdatePersistsEvenWithoutOtherEffects(t *testing.T) {
	_, effects := Update(MenuChangeTheme{Theme: prefs.ThemeDark}, testState())
	if len(effects) != 1 {
		t.Fatalf("effects = %#v", effects)
	}
	persist, ok := effects[0].(PersistPreferences)
	if !ok {
		t.Fatalf("effect = %#v, want PersistPreferences", effects[0])
	}
	if persist.Prefs.ColorTheme != prefs.ThemeDark {
		t.Errorf("persisted theme = %q", persist.Prefs.ColorTheme)
	}
}
