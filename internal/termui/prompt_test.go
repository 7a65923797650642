package termui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chapar-rest/wordmark"
)

var colorItems = []string{"Yellow", "Green", wordmark.CustomColorLabel}

func testStyles() promptStyles {
	return NewPrompt(strings.NewReader(""), io.Discard).styles
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPickOne(t *testing.T) {
	testcases := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{input: "2\n", want: "Green", wantOK: true},
		{input: "yellow\n", want: "Yellow", wantOK: true},
		{input: "cust\n", want: wordmark.CustomColorLabel, wantOK: true},
		{input: "9\n3\n", want: wordmark.CustomColorLabel, wantOK: true},
		{input: "\n", wantOK: false},
		{input: "", wantOK: false},
	}

	for _, tc := range testcases {
		t.Run(strings.TrimSpace(tc.input), func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompt(strings.NewReader(tc.input), &out)

			got, ok, err := p.PickOne(context.Background(), "pick", colorItems)
			if err != nil {
				t.Fatal(err)
			}
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("got (%q, %v), want (%q, %v)", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestPickOneLeavesLaterLines(t *testing.T) {
	p := NewPrompt(strings.NewReader("1\n#abcdef\n"), io.Discard)

	picked, ok, err := p.PickOne(context.Background(), "pick", colorItems)
	if err != nil || !ok || picked != "Yellow" {
		t.Fatalf("pick: got (%q, %v, %v)", picked, ok, err)
	}

	text, ok, err := p.InputText(context.Background(), "color", wordmark.ValidateHexColor)
	if err != nil || !ok || text != "#abcdef" {
		t.Fatalf("input: got (%q, %v, %v)", text, ok, err)
	}
}

func TestPickerKeys(t *testing.T) {
	var m tea.Model = newPickerModel("pick", colorItems, testStyles())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.(pickerModel).Selected(); got != wordmark.CustomColorLabel {
		t.Fatalf("down stops at the last item, got %q", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	res := m.(pickerModel)
	if !res.done || res.canceled || res.Selected() != "Green" {
		t.Fatalf("enter: done=%v canceled=%v selected=%q", res.done, res.canceled, res.Selected())
	}
	if cmd == nil {
		t.Fatal("enter should quit")
	}
	if !strings.Contains(res.View(), "Green") {
		t.Errorf("summary view %q", res.View())
	}
}

func TestPickerEscapeSelectsNothing(t *testing.T) {
	var m tea.Model = newPickerModel("pick", colorItems, testStyles())

	m, _ = m.Update(runes("2"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	res := m.(pickerModel)
	if !res.canceled || cmd == nil {
		t.Fatalf("canceled=%v", res.canceled)
	}
	if res.View() != "" {
		t.Errorf("dismissed view %q", res.View())
	}
}

func TestPickerRejectsUnknownChoice(t *testing.T) {
	asked := 0
	pm := newPickerModel("pick", colorItems, testStyles())
	pm.more = func() { asked++ }

	var m tea.Model = pm
	m, _ = m.Update(runes("purple"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	res := m.(pickerModel)
	if res.done || cmd != nil {
		t.Fatal("unknown choice should keep the list open")
	}
	if asked != 1 {
		t.Errorf("asked for %d more answers, want 1", asked)
	}
	if !strings.Contains(res.View(), `"purple" is not one of the choices`) {
		t.Errorf("view %q", res.View())
	}
}

func TestInputTextRetriesInvalid(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompt(strings.NewReader("red\n#ff0000\n"), &out)

	got, ok, err := p.InputText(context.Background(), "color", wordmark.ValidateHexColor)
	if err != nil || !ok || got != "#ff0000" {
		t.Fatalf("got (%q, %v, %v)", got, ok, err)
	}
}

func TestInputShowsValidationInline(t *testing.T) {
	asked := 0
	im := newInputModel("color", wordmark.ValidateHexColor, testStyles())
	im.more = func() { asked++ }

	var m tea.Model = im
	m, _ = m.Update(runes("red"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	res := m.(inputModel)
	if res.done || cmd != nil {
		t.Fatal("invalid text should keep the input open")
	}
	if asked != 1 {
		t.Errorf("asked for %d more answers, want 1", asked)
	}
	if res.Value() != "" {
		t.Errorf("rejected text kept: %q", res.Value())
	}
	if !strings.Contains(res.View(), "Please enter a valid hex color") {
		t.Errorf("validation message not shown: %q", res.View())
	}

	m, _ = m.Update(runes("#00ff00"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	res = m.(inputModel)
	if !res.done || res.canceled || res.Value() != "#00ff00" {
		t.Fatalf("done=%v canceled=%v value=%q", res.done, res.canceled, res.Value())
	}
}

func TestInputProgram(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	prog := tea.NewProgram(newInputModel("color", wordmark.ValidateHexColor, testStyles()),
		tea.WithContext(ctx),
		tea.WithInput(strings.NewReader("#abcdef\r")),
		tea.WithOutput(io.Discard),
	)
	final, err := prog.Run()
	if err != nil {
		t.Fatal(err)
	}
	if got := final.(inputModel).Value(); got != "#abcdef" {
		t.Errorf("got %q", got)
	}
}

func TestPickerProgramEscape(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	prog := tea.NewProgram(newPickerModel("pick", colorItems, testStyles()),
		tea.WithContext(ctx),
		tea.WithInput(strings.NewReader("\x1b")),
		tea.WithOutput(io.Discard),
	)
	final, err := prog.Run()
	if err != nil {
		t.Fatal(err)
	}
	if !final.(pickerModel).canceled {
		t.Error("escape should dismiss the list")
	}
}

func TestPromptCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPrompt(strings.NewReader("1\n"), &bytes.Buffer{})
	if _, ok, err := p.InputText(ctx, "color", nil); ok || err == nil {
		t.Fail()
	}
}

func TestShowMessages(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompt(strings.NewReader(""), &out)
	p.ShowInfo("Removed all highlights")
	p.ShowError("Failed")

	if out.String() != "Removed all highlights\nFailed\n" {
		t.Errorf("got %q", out.String())
	}
}
