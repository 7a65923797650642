package wordmark_test

import (
	"context"
	"testing"

	"github.com/chapar-rest/wordmark"
	"github.com/chapar-rest/wordmark/buffer"
	"github.com/chapar-rest/wordmark/memento"
	"github.com/chapar-rest/wordmark/workbench"
)

// scriptedUI records messages and answers prompts from queued replies.
type scriptedUI struct {
	infos  []string
	errors []string

	picks  []string
	inputs []string
	// pickItems holds the items of the last PickOne call.
	pickItems []string
	// inputRejected collects validation messages for queued inputs.
	inputRejected []string
}

func (u *scriptedUI) ShowInfo(msg string)  { u.infos = append(u.infos, msg) }
func (u *scriptedUI) ShowError(msg string) { u.errors = append(u.errors, msg) }

func (u *scriptedUI) PickOne(_ context.Context, _ string, items []string) (string, bool, error) {
	u.pickItems = items
	if len(u.picks) == 0 {
		return "", false, nil
	}
	picked := u.picks[0]
	u.picks = u.picks[1:]
	return picked, picked != "", nil
}

func (u *scriptedUI) InputText(_ context.Context, _ string, validate func(string) string) (string, bool, error) {
	for len(u.inputs) > 0 {
		text := u.inputs[0]
		u.inputs = u.inputs[1:]
		if msg := validate(text); msg != "" {
			u.inputRejected = append(u.inputRejected, msg)
			continue
		}
		return text, text != "", nil
	}
	return "", false, nil
}

func (u *scriptedUI) lastInfo() string {
	if len(u.infos) == 0 {
		return ""
	}
	return u.infos[len(u.infos)-1]
}

type harness struct {
	wb      *workbench.Workbench
	ed      *workbench.Editor
	mem     *memento.Memory
	ui      *scriptedUI
	applier *wordmark.Applier
	manager *wordmark.Manager
}

func newHarness(t *testing.T, text string) *harness {
	t.Helper()

	h := &harness{
		wb:  workbench.New(),
		mem: memento.NewMemory(),
		ui:  &scriptedUI{},
	}
	h.ed = h.wb.Open(buffer.NewDocument("file:///test.txt", text))
	h.applier = wordmark.NewApplier(h.wb.Decorator())
	h.manager = wordmark.NewManager(wordmark.NewStore(h.mem), h.applier, h.ui,
		wordmark.WithContextSetter(h.wb.SetContext))
	if err := h.manager.Init(); err != nil {
		t.Fatal(err)
	}
	return h
}

// selectWord selects the first occurrence of word in the active editor.
func (h *harness) selectWord(t *testing.T, word string) {
	t.Helper()
	idx := h.ed.Buffer().Index(word)
	if idx < 0 {
		t.Fatalf("%q not in document", word)
	}
	h.ed.SetSelection(idx, idx+len([]rune(word)))
}
