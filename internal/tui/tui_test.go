package tui

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Abhishek2312Singh/complain-management-system/internal/api"
	"github.com/Abhishek2312Singh/complain-management-system/internal/config"
	"github.com/Abhishek2312Singh/complain-management-system/internal/session"
	"github.com/Abhishek2312Singh/complain-management-system/internal/view"
)

type fakeGateway struct {
	submitResp any
	submitErr  error

	complaints  map[string]view.Payload
	complainErr map[string]error
	lookupCalls atomic.Int64

	loginToken string
	loginErr   error

	updateProfileErr  error
	updatePasswordErr error

	numbers    []string
	numbersErr error

	managers []view.Payload

	assignText string
	assignErr  error
	assigned   []string
}

func (f *fakeGateway) SubmitComplaint(_ context.Context, _ api.ComplaintInput) (any, error) {
	return f.submitResp, f.submitErr
}

func (f *fakeGateway) Complaint(_ context.Context, number string, _ bool) (view.Payload, error) {
	f.lookupCalls.Add(1)
	if err := f.complainErr[number]; err != nil {
		return nil, err
	}
	p, ok := f.complaints[number]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (f *fakeGateway) Login(_ context.Context, _, _ string) (string, error) {
	return f.loginToken, f.loginErr
}

func (f *fakeGateway) Profile(context.Context) (view.Payload, error) { return view.Payload{}, nil }

func (f *fakeGateway) UpdateProfile(_ context.Context, _, _ string) (string, error) {
	return "", f.updateProfileErr
}

func (f *fakeGateway) UpdatePassword(_ context.Context, _, _, _ string) (string, error) {
	return "", f.updatePasswordErr
}

func (f *fakeGateway) Managers(context.Context) ([]view.Payload, error) {
	return f.managers, nil
}

func (f *fakeGateway) AddManager(_ context.Context, _, _, _ string) (string, error) {
	return "", nil
}

func (f *fakeGateway) ComplaintNumbers(_ context.Context, _ string) ([]string, error) {
	return f.numbers, f.numbersErr
}

func (f *fakeGateway) AssignManager(_ context.Context, number, username string) (string, error) {
	f.assigned = append(f.assigned, number+"="+username)
	return f.assignText, f.assignErr
}

type fakeCache struct {
	entries []view.Payload
	removed []string
}

func (c *fakeCache) Complaints() []view.Payload { return c.entries }

func (c *fakeCache) AddComplaint(p view.Payload) error {
	c.entries = append(c.entries, p)
	return nil
}

func (c *fakeCache) RemoveComplaint(id string) error {
	c.removed = append(c.removed, id)
	return nil
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFormRequiresAllFields(t *testing.T) {
	m := newFormModel(&fakeGateway{}, &fakeCache{})
	m, _ = m.Update(keyPress("ctrl+s"))
	if m.errMsg != "All fields are required." {
		t.Fatalf("errMsg = %q", m.errMsg)
	}
}

func TestFormRejectsNonNumericMobile(t *testing.T) {
	m := newFormModel(&fakeGateway{}, &fakeCache{})
	m.inputs[formFieldName].SetValue("Jane")
	m.inputs[formFieldMobile].SetValue("not-a-number")
	m.inputs[formFieldEmail].SetValue("jane@example.com")
	m.inputs[formFieldAddress].SetValue("42 Main St")
	m.body.SetValue("Broken street light")
	m, _ = m.Update(keyPress("ctrl+s"))
	if m.errMsg != "Mobile must be a number." {
		t.Fatalf("errMsg = %q", m.errMsg)
	}
}

func TestFormSubmitCachesAndAcknowledges(t *testing.T) {
	gw := &fakeGateway{submitResp: map[string]any{"complainNumber": "CMP-42"}}
	cache := &fakeCache{}
	m := newFormModel(gw, cache)
	m.inputs[formFieldName].SetValue("Jane")
	m.inputs[formFieldMobile].SetValue("9876543210")
	m.inputs[formFieldEmail].SetValue("jane@example.com")
	m.inputs[formFieldAddress].SetValue("42 Main St")
	m.body.SetValue("Broken street light")

	m, cmd := m.Update(keyPress("ctrl+s"))
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	msg := cmd()
	done, ok := msg.(submitDoneMsg)
	if !ok {
		t.Fatalf("got %T, want submitDoneMsg", msg)
	}
	if done.number != "CMP-42" {
		t.Fatalf("number = %q", done.number)
	}
	if len(cache.entries) != 1 {
		t.Fatalf("cached %d entries", len(cache.entries))
	}

	m, _ = m.Update(msg)
	if !strings.Contains(m.ack, "CMP-42") {
		t.Fatalf("ack = %q", m.ack)
	}
	// Any key dismisses the acknowledgement.
	m, _ = m.Update(keyPress("x"))
	if m.ack != "" {
		t.Fatal("ack not dismissed")
	}
}

func TestFormSubmitFallsBackToLocalID(t *testing.T) {
	gw := &fakeGateway{submitResp: "thanks"}
	m := newFormModel(gw, &fakeCache{})
	m.inputs[formFieldName].SetValue("Jane")
	m.inputs[formFieldMobile].SetValue("9876543210")
	m.inputs[formFieldEmail].SetValue("jane@example.com")
	m.inputs[formFieldAddress].SetValue("42 Main St")
	m.body.SetValue("Noise complaint")

	_, cmd := m.Update(keyPress("ctrl+s"))
	done := cmd().(submitDoneMsg)
	if !strings.HasPrefix(done.number, "CMP-") {
		t.Fatalf("number = %q, want local CMP- id", done.number)
	}
}

func TestLookupEmptyInputSkipsNetwork(t *testing.T) {
	gw := &fakeGateway{}
	m := newLookupModel(gw, &fakeCache{})
	m, cmd := m.Update(keyPress("enter"))
	if cmd != nil {
		t.Fatal("expected no command for empty input")
	}
	if m.errMsg != "Enter a complaint number." {
		t.Fatalf("errMsg = %q", m.errMsg)
	}
	if gw.lookupCalls.Load() != 0 {
		t.Fatal("gateway was called")
	}
}

func TestLookupErrorMessage(t *testing.T) {
	m := newLookupModel(&fakeGateway{}, &fakeCache{})
	m, _ = m.Update(lookupErrMsg{err: errors.New("boom")})
	if m.errMsg != "Could not fetch complaint. Please verify the number." {
		t.Fatalf("errMsg = %q", m.errMsg)
	}
}

func TestFetchDetailsBestEffortDropsFailures(t *testing.T) {
	gw := &fakeGateway{
		complaints: map[string]view.Payload{
			"1": {"complainNumber": "1"},
			"3": {"complainNumber": "3"},
		},
		complainErr: map[string]error{"2": errors.New("boom")},
	}
	msg := fetchDetails(gw, view.StatusPending, []string{"1", "2", "3"}, config.PolicyBestEffort)()
	loaded, ok := msg.(detailsLoadedMsg)
	if !ok {
		t.Fatalf("got %T, want detailsLoadedMsg", msg)
	}
	if len(loaded.rows) != 2 {
		t.Fatalf("kept %d rows, want 2", len(loaded.rows))
	}
	// Positional order survives the concurrent fetch.
	if got := view.String(loaded.rows[0], view.FieldNumber); got != "1" {
		t.Fatalf("rows[0] = %q", got)
	}
	if got := view.String(loaded.rows[1], view.FieldNumber); got != "3" {
		t.Fatalf("rows[1] = %q", got)
	}
}

func TestFetchDetailsAllOrNothingFailsBatch(t *testing.T) {
	gw := &fakeGateway{
		complaints:  map[string]view.Payload{"1": {"complainNumber": "1"}},
		complainErr: map[string]error{"2": errors.New("boom")},
	}
	msg := fetchDetails(gw, view.StatusPending, []string{"1", "2"}, config.PolicyAllOrNothing)()
	if _, ok := msg.(detailsErrMsg); !ok {
		t.Fatalf("got %T, want detailsErrMsg", msg)
	}
}

func TestPanelAssignRequiresSelection(t *testing.T) {
	gw := &fakeGateway{managers: []view.Payload{{"fullName": "Asha Rao", "userName": "asha"}}}
	m := newPanelModel(gw, view.StatusPending, config.PolicyBestEffort, newKeyMap())
	m.state = panelReady
	m.rows = []view.Payload{{"complainNumber": "77"}}
	m.managers = []view.Manager{{Name: "Asha Rao", Username: "asha"}}

	m, _ = m.assignSelected()
	if m.notice != "Please select a manager first." {
		t.Fatalf("notice = %q", m.notice)
	}
	if len(gw.assigned) != 0 {
		t.Fatal("assignment was submitted without a selection")
	}
}

func TestPanelAssignSubmitsSelection(t *testing.T) {
	gw := &fakeGateway{assignText: "Complain updated successfully."}
	m := newPanelModel(gw, view.StatusPending, config.PolicyBestEffort, newKeyMap())
	m.state = panelReady
	m.rows = []view.Payload{{"complainNumber": "77"}}
	m.managers = []view.Manager{{Name: "Asha Rao", Username: "asha"}}
	m.selections["77"] = "asha"

	m, cmd := m.assignSelected()
	if cmd == nil {
		t.Fatal("expected an assign command")
	}
	msg := cmd()
	done, ok := msg.(assignDoneMsg)
	if !ok {
		t.Fatalf("got %T, want assignDoneMsg", msg)
	}
	if len(gw.assigned) != 1 || gw.assigned[0] != "77=asha" {
		t.Fatalf("assigned = %v", gw.assigned)
	}

	m, _ = m.Update(done)
	if m.notice != "Complain updated successfully." {
		t.Fatalf("notice = %q", m.notice)
	}
}

func TestPanelStaleNoticeTimerIgnored(t *testing.T) {
	m := newPanelModel(&fakeGateway{}, view.StatusPending, config.PolicyBestEffort, newKeyMap())
	m, _ = m.showNotice("first")
	m, _ = m.showNotice("second")
	// The first timer fires with the old id; the newer notice survives.
	m, _ = m.Update(noticeExpiredMsg{bucket: view.StatusPending, id: m.noticeID - 1})
	if m.notice != "second" {
		t.Fatalf("notice = %q", m.notice)
	}
	m, _ = m.Update(noticeExpiredMsg{bucket: view.StatusPending, id: m.noticeID})
	if m.notice != "" {
		t.Fatalf("notice = %q, want cleared", m.notice)
	}
}

func TestPanelIgnoresOtherBuckets(t *testing.T) {
	m := newPanelModel(&fakeGateway{}, view.StatusClosed, config.PolicyBestEffort, newKeyMap())
	m, _ = m.Update(numbersErrMsg{bucket: view.StatusPending, err: errors.New("boom")})
	if m.state == panelError {
		t.Fatal("message for another bucket changed state")
	}
}

func TestPanelNumbersLoadedStartsDetailFetch(t *testing.T) {
	gw := &fakeGateway{complaints: map[string]view.Payload{"1": {"complainNumber": "1"}}}
	m := newPanelModel(gw, view.StatusInProcess, config.PolicyBestEffort, newKeyMap())
	m, cmd := m.Update(numbersLoadedMsg{bucket: view.StatusInProcess, numbers: []string{"1"}})
	if m.state != panelLoadingDetails {
		t.Fatalf("state = %v", m.state)
	}
	if cmd == nil {
		t.Fatal("expected a details command")
	}
}

func TestLoginRequiresCredentials(t *testing.T) {
	m := newLoginModel(&fakeGateway{})
	m, _ = m.submit()
	if m.errMsg != "Username and password are required." {
		t.Fatalf("errMsg = %q", m.errMsg)
	}
}

func TestLoginGenericErrorMessage(t *testing.T) {
	m := newLoginModel(&fakeGateway{})
	m, _ = m.Update(loginErrMsg{err: errors.New("401")})
	if m.errMsg != "Invalid username or password. Please try again." {
		t.Fatalf("errMsg = %q", m.errMsg)
	}
}

func TestLoginSurfacesMissingToken(t *testing.T) {
	m := newLoginModel(&fakeGateway{})
	m, _ = m.Update(loginErrMsg{err: api.ErrNoToken})
	if m.errMsg != api.ErrNoToken.Error() {
		t.Fatalf("errMsg = %q", m.errMsg)
	}
}

func TestProfilePasswordMismatch(t *testing.T) {
	m := newProfileModel(&fakeGateway{}, newKeyMap())
	m.mode = profileResetting
	m.current.SetValue("old")
	m.updated.SetValue("new1")
	m.confirm.SetValue("new2")
	m, _ = m.changePassword()
	if m.errMsg != "New password and confirm password do not match." {
		t.Fatalf("errMsg = %q", m.errMsg)
	}
}

func TestPickerFiltersAndPicks(t *testing.T) {
	managers := []view.Manager{
		{Name: "Asha Rao", Username: "asha"},
		{Name: "Ravi Kumar", Username: "ravi"},
	}
	p := newPickerModel(managers, view.StatusPending, "77")
	p.filter.SetValue("ravi")
	p.refilter()
	if len(p.matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(p.matches))
	}
	p, cmd := p.Update(keyPress("enter"))
	if cmd == nil {
		t.Fatal("expected a pick command")
	}
	picked, ok := cmd().(managerPickedMsg)
	if !ok {
		t.Fatal("expected managerPickedMsg")
	}
	if picked.bucket != view.StatusPending || picked.number != "77" || picked.username != "ravi" {
		t.Fatalf("picked = %+v", picked)
	}
}

func TestPanelIgnoresPickFromOtherBucket(t *testing.T) {
	m := newPanelModel(&fakeGateway{}, view.StatusClosed, config.PolicyBestEffort, newKeyMap())
	m, _ = m.Update(managerPickedMsg{bucket: view.StatusPending, number: "77", username: "asha"})
	if len(m.selections) != 0 {
		t.Fatalf("selection recorded for another bucket: %v", m.selections)
	}
}

func TestPublicSwitchFocusesLookupInput(t *testing.T) {
	m := newPublicModel(&fakeGateway{}, &fakeCache{})
	m, _ = m.Update(keyPress("ctrl+t"))
	for _, r := range "C-42" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if got := m.lookup.input.Value(); got != "C-42" {
		t.Fatalf("typed text did not reach the lookup input, got %q", got)
	}
	m, _ = m.Update(keyPress("ctrl+t"))
	if m.lookup.input.Focused() {
		t.Fatal("lookup input still focused after switching back to the form")
	}
}

func TestProfileSaveErrorShowsServerText(t *testing.T) {
	gw := &fakeGateway{updateProfileErr: errors.New("Mobile number already in use")}
	m := newProfileModel(gw, newKeyMap())
	m.mode = profileEditing
	m.email.SetValue("jane@example.com")
	m.mobile.SetValue("9876543210")
	m, cmd := m.saveProfile()
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	m, _ = m.Update(cmd())
	if m.errMsg != "Mobile number already in use" {
		t.Fatalf("errMsg = %q, want the server's text", m.errMsg)
	}
	if m.mode != profileEditing {
		t.Fatal("failed save must keep the edit form open")
	}
}

func TestPasswordChangeErrorShowsServerText(t *testing.T) {
	gw := &fakeGateway{updatePasswordErr: errors.New("Current password is incorrect")}
	m := newProfileModel(gw, newKeyMap())
	m.mode = profileResetting
	m.current.SetValue("old")
	m.updated.SetValue("new")
	m.confirm.SetValue("new")
	m, cmd := m.changePassword()
	if cmd == nil {
		t.Fatal("expected a password command")
	}
	m, _ = m.Update(cmd())
	if m.errMsg != "Current password is incorrect" {
		t.Fatalf("errMsg = %q, want the server's text", m.errMsg)
	}
}

func TestBlinkReachesFocusedInput(t *testing.T) {
	m := New(&fakeGateway{}, &fakeCache{}, session.New(nil), config.PolicyBestEffort)
	_, cmd := m.Update(textinput.Blink())
	if cmd == nil {
		t.Fatal("blink message was not forwarded to the focused input")
	}
}
