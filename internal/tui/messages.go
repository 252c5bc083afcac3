package tui

import "github.com/Abhishek2312Singh/complain-management-system/internal/view"

// Messages delivered by async commands. Panel-scoped messages carry the
// bucket so a response racing across a tab switch lands in the right panel.

type submitDoneMsg struct {
	number string
	entry  view.Payload
}

type submitErrMsg struct{ err error }

type lookupDoneMsg struct{ payload view.Payload }

type lookupErrMsg struct{ err error }

type loginDoneMsg struct{ token string }

type loginErrMsg struct{ err error }

type profileLoadedMsg struct{ payload view.Payload }

type profileErrMsg struct{ err error }

type profileSavedMsg struct{ message string }

type profileSaveErrMsg struct{ err error }

type passwordChangedMsg struct{ message string }

type passwordErrMsg struct{ err error }

type rosterLoadedMsg struct{ payloads []view.Payload }

type rosterErrMsg struct{ err error }

type managerAddedMsg struct{ message string }

type numbersLoadedMsg struct {
	bucket  string
	numbers []string
}

type numbersErrMsg struct {
	bucket string
	err    error
}

type detailsLoadedMsg struct {
	bucket string
	rows   []view.Payload
}

type detailsErrMsg struct {
	bucket string
	err    error
}

type detailOpenedMsg struct {
	bucket  string
	payload view.Payload
}

type detailErrMsg struct {
	bucket string
	err    error
}

type panelRosterMsg struct {
	bucket   string
	managers []view.Manager
}

type assignDoneMsg struct {
	bucket  string
	message string
}

type assignErrMsg struct {
	bucket string
	err    error
}

// noticeExpiredMsg clears a transient confirmation. The id guards against a
// stale timer clearing a newer notice.
type noticeExpiredMsg struct {
	bucket string
	id     int
}
