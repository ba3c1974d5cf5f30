package session

import "time"

// NoticeTTL is how long a notification stays visible.
const NoticeTTL = 2 * time.Second

// Notice identifies one kind of transient notification.
type Notice uint8

const (
	// NoticeMode follows a switch between menu and typing.
	NoticeMode Notice = 1 << iota
	// NoticeOption follows a content mode change.
	NoticeOption
	// NoticeToggle follows toggling notifications themselves.
	NoticeToggle
	// NoticeMistyped follows toggling mistake tracking.
	NoticeMistyped
	// NoticeClearMistyped follows a ledger reset.
	NoticeClearMistyped
	// NoticeCopied follows copying the mistake report.
	NoticeCopied
)

// Notifications tracks which notices are visible and since when. Expiry is
// polled through OnTick.
type Notifications struct {
	active  Notice
	shownAt time.Time
}

// Show makes n visible and restarts the timer.
func (n *Notifications) Show(notice Notice, now time.Time) {
	n.active |= notice
	n.shownAt = now
}

// Has reports whether notice is visible.
func (n *Notifications) Has(notice Notice) bool {
	return n.active&notice != 0
}

// Any reports whether any notice is visible.
func (n *Notifications) Any() bool {
	return n.active != 0
}

// OnTick hides every notice once NoticeTTL has passed. It reports whether
// anything was hidden.
func (n *Notifications) OnTick(now time.Time) bool {
	if n.active == 0 {
		return false
	}
	if now.Sub(n.shownAt) <= NoticeTTL {
		return false
	}
	n.Clear()
	return true
}

// Clear hides every notice.
func (n *Notifications) Clear() {
	n.active = 0
	n.shownAt = time.Time{}
}
