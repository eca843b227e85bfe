package types

// Cross-component Bubble Tea messages. The sidebar emits these as commands;
// the root app model reacts by driving the session controller.

// NewChatMsg asks for the active session to be archived and replaced.
type NewChatMsg struct{}

// LoadSessionMsg asks for an archived session to be re-activated.
type LoadSessionMsg struct {
	SessionID string
}

// DeleteSessionMsg asks for one archived session to be removed.
type DeleteSessionMsg struct {
	SessionID string
}

// ClearArchiveMsg asks for the whole archive to be emptied.
type ClearArchiveMsg struct{}
