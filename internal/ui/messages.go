package ui

// Msg represents all possible messages in the application
type Msg interface{}

// Tree messages
type FileSelectedMsg struct{ Path string }
type FileOpenedMsg struct{ Path string }
type TreeRebuiltMsg struct{ Root string }

// Preview messages
type PreviewLoadedMsg struct {
	Path    string
	Content string
	Err     error
}

// Command messages
type SetHiddenMsg struct{ Show bool }
type SetExtensionsMsg struct{ Show bool }
type SetThemeMsg struct{ Name string }
type SetRootMsg struct{ Path string }
type ReloadMsg struct{}
type ShowHelpMsg struct{}
type QuitMsg struct{}

// Status bar messages
type StatusMsg struct{ Text string }

// EditorFinishedMsg reports the external editor exiting
type EditorFinishedMsg struct{ Err error }
