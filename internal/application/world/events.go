package world

// Event is a one-shot notification for the presentation layer: sound
// cues, music changes, banners and saved progress hang off these.
type Event int

const (
	EventJump Event = iota
	EventCollect
	EventSelect
	EventLevelStart
	EventWin
	EventLose
	EventMenu
	EventPause
	EventResume
)

// String returns the string representation of the event
func (e Event) String() string {
	switch e {
	case EventJump:
		return "Jump"
	case EventCollect:
		return "Collect"
	case EventSelect:
		return "Select"
	case EventLevelStart:
		return "LevelStart"
	case EventWin:
		return "Win"
	case EventLose:
		return "Lose"
	case EventMenu:
		return "Menu"
	case EventPause:
		return "Pause"
	case EventResume:
		return "Resume"
	default:
		return "Unknown"
	}
}
