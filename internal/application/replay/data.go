// Package replay records per-frame input and wall time so a session can be
// fed back through the simulation without a window.
package replay

// Version is written into every recording
const Version = "1.0"

// FrameInput records input state and elapsed time for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	DT float64 `json:"dt"`           // Elapsed seconds
	L  bool    `json:"l,omitempty"`  // Left
	R  bool    `json:"r,omitempty"`  // Right
	J  bool    `json:"j,omitempty"`  // Jump
	HR bool    `json:"hr,omitempty"` // HorizontalReleased
	C  bool    `json:"c,omitempty"`  // Confirm
	P  bool    `json:"p,omitempty"`  // Pause
	I  bool    `json:"i,omitempty"`  // Instructions
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Level     int          `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
