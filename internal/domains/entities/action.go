package entities

import (
	"encoding/json"
	"fmt"
)

// ActionKind is the kind of response a game is waiting on. Exactly one
// kind is live per game at any time.
type ActionKind uint8

const (
	ActionCoin ActionKind = iota
	ActionDefer
	ActionKickoff
	ActionPlay
	ActionDefense
	ActionConversion
	ActionEnd
)

var actionNames = map[ActionKind]string{
	ActionCoin:       "coin",
	ActionDefer:      "defer",
	ActionKickoff:    "kickoff",
	ActionPlay:       "play",
	ActionDefense:    "defense",
	ActionConversion: "conversion",
	ActionEnd:        "end",
}

func (a ActionKind) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

func ParseActionKind(s string) (ActionKind, error) {
	for kind, name := range actionNames {
		if name == s {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown action kind: %s", s)
}

func (a ActionKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *ActionKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	kind, err := ParseActionKind(s)
	if err != nil {
		return err
	}
	*a = kind
	return nil
}

// PlayKind is a submitted call: an offensive play, a kickoff type or a
// conversion choice.
type PlayKind uint8

const (
	PlayRun PlayKind = iota
	PlayPass
	PlayPunt
	PlayFieldGoal
	PlayKickoffNormal
	PlayKickoffSquib
	PlayKickoffOnside
	PlayPat
	PlayTwoPoint
)

var playNames = map[PlayKind]string{
	PlayRun:           "run",
	PlayPass:          "pass",
	PlayPunt:          "punt",
	PlayFieldGoal:     "field goal",
	PlayKickoffNormal: "normal",
	PlayKickoffSquib:  "squib",
	PlayKickoffOnside: "onside",
	PlayPat:           "pat",
	PlayTwoPoint:      "two point",
}

func (p PlayKind) String() string {
	if name, ok := playNames[p]; ok {
		return name
	}
	return "unknown"
}

func ParsePlayKind(s string) (PlayKind, error) {
	for kind, name := range playNames {
		if name == s {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown play kind: %s", s)
}

func (p PlayKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PlayKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	kind, err := ParsePlayKind(s)
	if err != nil {
		return err
	}
	*p = kind
	return nil
}

func (p PlayKind) IsKickoff() bool {
	return p == PlayKickoffNormal || p == PlayKickoffSquib || p == PlayKickoffOnside
}

func (p PlayKind) IsConversion() bool {
	return p == PlayPat || p == PlayTwoPoint
}
