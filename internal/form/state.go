package form

import (
	"errors"
	"time"

	"resume-builder/internal/model"
)

// ErrEnhancementInFlight is returned when an enhancement is requested for a
// target that already has one running.
var ErrEnhancementInFlight = errors.New("enhancement already in progress")

// ErrSessionClosed is returned when an enhancement is requested after Close.
var ErrSessionClosed = errors.New("session closed")

// BannerTTL is how long a banner stays visible.
const BannerTTL = 3 * time.Second

// Banner texts.
const (
	MsgSummaryRequired     = "Please add a summary before enhancing."
	MsgDescriptionRequired = "Please add a description before enhancing."
	MsgSummaryEnhanced     = "Summary enhanced successfully!"
	MsgExperienceEnhanced  = "Experience description enhanced!"
	MsgSummaryFailed       = "Failed to enhance summary. Using offline enhancement instead."
	MsgDescriptionFailed   = "Failed to enhance description. Using offline enhancement instead."
)

type BannerKind string

const (
	BannerError   BannerKind = "error"
	BannerSuccess BannerKind = "success"
)

type Banner struct {
	Text string     `json:"text"`
	Kind BannerKind `json:"kind"`
}

// Target names what an enhancement rewrites: the summary, or the
// description of one experience item.
type Target string

const SummaryTarget Target = "summary"

func ExperienceTarget(id string) Target {
	return Target("experience:" + id)
}

type Status string

const (
	StatusIdle     Status = "idle"
	StatusInFlight Status = "in-flight"
)

// UIState is the transient state that never becomes part of the resume.
type UIState struct {
	SkillInput         string            `json:"skillInput"`
	Suggestions        []string          `json:"suggestions"`
	SuggestionsVisible bool              `json:"suggestionsVisible"`
	Enhancing          map[Target]Status `json:"enhancing"`
	Banner             *Banner           `json:"banner"`
	Exporting          bool              `json:"exporting"`
}

// Status reports the enhancement status of a target. Targets without an
// entry are idle.
func (u UIState) Status(t Target) Status {
	if s, ok := u.Enhancing[t]; ok {
		return s
	}
	return StatusIdle
}

func (u UIState) clone() UIState {
	out := u
	out.Suggestions = append([]string{}, u.Suggestions...)
	out.Enhancing = make(map[Target]Status, len(u.Enhancing))
	for k, v := range u.Enhancing {
		out.Enhancing[k] = v
	}
	if u.Banner != nil {
		b := *u.Banner
		out.Banner = &b
	}
	return out
}

// Snapshot is a consistent copy of a controller's two state containers.
type Snapshot struct {
	Resume model.ResumeData `json:"resume"`
	UI     UIState          `json:"ui"`
}
