package testsupport

import "github.com/goliatone/go-fieldbind/pkg/model"

// Player is the minimal container used across binding tests.
type Player struct {
	Name   string
	HP     int `draw:"min=0,max=100"`
	Active bool
}

// Mode is a plain enum fixture.
type Mode int

const (
	ModeIdle Mode = iota
	ModeActive
	ModeBoost
)

func (Mode) EnumMembers() []model.EnumMember {
	return []model.EnumMember{
		{Name: "Idle", Value: int64(ModeIdle)},
		{Name: "Active", Value: int64(ModeActive)},
		{Name: "Boost", Value: int64(ModeBoost)},
	}
}

// Layers is a flags enum fixture; flags have no default widget.
type Layers uint32

func (Layers) EnumMembers() []model.EnumMember {
	return []model.EnumMember{
		{Name: "Ground", Value: 1},
		{Name: "Water", Value: 2},
		{Name: "Air", Value: 4},
	}
}

func (Layers) EnumFlags() bool { return true }

// Texture stands in for a host handle that is not user data.
type Texture struct {
	Path string
}

func (t *Texture) OpaqueName() string { return "Texture(" + t.Path + ")" }
