package main

import "github.com/goliatone/go-fieldbind/pkg/model"

// Quality picks a render preset.
type Quality int

const (
	QualityLow Quality = iota
	QualityMedium
	QualityHigh
)

func (Quality) EnumMembers() []model.EnumMember {
	return []model.EnumMember{
		{Name: "Low", Value: int64(QualityLow)},
		{Name: "Medium", Value: int64(QualityMedium)},
		{Name: "High", Value: int64(QualityHigh)},
	}
}

// Settings is the sample value the demo binds.
type Settings struct {
	Player  string  `json:"player" draw:"label=Player name,maxlen=16"`
	Volume  float32 `json:"volume" range:"0,1" header:"Audio"`
	Muted   bool    `json:"muted"`
	Quality Quality `json:"quality" draw:"kind=togglegroup" header:"Video" space:"8"`
	// Custom only shows while Quality is High.
	Custom Video         `json:"custom" draw:"collapsible,visibleOn=Quality|High"`
	Spawn  model.Vector3 `json:"spawn" header:"World"`
	Tint   model.Color   `json:"tint"`
	Seeds  []int         `json:"seeds" draw:"min=0,max=999"`
	Secret string        `json:"-"`
}

// Video groups advanced options.
type Video struct {
	FOV     float64 `json:"fov" draw:"kind=slider,min=60,max=120,precision=0"`
	VSync   bool    `json:"vsync"`
	Shadows int     `json:"shadows" range:"0,4"`
}

func defaultSettings() Settings {
	return Settings{
		Player:  "player-one",
		Volume:  0.8,
		Quality: QualityMedium,
		Custom:  Video{FOV: 90, VSync: true, Shadows: 2},
		Tint:    model.Color{R: 1, G: 1, B: 1, A: 1},
		Seeds:   []int{7},
	}
}
