package tags

import "github.com/yohamta/donburi"

var (
	Stage = donburi.NewTag().SetName("Stage")
)
