package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Ball        = donburi.NewTag().SetName("Ball")
	PlayerScore = donburi.NewTag().SetName("PlayerScore")
	EnemyScore  = donburi.NewTag().SetName("EnemyScore")
)
