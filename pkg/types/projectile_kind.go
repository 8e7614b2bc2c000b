package types

// ProjectileKind 标识投射物的外观类别，仅供渲染层区分绘制方式
type ProjectileKind int

const (
	ProjectileBullet ProjectileKind = iota
	ProjectileHeavyBullet
	ProjectileSplitter
	ProjectileFragment
	ProjectileFireball
	ProjectileLightning
	ProjectileShockwave
	ProjectilePlayerShot
	ProjectileBeam
	ProjectileMissile
)

// String 返回投射物类别名称
func (k ProjectileKind) String() string {
	switch k {
	case ProjectileBullet:
		return "bullet"
	case ProjectileHeavyBullet:
		return "heavy_bullet"
	case ProjectileSplitter:
		return "splitter"
	case ProjectileFragment:
		return "fragment"
	case ProjectileFireball:
		return "fireball"
	case ProjectileLightning:
		return "lightning"
	case ProjectileShockwave:
		return "shockwave"
	case ProjectilePlayerShot:
		return "player_shot"
	case ProjectileBeam:
		return "beam"
	case ProjectileMissile:
		return "missile"
	default:
		return "unknown"
	}
}
