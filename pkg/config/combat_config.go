package config

// 战斗配置常量
// 本文件定义了战场尺寸、Boss 状态机节奏和玩家物理参数。
// 原型相关的数值（血量、射速、怒气）见 boss_stats.go，可由 YAML 覆盖。

// Playfield (战场)
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 350

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// ViewportHeight 可活动区域高度，下方为地面
	// 玩家碰撞盒下沿触及此高度即判定坠地
	ViewportHeight = 474.0

	// BossRightMargin Boss 右侧与屏幕边缘的距离
	BossRightMargin = 40.0

	// BossPatrolMargin Boss 巡逻区域上下留白
	BossPatrolMargin = 50.0
)

// Boss state machine (Boss 状态机节奏，单位：模拟步)
const (
	// MaxRage 怒气上限
	MaxRage = 100.0

	// PreUltimateDelay 怒气满后到大招释放的预警时长
	PreUltimateDelay = 60

	// UltimateWarningInterval 预警期间每隔多少步发出一次警告
	UltimateWarningInterval = 10

	// UltimateCooldown 大招结束后的冷却时长，期间不积累怒气
	UltimateCooldown = 180

	// FirstBossPreparation 本局第一个 Boss 的入场准备时长
	FirstBossPreparation = 120

	// LowHealthRatio 低血量阈值（相对最大生命值）
	// 低于此值时受击怒气 +50%，装甲型开始减伤
	LowHealthRatio = 0.5

	// LowHealthRageBonus 低血量时受击怒气的额外倍率
	LowHealthRageBonus = 0.5

	// BossHitFlashSteps 受击闪烁时长
	BossHitFlashSteps = 5

	// ArmoredRefundDivisor 装甲型减伤：返还 damage / 2
	ArmoredRefundDivisor = 2

	// ArmoredFreezePeriod 装甲型移动节奏周期
	ArmoredFreezePeriod = 180

	// ArmoredFreezeSteps 每个周期开头静止的步数
	ArmoredFreezeSteps = 60

	// SplittingSlowFactor 分裂型低于分裂阈值后的速度倍率
	SplittingSlowFactor = 0.5
)

// Cycle (Boss 轮换)
const (
	// BossTransitionSteps 两个 Boss 之间的空场停顿
	BossTransitionSteps = 60

	// CycleHealthBonus 每个完整循环增加的生命值
	CycleHealthBonus = 20

	// CycleFireIntervalStep 每个完整循环缩短的射击间隔
	CycleFireIntervalStep = 5

	// CycleFireIntervalMaxReduction 射击间隔最多缩短的步数
	CycleFireIntervalMaxReduction = 30

	// MinFireInterval 射击间隔下限
	MinFireInterval = 10
)

// Player (玩家)
const (
	// PlayerXRatio 玩家水平位置（相对屏幕宽度）
	PlayerXRatio = 0.2

	// PlayerWidth 玩家碰撞盒宽度
	PlayerWidth = 34.0

	// PlayerHeight 玩家碰撞盒高度
	PlayerHeight = 24.0

	// PlayerInitialVelY 出生时的垂直速度（向上）
	PlayerInitialVelY = -6.0

	// PlayerMaxVelY 下落终端速度
	PlayerMaxVelY = 8.0

	// PlayerGravity 每步重力加速度
	PlayerGravity = 0.8

	// PlayerFlapVel 振翅后的垂直速度
	PlayerFlapVel = -7.0

	// PlayerSpawnGrace 出生保护步数
	PlayerSpawnGrace = 30
)

// Projectile (投射物)
const (
	// BossBulletSize 普通 Boss 子弹尺寸
	BossBulletSize = 12.0

	// ArmoredBulletSize 装甲型重型子弹尺寸
	ArmoredBulletSize = 24.0

	// FireballSize 标准型大招火球尺寸
	FireballSize = 20.0

	// ShockwaveSize 装甲型冲击波尺寸
	ShockwaveSize = 50.0

	// LightningSize 闪电弹碰撞尺寸
	LightningSize = 10.0

	// FragmentSize 分裂碎片尺寸
	FragmentSize = 8.0

	// LightningMaxSteps 闪电弹的最大存活步数（路径未走完时的兜底）
	LightningMaxSteps = 120
)
