package utils

import (
	"math/rand"
	"time"
)

// PRNGService 封装带种子的随机数生成器
//
// 整个战斗模拟只从同一个实例取随机数，
// 因此相同的种子和输入序列总能复现相同的战斗过程。
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService 创建随机数服务，seed 为 0 时使用当前时间
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed 返回实际使用的种子，用于记录和回放
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn 返回 [0, n) 的随机整数，n <= 0 时返回 0
func (s *PRNGService) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// IntRange 返回 [min, max] 的随机整数
func (s *PRNGService) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// Float64 返回 [0.0, 1.0) 的随机浮点数
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// FloatRange 返回 [min, max) 的随机浮点数
func (s *PRNGService) FloatRange(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// Chance 以概率 p 返回 true
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Sign 等概率返回 1 或 -1
func (s *PRNGService) Sign() float64 {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
