package rng

import "sync"

// Script заранее заданные значения для каждого вида запроса.
// Значения возвращаются по порядку, после исчерпания возвращается нулевое значение.
type Script struct {
	Bools  []bool
	Ints   []int
	Floats []float64
}

type scriptedRNG struct {
	mtx    sync.Mutex
	script Script
}

// NewScripted возвращает источник, проигрывающий Script. Нужен, чтобы форсировать исход раунда.
// Значение из Ints берется по модулю n, чтобы результат всегда был в [0, n).
func NewScripted(script Script) Source {
	return &scriptedRNG{script: script}
}

func (s *scriptedRNG) Bool() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if len(s.script.Bools) == 0 {
		return false
	}
	v := s.script.Bools[0]
	s.script.Bools = s.script.Bools[1:]
	return v
}

func (s *scriptedRNG) IntN(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to IntN")
	}
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if len(s.script.Ints) == 0 {
		return 0
	}
	v := s.script.Ints[0]
	s.script.Ints = s.script.Ints[1:]
	return ((v % n) + n) % n
}

func (s *scriptedRNG) Float64() float64 {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if len(s.script.Floats) == 0 {
		return 0
	}
	v := s.script.Floats[0]
	s.script.Floats = s.script.Floats[1:]
	return v
}
