// Package rng содержит источники случайности для игровых движков.
package rng

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand/v2"
	"sync"
)

// Source источник случайности, который получает каждый игровой движок.
// Реализации должны быть безопасны для конкурентного использования.
type Source interface {
	// Bool равновероятный true/false
	Bool() bool
	// IntN равномерное целое в [0, n). Паникует при n <= 0
	IntN(n int) int
	// Float64 равномерное число в [0, 1)
	Float64() float64
}

// cryptoRNG источник по умолчанию, читает crypto/rand
type cryptoRNG struct {
	r io.Reader
}

// NewCrypto возвращает криптостойкий источник. Состояния нет, блокировки не нужны.
func NewCrypto() Source { return cryptoRNG{r: cryptoRand.Reader} }

// Ошибка чтения энтропии фатальна: подмены на некриптостойкий генератор нет
func (c cryptoRNG) uint64() uint64 {
	var buf [8]byte
	if _, err := io.ReadFull(c.r, buf[:]); err != nil {
		panic("rng: crypto/rand: " + err.Error())
	}
	return binary.BigEndian.Uint64(buf[:])
}

func (c cryptoRNG) Bool() bool {
	return c.uint64()&1 == 1
}

func (c cryptoRNG) IntN(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to IntN")
	}
	// Отбрасываем хвост, чтобы не было смещения по модулю
	bound := uint64(n)
	limit := ^uint64(0) - (^uint64(0) % bound)
	for {
		v := c.uint64()
		if v < limit {
			return int(v % bound)
		}
	}
}

func (c cryptoRNG) Float64() float64 {
	// 53 бита => [0, 1)
	return float64(c.uint64()>>11) / (1 << 53)
}

// seededRNG воспроизводимый источник (тесты, реплеи, симуляции RTP)
type seededRNG struct {
	mtx sync.Mutex
	r   *rand.Rand
}

// NewSeeded создает детерминированный PCG-источник
func NewSeeded(seed uint64) Source {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Bool() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.r.IntN(2) == 1
}

func (s *seededRNG) IntN(n int) int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.r.IntN(n)
}

func (s *seededRNG) Float64() float64 {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.r.Float64()
}
