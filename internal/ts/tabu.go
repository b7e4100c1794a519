package ts

// tabuList - табу-список в виде кольцевого буфера фиксированного размера
// с map для быстрой проверки табуированности.
type tabuList struct {
	m   map[uint64]int // ключ → итерация истечения табу
	key []uint64
	exp []int
	i   int
}

func newTabuList(capacity int) *tabuList {
	if capacity < 8 {
		capacity = 8
	}
	return &tabuList{
		m:   make(map[uint64]int, capacity*2),
		key: make([]uint64, capacity),
		exp: make([]int, capacity),
	}
}

// IsTabu проверяет, запрещён ли ход на итерации iter.
func (t *tabuList) IsTabu(k uint64, iter int) bool {
	exp, ok := t.m[k]
	return ok && exp > iter
}

// Add запрещает ход до итерации expiry, вытесняя самый старый элемент кольца.
func (t *tabuList) Add(k uint64, expiry int) {
	if oldK := t.key[t.i]; oldK != 0 {
		if curExp, ok := t.m[oldK]; ok && curExp == t.exp[t.i] {
			delete(t.m, oldK)
		}
	}

	t.key[t.i] = k
	t.exp[t.i] = expiry
	t.m[k] = expiry

	t.i++
	if t.i >= len(t.key) {
		t.i = 0
	}
}

// moveKey кодирует ход (работа, откуда, куда). Нулевой ключ не используется:
// работа сдвинута на единицу.
func moveKey(job, from, to int) uint64 {
	return (uint64(uint32(job+1)) << 42) |
		(uint64(uint32(from)) << 21) |
		uint64(uint32(to))
}

func applySwap(p []int, i, j int) {
	p[i], p[j] = p[j], p[i]
}

// applyInsert переносит элемент из позиции from в позицию to.
func applyInsert(p []int, from, to int) {
	if from == to {
		return
	}
	val := p[from]
	if from < to {
		copy(p[from:to], p[from+1:to+1])
		p[to] = val
		return
	}
	copy(p[to+1:from+1], p[to:from])
	p[to] = val
}
