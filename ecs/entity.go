package ecs

import "strconv"

// Entity is a generational handle. The low 32 bits index a slot and the high
// 32 bits hold the slot generation the handle was issued with.
type Entity uint64

// NilEntity is never issued by a World.
const NilEntity Entity = 0

const entityIndexBits = 32

func makeEntity(index, gen uint32) Entity {
	return Entity(uint64(gen)<<entityIndexBits | uint64(index))
}

// Index returns the slot index of the entity
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation the handle was created with
func (e Entity) Generation() uint32 {
	return uint32(uint64(e) >> entityIndexBits)
}

// Valid reports whether the handle is non-zero
func (e Entity) Valid() bool {
	return e != NilEntity
}

func (e Entity) String() string {
	if e.Generation() == 0 {
		return strconv.FormatUint(uint64(e.Index()), 10)
	}
	return strconv.FormatUint(uint64(e.Index()), 10) + "v" + strconv.FormatUint(uint64(e.Generation()), 10)
}

// entityStore tracks slot generations and recycled slots.
type entityStore struct {
	gen   []uint32
	free  []uint32
	alive int
}

func (s *entityStore) create() Entity {
	var index uint32
	if n := len(s.free); n > 0 {
		index = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gen = append(s.gen, 0)
		index = uint32(len(s.gen))
	}
	s.alive++
	return makeEntity(index, s.gen[index-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	s.gen[e.Index()-1]++
	s.free = append(s.free, e.Index())
	s.alive--
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	idx := e.Index()
	if idx == 0 || int(idx) > len(s.gen) {
		return false
	}
	return s.gen[idx-1] == e.Generation()
}
