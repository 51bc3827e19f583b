// Package ecs is a small entity/component store. Each component type lives
// in its own sparse set: a dense array of values with a parallel array of
// owning entities, so a system can hand a whole component column to a geom
// or kernel routine without gathering.
//
//	s := ecs.NewStore()
//	e := s.CreateEntity()
//	ecs.AddComponent(s, e, geom.V3(1, 2, 3))
//
//	_, positions := ecs.ViewComponents[geom.Vec3](s)
//	geom.TransformPoints(positions, positions, model)
//
// A Store is not safe for concurrent mutation.
package ecs

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrDeadEntity is returned when a component is attached to an entity that
// was never created or has been destroyed.
var ErrDeadEntity = errors.New("ecs: dead entity")

// Entity is a generational handle: the low 32 bits index a slot and the
// high 32 bits count how many times the slot has been reused. A handle to
// a destroyed entity never matches the slot's new occupant.
type Entity uint64

func newEntity(index, gen uint32) Entity {
	return Entity(uint64(gen)<<32 | uint64(index))
}

// Index returns the slot of e.
func (e Entity) Index() uint32 { return uint32(e) }

// Generation returns the reuse count of e's slot when e was created.
func (e Entity) Generation() uint32 { return uint32(e >> 32) }

func (e Entity) String() string {
	return fmt.Sprintf("e%d.%d", e.Index(), e.Generation())
}

type pool interface {
	remove(index uint32) bool
}

// Store owns entities and their component pools.
type Store struct {
	generations []uint32
	alive       []bool
	free        []uint32
	count       int
	pools       map[reflect.Type]pool
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{pools: make(map[reflect.Type]pool)}
}

// CreateEntity returns a new live entity, reusing a destroyed slot when
// one is free.
func (s *Store) CreateEntity() Entity {
	s.count++
	if n := len(s.free); n > 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]
		s.alive[idx] = true
		return newEntity(idx, s.generations[idx])
	}
	idx := uint32(len(s.generations))
	s.generations = append(s.generations, 0)
	s.alive = append(s.alive, true)
	return newEntity(idx, 0)
}

// Alive reports whether e refers to a live entity.
func (s *Store) Alive(e Entity) bool {
	idx := e.Index()
	return int(idx) < len(s.generations) && s.alive[idx] && s.generations[idx] == e.Generation()
}

// DestroyEntity removes e and all of its components. It returns false if
// e was already dead.
func (s *Store) DestroyEntity(e Entity) bool {
	if !s.Alive(e) {
		return false
	}
	idx := e.Index()
	for _, p := range s.pools {
		p.remove(idx)
	}
	s.alive[idx] = false
	s.generations[idx]++
	s.free = append(s.free, idx)
	s.count--
	return true
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return s.count
}
