// Copyright 2025 go-vfunc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ecs

import (
	"fmt"
	"reflect"
)

const absent = -1

// sparseSet stores one component type. sparse maps an entity slot to its
// position in the dense arrays, or absent.
type sparseSet[T any] struct {
	sparse   []int32
	entities []Entity
	values   []T
}

func (p *sparseSet[T]) lookup(index uint32) int {
	if int(index) >= len(p.sparse) {
		return absent
	}
	return int(p.sparse[index])
}

func (p *sparseSet[T]) set(e Entity, c T) {
	idx := e.Index()
	if i := p.lookup(idx); i != absent {
		p.values[i] = c
		return
	}
	for int(idx) >= len(p.sparse) {
		p.sparse = append(p.sparse, absent)
	}
	p.sparse[idx] = int32(len(p.values))
	p.entities = append(p.entities, e)
	p.values = append(p.values, c)
}

// remove swaps the last dense element into the hole.
func (p *sparseSet[T]) remove(index uint32) bool {
	i := p.lookup(index)
	if i == absent {
		return false
	}
	last := len(p.values) - 1
	if i != last {
		p.values[i] = p.values[last]
		p.entities[i] = p.entities[last]
		p.sparse[p.entities[i].Index()] = int32(i)
	}
	var zero T
	p.values[last] = zero
	p.values = p.values[:last]
	p.entities = p.entities[:last]
	p.sparse[index] = absent
	return true
}

func poolOf[T any](s *Store, create bool) *sparseSet[T] {
	key := reflect.TypeFor[T]()
	if p, ok := s.pools[key]; ok {
		return p.(*sparseSet[T])
	}
	if !create {
		return nil
	}
	p := &sparseSet[T]{}
	s.pools[key] = p
	return p
}

// AddComponent attaches c to e, replacing any existing component of the
// same type.
func AddComponent[T any](s *Store, e Entity, c T) error {
	if !s.Alive(e) {
		return fmt.Errorf("ecs.AddComponent[%v]: %v: %w", reflect.TypeFor[T](), e, ErrDeadEntity)
	}
	poolOf[T](s, true).set(e, c)
	return nil
}

// GetComponent returns a pointer to e's component of type T. The pointer
// is invalidated by the next add or remove of a T component.
func GetComponent[T any](s *Store, e Entity) (*T, bool) {
	if !s.Alive(e) {
		return nil, false
	}
	p := poolOf[T](s, false)
	if p == nil {
		return nil, false
	}
	i := p.lookup(e.Index())
	if i == absent {
		return nil, false
	}
	return &p.values[i], true
}

// RemoveComponent detaches e's component of type T and reports whether
// there was one.
func RemoveComponent[T any](s *Store, e Entity) bool {
	if !s.Alive(e) {
		return false
	}
	p := poolOf[T](s, false)
	return p != nil && p.remove(e.Index())
}

// ViewComponents returns the dense arrays of every T component and its
// owner: values[i] belongs to entities[i]. Both alias the store, so values
// may be modified in place; adding or removing a T invalidates them.
func ViewComponents[T any](s *Store) (entities []Entity, values []T) {
	p := poolOf[T](s, false)
	if p == nil {
		return nil, nil
	}
	return p.entities, p.values
}
