package ecs

// entityStore tracks entity generations and recycles freed slot ids.
type entityStore struct {
	nextID entityID
	gen    []generation
	free   []entityID
}

func (s *entityStore) create() Entity {
	var id entityID
	if len(s.free) > 0 {
		id = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	} else {
		s.nextID++
		id = s.nextID
		s.gen = append(s.gen, 0)
	}
	return makeEntity(id, s.gen[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gen) || s.gen[id-1] != e.generation() {
		return false
	}
	s.gen[id-1]++
	s.free = append(s.free, id)
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	return id != 0 && int(id) <= len(s.gen) && s.gen[id-1] == e.generation()
}

func (s *entityStore) entityFor(id entityID) Entity {
	return makeEntity(id, s.gen[id-1])
}
