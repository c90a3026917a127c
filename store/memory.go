package store

import "fmt"

// tagValue is the sentinel stored for components attached via AddTag.
type tagValue struct{}

// Memory is a map-backed Store. It implements the full hook contract
// and is what the tests and example programs run against. It is not
// synchronized, use it from a single goroutine.
type Memory struct {
	entitySeq    EntityId
	componentSeq ComponentId

	entities map[EntityId]map[ComponentId]any

	onAdd    map[ComponentId][]func(EntityId)
	onRemove map[ComponentId][]func(EntityId)
	onSet    map[ComponentId][]func(EntityId, any)
}

var _ Store = &Memory{}

func NewMemory() *Memory {
	return &Memory{
		entities: map[EntityId]map[ComponentId]any{},
		onAdd:    map[ComponentId][]func(EntityId){},
		onRemove: map[ComponentId][]func(EntityId){},
		onSet:    map[ComponentId][]func(EntityId, any){},
	}
}

func (m *Memory) NewEntity() EntityId {
	m.entitySeq += 1
	entity := m.entitySeq

	m.entities[entity] = map[ComponentId]any{}
	return entity
}

func (m *Memory) DeleteEntity(entity EntityId) {
	components, ok := m.entities[entity]
	if !ok {
		return
	}

	// remove the entity first so that hooks observe it as gone
	delete(m.entities, entity)

	for component := range components {
		m.fireRemove(component, entity)
	}
}

func (m *Memory) NewComponentId() ComponentId {
	m.componentSeq += 1
	return m.componentSeq
}

func (m *Memory) Set(entity EntityId, component ComponentId, value any) {
	components := m.componentsOf(entity)

	_, existed := components[component]
	components[component] = value

	if !existed {
		m.fireAdd(component, entity)
	}

	m.fireSet(component, entity, value)
}

func (m *Memory) Get(entity EntityId, component ComponentId) (any, bool) {
	value, ok := m.entities[entity][component]
	if !ok {
		return nil, false
	}

	if _, isTag := value.(tagValue); isTag {
		// tags have no payload
		return nil, false
	}

	return value, true
}

func (m *Memory) AddTag(entity EntityId, component ComponentId) {
	components := m.componentsOf(entity)

	if _, existed := components[component]; existed {
		return
	}

	components[component] = tagValue{}
	m.fireAdd(component, entity)
}

func (m *Memory) Remove(entity EntityId, component ComponentId) {
	components, ok := m.entities[entity]
	if !ok {
		return
	}

	if _, existed := components[component]; !existed {
		return
	}

	delete(components, component)
	m.fireRemove(component, entity)
}

func (m *Memory) Has(entity EntityId, component ComponentId) bool {
	_, ok := m.entities[entity][component]
	return ok
}

func (m *Memory) OnAdd(component ComponentId, fn func(EntityId)) {
	m.onAdd[component] = append(m.onAdd[component], fn)
}

func (m *Memory) OnRemove(component ComponentId, fn func(EntityId)) {
	m.onRemove[component] = append(m.onRemove[component], fn)
}

func (m *Memory) OnSet(component ComponentId, fn func(EntityId, any)) {
	m.onSet[component] = append(m.onSet[component], fn)
}

func (m *Memory) componentsOf(entity EntityId) map[ComponentId]any {
	components, ok := m.entities[entity]
	if !ok {
		panic(fmt.Sprintf("entity %s does not exist", entity))
	}

	return components
}

func (m *Memory) fireAdd(component ComponentId, entity EntityId) {
	for _, fn := range m.onAdd[component] {
		fn(entity)
	}
}

func (m *Memory) fireRemove(component ComponentId, entity EntityId) {
	for _, fn := range m.onRemove[component] {
		fn(entity)
	}
}

func (m *Memory) fireSet(component ComponentId, entity EntityId, value any) {
	for _, fn := range m.onSet[component] {
		fn(entity, value)
	}
}
