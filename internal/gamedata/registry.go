package gamedata

import "errors"

// SceneRegistry holds loaded scene definitions and provides lookup.
type SceneRegistry struct {
	scenes map[string]*SceneDef
	all    []SceneDef
}

// NewSceneRegistry creates a registry from loaded scene definitions.
func NewSceneRegistry(scenes []SceneDef) *SceneRegistry {
	registry := &SceneRegistry{
		scenes: make(map[string]*SceneDef),
		all:    scenes,
	}
	for i := range scenes {
		registry.scenes[scenes[i].ID] = &scenes[i]
	}
	return registry
}

// LoadSceneRegistry loads and creates a registry from the embedded
// scenes.json.
func LoadSceneRegistry() (*SceneRegistry, error) {
	scenes, err := LoadScenes()
	if err != nil {
		return nil, err
	}
	if len(scenes) == 0 {
		return nil, errors.New("no scenes loaded from scenes.json")
	}
	return NewSceneRegistry(scenes), nil
}

// MustLoadSceneRegistry loads a registry, panicking on error.
func MustLoadSceneRegistry() *SceneRegistry {
	registry, err := LoadSceneRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the scene with the given ID, or nil if not found.
func (r *SceneRegistry) GetByID(id string) *SceneDef {
	return r.scenes[id]
}

// All returns all scene definitions.
func (r *SceneRegistry) All() []SceneDef {
	return r.all
}

// Count returns the number of scenes in the registry.
func (r *SceneRegistry) Count() int {
	return len(r.all)
}
