package visibility

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// Tabler is the subset of a gorm model the registry needs: a stable table
// name to key filters on.
type Tabler interface {
	TableName() string
}

// Filter narrows a query to the rows visible for one concern (soft delete,
// tenant scope, ...). Filters must consult ambient state such as the tenant
// scope through ctx at call time, never capture it at registration time —
// the registry is built once at startup while the scope changes per request.
type Filter func(ctx context.Context, db *gorm.DB) *gorm.DB

type registration struct {
	name   string
	filter Filter
}

// Registry holds the visibility filters registered per entity type and
// applies their conjunction to every query. Registration happens at startup
// and is then frozen; frozen registries are safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	frozen  bool
	filters map[string][]registration
}

func NewRegistry() *Registry {
	return &Registry{
		filters: map[string][]registration{},
	}
}

// Register adds a named filter for the model's entity type. Registering two
// filters under the same name for one entity type, or registering after
// Freeze, is a programmer error and panics so it surfaces at startup.
func (r *Registry) Register(model Tabler, name string, filter Filter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		panic(fmt.Sprintf("visibility: Register(%q, %q) after Freeze", model.TableName(), name))
	}

	table := model.TableName()
	for _, existing := range r.filters[table] {
		if existing.name == name {
			panic(fmt.Sprintf("visibility: duplicate filter %q for %q", name, table))
		}
	}

	r.filters[table] = append(r.filters[table], registration{name: name, filter: filter})
}

// Freeze marks registration complete. Reads after Freeze take no lock.
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// Scoped applies every filter registered for the model to db, ANDed
// together. Conjunction makes the application order irrelevant. Entity
// types with no registered filters pass through unrestricted.
func (r *Registry) Scoped(ctx context.Context, db *gorm.DB, model Tabler) *gorm.DB {
	if !r.frozen {
		r.mu.Lock()
		defer r.mu.Unlock()
	}

	for _, reg := range r.filters[model.TableName()] {
		db = reg.filter(ctx, db)
	}
	return db
}
