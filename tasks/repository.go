// --- tasks/repository.go ---
package tasks

import (
	"errors"
	"time"

	"github.com/emmanuel20-pro/Actividad-3/models"
	"github.com/emmanuel20-pro/Actividad-3/storage"
)

// ErrNotFound is returned when an update targets an id that is absent.
var ErrNotFound = errors.New("task not found")

// Repository provides CRUD over the task collection. Every operation
// re-reads the backing file, so edits made to the file between requests
// are picked up.
type Repository struct {
	store *storage.Collection[models.Task]
}

func NewRepository(store *storage.Collection[models.Task]) *Repository {
	return &Repository{store: store}
}

// List returns the full collection in insertion order.
func (r *Repository) List() []models.Task {
	tasks := r.store.Load()
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks
}

// Create appends a new task. Ids derive from the creation timestamp in
// milliseconds; tasks created within the same millisecond would collide,
// so the id is bumped until it is free within the collection.
func (r *Repository) Create(title, description string) (models.Task, error) {
	var created models.Task
	err := r.store.Update(func(records []models.Task) ([]models.Task, error) {
		id := time.Now().UnixMilli()
		for idTaken(records, id) {
			id++
		}
		created = models.Task{ID: id, Title: title, Description: description}
		return append(records, created), nil
	})
	if err != nil {
		return models.Task{}, err
	}
	return created, nil
}

// Update replaces title and description of the task with the given id,
// keeping the id. Returns ErrNotFound, leaving the collection untouched,
// if the id is absent.
func (r *Repository) Update(id int64, title, description string) (models.Task, error) {
	var updated models.Task
	err := r.store.Update(func(records []models.Task) ([]models.Task, error) {
		for i := range records {
			if records[i].ID == id {
				records[i].Title = title
				records[i].Description = description
				updated = records[i]
				return records, nil
			}
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return models.Task{}, err
	}
	return updated, nil
}

// Delete removes every task with the given id. Deleting an absent id is
// a successful no-op.
func (r *Repository) Delete(id int64) error {
	return r.store.Update(func(records []models.Task) ([]models.Task, error) {
		kept := make([]models.Task, 0, len(records))
		for _, t := range records {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		return kept, nil
	})
}

func idTaken(records []models.Task, id int64) bool {
	for _, t := range records {
		if t.ID == id {
			return true
		}
	}
	return false
}
