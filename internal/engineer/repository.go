package engineer

import (
	"context"
	"errors"
	"fmt"
)

// ErrEngineerNotFound is the match target for errors.Is checks against
// NotFoundError values.
var ErrEngineerNotFound = errors.New("engineer not found")

// NotFoundError reports that no engineer exists for the given id.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no engineer with id: %d", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrEngineerNotFound
}

// Repository is the sole authority over engineer storage and id assignment.
//
// FindByID signals absence with the boolean, not an error; deciding how to
// react to a missing engineer is the caller's job. Update is an
// unconditional upsert: it does not check that id exists, and inserts
// silently if it does not. Existence enforcement before mutation belongs to
// the command service.
type Repository interface {
	// Create assigns the next id, stores an engineer built from name and
	// techStack, and returns the stored value. Ids strictly increase and
	// are never reused, even after Delete or DeleteAll.
	Create(ctx context.Context, name string, techStack []string) Engineer

	// FindByID looks up an engineer. The boolean is false when no engineer
	// has the given id.
	FindByID(ctx context.Context, id int) (Engineer, bool)

	// List returns all stored engineers. Order is unspecified.
	List(ctx context.Context) []Engineer

	// Update replaces the entry at id with an engineer built from name and
	// techStack, keeping id. Upserts when id is absent.
	Update(ctx context.Context, id int, name string, techStack []string) Engineer

	// Delete removes the entry at id. Removing an absent id is a no-op.
	Delete(ctx context.Context, id int)

	// DeleteAll empties the store without resetting the id counter.
	// Reset hook for tests and demo tooling; not exposed over HTTP.
	DeleteAll(ctx context.Context)
}
