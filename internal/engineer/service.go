package engineer

import (
	"context"
	"log/slog"
)

// QueryService provides read-only access with existence enforcement.
// GetByID is the single funnel that turns an absent id into NotFoundError;
// the command service routes its precondition checks through it.
type QueryService struct {
	repo Repository
}

// NewQueryService creates a QueryService over the given repository.
func NewQueryService(repo Repository) *QueryService {
	return &QueryService{repo: repo}
}

// GetAll returns every stored engineer. Order is unspecified.
func (s *QueryService) GetAll(ctx context.Context) []Engineer {
	engineers := s.repo.List(ctx)
	slog.Debug("fetched engineers", "count", len(engineers))
	return engineers
}

// GetByID returns the engineer with the given id, or a NotFoundError
// carrying the id.
func (s *QueryService) GetByID(ctx context.Context, id int) (Engineer, error) {
	e, ok := s.repo.FindByID(ctx, id)
	if !ok {
		slog.Warn("engineer not found", "id", id)
		return Engineer{}, &NotFoundError{ID: id}
	}
	return e, nil
}

// CommandService orchestrates mutations. Update and Delete resolve the
// target through the query service first, so neither can touch an id that
// was never created.
type CommandService struct {
	query *QueryService
	repo  Repository
}

// NewCommandService creates a CommandService over the given query service
// and repository.
func NewCommandService(query *QueryService, repo Repository) *CommandService {
	return &CommandService{query: query, repo: repo}
}

// Create stores a new engineer and returns it. Fields must already be
// validated; Create itself cannot fail.
func (s *CommandService) Create(ctx context.Context, name string, techStack []string) Engineer {
	e := s.repo.Create(ctx, name, techStack)
	slog.Info("created engineer", "id", e.ID, "name", e.Name)
	return e
}

// Update fully replaces the engineer at id, keeping the id. Returns
// NotFoundError when id was never created, before any mutation happens.
func (s *CommandService) Update(ctx context.Context, id int, name string, techStack []string) error {
	if _, err := s.query.GetByID(ctx, id); err != nil {
		return err
	}
	s.repo.Update(ctx, id, name, techStack)
	slog.Info("updated engineer", "id", id)
	return nil
}

// Delete removes the engineer at id. Returns NotFoundError when id was
// never created.
func (s *CommandService) Delete(ctx context.Context, id int) error {
	if _, err := s.query.GetByID(ctx, id); err != nil {
		return err
	}
	s.repo.Delete(ctx, id)
	slog.Info("deleted engineer", "id", id)
	return nil
}
