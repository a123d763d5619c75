package ports

import "github.com/renato0307/hackcheck/internal/domain"

// FixtureMaterializer copies fixture templates into disposable directories
type FixtureMaterializer interface {
	Materialize(modelID string) (*domain.MaterializedProject, error)
}
