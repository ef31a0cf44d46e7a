package cli

import (
	"fmt"
	"strings"

	"github.com/tarefa-app/tarefa/internal/app"
	"github.com/tarefa-app/tarefa/internal/domain"
)

// resolveTaskID expands a full or prefixed task ID to the stored ID.
// Prefixes must be unambiguous.
func resolveTaskID(c *app.Container, ref string) (string, error) {
	if ref == "" {
		return "", domain.ErrTaskNotFound
	}

	// Fast path: exact ID.
	task, err := c.Tasks.Get(ref)
	if err != nil {
		return "", err
	}
	if task != nil {
		return ref, nil
	}

	all, err := c.Tasks.List(domain.TaskFilter{})
	if err != nil {
		return "", err
	}

	var matches []string
	for _, t := range all {
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", domain.ErrTaskNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous task ID %q matches %d tasks", ref, len(matches))
	}
}
