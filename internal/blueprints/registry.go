package blueprints

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	registrySealedMessageConstant            = "blueprints already registered"
	blueprintNameMissingMessageConstant      = "blueprint name must not be empty"
	blueprintRegisterMissingTemplateConstant = "blueprint %q has no route registration function"
	duplicateBlueprintTemplateConstant       = "blueprint %q registered more than once"
	routerMissingMessageConstant             = "router not configured"
)

// ErrRegistrySealed indicates RegisterAll was invoked after a previous registration pass.
var ErrRegistrySealed = errors.New(registrySealedMessageConstant)

// ErrBlueprintNameMissing indicates a blueprint without a name.
var ErrBlueprintNameMissing = errors.New(blueprintNameMissingMessageConstant)

// ErrRouterMissing indicates RegisterAll received a nil router.
var ErrRouterMissing = errors.New(routerMissingMessageConstant)

// DuplicateBlueprintError reports a blueprint name that appears twice.
type DuplicateBlueprintError struct {
	Name string
}

// Error describes the duplicate blueprint.
func (duplicateError DuplicateBlueprintError) Error() string {
	return fmt.Sprintf(duplicateBlueprintTemplateConstant, duplicateError.Name)
}

// Blueprint is a named group of routes attached to the application router.
type Blueprint struct {
	Name     string
	Register func(router gin.IRouter)
}

// Registry attaches blueprints to a router exactly once.
type Registry struct {
	mutex           sync.Mutex
	sealed          bool
	registeredNames []string
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterAll validates every blueprint and then attaches them to router in order.
// Nothing is registered when validation fails. The registry is sealed after the
// first call, successful or not.
func (registry *Registry) RegisterAll(router gin.IRouter, blueprints []Blueprint) error {
	registry.mutex.Lock()
	defer registry.mutex.Unlock()

	if registry.sealed {
		return ErrRegistrySealed
	}
	registry.sealed = true

	if router == nil {
		return ErrRouterMissing
	}

	seenNames := make(map[string]struct{}, len(blueprints))
	for _, blueprint := range blueprints {
		blueprintName := strings.TrimSpace(blueprint.Name)
		if len(blueprintName) == 0 {
			return ErrBlueprintNameMissing
		}
		if blueprint.Register == nil {
			return fmt.Errorf(blueprintRegisterMissingTemplateConstant, blueprintName)
		}
		if _, seen := seenNames[blueprintName]; seen {
			return DuplicateBlueprintError{Name: blueprintName}
		}
		seenNames[blueprintName] = struct{}{}
	}

	for _, blueprint := range blueprints {
		blueprint.Register(router)
		registry.registeredNames = append(registry.registeredNames, strings.TrimSpace(blueprint.Name))
	}

	return nil
}

// Names returns the registered blueprint names in registration order.
func (registry *Registry) Names() []string {
	registry.mutex.Lock()
	defer registry.mutex.Unlock()

	return append([]string(nil), registry.registeredNames...)
}
