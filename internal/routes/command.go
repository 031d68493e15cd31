package routes

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const (
	routesCommandUseConstant                = "routes"
	routesCommandShortDescriptionConstant   = "List the registered HTTP routes"
	routesCommandLongDescriptionConstant    = "routes prints one line per registered route with its method, path and handler, sorted by path."
	routeLineTemplateConstant               = "%s %s %s\n"
	unexpectedArgumentsErrorMessageConstant = "routes does not accept positional arguments"
	routesProviderMissingMessageConstant    = "routes provider not configured"
)

// RoutesProvider returns the routes registered on the application router.
type RoutesProvider func() gin.RoutesInfo

// CommandBuilder assembles the routes command.
type CommandBuilder struct {
	RoutesProvider RoutesProvider
}

// Build constructs the routes command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	if builder.RoutesProvider == nil {
		return nil, errors.New(routesProviderMissingMessageConstant)
	}

	return &cobra.Command{
		Use:   routesCommandUseConstant,
		Short: routesCommandShortDescriptionConstant,
		Long:  routesCommandLongDescriptionConstant,
		RunE:  builder.run,
	}, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errors.New(unexpectedArgumentsErrorMessageConstant)
	}

	for _, route := range SortRoutes(builder.RoutesProvider()) {
		if _, writeError := fmt.Fprintf(command.OutOrStdout(), routeLineTemplateConstant, route.Method, route.Path, route.Handler); writeError != nil {
			return writeError
		}
	}
	return nil
}

// SortRoutes returns a copy of routes ordered by path, then method.
func SortRoutes(routes gin.RoutesInfo) gin.RoutesInfo {
	sortedRoutes := make(gin.RoutesInfo, len(routes))
	copy(sortedRoutes, routes)
	sort.SliceStable(sortedRoutes, func(leftIndex int, rightIndex int) bool {
		if sortedRoutes[leftIndex].Path != sortedRoutes[rightIndex].Path {
			return sortedRoutes[leftIndex].Path < sortedRoutes[rightIndex].Path
		}
		return sortedRoutes[leftIndex].Method < sortedRoutes[rightIndex].Method
	})
	return sortedRoutes
}
