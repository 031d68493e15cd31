package blueprints

import "github.com/temirov/webapp/internal/blueprints/hello"

// Default lists the blueprints served by the application. New route groups are
// added here explicitly.
func Default() []Blueprint {
	return []Blueprint{
		{Name: hello.BlueprintName, Register: hello.RegisterRoutes},
	}
}
