package blueprints_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/temirov/webapp/internal/blueprints"
)

func staticBlueprint(name string, path string, body string) blueprints.Blueprint {
	return blueprints.Blueprint{
		Name: name,
		Register: func(router gin.IRouter) {
			router.GET(path, func(requestContext *gin.Context) {
				requestContext.String(http.StatusOK, body)
			})
		},
	}
}

func TestRegistryRegisterAll(testInstance *testing.T) {
	testCases := []struct {
		name          string
		blueprints    []blueprints.Blueprint
		expectedNames []string
		expectedError error
		errorSample   any
	}{
		{
			name: "registers_in_order",
			blueprints: []blueprints.Blueprint{
				staticBlueprint("main", "/", "root"),
				staticBlueprint("status", "/status", "up"),
			},
			expectedNames: []string{"main", "status"},
		},
		{
			name:          "empty_list",
			blueprints:    nil,
			expectedNames: []string{},
		},
		{
			name: "duplicate_name",
			blueprints: []blueprints.Blueprint{
				staticBlueprint("main", "/", "root"),
				staticBlueprint(" main ", "/other", "other"),
			},
			errorSample:   blueprints.DuplicateBlueprintError{},
			expectedNames: []string{},
		},
		{
			name:          "missing_name",
			blueprints:    []blueprints.Blueprint{staticBlueprint("  ", "/", "root")},
			expectedError: blueprints.ErrBlueprintNameMissing,
			expectedNames: []string{},
		},
		{
			name:          "missing_register_function",
			blueprints:    []blueprints.Blueprint{{Name: "broken"}},
			expectedNames: []string{},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			registry := blueprints.NewRegistry()

			registrationError := registry.RegisterAll(router, testCase.blueprints)

			switch {
			case testCase.expectedError != nil:
				require.ErrorIs(testInstance, registrationError, testCase.expectedError)
			case testCase.errorSample != nil:
				var duplicateError blueprints.DuplicateBlueprintError
				require.ErrorAs(testInstance, registrationError, &duplicateError)
				require.Equal(testInstance, "main", duplicateError.Name)
			case testCase.name == "missing_register_function":
				require.EqualError(testInstance, registrationError, `blueprint "broken" has no route registration function`)
			default:
				require.NoError(testInstance, registrationError)
			}

			require.ElementsMatch(testInstance, testCase.expectedNames, registry.Names())
			if registrationError != nil {
				require.Empty(testInstance, router.Routes())
			}
		})
	}
}

func TestRegistryRejectsSecondRegistration(testInstance *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	registry := blueprints.NewRegistry()

	require.NoError(testInstance, registry.RegisterAll(router, []blueprints.Blueprint{staticBlueprint("main", "/", "root")}))
	require.ErrorIs(testInstance, registry.RegisterAll(router, []blueprints.Blueprint{staticBlueprint("status", "/status", "up")}), blueprints.ErrRegistrySealed)
	require.Equal(testInstance, []string{"main"}, registry.Names())
	require.Len(testInstance, router.Routes(), 1)
}

func TestRegistryRejectsMissingRouter(testInstance *testing.T) {
	registry := blueprints.NewRegistry()

	require.ErrorIs(testInstance, registry.RegisterAll(nil, blueprints.Default()), blueprints.ErrRouterMissing)
}

func TestDefaultBlueprintsServeGreeting(testInstance *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	registry := blueprints.NewRegistry()

	require.NoError(testInstance, registry.RegisterAll(router, blueprints.Default()))
	require.Equal(testInstance, []string{"main"}, registry.Names())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(testInstance, http.StatusOK, recorder.Code)
	require.Equal(testInstance, "Hello World!", recorder.Body.String())
}
