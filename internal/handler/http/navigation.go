package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/storelinehq/admin-gateway-go/internal/domain/navigation"
	"github.com/storelinehq/admin-gateway-go/internal/domain/user"
	"github.com/storelinehq/admin-gateway-go/internal/handler/http/middleware"
	"github.com/storelinehq/admin-gateway-go/internal/handler/http/response"
)

type NavigationHandler interface {
	Menu(w http.ResponseWriter, r *http.Request)
}

type NavigationHandlerImpl struct{}

func NewNavigationHandler() NavigationHandler {
	return &NavigationHandlerImpl{}
}

// Menu implements NavigationHandler. The sidebar is filtered by the role in
// the access token; subadmins never see the admin-only entries.
func (h *NavigationHandlerImpl) Menu(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, user.ErrUnknownRole)
		return
	}

	role, err := middleware.RoleFromClaims(claims)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, navigation.MenuFor(role))
}
