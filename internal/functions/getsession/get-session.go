package getsession

import (
	"context"
	"net/http"

	"github.com/drinkgo/drinkgo-backend/internal/auth"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	"github.com/drinkgo/drinkgo-backend/internal/session"
	httputils "github.com/drinkgo/drinkgo-backend/internal/utils/http"
	v1 "github.com/drinkgo/drinkgo-backend/pkg/api/v1"
)

//GetSession Derives the unified session from the optional user/empresa ID tokens. An
//unverifiable token counts as that sub-session being signed out, it is not an error.
func GetSession(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	logger := logging.FromContext(ctx)
	authClient := auth.Client{}

	var request v1.GetSessionRequest

	if !httputils.DecodeJSONOrReportError(w, r, &request) {
		return
	}

	userState := stateFromToken(ctx, authClient, request.UserIDToken)
	empresaState := stateFromToken(ctx, authClient, request.EmpresaIDToken)

	resolved := session.Resolve(userState, empresaState)

	logger.Debugf("Resolved session type %v", resolved.Type)

	httputils.SendResponse(w, r, v1.GetSessionResponse{
		UserType:        string(resolved.Type),
		IsAuthenticated: resolved.IsAuthenticated(),
		UID:             resolved.UID,
		DisplayName:     resolved.DisplayName,
		Email:           resolved.Email,
	})
}

func stateFromToken(ctx context.Context, authClient auth.Auther, idToken string) session.AuthState {
	logger := logging.FromContext(ctx)

	if idToken == "" {
		return session.AuthState{}
	}

	info, err := authClient.TokenInfo(ctx, idToken)
	if err != nil {
		logger.Debugf("Unverifiable token provided: %v", err)
		return session.AuthState{}
	}

	return session.AuthState{
		Authenticated: true,
		UID:           info.UID,
		DisplayName:   info.Name,
		Email:         info.Email,
	}
}
