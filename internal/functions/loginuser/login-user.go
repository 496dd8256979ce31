package loginuser

import (
	"context"
	"fmt"
	"net/http"

	"github.com/drinkgo/drinkgo-backend/internal/auth"
	"github.com/drinkgo/drinkgo-backend/internal/constants"
	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	"github.com/drinkgo/drinkgo-backend/internal/store"
	httputils "github.com/drinkgo/drinkgo-backend/internal/utils/http"
	v1 "github.com/drinkgo/drinkgo-backend/pkg/api/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

//LoginUser Verifies email+password and returns tokens with the user profile.
func LoginUser(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	logger := logging.FromContext(ctx)

	storeClient := store.Client{}
	signInClient := auth.SignInClient{}

	var request v1.LoginUserRequest

	if !httputils.DecodeJSONOrReportError(w, r, &request) {
		return
	}

	logger.Debugf("Handling LoginUser request for %v", request.Email)

	result, err := signInClient.SignIn(ctx, request.Email, request.Password)
	if err != nil {
		logger.Debugf("Sign-in failed for %v: %v", request.Email, err)
		httputils.SendErrorResponse(w, r, err)
		return
	}

	profile, err := fetchProfile(ctx, storeClient, result.UID)
	if err != nil {
		logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
		httputils.SendErrorResponse(w, r, err)
		return
	}

	logger.Infof("User %v logged in", result.UID)

	httputils.SendResponse(w, r, v1.LoginUserResponse{
		UID:          result.UID,
		IDToken:      result.IDToken,
		RefreshToken: result.RefreshToken,
		Profile:      *profile,
	})
}

func fetchProfile(ctx context.Context, client store.Client, uid string) (*structs.Usuario, error) {
	rec, err := client.Doc(constants.CollectionUsuarios, uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			// auth identity exists but the profile doc was never written, return an empty profile
			return &structs.Usuario{}, nil
		}

		return nil, fmt.Errorf("Error while querying Firestore: %v", err)
	}

	var profile structs.Usuario
	if err := rec.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("Error while querying Firestore: %v", err)
	}

	return &profile, nil
}
