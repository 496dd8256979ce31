package loginempresa

import (
	"context"
	"fmt"
	"net/http"

	"github.com/drinkgo/drinkgo-backend/internal/auth"
	"github.com/drinkgo/drinkgo-backend/internal/constants"
	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	"github.com/drinkgo/drinkgo-backend/internal/store"
	"github.com/drinkgo/drinkgo-backend/internal/utils/errors"
	httputils "github.com/drinkgo/drinkgo-backend/internal/utils/http"
	v1 "github.com/drinkgo/drinkgo-backend/pkg/api/v1"
	"google.golang.org/api/iterator"
)

//ErrNotLinked The domain error for credentials that are valid but belong to no empresa.
//Deliberately distinct from the generic auth vocabulary.
var ErrNotLinked = &errors.ConflictError{Msg: "Esta cuenta no está vinculada a ninguna empresa"}

type empresaFinder func(ctx context.Context, uid string) (string, *structs.Empresa, error)

//LoginEmpresa Verifies email+password and cross-checks that the identity owns an empresa
//document. Identities without one get their session revoked and a domain error back.
func LoginEmpresa(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	logger := logging.FromContext(ctx)

	storeClient := store.Client{}
	authClient := auth.Client{}
	signInClient := auth.SignInClient{}

	var request v1.LoginEmpresaRequest

	if !httputils.DecodeJSONOrReportError(w, r, &request) {
		return
	}

	logger.Debugf("Handling LoginEmpresa request for %v", request.Email)

	findEmpresa := func(ctx context.Context, uid string) (string, *structs.Empresa, error) {
		return findByOwner(ctx, storeClient, uid)
	}

	response, err := login(ctx, signInClient, authClient, findEmpresa, request)
	if err != nil {
		logger.Debugf("Empresa login failed for %v: %v", request.Email, err)
		httputils.SendErrorResponse(w, r, err)
		return
	}

	httputils.SendResponse(w, r, response)
}

func login(ctx context.Context, signInClient auth.SignIner, authClient auth.Auther, findEmpresa empresaFinder, request v1.LoginEmpresaRequest) (*v1.LoginEmpresaResponse, error) {
	logger := logging.FromContext(ctx)

	result, err := signInClient.SignIn(ctx, request.Email, request.Password)
	if err != nil {
		return nil, err
	}

	empresaID, empresa, err := findEmpresa(ctx, result.UID)
	if err != nil {
		return nil, err
	}

	if empresa == nil {
		// valid credentials but no empresa doc references this identity; the tokens
		// just issued must not stay usable as a business session
		if revokeErr := authClient.RevokeRefreshTokens(ctx, result.UID); revokeErr != nil {
			logger.Warnf("Could not revoke tokens of unlinked identity %v: %v", result.UID, revokeErr)
		}

		return nil, ErrNotLinked
	}

	logger.Infof("Empresa %v logged in (owner %v)", empresaID, result.UID)

	return &v1.LoginEmpresaResponse{
		UID:          result.UID,
		EmpresaID:    empresaID,
		IDToken:      result.IDToken,
		RefreshToken: result.RefreshToken,
		Empresa:      *empresa,
	}, nil
}

func findByOwner(ctx context.Context, client store.Client, uid string) (string, *structs.Empresa, error) {
	it := client.Find(constants.CollectionEmpresas, "ownerId", uid).Documents(ctx)
	defer it.Stop()

	rec, err := it.Next()
	if err == iterator.Done {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("Error while querying Firestore: %v", err)
	}

	var empresa structs.Empresa
	if err := rec.DataTo(&empresa); err != nil {
		return "", nil, fmt.Errorf("Error while querying Firestore: %v", err)
	}

	return rec.Ref.ID, &empresa, nil
}
