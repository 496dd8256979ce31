package empresas

import (
	"fmt"
	"net/http"

	"github.com/drinkgo/drinkgo-backend/internal/constants"
	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	"github.com/drinkgo/drinkgo-backend/internal/store"
	"github.com/drinkgo/drinkgo-backend/internal/utils/errors"
	httputils "github.com/drinkgo/drinkgo-backend/internal/utils/http"
	v1 "github.com/drinkgo/drinkgo-backend/pkg/api/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

//GetEmpresa Returns one empresa by ID. Public, no token needed.
func GetEmpresa(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	logger := logging.FromContext(ctx)

	storeClient := store.Client{}

	var request v1.GetEmpresaRequest

	if !httputils.DecodeJSONOrReportError(w, r, &request) {
		return
	}

	logger.Debugf("Handling GetEmpresa request: %+v", request)

	rec, err := storeClient.Doc(constants.CollectionEmpresas, request.EmpresaID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			httputils.SendErrorResponse(w, r, &errors.NotFoundError{Msg: fmt.Sprintf("Could not find empresa %v", request.EmpresaID)})
			return
		}
		logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
		httputils.SendErrorResponse(w, r, fmt.Errorf("Error while querying Firestore: %v", err))
		return
	}

	var empresa structs.Empresa
	if err := rec.DataTo(&empresa); err != nil {
		logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
		httputils.SendErrorResponse(w, r, fmt.Errorf("Error while querying Firestore: %v", err))
		return
	}

	httputils.SendResponse(w, r, v1.GetEmpresaResponse{Empresa: v1.EmpresaView{ID: request.EmpresaID, Empresa: empresa}})
}
