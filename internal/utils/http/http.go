package http

import (
	"encoding/json"
	ers "errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/golang/gddo/httputil/header"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	"github.com/drinkgo/drinkgo-backend/internal/utils"
	"github.com/drinkgo/drinkgo-backend/internal/utils/errors"
	rpccode "google.golang.org/genproto/googleapis/rpc/code"
)

type requestEnvelope struct {
	Data json.RawMessage `json:"data"`
}

type dataEnvelope struct {
	Data interface{} `json:"data"`
}

type errorPayload struct {
	Status  rpccode.Code `json:"status"`
	Message string       `json:"message"`
}

type errorEnvelope struct {
	Error errorPayload `json:"error"`
}

// DecodeJSONBody decodes request body wrapped in a 'data' field into dst and validates it.
// Based on https://www.alexedwards.net/blog/how-to-properly-parse-a-json-request-body
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Header.Get("Content-Type") != "" {
		value, _ := header.ParseValueAndParams(r.Header, "Content-Type")
		if value != "application/json" {
			msg := "Content-Type header is not application/json"
			return &errors.MalformedRequestError{Status: http.StatusUnsupportedMediaType, Msg: msg}
		}
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1048576)

	dec := json.NewDecoder(r.Body)

	var envelope requestEnvelope

	err := dec.Decode(&envelope)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError

		switch {
		case ers.As(err, &syntaxError):
			msg := fmt.Sprintf("Request body contains badly-formed JSON (at position %d)", syntaxError.Offset)
			return &errors.MalformedRequestError{Status: http.StatusBadRequest, Msg: msg}

		case ers.Is(err, io.ErrUnexpectedEOF):
			msg := "Request body contains badly-formed JSON"
			return &errors.MalformedRequestError{Status: http.StatusBadRequest, Msg: msg}

		case ers.As(err, &unmarshalTypeError):
			msg := fmt.Sprintf("Request body contains an invalid value for the %q field (at position %d)", unmarshalTypeError.Field, unmarshalTypeError.Offset)
			return &errors.MalformedRequestError{Status: http.StatusBadRequest, Msg: msg}

		case ers.Is(err, io.EOF):
			msg := "Request body must not be empty"
			return &errors.MalformedRequestError{Status: http.StatusBadRequest, Msg: msg}

		case err.Error() == "http: request body too large":
			msg := "Request body must not be larger than 1MB"
			return &errors.MalformedRequestError{Status: http.StatusRequestEntityTooLarge, Msg: msg}

		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		msg := "Request body must only contain a single JSON object"
		return &errors.MalformedRequestError{Status: http.StatusBadRequest, Msg: msg}
	}

	if len(envelope.Data) == 0 {
		msg := "Request body must be wrapped in 'data' field"
		return &errors.MalformedRequestError{Status: rpccode.Code_INVALID_ARGUMENT, Msg: msg}
	}

	innerDec := json.NewDecoder(strings.NewReader(string(envelope.Data)))
	innerDec.DisallowUnknownFields()

	if err := innerDec.Decode(&dst); err != nil {
		if strings.HasPrefix(err.Error(), "json: unknown field ") {
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			msg := fmt.Sprintf("Request body contains unknown field %s", fieldName)
			return &errors.MalformedRequestError{Status: http.StatusBadRequest, Msg: msg}
		}

		msg := fmt.Sprintf("Request body contains malformed 'data' field: %v", err)
		return &errors.MalformedRequestError{Status: http.StatusBadRequest, Msg: msg}
	}

	err = utils.Validate.Struct(dst)
	if err != nil {
		msg := fmt.Sprintf("Validation of the request has failed: %v", err.Error())
		return &errors.MalformedRequestError{Status: http.StatusBadRequest, Msg: msg}
	}

	return nil
}

// DecodeJSONOrReportError decodes request body into dst; on failure it reports the error to the
// client and returns false.
func DecodeJSONOrReportError(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	logger := logging.FromContext(r.Context())

	if err := DecodeJSONBody(w, r, dst); err != nil {
		logger.Debugf("Cannot decode request: %v", err)
		SendErrorResponse(w, r, err)
		return false
	}

	return true
}

// SendResponse sends response wrapped in a 'data' field.
func SendResponse(w http.ResponseWriter, r *http.Request, response interface{}) {
	logger := logging.FromContext(r.Context())

	js, err := json.Marshal(dataEnvelope{Data: response})
	if err != nil {
		logger.Errorf("Could not marshal response: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(js); err != nil {
		logger.Errorf("Could not write response: %v", err)
	}
}

// SendEmptyResponse sends response with empty 'data' field.
func SendEmptyResponse(w http.ResponseWriter, r *http.Request) {
	SendResponse(w, r, struct{}{})
}

// SendErrorResponse sends error response. The rpc code is taken from the error when it carries
// one, everything else is reported as INTERNAL.
func SendErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.FromContext(r.Context())

	var code = rpccode.Code_INTERNAL

	var coded errors.DrinkgoError
	if ers.As(err, &coded) {
		code = coded.Code()
	}

	js, marshalErr := json.Marshal(errorEnvelope{Error: errorPayload{Status: code, Message: err.Error()}})
	if marshalErr != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus(code))
	if _, err := w.Write(js); err != nil {
		logger.Errorf("Could not write error response: %v", err)
	}
}

func httpStatus(code rpccode.Code) int {
	switch code {
	case rpccode.Code_INVALID_ARGUMENT:
		return http.StatusBadRequest
	case rpccode.Code_NOT_FOUND:
		return http.StatusNotFound
	case rpccode.Code_UNAUTHENTICATED:
		return http.StatusUnauthorized
	case rpccode.Code_FAILED_PRECONDITION:
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}
