package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"time"

	"github.com/drinkgo/drinkgo-backend/internal/logging"
	"github.com/drinkgo/drinkgo-backend/internal/secrets"
)

const signInURL = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword?key=%v"

//SignInResult Successful result of a password sign-in.
type SignInResult struct {
	UID          string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
}

type signInErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

//SignIner Password sign-in abstraction. The admin SDK cannot verify passwords,
//this goes through the Identity Toolkit REST API.
type SignIner interface {
	SignIn(ctx context.Context, email string, password string) (*SignInResult, error)
}

//SignInClient Real sign-in client.
type SignInClient struct {
	HTTPClient *http.Client
}

func apiKey(ctx context.Context) (string, error) {
	if key, exists := os.LookupEnv("FIREBASE_WEB_API_KEY"); exists {
		return key, nil
	}

	secretsClient := secrets.Client{}
	bytes, err := secretsClient.Get("firebase-web-apikey")
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

//SignIn Verifies email+password and returns tokens of the signed-in identity.
func (c SignInClient) SignIn(ctx context.Context, email string, password string) (*SignInResult, error) {
	logger := logging.FromContext(ctx)

	key, err := apiKey(ctx)
	if err != nil {
		logger.Warnf("Could not obtain API key: %v", err)
		return nil, err
	}

	requestBody, err := json.Marshal(map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, err
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	resp, err := httpClient.Post(fmt.Sprintf(signInURL, key), "application/json", bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var errResponse signInErrorResponse
		if err := json.Unmarshal(body, &errResponse); err != nil {
			return nil, MapSignInCode("")
		}

		logger.Debugf("Sign-in refused for %v: %v", email, errResponse.Error.Message)

		return nil, MapSignInCode(errResponse.Error.Message)
	}

	var result SignInResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

//MockSignInClient Mock sign-in client for unit tests.
type MockSignInClient struct {
	Result *SignInResult
	Err    error
}

//SignIn Returns preconfigured result.
func (c MockSignInClient) SignIn(ctx context.Context, email string, password string) (*SignInResult, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Result, nil
}
